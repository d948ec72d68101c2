package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/output"
	"github.com/rpgo/projection-engine/internal/report"
)

func TestFormatters(t *testing.T) {
	d1 := stddec.NewFromFloat(123.45)
	if got := output.FormatCurrency(d1); got != "$123.45" {
		t.Fatalf("FormatCurrency got %s", got)
	}
	// FormatPercentage expects the value already in percentage units (not a 0-1 fraction)
	d2 := stddec.NewFromFloat(12.34)
	if got := output.FormatPercentage(d2); got != "12.34%" {
		t.Fatalf("FormatPercentage got %s", got)
	}
}

func TestSaveConfiguration_RoundTrips(t *testing.T) {
	plan := loadPlan(t)
	out := filepath.Join(t.TempDir(), "plan.yaml")
	if err := output.SaveConfiguration(plan, out); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected file exists, err: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("expected non-empty file")
	}

	reloaded, err := config.NewInputParser().LoadFromFile(out)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if len(reloaded.Debts) != len(plan.Debts) || !reloaded.ExtraPayment.Equal(plan.ExtraPayment) {
		t.Fatalf("reloaded plan differs: %+v", reloaded)
	}
}

func TestUnknownFormatIsRejected(t *testing.T) {
	rep, err := report.NewBuilder(nil).Build(context.Background(), loadPlan(t))
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if _, err := output.GenerateReport(rep, "docx", t.TempDir()); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
