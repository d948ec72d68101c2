package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/logging"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PROJECTOR_ENV", "prod")
	t.Setenv("PROJECTOR_LOG_LEVEL", "error")
	t.Setenv("PROJECTOR_OUTPUT_DIR", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDebtsCommand(t *testing.T) {
	out, err := execute(t, "debts", "--extra", "300", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "PROJECTION SUMMARY")
	assert.Contains(t, out, "Recommended: ")
}

func TestDebtsCommandJSON(t *testing.T) {
	out, err := execute(t, "debts", "--format", "json")
	require.NoError(t, err)

	var rep domain.ProjectionReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.NotNil(t, rep.Comparison)
	assert.Empty(t, rep.Growth)
	assert.Nil(t, rep.LifeStage)
}

func TestDebtsCommandRejectsBadExtra(t *testing.T) {
	_, err := execute(t, "debts", "--extra", "lots")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "debts", "--extra=-5")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGrowthCommand(t *testing.T) {
	out, err := execute(t, "growth", "--initial", "0", "--monthly", "100", "--return", "0", "--years", "2", "--format", "growth-csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2400")
}

func TestGrowthCommandRejectsNonPositiveHorizon(t *testing.T) {
	for _, years := range []string{"-3", "0"} {
		_, err := execute(t, "growth", "--years="+years, "--format", "json")
		require.ErrorIs(t, err, domain.ErrInvalidInput, "--years %s", years)
	}

	_, err := execute(t, "growth", "--monthly=-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDebtsCommandSingleStrategy(t *testing.T) {
	out, err := execute(t, "debts", "--extra", "300", "--strategy", "Avalanche")
	require.NoError(t, err)
	assert.Contains(t, out, "avalanche schedule")
	assert.Contains(t, out, "total interest")
	assert.NotContains(t, out, "PROJECTION")

	_, err = execute(t, "debts", "--strategy", "fastest")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLifeStageHelpListsChoices(t *testing.T) {
	out, err := execute(t, "lifestage", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "day, week, month, year")
	assert.Contains(t, out, "5y, 10y, 25y, ytd, all")
}

func TestSetupStoresLoggerOnContext(t *testing.T) {
	t.Setenv("PROJECTOR_LOG_LEVEL", "warn")
	a := &app{}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, a.setup(cmd))
	assert.Same(t, a.logger, logging.FromContext(cmd.Context()))
}

func TestLifeStageInstant(t *testing.T) {
	out, err := execute(t, "lifestage", "--instant", "--speed", "year", "--window", "5y")
	require.NoError(t, err)
	assert.Contains(t, out, "status completed at age 90.0")
	assert.Contains(t, out, "age  90")
	assert.NotContains(t, out, "age  80")
}

func TestLifeStageRejectsUnknownSpeed(t *testing.T) {
	_, err := execute(t, "lifestage", "--instant", "--speed", "decade")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInitThenReport(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")

	out, err := execute(t, "init", planPath)
	require.NoError(t, err)
	assert.Contains(t, out, planPath)

	_, err = execute(t, "init", planPath)
	require.Error(t, err, "init must not overwrite without --force")

	data, err := os.ReadFile(planPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPlanYAML(), data)

	reportDir := t.TempDir()
	out, err = execute(t, "--config", planPath, "--output-dir", reportDir, "report", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote ")

	matches, err := filepath.Glob(filepath.Join(reportDir, "projection_json_*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestReportSavesEffectivePlan(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "effective.yaml")
	out, err := execute(t, "--output-dir", dir, "report", "--format", "csv", "--save-plan", planPath)
	require.NoError(t, err)
	assert.Contains(t, out, planPath)

	plan, err := config.NewInputParser().LoadFromFile(planPath)
	require.NoError(t, err)
	assert.Equal(t, config.NewInputParser().DefaultPlan().Debts[0].ID, plan.Debts[0].ID)
}

func TestReportUnknownFormat(t *testing.T) {
	_, err := execute(t, "report", "--format", "docx")
	require.Error(t, err)
}
