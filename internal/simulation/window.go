package simulation

import (
	"fmt"
	"strings"

	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/pkg/ageutil"
)

// Window is a read-side view over the sampled trajectory.
type Window string

const (
	Window5Y  Window = "5y"
	Window10Y Window = "10y"
	Window25Y Window = "25y"
	WindowYTD Window = "ytd"
	WindowAll Window = "all"
)

// windowSizes maps the most-recent-N windows to N (one sample per simulated year).
var windowSizes = map[Window]int{
	Window5Y:  5,
	Window10Y: 10,
	Window25Y: 25,
}

// AllWindows lists the supported windows.
func AllWindows() []Window {
	return []Window{Window5Y, Window10Y, Window25Y, WindowYTD, WindowAll}
}

// ParseWindow resolves a window label (case-insensitive)
func ParseWindow(label string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(label)))
	switch w {
	case Window5Y, Window10Y, Window25Y, WindowYTD, WindowAll:
		return w, nil
	}
	return "", fmt.Errorf("%w: unknown window %q", domain.ErrInvalidInput, label)
}

// SliceWindow projects history onto w. The result never aliases history.
func SliceWindow(history []domain.HistoricalDataPoint, w Window, currentAge float64) ([]domain.HistoricalDataPoint, error) {
	if n, ok := windowSizes[w]; ok {
		start := len(history) - n
		if start < 0 {
			start = 0
		}
		return append([]domain.HistoricalDataPoint(nil), history[start:]...), nil
	}

	switch w {
	case WindowAll:
		return append([]domain.HistoricalDataPoint(nil), history...), nil
	case WindowYTD:
		floor := ageutil.WholeYears(currentAge)
		var out []domain.HistoricalDataPoint
		for _, p := range history {
			if p.Age >= floor {
				out = append(out, p)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unknown window %q", domain.ErrInvalidInput, w)
}
