package output

import "github.com/rpgo/projection-engine/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered when a report carries none.
var DefaultAssumptions = (&domain.Plan{}).GenerateAssumptions()

func assumptionsFor(report *domain.ProjectionReport) []string {
	if len(report.Assumptions) > 0 {
		return report.Assumptions
	}
	return DefaultAssumptions
}
