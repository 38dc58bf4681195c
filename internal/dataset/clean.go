package dataset

import (
	"penguincli/pkg/contracts/domain"
)

// CleanReport summarizes what row-omission cleaning removed
type CleanReport struct {
	Total            int                    `json:"total"`
	Kept             int                    `json:"kept"`
	Dropped          int                    `json:"dropped"`
	DroppedBySpecies map[domain.Species]int `json:"dropped_by_species"`
}

// Clean returns the observations that have all four measurements and sex
// recorded, along with a report of what was dropped. The input slice is
// not modified, and row order is preserved. Cleaning an already clean
// slice drops nothing.
func Clean(observations []domain.Observation) ([]domain.Observation, CleanReport) {
	report := CleanReport{
		Total:            len(observations),
		DroppedBySpecies: make(map[domain.Species]int),
	}

	kept := make([]domain.Observation, 0, len(observations))
	for _, obs := range observations {
		if !obs.IsComplete() {
			report.Dropped++
			report.DroppedBySpecies[obs.Species]++
			continue
		}
		kept = append(kept, obs)
	}

	report.Kept = len(kept)
	return kept, report
}
