package recommend

import "github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"

// MarkBest returns a copy of items with IsBest recomputed: true only for the
// maximum-score item, the first occurrence winning ties. An empty input is
// returned unchanged. The function is pure; callers may share the input.
func MarkBest(items []models.SpeciesMatch) []models.SpeciesMatch {
	if len(items) == 0 {
		return items
	}

	best := 0
	for i, item := range items {
		// strict > keeps the earliest maximum
		if item.Score > items[best].Score {
			best = i
		}
	}

	out := make([]models.SpeciesMatch, len(items))
	for i, item := range items {
		item.IsBest = i == best
		out[i] = item
	}
	return out
}
