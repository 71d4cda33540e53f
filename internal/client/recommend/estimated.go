package recommend

import "github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"

// EstimatedSet returns the fixed placeholder set substituted when no usable
// remote data is available. The "(estimated)" tag in the match descriptor is
// the contract that keeps placeholder data distinguishable from service data.
func EstimatedSet() []models.SpeciesMatch {
	return MarkBest([]models.SpeciesMatch{
		{Name: "Sandalwood", Matched: "70% (estimated)", KeyReasons: []string{"auto-analysis"}, Score: 70},
		{Name: "Mahogany", Matched: "65% (estimated)", KeyReasons: []string{"auto-analysis"}, Score: 65},
		{Name: "Bamboo", Matched: "60% (estimated)", KeyReasons: []string{"auto-analysis"}, Score: 60},
	})
}
