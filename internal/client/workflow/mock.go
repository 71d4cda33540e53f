package workflow

import (
	"strconv"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
)

// mockSoils are the soil descriptors the area mock draws from.
var mockSoils = []string{"Clay", "Loam", "Sandy"}

// mockEnvironment produces a plausible field set for an area search: a fixed
// coordinate pair and randomized pH, soil, rainfall, temperature, and
// elevation within realistic ranges. Randomness comes from the injected
// source so scenarios are reproducible.
func (c *Controller) mockEnvironment() models.FarmProfile {
	return models.FarmProfile{
		Latitude:    "-8.55",
		Longitude:   "186.50",
		PH:          strconv.FormatFloat(5+c.rng.Float64()*2, 'f', 1, 64),
		SoilType:    mockSoils[c.rng.Intn(len(mockSoils))],
		Rainfall:    strconv.FormatFloat(1500+c.rng.Float64()*1000, 'f', 0, 64),
		Temperature: strconv.FormatFloat(18+c.rng.Float64()*6, 'f', 1, 64),
		Altitude:    strconv.FormatFloat(700+c.rng.Float64()*400, 'f', 0, 64),
	}
}
