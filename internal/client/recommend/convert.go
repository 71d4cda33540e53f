package recommend

import (
	"math"
	"strconv"
	"strings"
)

// Fallback defaults applied when a draft's numeric field is unparsable or
// non-finite.
const (
	DefaultRainfallMM  = 1500
	DefaultTemperature = 20
	DefaultElevationM  = 500
	DefaultPH          = 6
	DefaultLatitude    = 0
	DefaultLongitude   = 0
)

// Soil texture classification ids used by the backend.
const (
	SoilTextureClay = 12
	SoilTextureLoam = 4
	SoilTextureSand = 1
)

// parseNumber parses a free-text numeric field, substituting fallback when
// the value is unparsable or non-finite.
func parseNumber(value string, fallback float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// soilTextureID maps a free-text soil descriptor to a classification id by
// substring match: clay, then loam, then sand, with loam as the default.
// Priority matters: "Sandy Clay" is clay, not sand.
func soilTextureID(soilType string) int {
	v := strings.ToLower(strings.TrimSpace(soilType))
	switch {
	case v == "":
		return SoilTextureLoam
	case strings.Contains(v, "clay"):
		return SoilTextureClay
	case strings.Contains(v, "loam"):
		return SoilTextureLoam
	case strings.Contains(v, "sand"):
		return SoilTextureSand
	default:
		return SoilTextureLoam
	}
}
