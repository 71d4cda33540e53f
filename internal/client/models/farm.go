// Package models defines client-side data models used by the planting CLI.
package models

// DraftID is the reserved farm id meaning "not yet persisted". An empty id
// means "no farm selected". Neither value may appear as a registry key.
const DraftID = "new"

// FarmProfile describes a planting site at the edit boundary. Every numeric
// attribute is kept in its raw textual form so that user input round-trips
// through the form untouched; conversion to numbers happens only at the
// transport boundary.
type FarmProfile struct {
	// Latitude and Longitude are decimal degrees.
	Latitude  string
	Longitude string

	// PH is the soil pH.
	PH string

	// SoilType is a free-text soil texture descriptor (e.g. "Sandy Loam").
	SoilType string

	// Rainfall is annual rainfall in mm.
	Rainfall string

	// Temperature is mean temperature in °C.
	Temperature string

	// Altitude is elevation in m.
	Altitude string
}

// IsZero reports whether no field of the profile has been filled in.
func (p FarmProfile) IsZero() bool {
	return p == FarmProfile{}
}
