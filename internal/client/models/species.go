package models

// SpeciesMatch is one ranked item of a recommendation set.
//
// Within a non-empty set exactly one item carries IsBest=true: the item with
// the maximum score, first occurrence winning ties. Items are never mutated
// after creation except for the IsBest annotation pass.
type SpeciesMatch struct {
	// Name is the display name: the common name when the service provides
	// one, otherwise the scientific name. Never empty.
	Name string

	// Matched is a human-readable match descriptor. For remote results it is
	// a fixed-precision rendering of the score; estimated fallback results
	// are tagged "(estimated)" so they stay distinguishable from real data.
	Matched string

	// KeyReasons are short reason codes, in service order. May be empty.
	KeyReasons []string

	// Score is the match score. Remote scores are MCDA values in [0,1].
	Score float64

	// IsBest marks the single best item of the set.
	IsBest bool
}
