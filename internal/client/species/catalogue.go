// Package species provides read-only access to the public species catalogue
// with simple name-based search.
package species

import (
	"context"
	"fmt"
	"strings"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/api"
)

// Catalogue lazily loads the species list once per session and answers
// search queries against the in-memory copy.
type Catalogue struct {
	api    api.Client
	loaded bool
	all    []api.SpeciesRecord
}

// NewCatalogue builds a Catalogue over the given API client.
func NewCatalogue(client api.Client) *Catalogue {
	return &Catalogue{api: client}
}

// Search returns all species whose common or scientific name contains the
// query, case-insensitively. An empty query returns the whole catalogue.
func (c *Catalogue) Search(ctx context.Context, query string) ([]api.SpeciesRecord, error) {
	if !c.loaded {
		all, err := c.api.ListSpecies(ctx)
		if err != nil {
			return nil, fmt.Errorf("load species catalogue: %w", err)
		}
		c.all = all
		c.loaded = true
	}
	return Filter(c.all, query), nil
}

// Filter is the pure search over a species list.
func Filter(all []api.SpeciesRecord, query string) []api.SpeciesRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	var result []api.SpeciesRecord
	for _, sp := range all {
		if strings.Contains(strings.ToLower(sp.CommonName), q) ||
			strings.Contains(strings.ToLower(sp.Name), q) {
			result = append(result, sp)
		}
	}
	return result
}
