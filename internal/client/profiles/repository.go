package profiles

import (
	"context"
	"errors"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
)

// ErrNotFound is returned when the registry has no profile for an id.
var ErrNotFound = errors.New("profile not found")

// Entry pairs a registry id with its profile for batch writes.
type Entry struct {
	ID      string
	Profile models.FarmProfile
}

// Repository is the storage contract for the farm registry.
type Repository interface {
	// Get returns the profile stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (models.FarmProfile, error)

	// Upsert stores the profile under id, unconditionally overwriting.
	Upsert(ctx context.Context, id string, p models.FarmProfile) error

	// Count returns the number of registered profiles.
	Count(ctx context.Context) (int, error)

	// IDs returns all registered ids in insertion-friendly (numeric, then
	// lexical) order.
	IDs(ctx context.Context) ([]string, error)
}
