package profiles

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/api"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"
)

// TokenProvider yields the session bearer token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// RemoteReader is the subset of the API used to fill registry misses.
type RemoteReader interface {
	GetFarm(ctx context.Context, token, id string) (api.FarmRecord, error)
	ListFarms(ctx context.Context, token string) ([]api.FarmRecord, error)
}

// Store mediates "get or fetch" semantics over the registry: local hits are
// served as-is, misses are read from the backend and cached. Remote lookup is
// an optional capability; without it the Store degrades to the registry
// contents.
type Store struct {
	repo   Repository
	remote RemoteReader
	tokens TokenProvider
	log    logging.Logger
}

// NewStore builds a Store. remote may be nil to disable remote lookup.
func NewStore(repo Repository, remote RemoteReader, tokens TokenProvider, log logging.Logger) *Store {
	return &Store{repo: repo, remote: remote, tokens: tokens, log: log}
}

// Resolve returns the profile for id, reading through to the backend on a
// registry miss. A remote hit is cached before returning, so the first
// resolution of a server-side farm always reflects remote data.
func (s *Store) Resolve(ctx context.Context, id string) (models.FarmProfile, error) {
	p, err := s.repo.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if s.remote == nil {
		return models.FarmProfile{}, ErrNotFound
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return models.FarmProfile{}, fmt.Errorf("resolve farm %s: %w", id, err)
	}

	rec, err := s.remote.GetFarm(ctx, token, id)
	if err != nil {
		return models.FarmProfile{}, fmt.Errorf("resolve farm %s: %w", id, err)
	}

	p = ProfileFromRecord(rec)
	if err := s.repo.Upsert(ctx, id, p); err != nil {
		return models.FarmProfile{}, err
	}
	return p, nil
}

// Insert registers the profile under id, overwriting any existing entry.
func (s *Store) Insert(ctx context.Context, id string, p models.FarmProfile) error {
	return s.repo.Upsert(ctx, id, p)
}

// Count returns the number of registered profiles.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// IDs returns the registered profile ids.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	return s.repo.IDs(ctx)
}

// Refresh merges the user's remote farm list into the registry. Failures are
// logged and swallowed: the registry contents remain usable either way.
func (s *Store) Refresh(ctx context.Context) {
	if s.remote == nil {
		return
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "farm list refresh skipped", "error", err)
		return
	}

	recs, err := s.remote.ListFarms(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "farm list refresh failed", "error", err)
		return
	}

	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, Entry{
			ID:      strconv.FormatInt(rec.ID, 10),
			Profile: ProfileFromRecord(rec),
		})
	}

	// A repository that can merge atomically gets the whole list at once.
	if b, ok := s.repo.(batchUpserter); ok {
		if err := b.UpsertBatch(ctx, entries); err != nil {
			s.log.Warn(ctx, "farm list merge failed", "error", err)
		}
		return
	}

	for _, e := range entries {
		if err := s.repo.Upsert(ctx, e.ID, e.Profile); err != nil {
			s.log.Warn(ctx, "farm list refresh upsert failed", "farm_id", e.ID, "error", err)
		}
	}
}

// batchUpserter is an optional Repository capability: merge many profiles in
// one atomic write.
type batchUpserter interface {
	UpsertBatch(ctx context.Context, entries []Entry) error
}

// ProfileFromRecord flattens a remote farm record into the textual edit form.
// Numbers are rendered locale-independently with the shortest decimal
// representation that round-trips, so "2000" stays "2000" and "6.5" stays
// "6.5".
func ProfileFromRecord(rec api.FarmRecord) models.FarmProfile {
	return models.FarmProfile{
		Latitude:    formatDecimal(rec.Latitude),
		Longitude:   formatDecimal(rec.Longitude),
		PH:          formatDecimal(rec.PH),
		SoilType:    rec.SoilTexture.Name,
		Rainfall:    formatDecimal(rec.RainfallMM),
		Temperature: formatDecimal(rec.TemperatureCelsius),
		Altitude:    formatDecimal(rec.ElevationM),
	}
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
