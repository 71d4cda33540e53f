package recommend

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/api"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"
)

// ErrNoData means the backend returned a successful but empty recommendation
// list. Callers treat it like any other fetch failure.
var ErrNoData = fmt.Errorf("no usable recommendation data")

// TokenProvider yields the session bearer token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Gateway issues the create-farm and fetch-recommendations calls and maps
// service payloads into the domain model.
type Gateway struct {
	api    api.Client
	tokens TokenProvider
	log    logging.Logger
}

// NewGateway builds a Gateway over the given API client and token source.
func NewGateway(client api.Client, tokens TokenProvider, log logging.Logger) *Gateway {
	return &Gateway{api: client, tokens: tokens, log: log}
}

// CreateFarm converts the draft's free-text fields to the transport shape and
// persists it, returning the assigned farm id as text. A missing token fails
// the operation before any network call. No retries, no local fallback: that
// policy belongs to the caller.
func (g *Gateway) CreateFarm(ctx context.Context, draft models.FarmProfile) (string, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("create farm: %w", err)
	}

	req := api.FarmCreateRequest{
		RainfallMM:          int(math.Round(parseNumber(draft.Rainfall, DefaultRainfallMM))),
		TemperatureCelsius:  int(math.Round(parseNumber(draft.Temperature, DefaultTemperature))),
		ElevationM:          int(math.Round(parseNumber(draft.Altitude, DefaultElevationM))),
		PH:                  parseNumber(draft.PH, DefaultPH),
		SoilTextureID:       soilTextureID(draft.SoilType),
		AreaHa:              1,
		Latitude:            parseNumber(draft.Latitude, DefaultLatitude),
		Longitude:           parseNumber(draft.Longitude, DefaultLongitude),
		AgroforestryTypeIDs: []int{},
	}

	rec, err := g.api.CreateFarm(ctx, token, req)
	if err != nil {
		g.log.Warn(ctx, "farm creation failed", "error", err)
		return "", fmt.Errorf("create farm: %w", err)
	}
	return strconv.FormatInt(rec.ID, 10), nil
}

// FetchRecommendations fetches the ranked species set for a farm. Auth,
// transport, and malformed-payload failures surface as errors, as does a
// successful-but-empty list (ErrNoData). The returned set carries the
// best-match annotation.
func (g *Gateway) FetchRecommendations(ctx context.Context, farmID string) ([]models.SpeciesMatch, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}

	resp, err := g.api.GetRecommendations(ctx, token, farmID)
	if err != nil {
		g.log.Warn(ctx, "recommendation fetch failed", "farm_id", farmID, "error", err)
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}
	if len(resp.Recommendations) == 0 {
		return nil, fmt.Errorf("fetch recommendations for farm %s: %w", farmID, ErrNoData)
	}

	items := make([]models.SpeciesMatch, len(resp.Recommendations))
	for i, rec := range resp.Recommendations {
		name := rec.SpeciesCommonName
		if name == "" {
			name = rec.SpeciesName
		}
		reasons := rec.KeyReasons
		if reasons == nil {
			reasons = []string{}
		}
		items[i] = models.SpeciesMatch{
			Name:       name,
			Matched:    fmt.Sprintf("Score: %.3f", rec.ScoreMCDA),
			KeyReasons: reasons,
			Score:      rec.ScoreMCDA,
		}
	}
	return MarkBest(items), nil
}
