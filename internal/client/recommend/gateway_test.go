package recommend

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/api"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(ctx context.Context) (string, error) { return s.token, s.err }

// fakeAPI implements api.Client for Gateway tests.
type fakeAPI struct {
	lastCreate api.FarmCreateRequest
	createRec  api.FarmRecord
	createErr  error

	recsResp api.RecommendationsResponse
	recsErr  error

	createCalls int
	recsCalls   int
}

func (f *fakeAPI) ExchangeToken(ctx context.Context, username, password string) (string, error) {
	return "", nil
}

func (f *fakeAPI) CreateFarm(ctx context.Context, token string, req api.FarmCreateRequest) (api.FarmRecord, error) {
	f.createCalls++
	f.lastCreate = req
	return f.createRec, f.createErr
}

func (f *fakeAPI) GetFarm(ctx context.Context, token, id string) (api.FarmRecord, error) {
	return api.FarmRecord{}, nil
}

func (f *fakeAPI) ListFarms(ctx context.Context, token string) ([]api.FarmRecord, error) {
	return nil, nil
}

func (f *fakeAPI) GetRecommendations(ctx context.Context, token, farmID string) (api.RecommendationsResponse, error) {
	f.recsCalls++
	return f.recsResp, f.recsErr
}

func (f *fakeAPI) ListSpecies(ctx context.Context) ([]api.SpeciesRecord, error) {
	return nil, nil
}

func newGateway(fa *fakeAPI, tokens TokenProvider) *Gateway {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewGateway(fa, tokens, log)
}

func TestCreateFarm_ConvertsDraft(t *testing.T) {
	fa := &fakeAPI{createRec: api.FarmRecord{ID: 12}}
	gw := newGateway(fa, staticTokens{token: "tok"})

	id, err := gw.CreateFarm(context.Background(), models.FarmProfile{
		Latitude: "-8.55", Longitude: "186.50", PH: "6.4",
		SoilType: "Sandy Clay", Rainfall: "1999.6", Temperature: "20.2", Altitude: "750",
	})
	require.NoError(t, err)
	require.Equal(t, "12", id)

	req := fa.lastCreate
	require.Equal(t, 2000, req.RainfallMM) // rounded to nearest integer
	require.Equal(t, 20, req.TemperatureCelsius)
	require.Equal(t, 750, req.ElevationM)
	require.Equal(t, 6.4, req.PH) // pH passes through unrounded
	require.Equal(t, SoilTextureClay, req.SoilTextureID)
	require.Equal(t, -8.55, req.Latitude)
	require.Equal(t, 186.5, req.Longitude)
	require.Equal(t, float64(1), req.AreaHa)
	require.NotNil(t, req.AgroforestryTypeIDs)
	require.Nil(t, req.ExternalID)
}

func TestCreateFarm_DefaultsForUnparsableFields(t *testing.T) {
	fa := &fakeAPI{createRec: api.FarmRecord{ID: 1}}
	gw := newGateway(fa, staticTokens{token: "tok"})

	_, err := gw.CreateFarm(context.Background(), models.FarmProfile{
		Rainfall: "abc", Temperature: "", Altitude: "n/a", PH: "x", SoilType: "",
	})
	require.NoError(t, err)

	req := fa.lastCreate
	require.Equal(t, DefaultRainfallMM, req.RainfallMM)
	require.Equal(t, DefaultTemperature, req.TemperatureCelsius)
	require.Equal(t, DefaultElevationM, req.ElevationM)
	require.Equal(t, float64(DefaultPH), req.PH)
	require.Equal(t, SoilTextureLoam, req.SoilTextureID)
	require.Equal(t, float64(0), req.Latitude)
	require.Equal(t, float64(0), req.Longitude)
}

func TestCreateFarm_AbsentTokenNoNetworkCall(t *testing.T) {
	fa := &fakeAPI{}
	gw := newGateway(fa, staticTokens{err: api.ErrUnavailable})

	_, err := gw.CreateFarm(context.Background(), models.FarmProfile{})
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Zero(t, fa.createCalls)
}

func TestCreateFarm_TransportFailure(t *testing.T) {
	fa := &fakeAPI{createErr: api.ErrUnavailable}
	gw := newGateway(fa, staticTokens{token: "tok"})

	_, err := gw.CreateFarm(context.Background(), models.FarmProfile{})
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.Equal(t, 1, fa.createCalls, "no retries")
}

func TestFetchRecommendations_MapsItems(t *testing.T) {
	fa := &fakeAPI{recsResp: api.RecommendationsResponse{
		FarmID: 2,
		Recommendations: []api.RecommendationItem{
			{SpeciesName: "Santalum album", SpeciesCommonName: "Sandalwood", ScoreMCDA: 0.912, KeyReasons: []string{"rainfall", "ph"}},
			{SpeciesName: "Swietenia macrophylla", SpeciesCommonName: "", ScoreMCDA: 0.4567},
		},
	}}
	gw := newGateway(fa, staticTokens{token: "tok"})

	items, err := gw.FetchRecommendations(context.Background(), "2")
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "Sandalwood", items[0].Name)
	require.Equal(t, "Score: 0.912", items[0].Matched)
	require.Equal(t, []string{"rainfall", "ph"}, items[0].KeyReasons)
	require.True(t, items[0].IsBest)

	// scientific name is the fallback display name
	require.Equal(t, "Swietenia macrophylla", items[1].Name)
	require.Equal(t, "Score: 0.457", items[1].Matched)
	require.Empty(t, items[1].KeyReasons)
	require.NotNil(t, items[1].KeyReasons)
	require.False(t, items[1].IsBest)
}

func TestFetchRecommendations_EmptyListIsNoData(t *testing.T) {
	fa := &fakeAPI{recsResp: api.RecommendationsResponse{FarmID: 2, Recommendations: []api.RecommendationItem{}}}
	gw := newGateway(fa, staticTokens{token: "tok"})

	_, err := gw.FetchRecommendations(context.Background(), "2")
	require.ErrorIs(t, err, ErrNoData)
}

func TestFetchRecommendations_AbsentToken(t *testing.T) {
	fa := &fakeAPI{}
	gw := newGateway(fa, staticTokens{err: api.ErrUnauthorized})

	_, err := gw.FetchRecommendations(context.Background(), "2")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Zero(t, fa.recsCalls)
}

func TestFetchRecommendations_TransportFailure(t *testing.T) {
	fa := &fakeAPI{recsErr: api.ErrMalformed}
	gw := newGateway(fa, staticTokens{token: "tok"})

	_, err := gw.FetchRecommendations(context.Background(), "2")
	require.ErrorIs(t, err, api.ErrMalformed)
}
