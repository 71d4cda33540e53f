package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/recommend"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"
)

// ---- fakes ----

type fakeGateway struct {
	createID  string
	createErr error

	fetchItems []models.SpeciesMatch
	fetchErr   error

	createCalls int
	fetchCalls  int
}

func (f *fakeGateway) CreateFarm(ctx context.Context, draft models.FarmProfile) (string, error) {
	f.createCalls++
	return f.createID, f.createErr
}

func (f *fakeGateway) FetchRecommendations(ctx context.Context, farmID string) ([]models.SpeciesMatch, error) {
	f.fetchCalls++
	return f.fetchItems, f.fetchErr
}

type fakeStore struct {
	profiles map[string]models.FarmProfile

	resolveErr error
	insertErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{profiles: map[string]models.FarmProfile{}}
}

func (f *fakeStore) Resolve(ctx context.Context, id string) (models.FarmProfile, error) {
	if f.resolveErr != nil {
		return models.FarmProfile{}, f.resolveErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return models.FarmProfile{}, errors.New("not found")
	}
	return p, nil
}

func (f *fakeStore) Insert(ctx context.Context, id string, p models.FarmProfile) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.profiles[id] = p
	return nil
}

func (f *fakeStore) Count(ctx context.Context) (int, error) {
	return len(f.profiles), nil
}

type fakeView struct {
	farmID string
	items  []models.SpeciesMatch
	calls  int
}

func (f *fakeView) ShowResults(farmID string, items []models.SpeciesMatch) {
	f.calls++
	f.farmID = farmID
	f.items = items
}

type fakeExporter struct {
	farmID string
	items  []models.SpeciesMatch
	err    error
}

func (f *fakeExporter) Export(ctx context.Context, farmID string, items []models.SpeciesMatch) (string, error) {
	f.farmID = farmID
	f.items = items
	if f.err != nil {
		return "", f.err
	}
	return "report.txt", nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newController(gw Gateway, store ProfileStore, view View, exp Exporter) *Controller {
	return NewController(gw, store, view, exp, rand.New(rand.NewSource(1)), testLogger())
}

// ---- SelectProfile ----

func TestSelectProfile_EmptyValue(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)

	require.NoError(t, c.SelectProfile(context.Background(), ""))
	require.Equal(t, StateEmpty, c.State())
	require.Empty(t, c.ActiveID())
	require.True(t, c.Draft().IsZero())
}

func TestSelectProfile_NewStartsDraftAndClearsFields(t *testing.T) {
	store := newFakeStore()
	store.profiles["2"] = models.FarmProfile{Rainfall: "2000"}
	c := newController(&fakeGateway{}, store, &fakeView{}, nil)

	require.NoError(t, c.SelectProfile(context.Background(), "2"))
	require.NoError(t, c.SelectProfile(context.Background(), models.DraftID))
	require.Equal(t, StateDraft, c.State())
	require.Equal(t, models.DraftID, c.ActiveID())
	require.True(t, c.Draft().IsZero())
}

func TestSelectProfile_HitPopulatesFields(t *testing.T) {
	store := newFakeStore()
	store.profiles["2"] = models.FarmProfile{Rainfall: "2000", SoilType: "Loam"}
	c := newController(&fakeGateway{}, store, &fakeView{}, nil)

	require.NoError(t, c.SelectProfile(context.Background(), "2"))
	require.Equal(t, StateSelected, c.State())
	require.Equal(t, "2", c.ActiveID())
	require.Equal(t, "2000", c.Draft().Rainfall)
}

func TestSelectProfile_MissLandsInEmpty(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)

	err := c.SelectProfile(context.Background(), "404")
	require.ErrorIs(t, err, ErrProfileUnavailable)
	require.Equal(t, StateEmpty, c.State())
	require.Empty(t, c.ActiveID())
}

// ---- Generate ----

func TestGenerate_RequiresSelection(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)

	require.ErrorIs(t, c.Generate(context.Background()), ErrNoProfileSelected)

	require.NoError(t, c.SelectProfile(context.Background(), models.DraftID))
	require.ErrorIs(t, c.Generate(context.Background()), ErrNoProfileSelected)
}

func TestGenerate_RemoteDataRendered(t *testing.T) {
	store := newFakeStore()
	store.profiles["2"] = models.FarmProfile{}
	gw := &fakeGateway{fetchItems: recommend.MarkBest([]models.SpeciesMatch{
		{Name: "Teak", Matched: "Score: 0.800", Score: 0.8},
		{Name: "Bamboo", Matched: "Score: 0.600", Score: 0.6},
	})}
	view := &fakeView{}
	c := newController(gw, store, view, nil)

	require.NoError(t, c.SelectProfile(context.Background(), "2"))
	require.NoError(t, c.Generate(context.Background()))

	require.False(t, c.ResultsEstimated())
	require.Equal(t, 1, view.calls)
	require.Equal(t, "2", view.farmID)
	require.Equal(t, gw.fetchItems, view.items)
	require.Equal(t, gw.fetchItems, c.Results())
}

func TestGenerate_FallbackOnFetchFailure(t *testing.T) {
	store := newFakeStore()
	store.profiles["2"] = models.FarmProfile{}
	gw := &fakeGateway{fetchErr: errors.New("connection refused")}
	view := &fakeView{}
	c := newController(gw, store, view, nil)

	require.NoError(t, c.SelectProfile(context.Background(), "2"))
	require.NoError(t, c.Generate(context.Background()), "transport failures must not surface")

	require.True(t, c.ResultsEstimated())
	require.Len(t, c.Results(), 3)
	for _, item := range c.Results() {
		require.Contains(t, item.Matched, "(estimated)")
	}
	best := 0
	for _, item := range c.Results() {
		if item.IsBest {
			best++
		}
	}
	require.Equal(t, 1, best)
	require.Equal(t, c.Results(), view.items)
}

// ---- SaveDraft ----

func TestSaveDraft_RequiresDraft(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)

	_, err := c.SaveDraft(context.Background())
	require.ErrorIs(t, err, ErrNotDraft)
}

func TestSaveDraft_RemotePath(t *testing.T) {
	store := newFakeStore()
	gw := &fakeGateway{createID: "12"}
	c := newController(gw, store, &fakeView{}, nil)
	ctx := context.Background()

	require.NoError(t, c.SelectProfile(ctx, models.DraftID))
	require.NoError(t, c.SetField("rainfall", "1200"))

	res, err := c.SaveDraft(ctx)
	require.NoError(t, err)
	require.Equal(t, SaveResult{ID: "12", Remote: true}, res)
	require.Equal(t, StateSelected, c.State())
	require.Equal(t, "12", c.ActiveID())

	p, err := store.Resolve(ctx, "12")
	require.NoError(t, err)
	require.Equal(t, "1200", p.Rainfall)
}

func TestSaveDraft_LocalFallback(t *testing.T) {
	store := newFakeStore()
	store.profiles["1"] = models.FarmProfile{}
	store.profiles["2"] = models.FarmProfile{}
	gw := &fakeGateway{createErr: errors.New("server unavailable")}
	c := newController(gw, store, &fakeView{}, nil)
	ctx := context.Background()

	require.NoError(t, c.SelectProfile(ctx, models.DraftID))
	require.NoError(t, c.SetField("soil", "Clay"))

	res, err := c.SaveDraft(ctx)
	require.NoError(t, err, "a backend outage must not block saving")
	require.Equal(t, SaveResult{ID: "3", Remote: false}, res)
	require.Equal(t, StateSelected, c.State())

	// the synthesized id resolves immediately
	p, err := store.Resolve(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, "Clay", p.SoilType)
}

// ---- MockFromArea ----

func TestMockFromArea_EmptyQuery(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)

	require.ErrorIs(t, c.MockFromArea(context.Background(), "   "), ErrEmptyQuery)
	require.True(t, c.Draft().IsZero())
}

func TestMockFromArea_StagesPlausibleFields(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)
	ctx := context.Background()

	require.NoError(t, c.SelectProfile(ctx, models.DraftID))
	require.NoError(t, c.MockFromArea(ctx, "back paddock"))

	d := c.Draft()
	require.Equal(t, "-8.55", d.Latitude)
	require.Equal(t, "186.50", d.Longitude)
	require.Contains(t, mockSoils, d.SoilType)

	ph, err := strconv.ParseFloat(d.PH, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, ph, 5.0)
	require.LessOrEqual(t, ph, 7.0)

	rain, err := strconv.ParseFloat(d.Rainfall, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, rain, 1500.0)
	require.LessOrEqual(t, rain, 2500.0)

	// state is untouched
	require.Equal(t, StateDraft, c.State())
}

func TestMockFromArea_Reproducible(t *testing.T) {
	a := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)
	b := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)
	ctx := context.Background()

	require.NoError(t, a.MockFromArea(ctx, "q"))
	require.NoError(t, b.MockFromArea(ctx, "q"))
	require.Equal(t, a.Draft(), b.Draft())
}

// ---- Export ----

func TestExport_NotConfigured(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)

	_, err := c.Export(context.Background())
	require.ErrorIs(t, err, ErrExportUnavailable)
}

func TestExport_RequiresResults(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, &fakeExporter{})

	_, err := c.Export(context.Background())
	require.ErrorIs(t, err, ErrNoResults)
}

// ---- SetField ----

func TestSetField_Unknown(t *testing.T) {
	c := newController(&fakeGateway{}, newFakeStore(), &fakeView{}, nil)
	require.ErrorIs(t, c.SetField("color", "green"), ErrUnknownField)
}

// ---- end to end ----

func TestWorkflow_EndToEnd(t *testing.T) {
	store := newFakeStore()
	store.profiles["2"] = models.FarmProfile{Rainfall: "2000"}

	set := recommend.MarkBest([]models.SpeciesMatch{
		{Name: "Sandalwood", Matched: "Score: 0.910", Score: 0.91},
		{Name: "Mahogany", Matched: "Score: 0.870", Score: 0.87},
		{Name: "Bamboo", Matched: "Score: 0.650", Score: 0.65},
	})
	gw := &fakeGateway{fetchItems: set}
	view := &fakeView{}
	exp := &fakeExporter{}
	c := newController(gw, store, view, exp)
	ctx := context.Background()

	require.NoError(t, c.SelectProfile(ctx, "2"))
	require.Equal(t, "2000", c.Draft().Rainfall)

	require.NoError(t, c.Generate(ctx))
	require.Len(t, view.items, 3)
	require.True(t, view.items[0].IsBest)
	require.False(t, view.items[1].IsBest)
	require.False(t, view.items[2].IsBest)

	location, err := c.Export(ctx)
	require.NoError(t, err)
	require.Equal(t, "report.txt", location)
	require.Equal(t, "2", exp.farmID)
	require.Equal(t, set, exp.items, "export must receive exactly the active set")
}
