package workflow

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/recommend"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"
)

// State of the active-profile slot.
type State string

const (
	// StateEmpty means no farm is selected.
	StateEmpty State = "empty"
	// StateDraft means an unsaved profile draft is being edited.
	StateDraft State = "draft"
	// StateSelected means a registered farm is active.
	StateSelected State = "selected"
)

// User-input errors. These are surfaced as immediate prompts, never retried.
var (
	ErrNoProfileSelected  = errors.New("no saved farm selected")
	ErrNotDraft           = errors.New("no profile draft in progress")
	ErrEmptyQuery         = errors.New("area query is empty")
	ErrNoResults          = errors.New("no recommendation results yet")
	ErrExportUnavailable  = errors.New("export is not configured")
	ErrProfileUnavailable = errors.New("farm profile could not be loaded")
	ErrUnknownField       = errors.New("unknown profile field")
)

// Gateway issues remote farm creation and recommendation fetches.
type Gateway interface {
	CreateFarm(ctx context.Context, draft models.FarmProfile) (string, error)
	FetchRecommendations(ctx context.Context, farmID string) ([]models.SpeciesMatch, error)
}

// ProfileStore is the farm registry with read-through resolution.
type ProfileStore interface {
	Resolve(ctx context.Context, id string) (models.FarmProfile, error)
	Insert(ctx context.Context, id string, p models.FarmProfile) error
	Count(ctx context.Context) (int, error)
}

// View renders the active result set. Implementations must take the set
// as-is; the controller hands over exactly what becomes the active set.
type View interface {
	ShowResults(farmID string, items []models.SpeciesMatch)
}

// Exporter turns a result set into a downloadable document and returns its
// location. It is an optional capability.
type Exporter interface {
	Export(ctx context.Context, farmID string, items []models.SpeciesMatch) (string, error)
}

// SaveResult reports which persistence path a saved draft took.
type SaveResult struct {
	// ID is the farm id the draft was registered under.
	ID string
	// Remote is true when the backend assigned the id; false means the id
	// was synthesized locally because remote creation failed.
	Remote bool
}

// Controller is the workflow state machine. All collaborators are injected;
// there is no package-level state.
type Controller struct {
	gateway  Gateway
	store    ProfileStore
	view     View
	exporter Exporter
	rng      *rand.Rand
	log      logging.Logger

	state    State
	activeID string
	draft    models.FarmProfile

	results       []models.SpeciesMatch
	resultsFarmID string
	estimated     bool
}

// NewController builds a Controller in the Empty state. exporter may be nil.
func NewController(gateway Gateway, store ProfileStore, view View, exporter Exporter, rng *rand.Rand, log logging.Logger) *Controller {
	return &Controller{
		gateway:  gateway,
		store:    store,
		view:     view,
		exporter: exporter,
		rng:      rng,
		log:      log,
		state:    StateEmpty,
	}
}

// State returns the current active-profile state.
func (c *Controller) State() State { return c.state }

// ActiveID returns the active farm id ("" when Empty, "new" when Draft).
func (c *Controller) ActiveID() string { return c.activeID }

// Draft returns the currently staged field values.
func (c *Controller) Draft() models.FarmProfile { return c.draft }

// Results returns the active result set.
func (c *Controller) Results() []models.SpeciesMatch { return c.results }

// ResultsEstimated reports whether the active result set is placeholder data.
func (c *Controller) ResultsEstimated() bool { return c.estimated }

// actionLog returns a logger tagged with the action name and a fresh
// correlation id, so the token-fetch/call/render steps of one user action can
// be tied together.
func (c *Controller) actionLog(action string) logging.Logger {
	return c.log.With("action", action, "action_id", uuid.NewString())
}

// SelectProfile reacts to the farm selector: "" empties the slot, the "new"
// sentinel starts a fresh draft, and anything else resolves a registered
// farm, populating the staged fields on a hit. A failed resolution lands in
// Empty and reports ErrProfileUnavailable.
func (c *Controller) SelectProfile(ctx context.Context, value string) error {
	log := c.actionLog("select_profile")

	switch value {
	case "":
		c.state = StateEmpty
		c.activeID = ""
		c.draft = models.FarmProfile{}
		return nil
	case models.DraftID:
		c.state = StateDraft
		c.activeID = models.DraftID
		c.draft = models.FarmProfile{}
		return nil
	}

	p, err := c.store.Resolve(ctx, value)
	if err != nil {
		log.Warn(ctx, "farm resolution failed", "farm_id", value, "error", err)
		c.state = StateEmpty
		c.activeID = ""
		c.draft = models.FarmProfile{}
		return fmt.Errorf("farm %s: %w", value, ErrProfileUnavailable)
	}

	c.state = StateSelected
	c.activeID = value
	c.draft = p
	log.Info(ctx, "farm selected", "farm_id", value)
	return nil
}

// Generate fetches recommendations for the selected farm and hands the
// resulting set to the view. When no usable remote data is available the
// fixed estimated set is substituted; the user never sees a transport error.
// Calling it without a selected farm is a user error.
func (c *Controller) Generate(ctx context.Context) error {
	log := c.actionLog("generate")

	if c.state != StateSelected {
		return ErrNoProfileSelected
	}

	items, err := c.gateway.FetchRecommendations(ctx, c.activeID)
	if err != nil {
		log.Warn(ctx, "falling back to estimated recommendations", "farm_id", c.activeID, "error", err)
		items = recommend.EstimatedSet()
		c.estimated = true
	} else {
		c.estimated = false
	}

	c.results = items
	c.resultsFarmID = c.activeID
	c.view.ShowResults(c.activeID, items)
	log.Info(ctx, "recommendations ready", "farm_id", c.activeID, "items", len(items), "estimated", c.estimated)
	return nil
}

// SaveDraft persists the staged draft. If remote creation fails the draft is
// registered under a locally synthesized id (registry size + 1) so a backend
// outage never blocks the user. Either way the controller transitions to
// Selected and reports which path was taken.
func (c *Controller) SaveDraft(ctx context.Context) (SaveResult, error) {
	log := c.actionLog("save_draft")

	if c.state != StateDraft {
		return SaveResult{}, ErrNotDraft
	}

	id, err := c.gateway.CreateFarm(ctx, c.draft)
	remote := err == nil
	if err != nil {
		log.Warn(ctx, "remote farm creation failed, saving locally", "error", err)
		n, countErr := c.store.Count(ctx)
		if countErr != nil {
			return SaveResult{}, fmt.Errorf("synthesize local farm id: %w", countErr)
		}
		id = strconv.Itoa(n + 1)
	}

	if err := c.store.Insert(ctx, id, c.draft); err != nil {
		return SaveResult{}, fmt.Errorf("register farm %s: %w", id, err)
	}

	c.state = StateSelected
	c.activeID = id
	log.Info(ctx, "draft saved", "farm_id", id, "remote", remote)
	return SaveResult{ID: id, Remote: remote}, nil
}

// MockFromArea merges a plausible mock environment for the queried area into
// the staged fields. The active-profile state is left untouched; an empty
// query is a user error.
func (c *Controller) MockFromArea(ctx context.Context, query string) error {
	log := c.actionLog("mock_from_area")

	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}

	c.draft = c.mockEnvironment()
	log.Info(ctx, "mock environment staged", "query", query)
	return nil
}

// Export hands the active result set, unmodified, to the export collaborator
// and returns the produced document's location.
func (c *Controller) Export(ctx context.Context) (string, error) {
	log := c.actionLog("export")

	if c.exporter == nil {
		return "", ErrExportUnavailable
	}
	if len(c.results) == 0 {
		return "", ErrNoResults
	}

	location, err := c.exporter.Export(ctx, c.resultsFarmID, c.results)
	if err != nil {
		log.Error(ctx, "export failed", "farm_id", c.resultsFarmID, "error", err)
		return "", fmt.Errorf("export results: %w", err)
	}
	log.Info(ctx, "report exported", "farm_id", c.resultsFarmID, "location", location)
	return location, nil
}

// SetField stages one textual field value on the draft.
func (c *Controller) SetField(name, value string) error {
	switch strings.ToLower(name) {
	case "latitude", "lat":
		c.draft.Latitude = value
	case "longitude", "lon":
		c.draft.Longitude = value
	case "ph":
		c.draft.PH = value
	case "soil", "soiltype":
		c.draft.SoilType = value
	case "rainfall":
		c.draft.Rainfall = value
	case "temperature", "temp":
		c.draft.Temperature = value
	case "altitude", "elevation":
		c.draft.Altitude = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}
