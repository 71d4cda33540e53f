package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"math/rand"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/api"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/config"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/export"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/profiles"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/recommend"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/species"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/workflow"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the REPL to the workflow controller and its collaborators.
type App struct {
	config     *config.Config
	controller *workflow.Controller
	store      *profiles.Store
	catalogue  *species.Catalogue
	log        logging.Logger
	db         *sql.DB
	reader     *bufio.Reader
}

// NewApp builds a fully wired App from the given configuration.
//
// When the configured password is empty, the user is prompted for one on the
// terminal. When S3Bucket is set, reports go to S3; otherwise they are
// written under ExportDir.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := profiles.InitDatabase(ctx, profiles.SessionDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	password := c.Password
	if password == "" {
		pw, err := GetPassword(os.Stdout)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		password = string(pw)
	}

	tokens := api.NewTokenSource(apiClient, c.Username, password)

	store := profiles.NewStore(profiles.NewSQLiteRepository(db), apiClient, tokens, logger)
	gateway := recommend.NewGateway(apiClient, tokens, logger)

	var storage export.Storage
	if c.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storage = export.NewS3Storage(s3.NewFromConfig(awsCfg), c.S3Bucket, c.S3Prefix)
	} else {
		storage = export.NewLocalStorage(c.ExportDir)
	}
	exporter := export.NewReportExporter(storage, logger)

	view := &consoleView{out: os.Stdout}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	controller := workflow.NewController(gateway, store, view, exporter, rng, logger)

	return &App{
		config:     c,
		controller: controller,
		store:      store,
		catalogue:  species.NewCatalogue(apiClient),
		log:        logger,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run pre-populates the farm list, then hands control to the REPL until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.store.Refresh(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the session database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) status() string {
	switch a.controller.State() {
	case workflow.StateDraft:
		return "(draft)"
	case workflow.StateSelected:
		return "(farm " + a.controller.ActiveID() + ")"
	default:
		return ""
	}
}
