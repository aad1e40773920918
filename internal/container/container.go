package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"weekenddiaries/adapters/rng"
	"weekenddiaries/adapters/sqlstore"
	"weekenddiaries/app"
	"weekenddiaries/internal"
	"weekenddiaries/internal/config"
	"weekenddiaries/internal/dataset"
	"weekenddiaries/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure; DB is nil when places come from files
	DB *sqlx.DB

	// Data access
	Source *dataset.CachedSource
	RNG    ports.RNGPort

	// Services
	PlaceService *app.PlaceService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		Logger: internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level)),
		RNG:    rng.NewFreshRNG(),
	}

	return c, nil
}

// Init wires the place source and services. A database is opened only when
// one is configured; file sources are read lazily on first use.
func (c *Container) Init(ctx context.Context) error {
	source, err := c.initSource(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize place source: %w", err)
	}

	c.Source = dataset.NewCachedSource(source)
	c.PlaceService = app.NewPlaceService(c.Source, c.RNG, c.Logger)

	c.Logger.With("Container").Info("initialized with %s", source)
	return nil
}

// InitWithSource wires services over an existing source. Tests use it to
// inject fixtures.
func (c *Container) InitWithSource(source ports.PlaceSource) {
	c.Source = dataset.NewCachedSource(source)
	c.PlaceService = app.NewPlaceService(c.Source, c.RNG, c.Logger)
}

func (c *Container) initSource(ctx context.Context) (placeSource, error) {
	if !c.Config.Database.Enabled() {
		return dataset.NewLoader(dataset.LoaderConfig{
			Path:             c.Config.Data.File,
			FallbackPath:     c.Config.Data.FallbackFile,
			FallbackEncoding: c.Config.Data.FallbackEncoding,
		}), nil
	}

	db, err := sqlstore.Open(ctx, c.Config.Database.Driver, c.Config.Database.URL)
	if err != nil {
		return nil, err
	}
	c.DB = db
	return dataset.NewRawLoader(c.Config.Database.Driver, sqlstore.NewPlaceRepository(db)), nil
}

// placeSource is a PlaceSource that can describe itself in logs.
type placeSource interface {
	ports.PlaceSource
	fmt.Stringer
}

// Close releases the database connection, if any.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
