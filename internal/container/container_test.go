package container

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekenddiaries/adapters/excel"
	"weekenddiaries/adapters/sqlstore"
	"weekenddiaries/domain/core"
	"weekenddiaries/internal/config"
	"weekenddiaries/internal/migration"
	"weekenddiaries/internal/testkit"
)

func testConfig(file string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8080", APIPort: "5000", GinMode: "test"},
		Data:   config.DataConfig{File: file},
		UI:     config.UIConfig{WeekendPicks: 3},
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestInit_FileSource(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "places_expand.csv", testkit.SampleCSV)
	c, err := New(testConfig(path))
	require.NoError(t, err)
	require.NoError(t, c.Init(context.Background()))
	defer c.Close()

	assert.Nil(t, c.DB)
	cats, err := c.PlaceService.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 4)
}

func TestInit_MissingFileFailsLazily(t *testing.T) {
	c, err := New(testConfig(filepath.Join(t.TempDir(), "missing.csv")))
	require.NoError(t, err)
	require.NoError(t, c.Init(context.Background()), "startup never fails on missing data")

	_, err = c.PlaceService.Categories(context.Background())
	assert.True(t, core.IsDataUnavailable(err))
}

func TestInit_SQLiteSource(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "places.db")

	db, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, dbPath)
	require.NoError(t, err)
	require.NoError(t, migration.NewRunner().Run(ctx, db))
	raw, err := excel.NewDataReader(excel.DefaultReaderConfig(
		testkit.WriteFile(t, t.TempDir(), "seed.csv", testkit.SampleCSV))).ReadData()
	require.NoError(t, err)
	_, err = sqlstore.NewPlaceRepository(db).ImportRaw(ctx, raw)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := testConfig("unused.csv")
	cfg.Database = config.DatabaseConfig{Driver: "sqlite", URL: dbPath}
	c, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, c.Init(ctx))
	defer c.Close()

	require.NotNil(t, c.DB)
	p, err := c.PlaceService.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Shaniwar Wada", p.Name)
	assert.True(t, p.Spooky)
}
