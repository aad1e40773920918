package sqlstore

import (
	"context"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekenddiaries/adapters/excel"
	"weekenddiaries/domain/place"
	"weekenddiaries/internal/dataset"
	"weekenddiaries/internal/migration"
	"weekenddiaries/internal/testkit"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migration.NewRunner().Run(ctx, db))
	return db
}

func TestPlaceRepository_ImportThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(openTestDB(t))

	raw, err := excel.ReadCSV(strings.NewReader(testkit.SampleCSV), "")
	require.NoError(t, err)

	n, err := repo.ImportRaw(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	loaded, err := repo.LoadRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, place.RequiredColumns, loaded.Headers)
	require.Len(t, loaded.Rows, 4)
	assert.Equal(t, "25 km", loaded.Rows[0][place.ColDistanceKm])
	assert.Equal(t, "", loaded.Rows[3][place.ColDistanceKm], "NULL reads back as empty")
}

func TestPlaceRepository_SanitizesLikeFiles(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(openTestDB(t))

	raw, err := excel.ReadCSV(strings.NewReader(testkit.SampleCSV), "")
	require.NoError(t, err)
	_, err = repo.ImportRaw(ctx, raw)
	require.NoError(t, err)

	fromDB, err := dataset.NewRawLoader("sqlite", repo).Load(ctx)
	require.NoError(t, err)
	fromFile := dataset.NewSanitizer().Sanitize(raw)

	assert.Equal(t, fromFile.Places(), fromDB.Places())
}

func TestPlaceRepository_ImportAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepository(openTestDB(t))

	first := &excel.RawTable{Headers: []string{"place_name"}, Rows: []excel.RawRowData{{"place_name": "A"}}}
	second := &excel.RawTable{Headers: []string{"place_name"}, Rows: []excel.RawRowData{{"place_name": "B"}, {"place_name": "C"}}}
	_, err := repo.ImportRaw(ctx, first)
	require.NoError(t, err)
	_, err = repo.ImportRaw(ctx, second)
	require.NoError(t, err)

	table, err := dataset.NewRawLoader("sqlite", repo).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"A_0", "B_1", "C_2"}, []string{table.At(0).ID, table.At(1).ID, table.At(2).ID})
}

func TestPlaceRepository_MissingTable(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = dataset.NewRawLoader("sqlite", NewPlaceRepository(db)).Load(ctx)
	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn")
	assert.Error(t, err)
}
