// Package sqlstore reads the place table from PostgreSQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"weekenddiaries/adapters/excel"
	"weekenddiaries/domain/place"
)

// Supported driver names, as registered by lib/pq and modernc.org/sqlite.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// every :memory: connection is its own database
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// placeRow mirrors the places table. Every column is raw text; typing happens
// in the sanitizer exactly as for files.
type placeRow struct {
	RowOrder        int            `db:"row_order"`
	ID              sql.NullString `db:"id"`
	PlaceName       sql.NullString `db:"place_name"`
	Category        sql.NullString `db:"category"`
	Subcategory     sql.NullString `db:"subcategory"`
	Description     sql.NullString `db:"description"`
	Location        sql.NullString `db:"location"`
	BestTimeToVisit sql.NullString `db:"best_time_to_visit"`
	Facts           sql.NullString `db:"facts"`
	Rules           sql.NullString `db:"rules"`
	Spooky          sql.NullString `db:"spooky"`
	DistanceFromKm  sql.NullString `db:"distance_from_pune_km"`
	MapLink         sql.NullString `db:"map_link"`
}

func (r placeRow) raw() excel.RawRowData {
	return excel.RawRowData{
		place.ColID:              r.ID.String,
		place.ColName:            r.PlaceName.String,
		place.ColCategory:        r.Category.String,
		place.ColSubcategory:     r.Subcategory.String,
		place.ColDescription:     r.Description.String,
		place.ColLocation:        r.Location.String,
		place.ColBestTimeToVisit: r.BestTimeToVisit.String,
		place.ColFacts:           r.Facts.String,
		place.ColRules:           r.Rules.String,
		place.ColSpooky:          r.Spooky.String,
		place.ColDistanceKm:      r.DistanceFromKm.String,
		place.ColMapLink:         r.MapLink.String,
	}
}

func rowFromRaw(order int, raw excel.RawRowData) placeRow {
	text := func(col string) sql.NullString {
		v := raw[col]
		return sql.NullString{String: v, Valid: v != ""}
	}
	return placeRow{
		RowOrder:        order,
		ID:              text(place.ColID),
		PlaceName:       text(place.ColName),
		Category:        text(place.ColCategory),
		Subcategory:     text(place.ColSubcategory),
		Description:     text(place.ColDescription),
		Location:        text(place.ColLocation),
		BestTimeToVisit: text(place.ColBestTimeToVisit),
		Facts:           text(place.ColFacts),
		Rules:           text(place.ColRules),
		Spooky:          text(place.ColSpooky),
		DistanceFromKm:  text(place.ColDistanceKm),
		MapLink:         text(place.ColMapLink),
	}
}

// PlaceRepository reads raw place rows from the places table
type PlaceRepository struct {
	db *sqlx.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *sqlx.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// LoadRaw returns every row of the places table in insertion order. NULL
// cells come back as empty strings.
func (r *PlaceRepository) LoadRaw(ctx context.Context) (*excel.RawTable, error) {
	query := `SELECT
		row_order, id, place_name, category, subcategory, description, location,
		best_time_to_visit, facts, rules, spooky, distance_from_pune_km, map_link
	FROM places ORDER BY row_order`

	var rows []placeRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}

	table := &excel.RawTable{
		Headers: append([]string(nil), place.RequiredColumns...),
		Rows:    make([]excel.RawRowData, len(rows)),
	}
	for i, row := range rows {
		table.Rows[i] = row.raw()
	}

	log.Printf("[PlaceRepository] Loaded %d raw rows from %s", len(rows), r.db.DriverName())
	return table, nil
}

// ImportRaw appends raw rows after any existing ones in a single transaction.
// It is used by the seeding command only; the service never writes.
func (r *PlaceRepository) ImportRaw(ctx context.Context, table *excel.RawTable) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	var offset int
	if err := tx.GetContext(ctx, &offset, `SELECT COALESCE(MAX(row_order) + 1, 0) FROM places`); err != nil {
		return 0, fmt.Errorf("failed to read row order: %w", err)
	}

	insert := `INSERT INTO places (
		row_order, id, place_name, category, subcategory, description, location,
		best_time_to_visit, facts, rules, spooky, distance_from_pune_km, map_link
	) VALUES (
		:row_order, :id, :place_name, :category, :subcategory, :description, :location,
		:best_time_to_visit, :facts, :rules, :spooky, :distance_from_pune_km, :map_link
	)`

	for i, raw := range table.Rows {
		if _, err := tx.NamedExecContext(ctx, insert, rowFromRaw(offset+i, raw)); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	log.Printf("[PlaceRepository] Imported %d rows", len(table.Rows))
	return len(table.Rows), nil
}
