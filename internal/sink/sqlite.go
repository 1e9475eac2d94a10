//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/warehouse"
)

// sqliteSchema holds the warehouse DDL. Types follow SQLite affinity;
// dates are stored as ISO-8601 text.
var sqliteSchema = []string{
	`CREATE TABLE DimDate (
		DateKey     INTEGER PRIMARY KEY,
		FullDate    TEXT NOT NULL,
		Year        INTEGER NOT NULL,
		Quarter     INTEGER NOT NULL,
		Month       INTEGER NOT NULL,
		MonthName   TEXT NOT NULL,
		Day         INTEGER NOT NULL,
		WeekDay     INTEGER NOT NULL,
		WeekDayName TEXT NOT NULL,
		IsWeekend   INTEGER NOT NULL
	)`,
	`CREATE TABLE DimCustomer (
		CustomerKey  INTEGER PRIMARY KEY,
		CustomerID   INTEGER NOT NULL UNIQUE,
		CustomerName TEXT NOT NULL,
		Phone        TEXT NOT NULL,
		City         TEXT NOT NULL,
		CreatedDate  TEXT NOT NULL
	)`,
	`CREATE TABLE DimCity (
		CityKey  INTEGER PRIMARY KEY,
		CityName TEXT NOT NULL UNIQUE,
		Country  TEXT NOT NULL,
		CityType TEXT NOT NULL
	)`,
	`CREATE TABLE DimTransportMode (
		ModeKey     INTEGER PRIMARY KEY,
		ModeName    TEXT NOT NULL UNIQUE,
		Description TEXT NOT NULL
	)`,
	`CREATE TABLE DimStatus (
		StatusKey   INTEGER PRIMARY KEY,
		StatusName  TEXT NOT NULL UNIQUE,
		Description TEXT NOT NULL
	)`,
	`CREATE TABLE FactShipment (
		ShipmentKey             INTEGER PRIMARY KEY,
		ShipmentID              INTEGER NOT NULL,
		BookingID               INTEGER NOT NULL,
		CustomerKey             INTEGER NOT NULL REFERENCES DimCustomer(CustomerKey),
		OriginCityKey           INTEGER NOT NULL REFERENCES DimCity(CityKey),
		DestinationCityKey      INTEGER NOT NULL REFERENCES DimCity(CityKey),
		TransportModeKey        INTEGER NOT NULL REFERENCES DimTransportMode(ModeKey),
		StatusKey               INTEGER NOT NULL REFERENCES DimStatus(StatusKey),
		BookingDateKey          INTEGER NOT NULL REFERENCES DimDate(DateKey),
		ShipmentDateKey         INTEGER NOT NULL REFERENCES DimDate(DateKey),
		ExpectedDeliveryDateKey INTEGER NOT NULL REFERENCES DimDate(DateKey),
		WeightKG                REAL NOT NULL,
		TransitDays             INTEGER NOT NULL CHECK (TransitDays >= 0)
	)`,
	`CREATE TABLE FactRevenue (
		RevenueKey     INTEGER PRIMARY KEY,
		PaymentID      INTEGER NOT NULL,
		BookingID      INTEGER NOT NULL,
		CustomerKey    INTEGER NOT NULL REFERENCES DimCustomer(CustomerKey),
		PaymentDateKey INTEGER NOT NULL REFERENCES DimDate(DateKey),
		Amount         REAL NOT NULL,
		PaymentMethod  TEXT NOT NULL,
		WeightKG       REAL NOT NULL CHECK (WeightKG > 0),
		RevenuePerKG   REAL NOT NULL
	)`,
}

// SQLite loads a star schema into an embedded SQLite database file.
type SQLite struct {
	path string
	meta Metadata
}

// NewSQLite creates a SQLite sink writing to path. Use ":memory:" for an
// in-memory database (tests).
func NewSQLite(path string, meta Metadata) *SQLite {
	return &SQLite{path: path, meta: meta}
}

// Load replaces the warehouse contents with the given star schema. All
// tables are dropped, recreated and filled inside one transaction.
func (s *SQLite) Load(ctx context.Context, star *warehouse.Star) error {
	dsn := s.path
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", s.path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tables := starTables(star)

	// Drop facts before dimensions to satisfy foreign keys
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tables[i].name)); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i].name, err)
		}
	}
	for _, ddl := range sqliteSchema {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, t := range tables {
		if err := insertSQLiteTable(ctx, tx, t); err != nil {
			return err
		}
		logging.Debug().
			Str("table", t.name).
			Int("rows", len(t.rows)).
			Msg("Loaded table")
	}

	if err := saveSQLiteMetadata(ctx, tx, s.meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit warehouse load: %w", err)
	}

	logging.Info().
		Str("path", s.path).
		Int("shipment_facts", len(star.FactShipment)).
		Int("revenue_facts", len(star.FactRevenue)).
		Msg("SQLite warehouse load complete")

	return nil
}

func insertSQLiteTable(ctx context.Context, tx *sql.Tx, t table) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", t.name, err)
	}
	defer stmt.Close()

	for _, row := range t.rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = sqliteValue(v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", t.name, err)
		}
	}
	return nil
}

// sqliteValue maps Go values onto the storage conventions above.
func sqliteValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format("2006-01-02")
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return v
	}
}

func saveSQLiteMetadata(ctx context.Context, tx *sql.Tx, meta Metadata) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS dwgen_metadata`); err != nil {
		return fmt.Errorf("failed to drop metadata table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE dwgen_metadata (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	for key, value := range metadataValues(meta) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dwgen_metadata (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}
	return nil
}

func metadataValues(meta Metadata) map[string]string {
	return map[string]string{
		"version":   meta.Version,
		"records":   fmt.Sprintf("%d", meta.Records),
		"loaded_at": meta.LoadedAt.UTC().Format(time.RFC3339),
	}
}
