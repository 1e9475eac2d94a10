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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/warehouse"
)

const pgBatchSize = 500

// postgresSchema mirrors the SQLite DDL with PostgreSQL types.
var postgresSchema = []string{
	`CREATE TABLE "DimDate" (
		"DateKey"     INTEGER PRIMARY KEY,
		"FullDate"    DATE NOT NULL,
		"Year"        INTEGER NOT NULL,
		"Quarter"     INTEGER NOT NULL,
		"Month"       INTEGER NOT NULL,
		"MonthName"   TEXT NOT NULL,
		"Day"         INTEGER NOT NULL,
		"WeekDay"     INTEGER NOT NULL,
		"WeekDayName" TEXT NOT NULL,
		"IsWeekend"   INTEGER NOT NULL
	)`,
	`CREATE TABLE "DimCustomer" (
		"CustomerKey"  INTEGER PRIMARY KEY,
		"CustomerID"   INTEGER NOT NULL UNIQUE,
		"CustomerName" TEXT NOT NULL,
		"Phone"        TEXT NOT NULL,
		"City"         TEXT NOT NULL,
		"CreatedDate"  DATE NOT NULL
	)`,
	`CREATE TABLE "DimCity" (
		"CityKey"  INTEGER PRIMARY KEY,
		"CityName" TEXT NOT NULL UNIQUE,
		"Country"  TEXT NOT NULL,
		"CityType" TEXT NOT NULL
	)`,
	`CREATE TABLE "DimTransportMode" (
		"ModeKey"     INTEGER PRIMARY KEY,
		"ModeName"    TEXT NOT NULL UNIQUE,
		"Description" TEXT NOT NULL
	)`,
	`CREATE TABLE "DimStatus" (
		"StatusKey"   INTEGER PRIMARY KEY,
		"StatusName"  TEXT NOT NULL UNIQUE,
		"Description" TEXT NOT NULL
	)`,
	`CREATE TABLE "FactShipment" (
		"ShipmentKey"             INTEGER PRIMARY KEY,
		"ShipmentID"              INTEGER NOT NULL,
		"BookingID"               INTEGER NOT NULL,
		"CustomerKey"             INTEGER NOT NULL REFERENCES "DimCustomer"("CustomerKey"),
		"OriginCityKey"           INTEGER NOT NULL REFERENCES "DimCity"("CityKey"),
		"DestinationCityKey"      INTEGER NOT NULL REFERENCES "DimCity"("CityKey"),
		"TransportModeKey"        INTEGER NOT NULL REFERENCES "DimTransportMode"("ModeKey"),
		"StatusKey"               INTEGER NOT NULL REFERENCES "DimStatus"("StatusKey"),
		"BookingDateKey"          INTEGER NOT NULL REFERENCES "DimDate"("DateKey"),
		"ShipmentDateKey"         INTEGER NOT NULL REFERENCES "DimDate"("DateKey"),
		"ExpectedDeliveryDateKey" INTEGER NOT NULL REFERENCES "DimDate"("DateKey"),
		"WeightKG"                DOUBLE PRECISION NOT NULL,
		"TransitDays"             INTEGER NOT NULL CHECK ("TransitDays" >= 0)
	)`,
	`CREATE TABLE "FactRevenue" (
		"RevenueKey"     INTEGER PRIMARY KEY,
		"PaymentID"      INTEGER NOT NULL,
		"BookingID"      INTEGER NOT NULL,
		"CustomerKey"    INTEGER NOT NULL REFERENCES "DimCustomer"("CustomerKey"),
		"PaymentDateKey" INTEGER NOT NULL REFERENCES "DimDate"("DateKey"),
		"Amount"         DOUBLE PRECISION NOT NULL,
		"PaymentMethod"  TEXT NOT NULL,
		"WeightKG"       DOUBLE PRECISION NOT NULL CHECK ("WeightKG" > 0),
		"RevenuePerKG"   DOUBLE PRECISION NOT NULL
	)`,
}

// Postgres loads a star schema into a PostgreSQL database.
type Postgres struct {
	connString string
	meta       Metadata
}

// NewPostgres creates a PostgreSQL sink for the given connection string.
func NewPostgres(connString string, meta Metadata) *Postgres {
	return &Postgres{connString: connString, meta: meta}
}

// Load replaces the warehouse contents with the given star schema.
func (p *Postgres) Load(ctx context.Context, star *warehouse.Star) error {
	pool, err := connect(ctx, p.connString)
	if err != nil {
		return err
	}
	defer pool.Close()

	tables := starTables(star)

	// Drop facts before dimensions to satisfy foreign keys
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %q`, tables[i].name)); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i].name, err)
		}
	}
	for _, ddl := range postgresSchema {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, t := range tables {
		if err := insertPostgresTable(ctx, pool, t); err != nil {
			return err
		}
		logging.Debug().
			Str("table", t.name).
			Int("rows", len(t.rows)).
			Msg("Loaded table")
	}

	if err := savePostgresMetadata(ctx, pool, p.meta); err != nil {
		return err
	}

	logging.Info().
		Int("shipment_facts", len(star.FactShipment)).
		Int("revenue_facts", len(star.FactRevenue)).
		Msg("PostgreSQL warehouse load complete")

	return nil
}

// connect establishes a connection pool and verifies it with a ping.
func connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	config.MaxConns = 5
	config.MaxConnLifetime = 30 * time.Minute

	logging.Debug().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Msg("Connecting to PostgreSQL")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// insertPostgresTable writes rows as batched multi-row VALUES statements.
func insertPostgresTable(ctx context.Context, pool *pgxpool.Pool, t table) error {
	quoted := make([]string, len(t.columns))
	for i, c := range t.columns {
		quoted[i] = strconv.Quote(c)
	}
	prefix := fmt.Sprintf(`INSERT INTO %q (%s) VALUES `, t.name, strings.Join(quoted, ", "))

	batch := make([]string, 0, pgBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := pool.Exec(ctx, prefix+strings.Join(batch, ", ")); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", t.name, err)
		}
		batch = batch[:0]
		return nil
	}

	for _, row := range t.rows {
		lits := make([]string, len(row))
		for i, v := range row {
			lits[i] = pgLiteral(v)
		}
		batch = append(batch, "("+strings.Join(lits, ", ")+")")

		if len(batch) >= pgBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

// pgLiteral renders a value as a SQL literal for the multi-row insert.
func pgLiteral(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + x.Format("2006-01-02") + "'"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	default:
		return fmt.Sprintf("%v", x)
	}
}

func savePostgresMetadata(ctx context.Context, pool *pgxpool.Pool, meta Metadata) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS dwgen_metadata (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	for key, value := range metadataValues(meta) {
		if _, err := pool.Exec(ctx, `
			INSERT INTO dwgen_metadata (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`, key, value); err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}
	return nil
}
