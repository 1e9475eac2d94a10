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
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/warehouse"
)

// WriteCSV writes each star schema table to <dir>/<TableName>.csv with a
// header row and a stable column order.
func WriteCSV(dir string, star *warehouse.Star) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create star schema directory: %w", err)
	}

	for _, t := range starTables(star) {
		if err := writeTableCSV(dir, t); err != nil {
			return err
		}
		logging.Debug().
			Str("table", t.name).
			Int("rows", len(t.rows)).
			Msg("Wrote star table")
	}

	logging.Info().Str("dir", dir).Msg("Star schema CSV export complete")
	return nil
}

func writeTableCSV(dir string, t table) error {
	path := filepath.Join(dir, t.name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.columns); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", t.name, err)
	}

	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = formatCSVValue(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row of %s: %w", t.name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", t.name, err)
	}
	return f.Close()
}

func formatCSVValue(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		// Booleans are encoded 0/1, matching the SQLite schema
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return x.Format("2006-01-02")
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
