package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
	"github.com/rclogistics/rc-dwgen/internal/warehouse"
)

// testStar builds a small star schema from a seeded dataset.
func testStar(t *testing.T) *warehouse.Star {
	t.Helper()

	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)
	ds, err := datagen.NewGeneratorWithSeed(99).Generate(from, to, 25)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	start, end := datagen.Window(from, to)
	star, err := warehouse.Transform(ds, start, end)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	return star
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	star := testStar(t)

	if err := WriteCSV(dir, star); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	tests := []struct {
		file     string
		firstCol string
		wantRows int
		wantCols int
	}{
		{"DimDate.csv", "DateKey", len(star.DimDate), 10},
		{"DimCustomer.csv", "CustomerKey", len(star.DimCustomer), 6},
		{"DimCity.csv", "CityKey", 10, 4},
		{"DimTransportMode.csv", "ModeKey", 2, 3},
		{"DimStatus.csv", "StatusKey", 5, 3},
		{"FactShipment.csv", "ShipmentKey", 25, 13},
		{"FactRevenue.csv", "RevenueKey", 25, 9},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			f, err := os.Open(filepath.Join(dir, tc.file))
			if err != nil {
				t.Fatalf("missing export: %v", err)
			}
			defer f.Close()

			records, err := csv.NewReader(f).ReadAll()
			if err != nil {
				t.Fatalf("failed to read export: %v", err)
			}

			if len(records) == 0 {
				t.Fatal("empty export")
			}
			header := records[0]
			if header[0] != tc.firstCol {
				t.Errorf("first column = %q, want %q", header[0], tc.firstCol)
			}
			if len(header) != tc.wantCols {
				t.Errorf("column count = %d, want %d", len(header), tc.wantCols)
			}
			if got := len(records) - 1; got != tc.wantRows {
				t.Errorf("data rows = %d, want %d", got, tc.wantRows)
			}
		})
	}
}

func TestWriteCSVBooleanEncoding(t *testing.T) {
	dir := t.TempDir()
	star := testStar(t)

	if err := WriteCSV(dir, star); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "DimDate.csv"))
	if err != nil {
		t.Fatalf("missing DimDate export: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read DimDate export: %v", err)
	}

	// IsWeekend is the last column, encoded 0/1
	for i, rec := range records[1:] {
		v := rec[len(rec)-1]
		if v != "0" && v != "1" {
			t.Fatalf("row %d: IsWeekend = %q, want 0 or 1", i+1, v)
		}
	}
}
