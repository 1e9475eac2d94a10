package datagen

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/model"
)

func window() (time.Time, time.Time) {
	return time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)
}

func TestGenerateCounts(t *testing.T) {
	from, to := window()
	ds, err := NewGeneratorWithSeed(1).Generate(from, to, 100)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, tc := range []struct {
		table string
		got   int
	}{
		{"customers", len(ds.Customers)},
		{"bookings", len(ds.Bookings)},
		{"shipments", len(ds.Shipments)},
		{"payments", len(ds.Payments)},
	} {
		if tc.got != 100 {
			t.Errorf("%s = %d rows, want 100", tc.table, tc.got)
		}
	}
}

func TestGenerateDenseIdentifiers(t *testing.T) {
	from, to := window()
	ds, err := NewGeneratorWithSeed(2).Generate(from, to, 50)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i := 0; i < 50; i++ {
		want := i + 1
		if ds.Customers[i].CustomerID != want {
			t.Fatalf("Customers[%d].CustomerID = %d, want %d", i, ds.Customers[i].CustomerID, want)
		}
		if ds.Bookings[i].BookingID != want || ds.Bookings[i].CustomerID != want {
			t.Fatalf("Bookings[%d] ids = (%d, %d), want (%d, %d)",
				i, ds.Bookings[i].BookingID, ds.Bookings[i].CustomerID, want, want)
		}
		if ds.Shipments[i].BookingID != want {
			t.Fatalf("Shipments[%d].BookingID = %d, want %d", i, ds.Shipments[i].BookingID, want)
		}
		if ds.Payments[i].BookingID != want {
			t.Fatalf("Payments[%d].BookingID = %d, want %d", i, ds.Payments[i].BookingID, want)
		}
	}
}

func TestGenerateDateOrdering(t *testing.T) {
	from, to := window()
	ds, err := NewGeneratorWithSeed(3).Generate(from, to, 200)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i, b := range ds.Bookings {
		if b.BookingDate.Before(from) || b.BookingDate.After(to) {
			t.Errorf("booking %d: date %s outside window", b.BookingID, b.BookingDate.Format("2006-01-02"))
		}

		s := ds.Shipments[i]
		lag := int(s.ShipmentDate.Sub(b.BookingDate).Hours() / 24)
		if lag < 1 || lag > 3 {
			t.Errorf("shipment %d: ships %d days after booking, want 1-3", s.ShipmentID, lag)
		}
		transit := int(s.ExpectedDelivery.Sub(s.ShipmentDate).Hours() / 24)
		if transit < 3 || transit > 15 {
			t.Errorf("shipment %d: %d transit days, want 3-15", s.ShipmentID, transit)
		}

		if !ds.Payments[i].Date.Equal(b.BookingDate) {
			t.Errorf("payment %d: date differs from booking date", ds.Payments[i].PaymentID)
		}
	}
}

func TestGenerateMeasureRanges(t *testing.T) {
	from, to := window()
	ds, err := NewGeneratorWithSeed(4).Generate(from, to, 200)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i, b := range ds.Bookings {
		if b.WeightKG < 5 || b.WeightKG > 500 {
			t.Errorf("booking %d: weight %v outside 5-500", b.BookingID, b.WeightKG)
		}

		ratio := ds.Payments[i].Amount / b.WeightKG
		// Rounding the amount to two decimals can nudge the ratio
		// slightly past the endpoints.
		if ratio < 3.9 || ratio > 8.1 {
			t.Errorf("payment %d: rate %v per kg outside 4-8", ds.Payments[i].PaymentID, ratio)
		}
	}
}

func TestGenerateVocabularies(t *testing.T) {
	from, to := window()
	ds, err := NewGeneratorWithSeed(5).Generate(from, to, 200)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	origins := toSet(model.OriginCityNames())
	destinations := toSet(model.DestinationCityNames())
	cities := toSet(model.CityNames())
	modes := toSet(model.TransportModeNames())
	statuses := toSet(model.StatusNames())
	methods := toSet(model.PaymentMethods)

	for _, c := range ds.Customers {
		if !cities[c.City] {
			t.Errorf("customer %d: unknown city %q", c.CustomerID, c.City)
		}
	}
	for i, b := range ds.Bookings {
		if !origins[b.Origin] {
			t.Errorf("booking %d: unknown origin %q", b.BookingID, b.Origin)
		}
		if !destinations[b.Destination] {
			t.Errorf("booking %d: unknown destination %q", b.BookingID, b.Destination)
		}
		if !modes[b.Mode] {
			t.Errorf("booking %d: unknown mode %q", b.BookingID, b.Mode)
		}
		if !statuses[b.Status] {
			t.Errorf("booking %d: unknown status %q", b.BookingID, b.Status)
		}
		if ds.Shipments[i].Status != b.Status {
			t.Errorf("shipment %d: status %q differs from booking status %q",
				ds.Shipments[i].ShipmentID, ds.Shipments[i].Status, b.Status)
		}
	}
	for _, p := range ds.Payments {
		if !methods[p.Method] {
			t.Errorf("payment %d: unknown method %q", p.PaymentID, p.Method)
		}
		if p.Status != "Paid" {
			t.Errorf("payment %d: status %q, want Paid", p.PaymentID, p.Status)
		}
	}
}

func TestGenerateTrackingNumbers(t *testing.T) {
	from, to := window()
	ds, err := NewGeneratorWithSeed(6).Generate(from, to, 20)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i, s := range ds.Shipments {
		if !strings.HasPrefix(s.Tracking, "RCPL2022") {
			t.Errorf("shipment %d: tracking %q lacks RCPL2022 prefix", s.ShipmentID, s.Tracking)
		}
		if want := fmt.Sprintf("%06d", i+1); !strings.HasSuffix(s.Tracking, want) {
			t.Errorf("shipment %d: tracking %q lacks sequence %s", s.ShipmentID, s.Tracking, want)
		}
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	from, to := window()

	a, err := NewGeneratorWithSeed(42).Generate(from, to, 30)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := NewGeneratorWithSeed(42).Generate(from, to, 30)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for i := range a.Customers {
		if a.Customers[i] != b.Customers[i] {
			t.Fatalf("customer %d differs between identically seeded runs", i+1)
		}
		if a.Bookings[i] != b.Bookings[i] {
			t.Fatalf("booking %d differs between identically seeded runs", i+1)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	from, to := window()

	if _, err := NewGeneratorWithSeed(1).Generate(from, to, 0); err == nil {
		t.Error("Generate() accepted zero records")
	}
	if _, err := NewGeneratorWithSeed(1).Generate(to, from, 10); err == nil {
		t.Error("Generate() accepted a reversed date window")
	}
}

func TestWindowCoversTrailingDates(t *testing.T) {
	from, to := window()
	start, end := Window(from, to)

	if !start.Equal(from) {
		t.Errorf("Window() start = %s, want %s", start.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	if want := to.AddDate(0, 0, 18); !end.Equal(want) {
		t.Errorf("Window() end = %s, want %s", end.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	// Every generated date must land inside the widened window
	ds, err := NewGeneratorWithSeed(7).Generate(from, to, 300)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, s := range ds.Shipments {
		if s.ExpectedDelivery.After(end) {
			t.Errorf("shipment %d: delivery %s past window end", s.ShipmentID,
				s.ExpectedDelivery.Format("2006-01-02"))
		}
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
