package flatfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/datagen"
	"github.com/rclogistics/rc-dwgen/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)
	ds, err := datagen.NewGeneratorWithSeed(11).Generate(from, to, 40)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if err := Save(dir, ds); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	for _, name := range []string{CustomersFile, BookingsFile, ShipmentsFile, PaymentsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s after Save(): %v", name, err)
		}
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(got.Customers, ds.Customers) {
		t.Error("customers differ after round trip")
	}
	if !reflect.DeepEqual(got.Bookings, ds.Bookings) {
		t.Error("bookings differ after round trip")
	}
	if !reflect.DeepEqual(got.Shipments, ds.Shipments) {
		t.Error("shipments differ after round trip")
	}
	if !reflect.DeepEqual(got.Payments, ds.Payments) {
		t.Error("payments differ after round trip")
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Load() succeeded on a missing directory")
	}
}

func TestLoadRejectsMalformedField(t *testing.T) {
	dir := t.TempDir()

	ds := model.Dataset{
		Customers: []model.Customer{{
			CustomerID: 1, Name: "Test", Phone: "0500000000", City: "Dubai",
			CreatedDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		}},
	}
	if err := Save(dir, ds); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Corrupt the CustomerID field
	path := filepath.Join(dir, CustomersFile)
	data := "CustomerID,Name,Phone,City,CreatedDate\nnot-a-number,Test,0500000000,Dubai,2022-03-01\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() accepted a non-numeric CustomerID")
	}
}

func TestLoadRejectsWrongFieldCount(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, model.Dataset{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path := filepath.Join(dir, BookingsFile)
	data := "BookingID,CustomerID\n1,1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() accepted a bookings file with missing columns")
	}
}
