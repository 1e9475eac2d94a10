//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package flatfile persists the flat transactional tables as headered
// CSV files and reads them back for transformation.
package flatfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/model"
)

const dateFormat = "2006-01-02"

// File names inside the data directory.
const (
	CustomersFile = "customers.csv"
	BookingsFile  = "bookings.csv"
	ShipmentsFile = "shipments.csv"
	PaymentsFile  = "payments.csv"
)

// Save writes the four flat tables into dir, creating it if needed.
func Save(dir string, ds model.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	customers := make([][]string, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		customers = append(customers, []string{
			strconv.Itoa(c.CustomerID), c.Name, c.Phone, c.City,
			c.CreatedDate.Format(dateFormat),
		})
	}
	if err := writeCSV(dir, CustomersFile,
		[]string{"CustomerID", "Name", "Phone", "City", "CreatedDate"}, customers); err != nil {
		return err
	}

	bookings := make([][]string, 0, len(ds.Bookings))
	for _, b := range ds.Bookings {
		bookings = append(bookings, []string{
			strconv.Itoa(b.BookingID), strconv.Itoa(b.CustomerID),
			b.BookingDate.Format(dateFormat), b.Origin, b.Destination, b.Mode,
			strconv.FormatFloat(b.WeightKG, 'f', 2, 64), b.Status,
		})
	}
	if err := writeCSV(dir, BookingsFile,
		[]string{"BookingID", "CustomerID", "BookingDate", "Origin", "Destination", "Mode", "WeightKG", "Status"},
		bookings); err != nil {
		return err
	}

	shipments := make([][]string, 0, len(ds.Shipments))
	for _, s := range ds.Shipments {
		shipments = append(shipments, []string{
			strconv.Itoa(s.ShipmentID), strconv.Itoa(s.BookingID),
			s.ShipmentDate.Format(dateFormat), s.ExpectedDelivery.Format(dateFormat),
			s.Tracking, s.Status,
		})
	}
	if err := writeCSV(dir, ShipmentsFile,
		[]string{"ShipmentID", "BookingID", "ShipmentDate", "ExpectedDelivery", "Tracking", "Status"},
		shipments); err != nil {
		return err
	}

	payments := make([][]string, 0, len(ds.Payments))
	for _, p := range ds.Payments {
		payments = append(payments, []string{
			strconv.Itoa(p.PaymentID), strconv.Itoa(p.BookingID),
			strconv.FormatFloat(p.Amount, 'f', 2, 64), p.Method,
			p.Date.Format(dateFormat), p.Status,
		})
	}
	if err := writeCSV(dir, PaymentsFile,
		[]string{"PaymentID", "BookingID", "Amount", "Method", "Date", "Status"},
		payments); err != nil {
		return err
	}

	logging.Info().Str("dir", dir).Msg("Saved flat dataset")
	return nil
}

// Load reads the four flat tables back from dir.
func Load(dir string) (model.Dataset, error) {
	var ds model.Dataset

	customers, err := readCSV(dir, CustomersFile, 5)
	if err != nil {
		return ds, err
	}
	for i, rec := range customers {
		row := newRowParser(CustomersFile, i, rec)
		c := model.Customer{
			CustomerID:  row.intAt(0),
			Name:        rec[1],
			Phone:       rec[2],
			City:        rec[3],
			CreatedDate: row.dateAt(4),
		}
		if err := row.err(); err != nil {
			return ds, err
		}
		ds.Customers = append(ds.Customers, c)
	}

	bookings, err := readCSV(dir, BookingsFile, 8)
	if err != nil {
		return ds, err
	}
	for i, rec := range bookings {
		row := newRowParser(BookingsFile, i, rec)
		b := model.Booking{
			BookingID:   row.intAt(0),
			CustomerID:  row.intAt(1),
			BookingDate: row.dateAt(2),
			Origin:      rec[3],
			Destination: rec[4],
			Mode:        rec[5],
			WeightKG:    row.floatAt(6),
			Status:      rec[7],
		}
		if err := row.err(); err != nil {
			return ds, err
		}
		ds.Bookings = append(ds.Bookings, b)
	}

	shipments, err := readCSV(dir, ShipmentsFile, 6)
	if err != nil {
		return ds, err
	}
	for i, rec := range shipments {
		row := newRowParser(ShipmentsFile, i, rec)
		s := model.Shipment{
			ShipmentID:       row.intAt(0),
			BookingID:        row.intAt(1),
			ShipmentDate:     row.dateAt(2),
			ExpectedDelivery: row.dateAt(3),
			Tracking:         rec[4],
			Status:           rec[5],
		}
		if err := row.err(); err != nil {
			return ds, err
		}
		ds.Shipments = append(ds.Shipments, s)
	}

	payments, err := readCSV(dir, PaymentsFile, 6)
	if err != nil {
		return ds, err
	}
	for i, rec := range payments {
		row := newRowParser(PaymentsFile, i, rec)
		p := model.Payment{
			PaymentID: row.intAt(0),
			BookingID: row.intAt(1),
			Amount:    row.floatAt(2),
			Method:    rec[3],
			Date:      row.dateAt(4),
			Status:    rec[5],
		}
		if err := row.err(); err != nil {
			return ds, err
		}
		ds.Payments = append(ds.Payments, p)
	}

	logging.Info().
		Str("dir", dir).
		Int("customers", len(ds.Customers)).
		Int("bookings", len(ds.Bookings)).
		Msg("Loaded flat dataset")

	return ds, nil
}

func writeCSV(dir, name string, header []string, rows [][]string) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows of %s: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return f.Close()
}

func readCSV(dir, name string, wantFields int) ([][]string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = wantFields
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", name)
	}
	return records[1:], nil
}

// rowParser accumulates the first conversion error of a record so each
// field access stays a one-liner.
type rowParser struct {
	file    string
	line    int // 1-based data row
	rec     []string
	firstEr error
}

func newRowParser(file string, idx int, rec []string) *rowParser {
	return &rowParser{file: file, line: idx + 1, rec: rec}
}

func (r *rowParser) intAt(i int) int {
	if r.firstEr != nil {
		return 0
	}
	v, err := strconv.Atoi(r.rec[i])
	if err != nil {
		r.firstEr = fmt.Errorf("%s line %d: field %d: %w", r.file, r.line, i+1, err)
	}
	return v
}

func (r *rowParser) floatAt(i int) float64 {
	if r.firstEr != nil {
		return 0
	}
	v, err := strconv.ParseFloat(r.rec[i], 64)
	if err != nil {
		r.firstEr = fmt.Errorf("%s line %d: field %d: %w", r.file, r.line, i+1, err)
	}
	return v
}

func (r *rowParser) dateAt(i int) time.Time {
	if r.firstEr != nil {
		return time.Time{}
	}
	v, err := time.ParseInLocation(dateFormat, r.rec[i], time.UTC)
	if err != nil {
		r.firstEr = fmt.Errorf("%s line %d: field %d: %w", r.file, r.line, i+1, err)
	}
	return v
}

func (r *rowParser) err() error {
	return r.firstEr
}
