//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package warehouse implements the dimensional transform: it reshapes the
// flat transactional dataset into a star schema of five dimension tables
// and two fact tables.
//
// Dimension builders are pure functions. Lookup maps are returned as
// explicit values and passed to the fact builders, never held as hidden
// state. Surrogate keys for customers and facts are dense 1..N and
// regenerated on every run; only DateKey (calendar-encoded) and the fixed
// enumeration keys are stable across runs.
package warehouse

import (
	"time"

	"github.com/rclogistics/rc-dwgen/internal/model"
)

// DimDate is one calendar day. DateKey encodes the date as YYYYMMDD.
type DimDate struct {
	DateKey     int
	FullDate    time.Time
	Year        int
	Quarter     int
	Month       int
	MonthName   string
	Day         int
	WeekDay     int // ISO weekday, Monday=1 .. Sunday=7
	WeekDayName string
	IsWeekend   bool
}

// DimCustomer is one source customer with a per-run surrogate key.
type DimCustomer struct {
	CustomerKey  int
	CustomerID   int
	CustomerName string
	Phone        string
	City         string
	CreatedDate  time.Time
}

// DimCity is one reference city with a static surrogate key.
type DimCity struct {
	CityKey  int
	CityName string
	Country  string
	CityType string
}

// DimTransportMode is one transport mode with a static surrogate key.
type DimTransportMode struct {
	ModeKey     int
	ModeName    string
	Description string
}

// DimStatus is one lifecycle status with a static surrogate key.
type DimStatus struct {
	StatusKey   int
	StatusName  string
	Description string
}

// Lookups holds the natural-key to surrogate-key maps built by the
// dimension builders. Fact construction is a single pass with O(1)
// resolution through these maps.
type Lookups struct {
	Customers map[int]int    // CustomerID -> CustomerKey
	Cities    map[string]int // CityName -> CityKey
	Modes     map[string]int // ModeName -> ModeKey
	Statuses  map[string]int // StatusName -> StatusKey
	Dates     map[int]bool   // DateKey present in DimDate
}

// DateKey encodes a calendar date as year*10000 + month*100 + day.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// BuildDateDimension produces one row per calendar day in the inclusive
// range [start, end]. Every attribute is a pure function of the date.
// Returns a RangeError if end precedes start.
func BuildDateDimension(start, end time.Time) ([]DimDate, map[int]bool, error) {
	start = midnight(start)
	end = midnight(end)
	if end.Before(start) {
		return nil, nil, &RangeError{Start: start, End: end}
	}

	days := daysBetween(start, end) + 1
	rows := make([]DimDate, 0, days)
	keys := make(map[int]bool, days)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := isoWeekday(d)
		row := DimDate{
			DateKey:     DateKey(d),
			FullDate:    d,
			Year:        d.Year(),
			Quarter:     (int(d.Month())-1)/3 + 1,
			Month:       int(d.Month()),
			MonthName:   d.Month().String(),
			Day:         d.Day(),
			WeekDay:     wd,
			WeekDayName: d.Weekday().String(),
			IsWeekend:   wd >= 6,
		}
		rows = append(rows, row)
		keys[row.DateKey] = true
	}

	return rows, keys, nil
}

// BuildCustomerDimension assigns surrogate keys 1..N in input row order
// and returns the CustomerID lookup map. A duplicate natural CustomerID
// is a referential failure: two rows claiming one natural key would make
// fact resolution ambiguous.
func BuildCustomerDimension(customers []model.Customer) ([]DimCustomer, map[int]int, error) {
	rows := make([]DimCustomer, 0, len(customers))
	lookup := make(map[int]int, len(customers))

	for i, c := range customers {
		if _, dup := lookup[c.CustomerID]; dup {
			return nil, nil, &ReferentialError{
				Table:  "DimCustomer",
				Column: "CustomerID",
				Key:    c.CustomerID,
			}
		}
		key := i + 1
		rows = append(rows, DimCustomer{
			CustomerKey:  key,
			CustomerID:   c.CustomerID,
			CustomerName: c.Name,
			Phone:        c.Phone,
			City:         c.City,
			CreatedDate:  c.CreatedDate,
		})
		lookup[c.CustomerID] = key
	}

	return rows, lookup, nil
}

// BuildCityDimension returns the fixed reference city table with
// statically assigned keys, and the CityName lookup map.
func BuildCityDimension() ([]DimCity, map[string]int) {
	rows := make([]DimCity, 0, len(model.Cities))
	lookup := make(map[string]int, len(model.Cities))

	for i, c := range model.Cities {
		key := i + 1
		rows = append(rows, DimCity{
			CityKey:  key,
			CityName: c.Name,
			Country:  c.Country,
			CityType: c.Role,
		})
		lookup[c.Name] = key
	}

	return rows, lookup
}

// BuildTransportModeDimension returns the fixed transport mode table and
// its lookup map, keys assigned in declaration order.
func BuildTransportModeDimension() ([]DimTransportMode, map[string]int) {
	rows := make([]DimTransportMode, 0, len(model.TransportModes))
	lookup := make(map[string]int, len(model.TransportModes))

	for i, m := range model.TransportModes {
		key := i + 1
		rows = append(rows, DimTransportMode{
			ModeKey:     key,
			ModeName:    m.Name,
			Description: m.Description,
		})
		lookup[m.Name] = key
	}

	return rows, lookup
}

// BuildStatusDimension returns the fixed status table and its lookup map.
// Keys follow lifecycle order: Booked(1) through Delivered(5).
func BuildStatusDimension() ([]DimStatus, map[string]int) {
	rows := make([]DimStatus, 0, len(model.Statuses))
	lookup := make(map[string]int, len(model.Statuses))

	for i, s := range model.Statuses {
		key := i + 1
		rows = append(rows, DimStatus{
			StatusKey:   key,
			StatusName:  s.Name,
			Description: s.Description,
		})
		lookup[s.Name] = key
	}

	return rows, lookup
}

// midnight truncates a timestamp to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference b-a between two dates.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)) / (24 * time.Hour))
}

// isoWeekday maps Go's Sunday-based weekday to ISO Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}
