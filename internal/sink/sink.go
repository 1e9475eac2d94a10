//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package sink persists a star schema to durable storage: CSV files, an
// embedded SQLite warehouse, or a PostgreSQL database. The transform has
// no knowledge of which sink receives its output.
package sink

import (
	"context"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/warehouse"
)

// Warehouse is a destination that can receive one run's star schema.
type Warehouse interface {
	// Load writes all seven tables, replacing any previous contents.
	Load(ctx context.Context, star *warehouse.Star) error
}

// Metadata describes one warehouse load for the metadata table.
type Metadata struct {
	Version  string
	Records  int
	LoadedAt time.Time
}

// table is a uniform row-oriented view of one star schema table, shared
// by every sink so column order stays identical everywhere.
type table struct {
	name    string
	columns []string
	rows    [][]any
}

// starTables flattens the star schema into ordered tables. Dimension
// tables come first so a relational sink can enforce foreign keys.
func starTables(star *warehouse.Star) []table {
	tables := make([]table, 0, 7)

	dimDate := table{
		name: "DimDate",
		columns: []string{"DateKey", "FullDate", "Year", "Quarter", "Month",
			"MonthName", "Day", "WeekDay", "WeekDayName", "IsWeekend"},
	}
	for _, r := range star.DimDate {
		dimDate.rows = append(dimDate.rows, []any{
			r.DateKey, r.FullDate, r.Year, r.Quarter, r.Month,
			r.MonthName, r.Day, r.WeekDay, r.WeekDayName, r.IsWeekend,
		})
	}
	tables = append(tables, dimDate)

	dimCustomer := table{
		name:    "DimCustomer",
		columns: []string{"CustomerKey", "CustomerID", "CustomerName", "Phone", "City", "CreatedDate"},
	}
	for _, r := range star.DimCustomer {
		dimCustomer.rows = append(dimCustomer.rows, []any{
			r.CustomerKey, r.CustomerID, r.CustomerName, r.Phone, r.City, r.CreatedDate,
		})
	}
	tables = append(tables, dimCustomer)

	dimCity := table{
		name:    "DimCity",
		columns: []string{"CityKey", "CityName", "Country", "CityType"},
	}
	for _, r := range star.DimCity {
		dimCity.rows = append(dimCity.rows, []any{r.CityKey, r.CityName, r.Country, r.CityType})
	}
	tables = append(tables, dimCity)

	dimMode := table{
		name:    "DimTransportMode",
		columns: []string{"ModeKey", "ModeName", "Description"},
	}
	for _, r := range star.DimTransportMode {
		dimMode.rows = append(dimMode.rows, []any{r.ModeKey, r.ModeName, r.Description})
	}
	tables = append(tables, dimMode)

	dimStatus := table{
		name:    "DimStatus",
		columns: []string{"StatusKey", "StatusName", "Description"},
	}
	for _, r := range star.DimStatus {
		dimStatus.rows = append(dimStatus.rows, []any{r.StatusKey, r.StatusName, r.Description})
	}
	tables = append(tables, dimStatus)

	factShipment := table{
		name: "FactShipment",
		columns: []string{"ShipmentKey", "ShipmentID", "BookingID", "CustomerKey",
			"OriginCityKey", "DestinationCityKey", "TransportModeKey", "StatusKey",
			"BookingDateKey", "ShipmentDateKey", "ExpectedDeliveryDateKey",
			"WeightKG", "TransitDays"},
	}
	for _, r := range star.FactShipment {
		factShipment.rows = append(factShipment.rows, []any{
			r.ShipmentKey, r.ShipmentID, r.BookingID, r.CustomerKey,
			r.OriginCityKey, r.DestinationCityKey, r.TransportModeKey, r.StatusKey,
			r.BookingDateKey, r.ShipmentDateKey, r.ExpectedDeliveryDateKey,
			r.WeightKG, r.TransitDays,
		})
	}
	tables = append(tables, factShipment)

	factRevenue := table{
		name: "FactRevenue",
		columns: []string{"RevenueKey", "PaymentID", "BookingID", "CustomerKey",
			"PaymentDateKey", "Amount", "PaymentMethod", "WeightKG", "RevenuePerKG"},
	}
	for _, r := range star.FactRevenue {
		factRevenue.rows = append(factRevenue.rows, []any{
			r.RevenueKey, r.PaymentID, r.BookingID, r.CustomerKey,
			r.PaymentDateKey, r.Amount, r.PaymentMethod, r.WeightKG, r.RevenuePerKG,
		})
	}
	tables = append(tables, factRevenue)

	return tables
}
