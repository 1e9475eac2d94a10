//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"time"

	"github.com/rclogistics/rc-dwgen/internal/model"
)

// Star holds one run's complete star schema. It exists only in memory
// until handed to a sink.
type Star struct {
	DimDate          []DimDate
	DimCustomer      []DimCustomer
	DimCity          []DimCity
	DimTransportMode []DimTransportMode
	DimStatus        []DimStatus
	FactShipment     []FactShipment
	FactRevenue      []FactRevenue
}

// Transform reshapes the flat dataset into a star schema over the given
// date window. Dimensions are built first; fact construction then runs as
// a single deterministic pass resolving every reference through the
// lookup maps. Any referential or validation failure aborts the whole
// run; a partial star schema is never returned.
func Transform(ds model.Dataset, start, end time.Time) (*Star, error) {
	dimDate, dateKeys, err := BuildDateDimension(start, end)
	if err != nil {
		return nil, err
	}

	dimCustomer, customerLookup, err := BuildCustomerDimension(ds.Customers)
	if err != nil {
		return nil, err
	}

	dimCity, cityLookup := BuildCityDimension()
	dimMode, modeLookup := BuildTransportModeDimension()
	dimStatus, statusLookup := BuildStatusDimension()

	lu := Lookups{
		Customers: customerLookup,
		Cities:    cityLookup,
		Modes:     modeLookup,
		Statuses:  statusLookup,
		Dates:     dateKeys,
	}

	factShipment, err := BuildShipmentFacts(ds.Bookings, ds.Shipments, lu)
	if err != nil {
		return nil, err
	}

	factRevenue, err := BuildRevenueFacts(ds.Payments, ds.Bookings, lu)
	if err != nil {
		return nil, err
	}

	return &Star{
		DimDate:          dimDate,
		DimCustomer:      dimCustomer,
		DimCity:          dimCity,
		DimTransportMode: dimMode,
		DimStatus:        dimStatus,
		FactShipment:     factShipment,
		FactRevenue:      factRevenue,
	}, nil
}
