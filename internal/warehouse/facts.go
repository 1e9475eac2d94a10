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
	"fmt"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/model"
)

// FactShipment has one row per shipment. All dimensional references are
// surrogate keys; a missing match or lookup is fatal, never a null.
type FactShipment struct {
	ShipmentKey             int
	ShipmentID              int
	BookingID               int
	CustomerKey             int
	OriginCityKey           int
	DestinationCityKey      int
	TransportModeKey        int
	StatusKey               int
	BookingDateKey          int
	ShipmentDateKey         int
	ExpectedDeliveryDateKey int
	WeightKG                float64
	TransitDays             int
}

// FactRevenue has one row per payment.
type FactRevenue struct {
	RevenueKey     int
	PaymentID      int
	BookingID      int
	CustomerKey    int
	PaymentDateKey int
	Amount         float64
	PaymentMethod  string
	WeightKG       float64
	RevenuePerKG   float64
}

// BuildShipmentFacts inner-joins shipments with bookings on BookingID and
// resolves every dimensional reference through the lookup maps. Surrogate
// keys are assigned 1..N in shipment input order.
//
// The joined row's status is taken from the booking; the shipment's
// mirrored status column is never consulted. TransitDays may be zero but
// a negative value means the source data is defective and fails the run.
func BuildShipmentFacts(bookings []model.Booking, shipments []model.Shipment, lu Lookups) ([]FactShipment, error) {
	byID := make(map[int]model.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.BookingID] = b
	}

	facts := make([]FactShipment, 0, len(shipments))
	for i, s := range shipments {
		b, ok := byID[s.BookingID]
		if !ok {
			return nil, &ReferentialError{Table: "FactShipment", Column: "BookingID", Key: s.BookingID}
		}

		customerKey, ok := lu.Customers[b.CustomerID]
		if !ok {
			return nil, &ReferentialError{Table: "FactShipment", Column: "CustomerID", Key: b.CustomerID}
		}
		originKey, ok := lu.Cities[b.Origin]
		if !ok {
			return nil, &ReferentialError{Table: "FactShipment", Column: "Origin", Key: b.Origin}
		}
		destKey, ok := lu.Cities[b.Destination]
		if !ok {
			return nil, &ReferentialError{Table: "FactShipment", Column: "Destination", Key: b.Destination}
		}
		modeKey, ok := lu.Modes[b.Mode]
		if !ok {
			return nil, &ReferentialError{Table: "FactShipment", Column: "Mode", Key: b.Mode}
		}
		statusKey, ok := lu.Statuses[b.Status]
		if !ok {
			return nil, &ReferentialError{Table: "FactShipment", Column: "Status", Key: b.Status}
		}

		bookingDateKey, err := resolveDateKey(lu, "FactShipment", "BookingDate", b.BookingDate)
		if err != nil {
			return nil, err
		}
		shipmentDateKey, err := resolveDateKey(lu, "FactShipment", "ShipmentDate", s.ShipmentDate)
		if err != nil {
			return nil, err
		}
		deliveryDateKey, err := resolveDateKey(lu, "FactShipment", "ExpectedDelivery", s.ExpectedDelivery)
		if err != nil {
			return nil, err
		}

		transit := daysBetween(s.ShipmentDate, s.ExpectedDelivery)
		if transit < 0 {
			return nil, &ValidationError{
				Table:   "FactShipment",
				Measure: "TransitDays",
				Key:     i + 1,
				Detail:  fmt.Sprintf("expected delivery precedes shipment date by %d days", -transit),
			}
		}

		facts = append(facts, FactShipment{
			ShipmentKey:             i + 1,
			ShipmentID:              s.ShipmentID,
			BookingID:               s.BookingID,
			CustomerKey:             customerKey,
			OriginCityKey:           originKey,
			DestinationCityKey:      destKey,
			TransportModeKey:        modeKey,
			StatusKey:               statusKey,
			BookingDateKey:          bookingDateKey,
			ShipmentDateKey:         shipmentDateKey,
			ExpectedDeliveryDateKey: deliveryDateKey,
			WeightKG:                b.WeightKG,
			TransitDays:             transit,
		})
	}

	return facts, nil
}

// BuildRevenueFacts inner-joins payments with bookings on BookingID under
// the same missing-match policy as BuildShipmentFacts. A non-positive
// booking weight would poison the RevenuePerKG ratio and fails the run.
func BuildRevenueFacts(payments []model.Payment, bookings []model.Booking, lu Lookups) ([]FactRevenue, error) {
	byID := make(map[int]model.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.BookingID] = b
	}

	facts := make([]FactRevenue, 0, len(payments))
	for i, p := range payments {
		b, ok := byID[p.BookingID]
		if !ok {
			return nil, &ReferentialError{Table: "FactRevenue", Column: "BookingID", Key: p.BookingID}
		}

		customerKey, ok := lu.Customers[b.CustomerID]
		if !ok {
			return nil, &ReferentialError{Table: "FactRevenue", Column: "CustomerID", Key: b.CustomerID}
		}
		paymentDateKey, err := resolveDateKey(lu, "FactRevenue", "PaymentDate", p.Date)
		if err != nil {
			return nil, err
		}

		if b.WeightKG <= 0 {
			return nil, &ValidationError{
				Table:   "FactRevenue",
				Measure: "RevenuePerKG",
				Key:     i + 1,
				Detail:  fmt.Sprintf("booking %d has non-positive weight %.2f kg", b.BookingID, b.WeightKG),
			}
		}

		facts = append(facts, FactRevenue{
			RevenueKey:     i + 1,
			PaymentID:      p.PaymentID,
			BookingID:      p.BookingID,
			CustomerKey:    customerKey,
			PaymentDateKey: paymentDateKey,
			Amount:         p.Amount,
			PaymentMethod:  p.Method,
			WeightKG:       b.WeightKG,
			RevenuePerKG:   p.Amount / b.WeightKG,
		})
	}

	return facts, nil
}

// resolveDateKey derives the calendar date key and verifies it exists in
// the date dimension. A fact referencing a day outside the generation
// window would be a dangling foreign key.
func resolveDateKey(lu Lookups, table, column string, t time.Time) (int, error) {
	key := DateKey(t)
	if !lu.Dates[key] {
		return 0, &ReferentialError{Table: table, Column: column, Key: key}
	}
	return key, nil
}
