//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

package datagen

import (
	"fmt"
	"time"

	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/internal/model"
)

// Generator produces the flat logistics dataset: customers, bookings,
// shipments and payments with dense 1..N identifiers and 1:1 links
// between booking, shipment and payment.
type Generator struct {
	faker *Faker
}

// NewGenerator creates a generator with a random seed.
func NewGenerator() *Generator {
	return &Generator{faker: NewFaker()}
}

// NewGeneratorWithSeed creates a generator with a fixed seed so the same
// dataset can be regenerated.
func NewGeneratorWithSeed(seed uint64) *Generator {
	return &Generator{faker: NewFakerWithSeed(seed)}
}

// Generate produces records customers with one booking, shipment and
// payment each, dated inside [from, to]. Shipment dates trail the booking
// by 1-3 days and expected delivery trails the shipment by 3-15 days, so
// transit days are always non-negative by construction.
//
// Shipment and delivery dates can run past the booking window; callers
// sizing a date dimension for this dataset should use Window.
func (g *Generator) Generate(from, to time.Time, records int) (model.Dataset, error) {
	if records < 1 {
		return model.Dataset{}, fmt.Errorf("records must be at least 1, got %d", records)
	}
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return model.Dataset{}, fmt.Errorf("to date %s precedes from date %s",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	windowDays := int(to.Sub(from) / (24 * time.Hour))

	origins := model.OriginCityNames()
	destinations := model.DestinationCityNames()
	cities := model.CityNames()
	modes := model.TransportModeNames()
	statuses := model.StatusNames()

	ds := model.Dataset{
		Customers: make([]model.Customer, 0, records),
		Bookings:  make([]model.Booking, 0, records),
		Shipments: make([]model.Shipment, 0, records),
		Payments:  make([]model.Payment, 0, records),
	}

	for i := 1; i <= records; i++ {
		createdDate := from.AddDate(0, 0, g.faker.Int(0, windowDays))
		ds.Customers = append(ds.Customers, model.Customer{
			CustomerID:  i,
			Name:        g.faker.Name(),
			Phone:       g.faker.Phone(),
			City:        Choose(g.faker, cities),
			CreatedDate: createdDate,
		})

		bookingDate := from.AddDate(0, 0, g.faker.Int(0, windowDays))
		booking := model.Booking{
			BookingID:   i,
			CustomerID:  i,
			BookingDate: bookingDate,
			Origin:      Choose(g.faker, origins),
			Destination: Choose(g.faker, destinations),
			Mode:        Choose(g.faker, modes),
			WeightKG:    Round2(g.faker.Float64(5, 500)),
			Status:      Choose(g.faker, statuses),
		}
		ds.Bookings = append(ds.Bookings, booking)

		shipmentDate := bookingDate.AddDate(0, 0, g.faker.Int(1, 3))
		deliveryDate := shipmentDate.AddDate(0, 0, g.faker.Int(3, 15))
		ds.Shipments = append(ds.Shipments, model.Shipment{
			ShipmentID:       i,
			BookingID:        i,
			ShipmentDate:     shipmentDate,
			ExpectedDelivery: deliveryDate,
			Tracking:         fmt.Sprintf("RCPL%d%06d", bookingDate.Year(), i),
			Status:           booking.Status,
		})

		ds.Payments = append(ds.Payments, model.Payment{
			PaymentID: i,
			BookingID: i,
			Amount:    Round2(booking.WeightKG * g.faker.Float64(4, 8)),
			Method:    Choose(g.faker, model.PaymentMethods),
			Date:      bookingDate,
			Status:    "Paid",
		})
	}

	logging.Info().
		Int("customers", len(ds.Customers)).
		Int("bookings", len(ds.Bookings)).
		Int("shipments", len(ds.Shipments)).
		Int("payments", len(ds.Payments)).
		Msg("Generated dataset")

	return ds, nil
}

// Window returns the date span a dimension table must cover for a
// dataset generated over [from, to]: shipments trail bookings by up to 3
// days and deliveries trail shipments by up to 15.
func Window(from, to time.Time) (time.Time, time.Time) {
	return truncateToDay(from), truncateToDay(to).AddDate(0, 0, 18)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
