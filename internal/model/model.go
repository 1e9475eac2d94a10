//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package model defines the flat transactional records produced by the
// data generator and consumed by the warehouse transform, together with
// the fixed reference vocabularies (cities, transport modes, booking
// statuses) both sides share.
package model

import "time"

// Customer is one customer account record.
type Customer struct {
	CustomerID  int
	Name        string
	Phone       string
	City        string
	CreatedDate time.Time
}

// Booking is one cargo booking. Origin and Destination must come from
// the fixed city set, Mode from TransportModes and Status from Statuses.
type Booking struct {
	BookingID   int
	CustomerID  int
	BookingDate time.Time
	Origin      string
	Destination string
	Mode        string
	WeightKG    float64
	Status      string
}

// Shipment is the physical movement for a booking (1:1 with Booking).
// Status mirrors the booking status at generation time.
type Shipment struct {
	ShipmentID       int
	BookingID        int
	ShipmentDate     time.Time
	ExpectedDelivery time.Time
	Tracking         string
	Status           string
}

// Payment is the payment collected for a booking (1:1 with Booking).
type Payment struct {
	PaymentID int
	BookingID int
	Amount    float64
	Method    string
	Date      time.Time
	Status    string
}

// Dataset aggregates the four flat tables of one generation run.
type Dataset struct {
	Customers []Customer
	Bookings  []Booking
	Shipments []Shipment
	Payments  []Payment
}

// City is a reference city on the UAE-Pakistan corridor. Role is
// documentary only ("Origin" or "Destination").
type City struct {
	Name    string
	Country string
	Role    string
}

// Cities is the closed-world city set. Every origin and destination
// name in a Booking must appear here exactly once.
var Cities = []City{
	{"Dubai", "UAE", "Origin"},
	{"Sharjah", "UAE", "Origin"},
	{"Ajman", "UAE", "Origin"},
	{"Karachi", "Pakistan", "Destination"},
	{"Lahore", "Pakistan", "Destination"},
	{"Islamabad", "Pakistan", "Destination"},
	{"Rawalpindi", "Pakistan", "Destination"},
	{"Peshawar", "Pakistan", "Destination"},
	{"Mirpur", "Azad Kashmir", "Destination"},
	{"Muzaffarabad", "Azad Kashmir", "Destination"},
}

// TransportMode is a way of moving cargo.
type TransportMode struct {
	Name        string
	Description string
}

// TransportModes lists the supported modes in declaration order.
var TransportModes = []TransportMode{
	{"Air", "Fast delivery, higher cost"},
	{"Sea", "Economical, longer transit time"},
}

// Status is one step of the booking lifecycle.
type Status struct {
	Name        string
	Description string
}

// Statuses lists the booking lifecycle in actual order:
// Booked -> In Transit -> Arrived -> Customs Cleared -> Delivered.
var Statuses = []Status{
	{"Booked", "Initial booking created"},
	{"In Transit", "Shipment in progress"},
	{"Arrived", "Arrived at destination country"},
	{"Customs Cleared", "Cleared customs procedures"},
	{"Delivered", "Successfully delivered to customer"},
}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"Cash", "Bank Transfer", "Card"}

// OriginCityNames returns the names of cities bookings can originate from.
func OriginCityNames() []string {
	return cityNamesByRole("Origin")
}

// DestinationCityNames returns the names of cities bookings can ship to.
func DestinationCityNames() []string {
	return cityNamesByRole("Destination")
}

func cityNamesByRole(role string) []string {
	var names []string
	for _, c := range Cities {
		if c.Role == role {
			names = append(names, c.Name)
		}
	}
	return names
}

// CityNames returns every reference city name in declaration order.
func CityNames() []string {
	names := make([]string, len(Cities))
	for i, c := range Cities {
		names[i] = c.Name
	}
	return names
}

// StatusNames returns the lifecycle status names in order.
func StatusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = s.Name
	}
	return names
}

// TransportModeNames returns the transport mode names in order.
func TransportModeNames() []string {
	names := make([]string, len(TransportModes))
	for i, m := range TransportModes {
		names[i] = m.Name
	}
	return names
}
