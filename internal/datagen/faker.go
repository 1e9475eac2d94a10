//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package datagen synthesizes the flat logistics dataset.
package datagen

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{faker: gofakeit.New(uint64(time.Now().UnixNano()))}
}

// NewFakerWithSeed creates a Faker with a specific seed for reproducible
// datasets.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{faker: gofakeit.New(seed)}
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Phone generates a random phone number.
func (f *Faker) Phone() string {
	return f.faker.Phone()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// Round2 rounds a value to two decimal places, matching how monetary
// amounts and weights are stored.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
