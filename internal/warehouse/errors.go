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
)

// ReferentialError reports a natural key with no match in its joined
// counterpart table, or a lookup key absent from a dimension map. The
// transform never emits a row with a dangling foreign key; the run aborts.
type ReferentialError struct {
	Table  string // output table being built
	Column string // natural key or lookup column that failed
	Key    any    // offending key value
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s: no dimension match for %s=%v", e.Table, e.Column, e.Key)
}

// ValidationError reports a derived measure that violates its domain
// invariant, e.g. negative transit days or a non-positive weight feeding
// a ratio. The whole run aborts rather than skipping the row.
type ValidationError struct {
	Table   string
	Measure string
	Key     int // surrogate key position (1-based row) of the offending row
	Detail  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s row %d: invalid %s: %s", e.Table, e.Key, e.Measure, e.Detail)
}

// RangeError reports a date dimension window whose end precedes its start.
type RangeError struct {
	Start time.Time
	End   time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("date range end %s precedes start %s",
		e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}
