// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

// Order selects the positions of the year, month and day components
// when converting between a Date and its three token string form. It
// carries no state beyond its tag; the format mask and component
// positions are derived from it.
type Order int

const (
	// YearFirst is the canonical YYYY-MM-DD encoding.
	YearFirst Order = iota
	// DayFirst is the alternate DD-MM-YYYY encoding.
	DayFirst
)

// Mask returns the human readable format mask for the order.
func (o Order) Mask() string {
	if o == DayFirst {
		return "DD-MM-YYYY"
	}
	return "YYYY-MM-DD"
}

func (o Order) String() string {
	return o.Mask()
}

// indices returns the positions of the year, month and day tokens
// within a three token string.
func (o Order) indices() (year, month, day int) {
	if o == DayFirst {
		return 2, 1, 0
	}
	return 0, 1, 2
}
