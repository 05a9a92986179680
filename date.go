// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldate provides a calendar date value type with no time of
// day or time zone, for interoperating with data sources that supply
// coarse, time independent dates. A Date is validated on construction
// (including the leap year day limit for February), formats and parses
// in year-first or day-first order, supports lexicographic ordering
// and approximate year interval arithmetic, and encodes as a single
// string token.
package caldate

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Year bounds for a valid Date.
const (
	YearMin = 1000
	YearMax = 9999
)

// ErrInvalidDate is returned by New, and by Parse once the lexical
// shape of its input is acceptable, when the year, month or day is out
// of range.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is an immutable calendar date with a year, month and day.
// The only way to obtain a non-zero Date is via New, Parse or a
// decoding hook, all of which validate, so any Date in circulation
// satisfies YearMin <= year <= YearMax and 1 <= day <= MaxDays.
// Date is comparable; == is field-wise equality.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the given year, month and day. The year
// must be in the range [YearMin, YearMax] and the day in the range
// [1, month.MaxDays(year)].
func New(year int, month Month, day int) (Date, error) {
	if year < YearMin || year > YearMax {
		return Date{}, fmt.Errorf("year %d not in range [%d, %d]: %w", year, YearMin, YearMax, ErrInvalidDate)
	}
	if month < January || month > December {
		return Date{}, fmt.Errorf("month %d not in range [1, 12]: %w", int(month), ErrInvalidDate)
	}
	if last := month.MaxDays(year); day < 1 || day > last {
		return Date{}, fmt.Errorf("day %d not in range [1, %d] for %s %d: %w", day, last, month, year, ErrInvalidDate)
	}
	return Date{year: year, month: month, day: day}, nil
}

// Year returns the year in which d occurs.
func (d Date) Year() int { return d.year }

// Month returns the month of the year specified by d.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month specified by d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero value, which is not a valid
// date and cannot be produced by New or Parse.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Format returns the date zero padded as four year, two month and two
// day digits joined by '-' in the positions selected by order.
func (d Date) Format(order Order) string {
	if order == DayFirst {
		return fmt.Sprintf("%02d-%02d-%04d", d.day, d.month, d.year)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// String returns the date in the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(YearFirst)
}

// Compare returns -1 if d is before o, 0 if they are equal and 1 if d
// is after o, ordering by year, then month, then day.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// YearsSince returns the approximate number of years from o to d as
// whole years plus a month and day fraction (months/12 and days/365),
// rounded to 3 decimal places, half away from zero. The estimate can
// differ from true elapsed time by up to two days; do not use it where
// exact elapsed time arithmetic is required.
func (d Date) YearsSince(o Date) float64 {
	years := float64(d.year - o.year)
	months := float64(int(d.month)-int(o.month)) / 12
	days := float64(d.day-o.day) / 365
	return math.Round((years+months+days)*1000) / 1000
}

// YearsUntil returns the approximate number of years from d to o.
// It is exactly o.YearsSince(d).
func (d Date) YearsUntil(o Date) float64 {
	return o.YearsSince(d)
}

// DayOfYear returns the day of the year for d as 1-365, or 1-366 in
// leap years.
func (d Date) DayOfYear() int {
	if IsLeap(d.year) {
		return dayOfYearLeap[d.month-1] + d.day
	}
	return dayOfYear[d.month-1] + d.day
}

// Tomorrow returns the date of the next day. Dec-31 rolls over to
// Jan-01 of the following year; the last representable date,
// 9999-12-31, returns itself.
func (d Date) Tomorrow() Date {
	if d.month == December && d.day == 31 {
		if d.year == YearMax {
			return d
		}
		return Date{d.year + 1, January, 1}
	}
	if d.day >= d.month.MaxDays(d.year) {
		return Date{d.year, d.month + 1, 1}
	}
	return Date{d.year, d.month, d.day + 1}
}

// Yesterday returns the date of the previous day. Jan-01 rolls back to
// Dec-31 of the preceding year; the first representable date,
// 1000-01-01, returns itself.
func (d Date) Yesterday() Date {
	if d.month == January && d.day == 1 {
		if d.year == YearMin {
			return d
		}
		return Date{d.year - 1, December, 31}
	}
	if d.day <= 1 {
		month := d.month - 1
		return Date{d.year, month, month.MaxDays(d.year)}
	}
	return Date{d.year, d.month, d.day - 1}
}

type DateList []Date

// Parse a comma separated list of dates in the given order.
func (dl *DateList) Parse(val string, order Order) error {
	if len(val) == 0 {
		*dl = nil
		return nil
	}
	parts := strings.Split(val, ",")
	dates := make(DateList, 0, len(parts))
	for _, part := range parts {
		date, err := Parse(strings.TrimSpace(part), order)
		if err != nil {
			return err
		}
		dates = append(dates, date)
	}
	*dl = dates
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// Sort sorts the list in ascending calendar order.
func (dl DateList) Sort() {
	slices.SortFunc(dl, Date.Compare)
}
