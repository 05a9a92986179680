// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Month is a calendar month in the range January (1) to December (12).
// The set is closed: values outside that range are rejected wherever a
// Month enters the package and are never stored in a Date.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Months returns an iterator over the twelve months in calendar order.
func Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := January; m <= December; m++ {
			if !yield(m) {
				return
			}
		}
	}
}

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func maxDaysInit(year, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = maxDaysInit(2023, i+1)
		daysInMonthLeap[i] = maxDaysInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year. Every fourth
// year is treated as a leap year; the Gregorian century exceptions
// (1900, 2100 etc.) are deliberately not applied, matching the coarse
// date sources this package interoperates with.
func IsLeap(year int) bool {
	return year%4 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// MaxDays returns the number of days in the month for the given year.
func (m Month) MaxDays(year int) int {
	if IsLeap(year) {
		return daysInMonthLeap[m-1]
	}
	return daysInMonth[m-1]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i := range monthNames {
		if strings.HasPrefix(strings.ToLower(monthNames[i]), lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty month")
	}
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

type MonthList []Month

// Parse val in formats 'Jan,12,Nov'. The parsed list is sorted
// and without duplicates.
func (ml *MonthList) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value")
	}
	parts := strings.Split(strings.ReplaceAll(val, " ", ""), ",")
	months := make([]Month, 0, len(parts))
	seen := map[Month]struct{}{}
	for _, p := range parts {
		var m Month
		if err := m.Parse(p); err != nil {
			return fmt.Errorf("invalid month: %s", p)
		}
		if _, ok := seen[m]; ok {
			continue
		}
		months = append(months, m)
		seen[m] = struct{}{}
	}
	slices.Sort[MonthList](months)
	*ml = months
	return nil
}

func (ml MonthList) String() string {
	var out strings.Builder
	for i, m := range ml {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(m.String())
	}
	return out.String()
}
