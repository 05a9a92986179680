// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"time"
)

// Clock returns the current year, month and day. It is an injected
// capability so that code depending on "today" can be tested without
// reading the wall clock.
type Clock func() (year int, month Month, day int)

// SystemClock reads the host wall clock in the local time zone.
func SystemClock() (int, Month, int) {
	year, month, day := time.Now().Date()
	return year, Month(month), day
}

// ApproximatelyNow returns today's date according to the host wall
// clock. The result identifies a roughly 48 hour window of real time,
// not an instant.
func ApproximatelyNow() Date {
	return NowFromClock(SystemClock)
}

// NowFromClock returns today's date according to the given clock.
// A clock is trusted to produce a valid calendar date; if it does not
// the clock abstraction itself is broken and NowFromClock panics
// rather than reporting a caller facing error.
func NowFromClock(clock Clock) Date {
	year, month, day := clock()
	date, err := New(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("clock returned an invalid date %04d-%02d-%02d: %v", year, int(month), day, err))
	}
	return date
}
