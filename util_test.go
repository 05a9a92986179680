// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"cloudeng.io/caldate"
	"github.com/google/go-cmp/cmp"
)

// Date and Range carry unexported fields; both are comparable, so ==
// is the right equivalence for go-cmp.
var diffOpts = cmp.Options{
	cmp.Comparer(func(a, b caldate.Date) bool { return a == b }),
	cmp.Comparer(func(a, b caldate.Range) bool { return a == b }),
}

func newDate(y, m, d int) caldate.Date {
	date, err := caldate.New(y, caldate.Month(m), d)
	if err != nil {
		panic(err)
	}
	return date
}

func newDateList(dates ...caldate.Date) caldate.DateList {
	r := make(caldate.DateList, len(dates))
	copy(r, dates)
	return r
}

func newRange(from, to caldate.Date) caldate.Range {
	return caldate.NewRange(from, to)
}

func newRangeList(dates ...caldate.Date) caldate.RangeList {
	r := make(caldate.RangeList, 0, len(dates)/2)
	for i := 0; i < len(dates); i += 2 {
		r = append(r, caldate.NewRange(dates[i], dates[i+1]))
	}
	return r
}
