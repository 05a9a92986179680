// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Range is an inclusive range of Dates. Range is comparable; the zero
// value is empty and contains no dates.
type Range struct {
	from, to Date
}

// NewRange returns the Range covering from and to inclusive. If from
// is later than to they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{from: from, to: to}
}

// From returns the first date in the range.
func (r Range) From() Date { return r.from }

// To returns the last date in the range.
func (r Range) To() Date { return r.to }

// Contains reports whether d falls within the range, inclusive of both
// endpoints.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.from) && !d.After(r.to)
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.from, r.to)
}

// Parse a range in the format '<from>:<to>' where both dates are in
// the given order. The from date must not be later than the to date.
func (r *Range) Parse(val string, order Order) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid range %q, expected '<from>:<to>': %w", val, ErrInvalidFormat)
	}
	from, err := Parse(parts[0], order)
	if err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	to, err := Parse(parts[1], order)
	if err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if to.Before(from) {
		return fmt.Errorf("from %s is later than to %s: %w", from, to, ErrInvalidFormat)
	}
	*r = Range{from: from, to: to}
	return nil
}

// Dates returns an iterator that yields each date in the range.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if r.from.IsZero() {
			return
		}
		for d := r.from; ; d = d.Tomorrow() {
			if !yield(d) {
				return
			}
			if d == r.to {
				return
			}
		}
	}
}

// Days returns the number of days in the range, inclusive of both
// endpoints.
func (r Range) Days() int {
	if r.from.IsZero() {
		return 0
	}
	days := 0
	for y := r.from.year; y < r.to.year; y++ {
		days += 365
		if IsLeap(y) {
			days++
		}
	}
	return days + r.to.DayOfYear() - r.from.DayOfYear() + 1
}

type RangeList []Range

// Parse a list of ranges in the format expected by Range.Parse. The
// parsed list is sorted and without duplicates.
func (rl *RangeList) Parse(vals []string, order Order) error {
	if len(vals) == 0 {
		*rl = nil
		return nil
	}
	ranges := make(RangeList, 0, len(vals))
	seen := map[Range]struct{}{}
	for _, v := range vals {
		var r Range
		if err := r.Parse(v, order); err != nil {
			return err
		}
		if _, ok := seen[r]; ok {
			continue
		}
		ranges = append(ranges, r)
		seen[r] = struct{}{}
	}
	slices.SortFunc(ranges, func(a, b Range) int {
		if c := a.from.Compare(b.from); c != 0 {
			return c
		}
		return a.to.Compare(b.to)
	})
	*rl = ranges
	return nil
}

func (rl RangeList) String() string {
	var out strings.Builder
	for i, r := range rl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(r.String())
	}
	return out.String()
}

// Merge returns a new list with overlapping or adjacent ranges merged.
// The list is assumed to be sorted.
func (rl RangeList) Merge() RangeList {
	if len(rl) == 0 {
		return rl
	}
	merged := make(RangeList, 0, len(rl))
	cur := rl[0]
	for _, r := range rl[1:] {
		if !r.from.After(cur.to.Tomorrow()) {
			if cur.to.Before(r.to) {
				cur.to = r.to
			}
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	return slices.Clip(append(merged, cur))
}

// Merge returns ranges covering the runs of consecutive dates in the
// list. The list is assumed to be sorted.
func (dl DateList) Merge() RangeList {
	if len(dl) == 0 {
		return nil
	}
	var merged RangeList
	from, to := dl[0], dl[0]
	for _, d := range dl[1:] {
		if d == to {
			continue
		}
		if to.Tomorrow() == d {
			to = d
			continue
		}
		merged = append(merged, Range{from: from, to: to})
		from, to = d, d
	}
	return slices.Clip(append(merged, Range{from: from, to: to}))
}
