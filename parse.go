// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse when the input is not three
// numeric tokens in the expected order: disallowed characters, wrong
// token count, a non numeric component or an out of range month.
var ErrInvalidFormat = errors.New("invalid date format")

// Parse parses val as a date with its components in the given order.
// The separators '-', '_' and '/' are accepted, freely mixed. A well
// formed string whose values are out of range fails with ErrInvalidDate
// as per New; all lexical failures are ErrInvalidFormat.
func Parse(val string, order Order) (Date, error) {
	normalized := strings.ReplaceAll(val, "_", "-")
	normalized = strings.ReplaceAll(normalized, "/", "-")
	for _, r := range normalized {
		if (r < '0' || r > '9') && r != '-' {
			return Date{}, fmt.Errorf("invalid character %q in %q, expected %s: %w", r, val, order.Mask(), ErrInvalidFormat)
		}
	}
	tokens := make([]string, 0, 3)
	for _, p := range strings.Split(normalized, "-") {
		if len(p) > 0 {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) != 3 {
		return Date{}, fmt.Errorf("%q has %d components, expected 3 as %s: %w", val, len(tokens), order.Mask(), ErrInvalidFormat)
	}
	yi, mi, di := order.indices()
	year, err := strconv.Atoi(tokens[yi])
	if err != nil {
		return Date{}, fmt.Errorf("invalid YYYY component %q in %q: %w", tokens[yi], val, ErrInvalidFormat)
	}
	month, err := parseComponent(tokens[mi])
	if err != nil {
		return Date{}, fmt.Errorf("invalid MM component %q in %q: %w", tokens[mi], val, ErrInvalidFormat)
	}
	day, err := parseComponent(tokens[di])
	if err != nil {
		return Date{}, fmt.Errorf("invalid DD component %q in %q: %w", tokens[di], val, ErrInvalidFormat)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d not in range [1, 12] in %q: %w", month, val, ErrInvalidFormat)
	}
	return New(year, Month(month), day)
}

// parseComponent drops exactly one leading zero so that '01' to '09'
// parse cleanly; a bare '0' becomes empty and fails. The year token is
// deliberately not treated this way: a year like '0124' parses to 124
// and fails the YearMin bound rather than being rejected as malformed.
func parseComponent(tok string) (int, error) {
	if tok[0] == '0' {
		tok = tok[1:]
	}
	return strconv.Atoi(tok)
}

// Parse parses val in the canonical YearFirst order.
func (d *Date) Parse(val string) error {
	date, err := Parse(val, YearFirst)
	if err != nil {
		return err
	}
	*d = date
	return nil
}
