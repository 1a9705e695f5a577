// Copyright 2021 Goran Devic. All rights reserved.

// Package oracle supplies the external reference values calc's BCD
// results are checked against: a float64 parse/format oracle grounded
// on TReg.h's read_fp_from_src/format_verif_from_fp, and two
// arbitrary/binary-precision cross-checks — shopspring/decimal and
// robaho/fixed — that catch float64 rounding artifacts the naive
// oracle would otherwise misreport as a mismatch.
package oracle

import (
	"math"
	"strconv"
	"strings"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// sanitize turns a 16-character input buffer into something Go's
// numeric parsers accept: strips the fixed-width space padding —
// leading, trailing, and interior (a short mantissa like " 1" followed
// by an explicit exponent field leaves spaces between the two) — and
// lowercases the exponent marker.
func sanitize(buf string) string {
	s := strings.ReplaceAll(buf, " ", "")
	s = strings.Replace(s, "E", "e", 1)
	return s
}

// FloatValue parses a 16-character input buffer into the reference
// double, matching read_fp_from_src's `sscanf(src, "%lf", &fp)`.
func FloatValue(buf string) (float64, error) {
	return strconv.ParseFloat(sanitize(buf), 64)
}

// Expected formats fp the way format_verif_from_fp does: an explicit
// sign, scientific notation, mantDigits-1 digits after the decimal
// point. Go's strconv.FormatFloat already zero-pads the exponent to
// at least two digits, matching the source's setw(2)/setfill('0').
func Expected(fp float64, mantDigits int) string {
	sign := "+"
	if math.Signbit(fp) {
		sign = "-"
	}
	return sign + strconv.FormatFloat(math.Abs(fp), 'e', mantDigits-1, 64)
}

// DecimalValue parses a 16-character input buffer into an exact,
// arbitrary-precision decimal — the avdva-fixed test suite's own
// cross-check collaborator, generalized from a benchmark comparator
// into a correctness oracle here.
func DecimalValue(buf string) (decimal.Decimal, error) {
	return decimal.NewFromString(sanitize(buf))
}

// DecimalAdd, DecimalSub, DecimalMul and DecimalDiv perform the
// matching arithmetic op on DecimalValue operands, exactly, with no
// float64 rounding in the loop at all.
func DecimalAdd(x, y decimal.Decimal) decimal.Decimal { return x.Add(y) }
func DecimalSub(x, y decimal.Decimal) decimal.Decimal { return x.Sub(y) }
func DecimalMul(x, y decimal.Decimal) decimal.Decimal { return x.Mul(y) }

// DecimalDiv rounds to mantDigits fractional places; calc's own Div
// truncates rather than rounds, so callers comparing against this
// should tolerate a last-digit difference the same way Compare does.
func DecimalDiv(x, y decimal.Decimal, mantDigits int32) decimal.Decimal {
	return x.DivRound(y, mantDigits)
}

// AgreesWithFixed cross-checks a calc result against the equivalent
// computation over github.com/robaho/fixed, the way
// avdva-fixed/fixed/fixed_test.go's BenchmarkMulOtherFixed constructs
// a fixed.Fixed from the same decimal literal for comparison. op is
// one of '+', '-', '*', '/'. tolerance bounds the float64 round-trip
// both fixed-point representations go through.
func AgreesWithFixed(nativeValue float64, x, y float64, op byte, tolerance float64) bool {
	fx := of.NewF(x)
	fy := of.NewF(y)

	var got of.Fixed
	switch op {
	case '+':
		got = fx.Add(fy)
	case '-':
		got = fx.Sub(fy)
	case '*':
		got = fx.Mul(fy)
	case '/':
		got = fx.Div(fy)
	}

	return math.Abs(got.Float()-nativeValue) <= tolerance
}
