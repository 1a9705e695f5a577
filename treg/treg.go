// Copyright 2021 Goran Devic. All rights reserved.

// Package treg implements the calculator's Number value: a signed,
// normalized, 14-digit BCD mantissa with a single-byte biased
// exponent. Values are immutable after construction — every
// constructor and every op in package calc consumes Reg by value and
// returns a new one.
package treg

import "github.com/zeebo/errs"

// Error is the package-scoped error class for treg. Most malformed
// input is deliberately undefined behavior per the input buffer
// contract, so Error is reserved for the one guarded can't-happen
// case: FromInputBuffer panics with Error if the two explicit-exponent
// digit positions hold anything other than ASCII digits.
var Error = errs.Class("treg")

const (
	// MantDigits is the fixed mantissa width.
	MantDigits = 14
	// ScratchDigits is the scratch register width: mantissa plus two
	// guard digits.
	ScratchDigits = MantDigits + 2
	// Bias is the exponent bias.
	Bias = 128
)

// Reg is a Number value: MantDigits decimal digits (index 0 most
// significant), a sign, and a biased exponent.
type Reg struct {
	Mant [MantDigits]uint8
	Sign bool
	Exps uint8
}

// Zero returns the canonical zero value: positive, Exps == Bias, every
// digit 0.
func Zero() Reg {
	return Reg{Exps: Bias}
}

// DivByZeroSentinel returns the division-by-zero marker: Exps == 0,
// mantissa all zero, carrying sign as the would-be result sign. No
// other operation may produce Exps == 0.
func DivByZeroSentinel(sign bool) Reg {
	return Reg{Sign: sign, Exps: 0}
}

// IsZero reports whether r's mantissa is entirely zero (canonical zero
// or a not-yet-normalized all-zero mantissa).
func (r Reg) IsZero() bool {
	for _, d := range r.Mant {
		if d != 0 {
			return false
		}
	}
	return true
}

// IsDivByZeroSentinel reports whether r is the division-by-zero
// marker.
func (r Reg) IsDivByZeroSentinel() bool {
	return r.Exps == 0
}

// Normalized reports whether r obeys invariants 1-3 of the data model:
// a non-zero, non-sentinel value has Mant[0] != 0; a zero value is
// canonical (Sign == false, Exps == Bias, every digit 0); Exps == 0
// appears only as the sentinel.
func (r Reg) Normalized() bool {
	if r.IsDivByZeroSentinel() {
		return r.IsZero()
	}
	if r.IsZero() {
		return !r.Sign && r.Exps == Bias
	}
	return r.Mant[0] != 0
}
