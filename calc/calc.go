// Copyright 2021 Goran Devic. All rights reserved.

// Package calc implements the four basic operations — add/subtract,
// multiply, divide — over treg.Reg Number values, entirely through
// digit-serial loops over scratch registers built from the digit and
// scratch packages. No shortcut through big.Int or floating point is
// taken anywhere in these paths.
package calc

import (
	"github.com/zeebo/errs"

	"github.com/gdevic/CalculatorOneProof/internal/diag"
)

// Error is calc's package-scoped error class.
var Error = errs.Class("calc")

// ErrDivByZero is stored in Diagnostics.Err by Div when the divisor's
// mantissa is zero. The returned treg.Reg itself carries the
// division-by-zero sentinel (Exps == 0); ErrDivByZero exists so
// callers that want an idiomatic Go error signal (e.g. errors.Is) have
// one, without changing Div's core signature away from the source's
// "return a sentinel value" design.
var ErrDivByZero = Error.New("division by zero")

// Diagnostics, if non-nil, is filled in by AddSub/Mult/Div with
// whether an InternalInvariantViolation fired during the call — an
// unexpected carry/borrow in a branch where mathematics proves it
// cannot occur, or a quotient digit exceeding 9. These are diagnostics
// only (§7): they never change the returned value or cause a panic.
type Diagnostics struct {
	// InvariantViolation is set if an impossible carry/borrow/digit
	// was observed.
	InvariantViolation bool
	// DivByZero is set by Div when the divisor was zero.
	DivByZero bool
	// Err carries ErrDivByZero when DivByZero is set, giving callers
	// an idiomatic Go error signal (errors.Is) alongside the bool.
	Err error
}

func (d *Diagnostics) noteInvariantViolation(where string) {
	diag.Logf("unexpected carry/borrow in %s", where)
	if d != nil {
		d.InvariantViolation = true
	}
}

func (d *Diagnostics) noteDivByZero() {
	if d != nil {
		d.DivByZero = true
		d.Err = ErrDivByZero
	}
}
