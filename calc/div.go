package calc

import (
	"github.com/gdevic/CalculatorOneProof/digit"
	"github.com/gdevic/CalculatorOneProof/scratch"
	"github.com/gdevic/CalculatorOneProof/treg"
)

// Div computes x/y, returning a normalized Number value, or the
// division-by-zero sentinel if y's mantissa is zero. diags may be
// nil. See §4.6.
func Div(x, y treg.Reg, diags *Diagnostics) treg.Reg {
	sign := x.Sign != y.Sign

	if y.IsZero() {
		diags.noteDivByZero()
		return treg.DivByZeroSentinel(sign)
	}
	if x.IsZero() {
		return treg.Zero()
	}

	exps := digit.ExpSub(x.Exps, y.Exps)

	d := scratch.FromMant(x.Mant[:]) // dividend
	v := scratch.FromMant(y.Mant[:]) // divisor
	var q scratch.Reg                // quotient

	// Free up the most significant digit as working headroom before
	// the shift-and-subtract loop.
	d.ShiftRight()
	v.ShiftRight()

	for i := 0; i < scratch.Width; i++ {
		for d.GE(v) {
			var borrow uint8
			for k := scratch.Width - 1; k >= 0; k-- {
				var sub uint8
				sub, borrow = digit.Sbc(d[k], v[k], borrow)
				d[k] = sub
			}
			if borrow != 0 {
				diags.noteInvariantViolation("Div")
			}
			q[i]++
			if q[i] > 9 {
				diags.noteInvariantViolation("Div")
			}
		}
		d.ShiftLeft()
	}

	if q[0] == 0 {
		q.ShiftLeft()
		exps--
	}

	var result treg.Reg
	result.Sign = sign
	result.Exps = exps
	copy(result.Mant[:], q[:treg.MantDigits])
	return result
}
