package calc

import (
	"github.com/gdevic/CalculatorOneProof/digit"
	"github.com/gdevic/CalculatorOneProof/scratch"
	"github.com/gdevic/CalculatorOneProof/treg"
)

// Mult computes x*y, returning a normalized Number value. diags may
// be nil. See §4.5.
func Mult(x, y treg.Reg, diags *Diagnostics) treg.Reg {
	if x.IsZero() || y.IsZero() {
		return treg.Zero()
	}

	s1 := scratch.FromMant(x.Mant[:]) // multiplicand
	s2 := scratch.FromMant(y.Mant[:]) // multiplier
	var s3 scratch.Reg               // running result

	for j := treg.MantDigits - 1; j >= 0; j-- {
		s3.ShiftRight()

		for i := treg.MantDigits - 1; i >= 0; i-- {
			product := digit.Mult(s1[i], s2[j])
			lowNibble := product & 0xF
			highNibble := (product >> 4) & 0xF

			var t scratch.Reg
			t[i+1] = lowNibble
			t[i-1+1] = highNibble

			var carry uint8
			for k := scratch.Width - 1; k >= 0; k-- {
				var sum uint8
				sum, carry = digit.Adc(s3[k], t[k], carry)
				s3[k] = sum
			}
			if carry != 0 {
				diags.noteInvariantViolation("Mult")
			}
		}
	}

	var result treg.Reg
	result.Sign = x.Sign != y.Sign
	exps := digit.ExpAdd(x.Exps, y.Exps)
	if s3[0] == 0 {
		s3.ShiftLeft()
	} else {
		exps++
	}
	copy(result.Mant[:], s3[:treg.MantDigits])
	result.Exps = exps
	return result
}
