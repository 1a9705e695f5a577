package calc

import (
	"github.com/gdevic/CalculatorOneProof/digit"
	"github.com/gdevic/CalculatorOneProof/scratch"
	"github.com/gdevic/CalculatorOneProof/treg"
)

// AddSub computes x+y (isSub == false) or x-y (isSub == true),
// returning a normalized Number value. diags may be nil.
//
// Zero handling, alignment, and the effective-add/effective-sub sign
// matrix follow §4.4 exactly.
func AddSub(x, y treg.Reg, isSub bool, diags *Diagnostics) treg.Reg {
	xIsZero := x.IsZero()
	yIsZero := y.IsZero()

	// This check goes first to capture the (x==0 && y==0) case.
	if yIsZero {
		result := x
		if xIsZero {
			return treg.Zero()
		}
		return result
	}
	if xIsZero {
		result := y
		result.Sign = y.Sign != isSub
		return result
	}

	expX, expY := x.Exps, y.Exps
	s1 := scratch.FromMant(x.Mant[:])
	s2 := scratch.FromMant(y.Mant[:])

	var resultExps uint8
	switch {
	case expX < expY:
		shift := expY - expX
		if int(shift) >= treg.MantDigits {
			result := y
			result.Sign = y.Sign != isSub
			return result
		}
		for i := uint8(0); i < shift; i++ {
			s1.ShiftRight()
		}
		resultExps = expY
	case expX > expY:
		shift := expX - expY
		if int(shift) >= treg.MantDigits {
			return x
		}
		for i := uint8(0); i < shift; i++ {
			s2.ShiftRight()
		}
		resultExps = expX
	default:
		resultExps = expX
	}

	isAddition := effectiveIsAddition(isSub, x.Sign, y.Sign)

	var result treg.Reg
	var s3 scratch.Reg

	if isAddition {
		var carry uint8
		for k := treg.MantDigits - 1; k >= 0; k-- {
			var sum uint8
			sum, carry = digit.Adc(s1[k], s2[k], carry)
			s3[k] = sum
		}
		if carry != 0 {
			s3.ShiftRight()
			s3[0] = 1
			resultExps++
		}
		result.Sign = x.Sign
	} else {
		swapped := false
		if !s1.GE(s2) {
			scratch.Swap(&s1, &s2)
			swapped = true
		}

		var borrow uint8
		for k := treg.MantDigits - 1; k >= 0; k-- {
			var d uint8
			d, borrow = digit.Sbc(s1[k], s2[k], borrow)
			s3[k] = d
		}
		if borrow != 0 {
			diags.noteInvariantViolation("AddSub")
		}

		result.Sign = x.Sign != swapped

		if s3.IsZero() {
			resultExps = treg.Bias
			result.Sign = false
		} else {
			for s3[0] == 0 {
				s3.ShiftLeft()
				resultExps--
			}
		}
	}

	copy(result.Mant[:], s3[:treg.MantDigits])
	result.Exps = resultExps
	return result
}

// effectiveIsAddition implements the §4.4 sign matrix: whether the
// operation reduces to an addition or a subtraction of the absolute
// mantissas.
func effectiveIsAddition(isSub, xNeg, yNeg bool) bool {
	sameSign := xNeg == yNeg
	if !isSub {
		return sameSign
	}
	return !sameSign
}
