// Copyright 2021 Goran Devic. All rights reserved.

// Package proof is the library form of Proof.cpp's main(): it drives
// a set of testvector.Vectors through calc's operations, compares
// each native result against the oracle's float64 reference value via
// treg.Reg.Compare, and accumulates OK/NEAR/FAIL tallies the way the
// source's global tests_total/tests_pass/tests_fail counters do.
package proof

import (
	"github.com/gdevic/CalculatorOneProof/calc"
	"github.com/gdevic/CalculatorOneProof/oracle"
	"github.com/gdevic/CalculatorOneProof/testvector"
	"github.com/gdevic/CalculatorOneProof/treg"
)

// Summary tallies verdicts across a run.
type Summary struct {
	Total int
	OK    int
	Near  int
	Fail  int
}

func (s *Summary) record(v treg.Verdict) {
	s.Total++
	switch v {
	case treg.OK:
		s.OK++
	case treg.Near:
		s.Near++
	default:
		s.Fail++
	}
}

// Result is one compared vector, kept so a caller can report
// individual FAILs without re-running the computation.
type Result struct {
	S1, S2   string
	Verdict  treg.Verdict
	Native   string
	Expected string
	// Err is set instead of Expected/Verdict being meaningful when the
	// oracle itself could not parse one of the operands. Such a vector
	// is tallied as a Fail rather than silently compared against 0.
	Err error
}

// regOp applies one of calc's three operations to a parsed pair.
type regOp func(x, y treg.Reg, isSub bool) treg.Reg

// floatOp is the oracle's float64-arithmetic mirror of a regOp.
type floatOp func(x, y float64, isSub bool) float64

// RunAddSub drives vectors through calc.AddSub.
func RunAddSub(vectors []testvector.Vector, sum *Summary) []Result {
	return run(vectors, sum,
		func(x, y treg.Reg, isSub bool) treg.Reg { return calc.AddSub(x, y, isSub, nil) },
		func(x, y float64, isSub bool) float64 {
			if isSub {
				return x - y
			}
			return x + y
		},
	)
}

// RunMult drives vectors through calc.Mult.
func RunMult(vectors []testvector.Vector, sum *Summary) []Result {
	return run(vectors, sum,
		func(x, y treg.Reg, _ bool) treg.Reg { return calc.Mult(x, y, nil) },
		func(x, y float64, _ bool) float64 { return x * y },
	)
}

// RunDiv drives vectors through calc.Div.
func RunDiv(vectors []testvector.Vector, sum *Summary) []Result {
	return run(vectors, sum,
		func(x, y treg.Reg, _ bool) treg.Reg { return calc.Div(x, y, nil) },
		func(x, y float64, _ bool) float64 { return x / y },
	)
}

func run(vectors []testvector.Vector, sum *Summary, op regOp, fop floatOp) []Result {
	results := make([]Result, 0, len(vectors))
	for _, v := range vectors {
		x := treg.FromInputBuffer(v.S1)
		y := treg.FromInputBuffer(v.S2)
		got := op(x, y, v.IsSub)

		fx, errX := oracle.FloatValue(v.S1)
		fy, errY := oracle.FloatValue(v.S2)
		if errX != nil || errY != nil {
			err := errX
			if err == nil {
				err = errY
			}
			sum.record(treg.Fail)
			results = append(results, Result{
				S1:      v.S1,
				S2:      v.S2,
				Verdict: treg.Fail,
				Native:  got.String(),
				Err:     err,
			})
			continue
		}

		oracleValue := fop(fx, fy, v.IsSub)
		expected := oracle.Expected(oracleValue, treg.MantDigits)
		verdict := got.Compare(expected, oracleValue)
		sum.record(verdict)

		results = append(results, Result{
			S1:       v.S1,
			S2:       v.S2,
			Verdict:  verdict,
			Native:   got.String(),
			Expected: expected,
		})
	}
	return results
}
