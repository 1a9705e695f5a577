package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gdevic/CalculatorOneProof/testvector"
)

func TestRunAddSubFixedVectorsAllPass(t *testing.T) {
	a := assert.New(t)
	vectors := testvector.SignPermutations(testvector.NonExponentialVectors, true)

	var sum Summary
	results := RunAddSub(vectors, &sum)

	a.Len(results, len(vectors))
	a.Equal(sum.Total, sum.OK+sum.Near+sum.Fail)
	a.Zero(sum.Fail)
}

func TestRunMultFixedVectorsAllPass(t *testing.T) {
	a := assert.New(t)
	vectors := testvector.SignPermutations(testvector.NonExponentialVectors, false)

	var sum Summary
	RunMult(vectors, &sum)

	a.Zero(sum.Fail)
}

func TestRunDivFixedVectorsNoUnexpectedFailures(t *testing.T) {
	a := assert.New(t)
	vectors := testvector.SignPermutations(testvector.DivisionVectors, false)

	var sum Summary
	RunDiv(vectors, &sum)

	a.Zero(sum.Fail)
}

func TestRunAddSubRandomVectorsReproducible(t *testing.T) {
	a := assert.New(t)
	vectors := testvector.RandomVectors(testvector.NewLCG(43), testvector.NonExponentialVectors, 500, true)

	var sum1, sum2 Summary
	results := RunAddSub(vectors, &sum1)
	RunAddSub(vectors, &sum2)

	a.Equal(sum1, sum2)
	a.Equal(500, sum1.Total)

	for _, r := range results {
		a.NoError(r.Err, "oracle should parse every randomized operand, including short mantissas with an explicit exponent field")
	}
}

func TestRunDivByZeroSentinelIsNeverOK(t *testing.T) {
	a := assert.New(t)
	vectors := []testvector.Vector{
		{S1: " 1              ", S2: " 0              "},
	}

	var sum Summary
	results := RunDiv(vectors, &sum)

	a.Equal("+inf", results[0].Native)
	a.Equal(1, sum.Fail)
}
