package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gdevic/CalculatorOneProof/treg"
)

func TestMultZeroOperand(t *testing.T) {
	a := assert.New(t)
	x := reg(" 5.2718281828459")
	zero := treg.Zero()

	a.Equal("+0.0000000000000e+00", Mult(x, zero, nil).String())
	a.Equal("+0.0000000000000e+00", Mult(zero, x, nil).String())
}

func TestMultScenario(t *testing.T) {
	a := assert.New(t)
	x := reg(" 2              ")
	y := reg(" 3              ")
	a.Equal("+6.0000000000000e+00", Mult(x, y, nil).String())
}

func TestMultIdentity(t *testing.T) {
	a := assert.New(t)
	one := reg(" 1              ")
	x := reg(" 1.2345678901234")
	a.Equal(x.String(), Mult(x, one, nil).String())
	a.Equal(x.String(), Mult(one, x, nil).String())
}

func TestMultSignMatrix(t *testing.T) {
	a := assert.New(t)
	two := reg(" 2              ")
	negThree := reg("-3              ")
	a.Equal("-6.0000000000000e+00", Mult(two, negThree, nil).String())
	a.Equal("+9.0000000000000e+00", Mult(negThree, negThree, nil).String())
}

func TestMultFixedVectors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, want string
	}{
		{" 1.2345678901234", " 1              ", "+1.2345678901234e+00"},
		{" 1              ", " 1.2345678901234", "+1.2345678901234e+00"},
		{" 9.9999999999999", " 9.9999999999999", "+9.9999999999998e+01"},
		{" 0.0000000000001", " 0.0000000000001", "+1.0000000000000e-26"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := reg(test.x)
			y := reg(test.y)
			got := Mult(x, y, nil)
			a.Equal(test.want, got.String())
			a.True(got.Normalized())
		})
	}
}

func TestMultNoInvariantViolationOnOrdinaryVectors(t *testing.T) {
	a := assert.New(t)
	var diags Diagnostics
	x := reg(" 3.1415926535897")
	y := reg(" 2.7182818284590")
	Mult(x, y, &diags)
	a.False(diags.InvariantViolation)
}
