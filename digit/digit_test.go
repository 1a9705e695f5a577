package digit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdc(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, c   uint8
		sum, cOut uint8
	}{
		{0, 0, 0, 0, 0},
		{4, 5, 0, 9, 0},
		{5, 5, 0, 0, 1},
		{9, 9, 1, 9, 1},
		{9, 0, 1, 0, 1},
		{0, 0, 1, 1, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, c := Adc(test.x, test.y, test.c)
			a.Equal(test.sum, s)
			a.Equal(test.cOut, c)
		})
	}
}

func TestSbc(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, b    uint8
		diff, bOut uint8
	}{
		{9, 4, 0, 5, 0},
		{4, 9, 0, 5, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 9, 1},
		{5, 5, 1, 9, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, b := Sbc(test.x, test.y, test.b)
			a.Equal(test.diff, d)
			a.Equal(test.bOut, b)
		})
	}
}

func TestMultAllDigits(t *testing.T) {
	a := assert.New(t)
	for x := uint8(0); x < 10; x++ {
		for y := uint8(0); y < 10; y++ {
			product := Mult(x, y)
			want := int(x) * int(y)
			got := int(product>>4)*10 + int(product&0xF)
			a.Equal(want, got, "x=%d y=%d", x, y)
		}
	}
}

func TestExpAddSub(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint8(128), ExpAdd(128, 128))
	a.Equal(uint8(130), ExpAdd(129, 129))
	a.Equal(uint8(128), ExpSub(129, 129))
	a.Equal(uint8(126), ExpSub(128, 130))
	// Wrap-around is silent: no error is raised (open question #1).
	a.Equal(uint8(16), ExpAdd(200, 200))
}
