package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{-1.005, -1.01},
		{2.675, 2.68},
		{0.125, 0.13},
		{10, 10},
		{-0.004, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Round2(tc.in), "Round2(%v)", tc.in)
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.5, ParseAmount("12,50"))
	assert.Equal(t, 7.1, ParseAmount(" 7.1 "))
	assert.Equal(t, -3.0, ParseAmount("-3"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("1,234.50"))
}

func TestVATAndTotals(t *testing.T) {
	assert.Equal(t, 22.0, VAT(50, 50))
	assert.Equal(t, 122.0, FinalFromLabor(50, 50))
	assert.Equal(t, 50.0, LaborFromFinal(122, 50))

	vat, total := PaymentTotals(80.10, 19.90)
	assert.Equal(t, 22.0, vat)
	assert.Equal(t, 122.0, total)
}

func TestLineTotalAndSum(t *testing.T) {
	assert.Equal(t, 59.97, LineTotal(3, 19.99))
	assert.Equal(t, 0.0, LineTotal(0, 19.99))
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
}

func TestFinalLaborRoundTrip(t *testing.T) {
	for parts := 0.0; parts <= 250; parts += 13.37 {
		for labor := -40.0; labor <= 400; labor += 7.91 {
			p, l := Round2(parts), Round2(labor)
			final := FinalFromLabor(p, l)
			assert.Equal(t, final, Round2(final))
			assert.InDelta(t, l, LaborFromFinal(final, p), 0.01, "parts=%v labor=%v", p, l)
		}
	}
}
