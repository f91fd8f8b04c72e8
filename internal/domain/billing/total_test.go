package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		discount string
		tax      string
		total    string
	}{
		{"sin descuento ni impuesto", "800", "0", "0", "800"},
		{"solo descuento", "800", "10", "0", "720"},
		{"solo impuesto", "800", "0", "21", "968"},
		{"descuento e impuesto", "800", "10", "21", "871.2"},
		{"subtotal cero", "0", "10", "21", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotal(dec(tc.subtotal), dec(tc.discount), dec(tc.tax))
			assert.True(t, dec(tc.total).Equal(got.Total),
				"esperado %s, obtenido %s", tc.total, got.Total)
		})
	}
}

func TestComputeTotalRoundsEachStep(t *testing.T) {
	// 33.33 * 10% = 3.333 → 3.33; 30.00 * 19% = 5.70.
	got := ComputeTotal(dec("33.33"), dec("10"), dec("19"))
	assert.True(t, dec("3.33").Equal(got.DiscountAmount), got.DiscountAmount.String())
	assert.True(t, dec("5.70").Equal(got.TaxAmount), got.TaxAmount.String())
	assert.True(t, dec("35.70").Equal(got.Total), got.Total.String())

	// Mitad exacta redondea hacia arriba: 10.05 * 50% = 5.025 → 5.03.
	got = ComputeTotal(dec("10.05"), dec("50"), dec("0"))
	assert.True(t, dec("5.03").Equal(got.DiscountAmount), got.DiscountAmount.String())
}

func TestSummarize(t *testing.T) {
	s := Summarize(dec("1000"), dec("400"))
	assert.True(t, dec("600").Equal(s.Remaining))
	assert.False(t, s.Settled)

	s = Summarize(dec("1000"), dec("1000"))
	assert.True(t, s.Remaining.IsZero())
	assert.True(t, s.Settled)
}

func TestFitsRemaining(t *testing.T) {
	assert.True(t, FitsRemaining(dec("600"), dec("1000"), dec("400")))
	assert.False(t, FitsRemaining(dec("600.01"), dec("1000"), dec("400")))
}
