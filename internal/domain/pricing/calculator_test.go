//go:build unit

package pricing_test

import (
	"testing"

	"booking-intake/internal/domain/catalog"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fleet = []catalog.Entry{
	{ID: 1, Name: "Sedán", DailyPrice: "$25.000", Available: true},
	{ID: 2, Name: "SUV", DailyPrice: "$35.000", Available: true},
	{ID: 3, Name: "Camioneta", DailyPrice: "$1.250.000", Available: false},
	{ID: 4, Name: "Consultar", DailyPrice: "A convenir", Available: true},
}

func newCalculator(t *testing.T) *pricing.Calculator {
	t.Helper()
	calc, err := pricing.NewCalculator(pricing.Options{TaxRate: "0.19", CurrencyPrefix: "$", Locale: "es-CL"})
	require.NoError(t, err)
	return calc
}

func TestCalculator_Quote(t *testing.T) {
	calc := newCalculator(t)

	t.Run("three days of SUV", func(t *testing.T) {
		actual, ok := calc.Quote(fleet, "SUV", 3)
		require.True(t, ok)

		expected := pricing.Breakdown{
			DailyPriceDisplay: "$35.000",
			DailyPriceAmount:  35000,
			Days:              3,
			SubtotalAmount:    105000,
			SubtotalDisplay:   "$105.000",
			TaxAmount:         19950,
			TaxDisplay:        "$19.950",
			TotalAmount:       124950,
			TotalDisplay:      "$124.950",
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("amount invariants hold", func(t *testing.T) {
		for days := 1; days <= 30; days++ {
			for _, e := range fleet[:3] {
				b, ok := calc.Quote(fleet, e.Name, days)
				require.True(t, ok)
				assert.Equal(t, b.DailyPriceAmount*int64(days), b.SubtotalAmount)
				assert.Equal(t, b.SubtotalAmount+b.TaxAmount, b.TotalAmount)
			}
		}
	})

	t.Run("tax rounds half up", func(t *testing.T) {
		// 50 * 0.19 = 9.5
		actual, ok := calc.Quote([]catalog.Entry{{Name: "Moto", DailyPrice: "$50"}}, "Moto", 1)
		require.True(t, ok)
		assert.Equal(t, int64(10), actual.TaxAmount)

		// 2 * 0.19 = 0.38
		low, ok := calc.Quote([]catalog.Entry{{Name: "Bici", DailyPrice: "$2"}}, "Bici", 1)
		require.True(t, ok)
		assert.Equal(t, int64(0), low.TaxAmount)
	})

	t.Run("millions keep every separator", func(t *testing.T) {
		actual, ok := calc.Quote(fleet, "Camioneta", 2)
		require.True(t, ok)
		assert.Equal(t, int64(2500000), actual.SubtotalAmount)
		assert.Equal(t, "$2.500.000", actual.SubtotalDisplay)
		assert.Equal(t, "$2.975.000", actual.TotalDisplay)
	})

	t.Run("decimal comma does not inflate the daily price", func(t *testing.T) {
		actual, ok := calc.Quote([]catalog.Entry{{Name: "SUV", DailyPrice: "$35.000,50"}}, "SUV", 3)
		require.True(t, ok)
		assert.Equal(t, int64(35000), actual.DailyPriceAmount)
		assert.Equal(t, "$124.950", actual.TotalDisplay)
	})

	t.Run("days below one are priced as one", func(t *testing.T) {
		actual, ok := calc.Quote(fleet, "SUV", 0)
		require.True(t, ok)
		assert.Equal(t, 1, actual.Days)
		assert.Equal(t, int64(35000), actual.SubtotalAmount)
	})

	t.Run("unknown vehicle yields no breakdown", func(t *testing.T) {
		_, ok := calc.Quote(fleet, "suv", 3)
		assert.False(t, ok, "lookup is an exact match")

		_, ok = calc.Quote(nil, "SUV", 3)
		assert.False(t, ok)
	})

	t.Run("unreadable price yields no breakdown", func(t *testing.T) {
		_, ok := calc.Quote(fleet, "Consultar", 3)
		assert.False(t, ok)
	})
}

func TestNewCalculator_RejectsBadOptions(t *testing.T) {
	_, err := pricing.NewCalculator(pricing.Options{TaxRate: "diecinueve"})
	assert.Error(t, err)

	_, err = pricing.NewCalculator(pricing.Options{Locale: "!!"})
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{in: "$35.000", want: 35000},
		{in: "35000", want: 35000},
		{in: "$ 1.250.000", want: 1250000},
		{in: "$35.000,00", want: 35000},
		{in: "$35.000,50", want: 35000},
		{in: "$35.000/día", want: 35000},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := pricing.ParseAmount(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	_, err := pricing.ParseAmount("A convenir")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidPrice))
}
