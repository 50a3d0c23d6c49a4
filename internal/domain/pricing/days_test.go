//go:build unit

package pricing_test

import (
	"testing"

	"booking-intake/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays(t *testing.T) {
	cases := []struct {
		name                       string
		pDate, pTime, rDate, rTime string
		want                       int
	}{
		{name: "same day same time counts one", pDate: "2026-03-10", pTime: "09:00", rDate: "2026-03-10", rTime: "09:00", want: 1},
		{name: "exact 24h blocks", pDate: "2026-03-10", pTime: "09:00", rDate: "2026-03-13", rTime: "09:00", want: 3},
		{name: "one extra hour starts a new day", pDate: "2026-03-10", pTime: "09:00", rDate: "2026-03-13", rTime: "10:00", want: 4},
		{name: "return earlier in the day", pDate: "2026-03-10", pTime: "18:00", rDate: "2026-03-11", rTime: "09:00", want: 1},
		{name: "empty times mean midnight", pDate: "2026-03-10", rDate: "2026-03-12", want: 2},
		{name: "DST weekend is not an extra day", pDate: "2026-04-03", pTime: "09:00", rDate: "2026-04-06", rTime: "09:00", want: 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := pricing.RentalDays(c.pDate, c.pTime, c.rDate, c.rTime)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	_, err := pricing.RentalDays("2026-13-01", "09:00", "2026-03-12", "09:00")
	assert.Error(t, err)
	_, err = pricing.RentalDays("2026-03-10", "9am", "2026-03-12", "09:00")
	assert.Error(t, err)
}
