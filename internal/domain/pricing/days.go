package pricing

import (
	"math"
	"strings"
	"time"
)

const dateTimeLayout = "2006-01-02T15:04"

// RentalDays counts 24h blocks between pickup and return, rounded up, never
// less than one. Wall-clock times are compared without a zone so a DST
// switch does not add a day.
func RentalDays(pickupDate, pickupTime, returnDate, returnTime string) (int, error) {
	pickup, err := parseDateTime(pickupDate, pickupTime)
	if err != nil {
		return 0, err
	}
	ret, err := parseDateTime(returnDate, returnTime)
	if err != nil {
		return 0, err
	}

	d := ret.Sub(pickup)
	if d < 0 {
		d = -d
	}
	days := int(math.Ceil(d.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

func parseDateTime(date, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = "00:00"
	}
	return time.Parse(dateTimeLayout, strings.TrimSpace(date)+"T"+clock)
}
