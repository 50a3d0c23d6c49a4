package pricing

import (
	"strconv"
	"strings"

	"booking-intake/internal/domain/catalog"
	"booking-intake/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var DefaultTaxRate = decimal.RequireFromString("0.19")

// Breakdown is immutable once built; a new quote replaces it.
// Amounts are whole currency units.
type Breakdown struct {
	DailyPriceDisplay string
	DailyPriceAmount  int64
	Days              int
	SubtotalAmount    int64
	SubtotalDisplay   string
	TaxAmount         int64
	TaxDisplay        string
	TotalAmount       int64
	TotalDisplay      string
}

type Calculator struct {
	taxRate decimal.Decimal
	prefix  string
	printer *message.Printer
}

type Options struct {
	TaxRate        string
	CurrencyPrefix string
	Locale         string
}

func NewCalculator(opts Options) (*Calculator, error) {
	rate := DefaultTaxRate
	if opts.TaxRate != "" {
		parsed, err := decimal.NewFromString(opts.TaxRate)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid tax rate %q", opts.TaxRate)
		}
		rate = parsed
	}

	tag := language.Make("es-CL")
	if opts.Locale != "" {
		parsed, err := language.Parse(opts.Locale)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid locale %q", opts.Locale)
		}
		tag = parsed
	}

	return &Calculator{
		taxRate: rate,
		prefix:  opts.CurrencyPrefix,
		printer: message.NewPrinter(tag),
	}, nil
}

// Quote prices vehicleName for days using the catalog snapshot. It reports
// false when the vehicle is gone or its price cannot be read; callers show
// no price in that case.
func (c *Calculator) Quote(entries []catalog.Entry, vehicleName string, days int) (Breakdown, bool) {
	entry, found := catalog.FindByName(entries, vehicleName)
	if !found {
		return Breakdown{}, false
	}
	daily, err := ParseAmount(entry.DailyPrice)
	if err != nil {
		return Breakdown{}, false
	}
	if days < 1 {
		days = 1
	}
	return c.breakdown(entry.DailyPrice, daily, days), true
}

func (c *Calculator) breakdown(dailyDisplay string, daily int64, days int) Breakdown {
	subtotal := daily * int64(days)
	// Round is half away from zero, which is half-up for non-negative amounts
	tax := decimal.NewFromInt(subtotal).Mul(c.taxRate).Round(0).IntPart()
	total := subtotal + tax

	return Breakdown{
		DailyPriceDisplay: dailyDisplay,
		DailyPriceAmount:  daily,
		Days:              days,
		SubtotalAmount:    subtotal,
		SubtotalDisplay:   c.Format(subtotal),
		TaxAmount:         tax,
		TaxDisplay:        c.Format(tax),
		TotalAmount:       total,
		TotalDisplay:      c.Format(total),
	}
}

// Format renders an amount with the locale's thousands separator and the
// currency prefix, without decimals.
func (c *Calculator) Format(amount int64) string {
	return c.prefix + c.printer.Sprintf("%d", amount)
}

// ParseAmount reads a catalog price such as "$35.000" or "$35.000,50".
// The currency symbol, thousands dots and spaces are dropped, then the
// leading digits are taken, so a decimal comma ends the amount.
func ParseAmount(price string) (int64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '.', ' ', '\u00a0':
			return -1
		}
		return r
	}, price)

	end := 0
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errs.Mark(errs.New("no digits in price "+strconv.Quote(price)), errs.ErrInvalidPrice)
	}
	amount, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidPrice)
	}
	return amount, nil
}
