package outbound

import (
	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/pkg/sanitize"
)

// NotAvailable stands in for price fields when no breakdown exists.
const NotAvailable = "N/A"

// EmailParams is the flat template payload handed to the email channel.
type EmailParams map[string]any

// NewEmailParams sanitizes every draft field. price may be nil.
func NewEmailParams(reference string, d booking.Draft, days int, price *pricing.Breakdown) EmailParams {
	p := EmailParams{
		"reference":       reference,
		"from_name":       sanitize.Text(d.Name),
		"from_email":      sanitize.Text(d.Email),
		"phone":           sanitize.Text(d.Phone),
		"pickup_location": sanitize.Text(d.PickupLocation),
		"pickup_date":     sanitize.Text(d.PickupDate),
		"pickup_time":     sanitize.Text(d.PickupTime),
		"return_date":     sanitize.Text(d.ReturnDate),
		"return_time":     sanitize.Text(d.ReturnTime),
		"car_type":        sanitize.Text(d.VehicleName),
		"message":         sanitize.Text(d.Message),
		"rental_days":     days,
		"daily_price":     NotAvailable,
		"subtotal":        NotAvailable,
		"iva":             NotAvailable,
		"total":           NotAvailable,
	}
	if price != nil {
		p["daily_price"] = sanitize.Text(price.DailyPriceDisplay)
		p["subtotal"] = price.SubtotalDisplay
		p["iva"] = price.TaxDisplay
		p["total"] = price.TotalDisplay
	}
	return p
}

// Template selects which email a dispatch renders.
type Template string

const (
	// TemplateOwner notifies the rental business. It must be delivered.
	TemplateOwner Template = "owner"
	// TemplateClient confirms the request to the customer. Best effort.
	TemplateClient Template = "client"
)
