package outbound

import (
	"fmt"
	"net/url"
	"strings"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/pkg/sanitize"
)

// MessageText is the human-readable booking summary sent through the
// messaging deep link. Fields are sanitized; the result is not yet encoded.
func MessageText(d booking.Draft, days int, price *pricing.Breakdown) string {
	var b strings.Builder
	b.WriteString("¡Hola! Quiero hacer una reserva:\n\n")
	fmt.Fprintf(&b, "👤 %s\n", sanitize.Text(d.Name))
	fmt.Fprintf(&b, "📧 %s\n", sanitize.Text(d.Email))
	fmt.Fprintf(&b, "📱 %s\n", sanitize.Text(d.Phone))
	fmt.Fprintf(&b, "📍 Recogida: %s\n", sanitize.Text(d.PickupLocation))
	fmt.Fprintf(&b, "📅 %s %s → %s %s\n",
		sanitize.Text(d.PickupDate), sanitize.Text(d.PickupTime),
		sanitize.Text(d.ReturnDate), sanitize.Text(d.ReturnTime))
	fmt.Fprintf(&b, "🚗 Vehículo: %s\n", sanitize.Text(d.VehicleName))
	fmt.Fprintf(&b, "⏰ %d día(s)", days)
	if price != nil {
		fmt.Fprintf(&b, "\n💰 Total: %s", price.TotalDisplay)
	}
	if msg := sanitize.Text(d.Message); msg != "" {
		fmt.Fprintf(&b, "\n💬 %s", msg)
	}
	return b.String()
}

// DeepLink builds https://<host>/<number>?text=<encoded>. Spaces are
// encoded as %20 since some messaging clients render '+' literally.
func DeepLink(host, number, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://" + host + "/" + url.PathEscape(number) + "?text=" + encoded
}

// WhatsAppLink composes the summary and the deep link in one step.
func WhatsAppLink(host, number string, d booking.Draft, days int, price *pricing.Breakdown) string {
	return DeepLink(host, number, MessageText(d, days, price))
}
