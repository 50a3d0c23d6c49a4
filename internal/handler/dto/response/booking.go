package response

import (
	"booking-intake/internal/domain/booking"
	"booking-intake/internal/domain/catalog"
	"booking-intake/internal/domain/pricing"
	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"
)

type ValidationResponse struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

type PriceResponse struct {
	DailyPrice       string `json:"dailyPrice"`
	DailyPriceAmount int64  `json:"dailyPriceAmount"`
	Days             int    `json:"days"`
	Subtotal         string `json:"subtotal"`
	SubtotalAmount   int64  `json:"subtotalAmount"`
	Iva              string `json:"iva"`
	IvaAmount        int64  `json:"ivaAmount"`
	Total            string `json:"total"`
	TotalAmount      int64  `json:"totalAmount"`
}

type QuoteResponse struct {
	Days  int            `json:"days"`
	Price *PriceResponse `json:"price"`
}

type ThrottleResponse struct {
	Allowed              bool `json:"allowed"`
	RemainingTimeMinutes int  `json:"remainingTimeMinutes"`
	AttemptsLeft         int  `json:"attemptsLeft"`
}

type SubmitResponse struct {
	Reference    string         `json:"reference"`
	Days         int            `json:"days"`
	Price        *PriceResponse `json:"price"`
	AttemptsLeft int            `json:"attemptsLeft"`
}

type WhatsAppResponse struct {
	Link  string         `json:"link"`
	Days  int            `json:"days"`
	Price *PriceResponse `json:"price"`
}

type VehicleResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Model     string `json:"model,omitempty"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

func FromValidationResult(r booking.Result) ValidationResponse {
	errors := r.Errors
	if errors == nil {
		errors = map[string]string{}
	}
	return ValidationResponse{IsValid: r.Valid, Errors: errors}
}

func FromBreakdown(b *pricing.Breakdown) *PriceResponse {
	if b == nil {
		return nil
	}
	return &PriceResponse{
		DailyPrice:       b.DailyPriceDisplay,
		DailyPriceAmount: b.DailyPriceAmount,
		Days:             b.Days,
		Subtotal:         b.SubtotalDisplay,
		SubtotalAmount:   b.SubtotalAmount,
		Iva:              b.TaxDisplay,
		IvaAmount:        b.TaxAmount,
		Total:            b.TotalDisplay,
		TotalAmount:      b.TotalAmount,
	}
}

func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	return QuoteResponse{Days: v.Days, Price: FromBreakdown(v.Price)}
}

func FromDecision(d throttle.Decision) ThrottleResponse {
	return ThrottleResponse{
		Allowed:              d.Allowed,
		RemainingTimeMinutes: d.RemainingTimeMinutes,
		AttemptsLeft:         d.AttemptsLeft,
	}
}

func FromSubmitResult(r *commands.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Reference:    r.Reference,
		Days:         r.Days,
		Price:        FromBreakdown(r.Price),
		AttemptsLeft: r.AttemptsLeft,
	}
}

func FromWhatsAppResult(r *commands.WhatsAppResult) WhatsAppResponse {
	return WhatsAppResponse{Link: r.Link, Days: r.Days, Price: FromBreakdown(r.Price)}
}

func FromCatalog(entries []catalog.Entry) []VehicleResponse {
	out := make([]VehicleResponse, len(entries))
	for i, e := range entries {
		out[i] = VehicleResponse{
			ID:        e.ID,
			Name:      e.Name,
			Model:     e.Model,
			Price:     e.DailyPrice,
			Available: e.Available,
		}
	}
	return out
}
