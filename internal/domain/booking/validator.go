package booking

import (
	"slices"
	"time"

	"booking-intake/internal/pkg/clock"
)

// Error map keys. Both date fields report under FieldDates.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldDates   = "dates"
	FieldCarType = "carType"
	FieldMessage = "message"
)

var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldDates, FieldCarType, FieldMessage}

type Result struct {
	Valid  bool
	Errors map[string]string
}

type Validator struct {
	clock clock.Clock
	loc   *time.Location
}

func NewValidator(clk clock.Clock, loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{clock: clk, loc: loc}
}

// Validate runs every field rule against the draft. It has no side effects.
func (v *Validator) Validate(d Draft) Result {
	today := clock.Today(v.clock, v.loc)
	errors := make(map[string]string)

	checks := []struct {
		field  string
		result FieldResult
	}{
		{FieldName, ValidateName(d.Name)},
		{FieldEmail, ValidateEmail(d.Email)},
		{FieldPhone, ValidatePhone(d.Phone)},
		{FieldDates, ValidateDates(d.PickupDate, d.ReturnDate, today)},
		{FieldCarType, ValidateCarType(d.VehicleName)},
		{FieldMessage, ValidateMessage(d.Message)},
	}
	for _, c := range checks {
		if !c.result.Valid {
			errors[c.field] = c.result.Error
		}
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}

// ValidateField is the on-blur path: the whole draft is validated and only
// the requested key is kept.
func (v *Validator) ValidateField(d Draft, field string) Result {
	full := v.Validate(d)
	errors := make(map[string]string)
	if msg, found := full.Errors[field]; found {
		errors[field] = msg
	}
	return Result{Valid: len(errors) == 0, Errors: errors}
}

func IsKnownField(field string) bool {
	return slices.Contains(Fields, field)
}
