package booking

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf16"
)

const (
	MinNameLength    = 3
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MinPhoneDigits   = 8
	MaxPhoneDigits   = 12
	MaxRentalDays    = 30
	MaxAdvanceMonths = 6
	MaxMessageLength = 1000

	chileCountryCode = "56"
	chileMobileLen   = 9

	DateLayout = "2006-01-02"
)

var (
	// the space class matches unicode.IsSpace, the set strings.Fields splits on
	nameRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\p{Z}\t\n\v\f\r\x{85}'-]+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigit   = regexp.MustCompile(`\D`)

	suspiciousDomains = map[string]struct{}{
		"test.com":    {},
		"example.com": {},
		"temp.com":    {},
	}
)

type FieldResult struct {
	Valid bool
	Error string
}

func ok() FieldResult { return FieldResult{Valid: true} }

func fail(msg string) FieldResult { return FieldResult{Error: msg} }

func ValidateName(name string) FieldResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fail("El nombre es requerido")
	}
	n := textLength(trimmed)
	if n < MinNameLength {
		return fail("El nombre debe tener al menos 3 caracteres")
	}
	if n > MaxNameLength {
		return fail("El nombre es demasiado largo")
	}
	if len(strings.Fields(trimmed)) < 2 {
		return fail("Por favor ingresa tu nombre completo")
	}
	if !nameRegex.MatchString(name) {
		return fail("El nombre contiene caracteres no válidos")
	}
	return ok()
}

func ValidateEmail(email string) FieldResult {
	if strings.TrimSpace(email) == "" {
		return fail("El email es requerido")
	}
	if !emailRegex.MatchString(email) {
		return fail("Por favor ingresa un email válido")
	}
	if len(email) > MaxEmailLength {
		return fail("El email es demasiado largo")
	}
	domain := strings.ToLower(email[strings.IndexByte(email, '@')+1:])
	if _, bad := suspiciousDomains[domain]; bad {
		return fail("Por favor usa un email válido")
	}
	return ok()
}

// ValidatePhone accepts Chilean numbers in any punctuation. Numbers carrying
// the 56 country code must be mobile (9 followed by 8 digits).
func ValidatePhone(phone string) FieldResult {
	if strings.TrimSpace(phone) == "" {
		return fail("El teléfono es requerido")
	}
	digits := nonDigit.ReplaceAllString(phone, "")
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return fail("Número de teléfono inválido")
	}
	if rest, found := strings.CutPrefix(digits, chileCountryCode); found {
		if len(rest) != chileMobileLen || !strings.HasPrefix(rest, "9") {
			return fail("Formato: +56 9 XXXX XXXX")
		}
	}
	return ok()
}

// ValidateDates checks the rental range against today, a calendar date
// already resolved in the business time zone.
func ValidateDates(pickupDate, returnDate string, today time.Time) FieldResult {
	if pickupDate == "" {
		return fail("La fecha de recogida es requerida")
	}
	if returnDate == "" {
		return fail("La fecha de devolución es requerida")
	}

	pickup, err := ParseDate(pickupDate)
	if err != nil {
		return fail("La fecha de recogida no es válida")
	}
	ret, err := ParseDate(returnDate)
	if err != nil {
		return fail("La fecha de devolución no es válida")
	}
	todayDate := civilDate(today)

	if pickup.Before(todayDate) {
		return fail("La fecha de recogida no puede ser en el pasado")
	}
	// same day is fine, rentals are counted in 24h blocks
	if ret.Before(pickup) {
		return fail("La fecha de devolución no puede ser anterior a la de recogida")
	}
	if SpanDays(pickup, ret) > MaxRentalDays {
		return fail("El periodo de arriendo no puede superar 30 días. Contáctanos para reservas más largas.")
	}
	if pickup.After(todayDate.AddDate(0, MaxAdvanceMonths, 0)) {
		return fail("No se pueden hacer reservas con más de 6 meses de anticipación")
	}
	return ok()
}

func ValidateCarType(vehicle string) FieldResult {
	if strings.TrimSpace(vehicle) == "" {
		return fail("Debes seleccionar un tipo de vehículo")
	}
	return ok()
}

func ValidateMessage(message string) FieldResult {
	if textLength(message) > MaxMessageLength {
		return fail("El mensaje es demasiado largo (máximo 1000 caracteres)")
	}
	return ok()
}

// textLength counts UTF-16 code units, the length a browser form reports,
// so characters outside the BMP count twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight so that day
// arithmetic never crosses a DST boundary.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// SpanDays is ceil(|b-a| / 24h).
func SpanDays(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
