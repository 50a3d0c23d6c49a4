//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"booking-intake/internal/domain/booking"
	"booking-intake/internal/pkg/clock"
	"booking-intake/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

type testCase struct {
	name     string
	mutate   func(*builder.DraftBuilder)
	errField string
	errMsg   string
}

func newValidator() *booking.Validator {
	return booking.NewValidator(clock.NewMockClock(today), time.UTC)
}

func TestValidator(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual := newValidator().Validate(builder.NewDraftBuilder(today).BuildDomain())
		assert.True(t, actual.Valid)
		assert.Empty(t, actual.Errors)
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "two tokens OK", mutate: func(b *builder.DraftBuilder) { b.WithName("Ana Soto") }},
			{name: "shortest full name OK", mutate: func(b *builder.DraftBuilder) { b.WithName("A B") }},
			{name: "accented letters OK", mutate: func(b *builder.DraftBuilder) { b.WithName("José Ñúñez Müller") }},
			{name: "no-break space between tokens OK", mutate: func(b *builder.DraftBuilder) { b.WithName("Ana\u00a0Soto") }},
			{name: "ideographic space between tokens OK", mutate: func(b *builder.DraftBuilder) { b.WithName("Ana\u3000Soto") }},
			{name: "apostrophe and hyphen OK", mutate: func(b *builder.DraftBuilder) { b.WithName("Liam O'Brien-Soto") }},
			{name: "empty", mutate: func(b *builder.DraftBuilder) { b.WithName("") }, errField: booking.FieldName, errMsg: "requerido"},
			{name: "blank", mutate: func(b *builder.DraftBuilder) { b.WithName("   ") }, errField: booking.FieldName, errMsg: "requerido"},
			{name: "too short", mutate: func(b *builder.DraftBuilder) { b.WithName("Jo") }, errField: booking.FieldName, errMsg: "al menos 3"},
			{name: "single token", mutate: func(b *builder.DraftBuilder) { b.WithName("Juanito") }, errField: booking.FieldName, errMsg: "nombre completo"},
			{name: "digits", mutate: func(b *builder.DraftBuilder) { b.WithName("Juan 2") }, errField: booking.FieldName, errMsg: "no válidos"},
			{name: "markup", mutate: func(b *builder.DraftBuilder) { b.WithName("Juan <b>Pérez</b>") }, errField: booking.FieldName, errMsg: "no válidos"},
			{
				name:     "too long",
				mutate:   func(b *builder.DraftBuilder) { b.WithName("Juan " + strings.Repeat("a", booking.MaxNameLength)) },
				errField: booking.FieldName,
				errMsg:   "demasiado largo",
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "plain address OK", mutate: func(b *builder.DraftBuilder) { b.WithEmail("ana.soto-1@mail.cl") }},
			{name: "subdomain OK", mutate: func(b *builder.DraftBuilder) { b.WithEmail("ana@correo.empresa.com") }},
			{name: "empty", mutate: func(b *builder.DraftBuilder) { b.WithEmail("") }, errField: booking.FieldEmail, errMsg: "requerido"},
			{name: "no at sign", mutate: func(b *builder.DraftBuilder) { b.WithEmail("not-an-email") }, errField: booking.FieldEmail, errMsg: "email válido"},
			{name: "one letter tld", mutate: func(b *builder.DraftBuilder) { b.WithEmail("ana@mail.c") }, errField: booking.FieldEmail, errMsg: "email válido"},
			{name: "deny-listed domain", mutate: func(b *builder.DraftBuilder) { b.WithEmail("a@test.com") }, errField: booking.FieldEmail, errMsg: "usa un email"},
			{name: "deny-list ignores case", mutate: func(b *builder.DraftBuilder) { b.WithEmail("a@Example.COM") }, errField: booking.FieldEmail, errMsg: "usa un email"},
			{
				name:     "too long",
				mutate:   func(b *builder.DraftBuilder) { b.WithEmail(strings.Repeat("a", 250) + "@mail.cl") },
				errField: booking.FieldEmail,
				errMsg:   "demasiado largo",
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "mobile with country code OK", mutate: func(b *builder.DraftBuilder) { b.WithPhone("+56 9 1234 5678") }},
			{name: "mobile without country code OK", mutate: func(b *builder.DraftBuilder) { b.WithPhone("9 1234 5678") }},
			{name: "eight digit landline OK", mutate: func(b *builder.DraftBuilder) { b.WithPhone("2234-5678") }},
			{name: "empty", mutate: func(b *builder.DraftBuilder) { b.WithPhone("") }, errField: booking.FieldPhone, errMsg: "requerido"},
			{name: "too few digits", mutate: func(b *builder.DraftBuilder) { b.WithPhone("123 4567") }, errField: booking.FieldPhone, errMsg: "inválido"},
			{name: "too many digits", mutate: func(b *builder.DraftBuilder) { b.WithPhone("+56 9 1234 5678 90") }, errField: booking.FieldPhone, errMsg: "inválido"},
			{name: "country code with landline", mutate: func(b *builder.DraftBuilder) { b.WithPhone("+56 2 1234 5678") }, errField: booking.FieldPhone, errMsg: "+56 9"},
			{name: "country code with short number", mutate: func(b *builder.DraftBuilder) { b.WithPhone("+56 9 1234 567") }, errField: booking.FieldPhone, errMsg: "+56 9"},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "same day pickup and return OK", mutate: func(b *builder.DraftBuilder) { b.WithDays(0, 0) }},
			{name: "thirty day span OK", mutate: func(b *builder.DraftBuilder) { b.WithDays(1, 31) }},
			{name: "six months ahead OK", mutate: func(b *builder.DraftBuilder) { b.WithDays(184, 185) }},
			{name: "pickup in the past", mutate: func(b *builder.DraftBuilder) { b.WithDays(-1, 2) }, errField: booking.FieldDates, errMsg: "pasado"},
			{name: "return before pickup", mutate: func(b *builder.DraftBuilder) { b.WithDays(5, 4) }, errField: booking.FieldDates, errMsg: "anterior"},
			{name: "thirty one day span", mutate: func(b *builder.DraftBuilder) { b.WithDays(1, 32) }, errField: booking.FieldDates, errMsg: "30 días"},
			{name: "beyond six months", mutate: func(b *builder.DraftBuilder) { b.WithDays(185, 186) }, errField: booking.FieldDates, errMsg: "6 meses"},
		})

		v := newValidator()
		missingPickup := builder.NewDraftBuilder(today).BuildDomain()
		missingPickup.PickupDate = ""
		assert.Contains(t, v.Validate(missingPickup).Errors[booking.FieldDates], "recogida es requerida")

		missingReturn := builder.NewDraftBuilder(today).BuildDomain()
		missingReturn.ReturnDate = ""
		assert.Contains(t, v.Validate(missingReturn).Errors[booking.FieldDates], "devolución es requerida")

		garbled := builder.NewDraftBuilder(today).BuildDomain()
		garbled.PickupDate = "10/03/2026"
		assert.Contains(t, v.Validate(garbled).Errors[booking.FieldDates], "no es válida")
	})

	t.Run("vehicle and message validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty message OK", mutate: func(b *builder.DraftBuilder) { b.WithMessage("") }},
			{name: "1000 char message OK", mutate: func(b *builder.DraftBuilder) { b.WithMessage(strings.Repeat("ñ", booking.MaxMessageLength)) }},
			{
				name:     "1001 char message",
				mutate:   func(b *builder.DraftBuilder) { b.WithMessage(strings.Repeat("a", booking.MaxMessageLength+1)) },
				errField: booking.FieldMessage,
				errMsg:   "demasiado largo",
			},
			{name: "500 emoji message OK", mutate: func(b *builder.DraftBuilder) { b.WithMessage(strings.Repeat("🚗", booking.MaxMessageLength/2)) }},
			{
				name:     "501 emoji message counts surrogate pairs",
				mutate:   func(b *builder.DraftBuilder) { b.WithMessage(strings.Repeat("🚗", booking.MaxMessageLength/2+1)) },
				errField: booking.FieldMessage,
				errMsg:   "demasiado largo",
			},
			{name: "no vehicle", mutate: func(b *builder.DraftBuilder) { b.WithVehicle("") }, errField: booking.FieldCarType, errMsg: "vehículo"},
			{name: "blank vehicle", mutate: func(b *builder.DraftBuilder) { b.WithVehicle("  ") }, errField: booking.FieldCarType, errMsg: "vehículo"},
		})
	})

	t.Run("empty draft reports every required field", func(t *testing.T) {
		actual := newValidator().Validate(booking.Draft{})
		assert.False(t, actual.Valid)
		for _, f := range []string{booking.FieldName, booking.FieldEmail, booking.FieldPhone, booking.FieldDates, booking.FieldCarType} {
			assert.Contains(t, actual.Errors, f)
		}
		assert.NotContains(t, actual.Errors, booking.FieldMessage)
	})

	t.Run("validation is repeatable", func(t *testing.T) {
		v := newValidator()
		draft := builder.NewDraftBuilder(today).WithName("X").WithPhone("12").BuildDomain()

		first := v.Validate(draft)
		second := v.Validate(draft)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Result mismatch (-first +second):\n%s", diff)
		}
	})

	t.Run("single field path keeps only the requested key", func(t *testing.T) {
		draft := builder.NewDraftBuilder(today).WithName("X").WithPhone("12").BuildDomain()
		actual := newValidator().ValidateField(draft, booking.FieldPhone)
		require.False(t, actual.Valid)
		assert.Len(t, actual.Errors, 1)
		assert.Contains(t, actual.Errors, booking.FieldPhone)

		clean := newValidator().ValidateField(draft, booking.FieldEmail)
		assert.True(t, clean.Valid)
		assert.Empty(t, clean.Errors)
	})
}

func TestDraftDefaults(t *testing.T) {
	def := booking.Defaults{PickupLocation: "Iquique", PickupTime: "09:00"}

	filled := booking.Draft{}.WithDefaults(def)
	assert.Equal(t, "Iquique", filled.PickupLocation)
	assert.Equal(t, "09:00", filled.PickupTime)
	assert.Equal(t, "09:00", filled.ReturnTime)

	mirrored := booking.Draft{PickupTime: "14:30"}.WithDefaults(def)
	assert.Equal(t, "14:30", mirrored.ReturnTime)

	kept := booking.Draft{PickupLocation: "Alto Hospicio", PickupTime: "10:00", ReturnTime: "18:00"}.WithDefaults(def)
	assert.Equal(t, "Alto Hospicio", kept.PickupLocation)
	assert.Equal(t, "18:00", kept.ReturnTime)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	v := newValidator()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			draft := builder.NewDraftBuilder(today).With(c.mutate).BuildDomain()
			actual := v.Validate(draft)

			if c.errField == "" {
				require.True(t, actual.Valid, "unexpected errors: %v", actual.Errors)
				require.Empty(t, actual.Errors)
			} else {
				require.False(t, actual.Valid)
				require.Len(t, actual.Errors, 1, "errors: %v", actual.Errors)
				require.Contains(t, actual.Errors[c.errField], c.errMsg)
			}
		})
	}
}
