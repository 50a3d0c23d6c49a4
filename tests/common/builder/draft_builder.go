//go:build unit || e2e

package builder

import (
	"time"

	"booking-intake/internal/domain/booking"
	reqdto "booking-intake/internal/handler/dto/request"
)

// DraftBuilder produces a draft that passes every rule relative to Today.
type DraftBuilder struct {
	Today          time.Time
	Name           string
	Email          string
	Phone          string
	PickupLocation string
	PickupOffset   int
	PickupTime     string
	ReturnOffset   int
	ReturnTime     string
	VehicleName    string
	Message        string
}

func NewDraftBuilder(today time.Time) *DraftBuilder {
	return &DraftBuilder{
		Today:          today,
		Name:           "Juan Pérez",
		Email:          "juan.perez@gmail.com",
		Phone:          "+56 9 1234 5678",
		PickupLocation: "Iquique",
		PickupOffset:   1,
		PickupTime:     "09:00",
		ReturnOffset:   4,
		ReturnTime:     "09:00",
		VehicleName:    "SUV",
		Message:        "Llego en el vuelo de la tarde",
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) BuildDomain() booking.Draft {
	return booking.Draft{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		PickupLocation: b.PickupLocation,
		PickupDate:     b.date(b.PickupOffset),
		PickupTime:     b.PickupTime,
		ReturnDate:     b.date(b.ReturnOffset),
		ReturnTime:     b.ReturnTime,
		VehicleName:    b.VehicleName,
		Message:        b.Message,
	}
}

func (b *DraftBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		PickupLocation: b.PickupLocation,
		PickupDate:     b.date(b.PickupOffset),
		PickupTime:     b.PickupTime,
		ReturnDate:     b.date(b.ReturnOffset),
		ReturnTime:     b.ReturnTime,
		CarType:        b.VehicleName,
		Message:        b.Message,
	}
}

func (b *DraftBuilder) BuildQuoteDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		CarType:    b.VehicleName,
		PickupDate: b.date(b.PickupOffset),
		PickupTime: b.PickupTime,
		ReturnDate: b.date(b.ReturnOffset),
		ReturnTime: b.ReturnTime,
	}
}

// Fluent builder methods
func (b *DraftBuilder) WithName(name string) *DraftBuilder {
	b.Name = name
	return b
}

func (b *DraftBuilder) WithEmail(email string) *DraftBuilder {
	b.Email = email
	return b
}

func (b *DraftBuilder) WithPhone(phone string) *DraftBuilder {
	b.Phone = phone
	return b
}

func (b *DraftBuilder) WithDays(pickupOffset, returnOffset int) *DraftBuilder {
	b.PickupOffset = pickupOffset
	b.ReturnOffset = returnOffset
	return b
}

func (b *DraftBuilder) WithVehicle(name string) *DraftBuilder {
	b.VehicleName = name
	return b
}

func (b *DraftBuilder) WithMessage(message string) *DraftBuilder {
	b.Message = message
	return b
}

func (b *DraftBuilder) date(offset int) string {
	return b.Today.AddDate(0, 0, offset).Format(booking.DateLayout)
}
