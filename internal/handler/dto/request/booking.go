package request

import (
	"booking-intake/internal/domain/booking"
	"booking-intake/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Every field is optional at the transport level; missing values surface
// as per-field validation messages.
type BookingRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PickupLocation string `json:"pickupLocation"`
	PickupDate     string `json:"pickupDate"`
	PickupTime     string `json:"pickupTime"`
	ReturnDate     string `json:"returnDate"`
	ReturnTime     string `json:"returnTime"`
	CarType        string `json:"carType" copier:"VehicleName"`
	Message        string `json:"message"`
}

func (r BookingRequest) ToDomain() (booking.Draft, error) {
	var d booking.Draft
	if err := copier.Copy(&d, &r); err != nil {
		return booking.Draft{}, errs.Wrap(err, "map booking request")
	}
	return d, nil
}

type QuoteRequest struct {
	CarType    string `json:"carType" copier:"VehicleName"`
	PickupDate string `json:"pickupDate"`
	PickupTime string `json:"pickupTime"`
	ReturnDate string `json:"returnDate"`
	ReturnTime string `json:"returnTime"`
}

func (r QuoteRequest) ToDomain() (booking.Draft, error) {
	var d booking.Draft
	if err := copier.Copy(&d, &r); err != nil {
		return booking.Draft{}, errs.Wrap(err, "map quote request")
	}
	return d, nil
}
