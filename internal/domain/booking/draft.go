package booking

import "strings"

// Draft is the in-progress booking form as typed by the customer.
// Dates use YYYY-MM-DD and times HH:MM.
type Draft struct {
	Name           string
	Email          string
	Phone          string
	PickupLocation string
	PickupDate     string
	PickupTime     string
	ReturnDate     string
	ReturnTime     string
	VehicleName    string
	Message        string
}

type Defaults struct {
	PickupLocation string
	PickupTime     string
}

// WithDefaults fills the fields the storefront pre-populates. The return
// time mirrors the pickup time when left empty.
func (d Draft) WithDefaults(def Defaults) Draft {
	if strings.TrimSpace(d.PickupLocation) == "" {
		d.PickupLocation = def.PickupLocation
	}
	if strings.TrimSpace(d.PickupTime) == "" {
		d.PickupTime = def.PickupTime
	}
	if strings.TrimSpace(d.ReturnTime) == "" {
		d.ReturnTime = d.PickupTime
	}
	return d
}
