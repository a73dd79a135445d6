package kernel

import (
	"errors"
	"strings"

	"quickbite/internal/pkg/errs"
)

// Address is a postal address copied by value into deliveries. Later edits
// to the restaurant or customer record never reach an existing snapshot.
type Address struct {
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
}

// NewAddress requires line1 and city; the other parts are optional.
func NewAddress(line1, line2, city, state, postalCode, country string) (Address, error) {
	a := Address{
		line1:      strings.TrimSpace(line1),
		line2:      strings.TrimSpace(line2),
		city:       strings.TrimSpace(city),
		state:      strings.TrimSpace(state),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.TrimSpace(country),
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate reports whether the address is usable as a pickup or drop-off point.
func (a Address) Validate() error {
	var err error
	if a.line1 == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address line1"))
	}
	if a.city == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address city"))
	}
	return err
}

func (a Address) Line1() string      { return a.line1 }
func (a Address) Line2() string      { return a.line2 }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

func (a Address) IsEqual(other Address) bool {
	return a == other
}

func (a Address) String() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.line1, a.line2, a.city, a.state, a.postalCode, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
