package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// postalCodePattern allows letters, digits, spaces and dashes, up to 20
// characters.
var postalCodePattern = regexp.MustCompile(`^[A-Za-z0-9\s-]{1,20}$`)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress or ParseAddress")

// Address is a postal address with four mandatory components. The wire form
// is pipe-delimited ("street|city|postal|country") and round-trips through
// ParseAddress and Delimited; the display form joins the components with
// commas.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address from its components. All four are trimmed
// and must be non-empty; the postal code must be at most 20 characters of
// letters, digits, spaces and dashes.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	a, ok := tryNewAddress(street, city, postalCode, country)
	if !ok {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("all of street, city, postal code and country are required and postal code must match %s", postalCodePattern))
	}
	return a, nil
}

// ParseAddress parses the pipe-delimited form "street|city|postal|country".
func ParseAddress(raw string) (Address, error) {
	a, ok := TryParseAddress(raw)
	if !ok {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%q is not of the form \"street|city|postal|country\"", raw))
	}
	return a, nil
}

// TryParseAddress parses the pipe-delimited form, reporting success via the
// boolean instead of an error.
func TryParseAddress(raw string) (Address, bool) {
	parts := strings.Split(raw, "|")
	if len(parts) != 4 {
		return Address{}, false
	}
	return tryNewAddress(parts[0], parts[1], parts[2], parts[3])
}

func tryNewAddress(street, city, postalCode, country string) (Address, bool) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)
	country = strings.TrimSpace(country)
	if street == "" || city == "" || country == "" {
		return Address{}, false
	}
	if !postalCodePattern.MatchString(postalCode) {
		return Address{}, false
	}
	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, true
}

// Validate checks that the Address was produced by a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street component.
func (a Address) Street() string {
	return a.street
}

// City returns the city component.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code component.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country component.
func (a Address) Country() string {
	return a.country
}

// String returns the human-readable comma form,
// "street, city, postal, country".
func (a Address) String() string {
	return strings.Join([]string{a.street, a.city, a.postalCode, a.country}, ", ")
}

// Delimited returns the pipe-delimited wire form, the exact inverse of
// ParseAddress.
func (a Address) Delimited() string {
	return strings.Join([]string{a.street, a.city, a.postalCode, a.country}, "|")
}

// IsEqual compares all four components.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}
