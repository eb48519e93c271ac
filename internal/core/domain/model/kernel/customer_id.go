package kernel

import (
	"fmt"
	"regexp"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var customerIDPattern = regexp.MustCompile(`^CUST-[A-Za-z0-9]{1,45}$`)

// ErrCustomerIDIsNotConstructed is returned when validating a zero-value
// CustomerID. CustomerIDs must be created via ParseCustomerID or
// TryParseCustomerID.
var ErrCustomerIDIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerID must be created via ParseCustomerID or TryParseCustomerID")

// CustomerID is the validated identifier of a customer.
// It is an immutable value object; the zero value is invalid.
//
// Example valid values: "CUST-001", "CUST-ABC123".
type CustomerID struct {
	value string
	guard guard.ConstructorGuard
}

// ParseCustomerID parses the raw input into a CustomerID, trimming
// surrounding whitespace. Returns an error when the input does not match the
// required pattern or exceeds the overall length cap.
func ParseCustomerID(raw string) (CustomerID, error) {
	id, ok := TryParseCustomerID(raw)
	if !ok {
		return CustomerID{}, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%q does not match %s with max length %d", raw, customerIDPattern, MaxIdentifierLength))
	}
	return id, nil
}

// TryParseCustomerID parses the raw input into a CustomerID, reporting
// success via the boolean instead of an error.
func TryParseCustomerID(raw string) (CustomerID, bool) {
	value, ok := normalizeIdentifier(customerIDPattern, raw)
	if !ok {
		return CustomerID{}, false
	}
	return CustomerID{value: value, guard: guard.NewConstructorGuard()}, true
}

// Validate checks that the CustomerID was produced by a parse function.
func (id CustomerID) Validate() error {
	return id.guard.Validate(ErrCustomerIDIsNotConstructed)
}

// String returns the canonical textual form, the exact inverse of ParseCustomerID.
func (id CustomerID) String() string {
	return id.value
}

// IsEqual compares two customer identifiers by value.
func (id CustomerID) IsEqual(other CustomerID) bool {
	return id.value == other.value
}
