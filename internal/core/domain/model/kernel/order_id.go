package kernel

import (
	"fmt"
	"regexp"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// orderIDPattern is the canonical shape of an order identifier: the literal
// "ORD" prefix, a hyphen, then 1 to 45 alphanumeric characters.
var orderIDPattern = regexp.MustCompile(`^ORD-[A-Za-z0-9]{1,45}$`)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
// OrderIDs must be created via ParseOrderID or TryParseOrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via ParseOrderID or TryParseOrderID")

// OrderID is the validated identifier of an order document.
// It is an immutable value object; the zero value is invalid.
//
// Example valid values: "ORD-001", "ORD-2024ABC".
type OrderID struct {
	value string
	guard guard.ConstructorGuard
}

// ParseOrderID parses the raw input into an OrderID, trimming surrounding
// whitespace. Returns an error when the input does not match the required
// pattern or exceeds the overall length cap.
func ParseOrderID(raw string) (OrderID, error) {
	id, ok := TryParseOrderID(raw)
	if !ok {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not match %s with max length %d", raw, orderIDPattern, MaxIdentifierLength))
	}
	return id, nil
}

// TryParseOrderID parses the raw input into an OrderID, reporting success via
// the boolean instead of an error.
func TryParseOrderID(raw string) (OrderID, bool) {
	value, ok := normalizeIdentifier(orderIDPattern, raw)
	if !ok {
		return OrderID{}, false
	}
	return OrderID{value: value, guard: guard.NewConstructorGuard()}, true
}

// Validate checks that the OrderID was produced by a parse function.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the canonical textual form, the exact inverse of ParseOrderID.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
