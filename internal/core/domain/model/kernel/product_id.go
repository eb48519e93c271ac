package kernel

import (
	"fmt"
	"regexp"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// productIDPattern allows letters, digits, underscores and hyphens. Unlike the
// prefixed identifiers, a product id carries no mandatory prefix; the pattern
// itself bounds the length to 50 characters.
var productIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

// ErrProductIDIsNotConstructed is returned when validating a zero-value
// ProductID. ProductIDs must be created via ParseProductID or
// TryParseProductID.
var ErrProductIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductID must be created via ParseProductID or TryParseProductID")

// ProductID is the validated identifier of a catalog product.
// It is an immutable value object; the zero value is invalid.
//
// Example valid values: "PROD-001", "SKU_12345", "ITEM-ABC-123".
type ProductID struct {
	value string
	guard guard.ConstructorGuard
}

// ParseProductID parses the raw input into a ProductID, trimming surrounding
// whitespace. Returns an error when the input does not match the required
// pattern.
func ParseProductID(raw string) (ProductID, error) {
	id, ok := TryParseProductID(raw)
	if !ok {
		return ProductID{}, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%q does not match %s", raw, productIDPattern))
	}
	return id, nil
}

// TryParseProductID parses the raw input into a ProductID, reporting success
// via the boolean instead of an error.
func TryParseProductID(raw string) (ProductID, bool) {
	value, ok := normalizeIdentifier(productIDPattern, raw)
	if !ok {
		return ProductID{}, false
	}
	return ProductID{value: value, guard: guard.NewConstructorGuard()}, true
}

// Validate checks that the ProductID was produced by a parse function.
func (id ProductID) Validate() error {
	return id.guard.Validate(ErrProductIDIsNotConstructed)
}

// String returns the canonical textual form, the exact inverse of ParseProductID.
func (id ProductID) String() string {
	return id.value
}

// IsEqual compares two product identifiers by value.
func (id ProductID) IsEqual(other ProductID) bool {
	return id.value == other.value
}
