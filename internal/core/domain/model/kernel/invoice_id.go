package kernel

import (
	"fmt"
	"regexp"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var invoiceIDPattern = regexp.MustCompile(`^INV-[A-Za-z0-9]{1,45}$`)

// ErrInvoiceIDIsNotConstructed is returned when validating a zero-value
// InvoiceID. InvoiceIDs must be created via ParseInvoiceID or
// TryParseInvoiceID.
var ErrInvoiceIDIsNotConstructed = errs.NewValueIsRequiredError(
	"InvoiceID must be created via ParseInvoiceID or TryParseInvoiceID")

// InvoiceID is the validated identifier of an invoice document.
// It is an immutable value object; the zero value is invalid.
//
// Example valid values: "INV-001", "INV-2024A".
type InvoiceID struct {
	value string
	guard guard.ConstructorGuard
}

// ParseInvoiceID parses the raw input into an InvoiceID, trimming
// surrounding whitespace. Returns an error when the input does not match the
// required pattern or exceeds the overall length cap.
func ParseInvoiceID(raw string) (InvoiceID, error) {
	id, ok := TryParseInvoiceID(raw)
	if !ok {
		return InvoiceID{}, errs.NewValueIsInvalidErrorWithCause("invoiceId",
			fmt.Errorf("%q does not match %s with max length %d", raw, invoiceIDPattern, MaxIdentifierLength))
	}
	return id, nil
}

// TryParseInvoiceID parses the raw input into an InvoiceID, reporting success
// via the boolean instead of an error.
func TryParseInvoiceID(raw string) (InvoiceID, bool) {
	value, ok := normalizeIdentifier(invoiceIDPattern, raw)
	if !ok {
		return InvoiceID{}, false
	}
	return InvoiceID{value: value, guard: guard.NewConstructorGuard()}, true
}

// Validate checks that the InvoiceID was produced by a parse function.
func (id InvoiceID) Validate() error {
	return id.guard.Validate(ErrInvoiceIDIsNotConstructed)
}

// String returns the canonical textual form, the exact inverse of ParseInvoiceID.
func (id InvoiceID) String() string {
	return id.value
}

// IsEqual compares two invoice identifiers by value.
func (id InvoiceID) IsEqual(other InvoiceID) bool {
	return id.value == other.value
}
