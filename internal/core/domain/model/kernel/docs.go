// Package kernel provides the validated value objects shared by every document
// pipeline in the fulfillment system. It implements the fundamental building
// blocks following Domain-Driven Design principles.
//
// The package includes:
//   - OrderID, CustomerID, InvoiceID: prefixed business identifiers
//   - ProductID: an unprefixed catalog identifier
//   - Money: a non-negative decimal amount paired with a currency code
//   - Address: a four-field postal address
//
// Every value object is immutable and validated at construction: a strict
// Parse function returns the value or an error, and a TryParse variant reports
// success through a boolean instead. No instance can exist in an invalid
// state; the zero value of each type fails Validate.
//
// All types carry a canonical textual form that round-trips through their
// parse function, which is what the persistence and HTTP adapters rely on.
package kernel
