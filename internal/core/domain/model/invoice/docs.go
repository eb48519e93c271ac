// Package invoice defines the lifecycle states of an invoice document:
//
//	Unvalidated -> Validated -> Generated -> Sent
//
// with the absorbing Invalid failure state shared by every stage. The shape
// mirrors package order; see its documentation for the state model rules.
package invoice
