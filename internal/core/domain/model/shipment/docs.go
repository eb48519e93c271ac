// Package shipment defines the lifecycle states of a shipment document:
//
//	Unvalidated -> Validated -> Prepared -> Delivered
//
// with the absorbing Invalid failure state shared by every stage. The shape
// mirrors package order; see its documentation for the state model rules.
package shipment
