// Package order defines the lifecycle states of an order document.
//
// An order moves through a fixed sequence of states:
//
//	Unvalidated -> Validated -> StockReserved -> Prepared -> Delivered
//
// with Invalid as the shared failure state for every stage. Each state is an
// immutable snapshot carrying everything the previous state carried plus the
// fields its producing step added. Invalid carries only the accumulated
// failure reasons and is absorbing: no step advances past it.
//
// The State interface is sealed; the closed set of variants lives entirely in
// this package so that processing steps can dispatch exhaustively on the
// concrete type.
package order
