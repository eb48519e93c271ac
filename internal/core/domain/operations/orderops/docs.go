// Package orderops contains the processing steps that advance an order
// through its lifecycle.
//
// Every step exposes Apply(order.State) order.State and dispatches on the
// concrete state type: a state the step targets is advanced (or failed into
// order.Invalid with reasons), every other state is returned unchanged. The
// identity default lets a workflow chain steps blindly; once a step produces
// Invalid, all later steps pass it through untouched.
//
// External effects (existence checks, price lookups, reservations) are
// injected as functions. A step treats a callback error as a negative result
// and records it as a failure reason; only a nil callback at construction is
// a configuration error.
package orderops
