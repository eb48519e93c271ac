// Package invoiceops contains the processing steps that advance an invoice
// through its lifecycle. See package orderops for the shared dispatch
// contract: each step targets specific states and is the identity on all
// others, with invoice.Invalid as a fixed point.
package invoiceops
