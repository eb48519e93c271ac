// Package shipmentops contains the processing steps that advance a shipment
// through its lifecycle. See package orderops for the shared dispatch
// contract: each step targets specific states and is the identity on all
// others, with shipment.Invalid as a fixed point.
package shipmentops
