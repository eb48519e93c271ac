package shipmentops

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// AssignCarrierFunc picks the carrier for a delivery address.
type AssignCarrierFunc func(deliveryAddress string) (string, error)

// TrackingNumberFunc mints a tracking number with the chosen carrier.
type TrackingNumberFunc func(carrier string) (string, error)

// PrepareShipment advances Validated to Prepared by assigning a carrier and
// minting a tracking number with it. The tracking number is only requested
// once a carrier has been assigned.
type PrepareShipment struct {
	generateTrackingNumber TrackingNumberFunc
	assignCarrier          AssignCarrierFunc
}

// NewPrepareShipment builds the step. Both callbacks are required.
func NewPrepareShipment(generateTrackingNumber TrackingNumberFunc, assignCarrier AssignCarrierFunc) (*PrepareShipment, error) {
	if generateTrackingNumber == nil {
		return nil, errs.NewValueIsRequiredError("generateTrackingNumber")
	}
	if assignCarrier == nil {
		return nil, errs.NewValueIsRequiredError("assignCarrier")
	}
	return &PrepareShipment{
		generateTrackingNumber: generateTrackingNumber,
		assignCarrier:          assignCarrier,
	}, nil
}

// Apply dispatches on the current state. Only Validated is targeted.
func (op *PrepareShipment) Apply(state shipment.State) shipment.State {
	switch s := state.(type) {
	case shipment.Validated:
		return op.onValidated(s)
	case shipment.Unvalidated, shipment.Prepared, shipment.Delivered, shipment.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown shipment state: %T", state))
	}
}

func (op *PrepareShipment) onValidated(validated shipment.Validated) shipment.State {
	var reasons []string
	address := validated.DeliveryAddress.String()

	carrier, err := op.assignCarrier(address)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("Failed to assign carrier for address (%s): %s", address, err))
		carrier = ""
	} else if strings.TrimSpace(carrier) == "" {
		reasons = append(reasons, fmt.Sprintf("Failed to assign carrier for address (%s)", address))
	}

	var trackingNumber string
	if strings.TrimSpace(carrier) != "" {
		trackingNumber, err = op.generateTrackingNumber(carrier)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("Failed to generate tracking number: %s", err))
		} else if strings.TrimSpace(trackingNumber) == "" {
			reasons = append(reasons, "Failed to generate tracking number")
		}
	}

	if len(reasons) > 0 {
		return shipment.NewInvalid(reasons)
	}

	return shipment.NewPrepared(validated, trackingNumber, time.Now().UTC(), carrier)
}
