package shipmentops

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// RecipientNameFunc resolves a customer id to the name of the person who
// signs for the delivery.
type RecipientNameFunc func(customerID string) (string, error)

// ConfirmDeliveryFunc confirms a delivery with the carrier. A false result
// or an error means the delivery was not confirmed.
type ConfirmDeliveryFunc func(trackingNumber, recipientName string) (bool, error)

// DeliverShipment advances Prepared to the terminal Delivered state by
// resolving the recipient and confirming the delivery with the carrier. The
// signature is derived from the tracking number and the confirmation instant.
type DeliverShipment struct {
	confirmDelivery  ConfirmDeliveryFunc
	getRecipientName RecipientNameFunc
}

// NewDeliverShipment builds the step. Both callbacks are required.
func NewDeliverShipment(confirmDelivery ConfirmDeliveryFunc, getRecipientName RecipientNameFunc) (*DeliverShipment, error) {
	if confirmDelivery == nil {
		return nil, errs.NewValueIsRequiredError("confirmDelivery")
	}
	if getRecipientName == nil {
		return nil, errs.NewValueIsRequiredError("getRecipientName")
	}
	return &DeliverShipment{
		confirmDelivery:  confirmDelivery,
		getRecipientName: getRecipientName,
	}, nil
}

// Apply dispatches on the current state. Only Prepared is targeted.
func (op *DeliverShipment) Apply(state shipment.State) shipment.State {
	switch s := state.(type) {
	case shipment.Prepared:
		return op.onPrepared(s)
	case shipment.Unvalidated, shipment.Validated, shipment.Delivered, shipment.Invalid:
		return state
	default:
		panic(fmt.Sprintf("unknown shipment state: %T", state))
	}
}

func (op *DeliverShipment) onPrepared(prepared shipment.Prepared) shipment.State {
	var reasons []string
	customerID := prepared.CustomerID.String()

	recipientName, err := op.getRecipientName(customerID)
	if err != nil {
		reasons = append(reasons, fmt.Sprintf("Recipient name not found for customer (%s): %s", customerID, err))
		recipientName = ""
	} else if strings.TrimSpace(recipientName) == "" {
		reasons = append(reasons, fmt.Sprintf("Recipient name not found for customer (%s)", customerID))
	}

	if strings.TrimSpace(recipientName) != "" {
		confirmed, err := op.confirmDelivery(prepared.TrackingNumber, recipientName)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("Failed to confirm delivery for tracking number (%s): %s", prepared.TrackingNumber, err))
		} else if !confirmed {
			reasons = append(reasons, fmt.Sprintf("Failed to confirm delivery for tracking number (%s)", prepared.TrackingNumber))
		}
	}

	if len(reasons) > 0 {
		return shipment.NewInvalid(reasons)
	}

	deliveredAt := time.Now().UTC()
	signature := fmt.Sprintf("SIG-%s-%d", prepared.TrackingNumber, deliveredAt.UnixNano())

	return shipment.NewDelivered(prepared, deliveredAt, recipientName, signature)
}
