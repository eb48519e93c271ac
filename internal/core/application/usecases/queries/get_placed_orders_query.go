// Package queries contains the read side: each query retrieves a list of
// terminal pipeline results as a flat read model, bypassing the domain
// states entirely.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrGetPlacedOrdersQueryIsNotConstructed is returned when validating a
// zero-value GetPlacedOrdersQuery.
var ErrGetPlacedOrdersQueryIsNotConstructed = errors.New(
	"GetPlacedOrdersQuery must be created via NewGetPlacedOrdersQuery constructor",
)

// GetPlacedOrdersQuery retrieves every order that completed the place-order
// pipeline, newest delivery first.
type GetPlacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlacedOrdersQuery creates the parameterless query.
func NewGetPlacedOrdersQuery() GetPlacedOrdersQuery {
	return GetPlacedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrdersQueryIsNotConstructed)
}

// GetPlacedOrdersQueryResponse is one placed order in the read model.
type GetPlacedOrdersQueryResponse struct {
	ID            uuid.UUID
	CustomerID    kernel.CustomerID
	TotalAmount   kernel.Money
	ReservationID string
	DeliveredAt   time.Time
}
