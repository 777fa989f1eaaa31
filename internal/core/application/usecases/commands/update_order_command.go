package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to move an order through its
// lifecycle. A single command covers three transitions, selected by which
// parameters are present:
//
//   - postal code with a rental window: approve (or re-approve) with pricing
//   - postal code with requested status Cancelled: cancel an open order
//   - requested status Closed, no postal code: close an approved order
//
// Absent optional parameters are expressed as an empty postal code, nil
// dates, and an Unknown requested status.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	postalCode      string
	startDate       *time.Time
	endDate         *time.Time
	requestedStatus rental.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update a rental order.
// The order ID must be valid. A requested status, when given, must be one
// of the defined statuses; rental.Unknown means no status change requested.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	postalCode string,
	startDate, endDate *time.Time,
	requestedStatus rental.Status,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	if err := orderCommand.setRequestedStatus(requestedStatus); err != nil {
		return UpdateOrderCommand{}, err
	}

	orderCommand.postalCode = postalCode
	orderCommand.startDate = startDate
	orderCommand.endDate = endDate
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PostalCode returns the requested rental postal code, empty when absent.
func (c UpdateOrderCommand) PostalCode() string {
	return c.postalCode
}

// StartDate returns the requested rental start, nil when absent.
func (c UpdateOrderCommand) StartDate() *time.Time {
	return c.startDate
}

// EndDate returns the requested rental end, nil when absent.
func (c UpdateOrderCommand) EndDate() *time.Time {
	return c.endDate
}

// RequestedStatus returns the requested target status,
// rental.Unknown when absent.
func (c UpdateOrderCommand) RequestedStatus() rental.Status {
	return c.requestedStatus
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setRequestedStatus(requestedStatus rental.Status) error {
	if requestedStatus != rental.Unknown {
		if err := requestedStatus.Validate(); err != nil {
			return err
		}
	}

	c.requestedStatus = requestedStatus
	return nil
}
