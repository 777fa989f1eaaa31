package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new rental order
// for a client and vehicle. The order starts its lifecycle in Open status
// with no rental window or pricing attached.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), clientID, vehicleID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	clientID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new rental order.
// All three identifiers must be valid UUIDs.
func NewPlaceOrderCommand(orderID, clientID, vehicleID kernel.UUID) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setVehicleID(vehicleID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the renting client.
func (c PlaceOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// VehicleID returns the identifier of the vehicle to rent.
func (c PlaceOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *PlaceOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
