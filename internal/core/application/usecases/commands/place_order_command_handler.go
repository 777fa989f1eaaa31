package commands

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/client"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing rental orders.
// Verifies the client and vehicle exist, enforces the one-open-order-per-client
// rule, and creates the order in Open status.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the created order.
//
// Preconditions, checked in this sequence:
//   - vehicle and client must both exist (missing ones are reported together)
//   - the client must not already have an order in Open status
//   - the client must not be soft-deleted
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*rental.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	renter, vehicleErr, clientErr, err := h.loadParticipants(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}
	if joined := errors.Join(vehicleErr, clientErr); joined != nil {
		return nil, joined
	}

	orderRepo := uow.RentalOrderRepository()
	openOrder, err := orderRepo.GetOpenByClient(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}
	if openOrder != nil {
		return nil, errs.NewConflictError("client already has an open order")
	}

	if renter.IsDeleted() {
		return nil, client.ErrClientIsDeleted
	}

	placed, err := rental.NewOrder(cmd.OrderID(), cmd.ClientID(), cmd.VehicleID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// loadParticipants fetches the vehicle and client referenced by the command.
// Not-found results for either are returned separately so the caller can
// report both at once; any other failure aborts the operation.
func (h *PlaceOrderCommandHandler) loadParticipants(
	ctx context.Context,
	uow UoW,
	cmd PlaceOrderCommand,
) (renter *client.Client, vehicleErr, clientErr, err error) {
	_, vehicleErr = uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if vehicleErr != nil && !errors.Is(vehicleErr, errs.ErrObjectNotFound) {
		return nil, nil, nil, vehicleErr
	}

	renter, clientErr = uow.ClientRepository().Get(ctx, cmd.ClientID())
	if clientErr != nil && !errors.Is(clientErr, errs.ErrObjectNotFound) {
		return nil, nil, nil, clientErr
	}

	return renter, vehicleErr, clientErr, nil
}
