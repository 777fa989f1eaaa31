package commands

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ErrNoTransitionParameters is returned when an update request carries no
// combination of parameters that maps to a lifecycle transition.
var ErrNoTransitionParameters = errs.NewValueIsInvalidError(
	"no valid transition parameters for this update")

// UpdateOrderCommandHandler handles the approve, cancel-with-address, and
// close transitions of a rental order.
//
// The order and its vehicle are loaded once at the start and the snapshot is
// threaded through the whole operation, so pricing and the late fee are
// computed from a single consistent read.
type UpdateOrderCommandHandler struct {
	uowFactory    UoWFactory
	addressLookup ports.AddressLookup
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires a UoWFactory for transactional persistence and an AddressLookup
// for resolving postal codes.
func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	addressLookup ports.AddressLookup,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:    uowFactory,
		addressLookup: addressLookup,
	}
}

// Handle processes the order update command and returns the updated order.
//
// When the command carries both rental dates, the window is validated against
// the current moment before any transition branch runs, so even a cancel or
// close request with a past start date is rejected.
//
// Transition selection:
//   - postal code present, requested status Cancelled, order Open: cancel
//   - postal code present otherwise: approve with the given rental window,
//     pricing the order as regionTax + dailyRate * rentalDays
//   - postal code absent, requested status Closed: close, charging a flat
//     late fee of twice the daily rate when overdue
//   - anything else: ErrNoTransitionParameters
func (h *UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderCommand,
) (*rental.Order, error) {
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

	orderRepo := uow.RentalOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	rented, err := uow.VehicleRepository().Get(ctx, order.VehicleID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if cmd.StartDate() != nil && cmd.EndDate() != nil {
		if err = rental.ValidateWindow(*cmd.StartDate(), *cmd.EndDate(), now); err != nil {
			return nil, err
		}
	}

	switch {
	case cmd.PostalCode() != "":
		err = h.cancelOrApprove(ctx, cmd, order, rented, now)
	case cmd.RequestedStatus() == rental.Closed:
		err = order.Close(now, rented.DailyRate())
	default:
		return nil, ErrNoTransitionParameters
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// cancelOrApprove handles the postal-code branch: a cancellation request on
// an open order short-circuits without pricing, anything else is an approval.
func (h *UpdateOrderCommandHandler) cancelOrApprove(
	ctx context.Context,
	cmd UpdateOrderCommand,
	order *rental.Order,
	rented *vehicle.Vehicle,
	now time.Time,
) error {
	address, err := h.addressLookup.Lookup(ctx, cmd.PostalCode())
	if err != nil {
		if errors.Is(err, ports.ErrAddressNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("postal code not found", err)
		}
		return err
	}

	if cmd.RequestedStatus() == rental.Cancelled && order.Status() == rental.Open {
		return order.Cancel(now)
	}

	if cmd.StartDate() == nil || cmd.EndDate() == nil {
		return errs.NewValueIsRequiredError("start date and end date")
	}
	start, end := *cmd.StartDate(), *cmd.EndDate()

	regionTax := services.ResolveRegionTax(address.Region())
	totalAmount := regionTax + rented.DailyRate()*float64(rental.RentalDays(start, end))

	return order.Approve(start, end, address, regionTax, totalAmount)
}
