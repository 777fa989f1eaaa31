package rental

import (
	"errors"
	"math"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// LateFeeMultiplier is applied to the vehicle's daily rate when an order is
// closed after its recorded end date. The fee is flat, not prorated by the
// number of overdue days.
const LateFeeMultiplier = 2.0

// Order represents a rental order in the system. It is the aggregate root that
// manages the order lifecycle from placement through approval to closing or
// cancellation.
//
// Order follows these invariants:
//   - Must reference a valid client and vehicle; both are immutable after creation
//   - Status transitions follow the rules defined on Status
//   - Rental window, address, region tax, and total are populated together on
//     approval and never cleared afterwards
//   - The end date is never earlier than the start date once both are set
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	clientID  kernel.UUID
	vehicleID kernel.UUID

	status    Status
	orderDate time.Time

	startDate *time.Time
	endDate   *time.Time

	address     *kernel.Address
	regionTax   *float64
	totalAmount *float64

	cancelledAt *time.Time
	closedAt    *time.Time
	lateFee     *float64

	isConstructed bool
}

// NewOrder places a new rental order for a client and vehicle.
// The order starts in Open status with no rental window, address, or amounts.
func NewOrder(id, clientID, vehicleID kernel.UUID, orderDate time.Time) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		vehicleID:     vehicleID,
		status:        Open,
		orderDate:     orderDate,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// placement rules. The status must still be a valid one.
func RestoreOrder(
	id, clientID, vehicleID kernel.UUID,
	status Status,
	orderDate time.Time,
	startDate, endDate *time.Time,
	address *kernel.Address,
	regionTax, totalAmount *float64,
	cancelledAt, closedAt *time.Time,
	lateFee *float64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		vehicleID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		vehicleID:     vehicleID,
		status:        status,
		orderDate:     orderDate,
		startDate:     startDate,
		endDate:       endDate,
		address:       address,
		regionTax:     regionTax,
		totalAmount:   totalAmount,
		cancelledAt:   cancelledAt,
		closedAt:      closedAt,
		lateFee:       lateFee,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This method should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ClientID returns the identifier of the renting client.
func (o *Order) ClientID() kernel.UUID { return o.clientID }

// VehicleID returns the identifier of the rented vehicle.
func (o *Order) VehicleID() kernel.UUID { return o.vehicleID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// OrderDate returns the placement timestamp.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// StartDate returns the rental window start, nil until approval.
func (o *Order) StartDate() *time.Time { return o.startDate }

// EndDate returns the rental window end, nil until approval.
func (o *Order) EndDate() *time.Time { return o.endDate }

// Address returns the resolved rental address, nil until approval.
func (o *Order) Address() *kernel.Address { return o.address }

// RegionTax returns the flat region tax, nil until approval.
func (o *Order) RegionTax() *float64 { return o.regionTax }

// TotalAmount returns the computed total, nil until approval.
func (o *Order) TotalAmount() *float64 { return o.totalAmount }

// CancelledAt returns the cancellation timestamp, nil unless cancelled.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// ClosedAt returns the closing timestamp, nil unless closed.
func (o *Order) ClosedAt() *time.Time { return o.closedAt }

// LateFee returns the overdue penalty, nil unless charged on close.
func (o *Order) LateFee() *float64 { return o.lateFee }

// RentalDays computes the number of billable days between two dates,
// rounding any partial day up.
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ValidateWindow checks a requested rental window against the current moment.
// The start must not lie in the past and the end must not precede the start.
func ValidateWindow(start, end, now time.Time) error {
	if start.Before(now) {
		return errs.NewValueIsInvalidError("start date cannot be in the past")
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidError("end date cannot be before the start date")
	}
	return nil
}

// Approve sets the rental window, resolved address, region tax, and total
// amount, and moves the order to Approved.
//
// Approval is legal from Open and from Approved (re-approval with an updated
// window or address). The caller is responsible for having validated the
// window against the current moment via ValidateWindow.
func (o *Order) Approve(
	start, end time.Time,
	address kernel.Address,
	regionTax, totalAmount float64,
) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidError("end date cannot be before the start date")
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startDate = &start
	o.endDate = &end
	o.address = &address
	o.regionTax = &regionTax
	o.totalAmount = &totalAmount
	return nil
}

// Cancel moves an Open order to Cancelled and stamps the cancellation time.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = &now
	return nil
}

// Close moves an Approved order to Closed, stamps the closing time, and
// charges a flat late fee of LateFeeMultiplier times the daily rate when the
// order is overdue. The overdue check compares day-of-month only.
func (o *Order) Close(now time.Time, dailyRate float64) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	if o.endDate != nil && now.Day() > o.endDate.Day() {
		fee := dailyRate * LateFeeMultiplier
		o.lateFee = &fee
	}

	o.status = newStatus
	o.closedAt = &now
	return nil
}
