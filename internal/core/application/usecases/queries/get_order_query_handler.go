package queries

import (
	"context"
	"database/sql"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single rental order read model from the
// database, joining the client record for the renter's name and CPF.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns an object-not-found error when no order matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			o.vehicle_id,
			o.status,
			o.order_date,
			o.start_date,
			o.end_date,
			o.postal_code,
			o.city,
			o.region,
			o.region_tax,
			o.total_amount,
			o.cancelled_at,
			o.closed_at,
			o.late_fee,
			c.name,
			c.cpf
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, clientID, vehicleID uuid.UUID

	err := row.Scan(
		&id,
		&clientID,
		&vehicleID,
		&resp.Status,
		&resp.OrderDate,
		&resp.StartDate,
		&resp.EndDate,
		&resp.PostalCode,
		&resp.City,
		&resp.Region,
		&resp.RegionTax,
		&resp.TotalAmount,
		&resp.CancelledAt,
		&resp.ClosedAt,
		&resp.LateFee,
		&resp.ClientName,
		&resp.ClientCPF,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"orderID", query.OrderID(), err)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
