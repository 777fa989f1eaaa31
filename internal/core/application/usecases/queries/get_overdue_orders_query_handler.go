package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves overdue approved orders from the database.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve approved orders whose rental window
// ended before the query's reference moment. Results are sorted by end date,
// the longest overdue first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			vehicle_id,
			end_date
		FROM orders
		WHERE status = ?
		  AND end_date < ?
		ORDER BY end_date
	`, rental.Approved.String(), query.Before()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOverdueOrdersQueryResponse
		var id, clientID, vehicleID uuid.UUID

		err = rows.Scan(
			&id,
			&clientID,
			&vehicleID,
			&orderResp.EndDate,
		)
		if err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if orderResp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
