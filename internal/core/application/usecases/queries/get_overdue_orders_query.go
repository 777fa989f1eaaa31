package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves approved orders whose rental window has
// ended without the order being closed. Used by the overdue sweep job for
// reporting.
type GetOverdueOrdersQuery struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for orders overdue at the given moment.
func NewGetOverdueOrdersQuery(before time.Time) (GetOverdueOrdersQuery, error) {
	query := GetOverdueOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if before.IsZero() {
		return GetOverdueOrdersQuery{}, errors.New("before must be a valid moment")
	}
	query.before = before

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// Before returns the moment against which end dates are compared.
func (q GetOverdueOrdersQuery) Before() time.Time {
	return q.before
}

// GetOverdueOrdersQueryResponse is one overdue order in the sweep report.
type GetOverdueOrdersQueryResponse struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	VehicleID kernel.UUID
	EndDate   time.Time
}
