package queries

import (
	"context"
	"fmt"
	"strings"

	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of the order listing read model
// from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns one page of results together
// with the total row count for the given filters.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildListOrdersFilter(query)

	resp := ListOrdersQueryResponse{
		Items:    make([]ListOrdersItem, 0),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	countSQL := `
		SELECT COUNT(*)
		FROM orders o
		JOIN clients c ON c.id = o.client_id
	` + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&resp.Total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	direction := "ASC"
	if query.SortDesc() {
		direction = "DESC"
	}
	pageSQL := fmt.Sprintf(`
		SELECT
			o.id,
			o.status,
			o.order_date,
			o.start_date,
			o.end_date,
			o.total_amount,
			c.name,
			c.cpf
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, listOrdersSortColumns[query.SortBy()], direction)

	pageArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListOrdersItem
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Status,
			&item.OrderDate,
			&item.StartDate,
			&item.EndDate,
			&item.TotalAmount,
			&item.ClientName,
			&item.ClientCPF,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return resp, nil
}

// buildListOrdersFilter translates the query's optional filters into a WHERE
// clause with positional arguments. Column names are fixed; only values are
// passed as parameters.
func buildListOrdersFilter(query ListOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if query.Status() != "" {
		conditions = append(conditions, "o.status = ?")
		args = append(args, query.Status())
	}
	if query.CPF() != "" {
		conditions = append(conditions, "c.cpf = ?")
		args = append(args, query.CPF())
	}
	if query.From() != nil {
		conditions = append(conditions, "o.order_date >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		conditions = append(conditions, "o.order_date <= ?")
		args = append(args, *query.To())
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
