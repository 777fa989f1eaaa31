package queries

import (
	"errors"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// listOrdersSortColumns maps accepted sort keys to order-by columns.
// A leading dash on the key requests descending order.
var listOrdersSortColumns = map[string]string{
	"order_date": "o.order_date",
	"status":     "o.status",
}

// ListOrdersQuery retrieves a filtered, paginated page of rental orders.
// All filters are optional: zero values mean "no filter". The default sort
// is newest orders first.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status   string
	cpf      string
	from     *time.Time
	to       *time.Time
	sortBy   string
	sortDesc bool
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list rental orders.
//
// Parameters:
//   - status: filter by lifecycle status name, empty for all
//   - cpf: filter by the renting client's CPF, empty for all
//   - from, to: filter on the order placement date, nil for unbounded
//   - sort: "order_date" or "status", prefix with "-" for descending;
//     empty defaults to "-order_date"
//   - page: 1-based page number, 0 defaults to 1
//   - pageSize: rows per page, 0 defaults to 20, capped at 100
func NewListOrdersQuery(
	status, cpf string,
	from, to *time.Time,
	sort string,
	page, pageSize int,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setCPF(cpf),
		query.setSort(sort),
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	query.from = from
	query.to = to
	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status name filter, empty when unset.
func (q ListOrdersQuery) Status() string { return q.status }

// CPF returns the client CPF filter, empty when unset.
func (q ListOrdersQuery) CPF() string { return q.cpf }

// From returns the lower placement-date bound, nil when unbounded.
func (q ListOrdersQuery) From() *time.Time { return q.from }

// To returns the upper placement-date bound, nil when unbounded.
func (q ListOrdersQuery) To() *time.Time { return q.to }

// SortBy returns the sort key.
func (q ListOrdersQuery) SortBy() string { return q.sortBy }

// SortDesc reports whether the sort order is descending.
func (q ListOrdersQuery) SortDesc() bool { return q.sortDesc }

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int { return q.page }

// PageSize returns the number of rows per page.
func (q ListOrdersQuery) PageSize() int { return q.pageSize }

func (q *ListOrdersQuery) setStatus(status string) error {
	if status != "" {
		if _, err := rental.StatusFromString(status); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *ListOrdersQuery) setCPF(cpf string) error {
	if cpf != "" && len(cpf) != 11 {
		return errs.NewValueIsInvalidError("cpf must contain exactly eleven digits")
	}

	q.cpf = cpf
	return nil
}

func (q *ListOrdersQuery) setSort(sort string) error {
	if sort == "" {
		sort = "-order_date"
	}

	desc := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")
	if _, ok := listOrdersSortColumns[key]; !ok {
		return errs.NewValueIsInvalidError("sort")
	}

	q.sortBy = key
	q.sortDesc = desc
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page == 0 {
		page = defaultPage
	}
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPageSize(pageSize int) error {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	q.pageSize = pageSize
	return nil
}

// ListOrdersItem is one row of the order listing read model.
type ListOrdersItem struct {
	ID          kernel.UUID
	Status      string
	OrderDate   time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	TotalAmount *float64
	ClientName  string
	ClientCPF   string
}

// ListOrdersQueryResponse is the paginated order listing.
// Total is the number of rows matching the filters across all pages.
type ListOrdersQueryResponse struct {
	Items    []ListOrdersItem
	Total    int64
	Page     int
	PageSize int
}
