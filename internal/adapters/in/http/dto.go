package http

import (
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/rental"
)

// PlaceOrderRequest is the payload for placing a new rental order.
type PlaceOrderRequest struct {
	ClientID  string `json:"clientId" example:"0196a21f-5a41-7a1e-8b6d-3c2f6f6b2a10"`
	VehicleID string `json:"vehicleId" example:"0196a21f-5a41-7a1e-8b6d-3c2f6f6b2a11"`
}

// UpdateOrderRequest is the payload for moving an order through its lifecycle.
// Which transition is requested depends on the fields present: a postal code
// with a rental window approves, a postal code with status "Cancelled"
// cancels, and status "Closed" alone closes.
type UpdateOrderRequest struct {
	PostalCode string     `json:"postalCode,omitempty" example:"69900100"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Status     string     `json:"status,omitempty" example:"Closed"`
}

// OrderResponse is the representation of a rental order returned by the API.
// Lifecycle fields that have not been reached yet are omitted.
type OrderResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"clientId"`
	VehicleID   string     `json:"vehicleId"`
	Status      string     `json:"status"`
	OrderDate   time.Time  `json:"orderDate"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	PostalCode  *string    `json:"postalCode,omitempty"`
	City        *string    `json:"city,omitempty"`
	Region      *string    `json:"region,omitempty"`
	RegionTax   *float64   `json:"regionTax,omitempty"`
	TotalAmount *float64   `json:"totalAmount,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	LateFee     *float64   `json:"lateFee,omitempty"`
	ClientName  string     `json:"clientName,omitempty"`
	ClientCPF   string     `json:"clientCpf,omitempty"`
}

// OrderListResponse is one page of the order listing.
type OrderListResponse struct {
	Items    []OrderListItem `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// OrderListItem is one row of the order listing.
type OrderListItem struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	OrderDate   time.Time  `json:"orderDate"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	TotalAmount *float64   `json:"totalAmount,omitempty"`
	ClientName  string     `json:"clientName"`
	ClientCPF   string     `json:"clientCpf"`
}

// Error is the uniform error payload returned by the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderToResponse converts an order aggregate to its API representation.
func orderToResponse(order *rental.Order) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID().String(),
		ClientID:    order.ClientID().String(),
		VehicleID:   order.VehicleID().String(),
		Status:      order.Status().String(),
		OrderDate:   order.OrderDate(),
		StartDate:   order.StartDate(),
		EndDate:     order.EndDate(),
		RegionTax:   order.RegionTax(),
		TotalAmount: order.TotalAmount(),
		CancelledAt: order.CancelledAt(),
		ClosedAt:    order.ClosedAt(),
		LateFee:     order.LateFee(),
	}

	if address := order.Address(); address != nil {
		cep := address.CEP()
		city := address.City()
		region := address.Region()
		resp.PostalCode = &cep
		resp.City = &city
		resp.Region = &region
	}

	return resp
}

// queryToResponse converts the single-order read model to its API representation.
func queryToResponse(order queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		ClientID:    order.ClientID.String(),
		VehicleID:   order.VehicleID.String(),
		Status:      order.Status,
		OrderDate:   order.OrderDate,
		StartDate:   order.StartDate,
		EndDate:     order.EndDate,
		PostalCode:  order.PostalCode,
		City:        order.City,
		Region:      order.Region,
		RegionTax:   order.RegionTax,
		TotalAmount: order.TotalAmount,
		CancelledAt: order.CancelledAt,
		ClosedAt:    order.ClosedAt,
		LateFee:     order.LateFee,
		ClientName:  order.ClientName,
		ClientCPF:   order.ClientCPF,
	}
}

// listToResponse converts the listing read model to its API representation.
func listToResponse(list queries.ListOrdersQueryResponse) OrderListResponse {
	items := make([]OrderListItem, len(list.Items))
	for i, item := range list.Items {
		items[i] = OrderListItem{
			ID:          item.ID.String(),
			Status:      item.Status,
			OrderDate:   item.OrderDate,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			TotalAmount: item.TotalAmount,
			ClientName:  item.ClientName,
			ClientCPF:   item.ClientCPF,
		}
	}

	return OrderListResponse{
		Items:    items,
		Total:    list.Total,
		Page:     list.Page,
		PageSize: list.PageSize,
	}
}
