// Package rentalrepo provides data transfer objects and mapping functions for
// rental order persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database representations.
package rentalrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lifecycle fields that have not been reached yet are stored as NULLs. The
// status column holds the status name, which the listing queries filter on.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;index"`
	VehicleID uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"index"`
	OrderDate time.Time

	StartDate *time.Time
	EndDate   *time.Time

	PostalCode *string
	City       *string
	Region     *string

	RegionTax   *float64
	TotalAmount *float64

	CancelledAt *time.Time
	ClosedAt    *time.Time
	LateFee     *float64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *rental.Order) OrderDTO {
	dto := OrderDTO{
		ID:          order.ID().Bytes(),
		ClientID:    order.ClientID().Bytes(),
		VehicleID:   order.VehicleID().Bytes(),
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
		cep, city, region := address.CEP(), address.City(), address.Region()
		dto.PostalCode = &cep
		dto.City = &city
		dto.Region = &region
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its address using RestoreOrder.
func toDomain(dto OrderDTO) (*rental.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	status, err := rental.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.PostalCode != nil {
		restored, addrErr := kernel.NewAddress(*dto.PostalCode, *dto.City, *dto.Region)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &restored
	}

	return rental.RestoreOrder(
		id, clientID, vehicleID,
		status, dto.OrderDate,
		dto.StartDate, dto.EndDate,
		address,
		dto.RegionTax, dto.TotalAmount,
		dto.CancelledAt, dto.ClosedAt,
		dto.LateFee,
	)
}
