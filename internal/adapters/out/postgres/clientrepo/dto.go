// Package clientrepo provides data transfer objects and mapping functions for
// client persistence.
package clientrepo

import (
	"time"

	"rental/internal/core/domain/model/client"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client aggregates.
// The CPF column is indexed for the listing queries that filter by it.
type ClientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	CPF          string `gorm:"column:cpf;index"`
	BirthDate    time.Time
	Email        string
	Phone        string
	RegisteredAt time.Time
	DeletedAt    *time.Time
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		CPF:          aggregate.CPF(),
		BirthDate:    aggregate.BirthDate(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		RegisteredAt: aggregate.RegisteredAt(),
		DeletedAt:    aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		dto.Name, dto.CPF,
		dto.BirthDate,
		dto.Email, dto.Phone,
		dto.RegisteredAt,
		dto.DeletedAt,
	)
}
