// Package vehiclerepo provides data transfer objects and mapping functions for
// vehicle persistence.
package vehiclerepo

import (
	"encoding/json"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The equipment flags are stored as a JSON document.
type VehicleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Make         string
	Model        string
	Year         int
	Plate        string `gorm:"uniqueIndex"`
	Odometer     int
	Equipment    string `gorm:"type:jsonb"`
	DailyRate    float64
	RegisteredAt time.Time
	DeletedAt    *time.Time
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) (VehicleDTO, error) {
	equipment, err := json.Marshal(aggregate.Equipment())
	if err != nil {
		return VehicleDTO{}, err
	}

	return VehicleDTO{
		ID:           aggregate.ID().Bytes(),
		Make:         aggregate.Make(),
		Model:        aggregate.Model(),
		Year:         aggregate.Year(),
		Plate:        aggregate.Plate(),
		Odometer:     aggregate.Odometer(),
		Equipment:    string(equipment),
		DailyRate:    aggregate.DailyRate(),
		RegisteredAt: aggregate.RegisteredAt(),
		DeletedAt:    aggregate.DeletedAt(),
	}, nil
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	equipment := make(map[string]bool)
	if dto.Equipment != "" {
		if err = json.Unmarshal([]byte(dto.Equipment), &equipment); err != nil {
			return nil, err
		}
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Make, dto.Model,
		dto.Year,
		dto.Plate,
		dto.Odometer,
		equipment,
		dto.DailyRate,
		dto.RegisteredAt,
		dto.DeletedAt,
	)
}
