package vehicle

import (
	"errors"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrMakeIsRequired is returned when attempting to create a vehicle without a make.
	ErrMakeIsRequired = errs.NewValueIsRequiredError("make")
	// ErrModelIsRequired is returned when attempting to create a vehicle without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrDailyRateIsInvalid is returned when the daily rate is zero or negative.
	ErrDailyRateIsInvalid = errs.NewValueIsInvalidError("daily rate must be positive")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrVehicleIsDeleted is returned when an operation targets a soft-deleted vehicle.
	ErrVehicleIsDeleted = errs.NewConflictError("vehicle is deleted")
)

// Vehicle represents a car available in the rental fleet.
// It is an aggregate root that manages fleet identity and pricing.
//
// Business rules:
//   - Vehicle must have a valid UUID, non-empty make, model, and plate
//   - The daily rate must be positive; it is the base for order totals
//   - A soft-deleted vehicle keeps its history but cannot be rented
type Vehicle struct {
	id        kernel.UUID
	make      string
	model     string
	year      int
	plate     string
	odometer  int
	equipment map[string]bool
	dailyRate float64

	registeredAt time.Time
	deletedAt    *time.Time

	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// The plate is normalized to upper case. Equipment lists optional
// accessories by name, nil is treated as none.
func NewVehicle(
	id kernel.UUID,
	make, model string,
	year int,
	plate string,
	odometer int,
	equipment map[string]bool,
	dailyRate float64,
	registeredAt time.Time,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setMake(make),
		vehicle.setModel(model),
		vehicle.setPlate(plate),
		vehicle.setDailyRate(dailyRate),
	); err != nil {
		return nil, err
	}

	vehicle.year = year
	vehicle.odometer = odometer
	vehicle.setEquipment(equipment)
	vehicle.registeredAt = registeredAt
	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its soft-delete marker.
func RestoreVehicle(
	id kernel.UUID,
	make, model string,
	year int,
	plate string,
	odometer int,
	equipment map[string]bool,
	dailyRate float64,
	registeredAt time.Time,
	deletedAt *time.Time,
) (*Vehicle, error) {
	vehicle, err := NewVehicle(id, make, model, year, plate, odometer, equipment, dailyRate, registeredAt)
	if err != nil {
		return nil, err
	}

	vehicle.deletedAt = deletedAt
	return vehicle, nil
}

// Validate checks if the Vehicle was properly constructed using a factory.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Make returns the manufacturer name.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

// Plate returns the upper-cased license plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Odometer returns the recorded mileage.
func (v *Vehicle) Odometer() int {
	return v.odometer
}

// Equipment returns a copy of the optional accessory flags.
func (v *Vehicle) Equipment() map[string]bool {
	out := make(map[string]bool, len(v.equipment))
	for name, present := range v.equipment {
		out[name] = present
	}
	return out
}

// DailyRate returns the rental price per day.
func (v *Vehicle) DailyRate() float64 {
	return v.dailyRate
}

// RegisteredAt returns the fleet registration timestamp.
func (v *Vehicle) RegisteredAt() time.Time {
	return v.registeredAt
}

// DeletedAt returns the soft-delete timestamp, nil while the vehicle is active.
func (v *Vehicle) DeletedAt() *time.Time {
	return v.deletedAt
}

// IsDeleted reports whether the vehicle has been removed from the fleet.
func (v *Vehicle) IsDeleted() bool {
	return v.deletedAt != nil
}

// Delete soft-deletes the vehicle, stamping the deletion time.
// Deleting an already-deleted vehicle is a conflict.
func (v *Vehicle) Delete(now time.Time) error {
	if v.deletedAt != nil {
		return ErrVehicleIsDeleted
	}

	v.deletedAt = &now
	return nil
}

// RecordOdometer updates the recorded mileage.
// The reading cannot move backwards.
func (v *Vehicle) RecordOdometer(reading int) error {
	if reading < v.odometer {
		return errs.NewValueIsInvalidError("odometer reading cannot decrease")
	}

	v.odometer = reading
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

func (v *Vehicle) setMake(make string) error {
	if strings.TrimSpace(make) == "" {
		return ErrMakeIsRequired
	}

	v.make = make
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return ErrModelIsRequired
	}

	v.model = model
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	normalized := strings.ToUpper(strings.TrimSpace(plate))
	if normalized == "" {
		return ErrPlateIsRequired
	}

	v.plate = normalized
	return nil
}

func (v *Vehicle) setDailyRate(dailyRate float64) error {
	if dailyRate <= 0 {
		return ErrDailyRateIsInvalid
	}

	v.dailyRate = dailyRate
	return nil
}

func (v *Vehicle) setEquipment(equipment map[string]bool) {
	v.equipment = make(map[string]bool, len(equipment))
	for name, present := range equipment {
		v.equipment[name] = present
	}
}
