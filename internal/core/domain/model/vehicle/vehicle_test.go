package vehicle_test

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"Fiat", "Argo", 2024,
		"abc1d23",
		15000,
		map[string]bool{"air conditioning": true},
		100.0,
		time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("creates a vehicle with normalized plate", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.Validate())
		assert.Equal(t, "Fiat", v.Make())
		assert.Equal(t, "Argo", v.Model())
		assert.Equal(t, 2024, v.Year())
		assert.Equal(t, "ABC1D23", v.Plate())
		assert.Equal(t, 15000, v.Odometer())
		assert.InDelta(t, 100.0, v.DailyRate(), 0.001)
		assert.True(t, v.Equipment()["air conditioning"])
		assert.False(t, v.IsDeleted())
	})

	t.Run("nil equipment means none", func(t *testing.T) {
		v, err := vehicle.NewVehicle(
			kernel.NewUUID(), "Fiat", "Argo", 2024, "ABC1D23", 0, nil, 100.0, time.Now(),
		)
		require.NoError(t, err)
		assert.Empty(t, v.Equipment())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		testCases := []struct {
			name  string
			make  string
			model string
			plate string
			rate  float64
		}{
			{"empty make", "", "Argo", "ABC1D23", 100.0},
			{"empty model", "Fiat", " ", "ABC1D23", 100.0},
			{"empty plate", "Fiat", "Argo", "", 100.0},
			{"zero daily rate", "Fiat", "Argo", "ABC1D23", 0},
			{"negative daily rate", "Fiat", "Argo", "ABC1D23", -10},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := vehicle.NewVehicle(
					kernel.NewUUID(), tc.make, tc.model, 2024, tc.plate, 0, nil, tc.rate, time.Now(),
				)
				require.Error(t, err)
			})
		}
	})

	t.Run("equipment map is copied", func(t *testing.T) {
		equipment := map[string]bool{"gps": true}
		v, err := vehicle.NewVehicle(
			kernel.NewUUID(), "Fiat", "Argo", 2024, "ABC1D23", 0, equipment, 100.0, time.Now(),
		)
		require.NoError(t, err)

		equipment["gps"] = false
		assert.True(t, v.Equipment()["gps"])
	})
}

func TestRestoreVehicle(t *testing.T) {
	deletedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	v, err := vehicle.RestoreVehicle(
		kernel.NewUUID(), "Fiat", "Argo", 2024, "ABC1D23", 15000, nil, 100.0,
		time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		&deletedAt,
	)

	require.NoError(t, err)
	require.NoError(t, v.Validate())
	assert.True(t, v.IsDeleted())
	assert.Equal(t, &deletedAt, v.DeletedAt())
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var v vehicle.Vehicle
		assert.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})

	t.Run("nil receiver is rejected", func(t *testing.T) {
		var v *vehicle.Vehicle
		assert.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})
}

func TestVehicle_Delete(t *testing.T) {
	t.Run("stamps the deletion time", func(t *testing.T) {
		v := newTestVehicle(t)
		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		require.NoError(t, v.Delete(now))

		assert.True(t, v.IsDeleted())
		assert.Equal(t, &now, v.DeletedAt())
	})

	t.Run("deleting twice conflicts", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.Delete(time.Now()))

		err := v.Delete(time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestVehicle_RecordOdometer(t *testing.T) {
	v := newTestVehicle(t)

	require.NoError(t, v.RecordOdometer(15200))
	assert.Equal(t, 15200, v.Odometer())

	err := v.RecordOdometer(14000)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 15200, v.Odometer())
}
