package commands_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/client"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRentalOrderRepository struct{ mock.Mock }

func (m *MockRentalOrderRepository) Add(ctx context.Context, o *rental.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRentalOrderRepository) Update(ctx context.Context, o *rental.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRentalOrderRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Order), args.Error(1)
}

func (m *MockRentalOrderRepository) GetOpenByClient(
	ctx context.Context,
	clientID kernel.UUID,
) (*rental.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Order), args.Error(1)
}

func (m *MockRentalOrderRepository) GetAllOverdue(
	ctx context.Context,
	before time.Time,
) ([]*rental.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rental.Order), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RentalOrderRepository() ports.RentalOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.RentalOrderRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) RentalOrderRepository() ports.RentalOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.RentalOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAddressLookup struct{ mock.Mock }

func (m *MockAddressLookup) Lookup(ctx context.Context, postalCode string) (kernel.Address, error) {
	args := m.Called(ctx, postalCode)
	return args.Get(0).(kernel.Address), args.Error(1)
}

// Shared test fixtures.

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(
		kernel.NewUUID(), "Maria Souza", "52998224725",
		time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		"maria@example.com", "",
		time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return c
}

func testVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), "Fiat", "Argo", 2024, "ABC1D23", 15000, nil, 100.0,
		time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return v
}

func testOpenOrder(t *testing.T, clientID, vehicleID kernel.UUID) *rental.Order {
	t.Helper()
	o, err := rental.NewOrder(kernel.NewUUID(), clientID, vehicleID,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("69900100", "Rio Branco", "AC")
	require.NoError(t, err)
	return address
}
