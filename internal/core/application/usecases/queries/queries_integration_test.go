package queries_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/adapters/out/postgres/clientrepo"
	"rental/internal/adapters/out/postgres/rentalrepo"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the raw SQL of the query handlers
// against a real PostgreSQL schema.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&rentalrepo.OrderDTO{}, &clientrepo.ClientDTO{}))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, clients").Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) insertClient(name, cpf string) uuid.UUID {
	id := uuid.New()
	dto := clientrepo.ClientDTO{
		ID:           id,
		Name:         name,
		CPF:          cpf,
		BirthDate:    time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Email:        name + "@example.com",
		Phone:        "+55 68 99999-0000",
		RegisteredAt: time.Now(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *QueriesIntegrationTestSuite) insertOrder(
	clientID uuid.UUID,
	status rental.Status,
	orderDate time.Time,
	endDate *time.Time,
	totalAmount *float64,
) uuid.UUID {
	id := uuid.New()
	dto := rentalrepo.OrderDTO{
		ID:          id,
		ClientID:    clientID,
		VehicleID:   uuid.New(),
		Status:      status.String(),
		OrderDate:   orderDate,
		EndDate:     endDate,
		TotalAmount: totalAmount,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	handler := queries.NewGetOrderQueryHandler(suite.db)

	clientID := suite.insertClient("Maria Silva", "52998224725")
	endDate := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)
	total := 240.0
	orderID := suite.insertOrder(clientID, rental.Approved,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), &endDate, &total)

	suite.Run("existing order joins the client", func() {
		id, err := kernel.UUIDFromBytes(orderID[:])
		suite.Require().NoError(err)

		query, err := queries.NewGetOrderQuery(id)
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(id, resp.ID)
		suite.Equal(rental.Approved.String(), resp.Status)
		suite.Require().NotNil(resp.TotalAmount)
		suite.InDelta(240.0, *resp.TotalAmount, 0.001)
		suite.Equal("Maria Silva", resp.ClientName)
		suite.Equal("52998224725", resp.ClientCPF)
		suite.Nil(resp.CancelledAt)
		suite.Nil(resp.LateFee)
	})

	suite.Run("missing order returns not found", func() {
		query, err := queries.NewGetOrderQuery(kernel.NewUUID())
		suite.Require().NoError(err)

		_, err = handler.Handle(ctx, query)
		suite.Require().Error(err)

		var notFoundErr *errs.ObjectNotFoundError
		suite.Require().ErrorAs(err, &notFoundErr)
	})
}

func (suite *QueriesIntegrationTestSuite) TestListOrders() {
	ctx := context.Background()
	handler := queries.NewListOrdersQueryHandler(suite.db)

	mariaID := suite.insertClient("Maria Silva", "52998224725")
	joaoID := suite.insertClient("Joao Souza", "11144477735")

	day := func(d int) time.Time { return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC) }
	suite.insertOrder(mariaID, rental.Open, day(1), nil, nil)
	suite.insertOrder(mariaID, rental.Cancelled, day(3), nil, nil)
	suite.insertOrder(joaoID, rental.Open, day(5), nil, nil)

	suite.Run("default listing is newest first", func() {
		query, err := queries.NewListOrdersQuery("", "", nil, nil, "", 0, 0)
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(int64(3), resp.Total)
		suite.Require().Len(resp.Items, 3)
		suite.Equal("Joao Souza", resp.Items[0].ClientName)
		suite.True(resp.Items[0].OrderDate.After(resp.Items[2].OrderDate))
	})

	suite.Run("filter by status", func() {
		query, err := queries.NewListOrdersQuery("Cancelled", "", nil, nil, "", 0, 0)
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(int64(1), resp.Total)
		suite.Require().Len(resp.Items, 1)
		suite.Equal(rental.Cancelled.String(), resp.Items[0].Status)
	})

	suite.Run("filter by client cpf", func() {
		query, err := queries.NewListOrdersQuery("", "52998224725", nil, nil, "", 0, 0)
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(int64(2), resp.Total)
		for _, item := range resp.Items {
			suite.Equal("52998224725", item.ClientCPF)
		}
	})

	suite.Run("filter by placement date range", func() {
		from := day(2)
		to := day(4)
		query, err := queries.NewListOrdersQuery("", "", &from, &to, "", 0, 0)
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(int64(1), resp.Total)
		suite.Require().Len(resp.Items, 1)
		suite.Equal(rental.Cancelled.String(), resp.Items[0].Status)
	})

	suite.Run("pagination keeps total across pages", func() {
		query, err := queries.NewListOrdersQuery("", "", nil, nil, "order_date", 2, 2)
		suite.Require().NoError(err)

		resp, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)

		suite.Equal(int64(3), resp.Total)
		suite.Require().Len(resp.Items, 1)
		suite.Equal("Joao Souza", resp.Items[0].ClientName)
	})
}

func (suite *QueriesIntegrationTestSuite) TestGetOverdueOrders() {
	ctx := context.Background()
	handler := queries.NewGetOverdueOrdersQueryHandler(suite.db)

	clientID := suite.insertClient("Maria Silva", "52998224725")
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	pastEnd := now.AddDate(0, 0, -2)
	futureEnd := now.AddDate(0, 0, 2)
	overdueID := suite.insertOrder(clientID, rental.Approved, now.AddDate(0, 0, -7), &pastEnd, nil)
	suite.insertOrder(clientID, rental.Approved, now.AddDate(0, 0, -1), &futureEnd, nil)
	suite.insertOrder(clientID, rental.Closed, now.AddDate(0, 0, -7), &pastEnd, nil)

	query, err := queries.NewGetOverdueOrdersQuery(now)
	suite.Require().NoError(err)

	overdue, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(overdue, 1)
	expectedID, err := kernel.UUIDFromBytes(overdueID[:])
	suite.Require().NoError(err)
	suite.Equal(expectedID, overdue[0].ID)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
