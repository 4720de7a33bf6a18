package queries_test

import (
	"context"
	"testing"
	"time"

	"distribution/internal/adapters/out/postgres/orderrepo"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDriverDeliveriesQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	admin     actor.Actor
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDriverDeliveriesQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})

	suite.admin, err = actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	suite.Require().NoError(err)
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) newAssignedOrder(driverID kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Item{item}, "")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney("6.50")
	suite.Require().NoError(err)

	_, err = o.ApplyTransition(suite.admin, order.Confirmed, order.TransitionPayload{})
	suite.Require().NoError(err)
	_, err = o.ApplyTransition(suite.admin, order.Priced, order.TransitionPayload{
		Pricing: []order.ItemPricing{{
			ProductID:    o.Items()[0].ProductID(),
			CostPrice:    price,
			SellingPrice: price,
		}},
	})
	suite.Require().NoError(err)
	_, err = o.ApplyTransition(suite.admin, order.Assigned, order.TransitionPayload{DriverID: &driverID})
	suite.Require().NoError(err)

	return o
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) TestHandle_NoDeliveries_ReturnsEmptySlice() {
	query, err := queries.NewGetDriverDeliveriesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) TestHandle_ReturnsOnlyRequestedDriversOrders() {
	ctx := context.Background()
	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()

	mine := suite.newAssignedOrder(driverID)
	other := suite.newAssignedOrder(otherDriverID)
	suite.Require().NoError(suite.orderRepo.Add(ctx, mine))
	suite.Require().NoError(suite.orderRepo.Add(ctx, other))

	query, err := queries.NewGetDriverDeliveriesQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(mine.ID()))
	suite.True(result[0].RestaurantID.IsEqual(mine.RestaurantID()))
	suite.Equal("assigned", result[0].Status)
	suite.Nil(result[0].PickedUpAt)
	suite.Nil(result[0].DeliveredAt)
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) TestHandle_IncludesDeliveredOrdersWithTimestamps() {
	ctx := context.Background()
	driverID := kernel.NewUUID()

	o := suite.newAssignedOrder(driverID)
	driver, err := actor.NewActor(driverID, actor.RoleDriver)
	suite.Require().NoError(err)
	_, err = o.ApplyTransition(driver, order.OutForDelivery, order.TransitionPayload{})
	suite.Require().NoError(err)
	_, err = o.ApplyTransition(driver, order.Delivered, order.TransitionPayload{})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetDriverDeliveriesQuery(driverID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("delivered", result[0].Status)
	suite.NotNil(result[0].PickedUpAt)
	suite.NotNil(result[0].DeliveredAt)
}

func (suite *GetDriverDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDriverDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetDriverDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDriverDeliveriesQueryHandlerTestSuite))
}
