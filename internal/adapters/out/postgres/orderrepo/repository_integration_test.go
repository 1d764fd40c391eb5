package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrderWithItems() *order.Order {
	addrID := kernel.NewUUID()
	addr, err := address.NewAddress(addrID, "12 Baker Street", "London", "NW1")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), addrID, addr)
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(2500)
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", price, nil, 10)
	suite.Require().NoError(err)

	err = o.AddItem(p, 3)
	suite.Require().NoError(err)

	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrderWithItems()

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(o.ID()))
	suite.True(loaded.UserID().IsEqual(o.UserID()))
	suite.Equal(o.OrderNumber(), loaded.OrderNumber())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.PaymentPending, loaded.PaymentStatus())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(3, loaded.Items()[0].Quantity())
	suite.Equal(int64(2500), loaded.Items()[0].UnitPrice().Amount())
	suite.Equal(int64(7500), loaded.SubTotal().Amount())
	suite.Equal(int64(7500), loaded.TotalAmount().Amount())
	suite.Equal(0, loaded.Version())
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	o := suite.newOrderWithItems()
	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	err = loaded.Confirm()
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	reloaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, reloaded.Status())
	suite.Equal(1, reloaded.Version())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_ReplacesItems() {
	ctx := context.Background()
	o := suite.newOrderWithItems()
	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	err = loaded.UpdateItemQuantity(loaded.Items()[0].ID(), 1)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	reloaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(reloaded.Items(), 1)
	suite.Equal(1, reloaded.Items()[0].Quantity())
	suite.Equal(int64(2500), reloaded.SubTotal().Amount())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	o := suite.newOrderWithItems()
	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	// Two readers load the same version; the second writer must lose.
	first, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	err = first.Confirm()
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, first)
	suite.Require().NoError(err)

	err = second.PutOnHold()
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)

	reloaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, reloaded.Status())
	suite.Equal(1, reloaded.Version())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_MissingOrderNotFound() {
	ctx := context.Background()
	o := suite.newOrderWithItems()

	err := suite.repo.Update(ctx, o)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
