package commands_test

import (
	"context"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/model/split"
	"commerce/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSplitRepository struct{ mock.Mock }

func (m *MockSplitRepository) Add(ctx context.Context, s *split.OrderSplit) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSplitRepository) Get(ctx context.Context, id kernel.UUID) (*split.OrderSplit, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*split.OrderSplit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSplitRepository) GetByOriginalOrder(ctx context.Context, orderID kernel.UUID) ([]*split.OrderSplit, error) {
	args := m.Called(ctx, orderID)
	if s := args.Get(0); s != nil {
		return s.([]*split.OrderSplit), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*address.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
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

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSplitUoW struct{ mock.Mock }

func (m *MockSplitUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSplitUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSplitUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSplitUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSplitUoW) SplitRepository() ports.OrderSplitRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderSplitRepository)
}

func (m *MockSplitUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockSplitUoWFactory struct{ mock.Mock }

func (m *MockSplitUoWFactory) Create() commands.SplitUoW {
	args := m.Called()
	return args.Get(0).(commands.SplitUoW)
}
