package commands_test

import (
	"context"
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/product"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOverdue(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllByWorker(ctx context.Context, workerID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockCreateOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockCreateOrderUoW) OrderNumbers() ports.OrderNumberSequence {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberSequence)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockWorkflowUoW struct{ mock.Mock }

func (m *MockWorkflowUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockWorkflowUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockWorkflowUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockWorkflowUoWFactory struct{ mock.Mock }

func (m *MockWorkflowUoWFactory) Create() commands.WorkflowUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkflowUoW)
}

// Test fixtures shared across the handler tests.

func newCaller(t *testing.T, id kernel.UUID, role user.Role) user.Caller {
	t.Helper()
	caller, err := user.NewCaller(id, role, user.StatusActive)
	require.NoError(t, err)
	return caller
}

func directoryUser(t *testing.T, id kernel.UUID, name string, role user.Role, areas []string) *user.User {
	t.Helper()
	u, err := user.NewUser(id, name, "+8801700000000", "Warehouse 4, Tejgaon", role, user.StatusActive, areas)
	require.NoError(t, err)
	return u
}

// orderIn builds an order owned by the given shopkeeper and company and
// walks it to the requested status.
func orderIn(t *testing.T, status order.Status, shopkeeperID, companyID kernel.UUID) *order.Order {
	t.Helper()
	item1, err := order.NewItem(kernel.NewUUID(), "Basmati Rice 5kg", 3, 50, "bag")
	require.NoError(t, err)
	item2, err := order.NewItem(kernel.NewUUID(), "Sunflower Oil 1L", 1, 20, "bottle")
	require.NoError(t, err)
	prefs, err := order.NewDeliveryPreferences(
		"12 Station Rd", "Uttara", "Dhaka", "", nil, order.PaymentCashOnDelivery)
	require.NoError(t, err)
	actor, err := order.NewActor("Admin", user.RoleAdmin)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.FormatNumber(1), shopkeeperID, companyID,
		[]order.Item{item1, item2}, prefs, "", actor, time.Now())
	require.NoError(t, err)

	steps := map[order.Status][]order.Status{
		order.StatusPending:  {},
		order.StatusApproved: {order.StatusApproved},
		order.StatusAssigned: {order.StatusApproved, order.StatusAssigned},
		order.StatusAccepted: {order.StatusApproved, order.StatusAssigned, order.StatusAccepted},
	}
	for _, step := range steps[status] {
		require.NoError(t, o.ChangeStatus(step, actor, "", time.Now()))
	}
	return o
}

// deliveryIn builds a delivery for the given order assigned to workerID and
// walks it to the requested status.
func deliveryIn(t *testing.T, status delivery.Status, o *order.Order, workerID kernel.UUID) *delivery.Delivery {
	t.Helper()
	worker, err := delivery.NewParty(workerID, "Rahim", "+8801700000001")
	require.NoError(t, err)
	shopkeeper, err := delivery.NewParty(o.ShopkeeperID(), "Corner Shop", "+8801700000002")
	require.NoError(t, err)
	company, err := delivery.NewParty(o.CompanyID(), "Fresh Foods Ltd", "+8801700000003")
	require.NoError(t, err)
	item, err := delivery.NewItem(kernel.NewUUID(), "Basmati Rice 5kg", 3, "bag")
	require.NoError(t, err)
	payment, err := delivery.NewPayment(order.PaymentCashOnDelivery, o.FinalAmount())
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), delivery.GenerateNumber(time.Now()),
		o.ID(), o.Number(),
		worker, shopkeeper, company,
		[]delivery.Item{item},
		"Warehouse 4, Tejgaon", "12 Station Rd", "Uttara",
		payment, time.Now())
	require.NoError(t, err)

	steps := map[delivery.Status][]delivery.Status{
		delivery.StatusAssigned:  {},
		delivery.StatusPickedUp:  {delivery.StatusPickedUp},
		delivery.StatusInTransit: {delivery.StatusPickedUp, delivery.StatusInTransit},
	}
	for _, step := range steps[status] {
		require.NoError(t, d.ChangeStatus(step, time.Now()))
	}
	return d
}
