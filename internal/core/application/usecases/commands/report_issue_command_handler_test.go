package commands_test

import (
	"testing"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNewReportIssueCommand_Validation(t *testing.T) {
	t.Run("resolution required when resolvable", func(t *testing.T) {
		_, err := commands.NewReportIssueCommand(kernel.NewUUID(),
			delivery.IssueWrongAddress, "gate number was wrong", boolPtr(true), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("description required", func(t *testing.T) {
		_, err := commands.NewReportIssueCommand(kernel.NewUUID(),
			delivery.IssueWrongAddress, "", nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown issue type", func(t *testing.T) {
		_, err := commands.NewReportIssueCommand(kernel.NewUUID(),
			delivery.IssueType("traffic"), "stuck", nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestReportIssueCommandHandler_Handle_CannotComplete(t *testing.T) {
	ctx := t.Context()
	shopkeeperID := kernel.NewUUID()
	companyID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	caller := newCaller(t, workerID, user.RoleDeliveryWorker)
	o := orderIn(t, order.StatusAccepted, shopkeeperID, companyID)
	d := deliveryIn(t, delivery.StatusInTransit, o, workerID)

	cmd, err := commands.NewReportIssueCommand(d.ID(),
		delivery.IssueCustomerRefused, "customer refused to accept", boolPtr(false), "")
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	orders := new(MockOrderRepository)
	users := new(MockUserRepository)
	uow := new(MockWorkflowUoW)

	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("OrderRepository").Return(orders)
	uow.On("UserRepository").Return(users)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		users.On("Get", ctx, workerID).Return(directoryUser(t, workerID, "Rahim", user.RoleDeliveryWorker, nil), nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		deliveries.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportIssueCommandHandler(factory)
	result, err := handler.Handle(ctx, caller, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusFailed, result.Status)
	assert.Equal(t, 1, result.IssueCount)
	assert.Equal(t, order.StatusCancelled.String(), result.OrderStatus)
	assert.Equal(t, order.StatusCancelled, o.Status())

	require.Len(t, result.Notifications, 2)
	assert.Equal(t, notification.TypeDeliveryIssue, result.Notifications[0].Type())
	assert.Equal(t, notification.PriorityHigh, result.Notifications[0].Priority())
	assert.Equal(t, shopkeeperID, result.Notifications[0].RecipientID())
	assert.Equal(t, companyID, result.Notifications[1].RecipientID())

	deliveries.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReportIssueCommandHandler_Handle_ResolvedAndCompleted(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	caller := newCaller(t, workerID, user.RoleDeliveryWorker)
	o := orderIn(t, order.StatusAccepted, kernel.NewUUID(), kernel.NewUUID())
	d := deliveryIn(t, delivery.StatusPickedUp, o, workerID)

	cmd, err := commands.NewReportIssueCommand(d.ID(),
		delivery.IssueWrongAddress, "address was outdated", boolPtr(true), "called the shop for directions")
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	orders := new(MockOrderRepository)
	users := new(MockUserRepository)
	uow := new(MockWorkflowUoW)

	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("OrderRepository").Return(orders)
	uow.On("UserRepository").Return(users)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		users.On("Get", ctx, workerID).Return(directoryUser(t, workerID, "Rahim", user.RoleDeliveryWorker, nil), nil).Once(),
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		deliveries.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportIssueCommandHandler(factory)
	result, err := handler.Handle(ctx, caller, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivered, result.Status)
	assert.Equal(t, order.StatusDelivered.String(), result.OrderStatus)
	assert.Equal(t, order.StatusDelivered, o.Status())
	require.Len(t, d.Issues(), 1)
	assert.Equal(t, "called the shop for directions", d.Issues()[0].Resolution())
	assert.Nil(t, d.Proof())

	uow.AssertExpectations(t)
}

func TestReportIssueCommandHandler_Handle_RecordOnly(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	caller := newCaller(t, workerID, user.RoleDeliveryWorker)
	o := orderIn(t, order.StatusAccepted, kernel.NewUUID(), kernel.NewUUID())
	d := deliveryIn(t, delivery.StatusInTransit, o, workerID)

	cmd, err := commands.NewReportIssueCommand(d.ID(),
		delivery.IssueCustomerUnavailable, "nobody answered, will retry", nil, "")
	require.NoError(t, err)

	deliveries := new(MockDeliveryRepository)
	orders := new(MockOrderRepository)
	uow := new(MockWorkflowUoW)

	uow.On("DeliveryRepository").Return(deliveries)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		deliveries.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportIssueCommandHandler(factory)
	result, err := handler.Handle(ctx, caller, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusInTransit, result.Status)
	assert.Equal(t, 1, result.IssueCount)
	assert.Empty(t, result.OrderStatus)
	assert.Len(t, result.Notifications, 2)
	orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)

	uow.AssertExpectations(t)
}
