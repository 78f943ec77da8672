package services_test

import (
	"testing"
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/core/domain/services"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderInStatus(t *testing.T, target order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Basmati Rice 5kg", 3, 50, "bag")
	require.NoError(t, err)
	prefs, err := order.NewDeliveryPreferences(
		"12 Station Rd", "Uttara", "Dhaka", "", nil, order.PaymentCashOnDelivery)
	require.NoError(t, err)
	actor, err := order.NewActor("Test Actor", user.RoleAdmin)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.FormatNumber(1),
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, prefs, "", actor, time.Now())
	require.NoError(t, err)

	path := map[order.Status][]order.Status{
		order.StatusPending:  {},
		order.StatusApproved: {order.StatusApproved},
		order.StatusAssigned: {order.StatusApproved, order.StatusAssigned},
		order.StatusAccepted: {order.StatusApproved, order.StatusAssigned, order.StatusAccepted},
		order.StatusPickedUp: {order.StatusApproved, order.StatusAssigned, order.StatusAccepted, order.StatusPickedUp},
	}
	for _, step := range path[target] {
		require.NoError(t, o.ChangeStatus(step, actor, "", time.Now()))
	}
	return o
}

func syncActor(t *testing.T) order.Actor {
	t.Helper()
	actor, err := order.NewActor("Rahim", user.RoleDeliveryWorker)
	require.NoError(t, err)
	return actor
}

func TestOrderSynchronizer_SyncFromDelivery_Delivered(t *testing.T) {
	sync := services.NewOrderSynchronizer()

	t.Run("from picked_up", func(t *testing.T) {
		o := orderInStatus(t, order.StatusPickedUp)

		require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusDelivered, syncActor(t), "", time.Now()))

		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("from accepted walks the happy path", func(t *testing.T) {
		o := orderInStatus(t, order.StatusAccepted)
		before := len(o.Timeline())

		require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusDelivered, syncActor(t), "", time.Now()))

		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Len(t, o.Timeline(), before+2)
	})

	t.Run("from assigned walks the happy path", func(t *testing.T) {
		o := orderInStatus(t, order.StatusAssigned)

		require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusDelivered, syncActor(t), "", time.Now()))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("pending order cannot be delivered", func(t *testing.T) {
		o := orderInStatus(t, order.StatusPending)

		err := sync.SyncFromDelivery(o, delivery.StatusDelivered, syncActor(t), "", time.Now())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestOrderSynchronizer_SyncFromDelivery_Failed(t *testing.T) {
	sync := services.NewOrderSynchronizer()
	o := orderInStatus(t, order.StatusAccepted)

	require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusFailed, syncActor(t), "customer refused", time.Now()))

	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.Equal(t, "customer refused", o.RejectionReason())
}

func TestOrderSynchronizer_SyncFromDelivery_Returned(t *testing.T) {
	sync := services.NewOrderSynchronizer()
	o := orderInStatus(t, order.StatusPickedUp)

	require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusReturned, syncActor(t), "returned to warehouse", time.Now()))

	assert.Equal(t, order.StatusCancelled, o.Status())
}

func TestOrderSynchronizer_SyncFromDelivery_TerminalOrderUntouched(t *testing.T) {
	sync := services.NewOrderSynchronizer()
	o := orderInStatus(t, order.StatusPickedUp)
	require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusDelivered, syncActor(t), "", time.Now()))
	timeline := len(o.Timeline())

	require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusFailed, syncActor(t), "", time.Now()))

	assert.Equal(t, order.StatusDelivered, o.Status())
	assert.Len(t, o.Timeline(), timeline)
}

func TestOrderSynchronizer_SyncFromDelivery_NonTerminalOutcomeIsNoOp(t *testing.T) {
	sync := services.NewOrderSynchronizer()
	o := orderInStatus(t, order.StatusAccepted)
	timeline := len(o.Timeline())

	require.NoError(t, sync.SyncFromDelivery(o, delivery.StatusInTransit, syncActor(t), "", time.Now()))

	assert.Equal(t, order.StatusAccepted, o.Status())
	assert.Len(t, o.Timeline(), timeline)
}
