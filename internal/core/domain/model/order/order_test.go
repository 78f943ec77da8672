package order_test

import (
	"testing"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPreferences(t *testing.T) order.DeliveryPreferences {
	t.Helper()
	prefs, err := order.NewDeliveryPreferences(
		"12 Station Rd", "Uttara", "Dhaka", "call on arrival", nil, order.PaymentCashOnDelivery)
	require.NoError(t, err)
	return prefs
}

func testActor(t *testing.T, role user.Role) order.Actor {
	t.Helper()
	actor, err := order.NewActor("Test Actor", role)
	require.NoError(t, err)
	return actor
}

func newTestOrder(t *testing.T, shopkeeperID, companyID kernel.UUID) *order.Order {
	t.Helper()
	item1, err := order.NewItem(kernel.NewUUID(), "Basmati Rice 5kg", 3, 50, "bag")
	require.NoError(t, err)
	item2, err := order.NewItem(kernel.NewUUID(), "Sunflower Oil 1L", 1, 20, "bottle")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), order.FormatNumber(1), shopkeeperID, companyID,
		[]order.Item{item1, item2}, testPreferences(t), "",
		testActor(t, user.RoleShopkeeper), time.Now())
	require.NoError(t, err)
	return o
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "ORD-0001", order.FormatNumber(1))
	assert.Equal(t, "ORD-0042", order.FormatNumber(42))
	assert.Equal(t, "ORD-12345", order.FormatNumber(12345))
}

func TestNewOrder_DerivesTotals(t *testing.T) {
	// Two items: qty 3 @ 50 and qty 1 @ 20.
	o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

	assert.InDelta(t, 170.0, o.TotalAmount(), 1e-9)
	assert.InDelta(t, 8.5, o.TaxAmount(), 1e-9)
	assert.InDelta(t, 50.0, o.DeliveryCharge(), 1e-9)
	assert.InDelta(t, 228.5, o.FinalAmount(), 1e-9)
	assert.InDelta(t, o.TotalAmount()+o.TaxAmount()+o.DeliveryCharge(), o.FinalAmount(), 1e-9)

	assert.Equal(t, order.StatusPending, o.Status())
	require.Len(t, o.Timeline(), 1)
	assert.Equal(t, order.StatusPending, o.Timeline()[0].Status())
	assert.Len(t, o.Items(), 2)
}

func TestNewOrder_Validation(t *testing.T) {
	shopkeeperID := kernel.NewUUID()
	companyID := kernel.NewUUID()
	item, err := order.NewItem(kernel.NewUUID(), "Salt", 1, 10, "kg")
	require.NoError(t, err)

	t.Run("requires items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-0001", shopkeeperID, companyID,
			nil, testPreferences(t), "", testActor(t, user.RoleShopkeeper), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", shopkeeperID, companyID,
			[]order.Item{item}, testPreferences(t), "", testActor(t, user.RoleShopkeeper), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires valid shopkeeper id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-0001", zero, companyID,
			[]order.Item{item}, testPreferences(t), "", testActor(t, user.RoleShopkeeper), time.Now())

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	actor := func(role user.Role) order.Actor { return testActor(t, role) }

	t.Run("valid transition appends timeline", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, o.ChangeStatus(order.StatusApproved, actor(user.RoleCompanyRep), "", time.Now()))

		assert.Equal(t, order.StatusApproved, o.Status())
		require.Len(t, o.Timeline(), 2)
		assert.Equal(t, order.StatusApproved, o.Timeline()[1].Status())
	})

	t.Run("invalid transition leaves order untouched", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		err := o.ChangeStatus(order.StatusDelivered, actor(user.RoleAdmin), "", time.Now())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.Timeline(), 1)
	})

	t.Run("rejection records the reason", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, o.ChangeStatus(order.StatusRejected, actor(user.RoleCompanyRep), "out of stock", time.Now()))

		assert.Equal(t, "out of stock", o.RejectionReason())
		assert.Contains(t, o.Timeline()[1].Note(), "out of stock")
	})

	t.Run("delivered stamps deliveredAt once", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, o.ChangeStatus(order.StatusApproved, actor(user.RoleCompanyRep), "", time.Now()))
		require.NoError(t, o.AssignWorker(kernel.NewUUID(), actor(user.RoleCompanyRep), time.Now()))
		require.NoError(t, o.ChangeStatus(order.StatusAccepted, actor(user.RoleDeliveryWorker), "", time.Now()))
		require.NoError(t, o.ChangeStatus(order.StatusPickedUp, actor(user.RoleDeliveryWorker), "", time.Now()))

		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, actor(user.RoleDeliveryWorker), "", at))

		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, at, *o.DeliveredAt())
	})
}

func TestOrder_AssignWorker(t *testing.T) {
	companyActor := testActor(t, user.RoleCompanyRep)

	t.Run("assigns from approved", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, o.ChangeStatus(order.StatusApproved, companyActor, "", time.Now()))

		workerID := kernel.NewUUID()
		require.NoError(t, o.AssignWorker(workerID, companyActor, time.Now()))

		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.DeliveryWorker())
		assert.True(t, o.DeliveryWorker().IsEqual(workerID))
		assert.Len(t, o.Timeline(), 3)
	})

	t.Run("rejects re-assigning the same worker", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, o.ChangeStatus(order.StatusApproved, companyActor, "", time.Now()))
		workerID := kernel.NewUUID()
		require.NoError(t, o.AssignWorker(workerID, companyActor, time.Now()))

		err := o.AssignWorker(workerID, companyActor, time.Now())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "already assigned")
	})

	t.Run("cannot assign a pending order", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		err := o.AssignWorker(kernel.NewUUID(), companyActor, time.Now())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestOrder_AuthorizeTransition(t *testing.T) {
	shopkeeperID := kernel.NewUUID()
	companyID := kernel.NewUUID()
	workerID := kernel.NewUUID()

	caller := func(id kernel.UUID, role user.Role) user.Caller {
		c, err := user.NewCaller(id, role, user.StatusActive)
		require.NoError(t, err)
		return c
	}

	t.Run("admin may do anything", func(t *testing.T) {
		o := newTestOrder(t, shopkeeperID, companyID)
		require.NoError(t, o.AuthorizeTransition(caller(kernel.NewUUID(), user.RoleAdmin), order.StatusApproved))
	})

	t.Run("company rep only on own orders", func(t *testing.T) {
		o := newTestOrder(t, shopkeeperID, companyID)

		require.NoError(t, o.AuthorizeTransition(caller(companyID, user.RoleCompanyRep), order.StatusApproved))
		require.ErrorIs(t,
			o.AuthorizeTransition(caller(kernel.NewUUID(), user.RoleCompanyRep), order.StatusApproved),
			errs.ErrAccessDenied)
	})

	t.Run("shopkeeper may cancel own pending order", func(t *testing.T) {
		o := newTestOrder(t, shopkeeperID, companyID)
		require.NoError(t, o.AuthorizeTransition(caller(shopkeeperID, user.RoleShopkeeper), order.StatusCancelled))
	})

	t.Run("shopkeeper may not cancel once assigned", func(t *testing.T) {
		o := newTestOrder(t, shopkeeperID, companyID)
		companyActor := testActor(t, user.RoleCompanyRep)
		require.NoError(t, o.ChangeStatus(order.StatusApproved, companyActor, "", time.Now()))
		require.NoError(t, o.AssignWorker(workerID, companyActor, time.Now()))

		err := o.AuthorizeTransition(caller(shopkeeperID, user.RoleShopkeeper), order.StatusCancelled)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("shopkeeper may not approve own order", func(t *testing.T) {
		o := newTestOrder(t, shopkeeperID, companyID)
		require.ErrorIs(t,
			o.AuthorizeTransition(caller(shopkeeperID, user.RoleShopkeeper), order.StatusApproved),
			errs.ErrAccessDenied)
	})

	t.Run("worker only on orders assigned to them", func(t *testing.T) {
		o := newTestOrder(t, shopkeeperID, companyID)
		companyActor := testActor(t, user.RoleCompanyRep)
		require.NoError(t, o.ChangeStatus(order.StatusApproved, companyActor, "", time.Now()))
		require.NoError(t, o.AssignWorker(workerID, companyActor, time.Now()))

		require.NoError(t, o.AuthorizeTransition(caller(workerID, user.RoleDeliveryWorker), order.StatusAccepted))
		require.ErrorIs(t,
			o.AuthorizeTransition(caller(kernel.NewUUID(), user.RoleDeliveryWorker), order.StatusAccepted),
			errs.ErrAccessDenied)
	})
}

func TestOrder_IsOverdue(t *testing.T) {
	now := time.Now()

	t.Run("fresh pending order is not overdue", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		assert.False(t, o.IsOverdue(now))
	})

	t.Run("old pending order is overdue", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		assert.True(t, o.IsOverdue(now.Add(8*24*time.Hour)))
	})

	t.Run("old delivered order is not overdue", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		companyActor := testActor(t, user.RoleCompanyRep)
		require.NoError(t, o.ChangeStatus(order.StatusApproved, companyActor, "", now))
		require.NoError(t, o.AssignWorker(kernel.NewUUID(), companyActor, now))
		workerActor := testActor(t, user.RoleDeliveryWorker)
		require.NoError(t, o.ChangeStatus(order.StatusAccepted, workerActor, "", now))
		require.NoError(t, o.ChangeStatus(order.StatusPickedUp, workerActor, "", now))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered, workerActor, "", now))

		assert.False(t, o.IsOverdue(now.Add(8*24*time.Hour)))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("constructed order validates", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, o.Validate())
	})
}

func TestItem(t *testing.T) {
	t.Run("derives line total", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Basmati Rice 5kg", 3, 50, "bag")

		require.NoError(t, err)
		assert.InDelta(t, 150.0, item.LineTotal(), 1e-9)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Rice", 0, 50, "bag")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, 50, "bag")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeliveryPreferences(t *testing.T) {
	t.Run("requires address, area, city", func(t *testing.T) {
		_, err := order.NewDeliveryPreferences("", "Uttara", "Dhaka", "", nil, order.PaymentCashOnDelivery)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewDeliveryPreferences("12 Station Rd", "", "Dhaka", "", nil, order.PaymentCashOnDelivery)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewDeliveryPreferences("12 Station Rd", "Uttara", "", "", nil, order.PaymentCashOnDelivery)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := order.NewDeliveryPreferences("12 Station Rd", "Uttara", "Dhaka", "", nil, order.PaymentMethod("card"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
