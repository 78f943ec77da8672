package services_test

import (
	"testing"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/core/domain/services"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorker(t *testing.T, status user.Status, areas []string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Rahim", "+8801700000000", "",
		user.RoleDeliveryWorker, status, areas)
	require.NoError(t, err)
	return u
}

func TestWorkerMatcher_Match(t *testing.T) {
	matcher := services.NewWorkerMatcher()

	t.Run("active worker serving the area", func(t *testing.T) {
		w := testWorker(t, user.StatusActive, []string{"Uttara", "Banani"})
		require.NoError(t, matcher.Match(w, "Uttara"))
	})

	t.Run("worker with no area restriction serves everywhere", func(t *testing.T) {
		w := testWorker(t, user.StatusActive, nil)
		require.NoError(t, matcher.Match(w, "Gulshan"))
	})

	t.Run("empty order area skips the area check", func(t *testing.T) {
		w := testWorker(t, user.StatusActive, []string{"Uttara"})
		require.NoError(t, matcher.Match(w, ""))
	})

	t.Run("area outside the restriction list", func(t *testing.T) {
		w := testWorker(t, user.StatusActive, []string{"Uttara"})

		err := matcher.Match(w, "Gulshan")

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "Gulshan")
	})

	t.Run("suspended worker", func(t *testing.T) {
		w := testWorker(t, user.StatusSuspended, nil)

		err := matcher.Match(w, "Uttara")

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "suspended")
	})

	t.Run("wrong role", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Karim", "", "",
			user.RoleShopkeeper, user.StatusActive, nil)
		require.NoError(t, err)

		err = matcher.Match(u, "Uttara")

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "shopkeeper")
	})

	t.Run("nil worker", func(t *testing.T) {
		require.ErrorIs(t, matcher.Match(nil, "Uttara"), errs.ErrValueIsRequired)
	})
}
