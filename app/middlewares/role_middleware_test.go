package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestAs(user *models.User) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	if user == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
	ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
	return r.WithContext(ctx)
}

func TestRequireRoles(t *testing.T) {
	var forbiddenCalled, nextCalled bool
	forbidden := func(w http.ResponseWriter, r *http.Request) {
		forbiddenCalled = true
		w.WriteHeader(http.StatusForbidden)
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	gate := RequireRoles(forbidden, models.RoleAdmin, models.RoleStaff)(next)

	t.Run("guest redirects to login", func(t *testing.T) {
		forbiddenCalled, nextCalled = false, false
		rec := httptest.NewRecorder()

		gate.ServeHTTP(rec, requestAs(nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "/login")
		assert.Contains(t, rec.Header().Get("Location"), "status=error")
		assert.False(t, nextCalled)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		forbiddenCalled, nextCalled = false, false
		rec := httptest.NewRecorder()
		user := &models.User{ID: "u1", Email: "c@example.com", Role: models.RoleCustomer}

		gate.ServeHTTP(rec, requestAs(user))

		assert.True(t, forbiddenCalled)
		assert.False(t, nextCalled)
	})

	t.Run("unapproved staff is forbidden", func(t *testing.T) {
		forbiddenCalled, nextCalled = false, false
		rec := httptest.NewRecorder()
		user := &models.User{ID: "u2", Email: "s@example.com", Role: models.RoleStaff, IsApproved: false}

		gate.ServeHTTP(rec, requestAs(user))

		assert.True(t, forbiddenCalled)
		assert.False(t, nextCalled)
	})

	t.Run("approved staff passes", func(t *testing.T) {
		forbiddenCalled, nextCalled = false, false
		rec := httptest.NewRecorder()
		user := &models.User{ID: "u3", Email: "s@example.com", Role: models.RoleStaff, IsApproved: true}

		gate.ServeHTTP(rec, requestAs(user))

		assert.False(t, forbiddenCalled)
		assert.True(t, nextCalled)
	})

	t.Run("admin passes", func(t *testing.T) {
		forbiddenCalled, nextCalled = false, false
		rec := httptest.NewRecorder()
		user := &models.User{ID: "u4", Email: "a@example.com", Role: models.RoleAdmin, IsApproved: true}

		gate.ServeHTTP(rec, requestAs(user))

		assert.True(t, nextCalled)
	})
}

func TestRequireRolesJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := RequireRolesJSON(models.RoleAdmin)(next)

	t.Run("guest gets 401 envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()

		gate.ServeHTTP(rec, requestAs(nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Please log in to access this page.", body["error"])
	})

	t.Run("wrong role gets 403 envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		user := &models.User{ID: "u5", Email: "c@example.com", Role: models.RoleCustomer}

		gate.ServeHTTP(rec, requestAs(user))

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "You do not have permission to access this page.", body["error"])
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		user := &models.User{ID: "u6", Email: "a@example.com", Role: models.RoleAdmin, IsApproved: true}

		gate.ServeHTTP(rec, requestAs(user))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
