package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitCategoryForm(t *testing.T, handle http.HandlerFunc, categoryID string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/admin/categories", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if categoryID != "" {
		r = mux.SetURLVars(r, map[string]string{"id": categoryID})
	}
	rec := httptest.NewRecorder()

	handle(rec, r)
	return rec
}

func categoriesRedirect(status, message string) string {
	return "/admin/categories?status=" + status + "&message=" + url.QueryEscape(message)
}

func TestCategoriesPageHandler(t *testing.T) {
	db := newTestDB(t)
	handler, _ := newTestAdminHandler(t, db)

	admin := seedUser(t, db, "admin@mannancrackers.in", models.RoleAdmin)
	seedCategory(t, db, "Bijili Crackers")

	r := withUser(httptest.NewRequest(http.MethodGet, "/admin/categories", nil), admin)
	rec := httptest.NewRecorder()

	handler.CategoriesPageHandler(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Category Management")
	assert.Contains(t, body, "Bijili Crackers")
}

func TestCreateCategoryHandler(t *testing.T) {
	db := newTestDB(t)
	handler, _ := newTestAdminHandler(t, db)
	categoryRepo := repositories.NewCategoryRepository(db)

	t.Run("creates a category", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.CreateCategoryHandler, "", url.Values{
			"name":          {"Bijili Crackers"},
			"description":   {"Loud single-shot crackers"},
			"display_order": {"4"},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("success", `Category "Bijili Crackers" has been created.`), rec.Header().Get("Location"))

		created, err := categoryRepo.GetBySlug(context.Background(), "bijili-crackers")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Bijili Crackers", created.Name)
		assert.Equal(t, "Loud single-shot crackers", created.Description)
		assert.Equal(t, 4, created.DisplayOrder)
	})

	t.Run("requires a name", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.CreateCategoryHandler, "", url.Values{
			"name": {"   "},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("error", "Category name is required."), rec.Header().Get("Location"))
	})

	t.Run("rejects a non-numeric display order", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.CreateCategoryHandler, "", url.Values{
			"name":          {"Twinkling Stars"},
			"display_order": {"first"},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("error", "Display order must be a number."), rec.Header().Get("Location"))
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.CreateCategoryHandler, "", url.Values{
			"name": {"Bijili Crackers"},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("error", `Category "Bijili Crackers" already exists.`), rec.Header().Get("Location"))
	})
}

func TestUpdateCategoryHandler(t *testing.T) {
	db := newTestDB(t)
	handler, _ := newTestAdminHandler(t, db)

	category := seedCategory(t, db, "Old Name")

	t.Run("renames and reorders", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.UpdateCategoryHandler, category.ID, url.Values{
			"name":          {"Twinkling Stars"},
			"display_order": {"9"},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("success", `Category "Twinkling Stars" has been updated.`), rec.Header().Get("Location"))

		var updated models.Category
		require.NoError(t, db.First(&updated, "id = ?", category.ID).Error)
		assert.Equal(t, "Twinkling Stars", updated.Name)
		assert.Equal(t, "twinkling-stars", updated.Slug)
		assert.Equal(t, 9, updated.DisplayOrder)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.UpdateCategoryHandler, uuid.New().String(), url.Values{
			"name": {"Whatever"},
		})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("error", "Category not found."), rec.Header().Get("Location"))
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	db := newTestDB(t)
	handler, _ := newTestAdminHandler(t, db)
	categoryRepo := repositories.NewCategoryRepository(db)

	category := seedCategory(t, db, "Gift Boxes")

	t.Run("deletes the category", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.DeleteCategoryHandler, category.ID, url.Values{})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("success", fmt.Sprintf("Category %q has been deleted.", "Gift Boxes")), rec.Header().Get("Location"))

		gone, err := categoryRepo.GetByID(context.Background(), category.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := submitCategoryForm(t, handler.DeleteCategoryHandler, uuid.New().String(), url.Values{})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, categoriesRedirect("error", "Category not found."), rec.Header().Get("Location"))
	})
}
