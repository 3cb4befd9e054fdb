package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newHomeTestHandler(db *gorm.DB) *HomeHandler {
	return NewHomeHandler(
		testRender(),
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
	)
}

func TestHomeHandler(t *testing.T) {
	db := newTestDB(t)
	h := newHomeTestHandler(db)

	sparklers := seedCategory(t, db, "Sparklers")
	seedProduct(t, db, sparklers, "10 CM ELECTRIC SPARKLER", 55, 40)

	empty := seedCategory(t, db, "Colour Smoke")
	hidden := seedProduct(t, db, empty, "RETIRED SMOKE", 120, 5)
	require.NoError(t, db.Model(hidden).Update("is_active", false).Error)

	t.Run("renders active products grouped by category", func(t *testing.T) {
		user := seedUser(t, db, "priya@example.com", "secret123", models.RoleCustomer)
		rec := httptest.NewRecorder()
		h.Home(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), user))

		assert.Equal(t, http.StatusOK, rec.Code)
		html := rec.Body.String()
		assert.Contains(t, html, "Sparklers")
		assert.Contains(t, html, "10 CM ELECTRIC SPARKLER")
		assert.Contains(t, html, `data-stock="40"`)
	})

	t.Run("hides categories with no active products", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		html := rec.Body.String()
		assert.NotContains(t, html, "Colour Smoke")
		assert.NotContains(t, html, "RETIRED SMOKE")
	})
}

func TestStaticPages(t *testing.T) {
	db := newTestDB(t)
	h := newHomeTestHandler(db)

	pages := map[string]http.HandlerFunc{
		"/about":   h.About,
		"/safety":  h.Safety,
		"/contact": h.Contact,
	}
	titles := map[string]string{
		"/about":   "About Us",
		"/safety":  "Safety Tips",
		"/contact": "Contact Us",
	}

	for path, handler := range pages {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), titles[path])
		})
	}
}
