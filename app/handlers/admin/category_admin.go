package admin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
)

func redirectCategories(w http.ResponseWriter, r *http.Request, status, message string) {
	http.Redirect(w, r, fmt.Sprintf("/admin/categories?status=%s&message=%s", status, url.QueryEscape(message)), http.StatusSeeOther)
}

// CategoriesPageHandler lists the catalog categories in display order with
// the add form alongside.
func (h *AdminHandler) CategoriesPageHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoriesPageHandler: failed to load categories: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin Dashboard", URL: "/admin/dashboard"},
		{Name: "Categories", URL: "/admin/categories"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Category Management",
		"Breadcrumbs": breadcrumbs,
		"Categories":  categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories", data)
}

// CreateCategoryHandler adds a catalog category. The slug comes from the
// name; the display order defaults to last.
func (h *AdminHandler) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		redirectCategories(w, r, "error", "Category name is required.")
		return
	}

	displayOrder := 0
	if raw := strings.TrimSpace(r.FormValue("display_order")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			redirectCategories(w, r, "error", "Display order must be a number.")
			return
		}
		displayOrder = parsed
	}

	categorySlug := helpers.GenerateSlug(name)
	if existing, err := h.categoryRepo.GetBySlug(r.Context(), categorySlug); err == nil && existing != nil {
		redirectCategories(w, r, "error", fmt.Sprintf("Category %q already exists.", name))
		return
	}

	category := &models.Category{
		ID:           uuid.New().String(),
		Name:         name,
		Slug:         categorySlug,
		Description:  strings.TrimSpace(r.FormValue("description")),
		DisplayOrder: displayOrder,
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("CreateCategoryHandler: failed to create category %s: %v", name, err)
		redirectCategories(w, r, "error", "Failed to create category.")
		return
	}

	log.Printf("CreateCategoryHandler: ✅ Category %s created", category.Name)
	redirectCategories(w, r, "success", fmt.Sprintf("Category %q has been created.", category.Name))
}

// UpdateCategoryHandler renames a category or changes its ordering. The
// slug follows the new name.
func (h *AdminHandler) UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		redirectCategories(w, r, "error", "Category not found.")
		return
	}

	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		category.Name = name
		category.Slug = helpers.GenerateSlug(name)
	}
	if description := strings.TrimSpace(r.FormValue("description")); description != "" {
		category.Description = description
	}
	if raw := strings.TrimSpace(r.FormValue("display_order")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			redirectCategories(w, r, "error", "Display order must be a number.")
			return
		}
		category.DisplayOrder = parsed
	}

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("UpdateCategoryHandler: failed to update category %s: %v", category.ID, err)
		redirectCategories(w, r, "error", "Failed to update category.")
		return
	}

	log.Printf("UpdateCategoryHandler: ✅ Category %s updated", category.Name)
	redirectCategories(w, r, "success", fmt.Sprintf("Category %q has been updated.", category.Name))
}

// DeleteCategoryHandler removes a category and, through the foreign key,
// every product in it.
func (h *AdminHandler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		redirectCategories(w, r, "error", "Category not found.")
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), category.ID); err != nil {
		log.Printf("DeleteCategoryHandler: failed to delete category %s: %v", category.ID, err)
		redirectCategories(w, r, "error", "Failed to delete category.")
		return
	}

	log.Printf("DeleteCategoryHandler: ⚠️ Category %s deleted along with its products", category.Name)
	redirectCategories(w, r, "success", fmt.Sprintf("Category %q has been deleted.", category.Name))
}
