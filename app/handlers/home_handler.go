package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewHomeHandler(r *render.Render, c repositories.CategoryRepositoryImpl, p repositories.ProductRepositoryImpl) *HomeHandler {
	return &HomeHandler{
		render:       r,
		categoryRepo: c,
		productRepo:  p,
	}
}

// Home renders the storefront catalog: every category in display order
// with its active products. The cart itself lives client-side.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetCategoriesWithProducts(r.Context())
	if err != nil {
		log.Printf("Home: failed to load catalog: %v", err)
		http.Error(w, "Failed to load catalog", http.StatusInternalServerError)
		return
	}

	// Categories whose products are all inactive stay off the page.
	visible := categories[:0]
	for _, category := range categories {
		if len(category.Products) > 0 {
			visible = append(visible, category)
		}
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "The Mannan Crackers",
		"Categories": visible,
		"Now":        time.Now(),
	})
	_ = h.render.HTML(w, http.StatusOK, "home", data)
}

func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "About Us"})
	_ = h.render.HTML(w, http.StatusOK, "about", data)
}

func (h *HomeHandler) Safety(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Safety Tips"})
	_ = h.render.HTML(w, http.StatusOK, "safety", data)
}

func (h *HomeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{"Title": "Contact Us"})
	_ = h.render.HTML(w, http.StatusOK, "contact", data)
}
