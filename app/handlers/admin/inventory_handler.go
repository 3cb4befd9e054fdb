package admin

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/utils/breadcrumb"
	"github.com/shopspring/decimal"
)

const maxProductImageSize = 10 << 20

// InventoryPageHandler renders the staff product screen: the full catalog
// grouped by category, with an optional name search.
func (h *AdminHandler) InventoryPageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	searchQuery := strings.TrimSpace(r.URL.Query().Get("search"))

	var (
		products []models.Product
		err      error
	)
	if searchQuery != "" {
		products, err = h.productRepo.SearchByName(ctx, searchQuery)
	} else {
		products, err = h.productRepo.GetAllForInventory(ctx)
	}
	if err != nil {
		log.Printf("InventoryPageHandler: failed to load products: %v", err)
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(ctx)
	if err != nil {
		log.Printf("InventoryPageHandler: failed to load categories: %v", err)
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Inventory", URL: "/staff/inventory"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Inventory Management",
		"Breadcrumbs": breadcrumbs,
		"Products":    products,
		"Categories":  categories,
		"SearchQuery": searchQuery,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/inventory", data)
}

// SaveProductHandler creates or updates a product from the inventory form.
// A present product_id means edit, otherwise a new product is created. The
// image upload is optional either way.
func (h *AdminHandler) SaveProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxProductImageSize); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Invalid form data"})
		return
	}

	ctx := r.Context()
	productID := strings.TrimSpace(r.FormValue("product_id"))
	name := strings.TrimSpace(r.FormValue("name"))
	categoryID := strings.TrimSpace(r.FormValue("category"))
	rawPrice := strings.TrimSpace(r.FormValue("price"))
	rawStock := strings.TrimSpace(r.FormValue("stock_quantity"))

	if name == "" || categoryID == "" || rawPrice == "" || rawStock == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "All fields are required"})
		return
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil || price.IsNegative() {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Invalid price"})
		return
	}

	stock, err := strconv.Atoi(rawStock)
	if err != nil || stock < 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Invalid stock quantity"})
		return
	}

	category, err := h.categoryRepo.GetByID(ctx, categoryID)
	if err != nil || category == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Invalid category"})
		return
	}

	imagePath, err := h.saveProductImage(r)
	if err != nil {
		log.Printf("SaveProductHandler: failed to store image: %v", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Failed to store product image"})
		return
	}

	if productID != "" {
		product, err := h.productRepo.GetByID(ctx, productID)
		if err != nil || product == nil {
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Product not found"})
			return
		}

		product.Name = name
		product.Slug = helpers.GenerateSlug(name) + "-" + product.ID[:8]
		product.CategoryID = category.ID
		product.Price = price
		product.StockQuantity = stock
		if imagePath != "" {
			product.ImagePath = imagePath
		}

		if err := h.productRepo.Update(ctx, product); err != nil {
			log.Printf("SaveProductHandler: failed to update product %s: %v", product.ID, err)
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Failed to update product"})
			return
		}

		log.Printf("SaveProductHandler: ✅ Product %s updated", product.Name)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"product_id": product.ID,
			"message":    "Product updated successfully",
		})
		return
	}

	newID := uuid.New().String()
	product := &models.Product{
		ID:            newID,
		CategoryID:    category.ID,
		Name:          name,
		Slug:          helpers.GenerateSlug(name) + "-" + newID[:8],
		Price:         price,
		StockQuantity: stock,
		ImagePath:     imagePath,
		IsActive:      true,
	}

	if err := h.productRepo.Create(ctx, product); err != nil {
		log.Printf("SaveProductHandler: failed to create product %s: %v", name, err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Failed to create product"})
		return
	}

	log.Printf("SaveProductHandler: ✅ Product %s created", product.Name)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"product_id": product.ID,
		"message":    "Product created successfully",
	})
}

// saveProductImage stores an uploaded product image under the media
// directory and returns its public path. No upload returns "".
func (h *AdminHandler) saveProductImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if header.Size > maxProductImageSize {
		return "", fmt.Errorf("image exceeds maximum size of 10MB")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	dir := filepath.Join(h.mediaDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/media/products/" + filename, nil
}

type productData struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
}

// GetProductHandler returns one product as JSON for the inventory edit
// form.
func (h *AdminHandler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("GetProductHandler: failed to load product %s: %v", productID, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Product not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": productData{
			ID:            product.ID,
			Name:          product.Name,
			Category:      product.CategoryID,
			Price:         product.Price,
			StockQuantity: product.StockQuantity,
			ImageURL:      product.ImagePath,
		},
	})
}

// DeleteProductHandler removes a product from the catalog entirely.
func (h *AdminHandler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("DeleteProductHandler: failed to load product %s: %v", productID, err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Failed to delete product"})
		return
	}
	if product == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Product not found"})
		return
	}

	if err := h.productRepo.Delete(r.Context(), product.ID); err != nil {
		log.Printf("DeleteProductHandler: failed to delete product %s: %v", product.ID, err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Failed to delete product"})
		return
	}

	log.Printf("DeleteProductHandler: ✅ Product %s deleted", product.Name)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

type quickAddStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// QuickAddStockHandler tops up one product's stock straight from the
// dashboard's low-stock list.
func (h *AdminHandler) QuickAddStockHandler(w http.ResponseWriter, r *http.Request) {
	var req quickAddStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity <= 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), req.ProductID)
	if err != nil || product == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	if err := h.productRepo.IncrementStock(r.Context(), product.ID, req.Quantity); err != nil {
		log.Printf("QuickAddStockHandler: failed to add stock to product %s: %v", product.ID, err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false})
		return
	}

	log.Printf("QuickAddStockHandler: ✅ Added %d stock to %s", req.Quantity, product.Name)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
