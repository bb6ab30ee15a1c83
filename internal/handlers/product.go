package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type ProductHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewProductHandler(st *store.Store, sim *services.Simulator) *ProductHandler {
	return &ProductHandler{store: st, sim: sim}
}

func (h *ProductHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	category := c.QueryParam("category")
	query := strings.ToLower(c.QueryParam("q"))

	products := []models.ProductItem{}
	for _, p := range snap.ProductItems {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			continue
		}
		products = append(products, p)
	}

	_ = c.JSON(200, products)
}

func (h *ProductHandler) Get(c *drift.Context) {
	product, ok := h.store.Snapshot().ProductItemByID(c.Param("productId"))
	if !ok {
		c.NotFound("product not found")
		return
	}

	_ = c.JSON(200, product)
}

func (h *ProductHandler) Create(c *drift.Context) {
	var req dto.CreateProductRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.Category == "" {
		c.BadRequest("name and category are required")
		return
	}

	product := models.ProductItem{
		ID:         newID("prod"),
		Name:       req.Name,
		Brand:      req.Brand,
		SKU:        req.SKU,
		Price:      req.Price,
		Category:   req.Category,
		Supplier:   req.Supplier,
		LeadTime:   req.LeadTime,
		Dimensions: req.Dimensions,
		SourceURL:  req.SourceURL,
		ImageURL:   req.ImageURL,
	}

	product, err := services.EchoCreate(c.Request.Context(), h.sim, product)
	if err != nil {
		return
	}

	h.store.AddProductItem(product)

	_ = c.JSON(201, product)
}

func (h *ProductHandler) Update(c *drift.Context) {
	var patch models.ProductItemPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	id := c.Param("productId")
	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.UpdateProductItem(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("product not found")
			return
		}
		c.InternalServerError("failed to update product")
		return
	}

	product, _ := h.store.Snapshot().ProductItemByID(id)
	_ = c.JSON(200, product)
}

func (h *ProductHandler) Delete(c *drift.Context) {
	id := c.Param("productId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteProductItem(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("product not found")
			return
		}
		c.InternalServerError("failed to delete product")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "product deleted"})
}

// Scrape imports a product from a retailer URL via the simulated scraper.
func (h *ProductHandler) Scrape(c *drift.Context) {
	var req dto.ScrapeProductRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		c.BadRequest("url must be absolute")
		return
	}

	product, err := h.sim.ScrapeProductURL(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		c.InternalServerError("failed to scrape product")
		return
	}

	h.store.AddProductItem(product)

	_ = c.JSON(201, product)
}

func (h *ProductHandler) ListCategories(c *drift.Context) {
	snap := h.store.Snapshot()

	type categoryResponse struct {
		models.ProductCategory
		ProductCount int `json:"product_count"`
	}

	response := make([]categoryResponse, len(snap.ProductCategories))
	for i, cat := range snap.ProductCategories {
		response[i] = categoryResponse{
			ProductCategory: cat,
			ProductCount:    snap.ProductCountByCategory(cat.Name),
		}
	}

	_ = c.JSON(200, response)
}

func (h *ProductHandler) CreateCategory(c *drift.Context) {
	var req dto.CreateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	category := models.ProductCategory{
		ID:          newID("cat"),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		ParentID:    req.ParentID,
	}

	category, err := services.EchoCreate(c.Request.Context(), h.sim, category)
	if err != nil {
		return
	}

	h.store.AddProductCategory(category)

	_ = c.JSON(201, category)
}
