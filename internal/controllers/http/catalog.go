package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"coffeepos/internal/domain"
	"coffeepos/internal/services"

	"github.com/gin-gonic/gin"
)

const productCacheKey = "products:all"

// ListProducts serves the menu through a short-lived Redis cache; the
// cache is dropped on every catalog mutation.
func (h *Handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, productCacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(b))
			return
		}
	}

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(products); err == nil {
			h.rdb.Set(ctx, productCacheKey, data, 10*time.Second)
		}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) invalidateProductCache() {
	if h.rdb != nil {
		h.rdb.Del(context.Background(), productCacheKey)
	}
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.catalog.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		SizeID:      req.SizeID,
		Status:      domain.ProductStatus(req.Status),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.invalidateProductCache()
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := services.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		SizeID:      req.SizeID,
	}
	if req.Status != nil {
		st := domain.ProductStatus(*req.Status)
		in.Status = &st
	}
	p, err := h.catalog.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.invalidateProductCache()
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.invalidateProductCache()
	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadProductImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	p, err := h.catalog.AttachProductImage(c.Request.Context(), id, header.Filename, file)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	h.invalidateProductCache()
	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListCategories(c *gin.Context) {
	out, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.catalog.CreateCategory(c.Request.Context(), services.NamedInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.catalog.UpdateCategory(c.Request.Context(), id, services.NamedInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListSizes(c *gin.Context) {
	out, err := h.catalog.ListSizes(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateSize(c *gin.Context) {
	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.catalog.CreateSize(c.Request.Context(), services.SizeInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateSize(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.catalog.UpdateSize(c.Request.Context(), id, services.SizeInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteSize(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteSize(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTables(c *gin.Context) {
	out, err := h.catalog.ListTables(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.catalog.CreateTable(c.Request.Context(), services.TableInput{
		Number: req.Number,
		Seats:  req.Seats,
		Status: domain.TableStatus(req.Status),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateTable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.catalog.UpdateTable(c.Request.Context(), id, services.TableInput{
		Number: req.Number,
		Seats:  req.Seats,
		Status: domain.TableStatus(req.Status),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteTable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteTable(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
