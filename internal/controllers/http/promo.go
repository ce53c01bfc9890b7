package http

import (
	"net/http"

	"coffeepos/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInventory(c *gin.Context) {
	out, err := h.inventory.List(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListLowStock(c *gin.Context) {
	out, err := h.inventory.ListLowStock(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateInventory(c *gin.Context) {
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.inventory.Create(c.Request.Context(), services.InventoryInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.inventory.Update(c.Request.Context(), id, services.InventoryInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) AdjustInventory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.inventory.Adjust(c.Request.Context(), id, req.Delta)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteInventory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.inventory.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListVouchers(c *gin.Context) {
	out, err := h.promo.ListVouchers(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateVoucher(c *gin.Context) {
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.promo.CreateVoucher(c.Request.Context(), services.VoucherInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.promo.UpdateVoucher(c.Request.Context(), id, services.VoucherInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.promo.DeleteVoucher(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RedeemVoucher(c *gin.Context) {
	out, err := h.promo.RedeemVoucher(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListDiscounts(c *gin.Context) {
	out, err := h.promo.ListDiscounts(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateDiscount(c *gin.Context) {
	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.promo.CreateDiscount(c.Request.Context(), services.DiscountInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateDiscount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.promo.UpdateDiscount(c.Request.Context(), id, services.DiscountInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteDiscount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.promo.DeleteDiscount(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
