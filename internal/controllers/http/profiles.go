package http

import (
	"net/http"

	"coffeepos/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCustomers(c *gin.Context) {
	out, err := h.profiles.ListCustomers(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.profiles.CreateCustomer(c.Request.Context(), services.ProfileInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.profiles.UpdateCustomer(c.Request.Context(), id, services.ProfileInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.profiles.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCustomerPoints(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	entries, err := h.profiles.ListPointsByProfile(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	balance, err := h.profiles.PointsBalance(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance, "entries": entries})
}

func (h *Handler) ListStaff(c *gin.Context) {
	out, err := h.profiles.ListStaff(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.profiles.CreateStaff(c.Request.Context(), services.ProfileInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.profiles.UpdateStaff(c.Request.Context(), id, services.ProfileInput(req))
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.profiles.DeleteStaff(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListPoints(c *gin.Context) {
	out, err := h.profiles.ListPoints(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) AwardPoints(c *gin.Context) {
	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.profiles.AwardPoints(c.Request.Context(), req.ProfileID, req.Points, req.OrderID)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
