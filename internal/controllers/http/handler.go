package http

import (
	"errors"
	"net/http"
	"strconv"

	"coffeepos/internal/auth"
	"coffeepos/internal/domain"
	"coffeepos/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Handler struct {
	orders    *services.OrderService
	catalog   *services.CatalogService
	inventory *services.InventoryService
	promo     *services.PromoService
	profiles  *services.ProfileService
	auth      *auth.Service
	rdb       *redis.Client
	log       *zap.Logger
}

func NewHandler(
	orders *services.OrderService,
	catalog *services.CatalogService,
	inventory *services.InventoryService,
	promo *services.PromoService,
	profiles *services.ProfileService,
	authSvc *auth.Service,
	rdb *redis.Client,
	log *zap.Logger,
) *Handler {
	return &Handler{
		orders:    orders,
		catalog:   catalog,
		inventory: inventory,
		promo:     promo,
		profiles:  profiles,
		auth:      authSvc,
		rdb:       rdb,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
	r.POST("/auth/signout", h.SignOut)
	r.POST("/auth/reset", h.ResetPassword)
	r.GET("/auth/me", h.Me)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)
	r.POST("/products/:id/image", h.UploadProductImage)

	r.GET("/categories", h.ListCategories)
	r.POST("/categories", h.CreateCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)

	r.GET("/sizes", h.ListSizes)
	r.POST("/sizes", h.CreateSize)
	r.PUT("/sizes/:id", h.UpdateSize)
	r.DELETE("/sizes/:id", h.DeleteSize)

	r.GET("/tables", h.ListTables)
	r.POST("/tables", h.CreateTable)
	r.PUT("/tables/:id", h.UpdateTable)
	r.DELETE("/tables/:id", h.DeleteTable)

	r.GET("/inventory", h.ListInventory)
	r.GET("/inventory/low", h.ListLowStock)
	r.POST("/inventory", h.CreateInventory)
	r.PUT("/inventory/:id", h.UpdateInventory)
	r.POST("/inventory/:id/adjust", h.AdjustInventory)
	r.DELETE("/inventory/:id", h.DeleteInventory)

	r.GET("/vouchers", h.ListVouchers)
	r.POST("/vouchers", h.CreateVoucher)
	r.PUT("/vouchers/:id", h.UpdateVoucher)
	r.DELETE("/vouchers/:id", h.DeleteVoucher)
	r.GET("/vouchers/redeem/:code", h.RedeemVoucher)

	r.GET("/discounts", h.ListDiscounts)
	r.POST("/discounts", h.CreateDiscount)
	r.PUT("/discounts/:id", h.UpdateDiscount)
	r.DELETE("/discounts/:id", h.DeleteDiscount)

	r.GET("/customers", h.ListCustomers)
	r.POST("/customers", h.CreateCustomer)
	r.PUT("/customers/:id", h.UpdateCustomer)
	r.DELETE("/customers/:id", h.DeleteCustomer)
	r.GET("/customers/:id/points", h.ListCustomerPoints)

	// Staff management is back-office only and sits behind a session.
	staff := r.Group("/staff", h.RequireSession())
	staff.GET("", h.ListStaff)
	staff.POST("", h.CreateStaff)
	staff.PUT("/:id", h.UpdateStaff)
	staff.DELETE("/:id", h.DeleteStaff)

	r.GET("/points", h.ListPoints)
	r.POST("/points", h.AwardPoints)

	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	r.PATCH("/orders/:id/payment", h.UpdateOrderPayment)
	r.POST("/orders/:id/cancel", h.CancelOrder)
	r.DELETE("/orders/:id", h.DeleteOrder)
}

// respondErr maps the error taxonomy onto status codes. Messages cross
// the boundary as plain toast-style text, never structured codes.
func (h *Handler) respondErr(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
