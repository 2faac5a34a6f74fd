package handlers

import (
	"bitewise/internal/middleware"
	"bitewise/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for Clover orders.
type OrderHandler struct {
	service   *services.OrderService
	merchants *services.MerchantService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, merchants *services.MerchantService) *OrderHandler {
	return &OrderHandler{
		service:   service,
		merchants: merchants,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders", middleware.MerchantRequired(h.merchants))
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)

	router.Get("/merchants/:merchant_id/orders", middleware.MerchantFromParam(h.merchants, "merchant_id"), h.HandleGetMerchantOrders)
}

// HandleGetOrders lists orders of the header-selected (or default) merchant.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return writeError(c, err)
	}
	orders, err := h.service.ListOrders(c.UserContext(), middleware.Merchant(c), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

// HandleGetMerchantOrders lists orders of the merchant named in the path.
func (h *OrderHandler) HandleGetMerchantOrders(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return writeError(c, err)
	}
	merchant := middleware.Merchant(c)
	orders, err := h.service.ListOrders(c.UserContext(), merchant, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"merchant_id": merchant.MerchantID,
		"orders":      orders,
	})
}

// HandleCreateOrder forwards the request body to Clover as a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var orderData map[string]any
	if err := c.BodyParser(&orderData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
			"error":  err.Error(),
		})
	}

	order, err := h.service.CreateOrder(c.UserContext(), middleware.Merchant(c), orderData)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}
