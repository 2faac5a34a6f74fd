package handlers

import (
	"bitewise/internal/middleware"
	"bitewise/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler exposes the merchant's Clover catalog.
type CatalogHandler struct {
	service   *services.CatalogService
	merchants *services.MerchantService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService, merchants *services.MerchantService) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		merchants: merchants,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/catalog", middleware.MerchantRequired(h.merchants))
	catalogRoutes.Get("/categories", h.HandleListCategories)
	catalogRoutes.Get("/categories/:name/items", h.HandleListItemsInCategory)
	catalogRoutes.Post("/items", h.HandleCreateItem)

	router.Get("/merchants/:merchant_id/inventory/items", middleware.MerchantFromParam(h.merchants, "merchant_id"), h.HandleListInventory)
}

func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext(), middleware.Merchant(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"elements": categories})
}

func (h *CatalogHandler) HandleListItemsInCategory(c *fiber.Ctx) error {
	items, err := h.service.ListItemsInCategory(c.UserContext(), middleware.Merchant(c), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"elements": items})
}

// HandleCreateItem forwards the request body to Clover as a new item.
func (h *CatalogHandler) HandleCreateItem(c *fiber.Ctx) error {
	var itemData map[string]any
	if err := c.BodyParser(&itemData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
			"error":  err.Error(),
		})
	}

	item, err := h.service.CreateItem(c.UserContext(), middleware.Merchant(c), itemData)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleListInventory lists the inventory items of the merchant in the path.
func (h *CatalogHandler) HandleListInventory(c *fiber.Ctx) error {
	limit, err := queryLimit(c)
	if err != nil {
		return writeError(c, err)
	}
	merchant := middleware.Merchant(c)
	items, err := h.service.ListInventory(c.UserContext(), merchant, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"merchant_id": merchant.MerchantID,
		"inventory":   items,
	})
}
