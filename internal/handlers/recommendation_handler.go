package handlers

import (
	"bitewise/internal/apperrors"
	"bitewise/internal/middleware"
	"bitewise/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler handles HTTP requests for recommendations.
type RecommendationHandler struct {
	service        *services.RecommendationService
	merchants      *services.MerchantService
	coffeeCategory string
}

// NewRecommendationHandler creates a new RecommendationHandler.
// coffeeCategory is the category used by the coffee recommendation route.
func NewRecommendationHandler(service *services.RecommendationService, merchants *services.MerchantService, coffeeCategory string) *RecommendationHandler {
	return &RecommendationHandler{
		service:        service,
		merchants:      merchants,
		coffeeCategory: coffeeCategory,
	}
}

// RegisterRoutes registers the recommendation routes with the Fiber app.
func (h *RecommendationHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/recommendations")
	withMerchant := middleware.MerchantRequired(h.merchants)
	// Registered before /:item_id/:user_id, which would otherwise match it.
	routes.Post("/coffee/:user_id", withMerchant, h.HandleCreateCoffeeRecommendations)
	routes.Post("/:item_id/:user_id", withMerchant, h.HandleCreateRecommendations)
	routes.Get("/:id", h.HandleGetRecommendation)
}

// HandleCreateRecommendations generates and stores recommendations for a
// user based on a purchased item.
func (h *RecommendationHandler) HandleCreateRecommendations(c *fiber.Ctx) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	itemID := c.Params("item_id")

	rec, err := h.service.Generate(c.UserContext(), userID, itemID, middleware.Merchant(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleCreateCoffeeRecommendations recommends from the coffee category. The
// purchased item is passed as the item_id query parameter.
func (h *RecommendationHandler) HandleCreateCoffeeRecommendations(c *fiber.Ctx) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	itemID := c.Query("item_id")
	if itemID == "" {
		return writeError(c, &apperrors.ValidationError{Message: "item_id query parameter is required"})
	}

	rec, err := h.service.GenerateFixedCategory(c.UserContext(), userID, itemID, h.coffeeCategory, middleware.Merchant(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleGetRecommendation returns a stored recommendation set by ID.
func (h *RecommendationHandler) HandleGetRecommendation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	rec, err := h.service.GetRecommendationByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rec)
}
