package handlers

import (
	"fmt"

	"bitewise/internal/apperrors"
	"bitewise/internal/middleware"
	"bitewise/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MerchantHandler handles HTTP requests for merchant credentials.
type MerchantHandler struct {
	service  *services.MerchantService
	validate *validator.Validate
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(service *services.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the merchant routes with the Fiber app.
func (h *MerchantHandler) RegisterRoutes(router fiber.Router) {
	merchantRoutes := router.Group("/merchants")
	merchantRoutes.Post("/", h.HandleAddMerchant)
	merchantRoutes.Get("/:merchant_id", middleware.MerchantFromParam(h.service, "merchant_id"), h.HandleGetMerchantDetails)
	merchantRoutes.Get("/:merchant_id/token", h.HandleGetMerchantToken)
	merchantRoutes.Delete("/:merchant_id", h.HandleRemoveMerchant)

	router.Get("/test-connection", h.HandleTestConnection)
}

// AddMerchantRequest is the body of POST /merchants.
type AddMerchantRequest struct {
	MerchantID  string `json:"merchant_id" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// HandleAddMerchant verifies and stores a merchant access token.
func (h *MerchantHandler) HandleAddMerchant(c *fiber.Ctx) error {
	var req AddMerchantRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	token, total, err := h.service.AddMerchant(c.UserContext(), req.MerchantID, req.AccessToken)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":         true,
		"message":         fmt.Sprintf("Merchant %s added successfully", token.MerchantID),
		"merchant_info":   token,
		"total_merchants": total,
	})
}

// HandleGetMerchantToken reports whether a token is stored for a merchant.
func (h *MerchantHandler) HandleGetMerchantToken(c *fiber.Ctx) error {
	merchantID := c.Params("merchant_id")
	if _, err := h.service.GetMerchantToken(merchantID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"merchant_id": merchantID,
		"has_token":   true,
	})
}

// HandleRemoveMerchant deletes a merchant credential.
func (h *MerchantHandler) HandleRemoveMerchant(c *fiber.Ctx) error {
	merchantID := c.Params("merchant_id")
	remaining, err := h.service.RemoveMerchant(merchantID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":             true,
		"message":             fmt.Sprintf("Merchant %s removed successfully", merchantID),
		"remaining_merchants": remaining,
	})
}

// HandleGetMerchantDetails returns the live Clover record of a stored merchant.
func (h *MerchantHandler) HandleGetMerchantDetails(c *fiber.Ctx) error {
	merchant := middleware.Merchant(c)
	details, err := h.service.GetMerchantDetails(c.UserContext(), merchant)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"merchant_id":      merchant.MerchantID,
		"merchant_details": details,
	})
}

// HandleTestConnection checks the stored credential of the requested (or
// default) merchant against Clover. Failures are reported in the body with
// status 200.
func (h *MerchantHandler) HandleTestConnection(c *fiber.Ctx) error {
	merchant, err := h.service.ResolveMerchant(c.Get(middleware.MerchantHeader))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Clover credentials not configured",
			"error":   apperrors.Detail(err),
		})
	}

	if _, err := h.service.GetMerchantDetails(c.UserContext(), merchant); err != nil {
		return c.JSON(fiber.Map{
			"success":     false,
			"message":     "Clover connection failed",
			"merchant_id": merchant.MerchantID,
			"error":       apperrors.Detail(err),
			"status_code": apperrors.Status(err),
		})
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Clover connection working",
		"merchant_id":  merchant.MerchantID,
		"token_status": "Valid",
	})
}
