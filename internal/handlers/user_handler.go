package handlers

import (
	"bitewise/internal/models"
	"bitewise/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users and their preferences.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/preference", h.HandleUpdatePreference)
	userRoutes.Get("/:mobile_number", h.HandleGetUserByMobileNumber)
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	MobileNumber string `json:"mobile_number" validate:"required,mobile"`
}

// PreferenceUpdateRequest is the body of PUT /users/preference.
type PreferenceUpdateRequest struct {
	MobileNumber string         `json:"mobile_number" validate:"required"`
	Preference   string         `json:"preference" validate:"required"`
	Details      map[string]any `json:"details"`
}

// HandleGetUsers lists all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserByMobileNumber looks a user up by mobile number.
func (h *UserHandler) HandleGetUserByMobileNumber(c *fiber.Ctx) error {
	user, err := h.service.GetUserByMobileNumber(c.Params("mobile_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// HandleCreateUser registers a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	}
	if err := h.service.CreateUser(user); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// HandleUpdatePreference sets the preference of the user with the given
// mobile number.
func (h *UserHandler) HandleUpdatePreference(c *fiber.Ctx) error {
	var req PreferenceUpdateRequest
	if ok, err := bindAndValidate(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.service.UpdatePreference(req.MobileNumber, models.Preference(req.Preference), req.Details)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}
