package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"bitewise/internal/apperrors"
	"bitewise/internal/logging"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// newValidator returns a validator with the "mobile" tag registered.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return v
}

// writeError maps err onto the response status and a {"detail": ...} body.
func writeError(c *fiber.Ctx, err error) error {
	status := apperrors.Status(err)
	if status >= fiber.StatusInternalServerError {
		logging.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")
	} else {
		logging.Debug().Err(err).Str("path", c.Path()).Int("status", status).Msg("request rejected")
	}
	return c.Status(status).JSON(fiber.Map{
		"detail": apperrors.Detail(err),
	})
}

// bindAndValidate parses the body into out and runs struct validation.
// It writes the 400 response itself and returns false on failure.
func bindAndValidate(c *fiber.Ctx, v *validator.Validate, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
			"error":  err.Error(),
		})
	}
	if err := v.Struct(out); err != nil {
		errorMessages := make(map[string]string)
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Validation failed",
			"errors": errorMessages,
		})
	}
	return true, nil
}

// paramID parses a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &apperrors.ValidationError{Message: fmt.Sprintf("Invalid %s: %q", name, raw)}
	}
	return uint(id), nil
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// queryLimit reads the optional limit query parameter.
func queryLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, &apperrors.ValidationError{Message: fmt.Sprintf("limit must be between 1 and %d", maxLimit)}
	}
	return limit, nil
}
