package middleware

import (
	"bitewise/internal/apperrors"
	"bitewise/internal/logging"
	"bitewise/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MerchantHeader names the merchant whose stored credential a request uses.
const MerchantHeader = "X-Merchant-ID"

const merchantKey = "merchant"

// MerchantResolver looks up a stored merchant credential. An empty
// merchantID selects the configured default.
type MerchantResolver interface {
	ResolveMerchant(merchantID string) (*models.MerchantToken, error)
}

// MerchantRequired is a Fiber middleware that resolves the merchant credential
// named by MerchantHeader and stores it in the context.
func MerchantRequired(resolver MerchantResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return resolve(c, resolver, c.Get(MerchantHeader))
	}
}

// MerchantFromParam is like MerchantRequired but takes the merchant ID from
// the named path parameter.
func MerchantFromParam(resolver MerchantResolver, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return resolve(c, resolver, c.Params(param))
	}
}

func resolve(c *fiber.Ctx, resolver MerchantResolver, merchantID string) error {
	merchant, err := resolver.ResolveMerchant(merchantID)
	if err != nil {
		logging.Debug().Err(err).Str("path", c.Path()).Msg("merchant resolution failed")
		return c.Status(apperrors.Status(err)).JSON(fiber.Map{
			"detail": apperrors.Detail(err),
		})
	}

	c.Locals(merchantKey, merchant)
	return c.Next()
}

// Merchant returns the credential stored by MerchantRequired, or nil.
func Merchant(c *fiber.Ctx) *models.MerchantToken {
	merchant, _ := c.Locals(merchantKey).(*models.MerchantToken)
	return merchant
}
