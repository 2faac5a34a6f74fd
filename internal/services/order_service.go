package services

import (
	"context"

	"bitewise/internal/clover"
	"bitewise/internal/logging"
	"bitewise/internal/models"
)

// OrderService reads and creates Clover orders for a merchant.
type OrderService struct {
	catalog CatalogClient
}

// NewOrderService creates a new OrderService.
func NewOrderService(catalog CatalogClient) *OrderService {
	return &OrderService{
		catalog: catalog,
	}
}

// ListOrders returns up to limit orders of the merchant.
func (s *OrderService) ListOrders(ctx context.Context, merchant *models.MerchantToken, limit int) ([]clover.Order, error) {
	return s.catalog.ListOrders(ctx, merchant.MerchantID, merchant.AccessToken, limit)
}

// CreateOrder forwards orderData to Clover and returns the created order.
func (s *OrderService) CreateOrder(ctx context.Context, merchant *models.MerchantToken, orderData map[string]any) (clover.Order, error) {
	order, err := s.catalog.CreateOrder(ctx, merchant.MerchantID, merchant.AccessToken, orderData)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("merchant_id", merchant.MerchantID).Str("order_id", order.ID()).Msg("order created")
	return order, nil
}
