package services

import (
	"context"

	"bitewise/internal/clover"
)

// CatalogClient is the subset of the Clover client the services depend on.
type CatalogClient interface {
	ListCategories(ctx context.Context, merchantID, accessToken string) ([]clover.Category, error)
	ListItemsInCategory(ctx context.Context, merchantID, accessToken, categoryName string) ([]clover.Item, error)
	GetItemDetail(ctx context.Context, merchantID, accessToken, itemID string) (clover.Item, error)
	CreateItem(ctx context.Context, merchantID, accessToken string, itemData map[string]any) (clover.Item, error)
	ListItems(ctx context.Context, merchantID, accessToken string, limit int) ([]clover.Item, error)
	ListOrders(ctx context.Context, merchantID, accessToken string, limit int) ([]clover.Order, error)
	CreateOrder(ctx context.Context, merchantID, accessToken string, orderData map[string]any) (clover.Order, error)
	GetMerchant(ctx context.Context, merchantID, accessToken string) (*clover.Merchant, error)
}

// EventPublisher publishes domain events. A nil EventPublisher disables
// publishing.
type EventPublisher interface {
	Publish(event any) error
}
