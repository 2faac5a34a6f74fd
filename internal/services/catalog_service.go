package services

import (
	"context"

	"bitewise/internal/clover"
	"bitewise/internal/models"
)

// CatalogService exposes the merchant catalog using stored credentials.
type CatalogService struct {
	catalog CatalogClient
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalog CatalogClient) *CatalogService {
	return &CatalogService{
		catalog: catalog,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context, merchant *models.MerchantToken) ([]clover.Category, error) {
	return s.catalog.ListCategories(ctx, merchant.MerchantID, merchant.AccessToken)
}

func (s *CatalogService) ListItemsInCategory(ctx context.Context, merchant *models.MerchantToken, categoryName string) ([]clover.Item, error) {
	return s.catalog.ListItemsInCategory(ctx, merchant.MerchantID, merchant.AccessToken, categoryName)
}

func (s *CatalogService) CreateItem(ctx context.Context, merchant *models.MerchantToken, itemData map[string]any) (clover.Item, error) {
	return s.catalog.CreateItem(ctx, merchant.MerchantID, merchant.AccessToken, itemData)
}

// ListInventory returns up to limit inventory items of the merchant.
func (s *CatalogService) ListInventory(ctx context.Context, merchant *models.MerchantToken, limit int) ([]clover.Item, error) {
	return s.catalog.ListItems(ctx, merchant.MerchantID, merchant.AccessToken, limit)
}
