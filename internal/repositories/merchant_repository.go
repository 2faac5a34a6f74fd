package repositories

import "bitewise/internal/models"

// MerchantRepository defines the interface for merchant credential storage.
type MerchantRepository interface {
	Upsert(token *models.MerchantToken) error
	GetByMerchantID(merchantID string) (*models.MerchantToken, error)
	Delete(merchantID string) error
	Count() (int64, error)
}
