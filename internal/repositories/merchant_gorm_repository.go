package repositories

import (
	"bitewise/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMMerchantRepository is a GORM implementation of MerchantRepository.
type GORMMerchantRepository struct {
	db *gorm.DB
}

// NewGORMMerchantRepository creates a new instance of GORMMerchantRepository.
func NewGORMMerchantRepository(db *gorm.DB) *GORMMerchantRepository {
	return &GORMMerchantRepository{
		db: db,
	}
}

// Upsert inserts a credential or refreshes the token and profile of an
// existing merchant.
func (r *GORMMerchantRepository) Upsert(token *models.MerchantToken) error {
	if token.TokenType == "" {
		token.TokenType = "bearer"
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "token_type", "name", "email", "updated_at"}),
	}).Create(token).Error
	return translate("upsert merchant token", err, "")
}

// GetByMerchantID retrieves the credential of a Clover merchant.
func (r *GORMMerchantRepository) GetByMerchantID(merchantID string) (*models.MerchantToken, error) {
	var token models.MerchantToken
	if err := r.db.First(&token, "merchant_id = ?", merchantID).Error; err != nil {
		return nil, translate("get merchant token", err, "Merchant token not found")
	}
	return &token, nil
}

// Delete removes the credential of a merchant.
func (r *GORMMerchantRepository) Delete(merchantID string) error {
	res := r.db.Delete(&models.MerchantToken{}, "merchant_id = ?", merchantID)
	if res.Error != nil {
		return translate("delete merchant token", res.Error, "")
	}
	if res.RowsAffected == 0 {
		return translate("delete merchant token", gorm.ErrRecordNotFound, "Merchant "+merchantID+" not found")
	}
	return nil
}

// Count returns the number of stored merchants.
func (r *GORMMerchantRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.MerchantToken{}).Count(&n).Error; err != nil {
		return 0, translate("count merchants", err, "")
	}
	return n, nil
}
