package repositories

import (
	"fmt"

	"bitewise/internal/models"

	"gorm.io/gorm"
)

// GORMRecommendationRepository is a GORM implementation of RecommendationRepository.
type GORMRecommendationRepository struct {
	db *gorm.DB
}

// NewGORMRecommendationRepository creates a new instance of GORMRecommendationRepository.
func NewGORMRecommendationRepository(db *gorm.DB) *GORMRecommendationRepository {
	return &GORMRecommendationRepository{
		db: db,
	}
}

// Create inserts rec inside a transaction; on failure the write is rolled
// back and a StorageError is returned.
func (r *GORMRecommendationRepository) Create(rec *models.Recommendation) error {
	rec.ID = 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User").Create(rec).Error
	})
	if err != nil {
		rec.ID = 0
		return translate("create recommendation", err, "")
	}
	return nil
}

// GetByID retrieves a recommendation by its primary key.
func (r *GORMRecommendationRepository) GetByID(id uint) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(fmt.Sprintf("get recommendation %d", id), err, "Recommendation not found")
	}
	return &rec, nil
}
