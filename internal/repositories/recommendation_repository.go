package repositories

import "bitewise/internal/models"

// RecommendationRepository persists generated recommendation sets. There is
// no update operation; every Create inserts a new row.
type RecommendationRepository interface {
	Create(rec *models.Recommendation) error
	GetByID(id uint) (*models.Recommendation, error)
}
