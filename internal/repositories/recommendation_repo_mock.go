package repositories

import (
	"sync"
	"time"

	"bitewise/internal/apperrors"
	"bitewise/internal/models"
)

// MockRecommendationRepository is an in-memory implementation of
// RecommendationRepository with auto-incrementing IDs.
type MockRecommendationRepository struct {
	recs   map[uint]models.Recommendation
	nextID uint
	mu     sync.RWMutex
}

// NewMockRecommendationRepository creates a new instance of MockRecommendationRepository.
func NewMockRecommendationRepository() *MockRecommendationRepository {
	return &MockRecommendationRepository{
		recs:   make(map[uint]models.Recommendation),
		nextID: 1,
	}
}

// Create stores a copy of rec under a fresh ID.
func (r *MockRecommendationRepository) Create(rec *models.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	rec.CreatedAt = time.Now()
	r.recs[rec.ID] = *rec
	return nil
}

// GetByID returns a recommendation by its ID.
func (r *MockRecommendationRepository) GetByID(id uint) (*models.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recs[id]
	if !ok {
		return nil, apperrors.NotFound("Recommendation not found")
	}
	return &rec, nil
}

// Len returns the number of stored recommendations.
func (r *MockRecommendationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recs)
}
