package services

import (
	"context"
	"fmt"
	"time"

	"bitewise/internal/apperrors"
	"bitewise/internal/clover"
	"bitewise/internal/logging"
	"bitewise/internal/models"
	"bitewise/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationResult is a filtered candidate list ready for persistence.
type RecommendationResult struct {
	UserID       uint
	MobileNumber string
	Items        []clover.Item
}

// RecommendationService turns "user bought item X" into a stored list of
// other items from the same category.
type RecommendationService struct {
	userRepo  repositories.UserRepository
	recRepo   repositories.RecommendationRepository
	catalog   CatalogClient
	publisher EventPublisher
}

// NewRecommendationService creates a new RecommendationService. publisher may be nil.
func NewRecommendationService(userRepo repositories.UserRepository, recRepo repositories.RecommendationRepository, catalog CatalogClient, publisher EventPublisher) *RecommendationService {
	return &RecommendationService{
		userRepo:  userRepo,
		recRepo:   recRepo,
		catalog:   catalog,
		publisher: publisher,
	}
}

// Build resolves the purchased item's first category and returns the other
// items of that category.
func (s *RecommendationService) Build(ctx context.Context, userID uint, itemID string, merchant *models.MerchantToken) (*RecommendationResult, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.GetItemDetail(ctx, merchant.MerchantID, merchant.AccessToken, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}

	categories := item.Categories()
	if len(categories) == 0 {
		return nil, apperrors.NotFound("Item has no category, cannot generate recommendations.")
	}
	categoryName := categories[0].Name
	if categoryName == "" {
		return nil, apperrors.NotFound("Category name not found.")
	}

	items, err := s.catalog.ListItemsInCategory(ctx, merchant.MerchantID, merchant.AccessToken, categoryName)
	if err != nil {
		return nil, fmt.Errorf("list items in category %s: %w", categoryName, err)
	}

	return &RecommendationResult{
		UserID:       user.ID,
		MobileNumber: user.MobileNumber,
		Items:        excludeItem(items, itemID),
	}, nil
}

// BuildFixedCategory skips the item lookup and recommends from categoryName.
// An empty result is a not-found condition.
func (s *RecommendationService) BuildFixedCategory(ctx context.Context, userID uint, itemID, categoryName string, merchant *models.MerchantToken) (*RecommendationResult, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	items, err := s.catalog.ListItemsInCategory(ctx, merchant.MerchantID, merchant.AccessToken, categoryName)
	if err != nil {
		return nil, fmt.Errorf("list items in category %s: %w", categoryName, err)
	}

	filtered := excludeItem(items, itemID)
	if len(filtered) == 0 {
		return nil, apperrors.NotFound("No other items found to recommend")
	}

	return &RecommendationResult{
		UserID:       user.ID,
		MobileNumber: user.MobileNumber,
		Items:        filtered,
	}, nil
}

// Generate builds and stores a recommendation set for the purchased item.
func (s *RecommendationService) Generate(ctx context.Context, userID uint, itemID string, merchant *models.MerchantToken) (*models.Recommendation, error) {
	result, err := s.Build(ctx, userID, itemID, merchant)
	if err != nil {
		return nil, err
	}
	return s.save(result, itemID, merchant)
}

// GenerateFixedCategory builds from a caller-supplied category and stores the set.
func (s *RecommendationService) GenerateFixedCategory(ctx context.Context, userID uint, itemID, categoryName string, merchant *models.MerchantToken) (*models.Recommendation, error) {
	result, err := s.BuildFixedCategory(ctx, userID, itemID, categoryName, merchant)
	if err != nil {
		return nil, err
	}
	return s.save(result, itemID, merchant)
}

// GetRecommendationByID retrieves a stored recommendation set.
func (s *RecommendationService) GetRecommendationByID(id uint) (*models.Recommendation, error) {
	return s.recRepo.GetByID(id)
}

func (s *RecommendationService) save(result *RecommendationResult, itemID string, merchant *models.MerchantToken) (*models.Recommendation, error) {
	items := make(datatypes.JSONSlice[map[string]any], 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, map[string]any(item))
	}

	rec := &models.Recommendation{
		UserID:          result.UserID,
		MobileNumber:    result.MobileNumber,
		Recommendations: items,
	}
	if err := s.recRepo.Create(rec); err != nil {
		return nil, err
	}

	logging.Info().
		Uint("recommendation_id", rec.ID).
		Uint("user_id", rec.UserID).
		Str("merchant_id", merchant.MerchantID).
		Int("items", len(items)).
		Msg("recommendation stored")

	s.publishCreated(rec, itemID, merchant.MerchantID)
	return rec, nil
}

// publishCreated is best effort; the stored row is the source of truth.
func (s *RecommendationService) publishCreated(rec *models.Recommendation, itemID, merchantID string) {
	if s.publisher == nil {
		return
	}
	event := models.RecommendationEvent{
		EventID:          uuid.New().String(),
		Type:             models.RecommendationCreated,
		RecommendationID: rec.ID,
		UserID:           rec.UserID,
		MerchantID:       merchantID,
		PurchasedItemID:  itemID,
		ItemCount:        len(rec.Recommendations),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.publisher.Publish(event); err != nil {
		logging.Warn().Err(err).Uint("recommendation_id", rec.ID).Msg("failed to publish recommendation event")
	}
}

func excludeItem(items []clover.Item, itemID string) []clover.Item {
	out := make([]clover.Item, 0, len(items))
	for _, item := range items {
		if item.ID() != itemID {
			out = append(out, item)
		}
	}
	return out
}
