package services_test

import (
	"context"

	"bitewise/internal/clover"
	"bitewise/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByMobileNumber(mobileNumber string) (*models.User, error) {
	args := m.Called(mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockRecommendationStore is a mock implementation of repositories.RecommendationRepository
type MockRecommendationStore struct {
	mock.Mock
}

func (m *MockRecommendationStore) Create(rec *models.Recommendation) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockRecommendationStore) GetByID(id uint) (*models.Recommendation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

// MockMerchantRepository is a mock implementation of repositories.MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) Upsert(token *models.MerchantToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockMerchantRepository) GetByMerchantID(merchantID string) (*models.MerchantToken, error) {
	args := m.Called(merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MerchantToken), args.Error(1)
}

func (m *MockMerchantRepository) Delete(merchantID string) error {
	args := m.Called(merchantID)
	return args.Error(0)
}

func (m *MockMerchantRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCatalogClient is a mock implementation of services.CatalogClient
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) ListCategories(ctx context.Context, merchantID, accessToken string) ([]clover.Category, error) {
	args := m.Called(ctx, merchantID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clover.Category), args.Error(1)
}

func (m *MockCatalogClient) ListItemsInCategory(ctx context.Context, merchantID, accessToken, categoryName string) ([]clover.Item, error) {
	args := m.Called(ctx, merchantID, accessToken, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clover.Item), args.Error(1)
}

func (m *MockCatalogClient) GetItemDetail(ctx context.Context, merchantID, accessToken, itemID string) (clover.Item, error) {
	args := m.Called(ctx, merchantID, accessToken, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(clover.Item), args.Error(1)
}

func (m *MockCatalogClient) CreateItem(ctx context.Context, merchantID, accessToken string, itemData map[string]any) (clover.Item, error) {
	args := m.Called(ctx, merchantID, accessToken, itemData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(clover.Item), args.Error(1)
}

func (m *MockCatalogClient) ListItems(ctx context.Context, merchantID, accessToken string, limit int) ([]clover.Item, error) {
	args := m.Called(ctx, merchantID, accessToken, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clover.Item), args.Error(1)
}

func (m *MockCatalogClient) ListOrders(ctx context.Context, merchantID, accessToken string, limit int) ([]clover.Order, error) {
	args := m.Called(ctx, merchantID, accessToken, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clover.Order), args.Error(1)
}

func (m *MockCatalogClient) CreateOrder(ctx context.Context, merchantID, accessToken string, orderData map[string]any) (clover.Order, error) {
	args := m.Called(ctx, merchantID, accessToken, orderData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(clover.Order), args.Error(1)
}

func (m *MockCatalogClient) GetMerchant(ctx context.Context, merchantID, accessToken string) (*clover.Merchant, error) {
	args := m.Called(ctx, merchantID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clover.Merchant), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event any) error {
	args := m.Called(event)
	return args.Error(0)
}
