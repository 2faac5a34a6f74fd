package services_test

import (
	"errors"
	"testing"

	"bitewise/internal/apperrors"
	"bitewise/internal/models"
	"bitewise/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	user := &models.User{Name: "Asha", MobileNumber: "9876543210"}

	// Test successful creation
	mockRepo.On("GetByMobileNumber", "9876543210").Return(nil, apperrors.NotFound("User not found")).Once()
	mockRepo.On("Create", user).Return(nil).Once()
	assert.NoError(t, service.CreateUser(user))
	mockRepo.AssertExpectations(t)

	// Test mobile number already registered
	mockRepo.On("GetByMobileNumber", "9876543210").Return(&models.User{ID: 1}, nil).Once()
	err := service.CreateUser(user)
	var conflict *apperrors.ConflictError
	assert.True(t, errors.As(err, &conflict))
	mockRepo.AssertExpectations(t)

	// Test lookup failure is not mistaken for a free mobile number
	mockRepo.On("GetByMobileNumber", "9876543210").Return(nil, &apperrors.StorageError{Op: "get", Err: errors.New("down")}).Once()
	err = service.CreateUser(user)
	assert.Equal(t, 500, apperrors.Status(err))
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdatePreference(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	user := &models.User{ID: 7, MobileNumber: "9876543210"}
	mockRepo.On("GetByMobileNumber", "9876543210").Return(user, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 7 && u.Preference != nil && *u.Preference == models.PreferencePickup
	})).Return(nil).Once()

	updated, err := service.UpdatePreference("9876543210", models.PreferencePickup, map[string]any{"store": "downtown"})
	require.NoError(t, err)
	assert.Equal(t, models.PreferencePickup, *updated.Preference)
	assert.JSONEq(t, `{"store":"downtown"}`, string(updated.PreferenceDetails))
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdatePreference_InvalidOption(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByMobileNumber", "9876543210").Return(&models.User{ID: 7}, nil).Once()

	_, err := service.UpdatePreference("9876543210", models.Preference("takeaway"), nil)
	assert.Equal(t, 400, apperrors.Status(err))
	assert.Equal(t, "Invalid preference option", err.Error())
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserService_UpdatePreference_UserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByMobileNumber", "9000000000").Return(nil, apperrors.NotFound("User not found")).Once()

	_, err := service.UpdatePreference("9000000000", models.PreferenceDelivery, nil)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPreference_Valid(t *testing.T) {
	for _, p := range models.Preferences {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, models.Preference("").Valid())
	assert.False(t, models.Preference("Pickup").Valid())
}
