package services

import (
	"fmt"

	"bitewise/internal/apperrors"
	"bitewise/internal/models"
	"bitewise/internal/repositories"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// UserService handles user accounts and stored preferences.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser registers a user; the mobile number must be unused.
func (s *UserService) CreateUser(user *models.User) error {
	if existing, err := s.repo.GetByMobileNumber(user.MobileNumber); err == nil && existing != nil {
		return &apperrors.ConflictError{Message: "User already exists"}
	} else if err != nil && !apperrors.IsNotFound(err) {
		return err
	}
	if err := s.repo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByMobileNumber retrieves a user by mobile number.
func (s *UserService) GetUserByMobileNumber(mobileNumber string) (*models.User, error) {
	return s.repo.GetByMobileNumber(mobileNumber)
}

// UpdatePreference sets the preference of the user owning mobileNumber.
// details is an optional structured payload stored alongside it.
func (s *UserService) UpdatePreference(mobileNumber string, preference models.Preference, details map[string]any) (*models.User, error) {
	user, err := s.repo.GetByMobileNumber(mobileNumber)
	if err != nil {
		return nil, err
	}

	if !preference.Valid() {
		return nil, &apperrors.ValidationError{Message: "Invalid preference option"}
	}

	user.Preference = &preference
	user.PreferenceDetails = nil
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, &apperrors.ValidationError{Message: "Invalid preference details"}
		}
		user.PreferenceDetails = datatypes.JSON(raw)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update preference: %w", err)
	}
	return user, nil
}
