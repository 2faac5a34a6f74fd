package repositories

import "bitewise/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByMobileNumber(mobileNumber string) (*models.User, error)
	Update(user *models.User) error
}
