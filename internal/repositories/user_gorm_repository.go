package repositories

import (
	"fmt"

	"bitewise/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	return translate("create user", r.db.Create(user).Error, "")
}

// GetAll retrieves all users ordered by ID.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, translate("list users", err, "")
	}
	return users, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(fmt.Sprintf("get user %d", id), err, "User not found")
	}
	return &user, nil
}

// GetByMobileNumber retrieves a user by their mobile number from the database.
func (r *GORMUserRepository) GetByMobileNumber(mobileNumber string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "mobile_number = ?", mobileNumber).Error; err != nil {
		return nil, translate("get user by mobile number", err, "User not found")
	}
	return &user, nil
}

// Update saves every column of an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Model(user).Select("*").Omit("created_at").Updates(user)
	if res.Error != nil {
		return translate("update user", res.Error, "")
	}
	if res.RowsAffected == 0 {
		return translate("update user", gorm.ErrRecordNotFound, "User not found")
	}
	return nil
}
