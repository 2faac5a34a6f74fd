package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation is one generated set of items for a user. Rows are
// insert-only; each generation produces a new row.
type Recommendation struct {
	ID              uint                                `json:"id" gorm:"primaryKey"`
	UserID          uint                                `json:"user_id" gorm:"not null;index"`
	User            *User                               `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MobileNumber    string                              `json:"mobile_number" gorm:"type:varchar(15);not null"`
	Recommendations datatypes.JSONSlice[map[string]any] `json:"recommendations" gorm:"not null"`
	CreatedAt       time.Time                           `json:"created_at"`
}
