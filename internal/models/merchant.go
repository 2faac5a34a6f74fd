package models

import "time"

// MerchantToken stores the Clover access token for a merchant.
type MerchantToken struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MerchantID  string    `json:"merchant_id" gorm:"uniqueIndex;type:varchar(64);not null"`
	AccessToken string    `json:"-" gorm:"type:varchar(255);not null"` // never serialized
	TokenType   string    `json:"token_type" gorm:"type:varchar(16);default:bearer"`
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	Email       string    `json:"email" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
