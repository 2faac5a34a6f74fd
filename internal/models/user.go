package models

import (
	"time"

	"gorm.io/datatypes"
)

// Preference is the fulfilment mode a user prefers.
type Preference string

const (
	PreferencePickup      Preference = "pickup"
	PreferenceDelivery    Preference = "delivery"
	PreferenceReservation Preference = "reservation"
	PreferenceCatering    Preference = "catering"
	PreferenceEvents      Preference = "events"
)

// Preferences lists every accepted Preference value.
var Preferences = []Preference{
	PreferencePickup,
	PreferenceDelivery,
	PreferenceReservation,
	PreferenceCatering,
	PreferenceEvents,
}

// Valid reports whether p is one of the known preferences.
func (p Preference) Valid() bool {
	for _, known := range Preferences {
		if p == known {
			return true
		}
	}
	return false
}

// User represents an app user, identified by mobile number.
type User struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"type:varchar(100)"`
	Email             string         `json:"email" gorm:"type:varchar(255)"`
	MobileNumber      string         `json:"mobile_number" gorm:"uniqueIndex;type:varchar(15);not null"`
	IsVerified        bool           `json:"is_verified"`
	Preference        *Preference    `json:"preference" gorm:"type:varchar(32)"`
	PreferenceDetails datatypes.JSON `json:"preference_details,omitempty"` // optional payload attached to Preference
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
