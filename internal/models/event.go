package models

import "time"

// RecommendationEvent is published after a recommendation set is stored.
type RecommendationEvent struct {
	EventID          string    `json:"event_id"`
	Type             string    `json:"type"`
	RecommendationID uint      `json:"recommendation_id"`
	UserID           uint      `json:"user_id"`
	MerchantID       string    `json:"merchant_id"`
	PurchasedItemID  string    `json:"purchased_item_id"`
	ItemCount        int       `json:"item_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// RecommendationCreated is the RecommendationEvent type for new sets.
const RecommendationCreated = "recommendation.created"
