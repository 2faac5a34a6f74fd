package services

import (
	"context"
	"fmt"

	"bitewise/internal/apperrors"
	"bitewise/internal/clover"
	"bitewise/internal/logging"
	"bitewise/internal/models"
	"bitewise/internal/repositories"
)

// MerchantService manages persisted Clover merchant credentials.
type MerchantService struct {
	repo              repositories.MerchantRepository
	catalog           CatalogClient
	defaultMerchantID string
}

// NewMerchantService creates a new MerchantService. defaultMerchantID is used
// by ResolveMerchant when a request names no merchant.
func NewMerchantService(repo repositories.MerchantRepository, catalog CatalogClient, defaultMerchantID string) *MerchantService {
	return &MerchantService{
		repo:              repo,
		catalog:           catalog,
		defaultMerchantID: defaultMerchantID,
	}
}

// AddMerchant verifies accessToken against Clover and stores the credential.
// It returns the stored record and the total number of merchants.
func (s *MerchantService) AddMerchant(ctx context.Context, merchantID, accessToken string) (*models.MerchantToken, int64, error) {
	merchant, err := s.catalog.GetMerchant(ctx, merchantID, accessToken)
	if err != nil {
		logging.Warn().Err(err).Str("merchant_id", merchantID).Msg("merchant token verification failed")
		return nil, 0, &apperrors.ValidationError{
			Message: fmt.Sprintf("Invalid token for merchant %s: %s", merchantID, apperrors.Detail(err)),
		}
	}

	token := &models.MerchantToken{
		MerchantID:  merchantID,
		AccessToken: accessToken,
		TokenType:   "bearer",
		Name:        merchant.Name,
		Email:       merchant.Email,
	}
	if err := s.repo.Upsert(token); err != nil {
		return nil, 0, fmt.Errorf("failed to store merchant %s: %w", merchantID, err)
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}
	return token, total, nil
}

// GetMerchantToken returns the stored credential of merchantID.
func (s *MerchantService) GetMerchantToken(merchantID string) (*models.MerchantToken, error) {
	return s.repo.GetByMerchantID(merchantID)
}

// GetMerchantDetails fetches the live Clover merchant record using the stored
// credential.
func (s *MerchantService) GetMerchantDetails(ctx context.Context, merchant *models.MerchantToken) (*clover.Merchant, error) {
	return s.catalog.GetMerchant(ctx, merchant.MerchantID, merchant.AccessToken)
}

// ResolveMerchant returns the credential for merchantID, falling back to the
// configured default merchant when merchantID is empty.
func (s *MerchantService) ResolveMerchant(merchantID string) (*models.MerchantToken, error) {
	if merchantID == "" {
		merchantID = s.defaultMerchantID
	}
	if merchantID == "" {
		return nil, &apperrors.ValidationError{Message: "Merchant ID is required"}
	}
	return s.repo.GetByMerchantID(merchantID)
}

// RemoveMerchant deletes a credential and returns how many remain.
func (s *MerchantService) RemoveMerchant(merchantID string) (int64, error) {
	if err := s.repo.Delete(merchantID); err != nil {
		return 0, err
	}
	return s.repo.Count()
}
