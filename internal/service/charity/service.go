// Package charity resolves charity directory ids to display metadata
// through the external directory provider.
package charity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buy4good/backend/internal/domain"
	"github.com/buy4good/backend/internal/provider"
)

type directoryProvider interface {
	FetchCharity(ctx context.Context, charityID string) (*provider.CharityResult, error)
}

// Service implements charity directory lookups.
type Service struct {
	directory directoryProvider
	log       *slog.Logger
}

// NewService creates a new Charity service.
func NewService(log *slog.Logger, directory directoryProvider) *Service {
	return &Service{
		directory: directory,
		log:       log.With("service", "charity"),
	}
}

// GetCharity returns the directory metadata for a charity id.
// An unknown id maps to domain.ErrNotFound.
func (s *Service) GetCharity(ctx context.Context, charityID string) (*provider.CharityResult, error) {
	if charityID == "" {
		return nil, domain.NewValidationError("charity_id", "required")
	}

	result, err := s.directory.FetchCharity(ctx, charityID)
	if err != nil {
		return nil, fmt.Errorf("fetch charity: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("charity %s: %w", charityID, domain.ErrNotFound)
	}

	return result, nil
}
