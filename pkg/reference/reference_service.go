package reference

import (
	"FoodExpiryTracker/entities"
	"context"
)

type (
	ReferenceService interface {
		GetTips(ctx context.Context) ([]*entities.Tip, error)
		GetExpiryLabels(ctx context.Context) ([]*entities.ExpiryLabel, error)
	}

	referenceService struct {
		referenceRepository ReferenceRepository
	}
)

func NewReferenceService(referenceRepository ReferenceRepository) ReferenceService {
	return &referenceService{
		referenceRepository: referenceRepository,
	}
}

func (s *referenceService) GetTips(ctx context.Context) ([]*entities.Tip, error) {
	return s.referenceRepository.GetTips(ctx)
}

func (s *referenceService) GetExpiryLabels(ctx context.Context) ([]*entities.ExpiryLabel, error) {
	return s.referenceRepository.GetExpiryLabels(ctx)
}
