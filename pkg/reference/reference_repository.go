package reference

import (
	"FoodExpiryTracker/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// ReferenceRepository serves the read-only tip and expiry-label
	// collections. Rows are seeded by migration and never written here.
	ReferenceRepository interface {
		GetTips(ctx context.Context) ([]*entities.Tip, error)
		GetExpiryLabels(ctx context.Context) ([]*entities.ExpiryLabel, error)
	}

	referenceRepository struct {
		db *gorm.DB
	}
)

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) GetTips(ctx context.Context) ([]*entities.Tip, error) {
	tips := make([]*entities.Tip, 0)
	if err := r.db.WithContext(ctx).Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *referenceRepository) GetExpiryLabels(ctx context.Context) ([]*entities.ExpiryLabel, error) {
	labels := make([]*entities.ExpiryLabel, 0)
	if err := r.db.WithContext(ctx).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}
