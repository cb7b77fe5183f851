package food

import (
	"FoodExpiryTracker/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, ownerEmail string) ([]*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
		DeleteFoodItem(ctx context.Context, id string) (int64, error)
		GetNearlyExpiredItems(ctx context.Context, from, to time.Time, limit int) ([]*entities.FoodItem, error)
		GetExpiredItems(ctx context.Context, before time.Time, limit int) ([]*entities.FoodItem, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context, ownerEmail string) ([]*entities.FoodItem, error) {
	foodItems := make([]*entities.FoodItem, 0)

	query := r.db.WithContext(ctx)
	if ownerEmail != "" {
		query = query.Where("owner_email = ?", ownerEmail)
	}

	if err := query.Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("id = ?", id).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{})
	return tx.RowsAffected, tx.Error
}

func (r *foodRepository) GetNearlyExpiredItems(ctx context.Context, from, to time.Time, limit int) ([]*entities.FoodItem, error) {
	foodItems := make([]*entities.FoodItem, 0)

	if err := r.db.WithContext(ctx).
		Where("expiry_date >= ? AND expiry_date <= ?", from, to).
		Order("expiry_date asc").
		Limit(limit).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetExpiredItems(ctx context.Context, before time.Time, limit int) ([]*entities.FoodItem, error) {
	foodItems := make([]*entities.FoodItem, 0)

	if err := r.db.WithContext(ctx).
		Where("expiry_date < ?", before).
		Order("expiry_date desc").
		Limit(limit).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}
