package food

import (
	"FoodExpiryTracker/domain"
	"FoodExpiryTracker/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Window and cap for the two expiry views. The client renders at
	// most six cards per view.
	nearlyExpiredWindow = 5 * 24 * time.Hour
	expiryQueryLimit    = 6
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, ownerEmail string) ([]*entities.FoodItem, error)
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error
		DeleteFoodItem(ctx context.Context, id string) (int64, error)
		GetNearlyExpiredItems(ctx context.Context) ([]*entities.FoodItem, error)
		GetExpiredItems(ctx context.Context) ([]*entities.FoodItem, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

// parseDate normalizes a caller-supplied date into a canonical timestamp.
// Date-only values become midnight UTC so range queries and sorting
// compare consistently.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (*entities.FoodItem, error) {
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}

	addedDate, err := parseDate(req.AddedDate)
	if err != nil {
		return nil, domain.ErrInvalidAddedDate
	}

	foodItem := &entities.FoodItem{
		ID:         uuid.New(),
		Title:      req.Title,
		Category:   req.Category,
		Quantity:   req.Quantity,
		ExpiryDate: expiryDate,
		AddedDate:  addedDate,
		OwnerEmail: req.OwnerEmail,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return nil, err
	}
	return foodItem, nil
}

func (s *foodService) GetFoodItems(ctx context.Context, ownerEmail string) ([]*entities.FoodItem, error) {
	return s.foodRepository.GetFoodItems(ctx, ownerEmail)
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidFoodItemID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	return foodItem, nil
}

// UpdateFoodItem replaces the mutable attributes of the matching record.
// OwnerEmail and AddedDate are set once at creation and never written here.
func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error {
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return domain.ErrInvalidExpiryDate
	}

	rows, err := s.foodRepository.UpdateFoodItem(ctx, id, map[string]interface{}{
		"title":       req.Title,
		"category":    req.Category,
		"quantity":    req.Quantity,
		"expiry_date": expiryDate,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFoodItemNotFound
	}
	return nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string) (int64, error) {
	rows, err := s.foodRepository.DeleteFoodItem(ctx, id)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, domain.ErrFoodItemNotFound
	}
	return rows, nil
}

func (s *foodService) GetNearlyExpiredItems(ctx context.Context) ([]*entities.FoodItem, error) {
	now := time.Now()
	return s.foodRepository.GetNearlyExpiredItems(ctx, now, now.Add(nearlyExpiredWindow), expiryQueryLimit)
}

func (s *foodService) GetExpiredItems(ctx context.Context) ([]*entities.FoodItem, error) {
	return s.foodRepository.GetExpiredItems(ctx, time.Now(), expiryQueryLimit)
}
