package handlers_test

import (
	"FoodExpiryTracker/entities"
	"FoodExpiryTracker/internal/api/handlers"
	"FoodExpiryTracker/internal/api/routes"
	"FoodExpiryTracker/internal/middleware"
	"FoodExpiryTracker/internal/utils"
	"FoodExpiryTracker/pkg/food"
	"FoodExpiryTracker/pkg/jwt"
	"FoodExpiryTracker/pkg/note"
	"FoodExpiryTracker/pkg/reference"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// In-memory repositories mirroring the store's query contract, so the
// route tests exercise the full middleware/handler/service pipeline.

type memFoodRepo struct {
	items map[string]*entities.FoodItem
}

func (r *memFoodRepo) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	stored := *item
	r.items[item.ID.String()] = &stored
	return nil
}

func (r *memFoodRepo) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *memFoodRepo) GetFoodItems(_ context.Context, ownerEmail string) ([]*entities.FoodItem, error) {
	result := make([]*entities.FoodItem, 0)
	for _, item := range r.items {
		if ownerEmail == "" || item.OwnerEmail == ownerEmail {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *memFoodRepo) UpdateFoodItem(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	item, ok := r.items[id]
	if !ok {
		return 0, nil
	}
	item.Title = fields["title"].(string)
	item.Category = fields["category"].(string)
	item.Quantity = fields["quantity"].(string)
	item.ExpiryDate = fields["expiry_date"].(time.Time)
	return 1, nil
}

func (r *memFoodRepo) DeleteFoodItem(_ context.Context, id string) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *memFoodRepo) GetNearlyExpiredItems(_ context.Context, from, to time.Time, limit int) ([]*entities.FoodItem, error) {
	result := make([]*entities.FoodItem, 0)
	for _, item := range r.items {
		if !item.ExpiryDate.Before(from) && !item.ExpiryDate.After(to) {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ExpiryDate.Before(result[j].ExpiryDate) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *memFoodRepo) GetExpiredItems(_ context.Context, before time.Time, limit int) ([]*entities.FoodItem, error) {
	result := make([]*entities.FoodItem, 0)
	for _, item := range r.items {
		if item.ExpiryDate.Before(before) {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ExpiryDate.After(result[j].ExpiryDate) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type memNoteRepo struct {
	notes map[string]*entities.Note
}

func (r *memNoteRepo) AddNote(_ context.Context, n *entities.Note) error {
	stored := *n
	r.notes[n.ID.String()] = &stored
	return nil
}

func (r *memNoteRepo) GetNoteByID(_ context.Context, id string) (*entities.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *memNoteRepo) GetNotesByFoodID(_ context.Context, foodID string) ([]*entities.Note, error) {
	result := make([]*entities.Note, 0)
	for _, n := range r.notes {
		if n.FoodID == foodID {
			result = append(result, n)
		}
	}
	return result, nil
}

type memReferenceRepo struct {
	tips   []*entities.Tip
	labels []*entities.ExpiryLabel
}

func (r *memReferenceRepo) GetTips(_ context.Context) ([]*entities.Tip, error) {
	return r.tips, nil
}

func (r *memReferenceRepo) GetExpiryLabels(_ context.Context) ([]*entities.ExpiryLabel, error) {
	return r.labels, nil
}

type testEnv struct {
	app      *fiber.App
	jwt      jwt.JWTService
	foodRepo *memFoodRepo
	noteRepo *memNoteRepo
	refRepo  *memReferenceRepo
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()
	utils.InitValidator()

	env := &testEnv{
		app:      fiber.New(),
		jwt:      jwt.NewJWTService("test-secret"),
		foodRepo: &memFoodRepo{items: make(map[string]*entities.FoodItem)},
		noteRepo: &memNoteRepo{notes: make(map[string]*entities.Note)},
		refRepo: &memReferenceRepo{
			tips:   []*entities.Tip{{Title: "First in, first out"}},
			labels: []*entities.ExpiryLabel{{Name: "Fresh"}, {Name: "Expiring Soon"}, {Name: "Expired"}},
		},
	}

	routesConfig := routes.Config{
		App:              env.app,
		FoodHandler:      handlers.NewFoodHandler(food.NewFoodService(env.foodRepo), utils.Validate),
		NoteHandler:      handlers.NewNoteHandler(note.NewNoteService(env.noteRepo), utils.Validate),
		ReferenceHandler: handlers.NewReferenceHandler(reference.NewReferenceService(env.refRepo)),
		Middleware:       middleware.NewMiddleware(),
		JWTService:       env.jwt,
		AllowedOrigins:   []string{"http://localhost:5173"},
	}
	routesConfig.Setup()
	return env
}

func (env *testEnv) request(t *testing.T, method, target string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
