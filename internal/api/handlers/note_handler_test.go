package handlers_test

import (
	"FoodExpiryTracker/entities"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestAddNoteRequiresCredential(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, "POST", "/notes", map[string]string{
		"text":      "smells fine",
		"foodId":    "food-1",
		"userEmail": "alice@example.com",
		"postedAt":  "2025-01-05T10:00:00Z",
	}, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if len(env.noteRepo.notes) != 0 {
		t.Fatal("unauthorized note was stored")
	}
}

func TestAddNoteMissingFieldInsertsNothing(t *testing.T) {
	env := setupTestApp(t)
	token := env.jwt.GenerateToken("alice@example.com")

	resp := env.request(t, "POST", "/notes", map[string]string{
		"text":      "smells fine",
		"foodId":    "food-1",
		"userEmail": "alice@example.com",
		// postedAt omitted
	}, token)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	resp = env.request(t, "GET", "/notes/food-1", nil, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var notes []entities.Note
	decodeJSON(t, resp, &notes)
	if len(notes) != 0 {
		t.Fatalf("notes after rejected create = %+v", notes)
	}
}

func TestAddNoteReturnsStoredRecord(t *testing.T) {
	env := setupTestApp(t)
	token := env.jwt.GenerateToken("alice@example.com")

	resp := env.request(t, "POST", "/notes", map[string]string{
		"text":      "smells fine",
		"foodId":    "food-1",
		"userEmail": "alice@example.com",
		"postedAt":  "2025-01-05T10:00:00Z",
	}, token)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var created entities.Note
	decodeJSON(t, resp, &created)
	if created.ID == uuid.Nil {
		t.Fatal("created note has no id")
	}
	if created.AuthorEmail != "alice@example.com" {
		t.Fatalf("author = %q", created.AuthorEmail)
	}

	resp = env.request(t, "GET", "/notes/food-1", nil, "")
	var notes []entities.Note
	decodeJSON(t, resp, &notes)
	if len(notes) != 1 || notes[0].ID != created.ID {
		t.Fatalf("notes = %+v", notes)
	}
}

func TestGetTips(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, "GET", "/tips", nil, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var tips []entities.Tip
	decodeJSON(t, resp, &tips)
	if len(tips) != 1 {
		t.Fatalf("tips = %+v", tips)
	}
}

func TestGetExpiryLabels(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, "GET", "/expiryLabel", nil, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var labels []entities.ExpiryLabel
	decodeJSON(t, resp, &labels)
	if len(labels) != 3 {
		t.Fatalf("labels = %+v", labels)
	}
}

func TestLiveness(t *testing.T) {
	env := setupTestApp(t)

	resp := env.request(t, "GET", "/", nil, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Food expiry tracker server running" {
		t.Fatalf("liveness body = %q", body)
	}
}
