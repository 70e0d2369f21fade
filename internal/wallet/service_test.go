package wallet

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCreateForUserStartsAtZero(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, "RUB")

	ctx := context.Background()
	userID := uuid.NewString()
	if err := svc.CreateForUser(ctx, userID); err != nil {
		t.Fatalf("create wallet: %v", err)
	}

	w, err := svc.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if w.Balance != 0 {
		t.Fatalf("expected zero balance, got %d", w.Balance)
	}
	if w.Currency != "RUB" {
		t.Fatalf("expected RUB, got %s", w.Currency)
	}
	if w.UserID != userID {
		t.Fatalf("expected owner %s, got %s", userID, w.UserID)
	}
}

func TestCreateForUserRejectsBadID(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "RUB")
	if err := svc.CreateForUser(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed user id")
	}
}

func TestGetByUserMissing(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "RUB")
	if _, err := svc.GetByUser(context.Background(), uuid.NewString()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDefaultCurrency(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, "")

	ctx := context.Background()
	userID := uuid.NewString()
	if err := svc.CreateForUser(ctx, userID); err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	w, err := svc.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if w.Currency != "RUB" {
		t.Fatalf("expected default currency RUB, got %s", w.Currency)
	}
}
