package product

import (
	"context"
	"testing"

	"github.com/lumina-store/lumina/internal/apperr"
)

func boolPtr(b bool) *bool { return &b }

func TestPublicListingHidesInactive(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	visible, err := svc.Create(ctx, Input{Title: "Visible", Price: 1500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	hidden, err := svc.Create(ctx, Input{Title: "Hidden", Price: 900, IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listing, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing) != 1 || listing[0].ID != visible.ID {
		t.Fatalf("expected only the visible product, got %v", listing)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both products in the admin listing, got %d", len(all))
	}

	if _, err := svc.Get(ctx, hidden.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected hidden product to read as absent, got %v", err)
	}
	got, err := svc.Get(ctx, visible.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Visible" {
		t.Fatalf("expected Visible, got %s", got.Title)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	if _, err := svc.Create(context.Background(), Input{}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	_, err := svc.Update(context.Background(), "11111111-1111-1111-1111-111111111111", Input{Title: "X"})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRewritesFields(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Title: "Before", Price: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.Update(ctx, created.ID, Input{Title: "After", Price: 200, IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	// The response carries the stored row, not a half-built one: creation
	// time survives and both timestamps are stamped.
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected CreatedAt %v to survive update, got %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be stamped on update")
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 || all[0].Title != "After" || all[0].Price != 200 || all[0].IsActive {
		t.Fatalf("unexpected state after update: %+v", all)
	}
}
