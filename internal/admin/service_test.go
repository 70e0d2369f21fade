package admin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestListUsersIncludesBalances(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SeedUser(UserRecord{ID: uuid.NewString(), Email: "a@shop.com", Role: "user", Balance: 0, CreatedAt: time.Now()})
	repo.SeedUser(UserRecord{ID: uuid.NewString(), Email: "b@shop.com", Role: "admin", Balance: 12_000, CreatedAt: time.Now()})

	svc := NewService(repo)
	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected two users, got %d", len(users))
	}
	if users[1].Balance != 12_000 {
		t.Fatalf("expected joined balance, got %d", users[1].Balance)
	}
}

func TestStatsSnapshot(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SeedStats(Stats{Users: 4, Products: 2, Orders: 7, Revenue: 150_000})

	svc := NewService(repo)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats != (Stats{Users: 4, Products: 2, Orders: 7, Revenue: 150_000}) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
