package product

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lumina-store/lumina/internal/logging"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute, logging.Discard()), mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok := cache.GetListing(ctx); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	products := []Product{{ID: "p1", Title: "Tea", Price: 450, IsActive: true}}
	cache.SetListing(ctx, products)

	got, ok := cache.GetListing(ctx)
	if !ok {
		t.Fatal("expected a hit after SetListing")
	}
	if len(got) != 1 || got[0].ID != "p1" || got[0].Price != 450 {
		t.Fatalf("unexpected cached listing: %v", got)
	}

	cache.Invalidate(ctx)
	if _, ok := cache.GetListing(ctx); ok {
		t.Fatal("expected a miss after invalidation")
	}
}

func TestCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.SetListing(ctx, []Product{{ID: "p1", Title: "Tea"}})
	mr.FastForward(2 * time.Minute)

	if _, ok := cache.GetListing(ctx); ok {
		t.Fatal("expected a miss after TTL elapsed")
	}
}

func TestCacheFailsOpenWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCache(client, time.Minute, logging.Discard())
	mr.Close()

	ctx := context.Background()
	if _, ok := cache.GetListing(ctx); ok {
		t.Fatal("expected a miss when redis is unreachable")
	}
	cache.SetListing(ctx, []Product{{ID: "p1"}})
	cache.Invalidate(ctx)
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *Cache
	ctx := context.Background()
	if _, ok := cache.GetListing(ctx); ok {
		t.Fatal("nil cache must always miss")
	}
	cache.SetListing(ctx, nil)
	cache.Invalidate(ctx)

	disabled := NewCache(nil, time.Minute, logging.Discard())
	if _, ok := disabled.GetListing(ctx); ok {
		t.Fatal("disabled cache must always miss")
	}
}

func TestServiceListUsesCache(t *testing.T) {
	cache, _ := newTestCache(t)
	repo := NewMemoryRepository()
	svc := NewService(repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Title: "Tea", Price: 450})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected one product, got %d", len(first))
	}

	// A write invalidates the cached listing, so the next read sees the
	// new item immediately.
	if _, err := svc.Create(ctx, Input{Title: "Coffee", Price: 700}); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("expected two products after invalidation, got %d", len(second))
	}

	if _, err := svc.Update(ctx, created.ID, Input{Title: "Tea", IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	third, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(third) != 1 {
		t.Fatalf("expected deactivated product to drop out, got %d", len(third))
	}
}
