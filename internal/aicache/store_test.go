package aicache

import (
	"context"
	"fmt"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestGet_MissReturnsFalse(t *testing.T) {
	store := NewStore(openTestDB(t))

	text, ok, err := store.Get(context.Background(), "مدينة نصر", "الهرم")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || text != "" {
		t.Fatalf("expected miss, got ok=%v text=%q", ok, text)
	}
}

func TestPutThenGet_ExactPair(t *testing.T) {
	store := NewStore(openTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "مدينة نصر", "الهرم", "اركب المترو"); err != nil {
		t.Fatalf("put: %v", err)
	}

	text, ok, err := store.Get(ctx, "مدينة نصر", "الهرم")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || text != "اركب المترو" {
		t.Fatalf("expected hit, got ok=%v text=%q", ok, text)
	}

	// Lookup is exact-string, not substring.
	_, ok, err = store.Get(ctx, "نصر", "الهرم")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("substring pair must not hit the cache")
	}
}

func TestPut_AppendOnlyMostRecentWins(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	if err := store.Put(ctx, "شبرا", "حلوان", "إجابة قديمة"); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := store.Put(ctx, "شبرا", "حلوان", "إجابة جديدة"); err != nil {
		t.Fatalf("second put: %v", err)
	}

	var count int64
	if err := db.Model(&Entry{}).Where("from_loc = ? AND to_loc = ?", "شبرا", "حلوان").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected both rows kept, got %d", count)
	}

	text, ok, err := store.Get(ctx, "شبرا", "حلوان")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || text != "إجابة جديدة" {
		t.Fatalf("expected newest row to win, got ok=%v text=%q", ok, text)
	}
}
