package aicache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arohezay/backend/internal/common"
)

// Store persists AI answers keyed by the exact (from, to) pair. The
// database rows are the source of truth; an optional redis layer in front
// absorbs repeat lookups without touching the table.
type Store struct {
	db  *gorm.DB
	rds *redis.Client // nil when redis is not configured
	ttl time.Duration
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithRedis attaches a look-aside hot cache. Redis faults are logged and
// ignored; they never fail a lookup or a write.
func (s *Store) WithRedis(rds *redis.Client, ttl time.Duration) *Store {
	s.rds = rds
	s.ttl = ttl
	return s
}

func hotKey(fromLoc, toLoc string) string {
	return fmt.Sprintf("advice:%s|%s", fromLoc, toLoc)
}

// Get returns the cached answer for the exact pair, or ("", false) on a
// miss. Lookup is exact-string on both sides, unlike the catalog's
// substring matching. Among multiple rows for one pair the most recent
// wins (ULID ids sort by creation time).
func (s *Store) Get(ctx context.Context, fromLoc, toLoc string) (string, bool, error) {
	if s.rds != nil {
		text, err := s.rds.Get(ctx, hotKey(fromLoc, toLoc)).Result()
		if err == nil && text != "" {
			return text, true, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("aicache: redis get failed, falling through to db")
		}
	}

	var entry Entry
	err := s.db.WithContext(ctx).
		Where("from_loc = ? AND to_loc = ?", fromLoc, toLoc).
		Order("id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if s.rds != nil {
		if err := s.rds.Set(ctx, hotKey(fromLoc, toLoc), entry.ResponseText, s.ttl).Err(); err != nil {
			logrus.WithError(err).Warn("aicache: redis backfill failed")
		}
	}
	return entry.ResponseText, true, nil
}

// Put appends a new cache row. Existing rows for the same pair are left
// untouched; Get resolves to the newest one.
func (s *Store) Put(ctx context.Context, fromLoc, toLoc, text string) error {
	id, err := common.NewULID()
	if err != nil {
		return err
	}

	entry := Entry{
		ID:           id,
		FromLoc:      fromLoc,
		ToLoc:        toLoc,
		ResponseText: text,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	if s.rds != nil {
		if err := s.rds.Set(ctx, hotKey(fromLoc, toLoc), text, s.ttl).Err(); err != nil {
			logrus.WithError(err).Warn("aicache: redis write-through failed")
		}
	}
	return nil
}
