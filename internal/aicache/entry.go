package aicache

import "time"

// Entry is one persisted AI answer. The table is an append-only log: a new
// answer for the same pair inserts a fresh row rather than updating the old
// one, and reads resolve to the most recent row.
type Entry struct {
	ID           string    `gorm:"primaryKey;size:26"` // ULID
	FromLoc      string    `gorm:"type:varchar(255);index:idx_cache_pair,priority:1;not null"`
	ToLoc        string    `gorm:"type:varchar(255);index:idx_cache_pair,priority:2;not null"`
	ResponseText string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (Entry) TableName() string { return "ai_routes_cache" }
