package urlsync

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// History limits for GET /sync-history.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// SyncRun is one recorded sync invocation.
type SyncRun struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	StartedAt         time.Time `gorm:"index" json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	Status            string    `gorm:"size:16" json:"status"`
	DryRun            bool      `json:"dry_run"`
	URLsCount         int       `json:"urls_count"`
	URLsAdded         int       `json:"urls_added"`
	URLsHash          string    `gorm:"size:32" json:"urls_hash"`
	PreviousHash      string    `gorm:"size:32" json:"previous_hash"`
	RedirectLists     int       `json:"redirect_lists"`
	RedirectsDegraded bool      `json:"redirects_degraded"`
	Error             string    `gorm:"type:text" json:"error,omitempty"`
}

// TableName overrides the table name used by SyncRun.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// HistoryStore persists sync runs.
type HistoryStore interface {
	Record(ctx context.Context, run *SyncRun) error
	Recent(ctx context.Context, limit int) ([]SyncRun, error)
}

// History stores sync runs in the database.
type History struct {
	db *gorm.DB
}

// NewHistory creates a history store on db.
func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Migrate creates or updates the sync_runs table.
func (h *History) Migrate() error {
	if err := h.db.AutoMigrate(&SyncRun{}); err != nil {
		return fmt.Errorf("failed to migrate sync history: %w", err)
	}
	return nil
}

// Record inserts run.
func (h *History) Record(ctx context.Context, run *SyncRun) error {
	if err := h.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]SyncRun, error) {
	var runs []SyncRun
	err := h.db.WithContext(ctx).
		Order("started_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}

// clampLimit maps a requested page size into [1, MaxHistoryLimit].
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}
