package service

import (
	"context"
	"sync"
	"time"

	"staysync/config"
	"staysync/internal/domains/mirror/model"
	"staysync/internal/domains/mirror/repository"
	"staysync/shared"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/timezone"

	"github.com/rs/zerolog/log"
)

// RunResult carries the counters a finished run reports into the sync
// ledger.
type RunResult struct {
	Bookings int
	Listings int
	Failed   int
	Duration time.Duration
}

// Tracker drives the per-domain sync state machine. It is the advisory guard
// against overlapping runs: Begin claims a domain or rejects with a conflict,
// Complete and Fail release it into a terminal state.
type Tracker struct {
	repo   repository.SyncStatus
	budget time.Duration
	mu     sync.Mutex
}

func NewTracker(repo repository.SyncStatus, cfg *config.Config) *Tracker {
	return &Tracker{
		repo:   repo,
		budget: time.Duration(cfg.Sync.RunBudgetMinutes) * time.Minute,
	}
}

// Begin claims the domain for a new run. A fresh running record rejects the
// claim; a running record older than twice the run budget belongs to a
// crashed run and is taken over.
func (t *Tracker) Begin(ctx context.Context, domain string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, err := t.Status(ctx, domain)
	if err != nil {
		return err
	}

	if current.Status == model.SyncStateRunning && current.StartedAt != nil {
		age := timezone.Now().Sub(*current.StartedAt)
		if age < 2*t.budget {
			return failure.Conflict("sync already running for " + domain) // nolint:wrapcheck
		}

		log.Warn().
			Str("domain", domain).
			Dur("age", age).
			Msg("[sync] taking over a stale running record")
	}

	now := timezone.Now()
	current.ID = domain
	current.Status = model.SyncStateRunning
	current.StartedAt = &now
	current.UpdatedAt = now

	return t.repo.Upsert(ctx, current)
}

// Complete releases the domain into success and advances the sync watermark.
func (t *Tracker) Complete(ctx context.Context, domain string, res RunResult) {
	t.terminal(ctx, domain, model.SyncStateSuccess, nil, res)
}

// Fail releases the domain into error. The watermark still advances so
// staleness is measured from the last attempt, but the error is kept for
// operators.
func (t *Tracker) Fail(ctx context.Context, domain string, runErr error, res RunResult) {
	t.terminal(ctx, domain, model.SyncStateError, runErr, res)
}

// Status reads the ledger row for a domain. Domains that never ran get a
// synthetic record in the never state.
func (t *Tracker) Status(ctx context.Context, domain string) (model.SyncStatus, error) {
	record, err := t.repo.Get(ctx, shared.FilterByID(domain, model.FieldSyncID, model.SyncStatusTableName))
	if err != nil {
		return model.SyncStatus{}, err
	}

	if record.ID == constant.Empty {
		record = model.SyncStatus{
			ID:     domain,
			Status: model.SyncStateNever,
		}
	}

	return record, nil
}

func (t *Tracker) terminal(ctx context.Context, domain, state string, runErr error, res RunResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := timezone.Now()
	record := model.SyncStatus{
		ID:            domain,
		Status:        state,
		StartedAt:     nil,
		LastSyncAt:    &now,
		BookingsCount: res.Bookings,
		ListingsCount: res.Listings,
		FailedCount:   res.Failed,
		DurationMs:    res.Duration.Milliseconds(),
		UpdatedAt:     now,
	}
	if runErr != nil {
		msg := runErr.Error()
		record.LastError = &msg
	}

	if err := t.repo.Upsert(ctx, record); err != nil {
		log.Error().Err(err).Str("domain", domain).Msg("[sync] failed to record terminal state")
	}
}
