// Package dashboard holds the application list view-model: the authoritative
// in-memory record set for the logged-in user plus its derived projection
// and stats. It owns the record set exclusively; every mutation goes through
// a confirmed store result, never a local guess.
package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

// ApplicationStore is the remote collaborator the view-model reads from.
type ApplicationStore interface {
	List(ctx context.Context, userID string) ([]domain.ApplicationRecord, error)
	Delete(ctx context.Context, id string) error
}

// Snapshot is the optional offline cache of the last good record set.
type Snapshot interface {
	Replace(ctx context.Context, userID string, records []domain.ApplicationRecord) error
	Load(ctx context.Context, userID string) ([]domain.ApplicationRecord, error)
}

// Confirmer asks the user a yes/no question before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// ViewModel maintains the record set and exposes the queryable projection.
// Store failures never escape: they end up in ErrMsg and the UI stays
// interactive with whatever records were already loaded.
type ViewModel struct {
	store   ApplicationStore
	cache   Snapshot // nil disables the offline fallback
	confirm Confirmer
	log     *zap.Logger

	mu      sync.Mutex
	userID  string
	records []domain.ApplicationRecord
	loading bool
	stale   bool // records came from the offline snapshot, not the store
	errMsg  string
}

func NewViewModel(store ApplicationStore, cache Snapshot, confirm Confirmer, log *zap.Logger) *ViewModel {
	if log == nil {
		log = zap.NewNop()
	}
	if confirm == nil {
		confirm = ConfirmerFunc(func(string) bool { return true })
	}
	return &ViewModel{store: store, cache: cache, confirm: confirm, log: log}
}

// Load replaces the record set from the store. On failure the prior records
// stay in place; if there were none, the offline snapshot (when configured)
// is shown instead, flagged stale.
func (vm *ViewModel) Load(ctx context.Context, userID string) {
	vm.mu.Lock()
	vm.loading = true
	vm.errMsg = ""
	vm.userID = userID
	vm.mu.Unlock()

	records, err := vm.store.List(ctx, userID)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.loading = false
	if err != nil {
		vm.log.Warn("load applications failed", zap.String("user", userID), zap.Error(err))
		vm.errMsg = "Failed to load applications"
		if len(vm.records) == 0 && vm.cache != nil {
			if cached, cerr := vm.cache.Load(ctx, userID); cerr == nil && len(cached) > 0 {
				vm.records = cached
				vm.stale = true
			}
		}
		return
	}
	vm.records = records
	vm.stale = false
	if vm.cache != nil {
		if cerr := vm.cache.Replace(ctx, userID, records); cerr != nil {
			vm.log.Warn("snapshot update failed", zap.Error(cerr))
		}
	}
}

// Remove deletes one application after user confirmation. The record leaves
// the local set only once the store confirms; on store failure the set is
// reloaded rather than trusting local state.
func (vm *ViewModel) Remove(ctx context.Context, id string) {
	if !vm.confirm.Confirm("Are you sure you want to delete this application?") {
		return
	}
	if err := vm.store.Delete(ctx, id); err != nil {
		vm.log.Warn("delete application failed", zap.String("id", id), zap.Error(err))
		vm.mu.Lock()
		userID := vm.userID
		vm.mu.Unlock()
		vm.Load(ctx, userID)
		// The reload clears errMsg, so report the failure after it.
		vm.mu.Lock()
		vm.errMsg = "Failed to delete application"
		vm.mu.Unlock()
		return
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	kept := vm.records[:0:0]
	for _, rec := range vm.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	vm.records = kept
}

// Project derives the filtered, sorted view for display.
func (vm *ViewModel) Project(q Query) []domain.ApplicationRecord {
	return Project(vm.Records(), q)
}

// Stats recomputes the summary buckets from the full, unfiltered set.
func (vm *ViewModel) Stats() domain.StatsSummary {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	var s domain.StatsSummary
	s.Total = len(vm.records)
	for _, rec := range vm.records {
		switch {
		case rec.Status == domain.StatusApplied:
			s.Applied++
		case domain.IsInterviewStage(rec.Status):
			s.Interviews++
		case rec.Status == domain.StatusOffered || rec.Status == domain.StatusAccepted:
			s.Offers++
		case rec.Status == domain.StatusRejected || rec.Status == domain.StatusWithdrawn:
			s.Rejected++
		}
	}
	return s
}

// Records returns a copy of the record set.
func (vm *ViewModel) Records() []domain.ApplicationRecord {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]domain.ApplicationRecord, len(vm.records))
	copy(out, vm.records)
	return out
}

func (vm *ViewModel) IsLoading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loading
}

// Stale reports whether the current records came from the offline snapshot.
func (vm *ViewModel) Stale() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.stale
}

// ErrMsg returns the current user-visible error, empty when healthy.
func (vm *ViewModel) ErrMsg() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.errMsg
}

// ClearErr dismisses the current error message.
func (vm *ViewModel) ClearErr() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.errMsg = ""
}
