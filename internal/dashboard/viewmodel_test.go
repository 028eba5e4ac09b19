package dashboard_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/dashboard"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

type fakeStore struct {
	mu        sync.Mutex
	records   []domain.ApplicationRecord
	listErr   error
	deleteErr error
	listCalls int
	deleted   []string
}

func (f *fakeStore) List(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.ApplicationRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	kept := f.records[:0:0]
	for _, rec := range f.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	f.records = kept
	return nil
}

type fakeSnapshot struct {
	saved  map[string][]domain.ApplicationRecord
	loaded []domain.ApplicationRecord
}

func (f *fakeSnapshot) Replace(ctx context.Context, userID string, records []domain.ApplicationRecord) error {
	if f.saved == nil {
		f.saved = map[string][]domain.ApplicationRecord{}
	}
	f.saved[userID] = records
	return nil
}

func (f *fakeSnapshot) Load(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	return f.loaded, nil
}

func confirmAlways() dashboard.Confirmer {
	return dashboard.ConfirmerFunc(func(string) bool { return true })
}

func confirmNever() dashboard.Confirmer {
	return dashboard.ConfirmerFunc(func(string) bool { return false })
}

func rec(id string, status domain.Status) domain.ApplicationRecord {
	return domain.ApplicationRecord{
		ID:          id,
		Company:     "Acme",
		Position:    "Engineer",
		Status:      status,
		DateApplied: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestLoad_ReplacesRecordSet(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{rec("1", domain.StatusApplied)}}
	vm := dashboard.NewViewModel(store, nil, confirmAlways(), nil)

	vm.Load(context.Background(), "7")

	require.Len(t, vm.Records(), 1)
	assert.False(t, vm.IsLoading())
	assert.Empty(t, vm.ErrMsg())
	assert.False(t, vm.Stale())
}

func TestLoad_FailureKeepsPriorRecords(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{rec("1", domain.StatusApplied)}}
	vm := dashboard.NewViewModel(store, nil, confirmAlways(), nil)
	vm.Load(context.Background(), "7")

	store.mu.Lock()
	store.listErr = errors.New("boom")
	store.mu.Unlock()
	vm.Load(context.Background(), "7")

	assert.False(t, vm.IsLoading(), "loading flag must end false on failure")
	assert.NotEmpty(t, vm.ErrMsg())
	assert.Len(t, vm.Records(), 1, "prior records must stay in place")
}

func TestLoad_FailureFallsBackToSnapshot(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	snap := &fakeSnapshot{loaded: []domain.ApplicationRecord{rec("9", domain.StatusOffered)}}
	vm := dashboard.NewViewModel(store, snap, confirmAlways(), nil)

	vm.Load(context.Background(), "7")

	require.Len(t, vm.Records(), 1)
	assert.True(t, vm.Stale())
	assert.NotEmpty(t, vm.ErrMsg())
}

func TestLoad_SuccessUpdatesSnapshot(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{rec("1", domain.StatusApplied)}}
	snap := &fakeSnapshot{}
	vm := dashboard.NewViewModel(store, snap, confirmAlways(), nil)

	vm.Load(context.Background(), "7")

	require.Contains(t, snap.saved, "7")
	assert.Len(t, snap.saved["7"], 1)
}

func TestRemove_DeclinedConfirmationDoesNothing(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{rec("1", domain.StatusApplied)}}
	vm := dashboard.NewViewModel(store, nil, confirmNever(), nil)
	vm.Load(context.Background(), "7")

	vm.Remove(context.Background(), "1")

	assert.Empty(t, store.deleted)
	assert.Len(t, vm.Records(), 1)
}

func TestRemove_LocalRemovalOnlyAfterStoreConfirms(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{
		rec("1", domain.StatusApplied),
		rec("2", domain.StatusOffered),
	}}
	vm := dashboard.NewViewModel(store, nil, confirmAlways(), nil)
	vm.Load(context.Background(), "7")

	vm.Remove(context.Background(), "1")

	require.Len(t, vm.Records(), 1)
	assert.Equal(t, "2", vm.Records()[0].ID)
	assert.Equal(t, []string{"1"}, store.deleted)
}

func TestRemove_StoreFailureReloads(t *testing.T) {
	store := &fakeStore{
		records:   []domain.ApplicationRecord{rec("1", domain.StatusApplied)},
		deleteErr: errors.New("boom"),
	}
	vm := dashboard.NewViewModel(store, nil, confirmAlways(), nil)
	vm.Load(context.Background(), "7")
	callsBefore := store.listCalls

	vm.Remove(context.Background(), "1")

	assert.NotEmpty(t, vm.ErrMsg())
	assert.Len(t, vm.Records(), 1, "record must survive a failed delete")
	assert.Greater(t, store.listCalls, callsBefore, "failed delete must trigger a reload")
}

func TestStats_BucketsSumToTotal(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{
		rec("1", domain.StatusApplied),
		rec("2", domain.StatusHRScreen),
		rec("3", domain.StatusTechnicalInterview),
		rec("4", domain.StatusFinalInterview),
		rec("5", domain.StatusOffered),
		rec("6", domain.StatusAccepted),
		rec("7", domain.StatusRejected),
		rec("8", domain.StatusWithdrawn),
	}}
	vm := dashboard.NewViewModel(store, nil, confirmAlways(), nil)
	vm.Load(context.Background(), "7")

	s := vm.Stats()
	assert.Equal(t, 8, s.Total)
	assert.Equal(t, 1, s.Applied)
	assert.Equal(t, 3, s.Interviews, "HR_SCREEN, TECHNICAL_INTERVIEW and FINAL_INTERVIEW")
	assert.Equal(t, 2, s.Offers, "OFFERED and ACCEPTED")
	assert.Equal(t, 2, s.Rejected, "REJECTED and WITHDRAWN")
	assert.Equal(t, s.Total, s.Applied+s.Interviews+s.Offers+s.Rejected)
}

func TestStats_ComputedFromUnfilteredSet(t *testing.T) {
	store := &fakeStore{records: []domain.ApplicationRecord{
		rec("1", domain.StatusApplied),
		rec("2", domain.StatusRejected),
	}}
	vm := dashboard.NewViewModel(store, nil, confirmAlways(), nil)
	vm.Load(context.Background(), "7")

	// A narrow projection must not change the stats.
	_ = vm.Project(dashboard.Query{Status: string(domain.StatusApplied)})
	s := vm.Stats()
	assert.Equal(t, 2, s.Total)
}
