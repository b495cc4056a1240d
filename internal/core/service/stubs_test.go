package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Shared stubs
// ---------------------------------------------------------------------------

type stubRecorder struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (r *stubRecorder) Record(a domain.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, a)
}

func (r *stubRecorder) last() domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[len(r.entries)-1]
}

// stubKPIRepo is an in-memory KPI table keyed by id. idOf/setID bridge the
// generic storage to the concrete row type.
type stubKPIRepo[T any] struct {
	rows       map[int64]T
	nextID     int64
	idOf       func(*T) int64
	setID      func(*T, int64)
	listErr    error
	lastFilter domain.KPIFilter
}

func newStubKPIRepo[T any](idOf func(*T) int64, setID func(*T, int64)) *stubKPIRepo[T] {
	return &stubKPIRepo[T]{rows: make(map[int64]T), idOf: idOf, setID: setID}
}

func (r *stubKPIRepo[T]) Create(_ context.Context, rec *T) error {
	r.nextID++
	r.setID(rec, r.nextID)
	r.rows[r.nextID] = *rec
	return nil
}

func (r *stubKPIRepo[T]) FindByID(_ context.Context, id int64) (*T, error) {
	rec, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *stubKPIRepo[T]) List(_ context.Context, f domain.KPIFilter) ([]T, int64, error) {
	r.lastFilter = f
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.rows[id])
	}
	total := int64(len(out))
	skip := (f.Page - 1) * f.Limit
	if skip > len(out) {
		return []T{}, total, nil
	}
	end := skip + f.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[skip:end], total, nil
}

func (r *stubKPIRepo[T]) Update(_ context.Context, id int64, rec *T) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	r.setID(rec, id)
	r.rows[id] = *rec
	return nil
}

func (r *stubKPIRepo[T]) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type stubActivityRepo struct {
	entries    []domain.Activity
	lastCutoff time.Time
	deleted    int64
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	r.entries = append(r.entries, *a)
	return nil
}

func (r *stubActivityRepo) List(_ context.Context, f domain.ActivityFilter) ([]domain.Activity, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func (r *stubActivityRepo) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.lastCutoff = cutoff
	return r.deleted, nil
}

var _ ports.ActivityRepository = (*stubActivityRepo)(nil)
