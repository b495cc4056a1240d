package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type stubPruner struct {
	mu    sync.Mutex
	calls []time.Duration
	err   error
}

func (p *stubPruner) Prune(_ context.Context, retention time.Duration) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, retention)
	return 3, p.err
}

func TestRetentionJob_RunOnce(t *testing.T) {
	p := &stubPruner{}
	job := NewRetentionJob(p, 90, zerolog.Nop())

	job.RunOnce()

	if len(p.calls) != 1 || p.calls[0] != 90*24*time.Hour {
		t.Fatalf("unexpected prune calls: %v", p.calls)
	}
}

func TestRetentionJob_RunOnce_ErrorIsLogged(t *testing.T) {
	p := &stubPruner{err: errors.New("db down")}
	job := NewRetentionJob(p, 30, zerolog.Nop())

	job.RunOnce()

	if len(p.calls) != 1 {
		t.Fatalf("expected one attempt, got %d", len(p.calls))
	}
}

func TestRetentionJob_Start_InvalidSchedule(t *testing.T) {
	job := NewRetentionJob(&stubPruner{}, 90, zerolog.Nop())

	if err := job.Start("every tuesday"); err == nil {
		t.Fatal("expected schedule parse error")
	}
}

func TestRetentionJob_Start_Disabled(t *testing.T) {
	job := NewRetentionJob(&stubPruner{}, 0, zerolog.Nop())

	if err := job.Start("not even parsed"); err != nil {
		t.Fatalf("disabled job must not validate the schedule: %v", err)
	}
	if n := len(job.cron.Entries()); n != 0 {
		t.Fatalf("expected no entries, got %d", n)
	}
}

func TestRetentionJob_StartStop(t *testing.T) {
	job := NewRetentionJob(&stubPruner{}, 90, zerolog.Nop())

	if err := job.Start(""); err != nil {
		t.Fatal(err)
	}
	if n := len(job.cron.Entries()); n != 1 {
		t.Fatalf("expected one entry, got %d", n)
	}

	select {
	case <-job.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
