package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencypulse/kpi-dashboard/internal/metrics"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

const (
	defaultWorkers      = 4
	defaultBuffer       = 256
	defaultWriteTimeout = 5 * time.Second
)

// Dispatcher persists activity entries off the request path. Entries are
// routed to a fixed set of workers by hashing the entity they describe, so
// the entries of one record are written in the order they were recorded.
type Dispatcher struct {
	workers      []chan domain.Activity
	repo         ports.ActivityRepository
	log          zerolog.Logger
	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each
// buffering up to buffer entries. Non-positive values fall back to defaults.
func NewDispatcher(numWorkers, buffer int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers:      make([]chan domain.Activity, numWorkers),
		repo:         repo,
		log:          log.With().Str("component", "activity_dispatcher").Logger(),
		writeTimeout: defaultWriteTimeout,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Activity, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Stop drains them.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Record enqueues an entry without blocking. When the worker's buffer is full
// or the dispatcher is stopped the entry is dropped and counted.
func (d *Dispatcher) Record(a domain.Activity) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(a, "dispatcher stopped")
		return
	}

	idx := d.shardIndex(a)
	select {
	case d.workers[idx] <- a:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.drop(a, "queue full")
	}
}

// Stop closes the queues and waits for pending entries to be written, or for
// ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps an entity deterministically to a worker index.
func (d *Dispatcher) shardIndex(a domain.Activity) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(a.EntityType))
	if a.EntityID != nil {
		_, _ = h.Write([]byte(strconv.FormatInt(*a.EntityID, 10)))
	}
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) drop(a domain.Activity, reason string) {
	metrics.ActivityWritesTotal.WithLabelValues("dropped").Inc()
	d.log.Warn().
		Str("entity_type", a.EntityType).
		Str("action", a.Action).
		Str("reason", reason).
		Msg("activity entry dropped")
}

func (d *Dispatcher) runWorker(id int, ch <-chan domain.Activity) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for a := range ch {
		metrics.ActivityQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		d.write(id, a)
	}
	metrics.ActivityQueueDepth.WithLabelValues(label).Set(0)
}

func (d *Dispatcher) write(id int, a domain.Activity) {
	ctx, cancel := context.WithTimeout(context.Background(), d.writeTimeout)
	defer cancel()

	start := time.Now()
	err := d.repo.Insert(ctx, &a)
	metrics.ActivityWriteDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ActivityWritesTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("entity_type", a.EntityType).
			Str("action", a.Action).
			Int("worker_id", id).
			Msg("activity write failed")
		return
	}
	metrics.ActivityWritesTotal.WithLabelValues("ok").Inc()
}
