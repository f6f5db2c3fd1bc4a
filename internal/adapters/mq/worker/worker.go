// Package worker consumes state-change events and keeps derived status fresh.
package worker

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/sangsom/minime/internal/adapters/repository"
	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/types"
	"github.com/sangsom/minime/pkg/logger"
	"github.com/sangsom/minime/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 4 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
	lockStripes             = 64
)

// Event is what workers read off the queue.
type Event = model.StateEvent

// Engine folds events into profiles and derives presentation state.
type Engine interface {
	ApplyEvent(p model.Profile, ev model.StateEvent) model.Profile
	DeriveStatus(p model.Profile, hour int) types.Status
}

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Event
}

// Worker processes events until stopped.
type Worker interface {
	Run(ctx context.Context)
	Shutdown(ctx context.Context) error
}

// profileLocks serializes read-modify-write cycles per profile so concurrent
// workers never lose an update. Striped to bound memory.
type profileLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *profileLocks) lock(profileID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(profileID))
	return &l.stripes[h.Sum32()%lockStripes]
}

// InMemoryWorker implements Worker over the in-memory queue and store.
type InMemoryWorker struct {
	queue  Queue
	engine Engine
	store  repository.Store
	locks  *profileLocks
	name   string
	now    func() time.Time

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a worker with configuration options.
func NewInMemoryWorker(q Queue, engine Engine, store repository.Store, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		engine:   engine,
		store:    store,
		locks:    &profileLocks{},
		name:     "worker",
		now:      time.Now,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	events := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := w.processEvent(ctx, ev); err != nil {
				w.logger.Error(ctx, "error processing event", logger.Error(err))
			}
		}
	}
}

// Shutdown stops the worker, waiting for the in-flight event to finish.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processEvent folds one event into its profile and republishes the derived
// status.
func (w *InMemoryWorker) processEvent(ctx context.Context, ev Event) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	mu := w.locks.lock(ev.ProfileID)
	mu.Lock()
	defer mu.Unlock()

	profile, err := w.loadOrCreate(ctx, ev.ProfileID)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "load_profile")
		w.logger.Error(ctx, "loading profile failed",
			logger.String("eventID", ev.EventID),
			logger.String("profileID", ev.ProfileID),
			logger.Error(err),
		)
		return fmt.Errorf("load profile %s: %w", ev.ProfileID, err)
	}

	applyStart := time.Now()
	profile = w.engine.ApplyEvent(profile, ev)
	metrics.RecordApplyLatency(float64(time.Since(applyStart).Milliseconds()))

	status := w.engine.DeriveStatus(profile, w.now().Hour())
	metrics.RecordDerivation()

	if err := w.store.Upsert(ctx, profile, status); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_upsert")
		w.logger.Error(ctx, "storing derived status failed",
			logger.String("eventID", ev.EventID),
			logger.Error(err),
		)
		return fmt.Errorf("store status for %s: %w", ev.ProfileID, err)
	}

	metrics.RecordEventApplied()
	return nil
}

// loadOrCreate fetches the profile or starts a fresh one on first sight.
func (w *InMemoryWorker) loadOrCreate(ctx context.Context, profileID string) (model.Profile, error) {
	rec, err := w.store.Get(ctx, profileID)
	if err == nil {
		return rec.Profile, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return model.NewProfile(profileID), nil
	}
	return model.Profile{}, err
}

// Pool manages multiple workers draining one queue.
type Pool struct {
	workers []*InMemoryWorker

	shutdown     chan struct{}
	shutdownOnce sync.Once

	logger logger.Logger
}

// NewPool creates a worker pool. A non-positive count defaults to a multiple
// of the CPU count. All workers share one lock set so per-profile ordering
// holds across the pool.
func NewPool(workerCount int, q Queue, engine Engine, store repository.Store, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{
		workers:  make([]*InMemoryWorker, workerCount),
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	locks := &profileLocks{}
	for i := range p.workers {
		workerOpts := append([]Option{
			WithName("worker-" + strconv.Itoa(i)),
			withSharedLocks(locks),
		}, opts...)
		p.workers[i] = NewInMemoryWorker(q, engine, store, workerOpts...)
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start launches every worker.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Stop signals all workers and waits briefly for each to finish.
func (p *Pool) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdown)
		for _, w := range p.workers {
			close(w.shutdown)
		}
	})

	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown drains and stops the pool, closing the queue first so no new
// events arrive.
func (p *Pool) Shutdown(ctx context.Context) error {
	if len(p.workers) > 0 {
		if closer, ok := p.workers[0].queue.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				p.logger.Error(ctx, "error closing queue", logger.Error(err))
			}
		}
	}

	p.shutdownOnce.Do(func() {
		close(p.shutdown)
		for _, w := range p.workers {
			close(w.shutdown)
		}
	})

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	metrics.UpdateWorkerCount(0)
	return nil
}
