// Package service wires the engine, queue, workers, and store together and
// implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	eventqueue "github.com/sangsom/minime/internal/adapters/mq/queue"
	workerpool "github.com/sangsom/minime/internal/adapters/mq/worker"
	"github.com/sangsom/minime/internal/adapters/repository"
	"github.com/sangsom/minime/internal/domain/dedupe"
	"github.com/sangsom/minime/internal/domain/model"
	"github.com/sangsom/minime/internal/domain/progression"
	"github.com/sangsom/minime/internal/domain/types"
	"github.com/sangsom/minime/pkg/logger"
	"github.com/sangsom/minime/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize  = 10_000
	defaultDedupeSize = 50_000
)

// Service owns the progression pipeline for one process.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine     *progression.Engine
	store      repository.Store
	deduper    dedupe.Deduper
	eventQueue eventqueue.Queue
	workerPool *workerpool.Pool

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	engineOpts  []progression.Option
	clock       func() time.Time

	// State
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the event queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithEngineOptions forwards options to the progression engine.
func WithEngineOptions(opts ...progression.Option) Option {
	return func(s *Service) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// WithClock overrides the time source used for greetings.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		queueSize:  defaultQueueSize,
		dedupeSize: defaultDedupeSize,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds and launches the pipeline. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting progression service...")

	s.engine = progression.New(s.engineOpts...)
	s.store = repository.NewMemStore()
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.eventQueue = eventqueue.NewInMemoryQueue(
		eventqueue.WithCapacity(s.queueSize),
	)

	s.workerPool = workerpool.NewPool(
		s.workerCount, s.eventQueue, s.engine, s.store,
		workerpool.WithClock(s.clock),
	)
	s.workerPool.Start(ctx)
	s.workerCount = s.workerPool.Size()

	s.started = true
	s.logger.Info(ctx, "progression service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop drains the queue and shuts the pipeline down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping progression service...")

	if s.eventQueue != nil {
		_ = s.eventQueue.Close()
	}
	if s.workerPool != nil {
		_ = s.workerPool.Shutdown(ctx)
	}

	s.started = false
	s.logger.Info(ctx, "progression service stopped")
}

// SeenAndRecord atomically checks if an event id was seen and records it if
// not. Returns true when the event is a duplicate.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordEventDuplicate()
	}
	return seen
}

// Unrecord removes an event id from the seen list, allowing a retry after a
// failed enqueue.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits an event for asynchronous processing. Returns false when
// the queue refused it.
func (s *Service) Enqueue(ctx context.Context, e model.StateEvent) bool {
	s.logger.Debug(ctx, "enqueueing event",
		logger.String("eventID", e.EventID),
		logger.String("profileID", e.ProfileID),
		logger.String("kind", string(e.Kind)),
	)

	ok := s.eventQueue.Enqueue(ctx, e)
	if ok {
		metrics.RecordEventReceived()
	}
	return ok
}

// Status returns the stored derived status for a profile.
func (s *Service) Status(ctx context.Context, profileID string) (types.Status, error) {
	rec, err := s.store.Get(ctx, profileID)
	if err != nil {
		return types.Status{}, err
	}
	return rec.Status, nil
}

// Board returns up to limit profiles ordered by experience.
func (s *Service) Board(ctx context.Context, limit int) ([]types.BoardEntry, error) {
	records, err := s.store.TopByExperience(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]types.BoardEntry, len(records))
	for i, rec := range records {
		entries[i] = types.BoardEntry{
			Rank:       i + 1,
			ProfileID:  rec.Profile.ProfileID,
			Level:      rec.Status.Level,
			Experience: rec.Profile.Experience,
		}
	}
	return entries, nil
}

// Derive computes a status snapshot for an ad-hoc profile without touching
// the store.
func (s *Service) Derive(p model.Profile, hour int) types.Status {
	start := time.Now()
	status := s.engine.DeriveStatus(p, hour)
	metrics.RecordDerivation()
	metrics.RecordDerivationLatency(float64(time.Since(start).Milliseconds()))
	return status
}

// Greeting returns the greeting for an hour of day.
func (s *Service) Greeting(hour int) string {
	return s.engine.Greeting(hour)
}

// RandomAnimation returns a random non-idle animation name.
func (s *Service) RandomAnimation() string {
	return string(s.engine.RandomAnimation())
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		queueLen := s.eventQueue.Len(ctx)
		profiles := s.store.Count(ctx)

		stats["queueLength"] = queueLen
		stats["profiles"] = profiles

		metrics.UpdateQueueDepth(queueLen)
		metrics.UpdateProfilesTotal(profiles)
	}
	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}
