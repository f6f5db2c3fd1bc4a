// Package dedupe defines the interface for idempotency tracking.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Deduper records seen event IDs to ensure at-most-once processing.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID from the seen list, allowing it to be retried.
	// Used when an event was marked seen but failed to enqueue.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

const defaultMaxSize = 50_000

// entry is one element of the recency list.
type entry struct {
	id   string
	next *entry
}

// inMemoryDeduper implements Deduper with a bounded map plus a most-recent-
// first linked list; when full, the oldest recorded id is evicted.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]*entry
	head    *entry
	maxSize int
	size    atomic.Int64
	pool    sync.Pool
}

// NewInMemoryDeduper creates a bounded in-memory deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]*entry, d.maxSize)
	d.pool = sync.Pool{New: func() interface{} { return &entry{} }}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}

	if len(d.seen) >= d.maxSize {
		d.evictOldest()
	}

	e := d.pool.Get().(*entry)
	e.id = id
	e.next = d.head
	d.head = e
	d.seen[id] = e
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Unrecord(ctx context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.seen[id]
	if !ok {
		return
	}
	delete(d.seen, id)
	d.unlink(e)
	d.release(e)
	d.size.Add(-1)
}

// Size returns the current number of recorded ids.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// unlink removes e from the recency list. Caller holds d.mu.
func (d *inMemoryDeduper) unlink(e *entry) {
	if d.head == e {
		d.head = e.next
		return
	}
	for cur := d.head; cur != nil; cur = cur.next {
		if cur.next == e {
			cur.next = e.next
			return
		}
	}
}

// evictOldest drops the tail of the recency list. Caller holds d.mu.
func (d *inMemoryDeduper) evictOldest() {
	if d.head == nil {
		return
	}
	if d.head.next == nil {
		delete(d.seen, d.head.id)
		d.release(d.head)
		d.head = nil
		d.size.Add(-1)
		return
	}
	prev := d.head
	for prev.next.next != nil {
		prev = prev.next
	}
	tail := prev.next
	prev.next = nil
	delete(d.seen, tail.id)
	d.release(tail)
	d.size.Add(-1)
}

func (d *inMemoryDeduper) release(e *entry) {
	e.id = ""
	e.next = nil
	d.pool.Put(e)
}
