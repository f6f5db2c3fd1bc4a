package repository

// Option configures the in-memory store.
type Option func(*memStore)

// WithInitialCapacity pre-sizes the record map. Values below one are ignored.
func WithInitialCapacity(n int) Option {
	return func(s *memStore) {
		if n > 0 {
			s.records = make(map[string]Record, n)
		}
	}
}
