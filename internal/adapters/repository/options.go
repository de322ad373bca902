package repository

// DefaultCapacity is the number of reports kept when no capacity is configured.
const DefaultCapacity = 1000

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithCapacity bounds the number of stored reports. The oldest report is
// evicted when a new one would exceed it.
func WithCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}
