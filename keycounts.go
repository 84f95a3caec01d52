// Package parity key-count containers with interchangeable storage
package parity

import (
	"hash/fnv"
	"sync"
)

// KeyCounts is an unordered collection of unique text keys with integer
// counts. The comparator is coupled only to this interface, so a plain map
// and a concurrency-friendly sharded counter can be certified against each
// other.
type KeyCounts interface {
	// Count returns the count for key and whether the key is present.
	Count(key string) (int, bool)

	// Len returns the number of distinct keys.
	Len() int

	// Range calls fn for every key until fn returns false. Iteration order
	// is unspecified.
	Range(fn func(key string, count int) bool)
}

// MapCounts is the baseline container: a plain Go map.
type MapCounts map[string]int

func (m MapCounts) Count(key string) (int, bool) {
	c, ok := m[key]
	return c, ok
}

func (m MapCounts) Len() int { return len(m) }

func (m MapCounts) Range(fn func(key string, count int) bool) {
	for k, c := range m {
		if !fn(k, c) {
			return
		}
	}
}

// Add increments key by n.
func (m MapCounts) Add(key string, n int) { m[key] += n }

const countShards = 32

// ShardedCounts spreads keys over a fixed set of independently locked shards
// so parallel workers can merge partial counts without a global lock. The
// shard for a key depends only on the key bytes, never on worker count, so
// the aggregate content is reproducible across runs.
type ShardedCounts struct {
	shards [countShards]countShard
}

type countShard struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewShardedCounts returns an empty sharded counter.
func NewShardedCounts() *ShardedCounts {
	s := &ShardedCounts{}
	for i := range s.shards {
		s.shards[i].counts = make(map[string]int)
	}
	return s
}

func (s *ShardedCounts) shard(key string) *countShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &s.shards[h.Sum32()%countShards]
}

// Add increments key by n. Safe for concurrent use.
func (s *ShardedCounts) Add(key string, n int) {
	sh := s.shard(key)
	sh.mu.Lock()
	sh.counts[key] += n
	sh.mu.Unlock()
}

// Merge folds a worker's partial counts in. Safe for concurrent use.
func (s *ShardedCounts) Merge(partial map[string]int) {
	for k, n := range partial {
		s.Add(k, n)
	}
}

func (s *ShardedCounts) Count(key string) (int, bool) {
	sh := s.shard(key)
	sh.mu.Lock()
	c, ok := sh.counts[key]
	sh.mu.Unlock()
	return c, ok
}

func (s *ShardedCounts) Len() int {
	total := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		total += len(s.shards[i].counts)
		s.shards[i].mu.Unlock()
	}
	return total
}

func (s *ShardedCounts) Range(fn func(key string, count int) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for k, c := range sh.counts {
			if !fn(k, c) {
				sh.mu.Unlock()
				return
			}
		}
		sh.mu.Unlock()
	}
}
