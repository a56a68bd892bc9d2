package yaparsecache

import (
	"context"
	"sync"
	"time"

	"github.com/YaCodeDev/GoYaTgMarkup/yaerrors"
)

// memoryItem keeps one record together with its TTL metadata. Endless items
// never expire.
type memoryItem struct {
	record    Record
	expiresAt time.Time
	endless   bool
}

func (i memoryItem) isExpired() bool {
	return !i.endless && time.Now().After(i.expiresAt)
}

// Memory is a threadsafe, TTL-aware map-backed cache suitable for
// single-process applications or unit tests. A background goroutine evicts
// expired records at a fixed interval; Get also treats an expired but not yet
// swept record as a miss, so the sweep interval only bounds memory, not
// correctness.
//
// Example usage:
//
//	cache := yaparsecache.NewMemory(time.Minute)
//	defer cache.Close()
type Memory struct {
	mutex sync.RWMutex
	items map[string]memoryItem
	done  chan struct{}
	once  sync.Once
}

// NewMemory builds a Memory cache and immediately starts the background
// sweeper. Choose a sweep interval well above the typical TTL to amortise
// the full-map scan.
func NewMemory(sweepInterval time.Duration) *Memory {
	memory := &Memory{
		items: make(map[string]memoryItem),
		done:  make(chan struct{}),
	}

	go memory.sweep(sweepInterval)

	return memory
}

// sweep runs in its own goroutine, periodically scanning the map for expired
// records. Complexity is O(items) per tick.
func (m *Memory) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mutex.Lock()

			for key, item := range m.items {
				if item.isExpired() {
					delete(m.items, key)
				}
			}

			m.mutex.Unlock()
		case <-m.done:
			return
		}
	}
}

// Get implements Cache. Never returns an error: the back-end cannot fail.
func (m *Memory) Get(
	_ context.Context,
	markup string,
) (Record, bool, yaerrors.Error) {
	m.mutex.RLock()

	defer m.mutex.RUnlock()

	item, ok := m.items[cacheKey(markup)]
	if !ok || item.isExpired() {
		return Record{}, false, nil
	}

	return item.record, true, nil
}

// Put implements Cache. A zero ttl stores the record without expiry.
func (m *Memory) Put(
	_ context.Context,
	markup string,
	record Record,
	ttl time.Duration,
) yaerrors.Error {
	m.mutex.Lock()

	defer m.mutex.Unlock()

	m.items[cacheKey(markup)] = memoryItem{
		record:    record,
		expiresAt: time.Now().Add(ttl),
		endless:   ttl == 0,
	}

	return nil
}

// Ping always succeeds for the in-memory back-end.
func (m *Memory) Ping(_ context.Context) yaerrors.Error {
	return nil
}

// Close stops the sweeper and clears the map. Safe to call more than once.
func (m *Memory) Close() yaerrors.Error {
	m.once.Do(func() {
		close(m.done)
	})

	m.mutex.Lock()

	defer m.mutex.Unlock()

	m.items = make(map[string]memoryItem)

	return nil
}
