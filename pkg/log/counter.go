package log

import "sync"

// counter tracks how many times each key has been seen. It backs the
// Deduped* logging helpers, which key on format strings.
type counter struct {
	seen map[string]int
	mu   sync.RWMutex
}

func newCounter() *counter {
	return &counter{seen: map[string]int{}}
}

func (ctr *counter) count(key string) int {
	ctr.mu.RLock()
	defer ctr.mu.RUnlock()
	return ctr.seen[key]
}

func (ctr *counter) delete(key string) {
	ctr.mu.Lock()
	delete(ctr.seen, key)
	ctr.mu.Unlock()
}

func (ctr *counter) increment(key string) int {
	ctr.mu.Lock()
	defer ctr.mu.Unlock()
	ctr.seen[key]++
	return ctr.seen[key]
}

// reset clears all seen counts. Used by tests to isolate dedupe state.
func (ctr *counter) reset() {
	ctr.mu.Lock()
	ctr.seen = map[string]int{}
	ctr.mu.Unlock()
}
