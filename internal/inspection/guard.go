package inspection

import "sync"

// SubmitGuard prevents double submission: while a decision for a task is
// in flight, further submits for that task are rejected without touching
// the network
type SubmitGuard struct {
	mu       sync.Mutex
	inflight map[string]bool
}

// NewSubmitGuard creates an empty guard
func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{inflight: make(map[string]bool)}
}

// Begin marks a task submission as in flight. Returns false when one is
// already running, in which case the caller must not submit.
func (g *SubmitGuard) Begin(taskID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[taskID] {
		return false
	}
	g.inflight[taskID] = true
	return true
}

// End clears the in-flight mark once the submission settles
func (g *SubmitGuard) End(taskID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, taskID)
}
