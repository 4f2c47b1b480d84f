package runtime

import (
	"bot-lab/contract"
	"bot-lab/domain"
	"sync"
)

var _ contract.IEngagementTracker = (*EngagementTracker)(nil)

type Set map[domain.Address]struct{}

// EngagementTracker remembers which addresses already got the welcome message.
type EngagementTracker struct {
	mu       sync.Mutex
	welcomed Set
}

func NewEngagementTracker() *EngagementTracker {
	return &EngagementTracker{welcomed: make(Set)}
}

// MarkWelcomed adds address and reports whether it was absent before.
// Test and add happen under the same lock so only one caller ever gets true.
func (t *EngagementTracker) MarkWelcomed(address domain.Address) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.welcomed[address]; ok {
		return false
	}
	t.welcomed[address] = struct{}{}
	return true
}

func (t *EngagementTracker) Has(address domain.Address) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.welcomed[address]
	return ok
}

func (t *EngagementTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.welcomed)
}
