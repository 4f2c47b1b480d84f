package runtime

import (
	"bot-lab/contract"
	"bot-lab/domain"
	"bot-lab/errors"
	"sync"
)

var _ contract.IFeatureState = (*FeatureState)(nil)

// FeatureState holds the auto-responder flag and the admin identity.
// The flag can only be flipped through Toggle by the admin.
type FeatureState struct {
	mu      sync.RWMutex
	enabled bool
	admin   domain.Address
}

func NewFeatureState(admin domain.Address, enabled bool) *FeatureState {
	return &FeatureState{admin: admin, enabled: enabled}
}

func (f *FeatureState) Enabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.enabled
}

func (f *FeatureState) Admin() domain.Address {
	return f.admin
}

// IsAdmin is an exact comparison: no case folding, no suffix trimming.
func (f *FeatureState) IsAdmin(address domain.Address) bool {
	return address == f.admin
}

// Toggle flips the flag and returns its new value.
func (f *FeatureState) Toggle(requester domain.Address) (bool, error) {
	if !f.IsAdmin(requester) {
		return f.Enabled(), errors.ErrUnauthorized
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = !f.enabled
	return f.enabled, nil
}
