package runtime

import (
	"bot-lab/contract"
	"bot-lab/domain"
	"bot-lab/errors"
	"bot-lab/render"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ contract.ISessionRegistry = (*SessionRegistry)(nil)

// SessionRegistry keeps paired sessions in memory for the lifetime of the process.
// Entries are never removed.
type SessionRegistry struct {
	mu              sync.RWMutex
	log             *slog.Logger
	sender          contract.Sender
	botName         string
	deliveryTimeout time.Duration
	rebindOnRestore bool
	sessions        map[domain.SessionID]domain.PairedSession
	order           []domain.SessionID // insertion order, for display determinism
}

func NewSessionRegistry(log *slog.Logger, sender contract.Sender, botName string,
	deliveryTimeout time.Duration, rebindOnRestore bool) *SessionRegistry {
	return &SessionRegistry{
		log:             log,
		sender:          sender,
		botName:         botName,
		deliveryTimeout: deliveryTimeout,
		rebindOnRestore: rebindOnRestore,
		sessions:        make(map[domain.SessionID]domain.PairedSession),
	}
}

// Create inserts a new session. An existing identifier is never overwritten:
// the caller gets ErrSessionExists and decides whether to draw again.
func (r *SessionRegistry) Create(id domain.SessionID, displayName string,
	origin domain.Address, at time.Time) (domain.PairedSession, error) {
	session := domain.NewPairedSession(id, displayName, origin, at)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; ok {
		return domain.PairedSession{}, fmt.Errorf("%w: %s", errors.ErrSessionExists, id)
	}
	r.sessions[id] = session
	r.order = append(r.order, id)
	return session, nil
}

// Restore sends a confirmation to target when id is known.
// Unknown identifiers return false without any side effect.
func (r *SessionRegistry) Restore(ctx context.Context, id domain.SessionID, target domain.Address) bool {
	session, ok := r.lookupAndRebind(id, target)
	if !ok {
		return false
	}

	if session.Origin != target {
		r.log.Info("Session restored from another address",
			"session_id", id, "origin", session.Origin, "target", target, "rebound", r.rebindOnRestore)
	}

	sendCtx, cancel := context.WithTimeout(ctx, r.deliveryTimeout)
	defer cancel()
	if err := r.sender.SendTo(sendCtx, target, render.RestoreConfirmation(r.botName)); err != nil {
		r.log.Warn("Restore confirmation not delivered", "session_id", id, "target", target, "err", err)
	}
	return true
}

func (r *SessionRegistry) lookupAndRebind(id domain.SessionID, target domain.Address) (domain.PairedSession, bool) {
	if !r.rebindOnRestore {
		return r.Lookup(id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return domain.PairedSession{}, false
	}
	previous := session
	session.Origin = target
	r.sessions[id] = session
	return previous, true
}

func (r *SessionRegistry) Lookup(id domain.SessionID) (domain.PairedSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Enumerate returns a copy of all sessions in insertion order.
func (r *SessionRegistry) Enumerate() []domain.PairedSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.PairedSession, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.sessions[id])
	}
	return res
}

func (r *SessionRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
