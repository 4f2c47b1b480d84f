// Package domain contains core concepts of the bot.
// This file defines paired sessions and their identifiers.
package domain

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	SessionIDLength    = 6
	DefaultDisplayName = "User"
	sessionIDAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// SessionID is a short human-shareable code.
type SessionID string

// PairedSession links a SessionID to the address that created it.
type PairedSession struct {
	ID          SessionID
	DisplayName string
	Origin      Address
	CreatedAt   time.Time
}

// NewPairedSession returns a fully built session, defaulting the display name.
func NewPairedSession(id SessionID, displayName string, origin Address, at time.Time) PairedSession {
	if displayName == "" {
		displayName = DefaultDisplayName
	}
	return PairedSession{
		ID:          id,
		DisplayName: displayName,
		Origin:      origin,
		CreatedAt:   at,
	}
}

// NewSessionID draws SessionIDLength characters uniformly from the base-36 alphabet.
func NewSessionID() (SessionID, error) {
	max := big.NewInt(int64(len(sessionIDAlphabet)))
	buf := make([]byte, SessionIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = sessionIDAlphabet[n.Int64()]
	}
	return SessionID(buf), nil
}

// IsValidSessionID reports whether s has the shape of a generated identifier.
func IsValidSessionID(s string) bool {
	if len(s) != SessionIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
