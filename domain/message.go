// Package domain contains core concepts of the bot.
// This file defines inbound messages and replies.
// Messages are immutable once received.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the stable identifier of a channel endpoint (a user or a pseudo-endpoint).
type Address string

// SystemBroadcastAddress is the transport's status feed. Nothing coming from it is answered.
const SystemBroadcastAddress Address = "status@broadcast"

// Display strips the transport suffix ("2347078226362@c.us" -> "2347078226362").
func (a Address) Display() string {
	local, _, _ := strings.Cut(string(a), "@")
	return local
}

// InboundMessage represents an immutable message received from the transport.
type InboundMessage struct {
	ID          uuid.UUID // correlation identifier
	From        Address
	Body        string
	DisplayName string
	ReceivedAt  time.Time
}

func NewInboundMessage(from Address, body, displayName string) InboundMessage {
	return InboundMessage{
		ID:          uuid.New(),
		From:        from,
		Body:        body,
		DisplayName: displayName,
		ReceivedAt:  time.Now().UTC(),
	}
}

// Reply is plain text destined for exactly one address.
type Reply struct {
	To   Address
	Text string
}
