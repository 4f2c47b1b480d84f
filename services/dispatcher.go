// Package services holds the bot's business rules: classification, authorization and command handling.
package services

import (
	"bot-lab/contract"
	"bot-lab/domain"
	"bot-lab/render"
	"context"
	"log/slog"
	"time"
)

var _ contract.MessageHandler = (*Dispatcher)(nil)

type Settings struct {
	BotName         string
	Prefix          rune
	Links           render.Links
	PairRetries     int           // extra draws after an identifier collision
	DeliveryTimeout time.Duration // per outbound send during broadcast
}

// Dispatcher decides, for every inbound message, which state transition and reply to produce.
// It keeps no state of its own: everything shared lives in the stores given to NewDispatcher,
// which are safe for concurrent use, so several workers may call Dispatch at once.
type Dispatcher struct {
	log        *slog.Logger
	settings   Settings
	sessions   contract.ISessionRegistry
	engagement contract.IEngagementTracker
	features   contract.IFeatureState
	generator  contract.Generator
	sender     contract.Sender
	welcomes   contract.TaskQueue
	newID      func() (domain.SessionID, error)
	now        func() time.Time
}

type Option func(*Dispatcher)

// WithIDSource replaces the random session identifier source.
func WithIDSource(fn func() (domain.SessionID, error)) Option {
	return func(d *Dispatcher) { d.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(d *Dispatcher) { d.now = fn }
}

func NewDispatcher(
	log *slog.Logger,
	settings Settings,
	sessions contract.ISessionRegistry,
	engagement contract.IEngagementTracker,
	features contract.IFeatureState,
	generator contract.Generator,
	sender contract.Sender,
	welcomes contract.TaskQueue,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		log:        log,
		settings:   settings,
		sessions:   sessions,
		engagement: engagement,
		features:   features,
		generator:  generator,
		sender:     sender,
		welcomes:   welcomes,
		newID:      domain.NewSessionID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch returns the reply for msg, or false when the message must stay unanswered.
// A first-contact welcome is queued separately and may arrive before or after the reply.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.InboundMessage) (domain.Reply, bool) {
	if msg.From == domain.SystemBroadcastAddress {
		return domain.Reply{}, false
	}

	d.welcome(msg.From)

	cmd := domain.Classify(msg.Body, d.settings.Prefix)
	d.log.Debug("Message classified", "id", msg.ID, "from", msg.From, "command", cmd.Name())

	// No privileged handler runs before this check
	if domain.RequiresAdmin(cmd) && !d.features.IsAdmin(msg.From) {
		d.log.Warn("Unauthorized privileged command",
			"id", msg.ID, "from", msg.From, "command", cmd.Name())
		return domain.Reply{To: msg.From, Text: render.Unauthorized}, true
	}

	text, ok := d.handle(ctx, msg, cmd)
	if !ok {
		return domain.Reply{}, false
	}
	return domain.Reply{To: msg.From, Text: text}, true
}

func (d *Dispatcher) handle(ctx context.Context, msg domain.InboundMessage, cmd domain.Command) (string, bool) {
	switch c := cmd.(type) {
	case domain.MenuCommand:
		return d.handleMenu(), true
	case domain.PairCommand:
		return d.handlePair(msg), true
	case domain.RestoreCommand:
		return d.handleRestore(ctx, msg, c), true
	case domain.AskCommand:
		return d.handleAsk(ctx, c), true
	case domain.TranslateCommand:
		return d.handleTranslate(ctx, c), true
	case domain.ToggleAICommand:
		return d.handleToggle(msg), true
	case domain.BroadcastCommand:
		return d.handleBroadcast(ctx, c), true
	case domain.StatsCommand:
		return d.handleStats(), true
	case domain.FreeText:
		return d.handleFreeText(ctx, msg, c)
	case domain.UnknownCommand:
		return render.UnknownCommand(d.settings.Prefix), true
	default:
		d.log.Error("Unhandled command variant", "command", cmd.Name())
		return render.UnknownCommand(d.settings.Prefix), true
	}
}

func (d *Dispatcher) welcome(from domain.Address) {
	if !d.engagement.MarkWelcomed(from) {
		return
	}
	reply := domain.Reply{
		To:   from,
		Text: render.Welcome(d.settings.BotName, d.settings.Prefix, d.features.Enabled()),
	}
	if !d.welcomes.Enqueue(reply) {
		d.log.Warn("Welcome message dropped, delivery queue full", "to", from)
	}
}
