package services

import (
	"bot-lab/ai"
	"bot-lab/domain"
	"bot-lab/errors"
	"bot-lab/render"
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/abadojack/whatlanggo"
)

func (d *Dispatcher) handleMenu() string {
	return render.Menu(d.settings.BotName, d.settings.Prefix, d.settings.Links, d.features.Enabled())
}

// handlePair binds a fresh session to the sender. Collisions are retried PairRetries times,
// then surfaced to the user.
func (d *Dispatcher) handlePair(msg domain.InboundMessage) string {
	for attempt := 0; attempt <= d.settings.PairRetries; attempt++ {
		id, err := d.newID()
		if err != nil {
			d.log.Error("Session id generation failed", "from", msg.From, "err", err)
			return render.PairFailed
		}

		session, err := d.sessions.Create(id, msg.DisplayName, msg.From, d.now())
		if err == nil {
			d.log.Info("Session paired", "session_id", session.ID, "origin", session.Origin)
			return render.PairConfirmation(session, d.settings.BotName, d.settings.Links)
		}
		if !errors.Is(err, errors.ErrSessionExists) {
			d.log.Error("Session creation failed", "session_id", id, "err", err)
			return render.PairFailed
		}
		d.log.Warn("Session id collision", "session_id", id, "attempt", attempt)
	}
	return render.PairFailed
}

func (d *Dispatcher) handleRestore(ctx context.Context, msg domain.InboundMessage, cmd domain.RestoreCommand) string {
	if cmd.SessionID == "" {
		return render.UsageRestore(d.settings.Prefix)
	}
	if !d.sessions.Restore(ctx, cmd.SessionID, msg.From) {
		d.log.Info("Restore of unknown session", "session_id", cmd.SessionID, "from", msg.From,
			"err", errors.ErrSessionNotFound)
		return render.RestoreFailed
	}
	return render.RestoreSucceeded
}

func (d *Dispatcher) handleAsk(ctx context.Context, cmd domain.AskCommand) string {
	if cmd.Prompt == "" {
		return render.UsageAsk(d.settings.Prefix)
	}
	return render.Answer(d.generator.Generate(ctx, cmd.Prompt, ai.RoleDirectQuery))
}

func (d *Dispatcher) handleTranslate(ctx context.Context, cmd domain.TranslateCommand) string {
	if cmd.Text == "" {
		return render.UsageTranslate(d.settings.Prefix)
	}
	translation := d.generator.Translate(ctx, cmd.Text, cmd.Language)
	return render.Translation(cmd.Language, translation, detectLanguage(cmd.Text))
}

// detectLanguage names the source language when the detection is reliable.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.String()
}

func (d *Dispatcher) handleToggle(msg domain.InboundMessage) string {
	enabled, err := d.features.Toggle(msg.From)
	if err != nil {
		d.log.Warn("Toggle refused", "from", msg.From, "err", err)
		return render.Unauthorized
	}
	d.log.Info("Admin toggled AI responder", "enabled", enabled)
	if enabled && !d.generator.Configured() {
		d.log.Warn("Auto-responder enabled without a generation service, free text gets the unavailable reply",
			"from", msg.From)
	}
	return render.Toggled(enabled)
}

// handleBroadcast delivers to every session origin concurrently. A failed recipient
// is logged and skipped; only successful deliveries are counted.
func (d *Dispatcher) handleBroadcast(ctx context.Context, cmd domain.BroadcastCommand) string {
	if cmd.Text == "" {
		return render.BroadcastMissing
	}

	text := render.BroadcastMessage(cmd.Text)
	sessions := d.sessions.Enumerate()

	var (
		wg        sync.WaitGroup
		delivered atomic.Int64
	)
	for _, session := range sessions {
		wg.Add(1)
		go func(s domain.PairedSession) {
			defer wg.Done()
			sendCtx, cancel := context.WithTimeout(ctx, d.settings.DeliveryTimeout)
			defer cancel()
			if err := d.sender.SendTo(sendCtx, s.Origin, text); err != nil {
				d.log.Warn("Failed to broadcast", "session_id", s.ID, "to", s.Origin, "err", err)
				return
			}
			delivered.Add(1)
		}(session)
	}
	wg.Wait()

	d.log.Info("Broadcast done", "recipients", len(sessions), "delivered", delivered.Load())
	return render.BroadcastReport(int(delivered.Load()))
}

func (d *Dispatcher) handleStats() string {
	return render.Stats(domain.Stats{
		BotName:          d.settings.BotName,
		AutoResponder:    d.features.Enabled(),
		PairedSessions:   d.sessions.Size(),
		EngagedAddresses: d.engagement.Size(),
		Admin:            d.features.Admin(),
	})
}

func (d *Dispatcher) handleFreeText(ctx context.Context, msg domain.InboundMessage, text domain.FreeText) (string, bool) {
	if !d.features.Enabled() || strings.TrimSpace(text.Body) == "" {
		return "", false
	}
	d.log.Debug("Auto-responding", "id", msg.ID, "from", msg.From)
	return render.Answer(d.generator.Generate(ctx, text.Body, ai.RoleAmbient)), true
}
