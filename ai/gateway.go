// Package ai wraps the text-generation service behind a contract that never fails.
package ai

import (
	"bot-lab/contract"
	"bot-lab/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

var _ contract.Generator = (*Gateway)(nil)

const (
	RoleDirectQuery = "user requested AI chat"
	RoleAmbient     = "auto-responder mode"

	GenerateUnavailable  = "❌ AI features are currently unavailable. Please configure OPENAI_API_KEY environment variable."
	GenerateFailed       = "🤖 I'm having trouble thinking right now. Please try again later."
	TranslateUnavailable = "Translation unavailable - OpenAI not configured"
	TranslateFailed      = "Translation failed. Please try again."

	generateMaxTokens  = 150
	translateMaxTokens = 100
)

type Outcome int

const (
	OutcomeGenerated Outcome = iota
	OutcomeUnavailable
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "generated"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// Result keeps the configuration state and live failures apart.
// Text is always safe to show to a user.
type Result struct {
	Text    string
	Outcome Outcome
	Err     error
}

// Moderator censors generated text before it leaves the gateway.
type Moderator interface {
	Censor(original string) (string, []string)
}

type Gateway struct {
	log       *slog.Logger
	completer contract.Completer // nil when no service is configured
	moderator Moderator
	botName   string
	timeout   time.Duration
}

type Option func(*Gateway)

func WithModerator(m Moderator) Option {
	return func(g *Gateway) { g.moderator = m }
}

// NewGateway builds a gateway. A nil completer is a valid, unconfigured state.
func NewGateway(log *slog.Logger, completer contract.Completer, botName string,
	timeout time.Duration, opts ...Option) *Gateway {
	g := &Gateway{
		log:       log,
		completer: completer,
		botName:   botName,
		timeout:   timeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Configured() bool {
	return g.completer != nil
}

func (g *Gateway) Generate(ctx context.Context, prompt, role string) string {
	return g.GenerateResult(ctx, prompt, role).Text
}

func (g *Gateway) GenerateResult(ctx context.Context, prompt, role string) Result {
	req := contract.CompletionRequest{
		System: fmt.Sprintf("You are %s, a helpful WhatsApp assistant. "+
			"Respond concisely and helpfully in a friendly tone. Context: %s", g.botName, role),
		Prompt:    prompt,
		MaxTokens: generateMaxTokens,
	}
	return g.complete(ctx, "generate", req, GenerateUnavailable, GenerateFailed)
}

func (g *Gateway) Translate(ctx context.Context, text, language string) string {
	return g.TranslateResult(ctx, text, language).Text
}

func (g *Gateway) TranslateResult(ctx context.Context, text, language string) Result {
	req := contract.CompletionRequest{
		Prompt:    fmt.Sprintf("Translate this to %s: \"%s\"", language, text),
		MaxTokens: translateMaxTokens,
	}
	return g.complete(ctx, "translate", req, TranslateUnavailable, TranslateFailed)
}

// complete performs a single attempt, bounded by the gateway timeout.
func (g *Gateway) complete(ctx context.Context, operation string, req contract.CompletionRequest,
	unavailable, failed string) (res Result) {
	if g.completer == nil {
		g.log.Debug("Generation service not configured", "operation", operation)
		return Result{Text: unavailable, Outcome: OutcomeUnavailable}
	}

	defer func() {
		// a misbehaving client must not take the dispatcher down
		if r := recover(); r != nil {
			err := fmt.Errorf("completer panic: %v", r)
			g.log.Error("Generation failed", "operation", operation, "outcome", OutcomeFailed, "err", err)
			res = Result{Text: failed, Outcome: OutcomeFailed, Err: err}
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	content, err := g.completer.Complete(callCtx, req)
	if err == nil && strings.TrimSpace(content) == "" {
		err = errors.ErrEmptyCompletion
	}
	if err != nil {
		g.log.Error("Generation failed", "operation", operation, "outcome", OutcomeFailed,
			"latency", time.Since(start), "err", err)
		return Result{Text: failed, Outcome: OutcomeFailed, Err: err}
	}

	if g.moderator != nil {
		censored, words := g.moderator.Censor(content)
		if len(words) > 0 {
			g.log.Warn("Generated text censored", "operation", operation, "words", len(words))
		}
		content = censored
	}

	g.log.Debug("Generation succeeded", "operation", operation, "latency", time.Since(start))
	return Result{Text: content, Outcome: OutcomeGenerated}
}
