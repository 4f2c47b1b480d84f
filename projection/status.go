// Package projection builds read-only views of the bot state.
// It never mutates the stores it reads from.
package projection

import (
	"bot-lab/contract"
	"bot-lab/render"
	"fmt"
	"log/slog"
	"time"
)

const (
	StatusOK = "ok"
	megabyte      = 1024 * 1024
)

// StatusSnapshot is the document served on /health.
type StatusSnapshot struct {
	Status           string `json:"status"`
	Bot              string `json:"bot"`
	Ready            bool   `json:"ready"`
	Sessions         int    `json:"sessions"`
	ActiveUsers      int    `json:"activeUsers"`
	AIEnabled        bool   `json:"aiEnabled"`
	OpenAIConfigured bool   `json:"openaiConfigured"`
	Uptime           string `json:"uptime"`
	Memory           string `json:"memory"`
	Timestamp        string `json:"timestamp"`
}

// Status aggregates counters and flags from the stores, the transport and the process.
type Status struct {
	log        *slog.Logger
	botName    string
	transport  contract.ReadinessProbe
	sessions   contract.ISessionRegistry
	engagement contract.IEngagementTracker
	features   contract.IFeatureState
	generator  contract.Generator
	process    contract.ProcessStats
	now        func() time.Time
}

func NewStatus(log *slog.Logger, botName string,
	transport contract.ReadinessProbe,
	sessions contract.ISessionRegistry,
	engagement contract.IEngagementTracker,
	features contract.IFeatureState,
	generator contract.Generator,
	process contract.ProcessStats) *Status {
	return &Status{
		log:        log,
		botName:    botName,
		transport:  transport,
		sessions:   sessions,
		engagement: engagement,
		features:   features,
		generator:  generator,
		process:    process,
		now:        time.Now,
	}
}

func (s *Status) Snapshot() StatusSnapshot {
	memory, err := s.process.MemoryBytes()
	if err != nil {
		s.log.Warn("Unable to read process memory", "err", err)
	}
	return StatusSnapshot{
		Status:           StatusOK,
		Bot:              s.botName,
		Ready:            s.transport.Ready(),
		Sessions:         s.sessions.Size(),
		ActiveUsers:      s.engagement.Size(),
		AIEnabled:        s.features.Enabled(),
		OpenAIConfigured: s.generator.Configured(),
		Uptime:           render.FormatUptime(s.process.Uptime()),
		Memory:           formatMegabytes(memory),
		Timestamp:        s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// formatMegabytes rounds to the nearest MB.
func formatMegabytes(bytes uint64) string {
	return fmt.Sprintf("%dMB", (bytes+megabyte/2)/megabyte)
}
