package workers

import (
	"bot-lab/contract"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*ReadinessWorker)(nil)

// ServingReporter publishes the serving state to health consumers.
type ServingReporter interface {
	SetServing(serving bool)
}

// ReadinessWorker mirrors the transport readiness into a ServingReporter every interval.
type ReadinessWorker struct {
	probe    contract.ReadinessProbe
	reporter ServingReporter
	interval time.Duration
	log      *slog.Logger
}

func NewReadinessWorker(probe contract.ReadinessProbe, reporter ServingReporter,
	interval time.Duration, log *slog.Logger) *ReadinessWorker {
	return &ReadinessWorker{probe: probe, reporter: reporter, interval: interval, log: log}
}

func (w *ReadinessWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.probe.Ready()
	w.reporter.SetServing(last)
	for {
		select {
		case <-ctx.Done():
			w.reporter.SetServing(false)
			return nil
		case <-ticker.C:
			ready := w.probe.Ready()
			if ready != last {
				w.log.Info("Transport readiness changed", "ready", ready)
			}
			last = ready
			w.reporter.SetServing(ready)
		}
	}
}
