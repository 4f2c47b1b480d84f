// Package runtime handles message intake, delivery queues and the shared bot state.
// It orchestrates the system without containing business logic or command rules.
package runtime

import (
	"bot-lab/contract"
	"bot-lab/domain"
	"bot-lab/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"time"
)

var _ contract.TaskQueue = (*Orchestrator)(nil)

type Orchestrator struct {
	mu              sync.Mutex
	log             *slog.Logger
	numWorkers      int
	supervisor      contract.ISupervisor
	transport       contract.Transport
	deliveries      chan domain.Reply
	extraWorkers    []contract.Worker
	deliveryTimeout time.Duration
	metricInterval  time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, transport contract.Transport,
	numWorkers, bufferSize int, deliveryTimeout, metricInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:             log,
		numWorkers:      numWorkers,
		supervisor:      supervisor,
		transport:       transport,
		deliveries:      make(chan domain.Reply, bufferSize),
		deliveryTimeout: deliveryTimeout,
		metricInterval:  metricInterval,
	}
}

// Enqueue schedules an outbound message outside the dispatch path.
// It never blocks: a full queue drops the message and returns false.
func (o *Orchestrator) Enqueue(reply domain.Reply) bool {
	select {
	case o.deliveries <- reply:
		return true
	default:
		return false
	}
}

// Add registers workers started alongside the pipeline (health reporting...).
func (o *Orchestrator) Add(w ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extraWorkers = append(o.extraWorkers, w...)
}

// Start registers the inbound pool, the delivery worker and the extra workers,
// then runs the supervisor. It blocks until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context, handler contract.MessageHandler) error {
	// 1. Preparation phase (No Lock)
	poolWorkers := o.preparePoolWorkers(handler)
	deliveryWorker := workers.NewDeliveryWorker(o.transport, o.deliveries, o.deliveryTimeout, o.log)

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	o.supervisor.Add(poolWorkers...)
	o.supervisor.Add(deliveryWorker)
	if o.metricInterval > 0 {
		o.supervisor.Add(workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
			{Name: "inbound", Channel: o.transport.Messages()},
			{Name: "deliveries", Channel: o.deliveries},
		}, o.metricInterval))
	}
	if len(o.extraWorkers) > 0 {
		o.supervisor.Add(o.extraWorkers...)
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers", "inbound_workers", o.numWorkers)
	o.supervisor.Run(ctx)
	return nil
}

// preparePoolWorkers creates the inbound pool sharing the transport stream.
func (o *Orchestrator) preparePoolWorkers(handler contract.MessageHandler) []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewInboundWorker(o.transport, handler, o.deliveryTimeout, o.log))
	}
	return res
}

// Stop initiates a graceful shutdown of the orchestrator.
// It cancels the supervision context to signal workers to stop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
