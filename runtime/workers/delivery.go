package workers

import (
	"bot-lab/contract"
	"bot-lab/domain"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*DeliveryWorker)(nil)

// DeliveryWorker sends queued replies (first-contact welcomes) independently of the dispatch path.
// Nothing orders them relative to the reply of the message that triggered them.
type DeliveryWorker struct {
	sender          contract.Sender
	tasks           <-chan domain.Reply
	deliveryTimeout time.Duration
	log             *slog.Logger
}

func NewDeliveryWorker(sender contract.Sender, tasks <-chan domain.Reply,
	deliveryTimeout time.Duration, log *slog.Logger) *DeliveryWorker {
	return &DeliveryWorker{sender: sender, tasks: tasks, deliveryTimeout: deliveryTimeout, log: log}
}

func (w *DeliveryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case task, ok := <-w.tasks:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.deliver(ctx, task)
		}
	}
}

func (w *DeliveryWorker) deliver(ctx context.Context, task domain.Reply) {
	sendCtx, cancel := context.WithTimeout(ctx, w.deliveryTimeout)
	defer cancel()
	if err := w.sender.SendTo(sendCtx, task.To, task.Text); err != nil {
		w.log.Warn("Queued reply not delivered", "to", task.To, "err", err)
	}
}
