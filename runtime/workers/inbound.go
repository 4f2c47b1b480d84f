package workers

import (
	"bot-lab/contract"
	"context"
	"log/slog"
	"time"
)

// Ensure *InboundWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*InboundWorker)(nil)

// InboundWorker pulls messages from the transport, dispatches them and sends back the reply.
// Several of them share the same stream.
type InboundWorker struct {
	transport       contract.Transport
	handler         contract.MessageHandler
	deliveryTimeout time.Duration
	log             *slog.Logger
}

func NewInboundWorker(
	transport contract.Transport,
	handler contract.MessageHandler,
	deliveryTimeout time.Duration,
	log *slog.Logger) *InboundWorker {
	return &InboundWorker{
		transport:       transport,
		handler:         handler,
		deliveryTimeout: deliveryTimeout,
		log:             log,
	}
}

func (w *InboundWorker) Run(ctx context.Context) error {
	messages := w.transport.Messages()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			reply, ok := w.handler.Dispatch(ctx, msg)
			if !ok {
				continue
			}
			sendCtx, cancel := context.WithTimeout(ctx, w.deliveryTimeout)
			if err := w.transport.Reply(sendCtx, msg, reply.Text); err != nil {
				w.log.Warn("Reply not delivered", "id", msg.ID, "to", msg.From, "err", err)
			}
			cancel()
		}
	}
}
