package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically samples the length and capacity of the given channels.
// Reading len(channel) and cap(channel) is non-blocking, so this won't interfere
// with the producers. A channel above the warning ratio is logged at Warn level.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	metricInterval time.Duration
	warnRatio      float64
}

func NewChannelCapacityWorker(log *slog.Logger,
	channels []NamedChannel, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		channels:       channels,
		metricInterval: metricInterval,
		warnRatio:      0.8,
	}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			for _, usage := range w.Sample() {
				if usage.Saturated(w.warnRatio) {
					w.log.Warn("Channel close to saturation", "name", usage.Name,
						"length", usage.Length, "capacity", usage.Capacity)
					continue
				}
				w.log.Debug("Channel usage", "name", usage.Name,
					"length", usage.Length, "capacity", usage.Capacity)
			}
		}
	}
}

type ChannelUsage struct {
	Name     string
	Length   int
	Capacity int
}

func (u ChannelUsage) Saturated(ratio float64) bool {
	if u.Capacity == 0 {
		return false
	}
	return float64(u.Length)/float64(u.Capacity) >= ratio
}

// Sample reads the current usage of every channel, non-channel values are skipped.
func (w ChannelCapacityWorker) Sample() []ChannelUsage {
	usages := make([]ChannelUsage, 0, len(w.channels))
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		// Verify if this is a channel
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		usages = append(usages, ChannelUsage{Name: nc.Name, Length: v.Len(), Capacity: v.Cap()})
	}
	return usages
}
