package runtime

import (
	"bot-lab/domain"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngagementTracker_MarkWelcomed_OnlyOnce(t *testing.T) {
	req := require.New(t)
	tracker := NewEngagementTracker()

	req.False(tracker.Has("alice@c.us"))
	req.True(tracker.MarkWelcomed("alice@c.us"))
	req.False(tracker.MarkWelcomed("alice@c.us"))
	req.True(tracker.Has("alice@c.us"))
	req.Equal(1, tracker.Size())
}

func TestEngagementTracker_ConcurrentFirstContact(t *testing.T) {
	req := require.New(t)
	tracker := NewEngagementTracker()

	// Given many workers seeing the same sender at once
	var firsts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.MarkWelcomed(domain.Address("alice@c.us")) {
				firsts.Add(1)
			}
		}()
	}
	wg.Wait()

	// Then a single one wins the welcome
	req.Equal(int32(1), firsts.Load())
	req.Equal(1, tracker.Size())
}
