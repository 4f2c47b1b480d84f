package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProcessStats(t *testing.T) {
	req := require.New(t)

	stats, err := NewProcessStats(time.Now().Add(-time.Minute))
	req.NoError(err)

	req.GreaterOrEqual(stats.Uptime(), time.Minute)

	rss, err := stats.MemoryBytes()
	req.NoError(err)
	req.Positive(rss)
}
