package httpserver

import (
	"bot-lab/projection"
	"bot-lab/render"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedStatus struct {
	snapshot projection.StatusSnapshot
}

func (f fixedStatus) Snapshot() projection.StatusSnapshot { return f.snapshot }

var snapshot = projection.StatusSnapshot{
	Status:           projection.StatusOK,
	Bot:              "Iyii Bot",
	Ready:            true,
	Sessions:         2,
	ActiveUsers:      5,
	AIEnabled:        true,
	OpenAIConfigured: true,
	Uptime:           "1m 2s",
	Memory:           "40MB",
	Timestamp:        "2026-05-06T07:08:09.000Z",
}

func TestStatusServer_Health(t *testing.T) {
	req := require.New(t)
	s := NewStatusServer(slog.Default(), fixedStatus{snapshot}, render.Links{}, nil)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal("ok", body["status"])
	req.Equal("Iyii Bot", body["bot"])
	req.Equal(true, body["ready"])
	req.EqualValues(2, body["sessions"])
	req.EqualValues(5, body["activeUsers"])
	req.Equal(true, body["aiEnabled"])
	req.Equal(true, body["openaiConfigured"])
	req.Equal("1m 2s", body["uptime"])
	req.Equal("40MB", body["memory"])
	req.Equal("2026-05-06T07:08:09.000Z", body["timestamp"])
}

func TestStatusServer_Page(t *testing.T) {
	req := require.New(t)
	links := render.Links{Website: "https://example.org"}
	s := NewStatusServer(slog.Default(), fixedStatus{snapshot}, links, nil)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	req.Equal(http.StatusOK, rec.Code)
	page := rec.Body.String()
	req.Contains(page, "Iyii Bot")
	req.Contains(page, "🟢 Online")
	req.Contains(page, "40MB")
	req.Contains(page, "https://example.org")
}

func TestStatusServer_MountsTransport(t *testing.T) {
	req := require.New(t)
	transport := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	s := NewStatusServer(slog.Default(), fixedStatus{snapshot}, render.Links{}, transport)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	req.Equal(http.StatusTeapot, rec.Code)
}

func TestStatusServer_ServeAndShutdown(t *testing.T) {
	req := require.New(t)
	s := NewStatusServer(slog.Default(), fixedStatus{snapshot}, render.Links{}, nil)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)

	done := make(chan error)
	go func() { done <- s.Serve(listener) }()

	var resp *http.Response
	req.Eventually(func() bool {
		resp, err = http.Get("http://" + listener.Addr().String() + "/health")
		return err == nil
	}, time.Second, 10*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	req.NoError(err)
	req.Contains(string(body), `"bot":"Iyii Bot"`)

	req.NoError(s.Shutdown(t.Context()))
	req.NoError(<-done)
}
