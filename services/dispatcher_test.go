package services_test

import (
	"bot-lab/ai"
	"bot-lab/domain"
	"bot-lab/errors"
	"bot-lab/mocks"
	"bot-lab/render"
	"bot-lab/runtime"
	"bot-lab/services"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	botName = "Iyii Bot"
	admin   = domain.Address("admin@c.us")
)

var sessionIDPattern = regexp.MustCompile(`\*Session ID:\* ([0-9A-Z]{6})\n`)

type fixture struct {
	dispatcher *services.Dispatcher
	sessions   *runtime.SessionRegistry
	engagement *runtime.EngagementTracker
	features   *runtime.FeatureState
	sender     *mocks.MockSender
	queue      *mocks.MockTaskQueue
	generator  *mocks.MockGenerator
}

func newFixture(t *testing.T, opts ...services.Option) *fixture {
	return newFixtureWithSettings(t, services.Settings{
		BotName:         botName,
		Prefix:          '!',
		DeliveryTimeout: time.Second,
	}, opts...)
}

func newFixtureWithSettings(t *testing.T, settings services.Settings, opts ...services.Option) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		engagement: runtime.NewEngagementTracker(),
		features:   runtime.NewFeatureState(admin, true),
		sender:     mocks.NewMockSender(ctrl),
		queue:      mocks.NewMockTaskQueue(ctrl),
		generator:  mocks.NewMockGenerator(ctrl),
	}
	f.sessions = runtime.NewSessionRegistry(slog.Default(), f.sender, botName, time.Second, false)
	f.dispatcher = services.NewDispatcher(slog.Default(), settings, f.sessions, f.engagement,
		f.features, f.generator, f.sender, f.queue, opts...)
	return f
}

func (f *fixture) acceptWelcomes() {
	f.queue.EXPECT().Enqueue(gomock.Any()).Return(true).AnyTimes()
}

func (f *fixture) send(from domain.Address, body string) (domain.Reply, bool) {
	return f.dispatcher.Dispatch(context.Background(), domain.NewInboundMessage(from, body, "Alice"))
}

func TestDispatcher_ToggleAI_NonAdminNeverChangesState(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	for _, from := range []domain.Address{
		"alice@c.us", "Admin@c.us", "admin@c.us ", "admin", "admin@c.us.evil", "",
	} {
		reply, ok := f.send(from, "!toggle_ai")

		req.True(ok)
		req.Equal(render.Unauthorized, reply.Text)
		req.Equal(from, reply.To)
		req.True(f.features.Enabled(), "toggle leaked for %q", from)
	}
}

func TestDispatcher_PrivilegedCommands_RejectedBeforeAnyEffect(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	_, err := f.sessions.Create("ABC123", "Bob", "bob@c.us", time.Now())
	req.NoError(err)

	// Then no broadcast delivery leaks
	f.sender.EXPECT().SendTo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, body := range []string{"!broadcast hello", "!stats", "!STATS"} {
		reply, ok := f.send("alice@c.us", body)
		req.True(ok)
		req.Equal(render.Unauthorized, reply.Text)
	}
}

func TestDispatcher_ToggleAI_AdminTwiceRestoresState(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()
	f.generator.EXPECT().Configured().Return(true).Times(1)

	reply, _ := f.send(admin, "!toggle_ai")
	req.Equal(render.Toggled(false), reply.Text)
	req.False(f.features.Enabled())

	reply, _ = f.send(admin, "!toggle_ai")
	req.Equal(render.Toggled(true), reply.Text)
	req.True(f.features.Enabled())
}

func TestDispatcher_ToggleAI_WarnsWhenGenerationUnavailable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockTaskQueue(ctrl)
	queue.EXPECT().Enqueue(gomock.Any()).Return(true).AnyTimes()
	generator := mocks.NewMockGenerator(ctrl)
	generator.EXPECT().Configured().Return(false).Times(1)

	// Given a bot without generation service and the auto-responder off
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	features := runtime.NewFeatureState(admin, false)
	dispatcher := services.NewDispatcher(log, services.Settings{BotName: botName, Prefix: '!'},
		runtime.NewSessionRegistry(log, nil, botName, time.Second, false), runtime.NewEngagementTracker(),
		features, generator, nil, queue)

	// When the admin turns the auto-responder on
	reply, ok := dispatcher.Dispatch(context.Background(), domain.NewInboundMessage(admin, "!toggle_ai", "Admin"))

	// Then the flag flips and the missing service is reported
	req.True(ok)
	req.Equal(render.Toggled(true), reply.Text)
	req.True(features.Enabled())
	req.Contains(logs.String(), "level=WARN")
	req.Contains(logs.String(), "Auto-responder enabled without a generation service")
}

func TestDispatcher_PairThenRestoreFromAnotherAddress(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	// Given A pairs
	reply, ok := f.send("a@c.us", "!pair")
	req.True(ok)
	matches := sessionIDPattern.FindStringSubmatch(reply.Text)
	req.Len(matches, 2, reply.Text)
	id := matches[1]
	req.True(domain.IsValidSessionID(id))

	session, found := f.sessions.Lookup(domain.SessionID(id))
	req.True(found)
	req.Equal(domain.Address("a@c.us"), session.Origin)
	req.Equal("Alice", session.DisplayName)

	// Then B receives a confirmation
	f.sender.EXPECT().
		SendTo(gomock.Any(), domain.Address("b@c.us"), render.RestoreConfirmation(botName)).
		Return(nil)

	// When B restores it
	reply, ok = f.send("b@c.us", "!restore "+id)
	req.True(ok)
	req.Equal(render.RestoreSucceeded, reply.Text)
}

func TestDispatcher_Restore_UnknownAndMissing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()
	f.sender.EXPECT().SendTo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reply, _ := f.send("b@c.us", "!restore ZZZZZZ")
	req.Equal(render.RestoreFailed, reply.Text)

	reply, _ = f.send("b@c.us", "!restore")
	req.Equal(render.UsageRestore('!'), reply.Text)
}

func TestDispatcher_Pair_Collision(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	fixedID := func() (domain.SessionID, error) { return "AAAAAA", nil }
	f := newFixture(t, services.WithIDSource(fixedID), services.WithClock(func() time.Time { return at }))
	f.acceptWelcomes()

	reply, _ := f.send("a@c.us", "!pair")
	req.Contains(reply.Text, "*Session ID:* AAAAAA")
	req.Contains(reply.Text, "2026-03-04 05:06:07 UTC")

	// When the same identifier is drawn again without retries
	reply, _ = f.send("b@c.us", "!pair")

	// Then the failure is surfaced and the first binding kept
	req.Equal(render.PairFailed, reply.Text)
	session, _ := f.sessions.Lookup("AAAAAA")
	req.Equal(domain.Address("a@c.us"), session.Origin)
	req.Equal(1, f.sessions.Size())
}

func TestDispatcher_Pair_CollisionRetried(t *testing.T) {
	req := require.New(t)
	ids := []domain.SessionID{"AAAAAA", "AAAAAA", "BBBBBB"}
	var mu sync.Mutex
	next := func() (domain.SessionID, error) {
		mu.Lock()
		defer mu.Unlock()
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}
	f := newFixtureWithSettings(t, services.Settings{
		BotName: botName, Prefix: '!', PairRetries: 1, DeliveryTimeout: time.Second,
	}, services.WithIDSource(next))
	f.acceptWelcomes()

	_, _ = f.send("a@c.us", "!pair")
	reply, _ := f.send("b@c.us", "!pair")

	req.Contains(reply.Text, "*Session ID:* BBBBBB")
	req.Equal(2, f.sessions.Size())
}

func TestDispatcher_Pair_IDSourceFailure(t *testing.T) {
	req := require.New(t)
	failing := func() (domain.SessionID, error) { return "", fmt.Errorf("entropy exhausted") }
	f := newFixture(t, services.WithIDSource(failing))
	f.acceptWelcomes()

	reply, _ := f.send("a@c.us", "!pair")
	req.Equal(render.PairFailed, reply.Text)
	req.Zero(f.sessions.Size())
}

func TestDispatcher_Welcome_ExactlyOncePerAddress(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Then a single welcome is queued for alice
	f.queue.EXPECT().
		Enqueue(domain.Reply{To: "alice@c.us", Text: render.Welcome(botName, '!', true)}).
		Return(true).
		Times(1)

	for _, body := range []string{"!menu", "!menu", "!unknown"} {
		_, ok := f.send("alice@c.us", body)
		req.True(ok)
	}
	req.True(f.engagement.Has("alice@c.us"))
	req.Equal(1, f.engagement.Size())
}

func TestDispatcher_Welcome_QueueFullStillReplies(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.queue.EXPECT().Enqueue(gomock.Any()).Return(false).Times(1)

	reply, ok := f.send("alice@c.us", "!menu")

	req.True(ok)
	req.Equal(render.Menu(botName, '!', render.Links{}, true), reply.Text)
	// A dropped welcome is not retried
	_, _ = f.send("alice@c.us", "!menu")
}

func TestDispatcher_Welcome_ConcurrentMessages(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	var mu sync.Mutex
	welcomed := map[domain.Address]int{}
	f.queue.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(r domain.Reply) bool {
		mu.Lock()
		defer mu.Unlock()
		welcomed[r.To]++
		return true
	}).AnyTimes()

	// Given 10 addresses each sending 10 messages at once
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = f.send(domain.Address(fmt.Sprintf("user%d@c.us", i)), "!menu")
			}(i)
		}
	}
	wg.Wait()

	// Then each address got exactly one welcome
	req.Len(welcomed, 10)
	for addr, n := range welcomed {
		req.Equal(1, n, addr)
	}
	req.Equal(10, f.engagement.Size())
}

func TestDispatcher_SystemBroadcastAddressIgnored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.queue.EXPECT().Enqueue(gomock.Any()).Times(0)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, ok := f.send(domain.SystemBroadcastAddress, "!menu")
	req.False(ok)
	_, ok = f.send(domain.SystemBroadcastAddress, "story update")
	req.False(ok)
	req.Zero(f.engagement.Size())
}

func TestDispatcher_Broadcast_PartialFailure(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	// Given 5 sessions, 2 of them unreachable
	unreachable := map[domain.Address]bool{"user1@c.us": true, "user3@c.us": true}
	for i := 0; i < 5; i++ {
		_, err := f.sessions.Create(domain.SessionID(fmt.Sprintf("ID%04d", i)), "",
			domain.Address(fmt.Sprintf("user%d@c.us", i)), time.Now())
		req.NoError(err)
	}
	f.sender.EXPECT().
		SendTo(gomock.Any(), gomock.Any(), render.BroadcastMessage("new single out")).
		DoAndReturn(func(_ context.Context, to domain.Address, _ string) error {
			if unreachable[to] {
				return errors.ErrRecipientOffline
			}
			return nil
		}).
		Times(5)

	reply, ok := f.send(admin, "!broadcast new single out")

	req.True(ok)
	req.Equal(render.BroadcastReport(3), reply.Text)
}

func TestDispatcher_Broadcast_EmptyLeavesStateUnchanged(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	_, err := f.sessions.Create("ABC123", "", "bob@c.us", time.Now())
	req.NoError(err)
	_, _ = f.send(admin, "!menu")
	sessionsBefore, engagedBefore := f.sessions.Size(), f.engagement.Size()
	f.sender.EXPECT().SendTo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reply, _ := f.send(admin, "!broadcast")

	req.Equal(render.BroadcastMissing, reply.Text)
	req.Equal(sessionsBefore, f.sessions.Size())
	req.Equal(engagedBefore, f.engagement.Size())
}

func TestDispatcher_Stats(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	_, err := f.sessions.Create("ABC123", "", "bob@c.us", time.Now())
	req.NoError(err)
	_, _ = f.send("bob@c.us", "!menu")

	reply, _ := f.send(admin, "!stats")

	req.Equal(render.Stats(domain.Stats{
		BotName:          botName,
		AutoResponder:    true,
		PairedSessions:   1,
		EngagedAddresses: 2,
		Admin:            admin,
	}), reply.Text)
}

func TestDispatcher_Ask(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	f.generator.EXPECT().Generate(gomock.Any(), "what is go", ai.RoleDirectQuery).Return("A language.")

	reply, _ := f.send("alice@c.us", "!ai what is go")
	req.Equal(render.Answer("A language."), reply.Text)

	reply, _ = f.send("alice@c.us", "!ai")
	req.Equal(render.UsageAsk('!'), reply.Text)
}

func TestDispatcher_Translate(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	f.generator.EXPECT().Translate(gomock.Any(), "hello", "french").Return("bonjour")

	reply, _ := f.send("alice@c.us", "!translate hello french")
	req.Contains(reply.Text, "Translation to french")
	req.Contains(reply.Text, "bonjour")

	reply, _ = f.send("alice@c.us", "!translate french")
	req.Equal(render.UsageTranslate('!'), reply.Text)
}

func TestDispatcher_Translate_ThroughGateway(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("bonjour", nil)

	tests := []struct {
		name     string
		gateway  *ai.Gateway
		expected string
	}{
		{"configured", ai.NewGateway(slog.Default(), completer, botName, time.Second), "bonjour"},
		{"not configured", ai.NewGateway(slog.Default(), nil, botName, time.Second), ai.TranslateUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.acceptWelcomes()
			d := services.NewDispatcher(slog.Default(), services.Settings{BotName: botName, Prefix: '!'},
				f.sessions, f.engagement, f.features, tt.gateway, f.sender, f.queue)

			reply, ok := d.Dispatch(context.Background(), domain.NewInboundMessage("alice@c.us", "!translate hello french", ""))

			req.True(ok)
			req.Contains(reply.Text, tt.expected)
		})
	}
}

func TestDispatcher_FreeText(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	f.generator.EXPECT().Generate(gomock.Any(), "how are you?", ai.RoleAmbient).Return("Great!")

	// Given the auto-responder enabled
	reply, ok := f.send("alice@c.us", "how are you?")
	req.True(ok)
	req.Equal(render.Answer("Great!"), reply.Text)

	// Blank bodies stay unanswered
	_, ok = f.send("alice@c.us", "   ")
	req.False(ok)

	// Given the auto-responder disabled
	_, err := f.features.Toggle(admin)
	req.NoError(err)
	_, ok = f.send("alice@c.us", "still there?")
	req.False(ok)
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.acceptWelcomes()

	for _, body := range []string{"!dance", "!", "! menu"} {
		reply, ok := f.send("alice@c.us", body)
		req.True(ok)
		req.Equal(render.UnknownCommand('!'), reply.Text)
	}
}

func TestDispatcher_Menu(t *testing.T) {
	req := require.New(t)
	links := render.Links{Website: "https://example.org"}
	f := newFixtureWithSettings(t, services.Settings{BotName: botName, Prefix: '/', Links: links})
	f.acceptWelcomes()

	reply, ok := f.send("alice@c.us", "/menu")

	req.True(ok)
	req.Equal(domain.Address("alice@c.us"), reply.To)
	req.Equal(render.Menu(botName, '/', links, true), reply.Text)
	req.Contains(reply.Text, "https://example.org")
}
