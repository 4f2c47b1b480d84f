package main

import (
	"bot-lab/ai"
	"bot-lab/auth"
	"bot-lab/contract"
	"bot-lab/infrastructure/grpc/server"
	"bot-lab/infrastructure/httpserver"
	"bot-lab/infrastructure/transport"
	"bot-lab/internal"
	"bot-lab/moderation"
	"bot-lab/observability"
	"bot-lab/projection"
	"bot-lab/render"
	"bot-lab/runtime"
	"bot-lab/runtime/workers"
	"bot-lab/services"
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Deferred cleanups always run before the process exits.
func run() (int, error) {
	startedAt := time.Now()

	// 1. Configuration & Logger
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	prefix, _ := config.Prefix()
	charReplacement, _ := internal.CharacterRune(config.CharReplacement)

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Generation gateway
	generator, err := buildGateway(config, charReplacement, logger)
	if err != nil {
		return exitRuntime, err
	}

	// 3. Transport
	var transportOpts []transport.Option
	if config.TransportSecret != "" {
		transportOpts = append(transportOpts,
			transport.WithTokenValidator(auth.NewTokenIssuer(config.TransportSecret, config.TransportTokenTTL)))
	}
	gateway := transport.NewGateway(logger, config.BufferSize, transportOpts...)

	// 4. Shared state, supervision & dispatch
	links := render.Links{Website: config.WebsiteURL, Audiomack: config.AudiomackURL}
	sessions := runtime.NewSessionRegistry(logger, gateway, config.BotName,
		config.DeliveryTimeout, config.RebindOnRestore)
	engagement := runtime.NewEngagementTracker()
	features := runtime.NewFeatureState(config.Admin(), config.AutoResponder)

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, gateway,
		config.NumberOfWorkers, config.BufferSize, config.DeliveryTimeout, config.MetricInterval)

	dispatcher := services.NewDispatcher(logger, services.Settings{
		BotName:         config.BotName,
		Prefix:          prefix,
		Links:           links,
		PairRetries:     config.PairRetries,
		DeliveryTimeout: config.DeliveryTimeout,
	}, sessions, engagement, features, generator, gateway, orchestrator)

	// 5. Status endpoint
	processStats, err := observability.NewProcessStats(startedAt)
	if err != nil {
		return exitRuntime, fmt.Errorf("process stats unavailable: %w", err)
	}
	status := projection.NewStatus(logger, config.BotName, gateway, sessions, engagement,
		features, generator, processStats)
	statusServer := httpserver.NewStatusServer(logger, status, links, gateway)

	// Binding failures are fatal: the bot never runs half-initialized.
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	var healthServer *server.HealthServer
	var healthListener net.Listener
	if config.GrpcHealthPort > 0 {
		healthAddress := fmt.Sprintf("%s:%d", config.Host, config.GrpcHealthPort)
		healthListener, err = net.Listen("tcp", healthAddress)
		if err != nil {
			_ = listener.Close()
			return exitRuntime, fmt.Errorf("failed to listen on %s: %w", healthAddress, err)
		}
		healthServer = server.NewHealthServer(logger)
		orchestrator.Add(workers.NewReadinessWorker(gateway, healthServer, config.HealthInterval, logger))
	}

	// 6. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 3)

	// 7. Start the engine and the servers
	go func() {
		if err := orchestrator.Start(ctx, dispatcher); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	go func() {
		if err := statusServer.Serve(listener); err != nil {
			errChan <- fmt.Errorf("status server error: %w", err)
		}
	}()
	gateway.Open()

	if healthServer != nil {
		go func() {
			logger.Info("Starting gRPC health server", "address", healthListener.Addr().String())
			if err := healthServer.Serve(healthListener); err != nil {
				errChan <- fmt.Errorf("gRPC health server error: %w", err)
			}
		}()
	}

	logBanner(logger, config, listener.Addr().String(), generator.Configured(), features.Enabled())

	// 8. Wait for Stop or Error
	// The execution blocks here until either a signal is received or a server crashes.
	code := exitOK
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-errChan:
		logger.Error("Fatal runtime error", "err", err)
		code = exitRuntime
	}

	// 9. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	gateway.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := statusServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("Status server shutdown", "err", shutdownErr)
	}
	if healthServer != nil {
		healthServer.Stop()
	}
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return code, err
}

// buildGateway wires the completion service when a credential is present.
// No credential is a valid state: every generation answers with the unavailable text.
func buildGateway(config internal.Config, charReplacement rune, logger *slog.Logger) (*ai.Gateway, error) {
	var completer contract.Completer
	if config.GenerationConfigured() {
		completer = ai.NewOpenAICompleter(config.OpenAIAPIKey, config.OpenAIBaseURL, config.OpenAIModel)
	}

	var opts []ai.Option
	if config.ModerationEnabled {
		data, err := moderation.NewEmbeddedLoader().LoadAll("censored")
		if err != nil {
			return nil, fmt.Errorf("censored words loading failed: %w", err)
		}
		logger.Info(fmt.Sprintf("%d censored files loaded [%s]",
			len(data.Languages), strings.Join(data.Languages, ",")))
		logger.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

		moderator, err := moderation.NewModerator(data.Words, charReplacement, logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ai.WithModerator(moderator))
	}

	return ai.NewGateway(logger, completer, config.BotName, config.GenerationTimeout, opts...), nil
}

func logBanner(logger *slog.Logger, config internal.Config, address string, aiConfigured, autoResponder bool) {
	logger.Info(fmt.Sprintf("🎵 %s started", config.BotName),
		"address", address,
		"health", fmt.Sprintf("http://%s/health", address),
		"websocket", fmt.Sprintf("ws://%s/ws", address),
		"openai_configured", aiConfigured,
		"auto_responder", render.OnOff(autoResponder),
		"admin", config.Admin().Display(),
		"workers", config.NumberOfWorkers,
	)
}
