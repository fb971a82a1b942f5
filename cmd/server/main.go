package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"turn-chat/domain"
	"turn-chat/internal"
	"turn-chat/moderation"
	"turn-chat/observability"
	"turn-chat/runtime"
	"turn-chat/sink"
)

// Exit codes to provide meaningful status to the operating system or service manager.
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
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, serves one session, and centralizes
// error reporting so deferred cleanup always executes before exit.
func run() (int, error) {
	_ = godotenv.Load()

	cfg, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}

	starter, err := domain.ParseParticipant(cfg.StartingDept)
	if err != nil {
		return exitConfig, err
	}

	replacement, err := internal.CharacterRune(cfg.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(cfg.LogLevel)

	moderator, err := moderation.NewModerator(cfg.Words(), replacement)
	if err != nil {
		return exitConfig, fmt.Errorf("moderation setup failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return exitRuntime, fmt.Errorf("cannot bind %s: %w", cfg.Addr(), err)
	}
	defer func() { _ = ln.Close() }()

	// Closing the listener unblocks the accept loop when a signal arrives
	// before both participants have connected.
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	logger.Info("Listening", "addr", cfg.Addr(), "starter", starter)

	monitor := observability.NewMonitor(logger)
	engine := runtime.NewEngine(
		logger, starter, moderator, monitor, cfg.MetricInterval, os.Stdout,
		sink.NewTimeline(), sink.NewAnalysis(logger),
	)

	if err := engine.Serve(ctx, ln); err != nil {
		if ctx.Err() != nil {
			logger.Info("Shutdown requested, exiting")
			return exitOK, nil
		}
		return exitRuntime, err
	}
	return exitOK, nil
}
