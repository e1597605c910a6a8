package main

import (
	"chatroom/domain/event"
	grpc2 "chatroom/grpc"
	"chatroom/internal"
	"chatroom/moderation"
	"chatroom/observability"
	"chatroom/repositories"
	"chatroom/runtime"
	"chatroom/runtime/workers"
	"chatroom/sink"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chatroom terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (database, workers, timers) on the way out, which os.Exit would skip.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Censored words & filter
	words, err := loadWords(log, config.CensoredWordsFile)
	if err != nil {
		return exitConfig, fmt.Errorf("censored words: %w", err)
	}
	filter, err := moderation.NewModerator(words, charReplacement, config.NormalizeObfuscation)
	if err != nil {
		return exitConfig, err
	}

	// 3. Database (BadgerDB) for the moderation audit log
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 4. Room & moderation
	events := make(chan event.DomainEvent, config.EventBufferSize)
	registry := runtime.NewRegistry()
	room, err := runtime.NewChatroom(log, registry, filter, config.DeliveryTimeout, events)
	if err != nil {
		return exitConfig, err
	}
	controller := runtime.NewModerationController(log, room, config.MuteUnit)
	defer controller.Stop()

	// 5. Supervision
	stats := sink.NewStatsSink(log)
	audit := sink.NewAuditSink(repositories.NewModerationRepository(db, log))
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewEventFanout(log, events, config.SinkTimeout, audit, sink.NewMetricsSink(), stats),
		workers.NewChannelCapacityWorker(log, []workers.NamedChannel{{Name: "events", Channel: events}}, config.MetricInterval),
		workers.NewHeartbeatWorker(log, config.MetricInterval),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// 6. Metrics endpoint
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.MetricsPort),
		Handler:           metricsMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting metrics server", "address", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	// 7. gRPC Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer()
	grpc2.RegisterChatroomServer(s, grpc2.NewChatServer(log, room, controller, config.Admins(), config.ConnectionBufferSize))
	go func() {
		log.Info("Starting gRPC server", "address", address, "admins", config.Admins(), "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code, runErr := exitOK, error(nil)
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 9. Final Cleanup: streams only end once their participant is out of the room
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	room.Close(shutdownCtx)
	stopGRPC(log, s, 5*time.Second)
	_ = metricsServer.Shutdown(shutdownCtx)
	sup.Stop()
	<-supervisorDone
	log.Info("Program stopped cleanly", "stats", stats.Summary())

	return code, runErr
}

// stopGRPC lets the open streams finish, then cuts them after timeout.
func stopGRPC(log *slog.Logger, s *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeout):
		log.Warn("Streams still open, forcing gRPC shutdown", "timeout", timeout)
		s.Stop()
		<-stopped
	}
}

// loadWords reads the word list at path, or every embedded list when path is empty.
func loadWords(log *slog.Logger, path string) ([]string, error) {
	loader, dir := runtime.NewEmbeddedWordLoader(), "censored"
	if path != "" {
		loader = runtime.NewWordLoader(os.DirFS(filepath.Dir(path)))
		words, err := loader.Load(filepath.Base(path))
		if err != nil {
			return nil, err
		}
		log.Info("Censored words loaded", "file", path, "count", len(words))
		return words, nil
	}
	data, err := loader.LoadAll(dir)
	if err != nil {
		return nil, err
	}
	log.Info("Censored words loaded", "languages", data.Languages, "count", len(data.Words))
	return data.Words, nil
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	return mux
}
