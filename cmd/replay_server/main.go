package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/mitchelldurbincs/replaybridge/internal/config"
	"github.com/mitchelldurbincs/replaybridge/internal/grpc/replayserver"
	"github.com/mitchelldurbincs/replaybridge/internal/monitoring"
	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", -1, "The server port (-1 to use config default)")
	host := flag.String("host", "", "The server host (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	enableReflection := flag.Bool("enable-reflection", false, "Enable gRPC reflection for debugging")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *port == -1 {
		*port = cfg.Server.Port
	}
	if *host == "" {
		*host = cfg.Server.Host
	}
	if *logLevel == "" {
		*logLevel = cfg.Server.LogLevel
	}
	// For enableReflection, use config if flag not explicitly set to true
	if !*enableReflection {
		*enableReflection = cfg.Server.EnableReflection
	}

	// Setup logging
	setupLogging(*logLevel, cfg.Server.LogFormat)

	log.Info().
		Int("port", *port).
		Str("host", *host).
		Int("tables", len(cfg.Tables)).
		Msg("Starting replay server")

	// Build tables from config
	registry, err := buildRegistry(cfg.Tables)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build tables")
	}

	// Create listener
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", *host, *port))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to listen")
	}

	// Create gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			loggingInterceptor,
			recoveryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			streamLoggingInterceptor,
			streamRecoveryInterceptor,
		),
	}

	grpcServer := grpc.NewServer(opts...)

	// Register replay service
	replayService := replayserver.NewServer(registry, log.Logger)
	replayv1.RegisterReplayServiceServer(grpcServer, replayService)

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	// Set health status
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(replayv1.ReplayService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	// Register reflection service for debugging
	if *enableReflection {
		reflection.Register(grpcServer)
		log.Info().Msg("gRPC reflection enabled")
	}

	// Watch goroutine counts; abandoned blocking samplers show up here
	monitor := monitoring.NewGoroutineMonitor()
	monitor.Start()
	defer monitor.Stop()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		// Set health status to NOT_SERVING
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus(replayv1.ReplayService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

		// Give ongoing requests time to complete
		time.Sleep(time.Duration(cfg.Server.GracefulShutdownDelay) * time.Second)

		// Unblock pending samplers before stopping the transport
		if err := registry.CloseAll(); err != nil {
			log.Error().Err(err).Msg("Failed to close tables")
		}

		log.Info().Msg("Gracefully stopping gRPC server")
		grpcServer.GracefulStop()
		cancel()
	}()

	// Start server
	log.Info().Str("address", lis.Addr().String()).Msg("Replay server listening")

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve")
		}
	}()

	// Wait for shutdown
	<-ctx.Done()
	log.Info().Msg("Server shutdown complete")
}

// buildRegistry constructs the configured tables.
func buildRegistry(tables []config.TableConfig) (*table.Registry, error) {
	registry := table.NewRegistry(log.Logger)

	for _, tc := range tables {
		var t *table.Table
		switch tc.Kind {
		case "queue":
			t = table.NewQueue(tc.Name, tc.MaxSize, log.Logger)
		case "uniform":
			t = table.New(table.Config{
				Name:            tc.Name,
				Sampler:         table.NewUniformSelector(),
				Remover:         table.NewFifoSelector(),
				MaxSize:         tc.MaxSize,
				MaxTimesSampled: tc.MaxTimesSampled,
				RateLimiter:     table.NewMinSizeLimiter(tc.MinSizeToSample),
				Logger:          log.Logger,
			})
		case "prioritized":
			exponent := tc.PriorityExponent
			if exponent == 0 {
				exponent = 1.0
			}
			t = table.New(table.Config{
				Name:            tc.Name,
				Sampler:         table.NewPrioritizedSelector(exponent),
				Remover:         table.NewFifoSelector(),
				MaxSize:         tc.MaxSize,
				MaxTimesSampled: tc.MaxTimesSampled,
				RateLimiter:     table.NewMinSizeLimiter(tc.MinSizeToSample),
				Logger:          log.Logger,
			})
		default:
			return nil, fmt.Errorf("unknown table kind %q for table %s", tc.Kind, tc.Name)
		}

		if err := registry.Register(t); err != nil {
			return nil, err
		}

		log.Info().
			Str("table", tc.Name).
			Str("kind", tc.Kind).
			Int("max_size", tc.MaxSize).
			Msg("Registered table")
	}

	return registry, nil
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}

// loggingInterceptor logs all unary RPC calls
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := codes.OK
	if err != nil {
		code = status.Code(err)
	}

	log.Debug().
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("Unary RPC")

	return resp, err
}

// recoveryInterceptor converts panics in handlers into Internal errors
func recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("method", info.FullMethod).
				Msg("Recovered from panic in unary handler")
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}

// streamLoggingInterceptor logs all streaming RPC calls
func streamLoggingInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()

	err := handler(srv, ss)

	code := codes.OK
	if err != nil {
		code = status.Code(err)
	}

	log.Debug().
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("Stream RPC")

	return err
}

// streamRecoveryInterceptor converts panics in stream handlers into Internal errors
func streamRecoveryInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("method", info.FullMethod).
				Msg("Recovered from panic in stream handler")
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()
	return handler(srv, ss)
}
