package main

import (
	"context"
	"log"
	"net"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/mitchelldurbincs/replaybridge/internal/grpc/replayclient"
	"github.com/mitchelldurbincs/replaybridge/internal/grpc/replayserver"
	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	"github.com/mitchelldurbincs/replaybridge/internal/testutil"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

func main() {
	// Set up logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Create tables
	registry := table.NewRegistry(zlog.Logger)
	if err := registry.Register(table.NewQueue("queue", 100, zlog.Logger)); err != nil {
		log.Fatalf("Failed to register table: %v", err)
	}
	if err := registry.Register(table.New(table.Config{
		Name:        "training",
		Sampler:     table.NewUniformSelector(),
		Remover:     table.NewFifoSelector(),
		MaxSize:     10000,
		RateLimiter: table.NewMinSizeLimiter(10),
		Logger:      zlog.Logger,
	})); err != nil {
		log.Fatalf("Failed to register table: %v", err)
	}

	// Create gRPC server
	lis, err := net.Listen("tcp", ":50052")
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	replayv1.RegisterReplayServiceServer(grpcServer, replayserver.NewServer(registry, zlog.Logger))

	// Start server in background
	go func() {
		log.Printf("Starting gRPC server on :50052")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Give server time to start
	time.Sleep(1 * time.Second)

	// Generate some test items
	go func() {
		client, err := replayclient.Dial(context.Background(), "localhost:50052", zlog.Logger)
		if err != nil {
			log.Fatalf("Failed to dial: %v", err)
		}
		defer client.Close()

		w, err := client.NewWriter(context.Background(), 4)
		if err != nil {
			log.Fatalf("Failed to open writer: %v", err)
		}
		defer w.Close()

		log.Printf("Starting to generate test items")

		for i := 0; i < 1000; i++ {
			if err := w.Append(testutil.ScalarStep(float32(i))); err != nil {
				log.Printf("Error appending step: %v", err)
				continue
			}
			if i >= 3 {
				if err := w.CreateItem("training", 4, 1.0); err != nil {
					log.Printf("Error creating item: %v", err)
				}
			}

			if i%100 == 0 {
				log.Printf("Generated %d steps", i)
			}

			time.Sleep(10 * time.Millisecond)
		}

		log.Printf("Finished generating items")
	}()

	// Sample in the background once the table fills
	go func() {
		client, err := replayclient.Dial(context.Background(), "localhost:50052", zlog.Logger)
		if err != nil {
			log.Fatalf("Failed to dial: %v", err)
		}
		defer client.Close()

		for {
			items, err := client.Sample(context.Background(), "training", 10)
			if err != nil {
				log.Printf("Error sampling: %v", err)
				return
			}
			log.Printf("Sampled %d items", len(items))
			time.Sleep(5 * time.Second)
		}
	}()

	// Run for a while
	log.Printf("Server running. Press Ctrl+C to stop...")

	// Keep running
	ctx := context.Background()
	<-ctx.Done()
}
