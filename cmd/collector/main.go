package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/replaybridge/internal/config"
	"github.com/mitchelldurbincs/replaybridge/internal/driver"
	"github.com/mitchelldurbincs/replaybridge/internal/grpc/replayclient"
	"github.com/mitchelldurbincs/replaybridge/internal/observer"
)

// collector runs a counting environment with a random policy and bridges
// the resulting step stream into a replay server's tables. It is the
// smallest end-to-end exercise of the write path.
func main() {
	configPath := flag.String("config", "", "Path to config file")
	serverAddr := flag.String("server", "", "Replay server address (empty to use config default)")
	maxSteps := flag.Int("max-steps", -1, "Environment steps to collect (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Policy RNG seed (0 for time-based)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *serverAddr == "" {
		*serverAddr = cfg.Collector.ServerAddress
	}
	if *maxSteps == -1 {
		*maxSteps = cfg.Collector.MaxSteps
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	log.Info().
		Str("server", *serverAddr).
		Int("max_steps", *maxSteps).
		Int64("seed", *seed).
		Msg("Starting collector")

	ctx := context.Background()

	client, err := replayclient.Dial(ctx, *serverAddr, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to replay server")
	}
	defer client.Close()

	// Assemble observers from config
	var observers []driver.Observer

	if cfg.Collector.TrajectoryTable != "" {
		trajObs, err := observer.NewTrajectoryObserver(ctx, client, []observer.TableEntry{
			{
				Table:          cfg.Collector.TrajectoryTable,
				SequenceLength: cfg.Collector.SequenceLength,
				Stride:         cfg.Collector.Stride,
			},
		}, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create trajectory observer")
		}
		defer trajObs.Close()
		observers = append(observers, trajObs)
	}

	if cfg.Collector.EpisodeTable != "" {
		// Episodes append one boundary step beyond their transitions
		epObs, err := observer.NewEpisodeObserver(ctx, client,
			cfg.Collector.EpisodeTable,
			cfg.Collector.StepsPerEpisode+1,
			cfg.Collector.EpisodePriority,
			log.Logger,
			observer.WithBypassPartialEpisodes(),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create episode observer")
		}
		defer epObs.Close()
		observers = append(observers, epObs)
	}

	if len(observers) == 0 {
		log.Fatal().Msg("No tables configured for collection")
	}

	env := driver.NewCountingEnv(cfg.Collector.StepsPerEpisode)
	policy := driver.NewRandomPolicy(cfg.Collector.NumActions, rand.New(rand.NewSource(*seed)))

	d := driver.New(env, policy, observers, driver.Config{MaxSteps: *maxSteps}, log.Logger)

	steps, episodes, err := d.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Collection run failed")
	}

	log.Info().
		Int("steps", steps).
		Int("episodes", episodes).
		Msg("Collection complete")

	// Report table state
	for _, name := range []string{cfg.Collector.TrajectoryTable, cfg.Collector.EpisodeTable} {
		if name == "" {
			continue
		}
		info, err := client.TableInfo(ctx, name)
		if err != nil {
			log.Error().Err(err).Str("table", name).Msg("Failed to fetch table info")
			continue
		}
		log.Info().
			Str("table", info.Name).
			Int64("current_size", info.CurrentSize).
			Int64("total_inserted", info.TotalInserted).
			Msg("Table state")
	}
}
