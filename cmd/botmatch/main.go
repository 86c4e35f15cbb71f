package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ethancd/deevgames/internal/bot"
	"github.com/ethancd/deevgames/internal/config"
	"github.com/ethancd/deevgames/internal/logger"
	"github.com/ethancd/deevgames/internal/repository"
	"github.com/ethancd/deevgames/internal/repository/postgres"
	"github.com/ethancd/deevgames/internal/repository/redis"
	"github.com/ethancd/deevgames/pkg/tactics"
)

func main() {
	var (
		configDir string
		matchup   string
		numGames  int
		workers   int
		dbURL     string
		redisURL  string
		maxTurns  int
		seed      int64
		dryRun    bool
		jsonOut   bool
	)

	flag.StringVar(&configDir, "config", ".", "Directory containing an optional tactics.{json,yaml,toml}")
	flag.StringVar(&matchup, "matchup", "hard-vs-easy", "Pairing as <player1>-vs-<player2> (easy, medium, hard)")
	flag.IntVar(&numGames, "n", 1, "Number of games to run")
	flag.IntVar(&workers, "workers", 0, "Concurrency (parallel games, 0 = config)")
	flag.StringVar(&dbURL, "db", "", "Database URL (or use DATABASE_URL env)")
	flag.StringVar(&redisURL, "redis", "", "Redis URL (or use REDIS_URL env)")
	flag.IntVar(&maxTurns, "max-turns", 0, "Rounds before a draw (0 = config)")
	flag.Int64Var(&seed, "seed", 0, "Base seed (0 = config, then random)")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip database and scoreboard writes")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")

	flag.Parse()

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botmatch: %v\n", err)
		os.Exit(2)
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Dev: cfg.Dev, File: cfg.LogFile, Out: os.Stderr})

	p1, p2, err := bot.ParseMatchup(matchup)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid matchup")
	}
	if workers <= 0 {
		workers = cfg.Arena.Workers
	}
	if maxTurns <= 0 {
		maxTurns = cfg.Arena.MaxTurns
	}
	if seed == 0 {
		seed = cfg.Arena.Seed
	}
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}
	if redisURL == "" {
		redisURL = cfg.RedisURL
	}

	budgets := make(map[string]bot.Budget)
	for _, d := range []string{bot.DifficultyEasy, bot.DifficultyMedium, bot.DifficultyHard} {
		s := cfg.SearchFor(d)
		budgets[d] = bot.Budget{Depth: s.Depth, TimeLimit: s.TimeLimit}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var recorder repository.MultiRecorder
	var scores *redis.Scoreboard
	if !dryRun {
		db, err := postgres.Connect(ctx, dbURL, workers)
		if err != nil {
			log.Fatal().Err(err).Msg("Database connection failed")
		}
		defer db.Close()

		scores, err = redis.Connect(ctx, redisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		defer scores.Close()

		recorder = repository.MultiRecorder{postgres.NewMatchRepo(db), scores}
	}

	// Run games
	results := make([]*bot.ArenaResult, numGames)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0
	start := time.Now()

	for i := 0; i < numGames; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			gameSeed := seed
			if seed != 0 {
				gameSeed = seed + int64(idx)*2
			}

			arenaCfg := bot.ArenaConfig{
				PlayerOne: p1,
				PlayerTwo: p2,
				MaxTurns:  maxTurns,
				Seed:      gameSeed,
				Budgets:   budgets,
			}

			var rec repository.MatchRecorder
			if recorder != nil {
				rec = recorder
			}
			result, err := bot.RunMatch(ctx, arenaCfg, rec)
			if err != nil {
				log.Error().Err(err).Int("game", idx+1).Msg("Game failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				if result == nil {
					return
				}
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().
				Int("game", idx+1).
				Str("matchId", result.MatchID).
				Str("winner", string(result.Winner)).
				Int("turns", result.Turns).
				Int("actions", result.Actions).
				Msg("Game completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, numGames, errCount)
		return
	}
	printSummary(results, p1, p2, maxTurns, errCount, time.Since(start))
	if scores != nil {
		printScoreboard(ctx, scores, p1, p2)
	}
}

func printSummary(results []*bot.ArenaResult, p1, p2 string, maxTurns, errCount int, elapsed time.Duration) {
	var wins1, wins2, draws, completed, totalTurns, forced int
	for _, r := range results {
		if r == nil {
			continue
		}
		completed++
		totalTurns += r.Turns
		forced += r.ForcedEnds
		switch r.Winner {
		case tactics.PlayerOne:
			wins1++
		case tactics.PlayerTwo:
			wins2++
		default:
			draws++
		}
	}

	fmt.Printf("\nResults (%d games, max %d rounds, %s):\n", completed, maxTurns, elapsed.Round(time.Millisecond))
	if errCount > 0 {
		fmt.Printf("  (%d games failed)\n", errCount)
	}
	fmt.Printf("  %-8s (%s):  %d wins\n", tactics.PlayerOne, p1, wins1)
	fmt.Printf("  %-8s (%s):  %d wins\n", tactics.PlayerTwo, p2, wins2)
	fmt.Printf("  draws:  %d\n", draws)
	if completed > 0 {
		fmt.Printf("  avg rounds: %.1f, forced turn ends: %d\n", float64(totalTurns)/float64(completed), forced)
	}
}

func printScoreboard(ctx context.Context, scores *redis.Scoreboard, p1, p2 string) {
	t, err := scores.Tally(ctx, p1, p2)
	if err != nil {
		log.Warn().Err(err).Msg("Could not read scoreboard")
		return
	}
	fmt.Printf("\nAll-time %s: %d games, %d-%d, %d draws\n", t.Matchup, t.Games, t.PlayerOne, t.PlayerTwo, t.Draws)
}

func printJSON(results []*bot.ArenaResult, total, errCount int) {
	out := struct {
		Total   int                `json:"total"`
		Errors  int                `json:"errors"`
		Results []*bot.ArenaResult `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
