package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/database"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/spf13/cobra"
)

var (
	outPath   string
	dbPath    string
	players   int
	weeks     int
	perWeek   int
	seed      uint64
	startDate string
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Generate a random padel match log",
	Long: `Generates weekly padel match days with random rosters and valid set scores.
The log is written to --out, and with --db also upserted into the match store
(TURSO_PRIMARY_URL and TURSO_AUTH_TOKEN select a remote database).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(padel.DateLayout, startDate)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		if players < 2 {
			return fmt.Errorf("need at least 2 players, got %d", players)
		}

		g := newGenerator(seed)
		matches := g.matches(g.players(players), start, weeks, perWeek)
		log.Info("Generated matches", "count", len(matches), "players", players, "weeks", weeks)

		if outPath != "" {
			if err := writeLog(outPath, matches); err != nil {
				return err
			}
			log.Info("Wrote match log", "path", outPath)
		}
		if dbPath != "" {
			if err := seedStore(cmd.Context(), dbPath, matches); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "data/matches.json", "The match log to write (.json or .yaml); empty to skip")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Also upsert the matches into this SQLite database")
	rootCmd.Flags().IntVar(&players, "players", 12, "Number of distinct players")
	rootCmd.Flags().IntVar(&weeks, "weeks", 8, "Number of weekly match days")
	rootCmd.Flags().IntVar(&perWeek, "per-week", 6, "Matches per match day")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 picks a random one")
	rootCmd.Flags().StringVar(&startDate, "start", time.Now().AddDate(0, 0, -56).Format(padel.DateLayout), "Date of the first match day")
}

func writeLog(path string, matches []padel.Match) error {
	data, err := padel.Encode(matches, padel.FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func seedStore(ctx context.Context, path string, matches []padel.Match) error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	db, teardown, err := database.InitDB(path, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()

	store := club.New(db)
	startTime := time.Now()
	if err := store.UpsertMatches(ctx, matches); err != nil {
		return err
	}
	count, err := store.CountMatches(ctx)
	if err != nil {
		return err
	}
	log.Info("Seeded match store", "inserted", len(matches), "total", count, "duration", time.Since(startTime))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Seeding failed: %s", err)
	}
}
