package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/export"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/source"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	matchesFile  string
	previousFile string
	noHistory    bool
	exportOut    string
	showLimit    int
)

func init() {
	for _, cmd := range []*cobra.Command{standingsCmd, teamsCmd, playerCmd, resultsCmd, exportCmd} {
		cmd.Flags().StringVar(&matchesFile, "file", "data/matches.json", "The match log to read (.json or .yaml)")
		cmd.Flags().StringVar(&previousFile, "previous", "", "A saved earlier match log to compute trends against; defaults to the log without its latest match day")
		cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not compute trends")
		rootCmd.AddCommand(cmd)
	}
	standingsCmd.Flags().IntVar(&showLimit, "limit", 0, "Only show the top N players")
	exportCmd.Flags().StringVar(&exportOut, "out", "standings.xlsx", "The workbook to write")
}

// newLocalService computes standings straight from files, without a server.
func newLocalService() *standings.Service {
	log.SetLevel(log.WarnLevel)
	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	current := source.NewFileSource(matchesFile)

	var opts []standings.Option
	switch {
	case noHistory:
	case previousFile != "":
		opts = append(opts, standings.WithHistory(source.NewSnapshotFile(previousFile)))
	default:
		opts = append(opts, standings.WithHistory(source.NewDateCutoff(current)))
	}
	return standings.NewService(current, metricsSvc, opts...)
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the player leaderboard with trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newLocalService().Standings(cmd.Context())
		if err != nil {
			return err
		}
		players := report.Players
		if showLimit > 0 && len(players) > showLimit {
			players = players[:showLimit]
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderPlayers(players))
		fmt.Fprintln(cmd.OutOrStdout(), standings.ScoringLegend())
		if report.Skipped > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d malformed match records were left out.\n", report.Skipped)
		}
		return nil
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Print the team leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newLocalService().Standings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTeams(report.Teams))
		return nil
	},
}

var playerCmd = &cobra.Command{
	Use:   "player NAME",
	Short: "Print one player's standing and match history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := newLocalService().Matches(cmd.Context())
		if err != nil {
			return err
		}
		profile, err := standings.PlayerProfile(matches, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderProfile(profile))
		return nil
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print match results grouped by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := newLocalService().Matches(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderResults(standings.GroupByDate(matches)))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the player and team leaderboards to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newLocalService().Standings(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer f.Close()

		if err := export.WriteStandings(f, report.Players, report.Teams); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d players and %d teams to %s\n", len(report.Players), len(report.Teams), exportOut)
		return nil
	},
}
