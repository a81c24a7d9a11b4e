package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	importDays int
	dryRun     bool
)

func init() {
	importCmd.Flags().IntVar(&importDays, "days", 1, "Import matches played in the last N days")
	publishCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the message without posting it")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(publishCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/metrics")
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import recent Playtomic matches into the match store",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{"days": {strconv.Itoa(importDays)}}
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/import?"+query.Encode())
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Post the current leaderboard to the Slack channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{"dry_run": {strconv.FormatBool(dryRun)}}
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/slack/publish?"+query.Encode())
	},
}

func performRequest(out io.Writer, method, endpoint string) error {
	url := host + endpoint
	fmt.Fprintf(out, "Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintln(out, "Response Body:")
	fmt.Fprintln(out, string(body))

	return nil
}
