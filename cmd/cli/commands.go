package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	teamFilter   string
	nameFilter   string
	searchFilter string
	csvFile      string
	dryRun       bool
)

func init() {
	playersCmd.Flags().StringVar(&teamFilter, "team", "", "Only players on this team")
	playersCmd.Flags().StringVar(&nameFilter, "name", "", "Only players whose name contains this text")
	playersCmd.Flags().StringVar(&searchFilter, "search", "", "Players whose name or team contains this text")
	uploadCmd.Flags().StringVar(&csvFile, "file", "", "Upload this CSV file instead of importing the server's bundled stats")
	deleteCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the delete without applying it")
	refreshCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the refresh without sending notifications")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(oddsCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Import player stats from the bundled CSV or a local file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvFile == "" {
			return performRequest(http.MethodPost, "/api/v1/player/upload", "", nil)
		}
		data, err := os.ReadFile(csvFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", csvFile, err)
		}
		return performRequest(http.MethodPost, "/api/v1/player/upload", "text/csv", data)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players, optionally filtered by team or name",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if teamFilter != "" {
			q.Set("team", teamFilter)
		}
		if nameFilter != "" {
			q.Set("name", nameFilter)
		}
		if searchFilter != "" {
			q.Set("searchText", searchFilter)
		}
		endpoint := "/api/v1/player"
		if len(q) > 0 {
			endpoint += "?" + q.Encode()
		}
		return performGetRequest(endpoint)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search players by name or team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/v1/player/search?" + url.Values{"name": {args[0]}}.Encode())
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <name>",
	Short: "Generate a fantasy profile for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/v1/player/" + url.PathEscape(args[0]) + "/summary")
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict <playerA> <playerB>",
	Short: "Generate a matchup preview for two players",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{"playerA": args[0], "playerB": args[1]})
		if err != nil {
			return err
		}
		return performRequest(http.MethodPost, "/api/v1/player/predict", "application/json", body)
	},
}

var oddsCmd = &cobra.Command{
	Use:   "odds <playerA> <playerB>",
	Short: "Show the moneyline odds for two players",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/v1/player/odds?" + url.Values{"playerA": {args[0]}, "playerB": {args[1]}}.Encode())
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/api/v1/player/"+url.PathEscape(args[0])+dryRunQuery(), "", nil)
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run the stats refresh now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/debug/run-script" + dryRunQuery())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func dryRunQuery() string {
	if dryRun {
		return "?dry_run=true"
	}
	return ""
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, "", nil)
}

func performRequest(method, endpoint, contentType string, body []byte) error {
	target := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
