package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	firstName string
	lastName  string
	club      string
	series    string
	leagueID  string
	retry     bool
	rosterFn  string
)

func init() {
	resolveCmd.Flags().StringVar(&firstName, "first", "", "First name of the player")
	resolveCmd.Flags().StringVar(&lastName, "last", "", "Last name of the player")
	resolveCmd.Flags().StringVar(&club, "club", "", "Club the player belongs to")
	resolveCmd.Flags().StringVar(&series, "series", "", "Raw series label from the league site")
	resolveCmd.Flags().StringVar(&leagueID, "league", "APTA_CHICAGO", "League identifier")
	resolveCmd.Flags().BoolVar(&retry, "retry", false, "Mark this resolution as a retry")
	resolveCmd.MarkFlagRequired("last")

	importCmd.Flags().StringVar(&rosterFn, "file", "", "Path to a roster snapshot JSON file")
	importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a roster entry against the player directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := map[string]string{
			"first_name": firstName,
			"last_name":  lastName,
			"club":       club,
			"series":     series,
			"league_id":  leagueID,
		}
		endpoint := "/resolve"
		if retry {
			endpoint = "/resolve/retry"
		}
		body, err := json.Marshal(query)
		if err != nil {
			return fmt.Errorf("failed to encode query: %w", err)
		}
		return performPostRequest(endpoint, body)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a roster snapshot into the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(rosterFn)
		if err != nil {
			return fmt.Errorf("failed to read roster file: %w", err)
		}
		return performPostRequest("/import", body)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get lifetime resolution stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the player directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/clear", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, body []byte) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
