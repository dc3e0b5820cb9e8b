// Package cli provides the command-line interface for Being Buddy.
package cli

import (
	"fmt"
	"os"

	"github.com/raphaelgruber/beingbuddy-go/internal/client"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "1.0.0"

	// Global flags
	verbose   bool
	serverURL string
	userID    string

	// Shared API client, initialized before any command runs.
	apiClient *client.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "buddy",
	Short: "Conversational wellbeing assistant",
	Long: `Buddy is a conversational wellbeing companion. Share how your day went and
it replies with empathy, keeps a diary of your reflections, and tracks your
mood over time.

All commands talk to a running buddy-server (see BUDDY_SERVER_URL).`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		apiClient = client.New(serverURL)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (default BUDDY_SERVER_URL or http://localhost:8000)")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "default", "user id for diary and mood tracking")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(exportCmd)
}
