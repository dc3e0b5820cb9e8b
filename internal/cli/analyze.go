package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <message>",
	Short: "Analyze a message and save a diary entry",
	Long: `Run the full analysis pipeline on a message: classify its mood, derive a
diary summary, persist the entry and print the assembled event.

Examples:
  buddy analyze "I aced my exam and I'm so happy about it"
  buddy analyze "Work was stressful again" --user alice`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	ctx := context.Background()

	resp, err := apiClient.Analyze(ctx, message, userID)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	fmt.Printf("%s  (%s)\n\n", resp.Title, resp.Time)
	fmt.Println(resp.Description)
	if resp.MoodLabel != "" {
		fmt.Printf("\nMood: %s", resp.MoodLabel)
		if resp.SentimentScore != nil {
			fmt.Printf(" (score %.2f)", *resp.SentimentScore)
		}
		fmt.Println()
	}
	if resp.AgentResponse != "" {
		fmt.Printf("\nBuddy says:\n%s\n", resp.AgentResponse)
	}
	if verbose {
		fmt.Printf("\n(entry %s saved at %s)\n", resp.EntryID, resp.Timestamp)
	}
	return nil
}
