package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List saved diary entries",
	Long: `List the diary entries persisted for a user, oldest first.

Examples:
  buddy entries
  buddy entries --user alice`,
	Args: cobra.NoArgs,
	RunE: runEntries,
}

func runEntries(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resp, err := apiClient.Entries(ctx, userID)
	if err != nil {
		return fmt.Errorf("entries: %w", err)
	}

	if resp.Count == 0 {
		fmt.Println("No diary entries yet.")
		return nil
	}

	for i, entry := range resp.Entries {
		fmt.Printf("%d. [%s] %s\n", i+1, entry.Timestamp, entry.Summary)
		if verbose {
			fmt.Printf("   id: %s\n", entry.ID)
		}
	}
	return nil
}
