package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export diary entries to Markdown files",
	Long: `Export a user's diary entries to Markdown files for backup, one file per
entry with metadata in YAML frontmatter.

Examples:
  buddy export ./backup
  buddy export ./backup --user alice`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// entryFrontmatter is the YAML metadata written at the top of each file.
type entryFrontmatter struct {
	EntryID   string `yaml:"entry_id"`
	UserID    string `yaml:"user_id"`
	Timestamp string `yaml:"timestamp"`
}

func runExport(cmd *cobra.Command, args []string) error {
	exportPath := args[0]
	ctx := context.Background()

	resp, err := apiClient.Entries(ctx, userID)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	if resp.Count == 0 {
		fmt.Println("No entries to export.")
		return nil
	}

	entriesDir := filepath.Join(exportPath, userID)
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	fmt.Printf("Exporting %d entries...\n", resp.Count)

	exported := 0
	for _, entry := range resp.Entries {
		meta, err := yaml.Marshal(entryFrontmatter{
			EntryID:   entry.ID,
			UserID:    userID,
			Timestamp: entry.Timestamp,
		})
		if err != nil {
			return fmt.Errorf("marshal frontmatter: %w", err)
		}

		content := fmt.Sprintf("---\n%s---\n\n%s\n", meta, entry.Summary)

		filename := filepath.Join(entriesDir, entry.ID+".md")
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			fmt.Printf("Warning: failed to write %s: %v\n", filename, err)
			continue
		}
		exported++

		if verbose {
			fmt.Printf("  Exported: %s\n", filename)
		}
	}

	fmt.Printf("\nExported %d entries to %s\n", exported, entriesDir)
	return nil
}
