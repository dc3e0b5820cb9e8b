package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Chat with the buddy agent",
	Long: `Send a message and get an empathetic conversational reply.

Examples:
  buddy chat "I had a rough day at work today"
  buddy chat "Finally finished my exams!" --user alice`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	ctx := context.Background()

	resp, err := apiClient.Chat(ctx, message, userID)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	fmt.Println(resp.Response)
	if verbose {
		fmt.Printf("\n(replied at %s)\n", resp.Timestamp)
	}
	return nil
}
