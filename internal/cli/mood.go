package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/raphaelgruber/beingbuddy-go/internal/models"
	"github.com/spf13/cobra"
)

var moodTimeline bool

// Mood label colors for terminal output.
var (
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")).Bold(true)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF005F")).Bold(true)
	neutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true)
)

var moodCmd = &cobra.Command{
	Use:   "mood [text]",
	Short: "Classify the mood of a message",
	Long: `Classify the sentiment of a message, or show the logged mood timeline.

Examples:
  buddy mood "I feel anxious about tomorrow"
  buddy mood --timeline --user alice`,
	RunE: runMood,
}

func init() {
	moodCmd.Flags().BoolVar(&moodTimeline, "timeline", false, "show the user's mood timeline instead of classifying")
}

func runMood(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if moodTimeline {
		return printTimeline(ctx)
	}

	if len(args) == 0 {
		return fmt.Errorf("provide text to classify or use --timeline")
	}

	result, err := apiClient.Mood(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("mood: %w", err)
	}

	fmt.Printf("%s  score %.2f  intensity %.2f\n",
		styleFor(result.MoodLabel).Render(result.MoodLabel), result.Score, result.Intensity)
	fmt.Printf("emotions: %s\n", strings.Join(result.Emotions, ", "))
	if verbose {
		fmt.Println(dimStyle.Render("emoji: " + result.EmojiPath))
	}
	return nil
}

func printTimeline(ctx context.Context) error {
	resp, err := apiClient.MoodTimeline(ctx, userID)
	if err != nil {
		return fmt.Errorf("mood timeline: %w", err)
	}

	if resp.Count == 0 {
		fmt.Println("No mood points logged yet.")
		return nil
	}

	for _, p := range resp.Points {
		label := models.MoodNeutral
		switch {
		case p.Score >= 0.5:
			label = models.MoodPositive
		case p.Score <= -0.5:
			label = models.MoodNegative
		}
		fmt.Printf("%s  %6.2f  %s\n", p.Date, p.Score, styleFor(label).Render(label))
	}
	return nil
}

func styleFor(label string) lipgloss.Style {
	switch label {
	case models.MoodPositive:
		return positiveStyle
	case models.MoodNegative:
		return negativeStyle
	default:
		return neutralStyle
	}
}
