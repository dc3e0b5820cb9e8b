// Package client provides an HTTP client for the Being Buddy server, used by
// the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// Client talks to the Being Buddy HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new client. If baseURL is empty, uses the BUDDY_SERVER_URL
// env var or defaults to localhost:8000. Timeout is configurable via
// BUDDY_CLIENT_TIMEOUT (default 2m to cover slow LLM replies).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("BUDDY_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	timeout := 2 * time.Minute
	if t := os.Getenv("BUDDY_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ChatResponse mirrors the server's /chat payload.
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// AnalyzeResponse mirrors the server's /analyze_conversation payload.
type AnalyzeResponse struct {
	models.Event
	AgentResponse string `json:"agent_response"`
}

// EntriesResponse mirrors the server's /entries payload.
type EntriesResponse struct {
	Entries []models.DiaryEntry `json:"entries"`
	Count   int                 `json:"count"`
}

// TimelineResponse mirrors the server's mood timeline payload.
type TimelineResponse struct {
	Points []models.MoodPoint `json:"points"`
	Count  int                `json:"count"`
}

// Chat requests a conversational reply.
func (c *Client) Chat(ctx context.Context, conversation, userID string) (*ChatResponse, error) {
	var resp ChatResponse
	err := c.post(ctx, "/chat", map[string]string{
		"conversation": conversation,
		"user_id":      userID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analyze runs the full analysis pipeline for a conversation.
func (c *Client) Analyze(ctx context.Context, conversation, userID string) (*AnalyzeResponse, error) {
	var resp AnalyzeResponse
	err := c.post(ctx, "/analyze_conversation", map[string]string{
		"conversation": conversation,
		"user_id":      userID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Mood classifies text without persisting anything.
func (c *Client) Mood(ctx context.Context, text string) (*models.SentimentResult, error) {
	var resp models.SentimentResult
	err := c.post(ctx, "/mood", map[string]string{"text": text}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Entries lists a user's persisted diary entries.
func (c *Client) Entries(ctx context.Context, userID string) (*EntriesResponse, error) {
	var resp EntriesResponse
	if err := c.get(ctx, "/entries/"+url.PathEscape(userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MoodTimeline lists a user's mood points.
func (c *Client) MoodTimeline(ctx context.Context, userID string) (*TimelineResponse, error) {
	var resp TimelineResponse
	if err := c.get(ctx, "/mood/"+url.PathEscape(userID)+"/timeline", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) post(ctx context.Context, path string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s - %s", resp.Status, string(body))
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
