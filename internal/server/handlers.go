package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raphaelgruber/beingbuddy-go/internal/llm"
	"github.com/raphaelgruber/beingbuddy-go/internal/metrics"
	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// ConversationRequest is the payload for /chat and /analyze_conversation.
type ConversationRequest struct {
	Conversation string `json:"conversation"`
	UserID       string `json:"user_id"`
}

// MoodRequest is the payload for /mood.
type MoodRequest struct {
	Text string `json:"text"`
}

// ChatResponse carries the conversational reply.
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// AnalyzeResponse is the /analyze_conversation payload: the assembled Event
// plus the free-form agent reply.
type AnalyzeResponse struct {
	models.Event
	AgentResponse string `json:"agent_response"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "Being Buddy API",
		"status":      "running",
		"version":     Version,
		"description": "Emotional tracking agent service",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.collector == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, s.collector.Snapshot())
}

// handleChat returns an empathetic conversational reply. The generative model
// is best-effort; on any failure the deterministic fallback answers instead,
// never a user-visible error.
func (s *Server) handleChat(c *gin.Context) {
	req, ok := s.bindConversation(c)
	if !ok {
		return
	}

	reply := s.reply(c, req.Conversation)

	c.JSON(http.StatusOK, ChatResponse{
		Response:  reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// handleAnalyzeConversation runs the full pipeline: classify, summarize,
// persist, assemble, and log a mood point — then attaches the best-effort
// conversational reply.
func (s *Server) handleAnalyzeConversation(c *gin.Context) {
	req, ok := s.bindConversation(c)
	if !ok {
		return
	}

	event, _, err := s.service.Analyze(c.Request.Context(), req.Conversation, req.UserID)
	if err != nil {
		s.logger.Error("analysis failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist diary entry"})
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Event:         event,
		AgentResponse: s.reply(c, req.Conversation),
	})
}

// handleMood classifies text directly without persisting anything.
func (s *Server) handleMood(c *gin.Context) {
	var req MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	c.JSON(http.StatusOK, s.service.Classify(req.Text))
}

func (s *Server) handleEntries(c *gin.Context) {
	entries, err := s.service.Entries(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		s.logger.Error("list entries failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (s *Server) handleMoodTimeline(c *gin.Context) {
	points, err := s.service.MoodTimeline(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		s.logger.Error("list mood points failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list mood points"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points, "count": len(points)})
}

// bindConversation parses and validates the common conversation payload.
// Blank text is rejected before the core pipeline is ever invoked.
func (s *Server) bindConversation(c *gin.Context) (ConversationRequest, bool) {
	var req ConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return ConversationRequest{}, false
	}
	if strings.TrimSpace(req.Conversation) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no conversation text provided"})
		return ConversationRequest{}, false
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no user_id provided"})
		return ConversationRequest{}, false
	}
	return req, true
}

// reply asks the augmenter for a conversational response, falling back to the
// deterministic supportive reply on any failure.
func (s *Server) reply(c *gin.Context, conversation string) string {
	if s.augmenter == nil {
		return llm.FallbackReply(conversation)
	}

	start := time.Now()
	text, err := s.augmenter.Reply(c.Request.Context(), conversation)
	if s.collector != nil {
		s.collector.RecordTiming(metrics.OpLLMReply, time.Since(start))
	}
	if err != nil {
		s.logger.Warn("augmenter failed, using fallback reply", "error", err)
		return llm.FallbackReply(conversation)
	}
	return text
}
