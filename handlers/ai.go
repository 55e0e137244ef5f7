package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cuthours/document"
	"cuthours/models"
	"cuthours/services"
	"cuthours/utils"
)

type AIHandler struct {
	db        *gorm.DB
	assistant services.Assistant
	events    *services.Events
}

func NewAIHandler(db *gorm.DB, assistant services.Assistant, events *services.Events) *AIHandler {
	return &AIHandler{db: db, assistant: assistant, events: events}
}

type aiRequest struct {
	PortfolioData json.RawMessage `json:"portfolioData"`
	Query         string          `json:"query"`
	SessionID     string          `json:"sessionId"`
	PortfolioID   string          `json:"portfolioId"`
}

// Query answers one visitor question through the hosted completion endpoint.
// The user message is audited before the upstream call, the assistant reply
// after it; an upstream failure therefore leaves the user message behind
// with no assistant counterpart.
func (h *AIHandler) Query(c *gin.Context) {
	var req aiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if len(req.PortfolioData) == 0 || string(req.PortfolioData) == "null" || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Portfolio data and query are required"})
		return
	}
	if req.PortfolioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Portfolio ID is required"})
		return
	}

	doc, err := document.Decode(req.PortfolioData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid portfolio data"})
		return
	}

	var portfolio models.Portfolio
	if err := h.db.Where("portfolio_id = ?", req.PortfolioID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	start := time.Now()

	session, err := h.resolveSession(&portfolio, req.SessionID)
	if err != nil {
		log.Printf("[AI] failed to resolve session for %s: %v", req.PortfolioID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	userMsg := models.ChatMessage{
		PortfolioID: req.PortfolioID,
		UserID:      portfolio.UserID,
		SessionID:   session.SessionID,
		Role:        "user",
		Content:     req.Query,
		IPAddress:   utils.ClientIP(c.Request),
		UserAgent:   c.Request.UserAgent(),
	}
	if err := h.db.Create(&userMsg).Error; err != nil {
		log.Printf("[AI] failed to save user message for %s: %v", session.SessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	h.refreshMessageCount(session.SessionID)

	answer, err := h.assistant.Query(c.Request.Context(), document.BuildInstructions(doc), req.Query)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(http.StatusBadRequest, gin.H{"error": upstream.Message})
			return
		}
		log.Printf("[AI] completion failed for %s: %v", session.SessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get AI response"})
		return
	}

	assistantMsg := models.ChatMessage{
		PortfolioID:    req.PortfolioID,
		UserID:         portfolio.UserID,
		SessionID:      session.SessionID,
		Role:           "assistant",
		Content:        answer,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
	if err := h.db.Create(&assistantMsg).Error; err != nil {
		// The visitor already has an answer; log and carry on.
		log.Printf("[AI] failed to save assistant message for %s: %v", session.SessionID, err)
	}
	h.refreshMessageCount(session.SessionID)

	h.events.Publish(c.Request.Context(), portfolio.UserID, services.InboxEvent{
		Type:        services.EventChatActivity,
		PortfolioID: req.PortfolioID,
		RefID:       session.SessionID,
	})

	c.JSON(http.StatusOK, gin.H{
		"response":  answer,
		"sessionId": session.SessionID,
	})
}

// resolveSession finds the session for a supplied id, creating it if absent;
// with no id it mints a fresh one. The create-if-absent goes through the
// unique index on session_id, so two concurrent requests carrying the same
// id end up sharing one session. Two concurrent first-time requests with no
// id still get one session each; there is nothing to key a merge on.
func (h *AIHandler) resolveSession(portfolio *models.Portfolio, sessionID string) (*models.ChatSession, error) {
	if sessionID == "" {
		sessionID = utils.NewSessionID()
	}

	session := models.ChatSession{
		PortfolioID: portfolio.PortfolioID,
		UserID:      portfolio.UserID,
		SessionID:   sessionID,
		IsActive:    true,
	}
	err := h.db.Where(models.ChatSession{SessionID: sessionID}).FirstOrCreate(&session).Error
	if err != nil {
		// Likely a concurrent create hit the unique index first; take theirs.
		var existing models.ChatSession
		if ferr := h.db.Where("session_id = ?", sessionID).First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &session, nil
}

// refreshMessageCount keeps message_count equal to the number of persisted
// messages rather than incrementing it by constants.
func (h *AIHandler) refreshMessageCount(sessionID string) {
	var count int64
	if err := h.db.Model(&models.ChatMessage{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		log.Printf("[AI] failed to count messages for %s: %v", sessionID, err)
		return
	}
	err := h.db.Model(&models.ChatSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{"message_count": count, "last_activity": time.Now()}).Error
	if err != nil {
		log.Printf("[AI] failed to update session %s: %v", sessionID, err)
	}
}
