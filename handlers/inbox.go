package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"cuthours/config"
	"cuthours/models"
	"cuthours/services"
	"cuthours/utils"
)

// InboxHandler serves the owner dashboard: contact-form responses, chatbot
// conversations, and a live event feed over WebSocket.
type InboxHandler struct {
	cfg      *config.Config
	db       *gorm.DB
	events   *services.Events
	upgrader websocket.Upgrader
}

func NewInboxHandler(cfg *config.Config, db *gorm.DB, events *services.Events) *InboxHandler {
	return &InboxHandler{
		cfg:    cfg,
		db:     db,
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkWSOrigin(cfg.AllowedOrigins),
		},
	}
}

// ListResponses returns the owner's contact-form messages, newest first.
func (h *InboxHandler) ListResponses(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var responses []models.ContactResponse
	h.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&responses)

	c.JSON(http.StatusOK, responses)
}

type responseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateResponseStatus marks a contact response read or replied.
func (h *InboxHandler) UpdateResponseStatus(c *gin.Context) {
	userID, _ := c.Get("user_id")
	responseID := c.Param("id")

	var req responseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidContactStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := h.db.Model(&models.ContactResponse{}).
		Where("id = ? AND user_id = ?", responseID, userID).
		Update("status", req.Status)

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Response not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// ListSessions returns the owner's chat sessions, most recent activity
// first.
func (h *InboxHandler) ListSessions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var sessions []models.ChatSession
	h.db.Where("user_id = ?", userID).
		Order("last_activity DESC").
		Find(&sessions)

	c.JSON(http.StatusOK, sessions)
}

// SessionMessages returns the messages of one of the owner's chat sessions
// in conversation order.
func (h *InboxHandler) SessionMessages(c *gin.Context) {
	userID, _ := c.Get("user_id")
	sessionID := c.Param("sessionId")

	var session models.ChatSession
	if err := h.db.Where("session_id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	var messages []models.ChatMessage
	h.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages)

	c.JSON(http.StatusOK, messages)
}

// HandleWebSocket subscribes the owner to their inbox event channel and
// forwards events to the connected client. Auth comes from a token query
// param since browsers cannot set WebSocket headers.
func (h *InboxHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
		return
	}

	claims, err := utils.ParseToken(h.cfg.JWTSecret, token)
	if err != nil || claims.Partial {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[Inbox] WS upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := h.events.Subscribe(ctx, claims.UserID)
	if pubsub == nil {
		log.Printf("[Inbox] Redis not available, closing WS")
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "inbox feed unavailable"))
		return
	}
	defer pubsub.Close()

	// Ping/pong keepalive
	conn.SetReadDeadline(time.Now().Add(45 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(45 * time.Second))
		return nil
	})

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Redis → WS: forward inbox events to the dashboard
	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					cancel()
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Keep the read loop alive to detect disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
