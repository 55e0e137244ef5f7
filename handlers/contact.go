package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cuthours/models"
	"cuthours/services"
	"cuthours/utils"
)

type ContactHandler struct {
	db     *gorm.DB
	mailer services.Mailer
	events *services.Events
}

func NewContactHandler(db *gorm.DB, mailer services.Mailer, events *services.Events) *ContactHandler {
	return &ContactHandler{db: db, mailer: mailer, events: events}
}

type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	PortfolioID  string `json:"portfolioId"`
	CreatorEmail string `json:"creatorEmail"`
	CreatorName  string `json:"creatorName"`
}

// Submit relays a visitor's contact-form message to the portfolio owner.
// The audit record is written before the email goes out and is kept even if
// delivery fails; the owner can still read the message on the dashboard.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" ||
		req.PortfolioID == "" || req.CreatorEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	var portfolio models.Portfolio
	if err := h.db.Where("portfolio_id = ?", req.PortfolioID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	applicationID := utils.NewApplicationID()

	response := models.ContactResponse{
		ApplicationID: applicationID,
		PortfolioID:   req.PortfolioID,
		UserID:        portfolio.UserID,
		Name:          req.Name,
		Email:         req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
		Status:        models.ContactStatusSent,
		IPAddress:     utils.ClientIP(c.Request),
		UserAgent:     c.Request.UserAgent(),
	}
	if err := h.db.Create(&response).Error; err != nil {
		log.Printf("[Contact] failed to save response for %s: %v", req.PortfolioID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.events.Publish(c.Request.Context(), portfolio.UserID, services.InboxEvent{
		Type:        services.EventContactReceived,
		PortfolioID: req.PortfolioID,
		RefID:       applicationID,
	})

	messageID, err := h.mailer.SendContactNotification(c.Request.Context(), services.ContactNotification{
		CreatorEmail:  req.CreatorEmail,
		CreatorName:   req.CreatorName,
		SenderName:    req.Name,
		SenderEmail:   req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
		ApplicationID: applicationID,
	})
	if err != nil {
		// The audit record above stays; only delivery failed.
		log.Printf("[Contact] failed to send email for %s: %v", applicationID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"messageId":     messageID,
		"applicationId": applicationID,
	})
}
