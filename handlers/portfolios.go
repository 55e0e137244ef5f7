package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cuthours/config"
	"cuthours/document"
	"cuthours/models"
	"cuthours/utils"
)

type PortfoliosHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewPortfoliosHandler(cfg *config.Config, db *gorm.DB) *PortfoliosHandler {
	return &PortfoliosHandler{cfg: cfg, db: db}
}

type savePortfolioRequest struct {
	PortfolioID string          `json:"portfolioId"`
	Data        json.RawMessage `json:"data"`
}

// Get returns the authenticated owner's portfolio.
func (h *PortfoliosHandler) Get(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var portfolio models.Portfolio
	if err := h.db.Where("user_id = ?", userID).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"portfolio": portfolio,
		"url":       utils.PortfolioURL(portfolio.PortfolioID, h.cfg.BaseDomain),
	})
}

// Save creates or updates the owner's single portfolio document. The slug
// must be well formed and not taken by another owner; the document is
// normalized before it is stored, so legacy shapes never reach the database
// through this path.
func (h *PortfoliosHandler) Save(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req savePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !document.ValidPortfolioID(req.PortfolioID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Portfolio ID may only contain lowercase letters, numbers and hyphens"})
		return
	}

	doc, err := document.Decode(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid portfolio data"})
		return
	}
	for _, link := range doc.Tabs.Contact.Links {
		if err := document.ValidateContactLink(link); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if !h.slugAvailable(req.PortfolioID, userID) {
		c.JSON(http.StatusConflict, gin.H{"error": "Portfolio ID is already taken"})
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var portfolio models.Portfolio
	err = h.db.Where("user_id = ?", userID).First(&portfolio).Error
	switch {
	case err == nil:
		portfolio.PortfolioID = req.PortfolioID
		portfolio.Data = datatypes.JSON(data)
		if err := h.db.Save(&portfolio).Error; err != nil {
			log.Printf("[Portfolios] failed to update portfolio for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save portfolio"})
			return
		}
	default:
		var user models.User
		if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		portfolio = models.Portfolio{
			UserID:      userID,
			UserEmail:   user.Email,
			UserName:    user.Name,
			PortfolioID: req.PortfolioID,
			Data:        datatypes.JSON(data),
		}
		if err := h.db.Create(&portfolio).Error; err != nil {
			log.Printf("[Portfolios] failed to create portfolio for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save portfolio"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"portfolio": portfolio,
		"url":       utils.PortfolioURL(portfolio.PortfolioID, h.cfg.BaseDomain),
	})
}

// Availability lets the form check a slug before the owner commits to it.
func (h *PortfoliosHandler) Availability(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	slug := c.Param("portfolioId")

	if !document.ValidPortfolioID(slug) {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "invalid"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": h.slugAvailable(slug, userID)})
}

// slugAvailable reports whether the slug is unused or already owned by the
// requesting user.
func (h *PortfoliosHandler) slugAvailable(slug string, userID uuid.UUID) bool {
	var existing models.Portfolio
	err := h.db.Where("portfolio_id = ?", slug).First(&existing).Error
	if err != nil {
		return true
	}
	return existing.UserID == userID
}

// View serves the public, visitor-facing portfolio. The slug comes from the
// subdomain of the request host, with an explicit ?id= query as fallback for
// direct links.
func (h *PortfoliosHandler) View(c *gin.Context) {
	slug := utils.SlugFromHost(c.Request.Host, h.cfg.BaseDomain)
	if slug == "" {
		slug = c.Query("id")
	}
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No portfolio ID provided"})
		return
	}
	h.renderPublic(c, slug)
}

// ViewByID serves the public portfolio for an explicit slug path parameter.
func (h *PortfoliosHandler) ViewByID(c *gin.Context) {
	h.renderPublic(c, c.Param("portfolioId"))
}

func (h *PortfoliosHandler) renderPublic(c *gin.Context, slug string) {
	var portfolio models.Portfolio
	if err := h.db.Where("portfolio_id = ?", slug).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	doc, err := document.Decode(portfolio.Data)
	if err != nil {
		log.Printf("[Portfolios] stored document for %s is unreadable: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"portfolioId":    portfolio.PortfolioID,
		"creatorEmail":   portfolio.UserEmail,
		"creatorName":    portfolio.UserName,
		"data":           doc,
		"visibleTabs":    document.VisibleTabs(doc),
		"chatbotEnabled": document.ChatbotEnabled(doc),
	})
}
