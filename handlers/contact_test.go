package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cuthours/models"
	"cuthours/services"
)

func newContactRouter(db *gorm.DB, mailer services.Mailer) *gin.Engine {
	r := gin.New()
	h := NewContactHandler(db, mailer, services.NewEvents(nil))
	r.POST("/api/contact", h.Submit)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validContactBody(slug string) map[string]string {
	return map[string]string{
		"name":         "Grace Hopper",
		"email":        "grace@example.com",
		"subject":      "Collaboration",
		"message":      "Loved your engine programs.\nLet's talk.",
		"portfolioId":  slug,
		"creatorEmail": slug + "@example.com",
		"creatorName":  "Ada Lovelace",
	}
}

func TestContactSubmit(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	mailer := &fakeMailer{}
	w := postJSON(t, newContactRouter(db, mailer), "/api/contact", validContactBody("ada"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "msg_test_1", resp["messageId"])
	assert.Regexp(t, `^contact_\d+_[0-9a-z]{9}$`, resp["applicationId"])

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "grace@example.com", mailer.sent[0].SenderEmail)
	assert.Equal(t, resp["applicationId"], mailer.sent[0].ApplicationID)

	var stored models.ContactResponse
	require.NoError(t, db.Where("application_id = ?", resp["applicationId"]).First(&stored).Error)
	assert.Equal(t, "Collaboration", stored.Subject)
	assert.Equal(t, models.ContactStatusSent, stored.Status)
}

func TestContactSubmitMissingField(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	body := validContactBody("ada")
	body["email"] = ""

	mailer := &fakeMailer{}
	w := postJSON(t, newContactRouter(db, mailer), "/api/contact", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
	assert.Empty(t, mailer.sent)

	var count int64
	db.Model(&models.ContactResponse{}).Count(&count)
	assert.Zero(t, count)
}

func TestContactSubmitUnknownPortfolio(t *testing.T) {
	db := setupTestDB(t)

	mailer := &fakeMailer{}
	w := postJSON(t, newContactRouter(db, mailer), "/api/contact", validContactBody("nobody"))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio not found")
	assert.Empty(t, mailer.sent)
}

func TestContactSubmitMailerFailureKeepsAuditRecord(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	mailer := &fakeMailer{err: assert.AnError}
	w := postJSON(t, newContactRouter(db, mailer), "/api/contact", validContactBody("ada"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send email")

	// The message survives delivery failure; the owner still sees it inbox-side.
	var count int64
	db.Model(&models.ContactResponse{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestContactSubmitMalformedBody(t *testing.T) {
	db := setupTestDB(t)
	r := newContactRouter(db, &fakeMailer{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request")
}
