package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cuthours/models"
	"cuthours/services"
)

func newAIRouter(db *gorm.DB, assistant services.Assistant) *gin.Engine {
	r := gin.New()
	h := NewAIHandler(db, assistant, services.NewEvents(nil))
	r.POST("/api/ai", h.Query)
	return r
}

func aiBody(slug, sessionID, query string) map[string]interface{} {
	return map[string]interface{}{
		"portfolioData": json.RawMessage(testDocJSON),
		"query":         query,
		"sessionId":     sessionID,
		"portfolioId":   slug,
	}
}

func TestAIQueryCreatesSessionAndAuditsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	assistant := &fakeAssistant{answer: "I wrote programs for the Analytical Engine."}
	w := postJSON(t, newAIRouter(db, assistant), "/api/ai", aiBody("ada", "", "What did you build?"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, assistant.answer, resp["response"])
	assert.Regexp(t, `^session_\d+_[0-9a-z]{9}$`, resp["sessionId"])

	require.Len(t, assistant.queries, 1)
	assert.Equal(t, "What did you build?", assistant.queries[0])
	assert.Contains(t, assistant.instructions[0], "Ada Lovelace")

	var session models.ChatSession
	require.NoError(t, db.Where("session_id = ?", resp["sessionId"]).First(&session).Error)
	assert.EqualValues(t, 2, session.MessageCount)
	assert.True(t, session.IsActive)

	var userMsg, assistantMsg models.ChatMessage
	require.NoError(t, db.Where("session_id = ? AND role = ?", session.SessionID, "user").First(&userMsg).Error)
	require.NoError(t, db.Where("session_id = ? AND role = ?", session.SessionID, "assistant").First(&assistantMsg).Error)
	assert.Equal(t, "What did you build?", userMsg.Content)
	assert.Equal(t, assistant.answer, assistantMsg.Content)
	assert.GreaterOrEqual(t, assistantMsg.ResponseTimeMs, int64(0))
}

func TestAIQueryReusesSuppliedSession(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	assistant := &fakeAssistant{answer: "ok"}
	r := newAIRouter(db, assistant)

	w := postJSON(t, r, "/api/ai", aiBody("ada", "session_1700000000000_abcdefghi", "first"))
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(t, r, "/api/ai", aiBody("ada", "session_1700000000000_abcdefghi", "second"))
	require.Equal(t, http.StatusOK, w.Code)

	var sessions []models.ChatSession
	require.NoError(t, db.Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.EqualValues(t, 4, sessions[0].MessageCount)
}

func TestAIQueryWithoutSessionIDMintsDistinctSessions(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	r := newAIRouter(db, &fakeAssistant{answer: "ok"})
	w1 := postJSON(t, r, "/api/ai", aiBody("ada", "", "first"))
	w2 := postJSON(t, r, "/api/ai", aiBody("ada", "", "second"))
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	var count int64
	db.Model(&models.ChatSession{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAIQueryValidation(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")
	r := newAIRouter(db, &fakeAssistant{answer: "ok"})

	w := postJSON(t, r, "/api/ai", map[string]interface{}{
		"query":       "hello",
		"portfolioId": "ada",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio data and query are required")

	w = postJSON(t, r, "/api/ai", map[string]interface{}{
		"portfolioData": json.RawMessage(testDocJSON),
		"query":         "",
		"portfolioId":   "ada",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio data and query are required")

	body := aiBody("", "", "hello")
	w = postJSON(t, r, "/api/ai", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio ID is required")

	w = postJSON(t, r, "/api/ai", map[string]interface{}{
		"portfolioData": json.RawMessage(`{"tabs": "not an object"}`),
		"query":         "hello",
		"portfolioId":   "ada",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid portfolio data")

	w = postJSON(t, r, "/api/ai", aiBody("nobody", "", "hello"))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio not found")
}

func TestAIQueryUpstreamFailureLeavesUserMessage(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	w := postJSON(t, newAIRouter(db, &fakeAssistant{err: assert.AnError}), "/api/ai",
		aiBody("ada", "", "hello"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to get AI response")

	var messages []models.ChatMessage
	require.NoError(t, db.Find(&messages).Error)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)

	var session models.ChatSession
	require.NoError(t, db.First(&session).Error)
	assert.EqualValues(t, 1, session.MessageCount)
}

func TestAIQueryStructuredUpstreamError(t *testing.T) {
	db := setupTestDB(t)
	seedPortfolio(t, db, "ada")

	assistant := &fakeAssistant{err: &services.UpstreamError{Message: "query too long"}}
	w := postJSON(t, newAIRouter(db, assistant), "/api/ai", aiBody("ada", "", "hello"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "query too long")
}
