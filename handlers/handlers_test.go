package handlers

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cuthours/database"
	"cuthours/models"
	"cuthours/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		// Shared-cache memory DBs persist while a connection is open; drop
		// rows so tests stay independent.
		for _, m := range []interface{}{
			&models.ChatMessage{}, &models.ChatSession{}, &models.ContactResponse{},
			&models.RefreshToken{}, &models.Portfolio{}, &models.User{},
		} {
			db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m)
		}
	})
	return db
}

const testDocJSON = `{
	"firstName": "Ada",
	"lastName": "Lovelace",
	"positionTitle": "Mathematician",
	"tabs": {
		"about": {"aboutParagraph": "Wrote the first algorithm.", "skills": ["analysis"], "links": []},
		"gallery": {"display": true, "items": [{"title": "Notes", "description": "translation", "imageLink": ""}]},
		"pastProjects": {"display": true, "projects": []},
		"blogs": {"display": true, "posts": []},
		"ai": {"chatbot": {"enabled": true, "instructions": ""}},
		"contact": {"links": [], "contactForm": {"enabled": true}}
	}
}`

func seedPortfolio(t *testing.T, db *gorm.DB, slug string) models.Portfolio {
	t.Helper()
	user := models.User{
		Email:        slug + "@example.com",
		Name:         "Ada Lovelace",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)

	portfolio := models.Portfolio{
		UserID:      user.ID,
		UserEmail:   user.Email,
		UserName:    user.Name,
		PortfolioID: slug,
		Data:        datatypes.JSON(testDocJSON),
	}
	require.NoError(t, db.Create(&portfolio).Error)
	return portfolio
}

type fakeMailer struct {
	sent []services.ContactNotification
	err  error
}

func (f *fakeMailer) SendContactNotification(_ context.Context, n services.ContactNotification) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, n)
	return "msg_test_1", nil
}

type fakeAssistant struct {
	answer string
	err    error

	instructions []string
	queries      []string
}

func (f *fakeAssistant) Query(_ context.Context, instructions, query string) (string, error) {
	f.instructions = append(f.instructions, instructions)
	f.queries = append(f.queries, query)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}
