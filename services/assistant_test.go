package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPAssistantQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/simple_ai_query", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "be Ada", req["instructions"])
		assert.Equal(t, "who are you", req["query"])

		json.NewEncoder(w).Encode(map[string]string{"resp_text": "I am Ada."})
	}))
	defer srv.Close()

	a := NewHTTPAssistant(srv.URL, 5*time.Second)
	answer, err := a.Query(context.Background(), "be Ada", "who are you")
	require.NoError(t, err)
	assert.Equal(t, "I am Ada.", answer)
}

func TestHTTPAssistantStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "query too long"})
	}))
	defer srv.Close()

	a := NewHTTPAssistant(srv.URL, 5*time.Second)
	_, err := a.Query(context.Background(), "i", "q")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "query too long", upstream.Message)
}

func TestHTTPAssistantBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewHTTPAssistant(srv.URL, 5*time.Second)
	_, err := a.Query(context.Background(), "i", "q")

	require.Error(t, err)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPAssistantTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a := NewHTTPAssistant(srv.URL, 20*time.Millisecond)
	_, err := a.Query(context.Background(), "i", "q")
	require.Error(t, err)
}
