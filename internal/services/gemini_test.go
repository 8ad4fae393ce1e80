package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskScripture(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		resp := ChatResponse{
			Choices: []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			}{
				{
					Message: struct {
						Content string `json:"content"`
					}{Content: "Act without attachment to results, as the Gita teaches."},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	os.Setenv("GEMINI_BASE_URL", server.URL)
	os.Setenv("GEMINI_API_KEY", "test-key")

	// Reset the singleton so it picks up the test config
	geminiService = nil
	s := GetGeminiService()

	answer := s.AskScripture("What does the Gita say about duty?")
	assert.Equal(t, "Act without attachment to results, as the Gita teaches.", answer)
}

func TestAskScriptureNotConfigured(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "")

	geminiService = nil
	s := GetGeminiService()

	assert.Equal(t, FallbackNotConfigured, s.AskScripture("anything"))
}

func TestAskScriptureRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	os.Setenv("GEMINI_BASE_URL", server.URL)
	os.Setenv("GEMINI_API_KEY", "test-key")

	geminiService = nil
	s := GetGeminiService()

	assert.Equal(t, FallbackError, s.AskScripture("anything"))

	// A dead endpoint degrades the same way rather than surfacing an error
	server.Close()
	assert.Equal(t, FallbackError, s.AskScripture("anything"))
}

func TestAskScriptureEmptyAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer server.Close()

	os.Setenv("GEMINI_BASE_URL", server.URL)
	os.Setenv("GEMINI_API_KEY", "test-key")

	geminiService = nil
	s := GetGeminiService()

	assert.Equal(t, FallbackEmpty, s.AskScripture("anything"))
}
