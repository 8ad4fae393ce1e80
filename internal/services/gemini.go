package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

const scriptureSystemPrompt = `You are a knowledgeable AI companion specializing in Hindu scriptures including the Bhagavad Gita, Vedas, Upanishads, and Puranas.

Your role is to:
- Provide authentic, accurate answers about Hindu spiritual texts in 10 to 15 words only
- Reference specific verses or chapters when relevant
- Offer practical spiritual guidance based on scriptural wisdom
- Maintain a respectful, devotional tone
- Keep responses concise but meaningful

Please provide short, thoughtful responses (maximum 10-15 words) that honor the sacred nature of these texts while being accessible to modern seekers.`

// FallbackNotConfigured is returned when no API key is set.
const FallbackNotConfigured = "AI service is not configured. Please contact administrator."

// FallbackError is returned when the remote call fails for any reason.
const FallbackError = "I'm experiencing some technical difficulties right now. Please try again in a moment, and I'll do my best to help you with your spiritual inquiry."

// FallbackEmpty is returned when the remote answers with no content.
const FallbackEmpty = "I apologize, but I couldn't generate a response at this time. Please try asking your question again."

type GeminiService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

var geminiService *GeminiService

func GetGeminiService() *GeminiService {
	if geminiService == nil {
		baseURL := os.Getenv("GEMINI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
		}
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		geminiService = &GeminiService{
			baseURL: baseURL,
			apiKey:  os.Getenv("GEMINI_API_KEY"),
			model:   model,
			client:  &http.Client{Timeout: 30 * time.Second},
		}
	}
	return geminiService
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AskScripture asks the collaborator for a short answer to a scripture
// question. It never returns an error: any failure degrades to a fixed
// fallback string so the chat flow survives a broken remote.
func (s *GeminiService) AskScripture(question string) string {
	if s.apiKey == "" {
		return FallbackNotConfigured
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: scriptureSystemPrompt},
			{Role: "user", Content: question},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return FallbackError
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return FallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		return FallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Gemini API returned status %d", resp.StatusCode)
		return FallbackError
	}

	var parsed ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("Gemini API decode error: %v", err)
		return FallbackError
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return FallbackEmpty
	}
	return parsed.Choices[0].Message.Content
}
