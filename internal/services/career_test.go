package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/config"
	"alfredoptarigan/resume-insight/internal/models"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
}

// messageText accepts both the plain string and the content-parts encodings.
func messageText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parts); err != nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func writeChatCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "llama3-8b-8192",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 24, "total_tokens": 36},
	})
}

func newTestCareer(t *testing.T, baseURL string, opts ...CareerOption) CareerAdvisor {
	t.Helper()

	advisor, err := NewCareerService(config.GroqConfig{
		APIKey:  "test-key",
		Model:   "llama3-8b-8192",
		BaseURL: baseURL,
	}, zaptest.NewLogger(t), opts...)
	require.NoError(t, err)
	return advisor
}

var sampleCareerRequest = models.CareerRequest{Skills: "Python, SQL", Interests: "data analysis"}

func TestNewCareerServiceRequiresCredential(t *testing.T) {
	advisor, err := NewCareerService(config.GroqConfig{Model: "llama3-8b-8192"}, zaptest.NewLogger(t))

	assert.Nil(t, advisor)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestSuggestReturnsTrimmedCompletion(t *testing.T) {
	var (
		captured chatRequest
		auth     string
		path     string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeChatCompletion(w, "\n  Data Analyst: learn Tableau, get the Google Data Analytics certificate.  \n")
	}))
	defer server.Close()

	resp, err := newTestCareer(t, server.URL).Suggest(context.Background(), sampleCareerRequest)

	require.NoError(t, err)
	assert.False(t, resp.Fallback)
	assert.Equal(t, "Data Analyst: learn Tableau, get the Google Data Analytics certificate.", resp.Suggestions)

	assert.True(t, strings.HasSuffix(path, "/chat/completions"), "unexpected path %s", path)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "llama3-8b-8192", captured.Model)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, NewPromptBuilder().BuildCareerPrompt("Python, SQL", "data analysis"), messageText(captured.Messages[0].Content))
}

func TestSuggestFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer server.Close()

	resp, err := newTestCareer(t, server.URL).Suggest(context.Background(), sampleCareerRequest)

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "Unable to fetch career suggestions at this time.", resp.Suggestions)
}

func TestSuggestFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	resp, err := newTestCareer(t, baseURL).Suggest(context.Background(), sampleCareerRequest)

	require.NoError(t, err)
	assert.Equal(t, CareerFallbackMessage, resp.Suggestions)
}

func TestSuggestFallsBackOnBlankCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, "   ")
	}))
	defer server.Close()

	resp, err := newTestCareer(t, server.URL).Suggest(context.Background(), sampleCareerRequest)

	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, CareerFallbackMessage, resp.Suggestions)
}

func TestSuggestPropagatePolicy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key"}}`))
	}))
	defer server.Close()

	_, err := newTestCareer(t, server.URL, WithCareerPolicy(PropagatePolicy())).
		Suggest(context.Background(), sampleCareerRequest)

	assert.ErrorIs(t, err, apperrors.ErrUpstreamService)
}

func TestSuggestConcurrentCallsAreIsolated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		writeChatCompletion(w, "echo: "+messageText(req.Messages[0].Content))
	}))
	defer server.Close()

	advisor := newTestCareer(t, server.URL)
	pb := NewPromptBuilder()

	const calls = 12
	results := make([]models.CareerResponse, calls)
	errs := make([]error, calls)

	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = advisor.Suggest(context.Background(), models.CareerRequest{
				Skills:    fmt.Sprintf("skill-%d", i),
				Interests: fmt.Sprintf("interest-%d", i),
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < calls; i++ {
		require.NoError(t, errs[i])
		assert.False(t, results[i].Fallback)
		expected := "echo: " + pb.BuildCareerPrompt(fmt.Sprintf("skill-%d", i), fmt.Sprintf("interest-%d", i))
		assert.Equal(t, expected, results[i].Suggestions)
	}
}
