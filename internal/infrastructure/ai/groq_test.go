package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

func newTestClient(baseURL string) *GroqClient {
	return NewGroqClient(&config.AIConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.7,
		MaxTokens:   512,
	}, logger.NewLogger())
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGroqClient_GenerateReply_Success(t *testing.T) {
	var gotReq chatRequest
	var gotAuth, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("try restarting the device")))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	reply, err := client.GenerateReply(context.Background(), "my printer is broken")

	require.NoError(t, err)
	assert.Equal(t, "try restarting the device", reply)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "llama-3.3-70b-versatile", gotReq.Model)
	assert.InDelta(t, 0.7, gotReq.Temperature, 1e-9)
	assert.Equal(t, 512, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "my printer is broken", gotReq.Messages[0].Content)
}

func TestGroqClient_GenerateReply_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateReply(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 429")
}

func TestGroqClient_GenerateReply_BadResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "empty content", body: completionBody("")},
		{name: "malformed json", body: `{"choices":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			_, err := client.GenerateReply(context.Background(), "hello")
			assert.Error(t, err)
		})
	}
}

func TestGroqClient_GenerateReply_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GenerateReply(context.Background(), "hello")
	assert.Error(t, err)
}

func TestGroqClient_GenerateReply_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(srv.URL)
	_, err := client.GenerateReply(ctx, "hello")
	assert.Error(t, err)
}

func TestNewGroqClient_Defaults(t *testing.T) {
	client := NewGroqClient(&config.AIConfig{APIKey: "k"}, logger.NewLogger())
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
}
