package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ml-pipeline-service/internal/core/domain"
	"ml-pipeline-service/internal/core/services"
	"ml-pipeline-service/internal/testutil"
)

func setupChatRouter() (*testutil.MockChatCompleter, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	completer := new(testutil.MockChatCompleter)
	h := New(nil, services.NewChatService(completer))
	r := gin.New()
	h.RegisterChatRoutes(r.Group("/"))
	return completer, r
}

func TestChat(t *testing.T) {
	completer, r := setupChatRouter()
	completer.On("Complete", mock.Anything, "hello", mock.Anything).Return("hi, how can I help?", nil)

	body, _ := json.Marshal(map[string]interface{}{
		"prompt": "hello",
		"history": []map[string]string{
			{"role": "user", "content": "earlier question"},
			{"role": "assistant", "content": "earlier answer"},
		},
	})
	req, _ := http.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "hi, how can I help?", resp["reply"])
}

func TestChat_RateLimited(t *testing.T) {
	completer, r := setupChatRouter()
	completer.On("Complete", mock.Anything, "hello", mock.Anything).
		Return("", domain.ErrRateLimitExceeded)

	body, _ := json.Marshal(map[string]string{"prompt": "hello"})
	req, _ := http.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestChat_BlankPrompt(t *testing.T) {
	completer, r := setupChatRouter()

	body, _ := json.Marshal(map[string]string{"prompt": "   "})
	req, _ := http.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestChat_MissingPrompt(t *testing.T) {
	_, r := setupChatRouter()

	req, _ := http.NewRequest("POST", "/chat", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_UpstreamError(t *testing.T) {
	completer, r := setupChatRouter()
	completer.On("Complete", mock.Anything, "hello", mock.Anything).
		Return("", domain.ErrChatUpstream)

	body, _ := json.Marshal(map[string]string{"prompt": "hello"})
	req, _ := http.NewRequest("POST", "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
