package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(s ServerConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.handleIndex)
	router.GET("/prompt.txt", s.handlePromptText)
	router.GET("/api/report", s.handleReport)
	return router
}

func TestIndexPage(t *testing.T) {
	s := testServerConfig(t, feedMux(testCSV, testDraft))
	router := testRouter(s)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Waiver Assistant")
	assert.Contains(t, body, "Cole Palmer")
	assert.Contains(t, body, "Copy prompt")
	assert.NotContains(t, body, "class=\"error\"")
}

func TestIndexPageShowsFetchFailureInline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})
	s := testServerConfig(t, mux)
	router := testRouter(s)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "class=\"error\"")
	assert.Contains(t, w.Body.String(), "stats feed")
}

func TestPromptTextEndpoint(t *testing.T) {
	s := testServerConfig(t, feedMux(testCSV, testDraft))
	router := testRouter(s)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prompt.txt", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "🟩 My Squad:")
	assert.Contains(t, w.Body.String(), "Who should I bring in this week and why?")
}

func TestReportJSONEndpoint(t *testing.T) {
	s := testServerConfig(t, feedMux(testCSV, testDraft))
	router := testRouter(s)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), `"candidates"`)
	assert.Contains(t, w.Body.String(), `"prompt"`)
}

func TestQueryOverridesTeam(t *testing.T) {
	s := testServerConfig(t, feedMux(testCSV, testDraft))
	router := testRouter(s)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prompt.txt?team_id=rival", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MID: Mohamed Salah")
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/mcp", apiKeyAuth("sekrit", "X-API-Key"), func(c *gin.Context) {
		c.String(http.StatusOK, "through")
	})

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"NoKey", nil, http.StatusUnauthorized},
		{"WrongKey", map[string]string{"X-API-Key": "guess"}, http.StatusUnauthorized},
		{"RightKey", map[string]string{"X-API-Key": "sekrit"}, http.StatusOK},
		{"BearerFallback", map[string]string{"Authorization": "Bearer sekrit"}, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAPIKeyAuthDisabledWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/mcp", apiKeyAuth("", "X-API-Key"), func(c *gin.Context) {
		c.String(http.StatusOK, "open")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
