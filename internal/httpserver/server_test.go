package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patient-intake-router/internal/prompt"
	"patient-intake-router/internal/router"
	"patient-intake-router/internal/routing"
	"patient-intake-router/pkg/log"
)

type stubRouter struct{}

func (stubRouter) ProcessUserInput(ctx context.Context, text string) router.Decision {
	return router.Decision{Status: router.StatusEmergency, Action: router.ActionRouteToEmergency}
}

func (stubRouter) Classify(ctx context.Context, text string) (router.IntentClassification, error) {
	return router.IntentClassification{}, nil
}

func newTestHTTPServer(t *testing.T, prompts *prompt.Library) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := routing.New(
		map[string]routing.Department{"billing": {Name: "Billing"}},
		map[string]routing.Prerequisite{},
		[]routing.RoutingRule{{Intent: "billing_inquiry", RouteTo: "billing"}},
		routing.GlobalRules{},
	)
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Router:      stubRouter{},
		Routing:     cfg,
		Prompts:     prompts,
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.ErrorContains(t, err, "router is required")

	_, err = New(nil, Config{Mode: gin.TestMode, Port: 8080})
	assert.ErrorContains(t, err, "logger is required")
}

func TestSystemRoutes(t *testing.T) {
	full := prompt.NewLibrary(map[string]map[string]string{
		router.PromptCategory: {router.PromptName: "{user_input}"},
	})
	srv := newTestHTTPServer(t, full)

	for _, path := range []string{"/health", "/live", "/ready"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := serve(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReady_WithoutPrompt(t *testing.T) {
	srv := newTestHTTPServer(t, nil)

	w := serve(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, router.MsgPromptNotFound, body.Message)
	assert.Equal(t, false, body.Data["prompt_loaded"])
}

func TestDomainRoutesMounted(t *testing.T) {
	srv := newTestHTTPServer(t, nil)

	w := serve(srv, http.MethodPost, "/api/v1/route", `{"text":"chest pain"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"route_to_emergency"`)

	w = serve(srv, http.MethodGet, "/api/v1/departments/billing", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
