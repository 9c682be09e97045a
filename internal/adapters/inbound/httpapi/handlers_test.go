package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/kraftreview/internal/adapters/inbound/httpapi"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/metrics"
	"github.com/openkraft/kraftreview/internal/application"
	"github.com/openkraft/kraftreview/internal/domain"
)

func newTestServer(t *testing.T, mutate func(*domain.Config), opts ...httpapi.Option) http.Handler {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.Server.StaticDir = ""
	if mutate != nil {
		mutate(&cfg)
	}
	return httpapi.New(cfg, application.NewReviewService(), opts...).Handler()
}

func do(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoot_ReturnsLiveness(t *testing.T) {
	w := do(newTestServer(t, nil), http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Code review API is running"}`, w.Body.String())
}

func TestReview_EvalSample(t *testing.T) {
	body := `{"code":"x = eval(input())\n"}`
	w := do(newTestServer(t, nil), http.MethodPost, "/review", body, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got domain.ReportJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 8, got.Score)
	assert.Equal(t, 7, got.SecurityScore)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, 1, got.Issues[0].Line)
	assert.Equal(t, "Use of eval() detected. This can lead to serious security vulnerabilities.", got.Issues[0].Message)
}

func TestReview_EmptyCodeIsValid(t *testing.T) {
	w := do(newTestServer(t, nil), http.MethodPost, "/review", `{"code":""}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"score": 10,
		"security_score": 10,
		"performance_score": 10,
		"maintainability_score": 10,
		"issues": [],
		"suggestions": [],
		"explanation": "Your code looks clean, readable, and well structured. Great job!",
		"ai_feedback": "Your code demonstrates strong structure and safe programming practices. Improving these areas will make the application more scalable and production-ready."
	}`, w.Body.String())
}

func TestReview_InvalidBodies(t *testing.T) {
	cases := map[string]string{
		"missing code": `{}`,
		"null code":    `{"code":null}`,
		"number code":  `{"code":42}`,
		"not json":     `code=1`,
	}
	h := newTestServer(t, nil)
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(h, http.MethodPost, "/review", body, nil)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var got map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, "INVALID_REQUEST", got["code"])
			assert.NotEmpty(t, got["error"])
		})
	}
}

func TestRules_ListsDefaultRules(t *testing.T) {
	w := do(newTestServer(t, nil), http.MethodGet, "/rules", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rules []domain.RuleInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rules))
	require.Len(t, rules, 9)
	assert.Equal(t, "overall-length", rules[0].ID)
	assert.Equal(t, "missing-comments", rules[8].ID)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(h, http.MethodGet, "/", "", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	w = do(h, http.MethodGet, "/", "", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS_EchoesOriginWithCredentials(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(h, http.MethodPost, "/review", `{"code":"#"}`, map[string]string{"Origin": "http://localhost:3000"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(h, http.MethodOptions, "/review", "", map[string]string{
		"Origin":                         "http://example.com",
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": "Content-Type, X-Custom",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "Content-Type, X-Custom", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	h := newTestServer(t, func(c *domain.Config) {
		c.Server.AllowedOrigins = []string{"https://app.example.com"}
	})

	w := do(h, http.MethodGet, "/", "", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do(h, http.MethodGet, "/", "", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFound_JSONWithoutFrontend(t *testing.T) {
	w := do(newTestServer(t, nil), http.MethodGet, "/nope", "", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found","code":"NOT_FOUND"}`, w.Body.String())
}

func TestFrontend_ServesIndexAndStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static", "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "js", "main.js"), []byte("console.log(1)"), 0o644))

	h := newTestServer(t, func(c *domain.Config) { c.Server.StaticDir = dir })

	w := do(h, http.MethodGet, "/static/js/main.js", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(h, http.MethodGet, "/history/42", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<html>app</html>")

	w = do(h, http.MethodGet, "/review", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "API paths never fall back to the app")
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestMetrics_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	cfg := domain.DefaultConfig()
	cfg.Server.StaticDir = ""
	svc := application.NewReviewService(application.WithRecorder(rec))
	h := httpapi.New(cfg, svc, httpapi.WithMetrics(rec, metrics.Handler(reg))).Handler()

	do(h, http.MethodPost, "/review", `{"code":"eval(x)"}`, nil)
	w := do(h, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, `kraftreview_http_requests_total{method="POST",route="/review",status="200"} 1`)
	assert.Contains(t, out, "kraftreview_reviews_total 1")
}

func TestMetrics_DisabledPathIsNotFound(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	h := newTestServer(t, func(c *domain.Config) { c.Metrics.Enabled = false },
		httpapi.WithMetrics(rec, metrics.Handler(reg)))

	w := do(h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type panicReviewer struct{}

func (panicReviewer) ReviewCode(_ context.Context, _ string) (*domain.Report, error) {
	panic("boom")
}
func (panicReviewer) Rules() []domain.RuleInfo { return nil }

func TestRecovery_ReturnsInternalError(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Server.StaticDir = ""
	h := httpapi.New(cfg, panicReviewer{}).Handler()

	w := do(h, http.MethodPost, "/review", `{"code":"x"}`, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL")
}

func TestReview_CanceledContext(t *testing.T) {
	h := newTestServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(`{"code":"x"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, 499, w.Code)
	assert.Contains(t, w.Body.String(), "CANCELED")
}
