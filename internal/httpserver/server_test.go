package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/secdash/internal/report"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, opts Options) (*Server, http.Handler) {
	t.Helper()
	srv := NewServer("", opts)
	srv.startTime = time.Now()
	return srv, srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := get(t, h, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if body["charts"] != float64(13) {
		t.Errorf("charts = %v, want 13", body["charts"])
	}
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	_, h := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("health POST status = %d, want 405 or 404", w.Code)
	}
}

func TestIndex_RendersDashboard(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := get(t, h, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("index status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<section id="overview-tab" class="tab-content active">`) {
		t.Error("overview should be the initial tab")
	}
	if !strings.Contains(body, `<canvas id="tacticsCoverageChart" class="chart">`) {
		t.Error("radar canvas missing")
	}
}

func TestIndex_RenderErrorIsCleanJSON(t *testing.T) {
	srv, _ := newTestServer(t, Options{})
	srv.render = func(w io.Writer, _ report.View) error {
		io.WriteString(w, "<!DOCTYPE html><html><body>partial")
		return errors.New("template exploded")
	}

	w := get(t, srv.Handler(), "/")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("index status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "partial") {
		t.Fatalf("partial HTML leaked into error response: %q", w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body["error"] != "failed to render dashboard" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestIndex_TabQuery(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		path   string
		active string
	}{
		{"query selects tab", Options{}, "/?tab=trends", "trends"},
		{"config initial tab", Options{InitialTab: "incidents"}, "/", "incidents"},
		{"query wins over config", Options{InitialTab: "incidents"}, "/?tab=trends", "trends"},
		{"unknown falls back to first", Options{}, "/?tab=nope", "overview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestServer(t, tt.opts)
			body := get(t, h, tt.path).Body.String()
			want := `<section id="` + tt.active + `-tab" class="tab-content active">`
			if !strings.Contains(body, want) {
				t.Errorf("page missing %q", want)
			}
			if n := strings.Count(body, `class="tab-content active"`); n != 1 {
				t.Errorf("active panels = %d, want 1", n)
			}
		})
	}
}

func TestDashboardEndpoint(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := get(t, h, "/api/dashboard?tab=incidents")
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}

	var body struct {
		ActiveTab string `json:"active_tab"`
		Tabs      []struct {
			ID     string `json:"id"`
			Active bool   `json:"active"`
		} `json:"tabs"`
		Charts []struct {
			Slot   string                 `json:"slot"`
			Canvas string                 `json:"canvas"`
			Config map[string]interface{} `json:"config"`
		} `json:"charts"`
		Recommendations []struct {
			Title string `json:"title"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal dashboard: %v", err)
	}

	if body.ActiveTab != "incidents" {
		t.Errorf("active_tab = %q, want incidents", body.ActiveTab)
	}
	if len(body.Tabs) != 3 || !body.Tabs[1].Active {
		t.Errorf("tabs = %+v", body.Tabs)
	}
	if len(body.Charts) != 13 {
		t.Fatalf("charts = %d, want 13", len(body.Charts))
	}
	if body.Charts[0].Slot != "severity" || body.Charts[0].Canvas != "severityChart" {
		t.Errorf("first chart = %+v", body.Charts[0])
	}
	if len(body.Recommendations) != 3 || body.Recommendations[0].Title != "Implement Multi-Factor Authentication" {
		t.Errorf("recommendations = %+v", body.Recommendations)
	}
}

func TestChartEndpoint(t *testing.T) {
	_, h := newTestServer(t, Options{})

	w := get(t, h, "/api/charts/emailAttackAnalysis")
	if w.Code != http.StatusOK {
		t.Fatalf("chart status = %d", w.Code)
	}
	var chart struct {
		Config struct {
			Type string `json:"type"`
			Data struct {
				Labels []string `json:"labels"`
			} `json:"data"`
		} `json:"config"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &chart); err != nil {
		t.Fatalf("unmarshal chart: %v", err)
	}
	if chart.Config.Type != "bar" || len(chart.Config.Data.Labels) != 5 {
		t.Errorf("email chart = %+v", chart.Config)
	}

	if w := get(t, h, "/api/charts/nope"); w.Code != http.StatusNotFound {
		t.Errorf("unknown slot status = %d, want 404", w.Code)
	}
}

func TestStartStop(t *testing.T) {
	srv := NewServer("127.0.0.1:0", Options{})
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
