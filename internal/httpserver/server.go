package httpserver

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/chartjs"
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/model"
	"github.com/tinytelemetry/secdash/internal/report"
)

// Options configures the dashboard served over HTTP.
type Options struct {
	Layout       model.Layout
	InitialTab   string
	RestoreDelay time.Duration
}

// Server serves the dashboard page and its JSON API.
type Server struct {
	addr      string
	opts      Options
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
	render    func(io.Writer, report.View) error
}

// NewServer creates a new dashboard HTTP server.
func NewServer(addr string, opts Options) *Server {
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	if len(opts.Layout.Tabs) == 0 {
		opts.Layout = catalog.Layout()
	}
	if opts.RestoreDelay <= 0 {
		opts.RestoreDelay = model.DefaultRestoreDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		render: report.Render,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Handler returns the gin router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleIndex)
	r.GET("/api/health", s.handleHealth)
	r.GET("/api/dashboard", s.handleDashboard)
	r.GET("/api/charts/:slot", s.handleChart)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// loaded is one freshly built page. Pages are not shared between requests.
type loaded struct {
	page   *dashboard.Page
	dash   *dashboard.Dashboard
	charts []*chartjs.Chart
}

func (s *Server) load(ctx context.Context, tab string) loaded {
	if tab == "" {
		tab = s.opts.InitialTab
	}
	page := dashboard.BuildPage(s.opts.Layout, dashboard.WithActiveTab(tab))
	var factory chartjs.Factory
	d := dashboard.Load(ctx, page, dashboard.Config{
		Layout:       s.opts.Layout,
		Factory:      &factory,
		RestoreDelay: s.opts.RestoreDelay,
	})
	return loaded{page: page, dash: d, charts: factory.Charts()}
}

func (s *Server) handleIndex(c *gin.Context) {
	l := s.load(c.Request.Context(), c.Query("tab"))
	view := report.FromPage(l.page, l.charts, s.opts.RestoreDelay)

	var buf bytes.Buffer
	if err := s.render(&buf, view); err != nil {
		log.Printf("httpserver: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to render dashboard"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
		"charts": len(s.opts.Layout.Slots),
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	l := s.load(c.Request.Context(), c.Query("tab"))

	tabs := make([]gin.H, 0, len(l.dash.Tabs.Tabs()))
	for _, t := range l.dash.Tabs.Tabs() {
		tabs = append(tabs, gin.H{
			"id":     t.ID,
			"title":  t.Button.Text,
			"active": l.dash.Tabs.IsActive(t.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title":           report.DefaultTitle,
		"active_tab":      l.dash.Tabs.Active(),
		"tabs":            tabs,
		"charts":          l.charts,
		"recommendations": dashboard.Cards(l.page, s.opts.Layout.RecommendationsElement),
	})
}

func (s *Server) handleChart(c *gin.Context) {
	slot := c.Param("slot")
	l := s.load(c.Request.Context(), "")
	for _, chart := range l.charts {
		if chart.Slot == slot {
			c.JSON(http.StatusOK, chart)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown chart slot"})
}
