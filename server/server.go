package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"sync"
	"time"

	"sjsage522/zenlesscollector/internal/collector"
	"sjsage522/zenlesscollector/logger"
	"sjsage522/zenlesscollector/services/worker"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Sort orders offered by the UI
const (
	OrderDescending = "desc"
	OrderAscending  = "asc"
)

// Runner performs one fetch action
type Runner interface {
	RunOnce(ctx context.Context) *worker.Result
}

// Server renders the code list and triggers fetch actions
type Server struct {
	runner   Runner
	currency string
	log      *logger.Logger

	mu   sync.RWMutex
	last *worker.Result
}

// New creates a UI server on top of a runner
func New(runner Runner, currency string) *Server {
	if currency == "" {
		currency = collector.DefaultCurrency
	}
	return &Server{
		runner:   runner,
		currency: currency,
		log:      logger.ForServer(),
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.handleIndex)
	r.POST("/fetch", s.handleFetch)

	api := r.Group("/api")
	api.GET("/codes", s.handleCodes)
	api.POST("/fetch", s.handleAPIFetch)

	return r
}

// pageData is the view model of the index page
type pageData struct {
	Fetched    bool
	Order      string
	Codes      []collector.RedemptionCode
	NewCodes   []string
	Currency   string
	FetchedAt  string
	SaveFailed bool
}

// codesResponse is the JSON view of the last result
type codesResponse struct {
	Fetched   bool                       `json:"fetched"`
	RunID     string                     `json:"run_id,omitempty"`
	FetchedAt *time.Time                 `json:"fetched_at,omitempty"`
	Order     string                     `json:"order"`
	Currency  string                     `json:"currency"`
	Codes     []collector.RedemptionCode `json:"codes"`
	NewCodes  []string                   `json:"new_codes"`
	SaveError string                     `json:"save_error,omitempty"`
}

func (s *Server) handleIndex(c *gin.Context) {
	order := parseOrder(c.Query("order"))
	data := pageData{Order: order, Currency: s.currency}

	if result := s.lastResult(); result != nil {
		data.Fetched = true
		data.Codes = collector.SortByReward(result.Codes, order == OrderAscending)
		data.NewCodes = result.NewCodes
		data.FetchedAt = result.FetchedAt.Format(time.RFC1123)
		data.SaveFailed = result.SaveErr != nil
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) handleFetch(c *gin.Context) {
	order := parseOrder(c.PostForm("order"))
	s.run(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/?order="+order)
}

func (s *Server) handleCodes(c *gin.Context) {
	c.JSON(http.StatusOK, s.response(s.lastResult(), parseOrder(c.Query("order"))))
}

func (s *Server) handleAPIFetch(c *gin.Context) {
	result := s.run(c.Request.Context())
	c.JSON(http.StatusOK, s.response(result, parseOrder(c.Query("order"))))
}

// run performs a fetch action and keeps its result for rendering
func (s *Server) run(ctx context.Context) *worker.Result {
	result := s.runner.RunOnce(ctx)

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	s.log.Info().
		Str("run_id", result.RunID).
		Int("codes", len(result.Codes)).
		Strs("new_codes", result.NewCodes).
		Msg("Fetch action completed")

	return result
}

func (s *Server) lastResult() *worker.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Server) response(result *worker.Result, order string) codesResponse {
	resp := codesResponse{
		Order:    order,
		Currency: s.currency,
		Codes:    []collector.RedemptionCode{},
		NewCodes: []string{},
	}
	if result == nil {
		return resp
	}

	fetchedAt := result.FetchedAt
	resp.Fetched = true
	resp.RunID = result.RunID
	resp.FetchedAt = &fetchedAt
	resp.Codes = collector.SortByReward(result.Codes, order == OrderAscending)
	if result.NewCodes != nil {
		resp.NewCodes = result.NewCodes
	}
	if result.SaveErr != nil {
		resp.SaveError = result.SaveErr.Error()
	}
	return resp
}

// parseOrder maps user input to a sort order, defaulting to descending
func parseOrder(value string) string {
	switch value {
	case OrderAscending, "ascending", "Ascending":
		return OrderAscending
	default:
		return OrderDescending
	}
}

// requestLogger logs each request through the structured logger
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Handled request")
	}
}
