// Package server exposes the compliance engine over HTTP for callers that
// cannot link the library directly. Every handler is a thin adapter: parse
// the request, call the corresponding pure function, encode the result.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/gib-compliance/internal/i18n"
	"github.com/rezonia/gib-compliance/internal/ledger"
	"github.com/rezonia/gib-compliance/internal/status"
	"github.com/rezonia/gib-compliance/internal/taxid"
	"github.com/rezonia/gib-compliance/internal/txid"
	"github.com/rezonia/gib-compliance/internal/ubltr"
	"github.com/rezonia/gib-compliance/internal/vat"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		// Validation endpoints
		v1.POST("/validate/taxid", s.handleValidateTaxID)
		v1.POST("/validate/totals", s.handleValidateTotals)
		v1.POST("/validate/ledger", s.handleValidateLedger)
		v1.POST("/validate/structure", s.handleValidateStructure)

		// Calculation endpoint
		v1.POST("/compute/vat", s.handleComputeVAT)

		// Generation endpoints
		v1.POST("/generate/ettn", s.handleGenerateETTN)
		v1.POST("/generate/series", s.handleGenerateSeries)

		// Catalog endpoints
		v1.POST("/translate", s.handleTranslate)
		v1.POST("/status/map", s.handleMapStatus)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleValidateTaxID(c *gin.Context) {
	var req TaxIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	kind, result := taxid.Classify(req.ID)
	c.JSON(http.StatusOK, TaxIDResponse{
		ID:    req.ID,
		Kind:  string(kind),
		Valid: result.Valid,
		Error: result.Err,
	})
}

func (s *Server) handleComputeVAT(c *gin.Context) {
	var req VATRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}
	if req.Amount.IsNegative() || req.RatePercent.IsNegative() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount and rate must be non-negative"})
		return
	}

	c.JSON(http.StatusOK, vat.Compute(req.Amount, req.RatePercent, req.VATIncluded))
}

func (s *Server) handleValidateTotals(c *gin.Context) {
	var req TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, vat.ValidateTotals(req))
}

func (s *Server) handleValidateLedger(c *gin.Context) {
	var req LedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ledger.ValidateDoubleEntry(req.Entries))
}

func (s *Server) handleValidateStructure(c *gin.Context) {
	var req StructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ubltr.ValidateStructure(req.Document))
}

func (s *Server) handleGenerateETTN(c *gin.Context) {
	c.JSON(http.StatusOK, ETTNResponse{ETTN: txid.NewETTN()})
}

func (s *Server) handleGenerateSeries(c *gin.Context) {
	var req SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SeriesResponse{
		Number: txid.SeriesNumber(req.Prefix, req.Year, req.Serial),
	})
}

func (s *Server) handleTranslate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, i18n.Translate(req.Code, i18n.ParseLocale(req.Locale)))
}

func (s *Server) handleMapStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
		return
	}

	mapped := status.MapToRegulator(req.Status, status.DocumentKind(req.Kind))
	c.JSON(http.StatusOK, StatusResponse{Status: mapped})
}
