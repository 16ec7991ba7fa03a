package handler

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/shivamratti13/youtube-comment-analysis/internal/charts"
	"github.com/shivamratti13/youtube-comment-analysis/internal/middleware"
	"github.com/shivamratti13/youtube-comment-analysis/internal/models"
	"github.com/shivamratti13/youtube-comment-analysis/internal/service"
	"github.com/shivamratti13/youtube-comment-analysis/internal/youtube"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Analyzer runs the pipeline for one URL
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*models.Analysis, error)
}

// ModelInfo describes the loaded classifier
type ModelInfo interface {
	GetModelInfo() map[string]interface{}
}

// Handler handles HTTP requests
type Handler struct {
	analyzer Analyzer
	model    ModelInfo
	logger   *zap.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(analyzer Analyzer, model ModelInfo, logger *zap.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		model:    model,
		logger:   logger,
	}
}

// RegisterRoutes registers the dashboard, JSON API and health routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", h.Index)
	r.POST("/analyze", h.AnalyzeForm)

	api := r.Group("/api/v1")
	{
		api.GET("/analyze", h.AnalyzeJSON)
	}

	// Health check
	r.GET("/health", h.HealthCheck)
}

// pageData is the view model of index.html
type pageData struct {
	URL        string
	Error      string
	Analysis   *models.Analysis
	BarChart   string
	DonutChart string
}

// Index renders the empty form
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

// AnalyzeForm runs the pipeline for the submitted form and renders results
func (h *Handler) AnalyzeForm(c *gin.Context) {
	rawURL := c.PostForm("url")
	page := pageData{URL: rawURL}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), rawURL)
	if err != nil {
		status, message := h.describeError(c, err)
		page.Error = message
		c.HTML(status, "index.html", page)
		return
	}

	if len(analysis.Records) > 0 {
		if err := renderCharts(&page, charts.NewTally(analysis.Records)); err != nil {
			h.logger.Error("Failed to render charts",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Error(err))
			page.Error = "Failed to render charts"
			c.HTML(http.StatusInternalServerError, "index.html", page)
			return
		}
	}

	page.Analysis = analysis
	c.HTML(http.StatusOK, "index.html", page)
}

func renderCharts(page *pageData, tally charts.Tally) error {
	bar, err := charts.RenderBar(tally)
	if err != nil {
		return err
	}
	donut, err := charts.RenderDonut(tally)
	if err != nil {
		return err
	}
	page.BarChart, page.DonutChart = bar, donut
	return nil
}

// AnalyzeJSON returns the analysis for ?url= as JSON
func (h *Handler) AnalyzeJSON(c *gin.Context) {
	analysis, err := h.analyzer.Analyze(c.Request.Context(), c.Query("url"))
	if err != nil {
		status, message := h.describeError(c, err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "comment-sentiment-dashboard",
		"model":   h.model.GetModelInfo(),
	})
}

// describeError maps a pipeline failure to a status and user-facing message
func (h *Handler) describeError(c *gin.Context, err error) (int, string) {
	var status int
	var message string

	switch {
	case errors.Is(err, service.ErrMissingURL):
		status, message = http.StatusBadRequest, "Please Enter Video URL"
	case errors.Is(err, service.ErrInvalidVideoID):
		status, message = http.StatusBadRequest, "Incorrect Video Id or Error Fetching the details"
	case errors.Is(err, youtube.ErrNoMetadata):
		status, message = http.StatusNotFound, "Error Fetching Video Details"
	case errors.Is(err, service.ErrCommentFetch):
		status, message = http.StatusBadGateway, "Failed to fetch comments: "+err.Error()
	case errors.Is(err, service.ErrClassification):
		status, message = http.StatusBadGateway, "Failed to classify comments: "+err.Error()
	default:
		status, message = http.StatusBadGateway, "Error Fetching Video Details"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Analysis failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
	} else {
		h.logger.Info("Analysis rejected",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
	}

	return status, message
}
