package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/meson/internal/generator"
	"github.com/weiawesome/meson/internal/metrics"
	pkglog "github.com/weiawesome/meson/pkg/log"
	"github.com/weiawesome/meson/pkg/response"
)

// Handler handles HTTP requests for the meson service.
type Handler struct {
	gen     *generator.MesonGenerator
	metrics *metrics.Metrics
}

// NewHandler creates a new HTTP handler. m may be nil.
func NewHandler(gen *generator.MesonGenerator, m *metrics.Metrics) *Handler {
	return &Handler{
		gen:     gen,
		metrics: m,
	}
}

// RegisterRoutes registers all routes onto the Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			// POST /api/v1/ids?count=n
			ids.POST("", h.Generate)
			// GET /api/v1/ids/generator
			ids.GET("/generator", h.Info)
			// GET /api/v1/ids/:id
			ids.GET("/:id", h.Parse)
			// GET /api/v1/ids/:id/validate
			ids.GET("/:id/validate", h.Validate)
		}
	}

	r.GET("/health", h.HealthCheck)
}

// generateRequest is the query of POST /api/v1/ids.
type generateRequest struct {
	Count *int `form:"count" binding:"omitempty,min=1"`
}

// Generate handles POST /api/v1/ids. Without count it returns one id,
// otherwise a batch.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	l := pkglog.Ctx(ctx)

	var req generateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Count == nil {
		id, err := h.gen.Generate()
		if err != nil {
			l.Error().Err(err).Msg("generate failed")
			response.InternalError(c, "failed to generate id")
			return
		}
		h.metrics.ObserveGenerated(metrics.TransportHTTP, 1)
		response.Created(c, gin.H{"id": id})
		return
	}

	ids, err := h.gen.GenerateBatch(*req.Count)
	if err != nil {
		if generator.Reason(err) == generator.ReasonArgument {
			response.BadRequest(c, err.Error())
			return
		}
		l.Error().Err(err).Int(pkglog.FieldCount, *req.Count).Msg("generate batch failed")
		response.InternalError(c, "failed to generate ids")
		return
	}
	h.metrics.ObserveGenerated(metrics.TransportHTTP, len(ids))
	response.Created(c, gin.H{"ids": ids})
}

// Parse handles GET /api/v1/ids/:id.
func (h *Handler) Parse(c *gin.Context) {
	id := c.Param("id")

	result, err := h.gen.Parse(id)
	if err != nil {
		h.metrics.ObserveParseFailure(metrics.TransportHTTP, err)
		l := pkglog.Ctx(c.Request.Context())
		l.Debug().Err(err).Str(pkglog.FieldID, id).Msg("parse rejected")
		invalidID(c, err)
		return
	}

	response.Success(c, result)
}

// Validate handles GET /api/v1/ids/:id/validate. Invalid ids are a
// successful response with valid=false.
func (h *Handler) Validate(c *gin.Context) {
	id := c.Param("id")

	valid, reason := true, ""
	if _, err := h.gen.Parse(id); err != nil {
		h.metrics.ObserveParseFailure(metrics.TransportHTTP, err)
		valid, reason = false, err.Error()
	}

	response.Success(c, gin.H{"valid": valid, "reason": reason})
}

// Info handles GET /api/v1/ids/generator.
func (h *Handler) Info(c *gin.Context) {
	response.Success(c, h.gen.Info())
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func invalidID(c *gin.Context, err error) {
	switch generator.Reason(err) {
	case generator.ReasonFormat:
		response.Error(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
	case generator.ReasonValidation:
		response.Error(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	default:
		response.BadRequest(c, err.Error())
	}
}
