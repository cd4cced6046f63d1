package api

import (
	"FinGather/internal/domain/models"
	"FinGather/internal/usecase"
	xhttp "FinGather/pkg/http"
	xlogger "FinGather/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GatherEchoHandler exposes the gather pipeline over HTTP.
type GatherEchoHandler struct {
	logger       *xlogger.Logger
	orchestrator *usecase.Orchestrator
	fundamentals *usecase.FundamentalsSource
}

func NewGatherEchoHandler(logger *xlogger.Logger, orchestrator *usecase.Orchestrator, fundamentals *usecase.FundamentalsSource) *GatherEchoHandler {
	return &GatherEchoHandler{logger: logger, orchestrator: orchestrator, fundamentals: fundamentals}
}

func (h *GatherEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/gather", h.Gather)
	g.GET("/fundamentals", h.Fundamentals)
	e.GET("/healthz", h.Health)
}

// Gather runs the full pipeline for one ticker and returns the report.
func (h *GatherEchoHandler) Gather(c echo.Context) error {
	req := &models.GatherRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	var sources []models.Source
	if req.Sources != nil {
		sources = make([]models.Source, 0, len(req.Sources))
		for _, s := range req.Sources {
			sources = append(sources, models.Source(s))
		}
	}

	report, err := h.orchestrator.Gather(c.Request().Context(), usecase.GatherParams{
		Ticker:    req.Ticker,
		Company:   req.Company,
		Agent:     req.Agent,
		Sources:   sources,
		Theme:     req.Theme,
		Directive: req.Directive,
		DryRun:    req.DryRun,
	})
	if err != nil {
		h.logger.Error("gather usecase error", xlogger.Error(err))
		return xhttp.BadRequestResponse(c, err.Error())
	}
	return xhttp.SuccessResponse(c, report)
}

// Fundamentals runs only the fundamentals source and returns the extracted
// metrics alongside the rendered document.
func (h *GatherEchoHandler) Fundamentals(c echo.Context) error {
	req := &models.FundamentalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	company := req.Company
	if company == "" {
		company = req.Ticker
	}
	payload, err := h.fundamentals.GatherYears(c.Request().Context(), usecase.SourceRequest{
		Ticker:  req.Ticker,
		Company: company,
	}, req.Years)
	if err != nil {
		h.logger.Error("fundamentals usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	fp, ok := payload.(*models.FundamentalsPayload)
	if !ok {
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, models.FundamentalsResponse{
		Ticker:      req.Ticker,
		CIK:         fp.CIK,
		MetricCount: fp.Count(),
		Metrics:     fp.Metrics,
		Derived:     fp.Derived,
		Markdown:    fp.Report,
	})
}

// Health is a liveness probe.
func (h *GatherEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
