package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// SearchHandler serves the smart-search admin view: indexed features, index
// coverage, and the embedding regeneration job.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

type featuresResponse struct {
	Features []domain.SearchableFeature `json:"features"`
	Coverage domain.CoverageStatus      `json:"coverage"`
}

type regenerateResponse struct {
	Status string `json:"status"`
}

// Features handles GET /v1/smart-search/features.
//
// @Summary      List indexed features with coverage
// @Tags         smart-search
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  featuresResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/smart-search/features [get]
func (h *SearchHandler) Features(c echo.Context) error {
	features, err := h.service.Features(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, featuresResponse{
		Features: features,
		Coverage: domain.ComputeCoverage(features),
	})
}

// Regenerate handles POST /v1/smart-search/regenerate-embeddings. Admin only;
// enforced by the RBAC middleware on the route. The job runs in the
// background, so a successful start returns 202 and clients poll Status.
//
// @Summary      Start embedding regeneration
// @Tags         smart-search
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  regenerateResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/smart-search/regenerate-embeddings [post]
func (h *SearchHandler) Regenerate(c echo.Context) error {
	if err := h.service.Regenerate(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, regenerateResponse{Status: "started"})
}

// Status handles GET /v1/smart-search/status.
//
// @Summary      Index coverage and regeneration job progress
// @Tags         smart-search
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SearchStatusResult
// @Failure      401  {object}  errorResponse
// @Router       /v1/smart-search/status [get]
func (h *SearchHandler) Status(c echo.Context) error {
	status, err := h.service.Status(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}
