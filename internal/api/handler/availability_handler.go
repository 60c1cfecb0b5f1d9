package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/coordination-api/internal/api/metrics"
	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// AvailabilityHandler handles HTTP requests for availability slots and the
// aggregated summary view.
type AvailabilityHandler struct {
	service ports.AvailabilityService
}

func NewAvailabilityHandler(service ports.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// Summary handles GET /v1/availability/summary.
//
// @Summary      Aggregated availability per user for a date range
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  false  "Range start (YYYY-MM-DD, inclusive)"
// @Param        end_date    query     string  false  "Range end (YYYY-MM-DD, inclusive)"
// @Param        preset      query     string  false  "Quick range: today, this-week, next-week, this-month"
// @Param        search      query     string  false  "Case-insensitive name or email filter"
// @Success      200         {object}  summaryResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/availability/summary [get]
func (h *AvailabilityHandler) Summary(c echo.Context) error {
	input := ports.SummaryInput{
		Preset: domain.RangePreset(c.QueryParam("preset")),
		Search: c.QueryParam("search"),
	}
	if input.Preset == "" {
		r, err := parseDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
		if err != nil {
			return err
		}
		input.Range = r
	}

	result, err := h.service.Summary(c.Request().Context(), input)
	if err != nil {
		return err
	}

	preset := string(input.Preset)
	if preset == "" {
		preset = "custom"
	}
	metrics.SummaryRequestsTotal.WithLabelValues(preset).Inc()
	if result.OrphanCount > 0 {
		metrics.OrphanSlotsTotal.Add(float64(result.OrphanCount))
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Range:       result.Range,
		Users:       result.Users,
		Counts:      result.Counts,
		OrphanCount: result.OrphanCount,
	})
}

// List handles GET /v1/availability.
//
// @Summary      Raw availability slots for a date range
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  true  "Range start (YYYY-MM-DD, inclusive)"
// @Param        end_date    query     string  true  "Range end (YYYY-MM-DD, inclusive)"
// @Success      200         {object}  listSlotsResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/availability [get]
func (h *AvailabilityHandler) List(c echo.Context) error {
	r, err := parseDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return err
	}

	slots, err := h.service.ListSlots(c.Request().Context(), r)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listSlotsResponse{Range: r, Slots: slots})
}

// Create handles POST /v1/availability.
//
// @Summary      Record a new availability slot
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSlotRequest  true  "Slot details"
// @Success      201   {object}  domain.AvailabilitySlot
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/availability [post]
func (h *AvailabilityHandler) Create(c echo.Context) error {
	var req createSlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	// Members record their own availability; admins may record for anyone.
	if req.UserID == "" || role != domain.RoleAdmin {
		req.UserID = userID
	}

	slot, err := h.service.CreateSlot(c.Request().Context(), ports.CreateSlotInput{
		UserID:   req.UserID,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Status:   req.Status,
		Note:     req.Note,
	})
	if err != nil {
		return err
	}

	metrics.SlotsCreatedTotal.WithLabelValues(string(slot.Status)).Inc()

	return c.JSON(http.StatusCreated, slot)
}

// Delete handles DELETE /v1/availability/:id. Admin only; enforced by the
// RBAC middleware on the route.
//
// @Summary      Delete an availability slot
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Slot ID"
// @Success      204  "No Content"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/availability/{id} [delete]
func (h *AvailabilityHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSlot(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// parseDateRange converts inclusive wire dates into the half-open range used
// internally. Both parameters are required together.
func parseDateRange(startDate, endDate string) (domain.DateRange, error) {
	if startDate == "" || endDate == "" {
		return domain.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "start_date and end_date are required when no preset is given")
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return domain.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "start_date must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return domain.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "end_date must be formatted as YYYY-MM-DD")
	}

	r := domain.DateRange{Start: start, End: end.AddDate(0, 0, 1)}
	if err := r.Validate(); err != nil {
		return domain.DateRange{}, err
	}
	return r, nil
}
