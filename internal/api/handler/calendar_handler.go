package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// CalendarHandler serves the mirrored shared-calendar events.
type CalendarHandler struct {
	service ports.CalendarService
}

func NewCalendarHandler(service ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

type calendarEventsResponse struct {
	Range  domain.DateRange       `json:"range"`
	Events []domain.CalendarEvent `json:"events"`
}

// Events handles GET /v1/calendar/events.
//
// @Summary      Mirrored calendar events for a date range
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  true  "Range start (YYYY-MM-DD, inclusive)"
// @Param        end_date    query     string  true  "Range end (YYYY-MM-DD, inclusive)"
// @Success      200         {object}  calendarEventsResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/calendar/events [get]
func (h *CalendarHandler) Events(c echo.Context) error {
	r, err := parseDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return err
	}

	events, err := h.service.Events(c.Request().Context(), r)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, calendarEventsResponse{Range: r, Events: events})
}
