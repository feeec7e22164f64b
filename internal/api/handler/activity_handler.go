package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/portal/internal/core/ports"
)

const recentActivityLimit = 5

// ActivityHandler serves reads over the append-only activity log.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List returns activity entries filtered by subject and date range.
// userId matches as a case-insensitive substring.
//
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        userId     query     string  false  "Subject id substring"
// @Param        startDate  query     string  false  "RFC3339 or YYYY-MM-DD"
// @Param        endDate    query     string  false  "RFC3339 or YYYY-MM-DD"
// @Success      200        {array}   domain.Activity
// @Failure      400        {object}  map[string]string
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	filter := ports.ActivityFilter{SubjectMatch: c.QueryParam("userId")}
	if err := parseDateRange(c, &filter); err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// ClientActivities returns activity entries for one client (exact id match)
// within an optional date range.
//
// @Summary      List one client's activities
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientId   query     string  false  "Client id"
// @Param        startDate  query     string  false  "RFC3339 or YYYY-MM-DD"
// @Param        endDate    query     string  false  "RFC3339 or YYYY-MM-DD"
// @Success      200        {array}   domain.Activity
// @Failure      400        {object}  map[string]string
// @Router       /clients/activities [get]
func (h *ActivityHandler) ClientActivities(c echo.Context) error {
	filter := ports.ActivityFilter{SubjectID: c.QueryParam("clientId")}
	if err := parseDateRange(c, &filter); err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Recent returns the five most recent activity entries for the dashboard.
//
// @Summary      Recent activities
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Activity
// @Router       /clients/recent-activities [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	entries, err := h.service.Recent(c.Request().Context(), recentActivityLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func parseDateRange(c echo.Context, filter *ports.ActivityFilter) error {
	if raw := c.QueryParam("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
		}
		filter.Start = &t
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
		}
		filter.End = &t
	}
	return nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
