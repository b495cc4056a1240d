package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// ActivityHandler serves the audit feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /api/activities, newest first.
//
// @Summary      List recent activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        entity_type  query     string  false  "e.g. client, team_member, ads_kpi"
// @Param        action       query     string  false  "create, update, delete, login or logout"
// @Param        user_id      query     int     false  "Acting user"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Page size (default 20, max 100)"
// @Success      200          {object}  listResponse[domain.Activity]
// @Failure      400          {object}  errorResponse
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	var f domain.ActivityFilter
	err := echo.QueryParamsBinder(c).
		String("entity_type", &f.EntityType).
		String("action", &f.Action).
		Int64("user_id", &f.UserID).
		Int("page", &f.Page).
		Int("limit", &f.Limit).
		BindError()
	if err != nil {
		return queryError(err)
	}

	res, err := h.service.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(res))
}
