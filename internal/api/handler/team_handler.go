package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// TeamHandler serves /api/team.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// List handles GET /api/team.
//
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "active or inactive"
// @Param        department  query     string  false  "Department"
// @Param        search      query     string  false  "Matches name, email or position"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Page size (default 20, max 100)"
// @Success      200         {object}  listResponse[domain.TeamMember]
// @Failure      400         {object}  errorResponse
// @Router       /team [get]
func (h *TeamHandler) List(c echo.Context) error {
	var f domain.TeamFilter
	err := echo.QueryParamsBinder(c).
		String("status", &f.Status).
		String("department", &f.Department).
		String("search", &f.Search).
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

// Get handles GET /api/team/:id.
//
// @Summary      Get a team member
// @Tags         team
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Team member ID"
// @Success      200  {object}  domain.TeamMember
// @Failure      404  {object}  errorResponse
// @Router       /team/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Create handles POST /api/team.
//
// @Summary      Add a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamMemberRequest  true  "Team member"
// @Success      201   {object}  domain.TeamMember
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /team [post]
func (h *TeamHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req teamMemberRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	m, err := h.service.Create(c.Request().Context(), actor, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/team/:id.
//
// @Summary      Replace a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Team member ID"
// @Param        body  body      teamMemberRequest  true  "Team member"
// @Success      200   {object}  domain.TeamMember
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /team/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req teamMemberRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	m, err := h.service.Update(c.Request().Context(), actor, id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/team/:id.
//
// @Summary      Remove a team member
// @Tags         team
// @Security     BearerAuth
// @Param        id   path  int  true  "Team member ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /team/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
