package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// KPIHandler serves the CRUD routes of one channel table. R is the request
// body schema that converts into a T row.
//
// Every channel accepts client_id, from, to, page and limit on its list route.
// categoryParam names the extra category filter (platform or channel) and
// memberFilter enables team_member_id filtering.
type KPIHandler[T any, R kpiRequest[T]] struct {
	service       ports.KPIService[T]
	categoryParam string
	memberFilter  bool
}

// KPIHandlerOption tweaks the list filters a KPIHandler accepts.
type KPIHandlerOption func(*kpiHandlerOptions)

type kpiHandlerOptions struct {
	categoryParam string
	memberFilter  bool
}

// WithCategoryFilter exposes the row category as the given query parameter.
func WithCategoryFilter(param string) KPIHandlerOption {
	return func(o *kpiHandlerOptions) { o.categoryParam = param }
}

// WithMemberFilter enables the team_member_id query parameter.
func WithMemberFilter() KPIHandlerOption {
	return func(o *kpiHandlerOptions) { o.memberFilter = true }
}

func NewKPIHandler[T any, R kpiRequest[T]](service ports.KPIService[T], opts ...KPIHandlerOption) *KPIHandler[T, R] {
	var o kpiHandlerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &KPIHandler[T, R]{
		service:       service,
		categoryParam: o.categoryParam,
		memberFilter:  o.memberFilter,
	}
}

// kpiRoutes is the route set shared by every channel handler.
type kpiRoutes interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// mountKPIRoutes mounts the five CRUD routes of h on g.
func mountKPIRoutes(g *echo.Group, h kpiRoutes) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *KPIHandler[T, R]) List(c echo.Context) error {
	var f domain.KPIFilter
	b := echo.QueryParamsBinder(c).
		Int64("client_id", &f.ClientID).
		TextUnmarshaler("from", &f.From).
		TextUnmarshaler("to", &f.To).
		Int("page", &f.Page).
		Int("limit", &f.Limit)
	if h.memberFilter {
		b = b.Int64("team_member_id", &f.TeamMemberID)
	}
	if h.categoryParam != "" {
		b = b.String(h.categoryParam, &f.Category)
	}
	if err := b.BindError(); err != nil {
		return queryError(err)
	}

	res, err := h.service.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(res))
}

func (h *KPIHandler[T, R]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *KPIHandler[T, R]) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	rec, err := h.bindRecord(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), actor, rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *KPIHandler[T, R]) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rec, err := h.bindRecord(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), actor, id, rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *KPIHandler[T, R]) Delete(c echo.Context) error {
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

func (h *KPIHandler[T, R]) bindRecord(c echo.Context) (*T, error) {
	var req R
	if err := bindBody(c, &req); err != nil {
		return nil, err
	}
	return req.toRecord()
}
