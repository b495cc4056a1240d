package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// SocialMediaHandler serves /api/social-media.
type SocialMediaHandler struct {
	kpi *KPIHandler[domain.SocialMediaKPI, socialMediaRequest]
}

func NewSocialMediaHandler(service ports.KPIService[domain.SocialMediaKPI]) *SocialMediaHandler {
	return &SocialMediaHandler{kpi: NewKPIHandler[domain.SocialMediaKPI, socialMediaRequest](service, WithCategoryFilter("platform"))}
}

// Register mounts the CRUD routes on g.
func (h *SocialMediaHandler) Register(g *echo.Group) {
	mountKPIRoutes(g, h)
}

// List handles GET /api/social-media.
//
// @Summary      List social media rows
// @Tags         social-media
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     int     false  "Client"
// @Param        from       query     string  false  "Earliest period_date (YYYY-MM-DD)"
// @Param        to         query     string  false  "Latest period_date (YYYY-MM-DD)"
// @Param        platform   query     string  false  "Platform"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 20, max 100)"
// @Success      200        {object}  listResponse[domain.SocialMediaKPI]
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /social-media [get]
func (h *SocialMediaHandler) List(c echo.Context) error { return h.kpi.List(c) }

// @Summary      Get a social media row
// @Tags         social-media
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  domain.SocialMediaKPI
// @Failure      404  {object}  errorResponse
// @Router       /social-media/{id} [get]
func (h *SocialMediaHandler) Get(c echo.Context) error { return h.kpi.Get(c) }

// @Summary      Create a social media row
// @Tags         social-media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      socialMediaRequest  true  "Payload"
// @Success      201   {object}  domain.SocialMediaKPI
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /social-media [post]
func (h *SocialMediaHandler) Create(c echo.Context) error { return h.kpi.Create(c) }

// @Summary      Replace a social media row
// @Tags         social-media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Record ID"
// @Param        body  body      socialMediaRequest  true  "Payload"
// @Success      200   {object}  domain.SocialMediaKPI
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /social-media/{id} [put]
func (h *SocialMediaHandler) Update(c echo.Context) error { return h.kpi.Update(c) }

// @Summary      Delete a social media row
// @Tags         social-media
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /social-media/{id} [delete]
func (h *SocialMediaHandler) Delete(c echo.Context) error { return h.kpi.Delete(c) }

// WebsiteSEOHandler serves /api/website-seo.
type WebsiteSEOHandler struct {
	kpi *KPIHandler[domain.WebsiteSEOKPI, websiteSEORequest]
}

func NewWebsiteSEOHandler(service ports.KPIService[domain.WebsiteSEOKPI]) *WebsiteSEOHandler {
	return &WebsiteSEOHandler{kpi: NewKPIHandler[domain.WebsiteSEOKPI, websiteSEORequest](service)}
}

// Register mounts the CRUD routes on g.
func (h *WebsiteSEOHandler) Register(g *echo.Group) {
	mountKPIRoutes(g, h)
}

// List handles GET /api/website-seo.
//
// @Summary      List website rows
// @Tags         website-seo
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     int     false  "Client"
// @Param        from       query     string  false  "Earliest period_date (YYYY-MM-DD)"
// @Param        to         query     string  false  "Latest period_date (YYYY-MM-DD)"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 20, max 100)"
// @Success      200        {object}  listResponse[domain.WebsiteSEOKPI]
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /website-seo [get]
func (h *WebsiteSEOHandler) List(c echo.Context) error { return h.kpi.List(c) }

// @Summary      Get a website row
// @Tags         website-seo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  domain.WebsiteSEOKPI
// @Failure      404  {object}  errorResponse
// @Router       /website-seo/{id} [get]
func (h *WebsiteSEOHandler) Get(c echo.Context) error { return h.kpi.Get(c) }

// @Summary      Create a website row
// @Tags         website-seo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      websiteSEORequest  true  "Payload"
// @Success      201   {object}  domain.WebsiteSEOKPI
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /website-seo [post]
func (h *WebsiteSEOHandler) Create(c echo.Context) error { return h.kpi.Create(c) }

// @Summary      Replace a website row
// @Tags         website-seo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Record ID"
// @Param        body  body      websiteSEORequest  true  "Payload"
// @Success      200   {object}  domain.WebsiteSEOKPI
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /website-seo/{id} [put]
func (h *WebsiteSEOHandler) Update(c echo.Context) error { return h.kpi.Update(c) }

// @Summary      Delete a website row
// @Tags         website-seo
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /website-seo/{id} [delete]
func (h *WebsiteSEOHandler) Delete(c echo.Context) error { return h.kpi.Delete(c) }

// AdsHandler serves /api/ads.
type AdsHandler struct {
	kpi *KPIHandler[domain.AdsKPI, adsRequest]
}

func NewAdsHandler(service ports.KPIService[domain.AdsKPI]) *AdsHandler {
	return &AdsHandler{kpi: NewKPIHandler[domain.AdsKPI, adsRequest](service, WithCategoryFilter("platform"))}
}

// Register mounts the CRUD routes on g.
func (h *AdsHandler) Register(g *echo.Group) {
	mountKPIRoutes(g, h)
}

// List handles GET /api/ads.
//
// @Summary      List ads rows
// @Tags         ads
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     int     false  "Client"
// @Param        from       query     string  false  "Earliest period_date (YYYY-MM-DD)"
// @Param        to         query     string  false  "Latest period_date (YYYY-MM-DD)"
// @Param        platform   query     string  false  "Platform"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 20, max 100)"
// @Success      200        {object}  listResponse[domain.AdsKPI]
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /ads [get]
func (h *AdsHandler) List(c echo.Context) error { return h.kpi.List(c) }

// @Summary      Get an ads row
// @Tags         ads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  domain.AdsKPI
// @Failure      404  {object}  errorResponse
// @Router       /ads/{id} [get]
func (h *AdsHandler) Get(c echo.Context) error { return h.kpi.Get(c) }

// @Summary      Create an ads row
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adsRequest  true  "Payload"
// @Success      201   {object}  domain.AdsKPI
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /ads [post]
func (h *AdsHandler) Create(c echo.Context) error { return h.kpi.Create(c) }

// @Summary      Replace an ads row
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int         true  "Record ID"
// @Param        body  body      adsRequest  true  "Payload"
// @Success      200   {object}  domain.AdsKPI
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /ads/{id} [put]
func (h *AdsHandler) Update(c echo.Context) error { return h.kpi.Update(c) }

// @Summary      Delete an ads row
// @Tags         ads
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /ads/{id} [delete]
func (h *AdsHandler) Delete(c echo.Context) error { return h.kpi.Delete(c) }

// EmailHandler serves /api/email.
type EmailHandler struct {
	kpi *KPIHandler[domain.EmailKPI, emailRequest]
}

func NewEmailHandler(service ports.KPIService[domain.EmailKPI]) *EmailHandler {
	return &EmailHandler{kpi: NewKPIHandler[domain.EmailKPI, emailRequest](service)}
}

// Register mounts the CRUD routes on g.
func (h *EmailHandler) Register(g *echo.Group) {
	mountKPIRoutes(g, h)
}

// List handles GET /api/email.
//
// @Summary      List email campaign rows
// @Tags         email
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     int     false  "Client"
// @Param        from       query     string  false  "Earliest period_date (YYYY-MM-DD)"
// @Param        to         query     string  false  "Latest period_date (YYYY-MM-DD)"
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 20, max 100)"
// @Success      200        {object}  listResponse[domain.EmailKPI]
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Router       /email [get]
func (h *EmailHandler) List(c echo.Context) error { return h.kpi.List(c) }

// @Summary      Get an email campaign row
// @Tags         email
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  domain.EmailKPI
// @Failure      404  {object}  errorResponse
// @Router       /email/{id} [get]
func (h *EmailHandler) Get(c echo.Context) error { return h.kpi.Get(c) }

// @Summary      Create an email campaign row
// @Tags         email
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      emailRequest  true  "Payload"
// @Success      201   {object}  domain.EmailKPI
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /email [post]
func (h *EmailHandler) Create(c echo.Context) error { return h.kpi.Create(c) }

// @Summary      Replace an email campaign row
// @Tags         email
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Record ID"
// @Param        body  body      emailRequest  true  "Payload"
// @Success      200   {object}  domain.EmailKPI
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /email/{id} [put]
func (h *EmailHandler) Update(c echo.Context) error { return h.kpi.Update(c) }

// @Summary      Delete an email campaign row
// @Tags         email
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /email/{id} [delete]
func (h *EmailHandler) Delete(c echo.Context) error { return h.kpi.Delete(c) }

// ClientResponseHandler serves /api/responses.
type ClientResponseHandler struct {
	kpi *KPIHandler[domain.ClientResponse, clientResponseRequest]
}

func NewClientResponseHandler(service ports.KPIService[domain.ClientResponse]) *ClientResponseHandler {
	return &ClientResponseHandler{kpi: NewKPIHandler[domain.ClientResponse, clientResponseRequest](service, WithCategoryFilter("channel"), WithMemberFilter())}
}

// Register mounts the CRUD routes on g.
func (h *ClientResponseHandler) Register(g *echo.Group) {
	mountKPIRoutes(g, h)
}

// List handles GET /api/responses.
//
// @Summary      List client responses
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        client_id       query     int     false  "Client"
// @Param        from            query     string  false  "Earliest period_date (YYYY-MM-DD)"
// @Param        to              query     string  false  "Latest period_date (YYYY-MM-DD)"
// @Param        team_member_id  query     int     false  "Team member"
// @Param        channel         query     string  false  "Channel"
// @Param        page            query     int     false  "Page number (default 1)"
// @Param        limit           query     int     false  "Page size (default 20, max 100)"
// @Success      200             {object}  listResponse[domain.ClientResponse]
// @Failure      400             {object}  errorResponse
// @Failure      401             {object}  errorResponse
// @Router       /responses [get]
func (h *ClientResponseHandler) List(c echo.Context) error { return h.kpi.List(c) }

// @Summary      Get a client response
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  domain.ClientResponse
// @Failure      404  {object}  errorResponse
// @Router       /responses/{id} [get]
func (h *ClientResponseHandler) Get(c echo.Context) error { return h.kpi.Get(c) }

// @Summary      Create a client response
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientResponseRequest  true  "Payload"
// @Success      201   {object}  domain.ClientResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /responses [post]
func (h *ClientResponseHandler) Create(c echo.Context) error { return h.kpi.Create(c) }

// @Summary      Replace a client response
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Record ID"
// @Param        body  body      clientResponseRequest  true  "Payload"
// @Success      200   {object}  domain.ClientResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /responses/{id} [put]
func (h *ClientResponseHandler) Update(c echo.Context) error { return h.kpi.Update(c) }

// @Summary      Delete a client response
// @Tags         responses
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /responses/{id} [delete]
func (h *ClientResponseHandler) Delete(c echo.Context) error { return h.kpi.Delete(c) }

// TeamKPIHandler serves /api/team-kpis.
type TeamKPIHandler struct {
	kpi *KPIHandler[domain.TeamKPI, teamKPIRequest]
}

func NewTeamKPIHandler(service ports.KPIService[domain.TeamKPI]) *TeamKPIHandler {
	return &TeamKPIHandler{kpi: NewKPIHandler[domain.TeamKPI, teamKPIRequest](service, WithMemberFilter())}
}

// Register mounts the CRUD routes on g.
func (h *TeamKPIHandler) Register(g *echo.Group) {
	mountKPIRoutes(g, h)
}

// List handles GET /api/team-kpis.
//
// @Summary      List team KPI rows
// @Tags         team-kpis
// @Produce      json
// @Security     BearerAuth
// @Param        client_id       query     int     false  "Client"
// @Param        from            query     string  false  "Earliest period_date (YYYY-MM-DD)"
// @Param        to              query     string  false  "Latest period_date (YYYY-MM-DD)"
// @Param        team_member_id  query     int     false  "Team member"
// @Param        page            query     int     false  "Page number (default 1)"
// @Param        limit           query     int     false  "Page size (default 20, max 100)"
// @Success      200             {object}  listResponse[domain.TeamKPI]
// @Failure      400             {object}  errorResponse
// @Failure      401             {object}  errorResponse
// @Router       /team-kpis [get]
func (h *TeamKPIHandler) List(c echo.Context) error { return h.kpi.List(c) }

// @Summary      Get a team KPI row
// @Tags         team-kpis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      200  {object}  domain.TeamKPI
// @Failure      404  {object}  errorResponse
// @Router       /team-kpis/{id} [get]
func (h *TeamKPIHandler) Get(c echo.Context) error { return h.kpi.Get(c) }

// @Summary      Create a team KPI row
// @Tags         team-kpis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamKPIRequest  true  "Payload"
// @Success      201   {object}  domain.TeamKPI
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /team-kpis [post]
func (h *TeamKPIHandler) Create(c echo.Context) error { return h.kpi.Create(c) }

// @Summary      Replace a team KPI row
// @Tags         team-kpis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Record ID"
// @Param        body  body      teamKPIRequest  true  "Payload"
// @Success      200   {object}  domain.TeamKPI
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /team-kpis/{id} [put]
func (h *TeamKPIHandler) Update(c echo.Context) error { return h.kpi.Update(c) }

// @Summary      Delete a team KPI row
// @Tags         team-kpis
// @Security     BearerAuth
// @Param        id   path      int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /team-kpis/{id} [delete]
func (h *TeamKPIHandler) Delete(c echo.Context) error { return h.kpi.Delete(c) }
