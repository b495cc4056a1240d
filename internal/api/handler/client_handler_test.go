package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

func TestClientHandler_List(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(t, http.MethodGet, "/api/clients?status=paused&search=acme&page=2&limit=20", "")

	if err := NewClientHandler(svc).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	want := domain.ClientFilter{Status: "paused", Search: "acme", Page: 2, Limit: 20}
	if svc.lastFilter != want {
		t.Fatalf("unexpected filter: %+v", svc.lastFilter)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data       []domain.Client `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Pagination.Total != 41 || resp.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestClientHandler_List_BadQuery(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/api/clients?page=two", "")

	err := NewClientHandler(&stubClientService{}).List(c)
	if httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestClientHandler_Get_InvalidID(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/api/clients/abc", "")
	withID(c, "abc")

	err := NewClientHandler(&stubClientService{}).Get(c)
	if httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	svc := &stubClientService{err: fmt.Errorf("find client: %w", domain.ErrNotFound)}
	c, _ := newContext(t, http.MethodGet, "/api/clients/9", "")
	withID(c, "9")

	err := NewClientHandler(svc).Get(c)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientHandler_Create(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(t, http.MethodPost, "/api/clients",
		`{"name":"Acme","industry":" Retail ","contact_email":"ops@acme.io","monthly_budget":1500,"account_manager_id":4,"start_date":"2024-02-01"}`)
	withClaims(c)

	if err := NewClientHandler(svc).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	got := svc.created
	if got.Name != "Acme" || got.Industry != "Retail" || got.MonthlyBudget != 1500 {
		t.Fatalf("unexpected client: %+v", got)
	}
	if got.AccountManagerID == nil || *got.AccountManagerID != 4 {
		t.Fatalf("expected account manager 4, got %v", got.AccountManagerID)
	}
	if got.StartDate == nil || got.StartDate.String() != "2024-02-01" {
		t.Fatalf("unexpected start date: %v", got.StartDate)
	}
	if svc.lastActor.UserID != 1 || svc.lastActor.Username != "root" {
		t.Fatalf("actor not propagated: %+v", svc.lastActor)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["id"] != float64(10) || body["start_date"] != "2024-02-01" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestClientHandler_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"missing name":    `{"industry":"Retail"}`,
		"negative budget": `{"name":"Acme","monthly_budget":-1}`,
		"bad status":      `{"name":"Acme","status":"archived"}`,
		"bad email":       `{"name":"Acme","contact_email":"acme"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &stubClientService{}
			c, _ := newContext(t, http.MethodPost, "/api/clients", body)
			withClaims(c)

			err := NewClientHandler(svc).Create(c)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if svc.created != nil {
				t.Fatalf("service must not be called")
			}
		})
	}
}

func TestClientHandler_Create_Unauthenticated(t *testing.T) {
	c, _ := newContext(t, http.MethodPost, "/api/clients", `{"name":"Acme"}`)

	err := NewClientHandler(&stubClientService{}).Create(c)
	if httpCode(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestClientHandler_Update(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(t, http.MethodPut, "/api/clients/3", `{"name":"Acme Corp","status":"churned"}`)
	withClaims(c)
	withID(c, "3")

	if err := NewClientHandler(svc).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updatedID != 3 {
		t.Fatalf("expected update of 3, got %d", svc.updatedID)
	}
}

func TestClientHandler_Update_NotFound(t *testing.T) {
	svc := &stubClientService{err: domain.ErrNotFound}
	c, _ := newContext(t, http.MethodPut, "/api/clients/3", `{"name":"Acme Corp"}`)
	withClaims(c)
	withID(c, "3")

	err := NewClientHandler(svc).Update(c)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientHandler_Delete(t *testing.T) {
	svc := &stubClientService{}
	c, rec := newContext(t, http.MethodDelete, "/api/clients/7", "")
	withClaims(c)
	withID(c, "7")

	if err := NewClientHandler(svc).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.deletedID != 7 {
		t.Fatalf("expected delete of 7, got %d", svc.deletedID)
	}
}

func TestClientHandler_Overview(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/api/clients/2/overview", "")
	withID(c, "2")

	if err := NewClientHandler(&stubClientService{}).Overview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var body struct {
		Client    domain.Client         `json:"client"`
		LatestAds *domain.AdsKPI        `json:"latest_ads"`
		LatestSEO *domain.WebsiteSEOKPI `json:"latest_website_seo"`
		Counts    map[string]int64      `json:"counts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Client.ID != 2 || body.LatestAds == nil || body.LatestAds.CampaignName != "summer" {
		t.Fatalf("unexpected overview: %+v", body)
	}
	if body.LatestSEO != nil {
		t.Fatalf("expected null website row")
	}
	if body.Counts[domain.EntityAds] != 2 {
		t.Fatalf("unexpected counts: %v", body.Counts)
	}
}
