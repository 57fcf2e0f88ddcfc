package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

type searchServiceMock struct {
	lastReq *domain.SearchRequest
	resp    *domain.SearchResponse
	err     error
}

func (m *searchServiceMock) Search(_ context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return domain.EmptyResponse(req.Offset, req.Limit), nil
}

func doSearch(t *testing.T, mock *searchServiceMock, query string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewSearchHandler(mock, nil)
	r := httptest.NewRequest(http.MethodGet, "/api/v1/search?"+query, nil)
	w := httptest.NewRecorder()
	h.HandleSearch(w, r)
	return w
}

func TestHandleSearch_ParsesAllParams(t *testing.T) {
	mock := &searchServiceMock{}
	query := strings.Join([]string{
		"keyword=leather+jacket",
		"brand=Schott",
		"gender=men",
		"categoryId=57988",
		"size=L",
		"color=black",
		"material=leather",
		"era=90s",
		"condition=used",
		"sortBy=price_low",
		"strictness=strict",
		"includeTerms=moto,+biker+",
		"excludeTerms=faux",
		"minPrice=40",
		"maxPrice=120.5",
		"limit=12",
		"offset=24",
	}, "&")

	w := doSearch(t, mock, query)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	req := mock.lastReq
	if req.Keyword != "leather jacket" || req.Brand != "Schott" {
		t.Errorf("keyword/brand: %+v", req)
	}
	if req.Gender != domain.GenderMen || req.Era != domain.Era90s ||
		req.Condition != domain.ConditionUsed ||
		req.SortBy != domain.SortPriceLow || req.Strictness != domain.StrictnessStrict {
		t.Errorf("enums: %+v", req)
	}
	if req.CategoryID != "57988" || req.Size != "L" || req.Color != "black" || req.Material != "leather" {
		t.Errorf("facets: %+v", req)
	}
	if len(req.IncludeTerms) != 2 || req.IncludeTerms[0] != "moto" || req.IncludeTerms[1] != "biker" {
		t.Errorf("includeTerms = %v", req.IncludeTerms)
	}
	if len(req.ExcludeTerms) != 1 || req.ExcludeTerms[0] != "faux" {
		t.Errorf("excludeTerms = %v", req.ExcludeTerms)
	}
	if req.MinPrice == nil || *req.MinPrice != 40 || req.MaxPrice == nil || *req.MaxPrice != 120.5 {
		t.Errorf("prices: %+v", req)
	}
	if req.Limit != 12 || req.Offset != 24 {
		t.Errorf("paging: %+v", req)
	}
}

func TestHandleSearch_Defaults(t *testing.T) {
	mock := &searchServiceMock{}
	w := doSearch(t, mock, "keyword=tee")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	req := mock.lastReq
	if req.Limit != domain.DefaultLimit || req.Offset != 0 {
		t.Errorf("paging defaults: %+v", req)
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		t.Errorf("price defaults: %+v", req)
	}
	if req.IncludeTerms != nil || req.ExcludeTerms != nil {
		t.Errorf("term defaults: %+v", req)
	}
}

func TestHandleSearch_MalformedParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad limit", "keyword=tee&limit=abc"},
		{"bad offset", "keyword=tee&offset=1.5"},
		{"bad minPrice", "keyword=tee&minPrice=cheap"},
		{"bad maxPrice", "keyword=tee&maxPrice="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// пустой maxPrice валиден, параметр просто отсутствует
			mock := &searchServiceMock{}
			w := doSearch(t, mock, tt.query)

			if tt.name == "bad maxPrice" {
				if w.Code != http.StatusOK {
					t.Errorf("empty maxPrice must be ignored, status = %d", w.Code)
				}
				return
			}
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if mock.lastReq != nil {
				t.Error("service must not be called on parse error")
			}
		})
	}
}

func TestHandleSearch_ValidationErrorIs400(t *testing.T) {
	mock := &searchServiceMock{err: domain.ErrInvalidEra}
	w := doSearch(t, mock, "keyword=tee&era=1800s")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body["error"] == "" {
		t.Error("error message missing")
	}
}

func TestHandleSearch_UpstreamErrorIs500Generic(t *testing.T) {
	mock := &searchServiceMock{err: errors.New("ebay oauth: status 500, body secret")}
	w := doSearch(t, mock, "keyword=tee")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	// детали апстрима наружу не протекают
	if body["error"] != "search failed" {
		t.Errorf("error = %q, want generic message", body["error"])
	}
}

func TestHandleSearch_ResponseShape(t *testing.T) {
	mock := &searchServiceMock{
		resp: &domain.SearchResponse{
			Total:   1,
			Offset:  0,
			Limit:   24,
			HasMore: false,
			Items: []domain.Listing{{
				ID:                "v1|100|0",
				Title:             "Vintage Tee",
				Price:             19.99,
				Currency:          "USD",
				Condition:         "Used",
				Brand:             "Levi's",
				VintageConfidence: 88,
				URL:               "https://www.ebay.com/itm/100",
			}},
		},
	}
	w := doSearch(t, mock, "keyword=tee")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body struct {
		Total   int  `json:"total"`
		HasMore bool `json:"hasMore"`
		Items   []struct {
			ID                string  `json:"id"`
			Price             float64 `json:"price"`
			VintageConfidence int     `json:"vintageConfidence"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Total != 1 || len(body.Items) != 1 {
		t.Fatalf("body = %s", w.Body.String())
	}
	if body.Items[0].ID != "v1|100|0" || body.Items[0].Price != 19.99 || body.Items[0].VintageConfidence != 88 {
		t.Errorf("item = %+v", body.Items[0])
	}
}

func TestHandleSearch_EmptyResult(t *testing.T) {
	mock := &searchServiceMock{}
	w := doSearch(t, mock, "keyword=")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("items must serialize as [], body = %s", w.Body.String())
	}
}
