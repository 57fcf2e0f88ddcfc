package domain

import (
	"errors"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestSearchRequest_Validate(t *testing.T) {
	valid := func() SearchRequest {
		return SearchRequest{Keyword: "denim jacket", Limit: 24, Offset: 0}
	}

	tests := []struct {
		name    string
		mutate  func(*SearchRequest)
		wantErr error
	}{
		{"ok", func(r *SearchRequest) {}, nil},
		{"zero limit", func(r *SearchRequest) { r.Limit = 0 }, ErrInvalidLimit},
		{"negative limit", func(r *SearchRequest) { r.Limit = -5 }, ErrInvalidLimit},
		{"negative offset", func(r *SearchRequest) { r.Offset = -1 }, ErrInvalidOffset},
		{"negative min price", func(r *SearchRequest) { r.MinPrice = floatPtr(-1) }, ErrInvalidPriceRange},
		{"min above max", func(r *SearchRequest) {
			r.MinPrice = floatPtr(100)
			r.MaxPrice = floatPtr(50)
		}, ErrInvalidPriceRange},
		{"price range ok", func(r *SearchRequest) {
			r.MinPrice = floatPtr(10)
			r.MaxPrice = floatPtr(120)
		}, nil},
		{"bad era", func(r *SearchRequest) { r.Era = "60s" }, ErrInvalidEra},
		{"y2k era ok", func(r *SearchRequest) { r.Era = EraY2K }, nil},
		{"bad gender", func(r *SearchRequest) { r.Gender = "other" }, ErrInvalidGender},
		{"bad condition", func(r *SearchRequest) { r.Condition = "refurbished" }, ErrInvalidCondition},
		{"bad sort", func(r *SearchRequest) { r.SortBy = "cheapest" }, ErrInvalidSortBy},
		{"bad strictness", func(r *SearchRequest) { r.Strictness = "paranoid" }, ErrInvalidStrictness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			if err := req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchRequest_Sanitize(t *testing.T) {
	req := SearchRequest{Keyword: "  leather jacket  ", Brand: " Levi's ", Limit: 24}
	req.Sanitize()

	if req.Keyword != "leather jacket" {
		t.Errorf("Keyword = %q, want trimmed", req.Keyword)
	}
	if req.Brand != "Levi's" {
		t.Errorf("Brand = %q, want trimmed", req.Brand)
	}
	if req.SortBy != SortBestMatch {
		t.Errorf("SortBy default = %q, want %q", req.SortBy, SortBestMatch)
	}
	if req.Strictness != StrictnessBalanced {
		t.Errorf("Strictness default = %q, want %q", req.Strictness, StrictnessBalanced)
	}
}

func TestStrictness_MinConfidence(t *testing.T) {
	if _, ok := StrictnessRelaxed.MinConfidence(); ok {
		t.Error("relaxed should have no confidence floor")
	}
	if min, ok := StrictnessBalanced.MinConfidence(); !ok || min != 45 {
		t.Errorf("balanced floor = %d,%v, want 45,true", min, ok)
	}
	if min, ok := StrictnessStrict.MinConfidence(); !ok || min != 65 {
		t.Errorf("strict floor = %d,%v, want 65,true", min, ok)
	}
}

func TestEra_IsY2K(t *testing.T) {
	for _, era := range []Era{EraY2K, Era2000s, Era2000} {
		if !era.IsY2K() {
			t.Errorf("%q should be y2k-like", era)
		}
	}
	for _, era := range []Era{Era70s, Era80s, Era90s, ""} {
		if era.IsY2K() {
			t.Errorf("%q should not be y2k-like", era)
		}
	}
}
