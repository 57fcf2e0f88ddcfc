package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

type SearchService interface {
	Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
}

type SearchHandler struct {
	service SearchService
	logger  *zap.Logger
}

func NewSearchHandler(service SearchService, logger *zap.Logger) *SearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchHandler{service: service, logger: logger}
}

func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Search(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// наружу уходит общий текст, детали остаются в логах
		h.logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseSearchRequest собирает типизированный запрос из query-параметров.
// Валидация диапазонов остается за движком, здесь только формы значений.
func parseSearchRequest(r *http.Request) (*domain.SearchRequest, error) {
	q := r.URL.Query()

	req := &domain.SearchRequest{
		Keyword:      q.Get("keyword"),
		Brand:        q.Get("brand"),
		Gender:       domain.Gender(q.Get("gender")),
		CategoryID:   q.Get("categoryId"),
		Size:         q.Get("size"),
		Color:        q.Get("color"),
		Material:     q.Get("material"),
		Era:          domain.Era(q.Get("era")),
		Condition:    domain.Condition(q.Get("condition")),
		SortBy:       domain.SortBy(q.Get("sortBy")),
		Strictness:   domain.Strictness(q.Get("strictness")),
		IncludeTerms: parseTermList(q.Get("includeTerms")),
		ExcludeTerms: parseTermList(q.Get("excludeTerms")),
		Limit:        domain.DefaultLimit,
		Offset:       0,
	}

	var err error
	if req.MinPrice, err = parseOptionalFloat(q.Get("minPrice")); err != nil {
		return nil, errors.New("invalid minPrice")
	}
	if req.MaxPrice, err = parseOptionalFloat(q.Get("maxPrice")); err != nil {
		return nil, errors.New("invalid maxPrice")
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid limit")
		}
		req.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid offset")
		}
		req.Offset = offset
	}

	return req, nil
}

func parseTermList(raw string) []string {
	if raw == "" {
		return nil
	}
	var terms []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrInvalidLimit,
		domain.ErrInvalidOffset,
		domain.ErrInvalidPriceRange,
		domain.ErrInvalidEra,
		domain.ErrInvalidGender,
		domain.ErrInvalidCondition,
		domain.ErrInvalidSortBy,
		domain.ErrInvalidStrictness,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
