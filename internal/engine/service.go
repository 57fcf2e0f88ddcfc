package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/retrofind/internal/domain"
	"github.com/kitbuilder587/retrofind/internal/ebay"
	"github.com/kitbuilder587/retrofind/internal/metrics"
)

// BrowseClient - нужная движку часть клиента Browse API
type BrowseClient interface {
	Search(ctx context.Context, q string, limit, offset int, f ebay.SearchFilters) ([]ebay.ItemSummary, error)
	GetItem(ctx context.Context, itemID string) (*ebay.ItemSummary, error)
}

type SearchService interface {
	Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
}

type Config struct {
	SearchTimeout time.Duration
}

type Deps struct {
	Browse  BrowseClient
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Config  Config
}

type Service struct {
	browse        BrowseClient
	logger        *zap.Logger
	metrics       *metrics.Metrics
	searchTimeout time.Duration
}

func NewService(deps Deps) *Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Config.SearchTimeout == 0 {
		deps.Config.SearchTimeout = 30 * time.Second
	}
	return &Service{
		browse:        deps.Browse,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		searchTimeout: deps.Config.SearchTimeout,
	}
}

// Search - весь конвейер: вариации запроса -> fan-out выборка -> нормализация ->
// энричмент брендов -> скоринг -> фильтр -> сортировка -> страница.
// Набор кандидатов живет только в рамках одного вызова.
func (s *Service) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	startTime := time.Now()

	if s.metrics != nil {
		s.metrics.IncRequestsInFlight()
		defer s.metrics.DecRequestsInFlight()
	}

	if err := req.Validate(); err != nil {
		if s.metrics != nil {
			s.metrics.RecordRequest("validation_error", time.Since(startTime))
		}
		return nil, err
	}
	req.Sanitize()

	// пустой запрос - не ошибка: пустой ответ без единого внешнего вызова
	if req.Keyword == "" {
		if s.metrics != nil {
			s.metrics.RecordRequest("empty_keyword", time.Since(startTime))
		}
		return domain.EmptyResponse(req.Offset, req.Limit), nil
	}

	variants := BuildQueryVariants(req)

	s.logger.Info("processing search",
		zap.String("keyword", req.Keyword),
		zap.Strings("variants", variants),
		zap.String("era", string(req.Era)),
		zap.String("strictness", string(req.Strictness)),
		zap.String("sort_by", string(req.SortBy)),
		zap.Int("limit", req.Limit),
		zap.Int("offset", req.Offset),
	)

	fetchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	merged, err := s.fetchCandidates(fetchCtx, req, variants)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordRequest("upstream_error", time.Since(startTime))
		}
		return nil, err
	}

	listings := make([]domain.Listing, 0, len(merged))
	for _, item := range merged {
		listings = append(listings, ebay.Normalize(item))
	}

	s.enrichBrands(fetchCtx, listings)

	// скоринг после энричмента: дозаполненный бренд участвует в оценке
	for i := range listings {
		listings[i].VintageConfidence = Score(&listings[i], req.Keyword)
	}

	filtered := Filter(listings, req)
	SortListings(filtered, req.SortBy)
	page, hasMore := Paginate(filtered, req.Limit)

	s.logger.Info("search processed",
		zap.Int("candidates", len(merged)),
		zap.Int("filtered", len(filtered)),
		zap.Int("page", len(page)),
		zap.Duration("took", time.Since(startTime)),
	)

	if s.metrics != nil {
		s.metrics.RecordRequest("success", time.Since(startTime))
	}

	return &domain.SearchResponse{
		Total:   len(filtered),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: hasMore,
		Items:   page,
	}, nil
}

func (s *Service) recordBrowseRequest(status string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordBrowseRequest(status, duration)
	}
}

func (s *Service) recordEnrichmentLookup(status string) {
	if s.metrics != nil {
		s.metrics.RecordEnrichmentLookup(status)
	}
}
