package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kitbuilder587/retrofind/internal/domain"
	"github.com/kitbuilder587/retrofind/internal/ebay"
)

// candidatePages - сколько страниц тянем по каждой вариации запроса
const candidatePages = 5

// fetchCandidates раскидывает все вызовы вариация×страница параллельно
// и собирает результаты по принципу settle-all: частичные отказы молча
// отбрасываются, падаем только если не выжил ни один вызов.
func (s *Service) fetchCandidates(ctx context.Context, req *domain.SearchRequest, variants []string) ([]ebay.ItemSummary, error) {
	filters := ebay.SearchFilters{
		CategoryID: req.CategoryID,
		Brand:      req.Brand,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Condition:  req.Condition,
	}

	type job struct {
		query  string
		offset int
	}
	var jobs []job
	for _, qv := range variants {
		for page := 0; page < candidatePages; page++ {
			jobs = append(jobs, job{query: qv, offset: req.Offset + page*req.Limit})
		}
	}

	results := make([][]ebay.ItemSummary, len(jobs))
	errs := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			start := time.Now()
			items, err := s.browse.Search(gctx, j.query, req.Limit, j.offset, filters)
			if err != nil {
				errs[i] = err
				s.recordBrowseRequest("error", time.Since(start))
				s.logger.Warn("browse page failed",
					zap.Error(err),
					zap.String("query", j.query),
					zap.Int("offset", j.offset),
				)
				return nil
			}
			results[i] = items
			s.recordBrowseRequest("success", time.Since(start))
			return nil
		})
	}
	g.Wait() //nolint:errcheck // джобы ошибок не возвращают, join всегда полный

	merged := mergeCandidates(results)

	succeeded := false
	for i := range jobs {
		if errs[i] == nil {
			succeeded = true
			break
		}
	}
	if !succeeded {
		for _, err := range errs {
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
			}
		}
		return nil, domain.ErrSearchFailed
	}

	return merged, nil
}

// mergeCandidates дедуплицирует по itemId между вариациями и страницами:
// позиция первого вхождения, значение последнего.
func mergeCandidates(results [][]ebay.ItemSummary) []ebay.ItemSummary {
	index := make(map[string]int)
	var merged []ebay.ItemSummary
	for _, items := range results {
		for _, item := range items {
			if item.ItemID == "" {
				continue
			}
			if at, ok := index[item.ItemID]; ok {
				merged[at] = item
				continue
			}
			index[item.ItemID] = len(merged)
			merged = append(merged, item)
		}
	}
	return merged
}
