package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kitbuilder587/retrofind/internal/domain"
	"github.com/kitbuilder587/retrofind/internal/ebay"
)

const (
	// maxBrandLookups - потолок на вторичные запросы за брендами
	maxBrandLookups = 40
	// enrichBatchSize - размер конкурентной пачки к item-эндпоинту
	enrichBatchSize = 8
)

// enrichBrands дозаполняет бренды из карточек лотов. Строго best-effort:
// отдельный неудачный лукап глотается, лот остается без бренда.
// Пачки идут последовательно, чтобы не заваливать вторичный эндпоинт.
func (s *Service) enrichBrands(ctx context.Context, items []domain.Listing) {
	var missing []int
	for i := range items {
		if strings.TrimSpace(items[i].Brand) == "" {
			missing = append(missing, i)
		}
		if len(missing) >= maxBrandLookups {
			break
		}
	}
	if len(missing) == 0 {
		return
	}

	s.logger.Debug("enriching missing brands", zap.Int("count", len(missing)))

	for start := 0; start < len(missing); start += enrichBatchSize {
		end := start + enrichBatchSize
		if end > len(missing) {
			end = len(missing)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, idx := range missing[start:end] {
			idx := idx
			g.Go(func() error {
				detail, err := s.browse.GetItem(gctx, items[idx].ID)
				if err != nil {
					s.recordEnrichmentLookup("error")
					return nil
				}
				if brand := strings.TrimSpace(ebay.BrandOf(*detail)); brand != "" {
					items[idx].Brand = brand
					s.recordEnrichmentLookup("filled")
				} else {
					s.recordEnrichmentLookup("empty")
				}
				return nil
			})
		}
		g.Wait() //nolint:errcheck // лукапы ошибок не возвращают
	}
}
