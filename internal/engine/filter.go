package engine

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

var eraPatterns = map[domain.Era]*regexp.Regexp{
	domain.Era70s:   regexp.MustCompile(`70s|70's|1970|seventies`),
	domain.Era80s:   regexp.MustCompile(`80s|80's|1980|eighties`),
	domain.Era90s:   regexp.MustCompile(`90s|90's|1990|nineties`),
	domain.Era2000:  regexp.MustCompile(`\b2000\b|y2k|2000s|00s`),
	domain.EraY2K:   regexp.MustCompile(`y2k|2000|00s|2000s`),
	domain.Era2000s: regexp.MustCompile(`y2k|2000|00s|2000s`),
}

var (
	menHaystackRe   = regexp.MustCompile(`\bmen('?s)?\b|\bmale\b`)
	womenHaystackRe = regexp.MustCompile(`\bwomen('?s)?\b|\bfemale\b|\blad(?:y|ies)\b`)
)

// Filter применяет все правила отбора к уже оцененным лотам.
// Порядок внутри не меняется, лоты не мутируются.
func Filter(items []domain.Listing, req *domain.SearchRequest) []domain.Listing {
	minConfidence, hasFloor := req.Strictness.MinConfidence()

	excludeTerms := lowerAll(req.ExcludeTerms)
	includeTerms := lowerAll(req.IncludeTerms)

	out := make([]domain.Listing, 0, len(items))
	for _, item := range items {
		if !domain.IsAllowedBrand(item.Brand) {
			continue
		}

		haystack := item.SearchHaystack()

		if !containsText(haystack, req.Brand) ||
			!containsText(haystack, req.Size) ||
			!containsText(haystack, req.Color) ||
			!containsText(haystack, req.Material) {
			continue
		}
		if !matchesEra(haystack, req.Era) {
			continue
		}
		if !matchesGender(haystack, req.Gender) {
			continue
		}

		if anyTermIn(haystack, excludeTerms) {
			continue
		}
		if !allTermsIn(haystack, includeTerms) {
			continue
		}

		if hasFloor && item.VintageConfidence < minConfidence {
			continue
		}
		if req.Strictness == domain.StrictnessStrict && !domain.IsUsedCondition(item.Condition) {
			continue
		}

		out = append(out, item)
	}
	return out
}

func containsText(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(haystack, strings.ToLower(needle))
}

func matchesEra(haystack string, era domain.Era) bool {
	re, ok := eraPatterns[era]
	if !ok {
		return true
	}
	return re.MatchString(haystack)
}

func matchesGender(haystack string, gender domain.Gender) bool {
	switch gender {
	case domain.GenderMen:
		return menHaystackRe.MatchString(haystack)
	case domain.GenderWomen:
		return womenHaystackRe.MatchString(haystack)
	}
	return true
}

func lowerAll(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func anyTermIn(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}

func allTermsIn(haystack string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

// SortListings - стабильная тотальная сортировка. Масс-маркет бренды
// всегда в хвосте независимо от выбранной политики.
func SortListings(items []domain.Listing, sortBy domain.SortBy) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]

		aFF := domain.IsFastFashionBrand(a.Brand)
		bFF := domain.IsFastFashionBrand(b.Brand)
		if aFF != bFF {
			return !aFF
		}

		switch sortBy {
		case domain.SortPriceLow:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return a.VintageConfidence > b.VintageConfidence
		case domain.SortPriceHigh:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return a.VintageConfidence > b.VintageConfidence
		case domain.SortNewest:
			aTs := parseCreatedAt(a.CreatedAt)
			bTs := parseCreatedAt(b.CreatedAt)
			if aTs != bTs {
				return aTs > bTs
			}
			return a.VintageConfidence > b.VintageConfidence
		default: // best_match
			if a.VintageConfidence != b.VintageConfidence {
				return a.VintageConfidence > b.VintageConfidence
			}
			return a.Price < b.Price
		}
	})
}

// parseCreatedAt: нераспарсенная или пустая дата считается эпохой 0
func parseCreatedAt(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// Paginate отдает первую страницу отфильтрованного набора.
// hasMore - эвристика "страница полная", а не точный размер корпуса.
func Paginate(items []domain.Listing, limit int) (page []domain.Listing, hasMore bool) {
	page = items
	if len(page) > limit {
		page = page[:limit]
	}
	return page, len(page) == limit
}
