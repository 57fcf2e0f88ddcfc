package engine

import (
	"regexp"
	"strings"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

var (
	vintageTokenRe = regexp.MustCompile(`(?i)\bvintage\b`)
	menTokenRe     = regexp.MustCompile(`(?i)\bmen('?s)?\b|\bmale\b`)
	womenTokenRe   = regexp.MustCompile(`(?i)\bwomen('?s)?\b|\bfemale\b|\blad(?:y|ies)\b`)

	y2kTokenRe = regexp.MustCompile(`\by2k\b|\b2000s\b|\bearly\s*2000s?\b|\b00s\b`)
)

// BuildQueryVariants разворачивает запрос в одну или несколько поисковых строк.
// Для y2k-эпох полнотекстовый индекс апстрима матчит "y2k" и "2000s" как разные
// токены, поэтому гоняем оба варианта параллельно и мержим - одиночный запрос
// покрывает меньше корпуса.
func BuildQueryVariants(req *domain.SearchRequest) []string {
	base := strings.TrimSpace(req.Keyword)
	if req.Brand != "" {
		base = strings.TrimSpace(base + " " + req.Brand)
	}
	base = ensureVintageKeyword(base)
	base = ensureGenderKeyword(base, req.Gender)

	if !req.Era.IsY2K() {
		return []string{base}
	}

	seen := make(map[string]struct{}, 2)
	var variants []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	// если токен уже набран пользователем, не дублируем его конкатенацией
	if y2kTokenRe.MatchString(strings.ToLower(base)) {
		if strings.Contains(base, "y2k") {
			add(base)
		} else {
			add(base + " y2k")
		}
		if strings.Contains(base, "2000") || strings.Contains(base, "00s") {
			add(base)
		} else {
			add(base + " 2000s")
		}
	} else {
		add(base + " y2k")
		add(base + " 2000s")
	}

	return variants
}

func ensureVintageKeyword(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return trimmed
	}
	if vintageTokenRe.MatchString(trimmed) {
		return trimmed
	}
	return trimmed + " vintage"
}

func ensureGenderKeyword(query string, gender domain.Gender) string {
	if gender == "" {
		return query
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return trimmed
	}

	if gender == domain.GenderMen {
		if menTokenRe.MatchString(trimmed) {
			return trimmed
		}
		return trimmed + " mens"
	}

	if womenTokenRe.MatchString(trimmed) {
		return trimmed
	}
	return trimmed + " womens"
}
