package engine

import (
	"regexp"
	"strings"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

// Кураторские списки сигналов. Позитивные капятся на 3 совпадения,
// негативные бьют без ограничения.
var vintagePositiveTerms = []string{
	"vintage",
	"pre-owned",
	"made in usa",
	"single stitch",
	"80s",
	"90s",
	"70s",
	"2000s",
	"2000",
	"y2k",
	"distressed",
	"grunge",
	"faded",
	"babydoll",
}

var vintageNegativeTerms = []string{
	"reproduction",
	"replica",
	"inspired",
	"style",
	"lookalike",
	"new with tags",
	"nwt",
	"fast fashion",
}

const (
	positiveTermCap = 3

	scoreBase          = 50
	scoreBrandPresent  = 12
	scoreUsedCondition = 10
	scoreTokenHit      = 8
	scoreTokenMiss     = -6
	scoreFullKeyword   = 12
	scorePositiveTerm  = 6
	scoreNegativeTerm  = -12
)

var keywordSplitRe = regexp.MustCompile(`[^a-z0-9]+`)

// Score - детерминированная оценка "винтажности" лота в [0,100].
// Считается по заголовку и бренду, состояние дает отдельный бонус.
func Score(l *domain.Listing, keyword string) int {
	haystack := strings.ToLower(l.Title + " " + l.Brand)

	score := scoreBase

	if strings.TrimSpace(l.Brand) != "" {
		score += scoreBrandPresent
	}
	if domain.IsUsedCondition(l.Condition) {
		score += scoreUsedCondition
	}

	for _, token := range keywordSplitRe.Split(strings.ToLower(keyword), -1) {
		if len(token) < 2 {
			continue
		}
		if strings.Contains(haystack, token) {
			score += scoreTokenHit
		} else {
			score += scoreTokenMiss
		}
	}

	fullKeyword := strings.ToLower(strings.TrimSpace(keyword))
	if fullKeyword != "" && strings.Contains(haystack, fullKeyword) {
		score += scoreFullKeyword
	}

	positiveHits := 0
	for _, term := range vintagePositiveTerms {
		if strings.Contains(haystack, term) {
			positiveHits++
		}
	}
	if positiveHits > positiveTermCap {
		positiveHits = positiveTermCap
	}
	score += positiveHits * scorePositiveTerm

	for _, term := range vintageNegativeTerms {
		if strings.Contains(haystack, term) {
			score += scoreNegativeTerm
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
