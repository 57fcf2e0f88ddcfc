package domain

import "strings"

type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
)

func (g Gender) IsValid() bool {
	switch g {
	case "", GenderMen, GenderWomen:
		return true
	}
	return false
}

type Era string

const (
	Era70s   Era = "70s"
	Era80s   Era = "80s"
	Era90s   Era = "90s"
	EraY2K   Era = "y2k"
	Era2000s Era = "2000s"
	Era2000  Era = "2000"
)

func (e Era) IsValid() bool {
	switch e {
	case "", Era70s, Era80s, Era90s, EraY2K, Era2000s, Era2000:
		return true
	}
	return false
}

// IsY2K — для y2k-подобных эпох запускаем две поисковые вариации (см. engine.BuildQueryVariants)
func (e Era) IsY2K() bool {
	return e == EraY2K || e == Era2000s || e == Era2000
}

type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

func (c Condition) IsValid() bool {
	switch c {
	case "", ConditionNew, ConditionUsed:
		return true
	}
	return false
}

type SortBy string

const (
	SortBestMatch SortBy = "best_match"
	SortPriceLow  SortBy = "price_low"
	SortPriceHigh SortBy = "price_high"
	SortNewest    SortBy = "newest"
)

func (s SortBy) IsValid() bool {
	switch s {
	case "", SortBestMatch, SortPriceLow, SortPriceHigh, SortNewest:
		return true
	}
	return false
}

type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessBalanced Strictness = "balanced"
	StrictnessStrict   Strictness = "strict"
)

func (s Strictness) IsValid() bool {
	switch s {
	case "", StrictnessRelaxed, StrictnessBalanced, StrictnessStrict:
		return true
	}
	return false
}

// MinConfidence - порог уверенности для уровня строгости.
// relaxed порога не имеет: ok=false означает "не фильтровать".
func (s Strictness) MinConfidence() (min int, ok bool) {
	switch s {
	case StrictnessBalanced:
		return 45, true
	case StrictnessStrict:
		return 65, true
	}
	return 0, false
}

const DefaultLimit = 24

// SearchRequest - типизированный поисковый запрос. Разбор query-параметров
// остается на HTTP-слое, сюда приходят уже готовые значения.
type SearchRequest struct {
	Keyword      string
	Brand        string
	Gender       Gender
	CategoryID   string
	Size         string
	Color        string
	Material     string
	Era          Era
	Condition    Condition
	SortBy       SortBy
	Strictness   Strictness
	IncludeTerms []string
	ExcludeTerms []string
	MinPrice     *float64
	MaxPrice     *float64
	Limit        int
	Offset       int
}

func (r *SearchRequest) Validate() error {
	if r.Limit <= 0 {
		return ErrInvalidLimit
	}
	if r.Offset < 0 {
		return ErrInvalidOffset
	}
	if r.MinPrice != nil && *r.MinPrice < 0 {
		return ErrInvalidPriceRange
	}
	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		return ErrInvalidPriceRange
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		return ErrInvalidPriceRange
	}
	if !r.Gender.IsValid() {
		return ErrInvalidGender
	}
	if !r.Era.IsValid() {
		return ErrInvalidEra
	}
	if !r.Condition.IsValid() {
		return ErrInvalidCondition
	}
	if !r.SortBy.IsValid() {
		return ErrInvalidSortBy
	}
	if !r.Strictness.IsValid() {
		return ErrInvalidStrictness
	}
	return nil
}

func (r *SearchRequest) Sanitize() {
	r.Keyword = strings.TrimSpace(r.Keyword)
	r.Brand = strings.TrimSpace(r.Brand)
	if r.SortBy == "" {
		r.SortBy = SortBestMatch
	}
	if r.Strictness == "" {
		r.Strictness = StrictnessBalanced
	}
}
