package domain

import "strings"

// Listing - каноническое представление лота. Создается нормализатором,
// Enricher может один раз дозаполнить бренд, дальше объект не меняется.
type Listing struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	Condition         string  `json:"condition"`
	Brand             string  `json:"brand,omitempty"`
	Size              string  `json:"size,omitempty"`
	Color             string  `json:"color,omitempty"`
	Material          string  `json:"material,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
	VintageConfidence int     `json:"vintageConfidence"`
	Shipping          string  `json:"shipping,omitempty"`
	Image             string  `json:"image,omitempty"`
	URL               string  `json:"url"`
}

// SearchHaystack - текст, по которому матчатся фасеты и include/exclude термы
func (l *Listing) SearchHaystack() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{l.Title, l.Brand, l.Size, l.Color, l.Material, l.Condition} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// IsUsedCondition - эвристика "б/у" по подстроке в тексте состояния
func IsUsedCondition(condition string) bool {
	c := strings.ToLower(condition)
	return strings.Contains(c, "used") ||
		strings.Contains(c, "pre-owned") ||
		strings.Contains(c, "pre owned")
}

type SearchResponse struct {
	Total   int       `json:"total"`
	Offset  int       `json:"offset"`
	Limit   int       `json:"limit"`
	HasMore bool      `json:"hasMore"`
	Items   []Listing `json:"items"`
}

// EmptyResponse - ответ для пустого запроса, без походов наружу
func EmptyResponse(offset, limit int) *SearchResponse {
	return &SearchResponse{
		Total:   0,
		Offset:  offset,
		Limit:   limit,
		HasMore: false,
		Items:   []Listing{},
	}
}
