package ebay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

const (
	browseSearchPath = "/buy/browse/v1/item_summary/search"
	browseItemPath   = "/buy/browse/v1/item"

	marketplaceHeader = "X-EBAY-C-MARKETPLACE-ID"
)

// conditionIDs - маппинг нашего фильтра состояния в conditionIds апстрима
var conditionIDs = map[domain.Condition]string{
	domain.ConditionNew:  "1000",
	domain.ConditionUsed: "3000",
}

type Config struct {
	ClientID      string
	ClientSecret  string
	BaseURL       string
	MarketplaceID string
	Timeout       time.Duration
}

// Client - клиент Browse API: поиск по странице и карточка лота.
// Токен берет из собственного TokenSource.
type Client struct {
	baseURL       string
	marketplaceID string
	client        *http.Client
	tokens        *TokenSource
	logger        *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.ebay.com"
	}
	if cfg.MarketplaceID == "" {
		cfg.MarketplaceID = "EBAY_US"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		marketplaceID: cfg.MarketplaceID,
		client:        httpClient,
		tokens:        NewTokenSource(cfg.ClientID, cfg.ClientSecret, cfg.BaseURL, httpClient, logger),
		logger:        logger,
	}
}

// SearchFilters - фасеты, которые транслируются в синтаксис фильтров Browse API
// и прикрепляются к каждому вызову одинаково.
type SearchFilters struct {
	CategoryID string
	Brand      string
	MinPrice   *float64
	MaxPrice   *float64
	Condition  domain.Condition
}

// buildFilter собирает параметр filter: price:[min..max],priceCurrency:USD,conditionIds:{id}
func buildFilter(f SearchFilters) string {
	var filters []string

	if f.MinPrice != nil || f.MaxPrice != nil {
		min := "0"
		if f.MinPrice != nil {
			min = formatPrice(*f.MinPrice)
		}
		max := ""
		if f.MaxPrice != nil {
			max = formatPrice(*f.MaxPrice)
		}
		filters = append(filters, fmt.Sprintf("price:[%s..%s]", min, max))
		filters = append(filters, "priceCurrency:USD")
	}

	if id, ok := conditionIDs[f.Condition]; ok {
		filters = append(filters, fmt.Sprintf("conditionIds:{%s}", id))
	}

	return strings.Join(filters, ",")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Search выполняет один постраничный вызов item_summary/search
func (c *Client) Search(ctx context.Context, q string, limit, offset int, f SearchFilters) ([]ItemSummary, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", q)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	if f.CategoryID != "" {
		query.Set("category_ids", f.CategoryID)
	}

	// бренд вместе с категорией уходит aspect-фильтром, а не текстовым термом
	if strings.TrimSpace(f.Brand) != "" && f.CategoryID != "" {
		escaped := strings.ReplaceAll(strings.TrimSpace(f.Brand), "'", `\'`)
		query.Set("aspect_filter", fmt.Sprintf("categoryId:%s,Brand:{%s}", f.CategoryID, escaped))
	}

	if filter := buildFilter(f); filter != "" {
		query.Set("filter", filter)
	}

	reqURL := c.baseURL + browseSearchPath + "?" + query.Encode()
	body, status, err := c.doGet(ctx, reqURL, token)
	if err != nil {
		return nil, fmt.Errorf("browse search (%s): %w", q, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("browse search (%s): status %d: %s", q, status, truncate(body, 200))
	}

	var data browseResponse
	if err := decodeLenient(body, &data); err != nil {
		return nil, fmt.Errorf("browse search (%s): decode: %w", q, err)
	}

	return data.ItemSummaries, nil
}

// GetItem забирает карточку лота; используется только энричером брендов
func (c *Client) GetItem(ctx context.Context, itemID string) (*ItemSummary, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + browseItemPath + "/" + url.PathEscape(itemID)
	body, status, err := c.doGet(ctx, reqURL, token)
	if err != nil {
		return nil, fmt.Errorf("browse item %s: %w", itemID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("browse item %s: status %d", itemID, status)
	}

	var item ItemSummary
	if err := decodeLenient(body, &item); err != nil {
		return nil, fmt.Errorf("browse item %s: decode: %w", itemID, err)
	}

	return &item, nil
}

func (c *Client) doGet(ctx context.Context, reqURL, token string) ([]byte, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set(marketplaceHeader, c.marketplaceID)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
