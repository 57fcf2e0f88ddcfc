package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/retrofind/internal/domain"
)

const (
	oauthPath  = "/identity/v1/oauth2/token"
	oauthScope = "https://api.ebay.com/oauth/api_scope"

	// токен считаем протухшим на минуту раньше, чем сказал апстрим
	expirySafetyMargin = 60 * time.Second
)

// TokenSource выдает bearer-токен для Browse API по client credentials
// и кеширует его до истечения. Единственное разделяемое состояние процесса.
type TokenSource struct {
	clientID     string
	clientSecret string
	tokenURL     string
	client       *http.Client
	logger       *zap.Logger

	mu          sync.RWMutex
	accessToken string
	tokenExpiry time.Time
}

func NewTokenSource(clientID, clientSecret, baseURL string, client *http.Client, logger *zap.Logger) *TokenSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     strings.TrimSuffix(baseURL, "/") + oauthPath,
		client:       client,
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (t *TokenSource) Token(ctx context.Context) (string, error) {
	t.mu.RLock()
	if t.accessToken != "" && time.Now().Before(t.tokenExpiry) {
		token := t.accessToken
		t.mu.RUnlock()
		return token, nil
	}
	t.mu.RUnlock()

	return t.refresh(ctx)
}

func (t *TokenSource) refresh(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// double-check после захвата лока: конкурентные промахи
	// схлопываются в один обмен
	if t.accessToken != "" && time.Now().Before(t.tokenExpiry) {
		return t.accessToken, nil
	}

	if t.clientID == "" || t.clientSecret == "" {
		return "", domain.ErrMissingCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", oauthScope)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(t.clientID + ":" + t.clientSecret))
	httpReq.Header.Set("Authorization", "Basic "+encoded)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.logger.Error("ebay oauth failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return "", fmt.Errorf("%w: status %d", domain.ErrAuthFailed, resp.StatusCode)
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", domain.ErrAuthFailed)
	}

	t.accessToken = tokenResp.AccessToken
	t.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - expirySafetyMargin)

	t.logger.Debug("ebay token refreshed",
		zap.Time("expires", t.tokenExpiry),
	)

	return t.accessToken, nil
}

func (t *TokenSource) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accessToken = ""
	t.tokenExpiry = time.Time{}
}
