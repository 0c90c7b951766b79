package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"survey_backend/internal/feature/analytics/adapters/gemini/dto"
	"survey_backend/internal/feature/analytics/usecase"
	"survey_backend/internal/shared/ratelimiter"
)

const (
	generationTemperature = 0.7
	generationMaxTokens   = 2048
)

// Client はGemini generateContent APIを呼び出すNarrativeGenerator実装です。
// リトライは行わず、1リクエストにつき1回だけ呼び出します。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがNarrativeGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.NarrativeGenerator = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// endpoint は generateContent の完全なURLを組み立てます。APIキーはクエリで渡します。
func (c *Client) endpoint() string {
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	return fmt.Sprintf("%s/models/%s:generateContent?%s", c.cfg.BaseURL, c.cfg.Model, q.Encode())
}

// GenerateContent はプロンプトを送信し、最初の候補のテキストを返します。
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	reqBody := dto.GenerateContentRequest{
		Contents: []dto.Content{
			{Parts: []dto.Part{{Text: prompt}}},
		},
		GenerationConfig: dto.GenerationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxTokens,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		// エラーボディはログにだけ残す
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		slog.Error("gemini API error", "status", res.StatusCode, "body", string(body))
		return "", fmt.Errorf("gemini http %d", res.StatusCode)
	}

	var body dto.GenerateContentResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("gemini decode response: %w", err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: response has no candidates")
	}
	return body.Candidates[0].Content.Parts[0].Text, nil
}
