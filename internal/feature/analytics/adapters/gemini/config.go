// Package gemini はGoogle Gemini generateContent APIのRESTクライアントを提供します。
package gemini

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL はGemini APIの既定エンドポイントです。
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel は使用する既定モデルです。
	DefaultModel = "gemini-2.5-flash"
)

// Config はGemini APIクライアントの設定を保持します。
type Config struct {
	APIKey  string        // 認証用APIキー
	BaseURL string        // APIのベースURL
	Model   string        // モデル名（例: "gemini-2.5-flash"）
	Timeout time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
// GEMINI_BASE_URL と GEMINI_MODEL は未設定なら既定値を使います。
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
		Model:   os.Getenv("GEMINI_MODEL"),
		Timeout: 30 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg
}
