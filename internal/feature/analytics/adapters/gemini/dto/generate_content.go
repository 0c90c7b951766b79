// Package dto はGemini generateContent APIのリクエスト・レスポンス構造体を定義します。
package dto

// Part はひとかたまりのテキストです。
type Part struct {
	Text string `json:"text"`
}

// Content は1メッセージ分のパート列です。
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig は生成パラメータです。
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateContentRequest は generateContent のリクエストボディです。
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Candidate は生成候補1件です。
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateContentResponse は generateContent のレスポンスボディです。
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}
