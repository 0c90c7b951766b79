// Package dto は分析エンドポイントのリクエスト・レスポンス構造体を定義します。
package dto

import "time"

// CreateSnapshotReq は POST /survey-analytics のリクエストボディです。
type CreateSnapshotReq struct {
	SurveyID              uint       `json:"survey_id" binding:"required"`
	TotalResponden        int        `json:"total_responden" binding:"min=0"`
	TotalPertanyaan       int        `json:"total_pertanyaan" binding:"min=0"`
	TotalSetuju           int        `json:"total_setuju" binding:"min=0"`
	TotalTidakSetuju      int        `json:"total_tidak_setuju" binding:"min=0"`
	SetujuPercentage      float64    `json:"setuju_percentage" binding:"min=0,max=100"`
	TidakSetujuPercentage float64    `json:"tidak_setuju_percentage" binding:"min=0,max=100"`
	GeminiSummary         *string    `json:"gemini_summary"`
	GeminiInsight         *string    `json:"gemini_insight"`
	GeneratedAt           *time.Time `json:"generated_at"`
}

// UpdateSnapshotReq は PUT /survey-analytics/:id のリクエストボディです。
// nilのフィールドは変更しません。
type UpdateSnapshotReq struct {
	TotalResponden        *int       `json:"total_responden" binding:"omitempty,min=0"`
	TotalPertanyaan       *int       `json:"total_pertanyaan" binding:"omitempty,min=0"`
	TotalSetuju           *int       `json:"total_setuju" binding:"omitempty,min=0"`
	TotalTidakSetuju      *int       `json:"total_tidak_setuju" binding:"omitempty,min=0"`
	SetujuPercentage      *float64   `json:"setuju_percentage" binding:"omitempty,min=0,max=100"`
	TidakSetujuPercentage *float64   `json:"tidak_setuju_percentage" binding:"omitempty,min=0,max=100"`
	GeminiSummary         *string    `json:"gemini_summary"`
	GeminiInsight         *string    `json:"gemini_insight"`
	GeneratedAt           *time.Time `json:"generated_at"`
}

// TestGenerateReq は POST /test/gemini のリクエストボディです。
type TestGenerateReq struct {
	Prompt string `json:"prompt"`
}
