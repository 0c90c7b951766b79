package entity

import "time"

// SurveyAnalytics はサーベイ単位の分析スナップショットです。
// survey_id をユニークキーとして1サーベイにつき1行だけ保持します。
type SurveyAnalytics struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	SurveyID              uint       `gorm:"not null;uniqueIndex" json:"survey_id"`
	TotalResponden        int        `gorm:"not null;default:0" json:"total_responden"`
	TotalPertanyaan       int        `gorm:"not null;default:0" json:"total_pertanyaan"`
	TotalSetuju           int        `gorm:"not null;default:0" json:"total_setuju"`
	TotalTidakSetuju      int        `gorm:"not null;default:0" json:"total_tidak_setuju"`
	SetujuPercentage      float64    `gorm:"not null;default:0" json:"setuju_percentage"`
	TidakSetujuPercentage float64    `gorm:"not null;default:0" json:"tidak_setuju_percentage"`
	GeminiSummary         *string    `json:"gemini_summary"`
	GeminiInsight         *string    `json:"gemini_insight"`
	GeneratedAt           *time.Time `json:"generated_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
