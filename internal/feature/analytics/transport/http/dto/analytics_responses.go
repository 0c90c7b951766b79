package dto

import (
	"survey_backend/internal/feature/analytics/domain/entity"
	surveyentity "survey_backend/internal/feature/survey/domain/entity"
)

// SurveyRes は分析レスポンス内のサーベイ情報です。
type SurveyRes struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// StatisticsRes はサーベイ全体の集計値です。
type StatisticsRes struct {
	TotalResponden        int     `json:"total_responden"`
	TotalPertanyaan       int     `json:"total_pertanyaan"`
	TotalSetuju           int     `json:"total_setuju"`
	TotalTidakSetuju      int     `json:"total_tidak_setuju"`
	SetujuPercentage      float64 `json:"setuju_percentage"`
	TidakSetujuPercentage float64 `json:"tidak_setuju_percentage"`
}

// AnalyticsRes は GET /surveys/:id/analytics のレスポンスです。
// GeminiAnalysis は回答者が0人の場合はnullになります。
type AnalyticsRes struct {
	Survey         SurveyRes               `json:"survey"`
	Statistics     StatisticsRes           `json:"statistics"`
	QuestionsStats []entity.AnswerTally    `json:"questions_stats"`
	GeminiAnalysis *entity.NarrativeResult `json:"gemini_analysis"`
}

// NewAnalyticsRes はユースケースの結果からレスポンスを組み立てます。
func NewAnalyticsRes(survey *surveyentity.Survey, tally entity.SurveyTallyReport, narrative *entity.NarrativeResult) AnalyticsRes {
	return AnalyticsRes{
		Survey: SurveyRes{
			ID:          survey.ID,
			Title:       survey.Title,
			Description: survey.Description,
			IsActive:    survey.IsActive,
		},
		Statistics: StatisticsRes{
			TotalResponden:        tally.TotalResponden,
			TotalPertanyaan:       tally.TotalPertanyaan,
			TotalSetuju:           tally.TotalSetuju,
			TotalTidakSetuju:      tally.TotalTidakSetuju,
			SetujuPercentage:      tally.SetujuPercentage,
			TidakSetujuPercentage: tally.TidakSetujuPercentage,
		},
		QuestionsStats: tally.Questions,
		GeminiAnalysis: narrative,
	}
}

// TestGenerateRes は POST /test/gemini のレスポンスです。
type TestGenerateRes struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Prompt   string `json:"prompt,omitempty"`
	Response string `json:"response,omitempty"`
}

// TestAnalysisRes は GET /test/gemini-survey のレスポンスです。
type TestAnalysisRes struct {
	Success    bool                     `json:"success"`
	Message    string                   `json:"message"`
	SampleData entity.SurveyTallyReport `json:"sample_data"`
	Analysis   entity.NarrativeResult   `json:"analysis"`
}

// ErrorRes はエラー時の共通レスポンスです。
type ErrorRes struct {
	Error string `json:"error"`
}

// MessageRes は単純なメッセージレスポンスです。
type MessageRes struct {
	Message string `json:"message"`
}
