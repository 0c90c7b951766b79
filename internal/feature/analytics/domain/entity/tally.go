package entity

// AnswerTally は1つの設問に対する賛成・反対の集計結果を表します。
type AnswerTally struct {
	QuestionID            uint    `json:"question_id"`
	QuestionText          string  `json:"question_text"`
	Setuju                int     `json:"setuju"`
	TidakSetuju           int     `json:"tidak_setuju"`
	SetujuPercentage      float64 `json:"setuju_percentage"`
	TidakSetujuPercentage float64 `json:"tidak_setuju_percentage"`
}

// SurveyTallyReport はサーベイ全体の集計レポートです。
type SurveyTallyReport struct {
	SurveyID              uint
	SurveyTitle           string
	TotalResponden        int
	TotalPertanyaan       int
	TotalSetuju           int
	TotalTidakSetuju      int
	SetujuPercentage      float64
	TidakSetujuPercentage float64
	Questions             []AnswerTally
}

// NarrativeResult はナラティブ生成の結果です。
type NarrativeResult struct {
	Summary string `json:"summary"`
	Insight string `json:"insight"`
}
