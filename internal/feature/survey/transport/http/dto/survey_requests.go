// Package dto はsurveyフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateSurveyReq は POST /surveys のリクエストボディを表します。
type CreateSurveyReq struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateSurveyReq は PUT /surveys/:id のリクエストボディを表します。
// ポインタのフィールドは「未指定」と「ゼロ値への更新」を区別するためです。
type UpdateSurveyReq struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// CreateQuestionReq は POST /questions のリクエストボディを表します。
type CreateQuestionReq struct {
	SurveyID     uint   `json:"survey_id" binding:"required"`
	QuestionText string `json:"question_text" binding:"required"`
	Order        int    `json:"order" binding:"omitempty,min=0"`
}

// UpdateQuestionReq は PUT /questions/:id のリクエストボディを表します。
type UpdateQuestionReq struct {
	QuestionText *string `json:"question_text"`
	Order        *int    `json:"order" binding:"omitempty,min=0"`
}

// CreateResponseReq は POST /responses のリクエストボディを表します。
type CreateResponseReq struct {
	SurveyID uint `json:"survey_id" binding:"required"`
	UserID   uint `json:"user_id" binding:"required"`
}

// CreateAnswerReq は POST /answers のリクエストボディを表します。
// Answerはfalse（tidak setuju）が正当な値のためポインタ必須にしています。
type CreateAnswerReq struct {
	ResponseID uint  `json:"response_id" binding:"required"`
	QuestionID uint  `json:"question_id" binding:"required"`
	Answer     *bool `json:"answer" binding:"required"`
}

// DeleteRes は削除系エンドポイントの共通レスポンスです。
type DeleteRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorRes is the generic error envelope used by all handlers.
type ErrorRes struct {
	Error string `json:"error"`
}
