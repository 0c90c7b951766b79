package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/feature/analytics/domain/entity"
	"survey_backend/internal/feature/analytics/transport/http/dto"
)

// defaultTestPrompt はプロンプト未指定時の疎通確認用プロンプトです。
const defaultTestPrompt = "Halo Gemini! Tolong perkenalkan dirimu dalam bahasa Indonesia."

// NarrativeTester は疎通確認エンドポイントが必要とする操作です。
type NarrativeTester interface {
	TestGenerate(ctx context.Context, prompt string) (string, error)
	AnalyzeSurvey(ctx context.Context, report entity.SurveyTallyReport) entity.NarrativeResult
}

// GeminiTestHandler は生成モデルの疎通確認エンドポイントを処理します。
type GeminiTestHandler struct {
	uc NarrativeTester
}

// NewGeminiTestHandler はGeminiTestHandlerの新しいインスタンスを生成します。
func NewGeminiTestHandler(uc NarrativeTester) *GeminiTestHandler {
	return &GeminiTestHandler{uc: uc}
}

// Test は POST /test/gemini を処理します。
func (h *GeminiTestHandler) Test(c *gin.Context) {
	var req dto.TestGenerateReq
	// ボディ無しも許容する
	_ = c.ShouldBindJSON(&req)
	if req.Prompt == "" {
		req.Prompt = defaultTestPrompt
	}

	raw, err := h.uc.TestGenerate(c.Request.Context(), req.Prompt)
	if err != nil {
		slog.Error("gemini connectivity test failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.TestGenerateRes{
			Success: false,
			Message: "Gemini API returned empty response",
			Prompt:  req.Prompt,
		})
		return
	}

	c.JSON(http.StatusOK, dto.TestGenerateRes{
		Success:  true,
		Message:  "Gemini API is working!",
		Prompt:   req.Prompt,
		Response: raw,
	})
}

// sampleTallyReport は分析パイプラインの動作確認に使う固定データです。
func sampleTallyReport() entity.SurveyTallyReport {
	return entity.SurveyTallyReport{
		SurveyTitle:     "Survei Kepuasan Pelayanan Kampus",
		TotalResponden:  50,
		TotalPertanyaan: 3,
		Questions: []entity.AnswerTally{
			{
				QuestionID:            1,
				QuestionText:          "Apakah Anda puas dengan fasilitas perpustakaan?",
				Setuju:                42,
				TidakSetuju:           8,
				SetujuPercentage:      84,
				TidakSetujuPercentage: 16,
			},
			{
				QuestionID:            2,
				QuestionText:          "Apakah dosen mengajar dengan baik dan profesional?",
				Setuju:                45,
				TidakSetuju:           5,
				SetujuPercentage:      90,
				TidakSetujuPercentage: 10,
			},
			{
				QuestionID:            3,
				QuestionText:          "Apakah lingkungan kampus nyaman dan bersih?",
				Setuju:                38,
				TidakSetuju:           12,
				SetujuPercentage:      76,
				TidakSetujuPercentage: 24,
			},
		},
	}
}

// TestAnalysis は GET /test/gemini-survey を処理します。
// 固定のサンプルデータで分析パイプライン全体を通します。
func (h *GeminiTestHandler) TestAnalysis(c *gin.Context) {
	sample := sampleTallyReport()
	analysis := h.uc.AnalyzeSurvey(c.Request.Context(), sample)

	c.JSON(http.StatusOK, dto.TestAnalysisRes{
		Success:    true,
		Message:    "Survey analysis completed",
		SampleData: sample,
		Analysis:   analysis,
	})
}
