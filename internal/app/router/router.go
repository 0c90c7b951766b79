// Package router assembles the HTTP routes for the survey backend.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analyticshandler "survey_backend/internal/feature/analytics/transport/handler"
	authhandler "survey_backend/internal/feature/auth/transport/handler"
	surveyhandler "survey_backend/internal/feature/survey/transport/handler"
	"survey_backend/internal/platform/http/handler"
	jwtmw "survey_backend/internal/platform/jwt"
)

// Handlers はルータが必要とする全ハンドラです。
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Survey     *surveyhandler.SurveyHandler
	Question   *surveyhandler.QuestionHandler
	Response   *surveyhandler.ResponseHandler
	Analytics  *analyticshandler.AnalyticsHandler
	GeminiTest *analyticshandler.GeminiTestHandler
}

// NewRouter は全ルートを登録したgin.Engineを生成します。
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// フロントエンドはブラウザアプリなのでCORSを許可する
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/auth/register", h.Auth.Register)
	// ログイン（JWT 発行）
	r.POST("/auth/login", h.Auth.Login)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/auth/logout", h.Auth.Logout)
		auth.GET("/auth/me", h.Auth.Me)

		// サーベイは閲覧のみ全ロールに開放
		auth.GET("/surveys", h.Survey.List)
		auth.GET("/surveys/:id", h.Survey.Show)

		auth.GET("/questions", h.Question.List)
		auth.GET("/questions/:id", h.Question.Show)

		// 回答の提出はrespondenが行う
		auth.GET("/responses", h.Response.List)
		auth.POST("/responses", h.Response.Create)
		auth.GET("/responses/:id", h.Response.Show)
		auth.DELETE("/responses/:id", h.Response.Delete)

		auth.GET("/answers", h.Response.ListAnswers)
		auth.POST("/answers", h.Response.CreateAnswer)
		auth.DELETE("/answers/:id", h.Response.DeleteAnswer)

		auth.GET("/surveys/:id/analytics", h.Analytics.GetAnalytics)
	}

	// 管理者のみのルート
	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(), jwtmw.AdminRequired())
	{
		admin.GET("/users", h.Auth.ListUsers)
		admin.GET("/users/:id", h.Auth.GetUser)
		admin.DELETE("/users/:id", h.Auth.DeleteUser)

		admin.POST("/surveys", h.Survey.Create)
		admin.PUT("/surveys/:id", h.Survey.Update)
		admin.DELETE("/surveys/:id", h.Survey.Delete)

		admin.POST("/questions", h.Question.Create)
		admin.PUT("/questions/:id", h.Question.Update)
		admin.DELETE("/questions/:id", h.Question.Delete)

		admin.POST("/surveys/:id/generate-analytics", h.Analytics.Generate)

		admin.GET("/survey-analytics", h.Analytics.List)
		admin.POST("/survey-analytics", h.Analytics.Create)
		admin.GET("/survey-analytics/:id", h.Analytics.Show)
		admin.PUT("/survey-analytics/:id", h.Analytics.Update)
		admin.DELETE("/survey-analytics/:id", h.Analytics.Delete)

		// 生成モデルの疎通確認
		admin.GET("/test/gemini", h.GeminiTest.Test)
		admin.POST("/test/gemini", h.GeminiTest.Test)
		admin.GET("/test/gemini/survey", h.GeminiTest.TestAnalysis)
	}

	return r
}
