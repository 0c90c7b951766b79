package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"survey_backend/internal/app/router"
	analyticsadapters "survey_backend/internal/feature/analytics/adapters"
	"survey_backend/internal/feature/analytics/adapters/gemini"
	analyticshandler "survey_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "survey_backend/internal/feature/analytics/usecase"
	authadapters "survey_backend/internal/feature/auth/adapters"
	authhandler "survey_backend/internal/feature/auth/transport/handler"
	authusecase "survey_backend/internal/feature/auth/usecase"
	surveyadapters "survey_backend/internal/feature/survey/adapters"
	surveyhandler "survey_backend/internal/feature/survey/transport/handler"
	surveyusecase "survey_backend/internal/feature/survey/usecase"
	"survey_backend/internal/platform/cache"
	platformdb "survey_backend/internal/platform/db"
	platformhttp "survey_backend/internal/platform/http"
	jwt "survey_backend/internal/platform/jwt"
	platformredis "survey_backend/internal/platform/redis"
	"survey_backend/internal/shared/ratelimiter"
)

func main() {
	// .envがあれば読み込む（コンテナ環境では環境変数を直接使う）
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found. Using environment variables.")
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	surveyRepo := surveyadapters.NewSurveyGorm(db)
	questionRepo := surveyadapters.NewQuestionGorm(db)
	responseRepo := surveyadapters.NewResponseGorm(db)
	answerRepo := surveyadapters.NewAnswerGorm(db)
	surveySource := analyticsadapters.NewSurveySourceGorm(db)
	snapshotRepo := analyticsadapters.NewSnapshotGorm(db)

	// スナップショット参照をRedisキャッシュでラップ
	cachedSnapshotRepo := cache.NewCachingSnapshotRepository(rdb, 5*time.Minute, snapshotRepo, "analytics")

	// Gemini APIクライアント
	geminiCfg := gemini.LoadConfig()
	geminiHTTP := platformhttp.NewHTTPClient(geminiCfg.Timeout)
	geminiLimiter := ratelimiter.NewRateLimiter(8, time.Minute) // 1分に8回まで
	geminiClient := gemini.NewClient(geminiCfg, geminiHTTP, geminiLimiter)

	// JWT
	jwtGen := jwt.NewGenerator(os.Getenv(jwt.EnvKeyJWTSecret), 24*time.Hour)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	surveyUC := surveyusecase.NewSurveyUsecase(surveyRepo)
	questionUC := surveyusecase.NewQuestionUsecase(questionRepo, surveyRepo)
	responseUC := surveyusecase.NewResponseUsecase(responseRepo, answerRepo, surveyRepo, questionRepo)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(surveySource, cachedSnapshotRepo, geminiClient)

	// Handler
	h := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Survey:     surveyhandler.NewSurveyHandler(surveyUC),
		Question:   surveyhandler.NewQuestionHandler(questionUC),
		Response:   surveyhandler.NewResponseHandler(responseUC),
		Analytics:  analyticshandler.NewAnalyticsHandler(analyticsUC),
		GeminiTest: analyticshandler.NewGeminiTestHandler(analyticsUC),
	}

	// ルータ生成
	r := router.NewRouter(h)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwt.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	if geminiCfg.APIKey == "" {
		log.Println("[WARN] GEMINI_API_KEY is not set. Narrative generation will fail and fall back to fixed texts.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
