// Package handler exposes the analytics endpoints over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/feature/analytics/domain/entity"
	"survey_backend/internal/feature/analytics/transport/http/dto"
	"survey_backend/internal/feature/analytics/usecase"
)

// AnalyticsUsecase はハンドラが必要とする分析ユースケースです。
type AnalyticsUsecase interface {
	GetAnalytics(ctx context.Context, surveyID uint) (*usecase.AnalyticsReport, error)
	GenerateSnapshot(ctx context.Context, surveyID uint) (*entity.SurveyAnalytics, error)
	CreateSnapshot(ctx context.Context, snapshot *entity.SurveyAnalytics) (*entity.SurveyAnalytics, error)
	ListSnapshots(ctx context.Context) ([]entity.SurveyAnalytics, error)
	GetSnapshot(ctx context.Context, id uint) (*entity.SurveyAnalytics, error)
	UpdateSnapshot(ctx context.Context, id uint, upd usecase.SnapshotUpdate) (*entity.SurveyAnalytics, error)
	DeleteSnapshot(ctx context.Context, id uint) error
}

// AnalyticsHandler は分析関連のHTTPリクエストを処理します。
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler はAnalyticsHandlerの新しいインスタンスを生成します。
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// parseIDParam は:idパスパラメータをuintとして解釈します。
func parseIDParam(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}

// GetAnalytics は GET /surveys/:id/analytics を処理します。
// ナラティブ生成が失敗しても集計値は返すため、外部API起因の5xxは発生しません。
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	surveyID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid survey id"})
		return
	}

	report, err := h.uc.GetAnalytics(c.Request.Context(), surveyID)
	if err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to build analytics", "error", err, "survey_id", surveyID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to build analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalyticsRes(report.Survey, report.Tally, report.Narrative))
}

// Generate は POST /surveys/:id/generate-analytics を処理します。
func (h *AnalyticsHandler) Generate(c *gin.Context) {
	surveyID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid survey id"})
		return
	}

	snapshot, err := h.uc.GenerateSnapshot(c.Request.Context(), surveyID)
	if err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to generate analytics snapshot", "error", err, "survey_id", surveyID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to generate analytics"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// List は GET /survey-analytics を処理します。
func (h *AnalyticsHandler) List(c *gin.Context) {
	snapshots, err := h.uc.ListSnapshots(c.Request.Context())
	if err != nil {
		slog.Error("failed to list analytics snapshots", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list analytics"})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// Create は POST /survey-analytics を処理します。
func (h *AnalyticsHandler) Create(c *gin.Context) {
	var req dto.CreateSnapshotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	snapshot := &entity.SurveyAnalytics{
		SurveyID:              req.SurveyID,
		TotalResponden:        req.TotalResponden,
		TotalPertanyaan:       req.TotalPertanyaan,
		TotalSetuju:           req.TotalSetuju,
		TotalTidakSetuju:      req.TotalTidakSetuju,
		SetujuPercentage:      req.SetujuPercentage,
		TidakSetujuPercentage: req.TidakSetujuPercentage,
		GeminiSummary:         req.GeminiSummary,
		GeminiInsight:         req.GeminiInsight,
		GeneratedAt:           req.GeneratedAt,
	}

	created, err := h.uc.CreateSnapshot(c.Request.Context(), snapshot)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSurveyNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
		case errors.Is(err, usecase.ErrSnapshotExists):
			c.JSON(http.StatusUnprocessableEntity, dto.MessageRes{Message: "Analytics already exists for this survey"})
		default:
			slog.Error("failed to create analytics snapshot", "error", err, "survey_id", req.SurveyID)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to create analytics"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Show は GET /survey-analytics/:id を処理します。
func (h *AnalyticsHandler) Show(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid analytics id"})
		return
	}

	snapshot, err := h.uc.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "analytics not found"})
			return
		}
		slog.Error("failed to get analytics snapshot", "error", err, "analytics_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to get analytics"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Update は PUT /survey-analytics/:id を処理します。
func (h *AnalyticsHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid analytics id"})
		return
	}

	var req dto.UpdateSnapshotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	snapshot, err := h.uc.UpdateSnapshot(c.Request.Context(), id, usecase.SnapshotUpdate{
		TotalResponden:        req.TotalResponden,
		TotalPertanyaan:       req.TotalPertanyaan,
		TotalSetuju:           req.TotalSetuju,
		TotalTidakSetuju:      req.TotalTidakSetuju,
		SetujuPercentage:      req.SetujuPercentage,
		TidakSetujuPercentage: req.TidakSetujuPercentage,
		GeminiSummary:         req.GeminiSummary,
		GeminiInsight:         req.GeminiInsight,
		GeneratedAt:           req.GeneratedAt,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "analytics not found"})
			return
		}
		slog.Error("failed to update analytics snapshot", "error", err, "analytics_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to update analytics"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Delete は DELETE /survey-analytics/:id を処理します。
func (h *AnalyticsHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid analytics id"})
		return
	}

	if err := h.uc.DeleteSnapshot(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "analytics not found"})
			return
		}
		slog.Error("failed to delete analytics snapshot", "error", err, "analytics_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to delete analytics"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Analytics deleted successfully"})
}
