// Package handler はsurveyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/transport/http/dto"
	"survey_backend/internal/feature/survey/usecase"
	jwtmw "survey_backend/internal/platform/jwt"
)

// SurveyUsecase はサーベイCRUD操作のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SurveyUsecase interface {
	CreateSurvey(ctx context.Context, title, description string, createdBy uint) (*entity.Survey, error)
	ListSurveys(ctx context.Context) ([]entity.Survey, error)
	GetSurvey(ctx context.Context, id uint) (*entity.Survey, error)
	UpdateSurvey(ctx context.Context, id uint, upd usecase.SurveyUpdate) (*entity.Survey, error)
	DeleteSurvey(ctx context.Context, id uint) error
}

// SurveyHandler はサーベイリソースのHTTPリクエストを処理します。
type SurveyHandler struct {
	uc SurveyUsecase
}

// NewSurveyHandler はSurveyHandlerの新しいインスタンスを生成します。
func NewSurveyHandler(uc SurveyUsecase) *SurveyHandler {
	return &SurveyHandler{uc: uc}
}

// List は GET /surveys を処理します。
func (h *SurveyHandler) List(c *gin.Context) {
	surveys, err := h.uc.ListSurveys(c.Request.Context())
	if err != nil {
		slog.Error("failed to list surveys", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list surveys"})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// Create は POST /surveys を処理します。
// 作成者はリクエストボディではなくJWTの認証済みユーザーIDを使います。
func (h *SurveyHandler) Create(c *gin.Context) {
	var req dto.CreateSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	createdBy := c.GetUint(jwtmw.ContextUserID)
	s, err := h.uc.CreateSurvey(c.Request.Context(), req.Title, req.Description, createdBy)
	if err != nil {
		slog.Error("failed to create survey", "error", err, "title", req.Title)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to create survey"})
		return
	}
	slog.Info("survey created", "survey_id", s.ID, "title", s.Title, "created_by", createdBy)
	c.JSON(http.StatusCreated, s)
}

// Show は GET /surveys/:id を処理します。
func (h *SurveyHandler) Show(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid survey id"})
		return
	}
	s, err := h.uc.GetSurvey(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to get survey", "error", err, "survey_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to get survey"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// Update は PUT /surveys/:id を処理します。
func (h *SurveyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid survey id"})
		return
	}
	var req dto.UpdateSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	s, err := h.uc.UpdateSurvey(c.Request.Context(), id, usecase.SurveyUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to update survey", "error", err, "survey_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to update survey"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// Delete は DELETE /surveys/:id を処理します。
// 配下の設問・回答・分析スナップショットも併せて削除されます。
func (h *SurveyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid survey id"})
		return
	}
	if err := h.uc.DeleteSurvey(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to delete survey", "error", err, "survey_id", id)
		c.JSON(http.StatusInternalServerError, dto.DeleteRes{Success: false, Message: "failed to delete survey"})
		return
	}
	slog.Info("survey deleted", "survey_id", id)
	c.JSON(http.StatusOK, dto.DeleteRes{Success: true, Message: "Survey deleted successfully"})
}

// parseIDParam は:idパスパラメータをuintとして解釈します。
func parseIDParam(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}

// parseQueryID は指定されたクエリパラメータをuintとして解釈します。
func parseQueryID(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
