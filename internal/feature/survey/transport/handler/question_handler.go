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
)

// QuestionUsecase は設問CRUD操作のユースケースを定義します。
type QuestionUsecase interface {
	CreateQuestion(ctx context.Context, surveyID uint, text string, order int) (*entity.Question, error)
	ListQuestions(ctx context.Context, surveyID uint) ([]entity.Question, error)
	GetQuestion(ctx context.Context, id uint) (*entity.Question, error)
	UpdateQuestion(ctx context.Context, id uint, text *string, order *int) (*entity.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

// QuestionHandler は設問リソースのHTTPリクエストを処理します。
type QuestionHandler struct {
	uc QuestionUsecase
}

// NewQuestionHandler はQuestionHandlerの新しいインスタンスを生成します。
func NewQuestionHandler(uc QuestionUsecase) *QuestionHandler {
	return &QuestionHandler{uc: uc}
}

// List は GET /questions?survey_id=N を処理します。
func (h *QuestionHandler) List(c *gin.Context) {
	surveyID64, err := strconv.ParseUint(c.Query("survey_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "survey_id query parameter is required"})
		return
	}
	questions, err := h.uc.ListQuestions(c.Request.Context(), uint(surveyID64))
	if err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to list questions", "error", err, "survey_id", surveyID64)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Create は POST /questions を処理します。
func (h *QuestionHandler) Create(c *gin.Context) {
	var req dto.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	q, err := h.uc.CreateQuestion(c.Request.Context(), req.SurveyID, req.QuestionText, req.Order)
	if err != nil {
		if errors.Is(err, usecase.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
			return
		}
		slog.Error("failed to create question", "error", err, "survey_id", req.SurveyID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, q)
}

// Show は GET /questions/:id を処理します。
func (h *QuestionHandler) Show(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid question id"})
		return
	}
	q, err := h.uc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "question not found"})
			return
		}
		slog.Error("failed to get question", "error", err, "question_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to get question"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// Update は PUT /questions/:id を処理します。
func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid question id"})
		return
	}
	var req dto.UpdateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	q, err := h.uc.UpdateQuestion(c.Request.Context(), id, req.QuestionText, req.Order)
	if err != nil {
		if errors.Is(err, usecase.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "question not found"})
			return
		}
		slog.Error("failed to update question", "error", err, "question_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to update question"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// Delete は DELETE /questions/:id を処理します。
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid question id"})
		return
	}
	if err := h.uc.DeleteQuestion(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "question not found"})
			return
		}
		slog.Error("failed to delete question", "error", err, "question_id", id)
		c.JSON(http.StatusInternalServerError, dto.DeleteRes{Success: false, Message: "failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteRes{Success: true, Message: "Question deleted successfully"})
}
