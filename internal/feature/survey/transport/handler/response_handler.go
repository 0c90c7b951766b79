package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/feature/survey/domain/entity"
	"survey_backend/internal/feature/survey/transport/http/dto"
	"survey_backend/internal/feature/survey/usecase"
)

// ResponseUsecase は回答セッションと個別回答のユースケースを定義します。
type ResponseUsecase interface {
	CreateResponse(ctx context.Context, surveyID, userID uint) (*entity.Response, error)
	ListResponses(ctx context.Context) ([]entity.Response, error)
	GetResponse(ctx context.Context, id uint) (*entity.Response, error)
	DeleteResponse(ctx context.Context, id uint) error
	CreateAnswer(ctx context.Context, responseID, questionID uint, answer bool) (*entity.Answer, error)
	ListAnswers(ctx context.Context, responseID uint) ([]entity.Answer, error)
	DeleteAnswer(ctx context.Context, id uint) error
}

// ResponseHandler は回答セッション・個別回答リソースのHTTPリクエストを処理します。
type ResponseHandler struct {
	uc ResponseUsecase
}

// NewResponseHandler はResponseHandlerの新しいインスタンスを生成します。
func NewResponseHandler(uc ResponseUsecase) *ResponseHandler {
	return &ResponseHandler{uc: uc}
}

// List は GET /responses を処理します。
func (h *ResponseHandler) List(c *gin.Context) {
	responses, err := h.uc.ListResponses(c.Request.Context())
	if err != nil {
		slog.Error("failed to list responses", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list responses"})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Create は POST /responses を処理します。
func (h *ResponseHandler) Create(c *gin.Context) {
	var req dto.CreateResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	res, err := h.uc.CreateResponse(c.Request.Context(), req.SurveyID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSurveyNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "survey not found"})
		case errors.Is(err, usecase.ErrSurveyInactive):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorRes{Error: "survey is not active"})
		default:
			slog.Error("failed to create response", "error", err, "survey_id", req.SurveyID)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to create response"})
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Show は GET /responses/:id を処理します。
func (h *ResponseHandler) Show(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid response id"})
		return
	}
	res, err := h.uc.GetResponse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrResponseNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "response not found"})
			return
		}
		slog.Error("failed to get response", "error", err, "response_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to get response"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete は DELETE /responses/:id を処理します。
func (h *ResponseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid response id"})
		return
	}
	if err := h.uc.DeleteResponse(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrResponseNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "response not found"})
			return
		}
		slog.Error("failed to delete response", "error", err, "response_id", id)
		c.JSON(http.StatusInternalServerError, dto.DeleteRes{Success: false, Message: "failed to delete response"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteRes{Success: true, Message: "Response deleted successfully"})
}

// CreateAnswer は POST /answers を処理します。
func (h *ResponseHandler) CreateAnswer(c *gin.Context) {
	var req dto.CreateAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	a, err := h.uc.CreateAnswer(c.Request.Context(), req.ResponseID, req.QuestionID, *req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResponseNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "response not found"})
		case errors.Is(err, usecase.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "question not found"})
		default:
			slog.Error("failed to create answer", "error", err, "response_id", req.ResponseID)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to create answer"})
		}
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAnswers は GET /answers?response_id=N を処理します。
func (h *ResponseHandler) ListAnswers(c *gin.Context) {
	responseID64, err := parseQueryID(c, "response_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "response_id query parameter is required"})
		return
	}
	answers, err := h.uc.ListAnswers(c.Request.Context(), responseID64)
	if err != nil {
		if errors.Is(err, usecase.ErrResponseNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "response not found"})
			return
		}
		slog.Error("failed to list answers", "error", err, "response_id", responseID64)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list answers"})
		return
	}
	c.JSON(http.StatusOK, answers)
}

// DeleteAnswer は DELETE /answers/:id を処理します。
func (h *ResponseHandler) DeleteAnswer(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid answer id"})
		return
	}
	if err := h.uc.DeleteAnswer(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAnswerNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "answer not found"})
			return
		}
		slog.Error("failed to delete answer", "error", err, "answer_id", id)
		c.JSON(http.StatusInternalServerError, dto.DeleteRes{Success: false, Message: "failed to delete answer"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteRes{Success: true, Message: "Answer deleted successfully"})
}
