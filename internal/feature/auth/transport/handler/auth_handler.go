// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"survey_backend/internal/feature/auth/domain/entity"
	"survey_backend/internal/feature/auth/transport/http/dto"
	"survey_backend/internal/feature/auth/usecase"
	jwtmw "survey_backend/internal/platform/jwt"
)

// AuthUsecase は認証・ユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, role string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	Me(ctx context.Context, userID uint) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// AuthHandler は認証・ユーザー管理のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201でユーザー情報を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already registered"})
			return
		}
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "registration failed"})
		return
	}
	slog.Info("user registered", "email", user.Email, "role", user.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 認証失敗の理由は攻撃者にヒントを与えないため常に同じメッセージを返します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{Token: token, User: dto.NewUserRes(user)})
}

// Logout はログアウトを処理します。
// JWTはステートレスなのでサーバー側で破棄するものはなく、クライアントのトークン破棄を前提にACKのみ返します。
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageRes{Message: "logged out"})
}

// Me は認証済みユーザー自身の情報を返します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// ListUsers は登録済みユーザーの一覧を返します。
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list users"})
		return
	}
	out := make([]dto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserRes(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetUser はIDで単一ユーザーを返します。
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid user id"})
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// DeleteUser は指定されたユーザーを削除します。
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid user id"})
		return
	}
	if err := h.auth.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
			return
		}
		slog.Error("failed to delete user", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "user deleted successfully"})
}

// parseIDParam は:idパスパラメータをuintとして解釈します。
func parseIDParam(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
