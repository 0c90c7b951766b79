package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"survey_backend/internal/feature/auth/domain/entity"
	"survey_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, name, email, password, role string) (*entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, *entity.User, error)
	MeFunc       func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password, role string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password, role)
	}
	return &entity.User{ID: 1, Name: name, Email: email, Role: entity.RoleResponden}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", nil, usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) Me(ctx context.Context, userID uint) (*entity.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockAuthUsecase) ListUsers(ctx context.Context) ([]entity.User, error) { return nil, nil }
func (m *mockAuthUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}
func (m *mockAuthUsecase) DeleteUser(ctx context.Context, id uint) error { return nil }

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, name, email, password, role string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:           "success: respondent registration",
			requestBody:    gin.H{"name": "Budi", "email": "budi@example.com", "password": "password123"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Budi", "email": "not-an-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Budi", "email": "budi@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: unknown role",
			requestBody:    gin.H{"name": "Budi", "email": "budi@example.com", "password": "password123", "role": "root"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Budi", "email": "taken@example.com", "password": "password123"},
			mockRegister: func(ctx context.Context, name, email, password, role string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.mockRegister})

			router := gin.New()
			router.POST("/auth/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Register_ResponseOmitsPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(&mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, name, email, password, role string) (*entity.User, error) {
			return &entity.User{ID: 1, Name: name, Email: email, Password: "bcrypt-hash", Role: entity.RoleResponden}, nil
		},
	})

	router := gin.New()
	router.POST("/auth/register", handler.Register)

	body, _ := json.Marshal(gin.H{"name": "Budi", "email": "budi@example.com", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "bcrypt-hash", "password hash must not leak into the response")
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLogin      func(ctx context.Context, email, password string) (string, *entity.User, error)
		expectedStatus int
		expectedToken  string
	}{
		{
			name:        "success: login returns token and user",
			requestBody: gin.H{"email": "budi@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "dummy-jwt-token", &entity.User{ID: 1, Name: "Budi", Email: email, Role: entity.RoleAdmin}, nil
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "dummy-jwt-token",
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "budi@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"email": "wrong@example.com", "password": "wrong-password"},
			mockLogin: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "failure: token generation error is hidden from the client",
			requestBody: gin.H{"email": "budi@example.com", "password": "password123"},
			mockLogin: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, errors.New("server misconfigured: JWT_SECRET missing")
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLogin})

			router := gin.New()
			router.POST("/auth/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedToken != "" {
				var res struct {
					Token string `json:"token"`
				}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, tt.expectedToken, res.Token)
			}
		})
	}
}
