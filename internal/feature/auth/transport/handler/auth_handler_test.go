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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"notes_backend/internal/feature/auth/usecase"
	jwtmw "notes_backend/internal/platform/jwt"
	"notes_backend/internal/shared/apperr"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc      func(ctx context.Context, username, password string) (*usecase.AuthResult, error)
	LoginFunc         func(ctx context.Context, username, password string) (*usecase.AuthResult, error)
	DeleteAccountFunc func(ctx context.Context, userID uuid.UUID) error
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, password)
	}
	return nil, errors.New("unexpected call to Register")
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, errors.New("unexpected call to Login")
}

// DeleteAccount is the mock implementation of the DeleteAccount method.
func (m *mockAuthUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, userID)
	}
	return errors.New("unexpected call to DeleteAccount")
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testUserID := uuid.MustParse("5f4c1d2e-0000-4000-8000-000000000001")

	tests := []struct {
		name             string
		requestBody      gin.H
		rawBody          string // when set, sent as-is instead of requestBody
		mockRegisterFunc func(ctx context.Context, username, password string) (*usecase.AuthResult, error)
		expectedStatus   int
		expectedBody     gin.H
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "password123", password)
				return &usecase.AuthResult{UserID: testUserID, Username: "alice", Token: "test-token"}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"id": testUserID.String(), "username": "alice", "token": "test-token"},
		},
		{
			name:             "failure: malformed JSON body",
			rawBody:          `{"username": "alice", "password":`,
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedBody:     gin.H{"status": "fail", "message": "invalid request body"},
		},
		{
			name:        "failure: validation error from usecase",
			requestBody: gin.H{"username": "ab", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				return nil, apperr.New(apperr.KindBadRequest, "username must be between 3 and 50 characters")
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"status": "fail", "message": "username must be between 3 and 50 characters"},
		},
		{
			name:        "failure: duplicate username (usecase error)",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrUsernameTaken
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"status": "fail", "message": "username already taken"},
		},
		{
			name:        "failure: unexpected usecase error is hidden",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockRegisterFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				return nil, errors.New("db connection lost")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"status": "error", "message": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/signup", h.Signup)

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}
			req, _ := http.NewRequest(http.MethodPost, "/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testUserID := uuid.MustParse("5f4c1d2e-0000-4000-8000-000000000002")

	tests := []struct {
		name           string
		requestBody    gin.H
		rawBody        string
		mockLoginFunc  func(ctx context.Context, username, password string) (*usecase.AuthResult, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, "password123", password)
				return &usecase.AuthResult{UserID: testUserID, Username: "alice", Token: "test-token"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"id": testUserID.String(), "username": "alice", "token": "test-token"},
		},
		{
			name:           "failure: malformed JSON body",
			rawBody:        `not json at all`,
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"status": "fail", "message": "invalid request body"},
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"username": "alice", "password": "wrong-password"},
			mockLoginFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"status": "fail", "message": "invalid credentials"},
		},
		{
			name:        "failure: lookup error is hidden",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
				return nil, errors.New("failed to look up user: db connection lost")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"status": "error", "message": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", h.Login)

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testUserID := uuid.MustParse("5f4c1d2e-0000-4000-8000-000000000003")

	t.Run("success: account deleted", func(t *testing.T) {
		var gotUserID uuid.UUID
		mockUC := &mockAuthUsecase{
			DeleteAccountFunc: func(ctx context.Context, userID uuid.UUID) error {
				gotUserID = userID
				return nil
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		// The auth middleware normally sets the user ID on the context.
		router.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUserID, testUserID) })
		router.DELETE("/account", h.DeleteAccount)

		req, _ := http.NewRequest(http.MethodDelete, "/account", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, testUserID, gotUserID)
	})

	t.Run("failure: missing auth context", func(t *testing.T) {
		mockUC := &mockAuthUsecase{}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.DELETE("/account", h.DeleteAccount)

		req, _ := http.NewRequest(http.MethodDelete, "/account", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var responseBody gin.H
		err := json.Unmarshal(w.Body.Bytes(), &responseBody)
		assert.NoError(t, err)
		assert.Equal(t, gin.H{"status": "fail", "message": "not logged in"}, responseBody)
	})

	t.Run("failure: user already deleted", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			DeleteAccountFunc: func(ctx context.Context, userID uuid.UUID) error {
				return usecase.ErrUserNotFound
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUserID, testUserID) })
		router.DELETE("/account", h.DeleteAccount)

		req, _ := http.NewRequest(http.MethodDelete, "/account", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var responseBody gin.H
		err := json.Unmarshal(w.Body.Bytes(), &responseBody)
		assert.NoError(t, err)
		assert.Equal(t, gin.H{"status": "fail", "message": "user not found"}, responseBody)
	})
}
