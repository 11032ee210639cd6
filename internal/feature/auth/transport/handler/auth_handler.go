// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notes_backend/internal/api"
	"notes_backend/internal/feature/auth/usecase"
	"notes_backend/internal/platform/http/respond"
	jwtmw "notes_backend/internal/platform/jwt"
	"notes_backend/internal/shared/apperr"
)

// errInvalidBody はJSONとして解釈できないリクエストボディに対するエラーです。
var errInvalidBody = apperr.New(apperr.KindBadRequest, "invalid request body")

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、発行済みトークンを返します。
	Register(ctx context.Context, username, password string) (*usecase.AuthResult, error)
	// Login は資格情報を検証し、成功時にトークンを返します。
	Login(ctx context.Context, username, password string) (*usecase.AuthResult, error)
	// DeleteAccount はユーザーアカウントと所有ノートを削除します。
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupRequestにバインド
// - バリデーションエラー時は400を返却
// - ユーザー名重複時は409を返却
// - 成功時は201とトークンを返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup request malformed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, errInvalidBody)
		return
	}
	res, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}
	slog.Info("user signup successful", "user_id", res.UserID, "username", res.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toAuthResponse(res))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginRequestにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request malformed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, errInvalidBody)
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}
	slog.Info("user login successful", "user_id", res.UserID, "username", res.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toAuthResponse(res))
}

// DeleteAccount はアカウント削除APIエンドポイントを処理します。
// - 認証コンテキストからユーザーIDを取得
// - ユーザーが存在しない場合は404を返却
// - 成功時は204を返却
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		respond.Error(c, jwtmw.ErrNotLoggedIn)
		return
	}
	if err := h.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		slog.Warn("account deletion failed", "error", err, "user_id", userID)
		respond.Error(c, err)
		return
	}
	slog.Info("account deleted", "user_id", userID)
	c.Status(http.StatusNoContent)
}

// toAuthResponse はユースケースの結果をAPIレスポンス形式に変換します。
func toAuthResponse(res *usecase.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		Id:       res.UserID,
		Username: res.Username,
		Token:    res.Token,
	}
}
