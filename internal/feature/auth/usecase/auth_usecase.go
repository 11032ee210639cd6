// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notes_backend/internal/feature/auth/domain/entity"
	"notes_backend/internal/platform/crypto"
	"notes_backend/internal/shared/validate"
)

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// ログイン時にbcrypt比較が常に実行されることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じユーザー名のユーザーが既に存在する場合、ErrUsernameTakenを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Delete は指定されたIDのユーザーとその所有ノートを削除します。
	// 削除した場合はtrueを、ユーザーが存在しなかった場合はfalseを返します。
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TokenIssuer はアクセストークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uuid.UUID) (string, error)
}

// NoteCacheInvalidator はアカウント削除時にノートキャッシュを破棄するインターフェースです。
type NoteCacheInvalidator interface {
	// InvalidateOwner は指定ユーザーのキャッシュ済みノート一覧をすべて破棄します。
	InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error
}

// AuthResult は認証成功時に返されるユーザー情報とトークンです。
type AuthResult struct {
	UserID   uuid.UUID
	Username string
	Token    string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	tokens     TokenIssuer
	noteCaches NoteCacheInvalidator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// noteCachesはnilを許容し、その場合キャッシュ破棄はスキップされます。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, noteCaches NoteCacheInvalidator) *authUsecase {
	return &authUsecase{
		users:      users,
		tokens:     tokens,
		noteCaches: noteCaches,
	}
}

// Register は新規ユーザーを登録し、即座にログイン状態となるトークンを発行します。
// ユーザー名は前後の空白を除去してから検証・保存されます。
func (u *authUsecase) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)

	// 入力値を検証
	if err := validate.Struct(validate.SignupInput{Username: username, Password: password}); err != nil {
		return nil, err
	}

	// 事前チェックで重複ユーザー名を早期に検出
	// 同時登録のレースはストレージのユニーク制約が最終的に防ぐ
	_, err := u.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{UserID: user.ID, Username: user.Username, Token: token}, nil
}

// Login はユーザーを認証し、成功時にトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)

	if err := validate.Struct(validate.LoginInput{Username: username, Password: password}); err != nil {
		return nil, err
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// パスワード検証が常に実行されることを保証する
	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	ok := crypto.VerifyPassword(password, passwordHash)

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{UserID: user.ID, Username: user.Username, Token: token}, nil
}

// DeleteAccount はユーザーとその所有ノートをすべて削除します。
// 発行済みトークンは署名上有効なまま残りますが、対象ユーザーの操作はすべて失敗します。
func (u *authUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	deleted, err := u.users.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	// 削除済みユーザーのノートがキャッシュから配信され続けないようにする
	if u.noteCaches != nil {
		_ = u.noteCaches.InvalidateOwner(ctx, userID)
	}

	return nil
}
