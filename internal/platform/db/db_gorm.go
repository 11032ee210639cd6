// Package db はgormによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "notes_backend/internal/feature/auth/domain/entity"
	notesadapters "notes_backend/internal/feature/notes/adapters"
	"notes_backend/internal/platform/config"
)

// Opener はDSNからデータベース接続を開く関数です。
// テストで実際の接続を差し替えるために分離しています。
type Opener func(dsn string) (*gorm.DB, error)

// retryInterval は接続リトライの間隔です。
const retryInterval = 3 * time.Second

// BuildDSN は設定からPostgreSQL接続文字列を組み立てます。
func BuildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
}

// ConnectWithRetry はタイムアウトに達するまで一定間隔で接続を試みます。
// コンテナ起動時にデータベースの準備が遅れるケースを吸収します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %v: %w", timeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// Open は設定に従ってデータベースへ接続します。
// RunMigrationsが有効な場合はスキーママイグレーションも実行します。
func Open(cfg *config.Config) (*gorm.DB, error) {
	opener := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	gormDB, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, opener)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(gormDB); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return gormDB, nil
}

// Migrate は全モデルのスキーママイグレーションを実行します。
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&authentity.User{},
		&notesadapters.NoteModel{},
	)
}
