// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"os"
	"time"
)

// Config はアプリケーションの設定を保持します。
// 起動時に一度だけ読み込み、依存性注入で各コンポーネントに渡します。
type Config struct {
	ListenAddr string // HTTPサーバのリッスンアドレス（例: ":8080"）

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RunMigrations bool // 起動時にスキーママイグレーションを実行するか

	RedisHost     string // 未設定の場合、キャッシュは無効
	RedisPort     string
	RedisPassword string

	JWTSecret    string        // トークン署名鍵（必須）
	TokenTTL     time.Duration // 発行するトークンの有効期間
	NoteCacheTTL time.Duration // ノートキャッシュエントリの有効期間
}

// Load は環境変数から設定を読み込みます。
// JWT_SECRETが未設定の場合はエラーを返します。
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	tokenTTL, err := getduration("TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	noteCacheTTL, err := getduration("NOTE_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	return &Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),

		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:    secret,
		TokenTTL:     tokenTTL,
		NoteCacheTTL: noteCacheTTL,
	}, nil
}

// RedisEnabled はRedisキャッシュが設定されているかを返します。
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// RedisAddr はRedisの接続アドレスを返します。
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// getenv は環境変数の値を返し、未設定の場合はフォールバック値を返します。
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getduration は環境変数をtime.Durationとして解釈します。
// 未設定の場合はフォールバック値を、解釈できない場合はエラーを返します。
func getduration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
