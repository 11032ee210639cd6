package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"notes_backend/internal/app/di"
	"notes_backend/internal/app/router"
	authadapters "notes_backend/internal/feature/auth/adapters"
	authhandler "notes_backend/internal/feature/auth/transport/handler"
	authusecase "notes_backend/internal/feature/auth/usecase"
	noteshandler "notes_backend/internal/feature/notes/transport/handler"
	notesusecase "notes_backend/internal/feature/notes/usecase"
	"notes_backend/internal/platform/config"
	platformdb "notes_backend/internal/platform/db"
	jwtmw "notes_backend/internal/platform/jwt"
	platformredis "notes_backend/internal/platform/redis"
)

func main() {
	// ローカル開発用の.envがあれば読み込む（本番では環境変数のみ）
	_ = godotenv.Load()

	// JWT_SECRET未設定の場合はここで起動失敗
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db, err := platformdb.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Redis（未設定または接続不可の場合、キャッシュなしで起動）
	var rdb *redisv9.Client
	if cfg.RedisEnabled() {
		if tmp, err := platformredis.NewClient(cfg.RedisAddr(), cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	noteRepo := di.NewNoteRepository(rdb, db, cfg.NoteCacheTTL)

	// トークンサービス
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, noteRepo)
	notesUC := notesusecase.NewNotesUsecase(noteRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	notesH := noteshandler.NewNotesHandler(notesUC)

	// ルータ生成
	r := router.NewRouter(tokens, authH, notesH)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
