package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "notes_backend/internal/feature/auth/transport/handler"
	noteshandler "notes_backend/internal/feature/notes/transport/handler"
	"notes_backend/internal/platform/http/handler"
	jwtmw "notes_backend/internal/platform/jwt"
)

func NewRouter(tokens jwtmw.TokenVerifier, authHandler *authhandler.AuthHandler,
	notesHandler *noteshandler.NotesHandler) *gin.Engine {
	r := gin.Default()
	// CORS のデフォルト設定を有効
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（トークン発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth.Use(jwtmw.AuthRequired(tokens))
	{
		auth.DELETE("/account", authHandler.DeleteAccount)
		auth.POST("/notes", notesHandler.Create)
		auth.GET("/notes", notesHandler.List)
		auth.GET("/notes/search", notesHandler.Search)
		auth.PATCH("/notes/:id", notesHandler.Update)
		auth.DELETE("/notes/:id", notesHandler.Delete)
	}

	return r
}
