// Package handler はnotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notes_backend/internal/api"
	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/platform/http/respond"
	jwtmw "notes_backend/internal/platform/jwt"
	"notes_backend/internal/shared/apperr"
)

var (
	// errInvalidBody はJSONとして解釈できないリクエストボディに対するエラーです。
	errInvalidBody = apperr.New(apperr.KindBadRequest, "invalid request body")
	// errInvalidNoteID はUUIDとして解釈できないパスパラメータに対するエラーです。
	errInvalidNoteID = apperr.New(apperr.KindBadRequest, "invalid note id")
)

// NotesUsecase はノート操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type NotesUsecase interface {
	// CreateNote はタイトルと本文を検証し、新しいノートを作成します。
	CreateNote(ctx context.Context, ownerID uuid.UUID, title, text string) (*entity.Note, error)
	// ListNotes は所有者のノートを更新日時の降順で返します。
	ListNotes(ctx context.Context, ownerID uuid.UUID) ([]entity.Note, error)
	// UpdateNote は所有ノートの指定フィールドを更新します。
	UpdateNote(ctx context.Context, id, ownerID uuid.UUID, upd entity.NoteUpdate) (*entity.Note, error)
	// DeleteNote は所有ノートを削除します。
	DeleteNote(ctx context.Context, id, ownerID uuid.UUID) error
	// SearchNotes はタイトルに検索語を含む所有ノートを返します。
	SearchNotes(ctx context.Context, ownerID uuid.UUID, term string) ([]entity.Note, error)
}

// NotesHandler はノート操作のHTTPリクエストを処理します。
type NotesHandler struct {
	notes NotesUsecase
}

// NewNotesHandler はNotesHandlerの新しいインスタンスを生成します。
func NewNotesHandler(notes NotesUsecase) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// Create はノート作成APIエンドポイントを処理します。
// 成功時は201と作成済みノートを返却します。
func (h *NotesHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		respond.Error(c, jwtmw.ErrNotLoggedIn)
		return
	}
	var req api.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, errInvalidBody)
		return
	}
	note, err := h.notes.CreateNote(c.Request.Context(), userID, req.Title, req.Text)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(*note))
}

// List はノート一覧APIエンドポイントを処理します。
// 所有ノートのみを更新日時の降順で返却します。
func (h *NotesHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		respond.Error(c, jwtmw.ErrNotLoggedIn)
		return
	}
	notes, err := h.notes.ListNotes(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	out := make([]api.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, toResponse(n))
	}
	c.JSON(http.StatusOK, out)
}

// Update はノート更新APIエンドポイントを処理します。
// 他ユーザーのノートは存在しないものとして404を返却します。
func (h *NotesHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		respond.Error(c, jwtmw.ErrNotLoggedIn)
		return
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, errInvalidNoteID)
		return
	}
	var req api.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, errInvalidBody)
		return
	}
	note, err := h.notes.UpdateNote(c.Request.Context(), noteID, userID, entity.NoteUpdate{
		Title: req.Title,
		Text:  req.Text,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*note))
}

// Delete はノート削除APIエンドポイントを処理します。
// 成功時は204を返却します。
func (h *NotesHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		respond.Error(c, jwtmw.ErrNotLoggedIn)
		return
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, errInvalidNoteID)
		return
	}
	if err := h.notes.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search はノート検索APIエンドポイントを処理します。
// クエリパラメータqでタイトルを部分一致検索します。
func (h *NotesHandler) Search(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		respond.Error(c, jwtmw.ErrNotLoggedIn)
		return
	}
	notes, err := h.notes.SearchNotes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	out := make([]api.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, toResponse(n))
	}
	c.JSON(http.StatusOK, out)
}

// toResponse はドメインエンティティをAPIレスポンス形式に変換します。
func toResponse(n entity.Note) api.Note {
	return api.Note{
		Id:        n.ID,
		UserId:    n.OwnerID,
		Title:     n.Title,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
