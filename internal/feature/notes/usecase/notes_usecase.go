// Package usecase はノート操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/shared/validate"
)

// NoteRepository はノートの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NoteRepository interface {
	// Create は新しいノートをストレージに永続化します。
	Create(ctx context.Context, note *entity.Note) error

	// ListByOwner は指定ユーザーの全ノートを更新日時の降順で返します。
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Note, error)

	// FindByID は指定ユーザーが所有するノートを取得します。
	// ノートが存在しないか別ユーザーの所有の場合、ErrNoteNotFoundを返します。
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error)

	// Update はノートの指定フィールドのみを更新し、更新後のノートを返します。
	// ノートが存在しないか別ユーザーの所有の場合、ErrNoteNotFoundを返します。
	Update(ctx context.Context, id, ownerID uuid.UUID, upd entity.NoteUpdate) (*entity.Note, error)

	// Delete は指定ユーザーが所有するノートを削除します。
	// 削除した場合はtrueを、対象が存在しなかった場合はfalseを返します。
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)

	// SearchByTitle はタイトルに部分一致するノートを更新日時の降順で返します。
	// 大文字小文字は区別しません。
	SearchByTitle(ctx context.Context, ownerID uuid.UUID, term string) ([]entity.Note, error)
}

// notesUsecase はノート操作のユースケースを定義します。
type notesUsecase struct {
	notes NoteRepository
}

// NewNotesUsecase はnotesUsecaseの新しいインスタンスを生成します。
func NewNotesUsecase(notes NoteRepository) *notesUsecase {
	return &notesUsecase{notes: notes}
}

// CreateNote は認証済みユーザーの新しいノートを作成します。
func (nu *notesUsecase) CreateNote(ctx context.Context, ownerID uuid.UUID, title, text string) (*entity.Note, error) {
	if err := validate.Struct(validate.NoteCreateInput{Title: title, Text: text}); err != nil {
		return nil, err
	}

	note := &entity.Note{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   title,
		Text:    text,
	}
	if err := nu.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// ListNotes は認証済みユーザーの全ノートを更新日時の降順で取得します。
func (nu *notesUsecase) ListNotes(ctx context.Context, ownerID uuid.UUID) ([]entity.Note, error) {
	return nu.notes.ListByOwner(ctx, ownerID)
}

// UpdateNote はノートの指定フィールドのみを更新します。
// 未指定のフィールドは変更されません。
func (nu *notesUsecase) UpdateNote(ctx context.Context, id, ownerID uuid.UUID, upd entity.NoteUpdate) (*entity.Note, error) {
	if err := validate.Struct(validate.NoteUpdateInput{Title: upd.Title, Text: upd.Text}); err != nil {
		return nil, err
	}

	// 所有権を先に確認し、他ユーザーのノートの存在を漏らさない
	if _, err := nu.notes.FindByID(ctx, id, ownerID); err != nil {
		return nil, err
	}

	return nu.notes.Update(ctx, id, ownerID, upd)
}

// DeleteNote は認証済みユーザーが所有するノートを削除します。
func (nu *notesUsecase) DeleteNote(ctx context.Context, id, ownerID uuid.UUID) error {
	deleted, err := nu.notes.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

// SearchNotes はタイトルに検索語を含むノートを取得します。
// 検索語は前後の空白を除去し、空の場合はエラーを返します。
func (nu *notesUsecase) SearchNotes(ctx context.Context, ownerID uuid.UUID, term string) ([]entity.Note, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	return nu.notes.SearchByTitle(ctx, ownerID, term)
}
