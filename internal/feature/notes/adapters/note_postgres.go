package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/feature/notes/usecase"
)

type notePostgres struct {
	db *gorm.DB
}

var _ usecase.NoteRepository = (*notePostgres)(nil)

func NewNoteRepository(db *gorm.DB) *notePostgres {
	return &notePostgres{db: db}
}

type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:50;not null"`
	Text      string    `gorm:"size:300;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NoteModel) TableName() string {
	return "notes"
}

func toModel(e entity.Note) NoteModel {
	return NoteModel{
		ID:        e.ID,
		UserID:    e.OwnerID,
		Title:     e.Title,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntity(m NoteModel) entity.Note {
	return entity.Note{
		ID:        m.ID,
		OwnerID:   m.UserID,
		Title:     m.Title,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *notePostgres) Create(ctx context.Context, note *entity.Note) error {
	m := toModel(*note)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	note.CreatedAt = m.CreatedAt
	note.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *notePostgres) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Note, error) {
	var rows []NoteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Note, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

func (r *notePostgres) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	var m NoteModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNoteNotFound
		}
		return nil, err
	}
	n := toEntity(m)
	return &n, nil
}

func (r *notePostgres) Update(ctx context.Context, id, ownerID uuid.UUID, upd entity.NoteUpdate) (*entity.Note, error) {
	fields := map[string]any{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Text != nil {
		fields["text"] = *upd.Text
	}

	var m NoteModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&NoteModel{}).
			Where("id = ? AND user_id = ?", id, ownerID).
			Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrNoteNotFound
		}
		return tx.Where("id = ? AND user_id = ?", id, ownerID).First(&m).Error
	})
	if err != nil {
		return nil, err
	}
	n := toEntity(m)
	return &n, nil
}

func (r *notePostgres) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&NoteModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *notePostgres) SearchByTitle(ctx context.Context, ownerID uuid.UUID, term string) ([]entity.Note, error) {
	pattern := "%" + escapeLike(term) + "%"
	var rows []NoteModel
	if err := r.db.WithContext(ctx).
		Where(`user_id = ? AND LOWER(title) LIKE LOWER(?) ESCAPE '\'`, ownerID, pattern).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Note, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// escapeLike はLIKEパターンのメタ文字を無効化し、検索語を字句通りに扱います。
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
