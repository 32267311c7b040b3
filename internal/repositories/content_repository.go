package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanloft/internal/models/db_models"
)

type MediaRepository interface {
	FindById(ctx context.Context, id string) (*db_models.Media, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, page, pageSize int) ([]db_models.Media, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (m *mediaRepository) FindById(ctx context.Context, id string) (*db_models.Media, error) {
	var media db_models.Media
	err := m.db.WithContext(ctx).First(&media, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (m *mediaRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID, page, pageSize int) ([]db_models.Media, error) {
	var items []db_models.Media
	err := m.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

type MessageRepository interface {
	FindById(ctx context.Context, id string) (*db_models.Message, error)
	ListForRecipient(ctx context.Context, recipientID uuid.UUID, page, pageSize int) ([]db_models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (m *messageRepository) FindById(ctx context.Context, id string) (*db_models.Message, error) {
	var msg db_models.Message
	err := m.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

func (m *messageRepository) ListForRecipient(ctx context.Context, recipientID uuid.UUID, page, pageSize int) ([]db_models.Message, error) {
	var msgs []db_models.Message
	err := m.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

type UnlockRepository interface {
	Find(ctx context.Context, accountID uuid.UUID, contentType db_models.ContentType, contentID uuid.UUID) (*db_models.UnlockRecord, error)
}

type unlockRepository struct {
	db *gorm.DB
}

func NewUnlockRepository(db *gorm.DB) UnlockRepository {
	return &unlockRepository{db: db}
}

func (u *unlockRepository) Find(ctx context.Context, accountID uuid.UUID, contentType db_models.ContentType, contentID uuid.UUID) (*db_models.UnlockRecord, error) {
	var record db_models.UnlockRecord
	err := u.db.WithContext(ctx).
		Where("account_id = ? AND content_type = ? AND content_id = ?", accountID, contentType, contentID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
