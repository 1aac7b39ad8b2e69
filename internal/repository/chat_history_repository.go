package repository

import (
	"errors"

	"github.com/fadilmartias/job-wingman/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatHistoryRepositoryInterface interface {
	FindByUserID(userID uuid.UUID) (*model.ChatHistory, error)
	Save(history *model.ChatHistory) error
}

type ChatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) *ChatHistoryRepository {
	return &ChatHistoryRepository{db}
}

// FindByUserID returns (nil, nil) when the user has no history record yet.
// Reads never create one.
func (r *ChatHistoryRepository) FindByUserID(userID uuid.UUID) (*model.ChatHistory, error) {
	var history model.ChatHistory
	err := r.db.First(&history, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *ChatHistoryRepository) Save(history *model.ChatHistory) error {
	return r.db.Save(history).Error
}
