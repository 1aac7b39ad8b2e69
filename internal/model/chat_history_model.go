package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatHistory holds the ordered transcript for one user. There is one record
// per user, created lazily on the first chat interaction. Messages are stored
// as a single JSON document; insertion order is the conversation order.
type ChatHistory struct {
	ID        uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Messages  datatypes.JSONSlice[Message] `gorm:"type:jsonb" json:"messages"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

func (h *ChatHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
