package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobRequirements is the user's stated job-search preferences. The object is
// replaced wholesale on every save; omitted fields do not survive a save.
type JobRequirements struct {
	Title                  string `json:"title,omitempty"`
	SalaryRange            string `json:"salaryRange,omitempty"`
	WorkArrangement        string `json:"workArrangement,omitempty"`
	VacationTime           string `json:"vacationTime,omitempty"`
	AdditionalInstructions string `json:"additionalInstructions,omitempty"`
}

type User struct {
	ID              uuid.UUID                            `gorm:"type:uuid;primaryKey" json:"id"`
	Username        string                               `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash    string                               `gorm:"type:varchar(255);not null" json:"-"`
	JobRequirements *datatypes.JSONType[JobRequirements] `gorm:"type:jsonb" json:"jobRequirements,omitempty"`
	CreatedAt       time.Time                            `json:"created_at"`
	UpdatedAt       time.Time                            `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
