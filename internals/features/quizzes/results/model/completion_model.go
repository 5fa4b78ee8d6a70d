package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserQuizCompletionModel is one member of a student's completion set.
// The unique index makes (user, quiz, marks) an add-if-absent key.
type UserQuizCompletionModel struct {
	ID        uuid.UUID `gorm:"column:user_quiz_completion_id;type:uuid;primaryKey" json:"user_quiz_completion_id"`
	UserID    uuid.UUID `gorm:"column:user_quiz_completion_user_id;type:uuid;not null;uniqueIndex:uq_user_quiz_completion,priority:1" json:"user_quiz_completion_user_id"`
	QuizID    uuid.UUID `gorm:"column:user_quiz_completion_quiz_id;type:uuid;not null;uniqueIndex:uq_user_quiz_completion,priority:2;index" json:"user_quiz_completion_quiz_id"`
	Marks     float64   `gorm:"column:user_quiz_completion_marks;not null;uniqueIndex:uq_user_quiz_completion,priority:3" json:"user_quiz_completion_marks"`
	CreatedAt time.Time `gorm:"column:user_quiz_completion_created_at;autoCreateTime" json:"user_quiz_completion_created_at"`
}

func (UserQuizCompletionModel) TableName() string {
	return "user_quiz_completions"
}

// BeforeCreate assigns a time-ordered id, so id breaks created_at ties in
// insertion order.
func (m *UserQuizCompletionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}
	return nil
}
