package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is one multiple-choice item. CorrectIndex points into Options.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type QuizModel struct {
	ID          uuid.UUID      `gorm:"column:quiz_id;type:uuid;primaryKey" json:"quiz_id"`
	Title       string         `gorm:"column:quiz_title;type:varchar(255);not null" json:"quiz_title"`
	Description string         `gorm:"column:quiz_description;type:text" json:"quiz_description"`
	ImageURL    *string        `gorm:"column:quiz_image_url;type:text" json:"quiz_image_url,omitempty"`
	Difficulty  *string        `gorm:"column:quiz_difficulty;type:varchar(50)" json:"quiz_difficulty,omitempty"`
	TeacherID   uuid.UUID      `gorm:"column:quiz_teacher_id;type:uuid;not null;index" json:"quiz_teacher_id"`
	Questions   datatypes.JSON `gorm:"column:quiz_questions;not null" json:"quiz_questions"`
	CreatedAt   time.Time      `gorm:"column:quiz_created_at;autoCreateTime;index" json:"quiz_created_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

func (q *QuizModel) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// SetQuestions stores the ordered question list in the JSON column.
func (q *QuizModel) SetQuestions(questions []Question) error {
	raw, err := sonic.Marshal(questions)
	if err != nil {
		return err
	}
	q.Questions = datatypes.JSON(raw)
	return nil
}

// DecodeQuestions returns the ordered question list. An empty column decodes
// to an empty list.
func (q *QuizModel) DecodeQuestions() ([]Question, error) {
	out := []Question{}
	if len(q.Questions) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(q.Questions, &out); err != nil {
		return nil, err
	}
	return out, nil
}
