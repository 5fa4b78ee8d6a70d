// file: internals/features/quizzes/quizzes/dto/quiz_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "quizmaker_backend/internals/features/quizzes/quizzes/model"
	helper "quizmaker_backend/internals/helpers"
)

/* ==============================
   Helpers
============================== */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ==============================
   CREATE (POST /api/create-quiz)
============================== */

type QuestionRequest struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type CreateQuizRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ImageURL    *string           `json:"imageUrl"`
	Difficulty  *string           `json:"difficulty"`
	Questions   []QuestionRequest `json:"questions"`
	TeacherID   string            `json:"teacherId"`
}

// Normalize trims the free text fields and drops blank optionals.
func (r *CreateQuizRequest) Normalize() {
	r.Title = helper.NormalizeText(r.Title)
	r.Description = helper.NormalizeText(r.Description)
	r.ImageURL = trimPtr(r.ImageURL)
	r.Difficulty = trimPtr(r.Difficulty)
	r.TeacherID = strings.TrimSpace(r.TeacherID)
	for i := range r.Questions {
		r.Questions[i].Text = strings.TrimSpace(r.Questions[i].Text)
	}
}

func (r *CreateQuizRequest) ModelQuestions() []model.Question {
	out := make([]model.Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		out = append(out, model.Question{
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
	}
	return out
}

type CreateQuizResponse struct {
	Message string    `json:"message"`
	QuizID  uuid.UUID `json:"quiz_id"`
}

/* ==============================
   READ
============================== */

type QuizResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImageURL    *string          `json:"imageUrl"`
	Difficulty  *string          `json:"difficulty"`
	TeacherID   uuid.UUID        `json:"teacherId"`
	Questions   []model.Question `json:"questions"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func FromModel(m *model.QuizModel) (QuizResponse, error) {
	questions, err := m.DecodeQuestions()
	if err != nil {
		return QuizResponse{}, err
	}
	return QuizResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Difficulty:  m.Difficulty,
		TeacherID:   m.TeacherID,
		Questions:   questions,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// QuizSummary is the list row; questions are reduced to a count.
type QuizSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      *string   `json:"imageUrl"`
	Difficulty    *string   `json:"difficulty"`
	QuestionCount int       `json:"questionCount"`
	TeacherID     uuid.UUID `json:"teacherId"`
}

func SummaryFromModel(m *model.QuizModel) (QuizSummary, error) {
	questions, err := m.DecodeQuestions()
	if err != nil {
		return QuizSummary{}, err
	}
	return QuizSummary{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		Difficulty:    m.Difficulty,
		QuestionCount: len(questions),
		TeacherID:     m.TeacherID,
	}, nil
}

type QuizListResponse struct {
	Quizzes []QuizSummary `json:"quizzes"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}
