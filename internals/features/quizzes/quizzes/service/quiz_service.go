package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizmaker_backend/internals/constants"
	dto "quizmaker_backend/internals/features/quizzes/quizzes/dto"
	model "quizmaker_backend/internals/features/quizzes/quizzes/model"
	quizRepo "quizmaker_backend/internals/features/quizzes/quizzes/repository"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

type QuizStore interface {
	Create(ctx context.Context, quiz *model.QuizModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.QuizModel, error)
	List(ctx context.Context, offset, limit int, search string) ([]model.QuizModel, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// QuizService is the quiz catalogue: create, read, list and delete.
type QuizService struct {
	quizzes    QuizStore
	maxPerPage int
	log        *zap.Logger
}

func NewQuizService(quizzes QuizStore, maxPerPage int, log *zap.Logger) *QuizService {
	return &QuizService{
		quizzes:    quizzes,
		maxPerPage: maxPerPage,
		log:        log.Named("quizzes"),
	}
}

/* ==========================
   CREATE
========================== */

// CreateQuiz stores a quiz owned by the caller, who must be a teacher.
// A teacherId in the request must name the caller.
func (s *QuizService) CreateQuiz(ctx context.Context, caller helperAuth.Claims, req dto.CreateQuizRequest) (uuid.UUID, error) {
	if err := helperAuth.RequireRole(caller, constants.TeacherOnly...); err != nil {
		return uuid.Nil, helper.ForbiddenError(constants.RoleErrorTeacher("quiz creation"))
	}

	req.Normalize()
	teacherID := caller.UserID
	if req.TeacherID != "" {
		id, err := uuid.Parse(req.TeacherID)
		if err != nil {
			return uuid.Nil, helper.ValidationError("Invalid teacher id")
		}
		if id != caller.UserID {
			return uuid.Nil, helper.ForbiddenError("Forbidden: teacherId does not match the authenticated user")
		}
	}

	if req.Title == "" {
		return uuid.Nil, helper.ValidationError("Title is required")
	}
	questions := req.ModelQuestions()
	if err := validateQuestions(questions); err != nil {
		return uuid.Nil, err
	}

	quiz := &model.QuizModel{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Difficulty:  req.Difficulty,
		TeacherID:   teacherID,
	}
	if err := quiz.SetQuestions(questions); err != nil {
		return uuid.Nil, helper.StoreError("Failed to encode questions", err)
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return uuid.Nil, helper.StoreError("Failed to create quiz", err)
	}

	s.log.Info("quiz created",
		zap.String("quiz_id", quiz.ID.String()),
		zap.String("teacher_id", teacherID.String()),
		zap.Int("questions", len(questions)))
	return quiz.ID, nil
}

func validateQuestions(questions []model.Question) error {
	if len(questions) == 0 {
		return helper.ValidationError("At least one question is required")
	}
	for i, q := range questions {
		n := i + 1
		if q.Text == "" {
			return helper.ValidationError(fmt.Sprintf("Question %d: text is required", n))
		}
		if len(q.Options) == 0 {
			return helper.ValidationError(fmt.Sprintf("Question %d: options are required", n))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return helper.ValidationError(fmt.Sprintf("Question %d: correctIndex is out of range", n))
		}
	}
	return nil
}

/* ==========================
   READ
========================== */

func (s *QuizService) GetQuiz(ctx context.Context, rawID string) (dto.QuizResponse, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return dto.QuizResponse{}, helper.NotFoundError("Quiz not found")
	}
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, quizRepo.ErrQuizNotFound) {
			return dto.QuizResponse{}, helper.NotFoundError("Quiz not found")
		}
		return dto.QuizResponse{}, helper.StoreError("Failed to fetch quiz", err)
	}
	out, err := dto.FromModel(quiz)
	if err != nil {
		return dto.QuizResponse{}, helper.StoreError("Failed to decode quiz", err)
	}
	return out, nil
}

// ListQuizzes returns one page of quiz summaries. page and perPage fall back to
// their defaults when non-positive; perPage is capped by the configured maximum.
func (s *QuizService) ListQuizzes(ctx context.Context, page, perPage int, search string) (dto.QuizListResponse, error) {
	p := helper.NewPaging(page, perPage, s.maxPerPage)
	search = helper.NormalizeText(search)

	rows, total, err := s.quizzes.List(ctx, p.Offset, p.Limit, search)
	if err != nil {
		return dto.QuizListResponse{}, helper.StoreError("Failed to fetch quizzes", err)
	}

	out := dto.QuizListResponse{
		Quizzes: make([]dto.QuizSummary, 0, len(rows)),
		Total:   total,
		Page:    p.Page,
		PerPage: p.PerPage,
	}
	for i := range rows {
		sum, err := dto.SummaryFromModel(&rows[i])
		if err != nil {
			return dto.QuizListResponse{}, helper.StoreError("Failed to decode quiz", err)
		}
		out.Quizzes = append(out.Quizzes, sum)
	}
	return out, nil
}

/* ==========================
   DELETE
========================== */

func (s *QuizService) DeleteQuiz(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return helper.NotFoundError("Quiz not found")
	}
	n, err := s.quizzes.Delete(ctx, id)
	if err != nil {
		return helper.StoreError("Failed to delete quiz", err)
	}
	if n == 0 {
		return helper.NotFoundError("Quiz not found")
	}
	s.log.Info("quiz deleted", zap.String("quiz_id", id.String()))
	return nil
}
