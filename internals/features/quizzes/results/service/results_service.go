package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizmaker_backend/internals/constants"
	dto "quizmaker_backend/internals/features/quizzes/results/dto"
	model "quizmaker_backend/internals/features/quizzes/results/model"
	authRepo "quizmaker_backend/internals/features/users/auth/repository"
	userModel "quizmaker_backend/internals/features/users/user/model"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

const unknownQuizTitle = "Unknown Quiz"

type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	FindStudentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]userModel.UserModel, error)
}

type QuizLookup interface {
	FindTitles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	TitlesByTeacher(ctx context.Context, teacherID uuid.UUID) (map[uuid.UUID]string, error)
}

type CompletionStore interface {
	Add(ctx context.Context, userID, quizID uuid.UUID, marks float64) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.UserQuizCompletionModel, error)
	ListByQuizIDs(ctx context.Context, quizIDs []uuid.UUID) ([]model.UserQuizCompletionModel, error)
}

// ResultsService records completions and aggregates them per student and
// per teacher.
type ResultsService struct {
	users       UserLookup
	quizzes     QuizLookup
	completions CompletionStore
	log         *zap.Logger
}

func NewResultsService(users UserLookup, quizzes QuizLookup, completions CompletionStore, log *zap.Logger) *ResultsService {
	return &ResultsService{
		users:       users,
		quizzes:     quizzes,
		completions: completions,
		log:         log.Named("results"),
	}
}

/* ==========================
   COMPLETION RECORDER
========================== */

// MarkComplete adds {quizId, marks} to the student's completion set and
// reports whether it was new. Repeating an identical call is a no-op.
func (s *ResultsService) MarkComplete(ctx context.Context, req dto.MarkCompleteRequest) (bool, error) {
	rawUser := strings.TrimSpace(req.UserID)
	rawQuiz := strings.TrimSpace(req.QuizID)
	if rawUser == "" || rawQuiz == "" || req.Marks == nil {
		return false, helper.ValidationError("User id, quiz id and marks are required")
	}

	user, err := s.loadUser(ctx, rawUser)
	if err != nil {
		return false, err
	}
	caller := helperAuth.Claims{UserID: user.ID, FullName: user.FullName, Role: user.Role}
	if err := helperAuth.RequireRole(caller, constants.StudentOnly...); err != nil {
		return false, helper.ForbiddenError(constants.RoleErrorStudent("quiz completion"))
	}
	quizID, err := uuid.Parse(rawQuiz)
	if err != nil {
		return false, helper.ValidationError("Invalid quiz id")
	}

	added, err := s.completions.Add(ctx, user.ID, quizID, *req.Marks)
	if err != nil {
		return false, helper.StoreError("Failed to record completion", err)
	}
	s.log.Info("quiz completion",
		zap.String("user_id", user.ID.String()),
		zap.String("quiz_id", quizID.String()),
		zap.Float64("marks", *req.Marks),
		zap.Bool("added", added))
	return added, nil
}

/* ==========================
   RESULTS AGGREGATOR
========================== */

// StudentStats lists the student's completions with quiz titles and the mean
// mark. A quiz deleted after completion shows as "Unknown Quiz".
func (s *ResultsService) StudentStats(ctx context.Context, rawUserID string) (dto.StudentStatsResponse, error) {
	user, err := s.loadUser(ctx, rawUserID)
	if err != nil {
		return dto.StudentStatsResponse{}, err
	}

	rows, err := s.completions.ListByUser(ctx, user.ID)
	if err != nil {
		return dto.StudentStatsResponse{}, helper.StoreError("Failed to fetch completions", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.QuizID)
	}
	titles, err := s.quizzes.FindTitles(ctx, ids)
	if err != nil {
		return dto.StudentStatsResponse{}, helper.StoreError("Failed to fetch quizzes", err)
	}

	out := dto.StudentStatsResponse{Completed: make([]dto.CompletedQuiz, 0, len(rows))}
	var sum float64
	for _, r := range rows {
		title, ok := titles[r.QuizID]
		if !ok {
			title = unknownQuizTitle
		}
		out.Completed = append(out.Completed, dto.CompletedQuiz{
			QuizID:   r.QuizID,
			QuizName: title,
			Mark:     r.Marks,
		})
		sum += r.Marks
	}
	if len(rows) > 0 {
		out.Average = sum / float64(len(rows))
	}
	return out, nil
}

// TeacherResults lists one row per student completion of any quiz the teacher
// owns. A teacher without quizzes, or an unparsable id, yields an empty list.
func (s *ResultsService) TeacherResults(ctx context.Context, rawTeacherID string) ([]dto.TeacherResultItem, error) {
	out := []dto.TeacherResultItem{}

	teacherID, err := uuid.Parse(strings.TrimSpace(rawTeacherID))
	if err != nil {
		return out, nil
	}

	titles, err := s.quizzes.TitlesByTeacher(ctx, teacherID)
	if err != nil {
		return nil, helper.StoreError("Failed to fetch quizzes", err)
	}
	if len(titles) == 0 {
		return out, nil
	}

	quizIDs := make([]uuid.UUID, 0, len(titles))
	for id := range titles {
		quizIDs = append(quizIDs, id)
	}
	rows, err := s.completions.ListByQuizIDs(ctx, quizIDs)
	if err != nil {
		return nil, helper.StoreError("Failed to fetch completions", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(rows))
	userIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		userIDs = append(userIDs, r.UserID)
	}
	students, err := s.users.FindStudentsByIDs(ctx, userIDs)
	if err != nil {
		return nil, helper.StoreError("Failed to fetch students", err)
	}

	for _, r := range rows {
		student, ok := students[r.UserID]
		if !ok {
			continue
		}
		out = append(out, dto.TeacherResultItem{
			StudentName: student.FullName,
			QuizName:    titles[r.QuizID],
			Mark:        r.Marks,
		})
	}
	return out, nil
}

// loadUser resolves a raw id; malformed and unknown ids are both NotFound.
func (s *ResultsService) loadUser(ctx context.Context, raw string) (*userModel.UserModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, helper.NotFoundError("User not found")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			return nil, helper.NotFoundError("User not found")
		}
		return nil, helper.StoreError("Failed to fetch user", err)
	}
	return user, nil
}
