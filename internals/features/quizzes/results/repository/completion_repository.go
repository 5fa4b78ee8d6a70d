package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "quizmaker_backend/internals/features/quizzes/results/model"
)

type CompletionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Add inserts (userID, quizID, marks) unless that exact triple exists.
// The check and insert are one statement, so concurrent calls cannot both add.
func (r *CompletionRepository) Add(ctx context.Context, userID, quizID uuid.UUID, marks float64) (bool, error) {
	row := model.UserQuizCompletionModel{
		UserID: userID,
		QuizID: quizID,
		Marks:  marks,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByUser returns a student's completions in insertion order.
func (r *CompletionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.UserQuizCompletionModel, error) {
	rows := []model.UserQuizCompletionModel{}
	err := r.db.WithContext(ctx).
		Where("user_quiz_completion_user_id = ?", userID).
		Order("user_quiz_completion_created_at ASC").
		Order("user_quiz_completion_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *CompletionRepository) ListByQuizIDs(ctx context.Context, quizIDs []uuid.UUID) ([]model.UserQuizCompletionModel, error) {
	rows := []model.UserQuizCompletionModel{}
	if len(quizIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_quiz_completion_quiz_id IN ?", quizIDs).
		Order("user_quiz_completion_created_at ASC").
		Order("user_quiz_completion_id ASC").
		Find(&rows).Error
	return rows, err
}
