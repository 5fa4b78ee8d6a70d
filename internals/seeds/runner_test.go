package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quizmaker_backend/internals/configs"
	database "quizmaker_backend/internals/databases/databasetest"
	quizModel "quizmaker_backend/internals/features/quizzes/quizzes/model"
	userModel "quizmaker_backend/internals/features/users/user/model"
	quizzes "quizmaker_backend/internals/seeds/quizzes/quizzes"
)

func TestRunAllSeedsIsRepeatable(t *testing.T) {
	db := database.New(t)
	cfg := configs.Config{BcryptCost: 4}
	ctx := context.Background()

	require.NoError(t, RunAllSeeds(ctx, db, cfg, zap.NewNop()))
	require.NoError(t, RunAllSeeds(ctx, db, cfg, zap.NewNop()))

	var users, quizCount int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&quizModel.QuizModel{}).Count(&quizCount).Error)
	require.Equal(t, int64(2), users)
	require.Equal(t, int64(2), quizCount)

	var quiz quizModel.QuizModel
	require.NoError(t, db.Where("quiz_title = ?", "World Capitals").First(&quiz).Error)
	questions, err := quiz.DecodeQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 3)
	require.Equal(t, 1, questions[2].CorrectIndex)
}

func TestSeedQuizzesNeedsTeacher(t *testing.T) {
	db := database.New(t)
	_, err := quizzes.SeedQuizzesFromJSON(context.Background(), db, quizzes.DefaultQuizzes, zap.NewNop())
	require.Error(t, err)
}
