package quizzes

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quizmaker_backend/internals/constants"
	quizModel "quizmaker_backend/internals/features/quizzes/quizzes/model"
	authHelper "quizmaker_backend/internals/features/users/auth/helper"
	userModel "quizmaker_backend/internals/features/users/user/model"
)

//go:embed data_quizzes.json
var DefaultQuizzes []byte

type QuizSeed struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Difficulty   string               `json:"difficulty"`
	TeacherEmail string               `json:"teacher_email"`
	Questions    []quizModel.Question `json:"questions"`
}

// SeedQuizzesFromJSON inserts each quiz for its teacher unless the teacher
// already owns a quiz with the same title. Teachers must be seeded first.
func SeedQuizzesFromJSON(ctx context.Context, db *gorm.DB, raw []byte, log *zap.Logger) (int, error) {
	var inputs []QuizSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return 0, fmt.Errorf("decode quiz seeds: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		email := authHelper.NormalizeEmail(data.TeacherEmail)
		var teacher userModel.UserModel
		err := db.WithContext(ctx).
			Where("email = ? AND role = ?", email, constants.RoleTeacher).
			First(&teacher).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, fmt.Errorf("quiz seed %q: no teacher %q", data.Title, email)
		}
		if err != nil {
			return inserted, err
		}

		var count int64
		if err := db.WithContext(ctx).
			Model(&quizModel.QuizModel{}).
			Where("quiz_teacher_id = ? AND quiz_title = ?", teacher.ID, data.Title).
			Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			log.Info("ℹ️ quiz already exists, skipped", zap.String("title", data.Title))
			continue
		}

		quiz := quizModel.QuizModel{
			Title:       data.Title,
			Description: data.Description,
			TeacherID:   teacher.ID,
		}
		if data.Difficulty != "" {
			d := data.Difficulty
			quiz.Difficulty = &d
		}
		if err := quiz.SetQuestions(data.Questions); err != nil {
			return inserted, err
		}
		if err := db.WithContext(ctx).Create(&quiz).Error; err != nil {
			return inserted, fmt.Errorf("insert quiz %q: %w", data.Title, err)
		}
		inserted++
		log.Info("✅ quiz seeded", zap.String("title", data.Title), zap.String("quiz_id", quiz.ID.String()))
	}
	return inserted, nil
}
