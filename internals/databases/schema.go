package database

import (
	"gorm.io/gorm"

	quizModel "quizmaker_backend/internals/features/quizzes/quizzes/model"
	resultModel "quizmaker_backend/internals/features/quizzes/results/model"
	userModel "quizmaker_backend/internals/features/users/user/model"
)

// Models lists every table the service reads or writes.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&quizModel.QuizModel{},
		&resultModel.UserQuizCompletionModel{},
	}
}

// AutoMigrate creates missing tables and indexes. Only used for local
// bootstrap (DB_AUTO_MIGRATE) and tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
