package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"quizmaker_backend/internals/configs"
	quizzes "quizmaker_backend/internals/seeds/quizzes/quizzes"
	users "quizmaker_backend/internals/seeds/users/auth"
)

// RunAllSeeds loads the bundled demo users and quizzes. Safe to run repeatedly.
func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg configs.Config, log *zap.Logger) error {
	log = log.Named("seeds")

	//* User
	n, err := users.SeedUsersFromJSON(ctx, db, users.DefaultUsers, cfg.BcryptCost, log)
	if err != nil {
		return err
	}
	log.Info("users seeded", zap.Int("inserted", n))

	//* Quizzes
	n, err = quizzes.SeedQuizzesFromJSON(ctx, db, quizzes.DefaultQuizzes, log)
	if err != nil {
		return err
	}
	log.Info("quizzes seeded", zap.Int("inserted", n))
	return nil
}
