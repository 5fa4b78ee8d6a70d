package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	quizRepo "quizmaker_backend/internals/features/quizzes/quizzes/repository"
	resultsController "quizmaker_backend/internals/features/quizzes/results/controller"
	resultsRepo "quizmaker_backend/internals/features/quizzes/results/repository"
	resultsService "quizmaker_backend/internals/features/quizzes/results/service"
	authRepo "quizmaker_backend/internals/features/users/auth/repository"
)

func ResultsRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger) {
	svc := resultsService.NewResultsService(
		authRepo.NewUserRepository(db),
		quizRepo.NewQuizRepository(db),
		resultsRepo.NewCompletionRepository(db),
		log,
	)
	ctrl := resultsController.NewResultsController(svc, log)

	api.Post("/mark-quiz-complete", ctrl.MarkComplete) // POST /api/mark-quiz-complete
	api.Get("/user-stats/:id", ctrl.UserStats)         // GET  /api/user-stats/:id
	api.Get("/teacher-results/:id", ctrl.TeacherResults)
}
