package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quizmaker_backend/internals/configs"
	"quizmaker_backend/internals/constants"
	quizController "quizmaker_backend/internals/features/quizzes/quizzes/controller"
	quizRepo "quizmaker_backend/internals/features/quizzes/quizzes/repository"
	quizService "quizmaker_backend/internals/features/quizzes/quizzes/service"
	authMiddleware "quizmaker_backend/internals/middlewares/auth"
)

/*
Catatan:
- authJWT harus verifikasi Bearer token (401 kalau gagal).
- Path hasil:
  - POST   /api/create-quiz (teacher)
  - GET    /api/get-all-quizzes?page=&per_page=&search=
  - GET    /api/get-quiz/:id
  - DELETE /api/delete-quiz/:id
*/
func QuizRoutes(api fiber.Router, db *gorm.DB, cfg configs.Config, log *zap.Logger, authJWT fiber.Handler) {
	svc := quizService.NewQuizService(quizRepo.NewQuizRepository(db), cfg.QuizMaxPerPage, log)
	ctrl := quizController.NewQuizController(svc, log)

	api.Post("/create-quiz",
		authJWT,
		authMiddleware.OnlyRoles(log, constants.RoleErrorTeacher("quiz creation"), constants.TeacherOnly...),
		ctrl.Create,
	)
	api.Get("/get-all-quizzes", ctrl.List)
	api.Get("/get-quiz/:id", ctrl.GetByID)
	api.Delete("/delete-quiz/:id", ctrl.Delete)
}
