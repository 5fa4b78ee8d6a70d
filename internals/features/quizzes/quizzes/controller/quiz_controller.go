// file: internals/features/quizzes/quizzes/controller/quiz_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	dto "quizmaker_backend/internals/features/quizzes/quizzes/dto"
	"quizmaker_backend/internals/features/quizzes/quizzes/service"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

type QuizController struct {
	Quizzes *service.QuizService
	Log     *zap.Logger
}

func NewQuizController(quizzes *service.QuizService, log *zap.Logger) *QuizController {
	return &QuizController{Quizzes: quizzes, Log: log}
}

// POST /api/create-quiz
func (qc *QuizController) Create(c *fiber.Ctx) error {
	claims, ok := helperAuth.ClaimsFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is missing")
	}

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := qc.Quizzes.CreateQuiz(c.UserContext(), claims, req)
	if err != nil {
		return helper.WriteError(c, qc.Log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateQuizResponse{
		Message: "Quiz created successfully",
		QuizID:  id,
	})
}

// GET /api/get-all-quizzes?page=&per_page=&search=
func (qc *QuizController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 0)

	out, err := qc.Quizzes.ListQuizzes(c.UserContext(), p.Page, p.PerPage, c.Query("search"))
	if err != nil {
		return helper.WriteError(c, qc.Log, err)
	}
	return c.JSON(out)
}

// GET /api/get-quiz/:id
func (qc *QuizController) GetByID(c *fiber.Ctx) error {
	out, err := qc.Quizzes.GetQuiz(c.UserContext(), strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.WriteError(c, qc.Log, err)
	}
	return c.JSON(out)
}

// DELETE /api/delete-quiz/:id
func (qc *QuizController) Delete(c *fiber.Ctx) error {
	if err := qc.Quizzes.DeleteQuiz(c.UserContext(), strings.TrimSpace(c.Params("id"))); err != nil {
		return helper.WriteError(c, qc.Log, err)
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Quiz deleted successfully", nil)
}
