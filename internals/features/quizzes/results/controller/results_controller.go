package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	dto "quizmaker_backend/internals/features/quizzes/results/dto"
	"quizmaker_backend/internals/features/quizzes/results/service"
	helper "quizmaker_backend/internals/helpers"
)

type ResultsController struct {
	Results *service.ResultsService
	Log     *zap.Logger
}

func NewResultsController(results *service.ResultsService, log *zap.Logger) *ResultsController {
	return &ResultsController{Results: results, Log: log}
}

// POST /api/mark-quiz-complete
func (rc *ResultsController) MarkComplete(c *fiber.Ctx) error {
	var req dto.MarkCompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	added, err := rc.Results.MarkComplete(c.UserContext(), req)
	if err != nil {
		return helper.WriteError(c, rc.Log, err)
	}

	msg := "Quiz marked as complete"
	if !added {
		msg = "Quiz already marked as complete"
	}
	return helper.JsonMessage(c, fiber.StatusOK, msg, nil)
}

// GET /api/user-stats/:id
func (rc *ResultsController) UserStats(c *fiber.Ctx) error {
	out, err := rc.Results.StudentStats(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.WriteError(c, rc.Log, err)
	}
	return c.JSON(out)
}

// GET /api/teacher-results/:id
func (rc *ResultsController) TeacherResults(c *fiber.Ctx) error {
	out, err := rc.Results.TeacherResults(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.WriteError(c, rc.Log, err)
	}
	return c.JSON(out)
}
