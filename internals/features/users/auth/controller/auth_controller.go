package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quizmaker_backend/internals/features/users/auth/dto"
	"quizmaker_backend/internals/features/users/auth/service"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

type AuthController struct {
	Auth *service.Authenticator
	Log  *zap.Logger
}

func NewAuthController(auth *service.Authenticator, log *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Log: log}
}

// POST /api/signup
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := ac.Auth.Signup(c.UserContext(), service.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.UserType,
	})
	if err != nil {
		return helper.WriteError(c, ac.Log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "Account created successfully",
		User:    user.FullName,
		ID:      user.ID.String(),
	})
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := ac.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.WriteError(c, ac.Log, err)
	}

	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// GET /api/protected
func (ac *AuthController) Protected(c *fiber.Ctx) error {
	claims, ok := helperAuth.ClaimsFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Token is missing")
	}

	user, err := ac.Auth.CurrentUser(c.UserContext(), claims)
	if err != nil {
		return helper.WriteError(c, ac.Log, err)
	}

	return c.JSON(dto.ProtectedResponse{
		Message: "Welcome to the protected route",
		User:    user.FullName,
	})
}
