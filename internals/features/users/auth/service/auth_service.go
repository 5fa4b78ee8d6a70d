package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizmaker_backend/internals/constants"
	authHelper "quizmaker_backend/internals/features/users/auth/helper"
	authRepo "quizmaker_backend/internals/features/users/auth/repository"
	userModel "quizmaker_backend/internals/features/users/user/model"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

const msgInvalidCredentials = "Invalid email or password"

// UserStore is the slice of the credential store the Authenticator needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *userModel.UserModel) error
}

type Options struct {
	Secret     string
	TokenTTL   time.Duration // 0 = no exp claim
	BcryptCost int
}

type Authenticator struct {
	users    UserStore
	tokens   *TokenIssuer
	cost     int
	validate *validator.Validate
	log      *zap.Logger
}

func NewAuthenticator(users UserStore, opts Options, log *zap.Logger) *Authenticator {
	return &Authenticator{
		users:    users,
		tokens:   NewTokenIssuer(opts.Secret, opts.TokenTTL),
		cost:     opts.BcryptCost,
		validate: validator.New(),
		log:      log.Named("auth"),
	}
}

type SignupInput struct {
	FullName string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Role     string
}

/* ==========================
   SIGNUP
========================== */

func (a *Authenticator) Signup(ctx context.Context, in SignupInput) (*userModel.UserModel, error) {
	in.FullName = helper.NormalizeText(in.FullName)
	in.Email = authHelper.NormalizeEmail(in.Email)

	if err := a.validate.Struct(in); err != nil {
		return nil, helper.ValidationError("All fields are required")
	}
	if !authHelper.IsValidEmail(in.Email) {
		return nil, helper.ValidationError("Invalid email format")
	}

	role := constants.RoleStudent
	if strings.TrimSpace(in.Role) != "" {
		parsed, ok := constants.ParseRole(in.Role)
		if !ok {
			return nil, helper.ValidationError("Invalid user type")
		}
		role = parsed
	}

	taken, err := a.users.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, helper.StoreError("Server error", err)
	}
	if taken {
		return nil, helper.ConflictError("Email already exists")
	}

	hash, err := authHelper.HashPassword(in.Password, a.cost)
	if err != nil {
		return nil, helper.StoreError("Password hashing failed", err)
	}

	user := &userModel.UserModel{
		FullName: in.FullName,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}
	if err := a.users.Create(ctx, user); err != nil {
		// lost the race against a concurrent signup with the same email
		if helper.IsUniqueViolation(err) {
			return nil, helper.ConflictError("Email already exists")
		}
		return nil, helper.StoreError("Server error", err)
	}

	a.log.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))
	return user, nil
}

/* ==========================
   LOGIN
========================== */

func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	email = authHelper.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", helper.ValidationError("Email and password are required")
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			return "", helper.AuthError(msgInvalidCredentials)
		}
		return "", helper.StoreError("Server error", err)
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return "", helper.AuthError(msgInvalidCredentials)
	}

	token, err := a.tokens.Issue(helperAuth.Claims{
		UserID:   user.ID,
		FullName: user.FullName,
		Role:     user.Role,
	})
	if err != nil {
		return "", helper.StoreError("Failed to issue token", err)
	}
	return token, nil
}

/* ==========================
   VERIFY
========================== */

func (a *Authenticator) Verify(raw string) (helperAuth.Claims, error) {
	return a.tokens.Parse(raw)
}

// CurrentUser resolves the account behind verified claims.
func (a *Authenticator) CurrentUser(ctx context.Context, claims helperAuth.Claims) (*userModel.UserModel, error) {
	user, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, authRepo.ErrUserNotFound) {
			return nil, helper.NotFoundError("User not found")
		}
		return nil, helper.StoreError("Server error", err)
	}
	return user, nil
}
