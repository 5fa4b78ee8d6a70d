package user

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quizmaker_backend/internals/constants"
	authHelper "quizmaker_backend/internals/features/users/auth/helper"
	"quizmaker_backend/internals/features/users/user/model"
)

//go:embed data_users.json
var DefaultUsers []byte

type UserSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON inserts every user in raw whose email is not taken yet and
// returns how many were inserted.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, raw []byte, cost int, log *zap.Logger) (int, error) {
	var inputs []UserSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return 0, fmt.Errorf("decode user seeds: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		email := authHelper.NormalizeEmail(data.Email)
		role, ok := constants.ParseRole(data.Role)
		if !ok {
			return inserted, fmt.Errorf("user seed %q: unknown role %q", email, data.Role)
		}

		var existing model.UserModel
		err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
		if err == nil {
			log.Info("ℹ️ user already exists, skipped", zap.String("email", email))
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, err
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := authHelper.HashPassword(data.Password, cost)
		if err != nil {
			return inserted, fmt.Errorf("hash password for %q: %w", email, err)
		}

		user := model.UserModel{
			FullName: data.FullName,
			Email:    email,
			Password: hashed,
			Role:     role,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return inserted, fmt.Errorf("insert user %q: %w", email, err)
		}
		inserted++
		log.Info("✅ user seeded", zap.String("email", email), zap.String("role", role.String()))
	}
	return inserted, nil
}
