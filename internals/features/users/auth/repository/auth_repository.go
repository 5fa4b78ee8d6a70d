// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizmaker_backend/internals/constants"
	userModel "quizmaker_backend/internals/features/users/user/model"
)

// ErrUserNotFound is returned by lookups that match no row.
var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

/* ====================== USER ====================== */

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, user *userModel.UserModel) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindStudentsByIDs loads the student accounts among ids, keyed by id.
func (r *UserRepository) FindStudentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]userModel.UserModel, error) {
	out := make(map[uuid.UUID]userModel.UserModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []userModel.UserModel
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND role = ?", ids, constants.RoleStudent).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
