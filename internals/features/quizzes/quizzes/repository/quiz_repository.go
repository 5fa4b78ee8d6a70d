package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "quizmaker_backend/internals/features/quizzes/quizzes/model"
	helper "quizmaker_backend/internals/helpers"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *model.QuizModel) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *QuizRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.QuizModel, error) {
	var quiz model.QuizModel
	err := r.db.WithContext(ctx).Where("quiz_id = ?", id).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// List returns one page of quizzes, newest first, and the total number of
// matches. search is matched case-insensitively against title or description.
func (r *QuizRepository) List(ctx context.Context, offset, limit int, search string) ([]model.QuizModel, int64, error) {
	base := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&model.QuizModel{})
		if s := strings.TrimSpace(search); s != "" {
			like := "%" + helper.EscapeLike(strings.ToLower(s)) + "%"
			tx = tx.Where(r.searchClause(), like, like)
		}
		return tx
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	quizzes := []model.QuizModel{}
	if total == 0 || int64(offset) >= total {
		return quizzes, total, nil
	}
	if err := base().
		Order("quiz_created_at DESC").
		Order("quiz_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&quizzes).Error; err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

// searchClause matches title or description case-insensitively, including
// non-ASCII letters. The sqlite side relies on unicode_lower from the
// databases package.
func (r *QuizRepository) searchClause() string {
	if r.db.Dialector.Name() == "postgres" {
		return `(quiz_title ILIKE ? ESCAPE '\' OR quiz_description ILIKE ? ESCAPE '\')`
	}
	return `(unicode_lower(quiz_title) LIKE ? ESCAPE '\' OR unicode_lower(COALESCE(quiz_description, '')) LIKE ? ESCAPE '\')`
}

// Delete removes the quiz and reports how many rows went away.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("quiz_id = ?", id).Delete(&model.QuizModel{})
	return res.RowsAffected, res.Error
}

// FindTitles maps each existing quiz id among ids to its title.
func (r *QuizRepository) FindTitles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.QuizModel
	if err := r.db.WithContext(ctx).
		Select("quiz_id", "quiz_title").
		Where("quiz_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, q := range rows {
		out[q.ID] = q.Title
	}
	return out, nil
}

// TitlesByTeacher maps every quiz owned by teacherID to its title.
func (r *QuizRepository) TitlesByTeacher(ctx context.Context, teacherID uuid.UUID) (map[uuid.UUID]string, error) {
	var rows []model.QuizModel
	if err := r.db.WithContext(ctx).
		Select("quiz_id", "quiz_title").
		Where("quiz_teacher_id = ?", teacherID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(rows))
	for _, q := range rows {
		out[q.ID] = q.Title
	}
	return out, nil
}
