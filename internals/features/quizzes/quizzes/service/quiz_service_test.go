package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quizmaker_backend/internals/constants"
	database "quizmaker_backend/internals/databases/databasetest"
	dto "quizmaker_backend/internals/features/quizzes/quizzes/dto"
	quizRepo "quizmaker_backend/internals/features/quizzes/quizzes/repository"
	helper "quizmaker_backend/internals/helpers"
	helperAuth "quizmaker_backend/internals/helpers/auth"
)

func newTestQuizService(t *testing.T, maxPerPage int) *QuizService {
	t.Helper()
	return NewQuizService(quizRepo.NewQuizRepository(database.New(t)), maxPerPage, zap.NewNop())
}

func teacher() helperAuth.Claims {
	return helperAuth.Claims{UserID: uuid.New(), FullName: "T", Role: constants.RoleTeacher}
}

func validRequest(title string) dto.CreateQuizRequest {
	return dto.CreateQuizRequest{
		Title:       title,
		Description: "desc",
		Questions: []dto.QuestionRequest{
			{Text: "Q1", Options: []string{"a", "b"}, CorrectIndex: 1},
			{Text: "Q2", Options: []string{"x"}, CorrectIndex: 0},
		},
	}
}

func TestCreateAndGetQuiz(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()
	caller := teacher()

	req := validRequest("  Basics ")
	img := " https://img.example/q.png "
	blank := "   "
	req.ImageURL = &img
	req.Difficulty = &blank

	id, err := svc.CreateQuiz(ctx, caller, req)
	require.NoError(t, err)

	got, err := svc.GetQuiz(ctx, id.String())
	require.NoError(t, err)
	require.Equal(t, "Basics", got.Title)
	require.Equal(t, caller.UserID, got.TeacherID)
	require.NotNil(t, got.ImageURL)
	require.Equal(t, "https://img.example/q.png", *got.ImageURL)
	require.Nil(t, got.Difficulty)
	require.Len(t, got.Questions, 2)
	require.Equal(t, []string{"a", "b"}, got.Questions[0].Options)
	require.Equal(t, 1, got.Questions[0].CorrectIndex)
}

func TestCreateQuizTeacherBinding(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()
	caller := teacher()

	req := validRequest("Mine")
	req.TeacherID = caller.UserID.String()
	_, err := svc.CreateQuiz(ctx, caller, req)
	require.NoError(t, err)

	req.TeacherID = uuid.NewString()
	_, err = svc.CreateQuiz(ctx, caller, req)
	require.True(t, helper.IsKind(err, helper.KindForbidden))

	req.TeacherID = "not-a-uuid"
	_, err = svc.CreateQuiz(ctx, caller, req)
	require.True(t, helper.IsKind(err, helper.KindValidation))

	student := helperAuth.Claims{UserID: uuid.New(), Role: constants.RoleStudent}
	_, err = svc.CreateQuiz(ctx, student, validRequest("Nope"))
	require.True(t, helper.IsKind(err, helper.KindForbidden))
}

func TestCreateQuizValidation(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()

	cases := map[string]func(r *dto.CreateQuizRequest){
		"missing title":  func(r *dto.CreateQuizRequest) { r.Title = " " },
		"no questions":   func(r *dto.CreateQuizRequest) { r.Questions = nil },
		"empty text":     func(r *dto.CreateQuizRequest) { r.Questions[0].Text = "" },
		"no options":     func(r *dto.CreateQuizRequest) { r.Questions[1].Options = nil },
		"negative index": func(r *dto.CreateQuizRequest) { r.Questions[0].CorrectIndex = -1 },
		"index past end": func(r *dto.CreateQuizRequest) { r.Questions[0].CorrectIndex = 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest("Quiz")
			mutate(&req)
			_, err := svc.CreateQuiz(ctx, teacher(), req)
			require.True(t, helper.IsKind(err, helper.KindValidation), "got %v", err)
		})
	}
}

func TestGetQuizNotFound(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()

	_, err := svc.GetQuiz(ctx, uuid.NewString())
	require.True(t, helper.IsKind(err, helper.KindNotFound))

	_, err = svc.GetQuiz(ctx, "garbage")
	require.True(t, helper.IsKind(err, helper.KindNotFound))
}

func TestListQuizzesOrderingAndCap(t *testing.T) {
	svc := newTestQuizService(t, 4)
	ctx := context.Background()
	caller := teacher()

	for i := 0; i < 6; i++ {
		_, err := svc.CreateQuiz(ctx, caller, validRequest(fmt.Sprintf("Quiz %d", i)))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	page, err := svc.ListQuizzes(ctx, 1, 50, "")
	require.NoError(t, err)
	require.Equal(t, int64(6), page.Total)
	require.Equal(t, 4, page.PerPage)
	require.Len(t, page.Quizzes, 4)
	require.Equal(t, "Quiz 5", page.Quizzes[0].Title)
	require.Equal(t, 2, page.Quizzes[0].QuestionCount)

	page, err = svc.ListQuizzes(ctx, 2, 4, "")
	require.NoError(t, err)
	require.Len(t, page.Quizzes, 2)
	require.Equal(t, "Quiz 0", page.Quizzes[1].Title)

	page, err = svc.ListQuizzes(ctx, 9, 4, "")
	require.NoError(t, err)
	require.Empty(t, page.Quizzes)
	require.NotNil(t, page.Quizzes)
}

func TestListQuizzesSearchEscapesWildcards(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()
	caller := teacher()

	for _, title := range []string{"snake_case", "snakeXcase", "Other"} {
		_, err := svc.CreateQuiz(ctx, caller, validRequest(title))
		require.NoError(t, err)
	}

	page, err := svc.ListQuizzes(ctx, 1, 10, "KE_C")
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	require.Equal(t, "snake_case", page.Quizzes[0].Title)

	page, err = svc.ListQuizzes(ctx, 1, 10, "DESC")
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
}

func TestListQuizzesSearchFoldsNonASCII(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()
	caller := teacher()

	for _, title := range []string{"École", "Straße", "Ölçme"} {
		_, err := svc.CreateQuiz(ctx, caller, validRequest(title))
		require.NoError(t, err)
	}

	cases := []struct{ term, want string }{
		{"ÉCOLE", "École"},
		{"école", "École"},
		{"straße", "Straße"},
		{"ÖLÇ", "Ölçme"},
	}
	for _, tc := range cases {
		page, err := svc.ListQuizzes(ctx, 1, 10, tc.term)
		require.NoError(t, err, tc.term)
		require.Equal(t, int64(1), page.Total, tc.term)
		require.Equal(t, tc.want, page.Quizzes[0].Title, tc.term)
	}
}

func TestDeleteQuiz(t *testing.T) {
	svc := newTestQuizService(t, 100)
	ctx := context.Background()

	id, err := svc.CreateQuiz(ctx, teacher(), validRequest("Gone"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuiz(ctx, id.String()))
	require.True(t, helper.IsKind(svc.DeleteQuiz(ctx, id.String()), helper.KindNotFound))
	require.True(t, helper.IsKind(svc.DeleteQuiz(ctx, "bad-id"), helper.KindNotFound))
}
