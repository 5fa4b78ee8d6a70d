package dto

import "github.com/google/uuid"

/* ==============================
   MARK COMPLETE (POST /api/mark-quiz-complete)
============================== */

type MarkCompleteRequest struct {
	UserID string   `json:"_id"`
	QuizID string   `json:"quizId"`
	Marks  *float64 `json:"marks"`
}

/* ==============================
   STUDENT STATS (GET /api/user-stats/:id)
============================== */

type CompletedQuiz struct {
	QuizID   uuid.UUID `json:"quizId"`
	QuizName string    `json:"quizName"`
	Mark     float64   `json:"mark"`
}

type StudentStatsResponse struct {
	Completed []CompletedQuiz `json:"completed"`
	Average   float64         `json:"average"`
}

/* ==============================
   TEACHER RESULTS (GET /api/teacher-results/:id)
============================== */

type TeacherResultItem struct {
	StudentName string  `json:"studentName"`
	QuizName    string  `json:"quizName"`
	Mark        float64 `json:"mark"`
}
