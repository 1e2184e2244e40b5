package progression

import (
	"errors"

	"clinigoal/models"
)

// AnswerReview is one row of the post-submit answer breakdown.
type AnswerReview struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

// QuizResult is the results screen. Reaching it marks the quiz section
// complete whatever the score; Passed is reported for display only and
// does not gate progression.
type QuizResult struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Percent int            `json:"percent"`
	Passed  bool           `json:"passed"`
	Review  []AnswerReview `json:"review"`
}

// QuizSession holds one attempt at a quiz. The full question set lives on
// this side; grading never round-trips to the backend.
type QuizSession struct {
	Quiz    models.Quiz
	answers map[int]string
}

// StartQuiz begins a fresh attempt.
func StartQuiz(quiz models.Quiz) *QuizSession {
	return &QuizSession{Quiz: quiz, answers: map[int]string{}}
}

// SelectAnswer records the chosen option for a question. Re-selecting
// overwrites the previous choice.
func (s *QuizSession) SelectAnswer(questionIndex int, answer string) error {
	if questionIndex < 0 || questionIndex >= len(s.Quiz.Questions) {
		return errors.New("question index out of range")
	}
	s.answers[questionIndex] = answer
	return nil
}

// Answer returns the recorded choice for a question, if one exists.
func (s *QuizSession) Answer(questionIndex int) (string, bool) {
	answer, ok := s.answers[questionIndex]
	return answer, ok
}

// Submit grades the attempt against the passing threshold (a percentage).
func (s *QuizSession) Submit(passingPct int) QuizResult {
	total := len(s.Quiz.Questions)
	result := QuizResult{Total: total, Review: make([]AnswerReview, 0, total)}

	for i, question := range s.Quiz.Questions {
		chosen := s.answers[i]
		correct := chosen == question.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Review = append(result.Review, AnswerReview{
			Question:      question.Question,
			YourAnswer:    chosen,
			CorrectAnswer: question.CorrectAnswer,
			Correct:       correct,
		})
	}

	if total > 0 {
		result.Percent = result.Score * 100 / total
	}
	result.Passed = result.Percent >= passingPct
	return result
}

// ScoreQuiz grades a full answer set in one shot. Selecting the exact
// correctAnswer string for k questions yields exactly k, independent of
// answer order.
func ScoreQuiz(quiz models.Quiz, answers map[int]string) int {
	score := 0
	for i, question := range quiz.Questions {
		if answers[i] == question.CorrectAnswer {
			score++
		}
	}
	return score
}
