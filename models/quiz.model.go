package models

// QuizQuestion is a single multiple-choice question. Grading is an exact
// string match of the chosen option against CorrectAnswer.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Quiz is a course quiz, scoped to a course by name match on CourseName.
type Quiz struct {
	ID         string         `json:"_id"`
	Title      string         `json:"title"`
	CourseName string         `json:"courseName"`
	Questions  []QuizQuestion `json:"questions"`
	CreatedAt  string         `json:"createdAt,omitempty"`
}
