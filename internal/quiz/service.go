package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// QuestionSource supplies the ordered questions for one run.
type QuestionSource func() ([]Question, error)

// Session scores one run of answers against an ordered set of questions.
type Session struct {
	id        string
	questions []Question
	score     int
}

func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		id:        uuid.NewString(),
		questions: questions,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) Questions() []Question {
	return s.questions
}

// Take runs one scoring pass, left to right, adding a point per correct answer.
// Scoring is not idempotent: a second call adds to the existing score.
// A vector whose length differs from the question count is rejected before
// any question is scored.
func (s *Session) Take(answers []int) error {
	if len(answers) != len(s.questions) {
		return fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCountMismatch, len(answers), len(s.questions))
	}

	for idx, question := range s.questions {
		if question.IsCorrect(answers[idx]) {
			s.score++
		}
	}
	return nil
}

func (s *Session) Score() int {
	return s.score
}
