package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"terminal-quiz/internal/quiz"
)

const (
	answerPrompt        = "Your answer (enter option number): "
	invalidInputMessage = "Invalid input. Enter the option number (e.g., 1, 2, 3, ...)."
	outOfRangeFormat    = "Please enter a number between 1 and %d.\n"
)

var ErrInputClosed = errors.New("input closed before all answers were collected")

type Config struct {
	// Questions defaults to the built-in bank.
	Questions quiz.QuestionSource
	// Logger receives diagnostics only; nil disables them.
	Logger *zerolog.Logger
}

// Run plays one quiz session. Any error that ends the session early is also
// logged at error level, tagged with the session id once one exists.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	source := cfg.Questions
	if source == nil {
		source = quiz.BuiltinQuestions
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	questions, err := source()
	if err != nil {
		err = fmt.Errorf("load questions: %w", err)
		logger.Error().Err(err).Msg("quiz aborted")
		return err
	}

	session, err := quiz.NewSession(questions)
	if err != nil {
		logger.Error().Err(err).Msg("quiz aborted")
		return err
	}
	logger = logger.With().Str("session_id", session.ID()).Logger()

	if err := play(ctx, in, out, session, logger); err != nil {
		logger.Error().Err(err).Msg("quiz aborted")
		return err
	}
	return nil
}

func play(ctx context.Context, in io.Reader, out io.Writer, session *quiz.Session, logger zerolog.Logger) error {
	reader := bufio.NewReader(in)
	p := &printer{w: out}
	answers := make([]int, 0, session.Len())

	for idx, question := range session.Questions() {
		printQuestion(p, idx+1, question)

		answer, err := readAnswer(ctx, reader, p, logger, question.OptionCount())
		if err != nil {
			return fmt.Errorf("question %d: %w", idx+1, err)
		}
		answers = append(answers, answer)
		logger.Debug().Int("question", idx+1).Int("answer", answer).Msg("answer recorded")

		p.println("")
		if p.err != nil {
			return p.err
		}
	}

	if err := session.Take(answers); err != nil {
		return err
	}

	p.printf("Your score: %d/%d\n", session.Score(), session.Len())
	if p.err != nil {
		return p.err
	}

	logger.Debug().Int("score", session.Score()).Int("questions", session.Len()).Msg("quiz completed")
	return nil
}

func printQuestion(p *printer, number int, question quiz.Question) {
	p.printf("%d. %s\n", number, question.Prompt())
	for _, option := range question.Options() {
		p.println(option)
	}
}

// readAnswer reprompts until a well-formed, in-range answer arrives. Only
// input, output and context failures end the loop early.
func readAnswer(ctx context.Context, reader *bufio.Reader, p *printer, logger zerolog.Logger, optionCount int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		p.print(answerPrompt)
		if p.err != nil {
			return 0, p.err
		}

		line, err := readLine(reader)
		if err != nil {
			return 0, err
		}

		answer, parseErr := quiz.ParseAnswer(line, optionCount)
		switch {
		case parseErr == nil:
			return answer, nil
		case errors.Is(parseErr, quiz.ErrOutOfRange):
			p.printf(outOfRangeFormat, optionCount)
		default:
			p.println(invalidInputMessage)
		}
		logger.Debug().Err(parseErr).Msg("answer rejected")
	}
}

// readLine returns the next line including any trailing newline. A last line
// without a newline still counts; EOF with nothing read is ErrInputClosed.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return line, nil
}
