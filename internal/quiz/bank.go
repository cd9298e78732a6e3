package quiz

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const bankVersion = 1

//go:embed bank.yaml
var builtinBank []byte

type bankFile struct {
	Version   int            `yaml:"version"`
	Questions []bankQuestion `yaml:"questions"`
}

type bankQuestion struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// BuiltinQuestions returns the question bank compiled into the binary.
func BuiltinQuestions() ([]Question, error) {
	return LoadBank(builtinBank)
}

// LoadBank decodes and validates a YAML question bank.
func LoadBank(data []byte) ([]Question, error) {
	var file bankFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse bank: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	if err := validateBank(file); err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(file.Questions))
	for _, item := range file.Questions {
		question, err := NewQuestion(item.Prompt, item.Options, item.Correct)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// BankError lists every problem found in a question bank, each prefixed with
// the path of the offending field.
type BankError struct {
	Problems []string
}

func (e *BankError) Error() string {
	return "invalid question bank: " + strings.Join(e.Problems, "; ")
}

func validateBank(file bankFile) error {
	var problems []string
	reject := func(path, format string, args ...any) {
		problems = append(problems, path+": "+fmt.Sprintf(format, args...))
	}

	switch file.Version {
	case bankVersion:
	case 0:
		reject("version", "missing")
	default:
		reject("version", "want %d, got %d", bankVersion, file.Version)
	}
	if len(file.Questions) == 0 {
		reject("questions", "empty")
	}

	// Mirrors NewQuestion, but reports every problem instead of the first.
	for i, item := range file.Questions {
		path := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(item.Prompt) == "" {
			reject(path+".prompt", "blank")
		}
		if len(item.Options) < minOptions {
			reject(path+".options", "want at least %d, got %d", minOptions, len(item.Options))
		}
		for j, option := range item.Options {
			if strings.TrimSpace(option) == "" {
				reject(fmt.Sprintf("%s.options[%d]", path, j), "blank")
			}
		}
		if item.Correct < 1 || item.Correct > len(item.Options) {
			reject(path+".correct", "%d outside 1..%d", item.Correct, len(item.Options))
		}
	}

	if len(problems) > 0 {
		return &BankError{Problems: problems}
	}
	return nil
}
