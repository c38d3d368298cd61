package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

var ErrInvalidCatalog = errors.New("invalid question catalog")

//go:embed assets/questions.yaml
var builtinQuestions []byte

// LoadCatalog returns the question bank compiled into the binary.
func LoadCatalog() (*entities.Catalog, error) {
	return ParseCatalog(builtinQuestions)
}

// ParseCatalog decodes and validates a YAML question bank.
func ParseCatalog(data []byte) (*entities.Catalog, error) {
	var wrapper struct {
		Topics []entities.Topic `yaml:"topics"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions YAML: %w", err)
	}

	if err := validateTopics(wrapper.Topics); err != nil {
		return nil, err
	}

	return entities.NewCatalog(wrapper.Topics), nil
}

func validateTopics(topics []entities.Topic) error {
	if len(topics) == 0 {
		return fmt.Errorf("%w: no topics", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(topics))
	for i, t := range topics {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return fmt.Errorf("%w: topic %d has no name", ErrInvalidCatalog, i+1)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidCatalog, name)
		}
		seen[name] = struct{}{}

		if len(t.Questions) == 0 {
			return fmt.Errorf("%w: topic %q has no questions", ErrInvalidCatalog, name)
		}
		for j, q := range t.Questions {
			if err := validateQuestion(q); err != nil {
				return fmt.Errorf("%w: topic %q question %d: %v", ErrInvalidCatalog, name, j+1, err)
			}
		}
	}

	return nil
}

func validateQuestion(q entities.Question) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) != entities.OptionsPerQuestion {
		return fmt.Errorf("expected %d options, got %d", entities.OptionsPerQuestion, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %s is empty", entities.OptionLetter(i))
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct answer %d out of range", q.CorrectAnswer)
	}
	return nil
}
