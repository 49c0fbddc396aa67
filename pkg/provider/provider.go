package provider

import "context"

// Question is a single topic-specific question as delivered by a provider.
type Question struct {
	Label string `json:"label" yaml:"label"`
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
}

// Response is the payload returned by a QuestionProvider.
type Response struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// QuestionProvider fetches additional questions for a survey topic.
// Implementations report transport or decoding problems as errors; callers
// decide how to degrade.
type QuestionProvider interface {
	GetQuestions(ctx context.Context, topic string) (Response, error)
}

// Func adapts a function into a QuestionProvider.
type Func func(ctx context.Context, topic string) (Response, error)

// GetQuestions delegates to the underlying function.
func (fn Func) GetQuestions(ctx context.Context, topic string) (Response, error) {
	return fn(ctx, topic)
}
