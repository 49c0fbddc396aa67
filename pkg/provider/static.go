package provider

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Static serves questions from an in-memory topic map. Unknown topics return
// an empty response.
type Static struct {
	topics map[string][]Question
}

// Ensure Static satisfies the provider contract.
var _ QuestionProvider = (*Static)(nil)

// NewStatic copies topics into a Static provider.
func NewStatic(topics map[string][]Question) *Static {
	out := make(map[string][]Question, len(topics))
	for topic, questions := range topics {
		out[strings.TrimSpace(topic)] = append([]Question(nil), questions...)
	}
	return &Static{topics: out}
}

// GetQuestions returns the questions registered for topic.
func (s *Static) GetQuestions(ctx context.Context, topic string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if s == nil {
		return Response{}, nil
	}
	return Response{Questions: append([]Question(nil), s.topics[topic]...)}, nil
}

// Topics returns the number of topics with registered questions.
func (s *Static) Topics() int {
	if s == nil {
		return 0
	}
	return len(s.topics)
}

type staticFile struct {
	Topics map[string][]Question `json:"topics" yaml:"topics"`
}

// LoadStatic reads a JSON or YAML file of the form
//
//	topics:
//	  Technology:
//	    - {label: "Preferred IDE", name: ide, type: text}
//
// from fsys and returns a Static provider.
func LoadStatic(fsys fs.FS, path string) (*Static, error) {
	if fsys == nil {
		return nil, fmt.Errorf("provider: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("provider: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("provider: file %s is empty", path)
	}

	var file staticFile
	if err := json.Unmarshal(data, &file); err != nil {
		file = staticFile{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("provider: parse %s: invalid JSON or YAML", path)
		}
	}
	return NewStatic(file.Topics), nil
}
