package model

// AdditionalQuestion is a topic-specific question supplied by an external
// provider. InputType mirrors an HTML input type ("text", "number", ...).
type AdditionalQuestion struct {
	Label     string    `json:"label" yaml:"label"`
	Name      FieldName `json:"name" yaml:"name"`
	InputType string    `json:"type" yaml:"type"`
}

// CloneQuestions returns a copy of the slice. Nil in, nil out.
func CloneQuestions(questions []AdditionalQuestion) []AdditionalQuestion {
	if questions == nil {
		return nil
	}
	out := make([]AdditionalQuestion, len(questions))
	copy(out, questions)
	return out
}
