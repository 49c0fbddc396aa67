package model

import (
	"time"

	"github.com/goccy/go-json"
)

// TopicAnswer is one answer from the conditional group that was active when
// the summary was captured.
type TopicAnswer struct {
	Field FieldName `json:"field"`
	Label string    `json:"label"`
	Value string    `json:"value"`
}

// SummaryParts carries the inputs used to construct a Summary.
type SummaryParts struct {
	Values              Values
	Topic               Topic
	TopicAnswers        []TopicAnswer
	AdditionalQuestions []AdditionalQuestion
	SubmittedAt         time.Time
	Sequence            uint64
}

// Summary is an immutable snapshot of accepted form data. Every accessor
// returns a copy so holders cannot mutate the captured state.
type Summary struct {
	values       Values
	topic        Topic
	topicAnswers []TopicAnswer
	questions    []AdditionalQuestion
	submittedAt  time.Time
	sequence     uint64
}

// NewSummary copies parts into a new Summary.
func NewSummary(parts SummaryParts) Summary {
	return Summary{
		values:       parts.Values.Clone(),
		topic:        parts.Topic,
		topicAnswers: append([]TopicAnswer(nil), parts.TopicAnswers...),
		questions:    CloneQuestions(parts.AdditionalQuestions),
		submittedAt:  parts.SubmittedAt,
		sequence:     parts.Sequence,
	}
}

// Values returns every captured field value.
func (s Summary) Values() Values {
	return s.values.Clone()
}

// Value returns the captured value for a single field.
func (s Summary) Value(name FieldName) string {
	return s.values.Get(name)
}

// Topic returns the discriminant captured at submission.
func (s Summary) Topic() Topic {
	return s.topic
}

// TopicAnswers returns the answers of the active conditional group in form
// order.
func (s Summary) TopicAnswers() []TopicAnswer {
	return append([]TopicAnswer(nil), s.topicAnswers...)
}

// AdditionalQuestions returns the enrichment questions known at submission.
// Answers recorded under their names are read through Value.
func (s Summary) AdditionalQuestions() []AdditionalQuestion {
	return CloneQuestions(s.questions)
}

// SubmittedAt reports when the summary was captured.
func (s Summary) SubmittedAt() time.Time {
	return s.submittedAt
}

// Sequence is the per-session submission counter, starting at 1.
func (s Summary) Sequence() uint64 {
	return s.sequence
}

// IsZero reports whether the summary was never populated.
func (s Summary) IsZero() bool {
	return s.sequence == 0 && len(s.values) == 0
}

type summaryJSON struct {
	Values              Values               `json:"values"`
	Topic               string               `json:"topic"`
	TopicAnswers        []TopicAnswer        `json:"topicAnswers"`
	AdditionalQuestions []AdditionalQuestion `json:"additionalQuestions"`
	SubmittedAt         time.Time            `json:"submittedAt"`
	Sequence            uint64               `json:"sequence"`
}

// MarshalJSON implements json.Marshaler.
func (s Summary) MarshalJSON() ([]byte, error) {
	payload := summaryJSON{
		Values:              s.Values(),
		Topic:               s.topic.String(),
		TopicAnswers:        s.TopicAnswers(),
		AdditionalQuestions: s.AdditionalQuestions(),
		SubmittedAt:         s.submittedAt,
		Sequence:            s.sequence,
	}
	if payload.TopicAnswers == nil {
		payload.TopicAnswers = []TopicAnswer{}
	}
	if payload.AdditionalQuestions == nil {
		payload.AdditionalQuestions = []AdditionalQuestion{}
	}
	return json.Marshal(payload)
}
