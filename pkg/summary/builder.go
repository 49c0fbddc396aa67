package summary

import (
	"time"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/schema"
)

// Meta carries submission metadata stamped onto a summary.
type Meta struct {
	SubmittedAt time.Time
	Sequence    uint64
}

// Builder projects accepted form values into a Summary.
type Builder struct {
	resolver *schema.Resolver
}

// NewBuilder returns a Builder that resolves topic groups and labels through
// resolver. A nil resolver uses the embedded definition.
func NewBuilder(resolver *schema.Resolver) Builder {
	if resolver == nil {
		resolver = schema.NewResolver(schema.Definition{})
	}
	return Builder{resolver: resolver}
}

// Build captures values and questions with zero metadata.
func (b Builder) Build(values model.Values, questions []model.AdditionalQuestion) model.Summary {
	return b.BuildWith(values, questions, Meta{})
}

// BuildWith captures values and questions. Every value is copied; the topic
// answers list only holds the fields of the group active for the captured
// topic. Answers to additional questions are not part of values and are
// therefore not captured.
func (b Builder) BuildWith(values model.Values, questions []model.AdditionalQuestion, meta Meta) model.Summary {
	resolver := b.resolver
	if resolver == nil {
		resolver = schema.NewResolver(schema.Definition{})
	}

	raw := values.Get(model.Discriminant)
	topic, _ := model.ParseTopic(raw)
	group := resolver.Resolve(raw)
	def := resolver.Definition()

	answers := make([]model.TopicAnswer, 0, len(group.Fields))
	for _, rule := range group.Fields {
		answers = append(answers, model.TopicAnswer{
			Field: rule.Name,
			Label: def.Label(rule.Name),
			Value: values.Get(rule.Name),
		})
	}

	return model.NewSummary(model.SummaryParts{
		Values:              values,
		Topic:               topic,
		TopicAnswers:        answers,
		AdditionalQuestions: questions,
		SubmittedAt:         meta.SubmittedAt,
		Sequence:            meta.Sequence,
	})
}

// Build is a convenience wrapper using the embedded definition.
func Build(values model.Values, questions []model.AdditionalQuestion) model.Summary {
	return NewBuilder(nil).Build(values, questions)
}
