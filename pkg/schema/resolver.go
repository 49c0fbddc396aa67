package schema

import "github.com/goliatone/go-surveyform/pkg/model"

// FieldRule pairs a field with its required flag inside a conditional group.
type FieldRule struct {
	Name     model.FieldName
	Required bool
}

// Group is the conditional field set attached to one topic. The zero value is
// the empty group.
type Group struct {
	Topic  model.Topic
	Fields []FieldRule
}

// Empty reports whether the group contributes no fields.
func (g Group) Empty() bool {
	return len(g.Fields) == 0
}

// Names returns the field names in form order.
func (g Group) Names() []model.FieldName {
	if len(g.Fields) == 0 {
		return nil
	}
	out := make([]model.FieldName, 0, len(g.Fields))
	for _, rule := range g.Fields {
		out = append(out, rule.Name)
	}
	return out
}

// Has reports whether name belongs to the group.
func (g Group) Has(name model.FieldName) bool {
	for _, rule := range g.Fields {
		if rule.Name == name {
			return true
		}
	}
	return false
}

func (g Group) clone() Group {
	return Group{
		Topic:  g.Topic,
		Fields: append([]FieldRule(nil), g.Fields...),
	}
}

var groups = map[model.Topic]Group{
	model.TopicTechnology: {
		Topic: model.TopicTechnology,
		Fields: []FieldRule{
			{Name: model.FieldFavoriteProgrammingLanguage, Required: true},
			{Name: model.FieldYearsOfExperience, Required: true},
		},
	},
	model.TopicHealth: {
		Topic: model.TopicHealth,
		Fields: []FieldRule{
			{Name: model.FieldExerciseFrequency, Required: true},
			{Name: model.FieldDietPreference, Required: true},
		},
	},
	model.TopicEducation: {
		Topic: model.TopicEducation,
		Fields: []FieldRule{
			{Name: model.FieldHighestQualification, Required: true},
			{Name: model.FieldFieldOfStudy, Required: true},
		},
	},
}

var alwaysRequired = []model.FieldName{
	model.FieldFullName,
	model.FieldEmail,
	model.FieldSurveyTopic,
	model.FieldFeedback,
}

// AlwaysRequired returns the base fields validated regardless of topic.
func AlwaysRequired() []model.FieldName {
	return append([]model.FieldName(nil), alwaysRequired...)
}

// Resolver derives the active field set from the discriminant value and
// exposes the display definition used by adapters.
type Resolver struct {
	def Definition
}

// NewResolver returns a Resolver backed by def. A zero Definition falls back to
// the embedded defaults.
func NewResolver(def Definition) *Resolver {
	if len(def.Fields) == 0 {
		def = Default()
	}
	return &Resolver{def: def}
}

// Resolve maps a raw discriminant value to its group. Values outside the
// enumerated topics yield the empty group.
func (r *Resolver) Resolve(value string) Group {
	topic, ok := model.ParseTopic(value)
	if !ok {
		return Group{}
	}
	return r.ResolveTopic(topic)
}

// ResolveTopic returns the group for an already parsed topic.
func (r *Resolver) ResolveTopic(topic model.Topic) Group {
	group, ok := groups[topic]
	if !ok {
		return Group{}
	}
	return group.clone()
}

// ActiveFields returns the always-required fields plus the group selected by
// the discriminant in values, in form order.
func (r *Resolver) ActiveFields(values model.Values) []model.FieldName {
	group := r.Resolve(values.Get(model.Discriminant))

	active := make(map[model.FieldName]struct{}, len(alwaysRequired)+len(group.Fields))
	for _, name := range alwaysRequired {
		active[name] = struct{}{}
	}
	for _, rule := range group.Fields {
		active[rule.Name] = struct{}{}
	}

	out := make([]model.FieldName, 0, len(active))
	for _, name := range model.BaseFields() {
		if _, ok := active[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Definition returns the display definition.
func (r *Resolver) Definition() Definition {
	if r == nil || len(r.def.Fields) == 0 {
		return Default()
	}
	return r.def.Clone()
}
