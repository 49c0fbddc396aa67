package model

import (
	"sort"
	"strings"
)

// FieldName identifies a form field. Base fields come from a closed set;
// enrichment may introduce additional names at runtime.
type FieldName string

const (
	FieldFullName                    FieldName = "fullName"
	FieldEmail                       FieldName = "email"
	FieldSurveyTopic                 FieldName = "surveyTopic"
	FieldFavoriteProgrammingLanguage FieldName = "favoriteProgrammingLanguage"
	FieldYearsOfExperience           FieldName = "yearsOfExperience"
	FieldExerciseFrequency           FieldName = "exerciseFrequency"
	FieldDietPreference              FieldName = "dietPreference"
	FieldHighestQualification        FieldName = "highestQualification"
	FieldFieldOfStudy                FieldName = "fieldOfStudy"
	FieldFeedback                    FieldName = "feedback"
)

// Discriminant is the field whose value selects the active conditional group.
const Discriminant = FieldSurveyTopic

var baseFields = []FieldName{
	FieldFullName,
	FieldEmail,
	FieldSurveyTopic,
	FieldFavoriteProgrammingLanguage,
	FieldYearsOfExperience,
	FieldExerciseFrequency,
	FieldDietPreference,
	FieldHighestQualification,
	FieldFieldOfStudy,
	FieldFeedback,
}

// BaseFields returns the closed set of field names in form order.
func BaseFields() []FieldName {
	return append([]FieldName(nil), baseFields...)
}

// IsBaseField reports whether name belongs to the closed field set.
func IsBaseField(name FieldName) bool {
	for _, field := range baseFields {
		if field == name {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (f FieldName) String() string {
	return string(f)
}

// Values maps field names to their raw string input. Numeric fields stay
// strings until validated.
type Values map[FieldName]string

// NewValues returns a Values map with every base field present. Defaults win
// over the empty string; extra keys in defaults are kept.
func NewValues(defaults Values) Values {
	out := make(Values, len(baseFields)+len(defaults))
	for _, name := range baseFields {
		out[name] = ""
	}
	for name, value := range defaults {
		key := FieldName(strings.TrimSpace(string(name)))
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Get returns the value for name, or "" when absent.
func (v Values) Get(name FieldName) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// Names returns the keys in sorted order.
func (v Values) Names() []FieldName {
	names := make([]FieldName, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Errors maps field names to a human readable message. A missing key means
// the field is valid.
type Errors map[FieldName]string

// Clone returns an independent copy. A nil map clones to an empty one.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for key, value := range e {
		out[key] = value
	}
	return out
}

// Empty reports whether no field carries an error.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the names carrying errors, sorted.
func (e Errors) Fields() []FieldName {
	names := make([]FieldName, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
