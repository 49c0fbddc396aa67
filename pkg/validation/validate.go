package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-surveyform/pkg/model"
)

// Rule checks a single field value and returns an error message, or "" when
// the value is acceptable.
type Rule func(value string) string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// decimalPattern accepts plain signed decimals only. Hex floats, exponents
// and digit separators are rejected even though strconv would parse them.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

var rules = map[model.FieldName]Rule{
	model.FieldFullName:                    required("Full name is required"),
	model.FieldEmail:                       email,
	model.FieldSurveyTopic:                 topic,
	model.FieldFavoriteProgrammingLanguage: required("Favorite programming language is required"),
	model.FieldYearsOfExperience:           yearsOfExperience,
	model.FieldExerciseFrequency:           required("Exercise frequency is required"),
	model.FieldDietPreference:              required("Diet preference is required"),
	model.FieldHighestQualification:        required("Highest qualification is required"),
	model.FieldFieldOfStudy:                required("Field of study is required"),
	model.FieldFeedback:                    required("Feedback is required"),
}

// Validate checks every field in active against its rule and returns a fresh
// error map. Fields outside active are never checked, fields without a rule
// are skipped, and valid fields are absent from the result.
func Validate(values model.Values, active []model.FieldName) model.Errors {
	errs := make(model.Errors)
	for _, name := range active {
		if msg := Field(name, values.Get(name)); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

// Field validates a single value against the rule registered for name.
func Field(name model.FieldName, value string) string {
	rule, ok := rules[name]
	if !ok {
		return ""
	}
	return rule(value)
}

// HasRule reports whether name is covered by the rule table.
func HasRule(name model.FieldName) bool {
	_, ok := rules[name]
	return ok
}

func required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

func email(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(trimmed) {
		return "Email address is invalid"
	}
	return ""
}

func topic(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Survey topic is required"
	}
	if _, ok := model.ParseTopic(value); !ok {
		return "Survey topic is invalid"
	}
	return ""
}

func yearsOfExperience(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Years of experience is required"
	}
	if !decimalPattern.MatchString(trimmed) {
		return "Years of experience must be a non-negative number"
	}
	years, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(years, 0) || years < 0 {
		return "Years of experience must be a non-negative number"
	}
	return ""
}
