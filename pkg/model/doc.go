// Package model defines the values shared by the survey form engine: field
// names, the raw string values collected per field, per-field error messages,
// the Topic enumeration used as the form discriminant, additional questions
// supplied by enrichment, and the immutable Summary captured after a
// successful submission. All field values are strings until validated, which
// lets numeric inputs such as yearsOfExperience round-trip unchanged between
// the presentation layer and the validation rules.
package model
