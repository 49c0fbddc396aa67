// Package summary builds the immutable snapshot shown after a successful
// submission.
//
// The snapshot lists the additional questions present when Submit runs.
// Submit starts a fetch for the submitted topic, and whatever that fetch
// returns only reaches later views of the store. An issued summary is never
// updated with it.
//
// Additional questions are listed by label. The store seeds each question
// name into the form values as an empty string, so an answer recorded with
// Change under that name is carried in the summary values.
package summary
