// Package orchestrator wires the survey definition, question provider,
// form store, theme selection and summary renderers behind one constructor.
package orchestrator
