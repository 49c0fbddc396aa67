// Package jsonsummary renders accepted submissions as JSON documents.
package jsonsummary
