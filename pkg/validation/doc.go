// Package validation holds the survey rule table. Validate is pure: the same
// values and active field list always produce an equal error map, and the map
// is freshly allocated on every call so callers may keep or mutate it.
package validation
