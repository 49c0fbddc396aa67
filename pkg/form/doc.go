// Package form holds the survey state machine.
//
// A Store moves between editing, rejected and submitted phases. Changing the
// survey topic starts a background fetch of additional questions; each fetch
// is tagged with a generation counter and only the most recent one may write
// its result back, so a slow response for an old topic never replaces the
// questions of the current one.
package form
