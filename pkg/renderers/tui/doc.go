// Package tui drives the survey form from a terminal. A Session prompts for
// each active field through a PromptDriver, pushes answers into a form.Store
// and retries rejected fields until the submission is accepted.
//
// The default driver is backed by github.com/AlecAivazis/survey/v2; tests and
// alternative frontends supply their own PromptDriver.
package tui
