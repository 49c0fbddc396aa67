// Package html provides the template-backed summary renderers: "html" for a
// standalone page and "text" for terminal output. Both execute pongo2
// templates and honour theme partials, tokens and stylesheet assets.
package html
