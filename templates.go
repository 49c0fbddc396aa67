package surveyform

import (
	"io/fs"

	"github.com/goliatone/go-surveyform/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in summary templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// SummaryAssetsFS exposes the stylesheet linked by the html renderer so
// applications can serve it next to rendered summaries.
//
// Typical mount:
//
//	mux.Handle("/surveyform/",
//	  http.StripPrefix("/surveyform/",
//	    http.FileServerFS(surveyform.SummaryAssetsFS()),
//	  ),
//	)
func SummaryAssetsFS() fs.FS {
	return html.AssetsFS()
}
