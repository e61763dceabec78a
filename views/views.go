package views

import (
	"embed"
	"html/template"
	"math"
	"time"

	"github.com/Bipul-Dubey/loyalty-predictor/models"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// PredictPage is the template rendered for GET and POST on the form.
const PredictPage = "predict.html"

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// FieldState is one input together with what the user typed and its error.
type FieldState struct {
	FieldView
	Value string
	Error string
}

type PageData struct {
	Fields            []FieldState
	Toast             *services.Notification
	ResetAfterSeconds int
}

// NewPageData lays out the form for rendering. A positive resetAfter makes
// the page return to an empty form once it elapses.
func NewPageData(form *models.Form, toast *services.Notification, resetAfter time.Duration) PageData {
	page := PageData{
		Fields: make([]FieldState, 0, len(FormFields)),
		Toast:  toast,
	}
	for _, fv := range FormFields {
		page.Fields = append(page.Fields, FieldState{
			FieldView: fv,
			Value:     form.Get(fv.Field),
			Error:     form.Error(fv.Field),
		})
	}
	if resetAfter > 0 {
		page.ResetAfterSeconds = int(math.Ceil(resetAfter.Seconds()))
	}
	return page
}
