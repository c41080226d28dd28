package templates

import (
	"CarePulse/models"
	"CarePulse/utils"
	"embed"
	"html/template"
	"time"
)

//go:embed *.tmpl
var files embed.FS

// Parse loads every page and partial.
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.tmpl")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"formatDateTime": utils.FormatDateTime,
		"formatDate":     utils.FormatDate,
		"dateInput":      func(t time.Time) string { return t.Format("2006-01-02") },
		"physicianImage": func(name string) string {
			if p, ok := models.FindPhysician(name); ok {
				return p.Image
			}
			return "/assets/images/dr-placeholder.png"
		},
		"selected": func(a, b string) template.HTMLAttr {
			if a == b {
				return "selected"
			}
			return ""
		},
		"checked": func(b bool) template.HTMLAttr {
			if b {
				return "checked"
			}
			return ""
		},
	}
}
