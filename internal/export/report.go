package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate *template.Template

func init() {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format(dateLayout)
		},
		"formatDatePtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	content, err := templateFS.ReadFile("templates/report.html")
	if err != nil {
		panic(fmt.Sprintf("export: missing report template: %v", err))
	}
	reportTemplate = template.Must(template.New("report").Funcs(funcMap).Parse(string(content)))
}

// Report renders a self-contained HTML document of the given rows.
// Values arrive already sanitized, so long-text cells can pass through
// as HTML.
func Report(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
