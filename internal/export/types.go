// Package export renders meeting data into downloadable artifacts: a
// spreadsheet of one template's meetings and a self-contained HTML
// report for a selected subset.
package export

import "time"

// Column is one exported field column
type Column struct {
	ID   string
	Name string
	Type string
}

// Row is one meeting with its values stringified per field id.
// Fields the meeting never wrote are simply absent from Values and
// export as empty cells.
type Row struct {
	ID          string
	Title       string
	Subtitle    string
	Status      string
	MeetingDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Values      map[string]string
}

// ReportData holds everything the HTML report template renders
type ReportData struct {
	TemplateTitle string
	GeneratedAt   time.Time
	Columns       []Column
	Rows          []Row
}
