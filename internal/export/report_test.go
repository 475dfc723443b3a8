package export

import (
	"strings"
	"testing"
	"time"
)

func TestReport(t *testing.T) {
	columns := []Column{
		{ID: "f1", Name: "Notes", Type: "long_text"},
		{ID: "f2", Name: "Topic", Type: "short_text"},
	}
	when := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{
			ID:          "m1",
			Title:       "March sync",
			Status:      "finalized",
			MeetingDate: &when,
			Values: map[string]string{
				"f1": "<p>All <b>done</b></p>",
				"f2": "a < b",
			},
		},
	}

	data, err := Report(ReportData{
		TemplateTitle: "Board Meetings",
		GeneratedAt:   time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
		Columns:       columns,
		Rows:          rows,
	})
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	html := string(data)

	if !strings.Contains(html, "<h1>Board Meetings</h1>") {
		t.Error("missing template title")
	}
	if !strings.Contains(html, "March sync") {
		t.Error("missing meeting title")
	}
	if !strings.Contains(html, "2026-03-02") {
		t.Error("missing meeting date")
	}
	// long-text cells pass through as HTML
	if !strings.Contains(html, "<b>done</b>") {
		t.Error("long-text markup should render as is")
	}
	// every other cell is escaped
	if !strings.Contains(html, "a &lt; b") {
		t.Error("plain cells must be escaped")
	}
}

func TestReport_EmptyCells(t *testing.T) {
	columns := []Column{{ID: "f1", Name: "Notes", Type: "long_text"}}
	rows := []Row{{ID: "m1", Title: "Quiet meeting", Values: map[string]string{}}}

	data, err := Report(ReportData{TemplateTitle: "T", Columns: columns, Rows: rows})
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(string(data), `class="empty"`) {
		t.Error("absent values should render the empty marker")
	}
}
