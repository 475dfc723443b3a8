package metrics

import "time"

// Task label values for RecordTask
const (
	TaskExportSpreadsheet = "export_spreadsheet"
	TaskExportReport      = "export_report"
	TaskBackup            = "backup"
	TaskCleanup           = "cleanup"
)

// RecordTask records one export, backup or cleanup run
func (m *Metrics) RecordTask(task string, duration time.Duration, err error) {
	m.safeExecute("RecordTask", func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.TasksTotal.WithLabelValues(task, status).Inc()
		m.TaskDuration.WithLabelValues(task).Observe(duration.Seconds())
	})
}

// AddCleanupRemoved adds to the orphan-file removal counter
func (m *Metrics) AddCleanupRemoved(count int) {
	m.safeExecute("AddCleanupRemoved", func() {
		m.CleanupRemovedTotal.Add(float64(count))
	})
}
