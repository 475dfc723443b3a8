package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats publishes a connection pool snapshot
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		m.DBConnectionWaitTotal.Add(float64(stats.WaitCount))
		m.DBConnectionWaitDuration.Add(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery records one statement's duration, and its error if it failed
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		op := strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(op, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(op, table).Inc()
		}
	})
}
