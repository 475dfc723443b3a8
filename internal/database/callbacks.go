package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks hooks query timing into every GORM operation.
// The before hook stamps the start time on the statement instance; the
// after hook reports the elapsed time under the statement's table name.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"select", db.Callback().Query().Before("gorm:query").Register, db.Callback().Query().After("gorm:query").Register},
		{"insert", db.Callback().Create().Before("gorm:create").Register, db.Callback().Create().After("gorm:create").Register},
		{"update", db.Callback().Update().Before("gorm:update").Register, db.Callback().Update().After("gorm:update").Register},
		{"delete", db.Callback().Delete().Before("gorm:delete").Register, db.Callback().Delete().After("gorm:delete").Register},
	}

	for _, h := range hooks {
		operation := h.operation
		h.before("metrics:"+operation+"_before", func(db *gorm.DB) {
			db.InstanceSet("query_start_time", time.Now())
		})
		h.after("metrics:"+operation+"_after", func(db *gorm.DB) {
			startTime, ok := db.InstanceGet("query_start_time")
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
		})
	}
}

// StartDBStatsCollector samples the connection pool every 15 seconds
// until the returned channel is closed.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
