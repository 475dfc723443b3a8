package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type recordedQuery struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

type recordingMetrics struct {
	queries []recordedQuery
	stats   []sql.DBStats
}

func (r *recordingMetrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	r.queries = append(r.queries, recordedQuery{operation, table, duration, err})
}

func (r *recordingMetrics) UpdateDBStats(stats interface{}) {
	if dbStats, ok := stats.(sql.DBStats); ok {
		r.stats = append(r.stats, dbStats)
	}
}

// noteRow stands in for an application table; a text primary key keeps
// SQLite happy without the Postgres uuid default.
type noteRow struct {
	ID        string `gorm:"type:text;primaryKey"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (noteRow) TableName() string {
	return "note_rows"
}

func setupCallbackDB(t *testing.T) (*gorm.DB, *recordingMetrics) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, db.AutoMigrate(&noteRow{}), "Failed to migrate test model")

	recorder := &recordingMetrics{}
	RegisterMetricsCallbacks(db, recorder)
	return db, recorder
}

func TestMetricsCallbacks_RecordEveryOperation(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	note := noteRow{ID: uuid.New().String(), Content: "follow up on budget"}
	require.NoError(t, db.Create(&note).Error)

	var loaded noteRow
	require.NoError(t, db.First(&loaded, "id = ?", note.ID).Error)
	require.NoError(t, db.Model(&note).Update("Content", "done").Error)
	require.NoError(t, db.Delete(&note).Error)

	require.Len(t, recorder.queries, 4)
	for i, operation := range []string{"insert", "select", "update", "delete"} {
		assert.Equal(t, operation, recorder.queries[i].operation)
		assert.Equal(t, "note_rows", recorder.queries[i].table)
		assert.Greater(t, recorder.queries[i].duration, time.Duration(0))
		assert.NoError(t, recorder.queries[i].err)
	}
}

func TestMetricsCallbacks_RecordQueryError(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	var loaded noteRow
	err := db.First(&loaded, "id = ?", uuid.New().String()).Error
	require.Error(t, err)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestMetricsCallbacks_RecordDuplicateKeyError(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	id := uuid.New().String()
	require.NoError(t, db.Create(&noteRow{ID: id, Content: "first"}).Error)
	recorder.queries = nil

	err := db.Create(&noteRow{ID: id, Content: "second"}).Error
	require.Error(t, err, "Expected duplicate primary key to fail")

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "insert", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestMetricsCallbacks_RecordInsideTransaction(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&noteRow{ID: uuid.New().String(), Content: "a"}).Error; err != nil {
			return err
		}
		if err := tx.Create(&noteRow{ID: uuid.New().String(), Content: "b"}).Error; err != nil {
			return err
		}
		return errors.New("forced rollback")
	})
	require.Error(t, err)

	// both inserts were observed even though the transaction rolled back
	inserts := 0
	for _, q := range recorder.queries {
		if q.operation == "insert" {
			inserts++
		}
	}
	assert.GreaterOrEqual(t, inserts, 2)
}

func TestDBStatsCollector_StopsOnClose(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	done := StartDBStatsCollector(db, recorder)
	time.Sleep(50 * time.Millisecond)
	close(done)
	time.Sleep(50 * time.Millisecond)

	// manual sample verifies the recorder accepts pool stats
	sqlDB, err := db.DB()
	require.NoError(t, err)
	recorder.UpdateDBStats(sqlDB.Stats())

	require.NotEmpty(t, recorder.stats)
	last := recorder.stats[len(recorder.stats)-1]
	assert.GreaterOrEqual(t, last.OpenConnections, 0)
}
