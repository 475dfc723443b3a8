package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meeting-records-api/internal/domain"
)

// ErrVersionConflict is returned when a tracking-list save carries a
// stale version: another writer committed in between and its state
// must not be silently clobbered.
var ErrVersionConflict = errors.New("tracking list version conflict")

// TrackingRepository defines the interface for tracking configuration access
type TrackingRepository interface {
	CreateList(ctx context.Context, list *domain.TrackingList, fields []domain.TrackingField) error
	FindListByID(ctx context.Context, id uuid.UUID) (*domain.TrackingList, error)
	FindAllLists(ctx context.Context) ([]*domain.TrackingList, error)
	FindFieldsByListID(ctx context.Context, listID uuid.UUID) ([]domain.TrackingField, error)
	UpdateListConfig(ctx context.Context, list *domain.TrackingList, expectedVersion int64, fields []domain.TrackingField, deleteFieldIDs []uuid.UUID) error
	DeleteList(ctx context.Context, id uuid.UUID) error

	CreateEntry(ctx context.Context, entry *domain.TrackingEntry) error
	FindEntryByID(ctx context.Context, listID, entryID uuid.UUID) (*domain.TrackingEntry, error)
	FindEntriesByListID(ctx context.Context, listID uuid.UUID) ([]domain.TrackingEntry, error)
	UpdateEntry(ctx context.Context, entry *domain.TrackingEntry) error
	DeleteEntry(ctx context.Context, listID, entryID uuid.UUID) error
	ReorderEntries(ctx context.Context, listID uuid.UUID, entryIDs []uuid.UUID) error
}

// trackingRepositoryImpl is the GORM implementation of TrackingRepository
type trackingRepositoryImpl struct {
	db *gorm.DB
}

// NewTrackingRepository creates a new instance of TrackingRepository
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepositoryImpl{db: db}
}

// CreateList inserts a list and its field configuration in one transaction
func (r *trackingRepositoryImpl) CreateList(ctx context.Context, list *domain.TrackingList, fields []domain.TrackingField) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		for i := range fields {
			fields[i].ListID = list.ID
			if err := tx.Create(&fields[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindListByID finds a tracking list with its template
func (r *trackingRepositoryImpl) FindListByID(ctx context.Context, id uuid.UUID) (*domain.TrackingList, error) {
	var list domain.TrackingList
	if err := r.db.WithContext(ctx).
		Preload("Template").
		First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindAllLists returns all tracking lists, newest first, with template
// and field configuration preloaded
func (r *trackingRepositoryImpl) FindAllLists(ctx context.Context) ([]*domain.TrackingList, error) {
	var lists []*domain.TrackingList
	if err := r.db.WithContext(ctx).
		Preload("Template").
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Fields.Field").
		Order("created_at DESC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// FindFieldsByListID returns a list's field configuration in display
// order with the underlying template fields preloaded
func (r *trackingRepositoryImpl) FindFieldsByListID(ctx context.Context, listID uuid.UUID) ([]domain.TrackingField, error) {
	var fields []domain.TrackingField
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Where("list_id = ?", listID).
		Order("display_order ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// UpdateListConfig saves a full field configuration under an optimistic
// version check: the list row is bumped only if the caller saw the
// current version, otherwise ErrVersionConflict. Field rows are
// diff-upserted on (list_id, field_id) and removed ids deleted, so a
// racing reader never observes an empty configuration.
func (r *trackingRepositoryImpl) UpdateListConfig(ctx context.Context, list *domain.TrackingList, expectedVersion int64, fields []domain.TrackingField, deleteFieldIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.TrackingList{}).
			Where("id = ? AND version = ?", list.ID, expectedVersion).
			Updates(map[string]interface{}{
				"name":    list.Name,
				"version": gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}

		if len(deleteFieldIDs) > 0 {
			if err := tx.Where("list_id = ? AND field_id IN ?", list.ID, deleteFieldIDs).
				Delete(&domain.TrackingField{}).Error; err != nil {
				return err
			}
		}

		for i := range fields {
			fields[i].ListID = list.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "list_id"}, {Name: "field_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"display_order", "principal", "visible", "display_mode", "alias",
				}),
			}).Create(&fields[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteList removes a list with its fields and entries
func (r *trackingRepositoryImpl) DeleteList(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&domain.TrackingField{}).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&domain.TrackingEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.TrackingList{}, "id = ?", id).Error
	})
}

// CreateEntry appends an entry to its (list, meeting) scope, assigning
// the next order inside the insert transaction
func (r *trackingRepositoryImpl) CreateEntry(ctx context.Context, entry *domain.TrackingEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder *int
		query := tx.Model(&domain.TrackingEntry{}).Where("list_id = ?", entry.ListID)
		if entry.MeetingID != nil {
			query = query.Where("meeting_id = ?", *entry.MeetingID)
		} else {
			query = query.Where("meeting_id IS NULL")
		}
		if err := query.Select("MAX(display_order)").Scan(&maxOrder).Error; err != nil {
			return err
		}
		if maxOrder != nil {
			entry.Order = *maxOrder + 1
		} else {
			entry.Order = 1
		}
		return tx.Create(entry).Error
	})
}

// FindEntryByID finds one entry scoped to its list
func (r *trackingRepositoryImpl) FindEntryByID(ctx context.Context, listID, entryID uuid.UUID) (*domain.TrackingEntry, error) {
	var entry domain.TrackingEntry
	if err := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", entryID, listID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindEntriesByListID returns every entry of a list in display order
func (r *trackingRepositoryImpl) FindEntriesByListID(ctx context.Context, listID uuid.UUID) ([]domain.TrackingEntry, error) {
	var entries []domain.TrackingEntry
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntry saves an entry's content/completion state
func (r *trackingRepositoryImpl) UpdateEntry(ctx context.Context, entry *domain.TrackingEntry) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.TrackingEntry{}).
		Where("id = ? AND list_id = ?", entry.ID, entry.ListID).
		Updates(map[string]interface{}{
			"content":      entry.Content,
			"completed":    entry.Completed,
			"completed_at": entry.CompletedAt,
		}).Error; err != nil {
		return err
	}
	return nil
}

// DeleteEntry removes one entry; deletion is terminal and unconditional
func (r *trackingRepositoryImpl) DeleteEntry(ctx context.Context, listID, entryID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", entryID, listID).
		Delete(&domain.TrackingEntry{}).Error; err != nil {
		return err
	}
	return nil
}

// ReorderEntries rewrites entry orders to the position of each id in
// the given sequence, atomically
func (r *trackingRepositoryImpl) ReorderEntries(ctx context.Context, listID uuid.UUID, entryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for idx, id := range entryIDs {
			if err := tx.Model(&domain.TrackingEntry{}).
				Where("id = ? AND list_id = ?", id, listID).
				Update("display_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
