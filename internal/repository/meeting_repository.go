package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meeting-records-api/internal/domain"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	CreateWithValues(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindAll(ctx context.Context, templateID *uuid.UUID) ([]*domain.Meeting, error)
	FindByTemplateID(ctx context.Context, templateID uuid.UUID) ([]*domain.Meeting, error)
	SaveWithValues(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error
	FindValuesByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]domain.FieldValue, error)
	FindValuesByMeetingIDs(ctx context.Context, meetingIDs []uuid.UUID) ([]domain.FieldValue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// meetingRepositoryImpl is the GORM implementation of MeetingRepository
type meetingRepositoryImpl struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new instance of MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

// Create creates a new meeting
func (r *meetingRepositoryImpl) Create(ctx context.Context, meeting *domain.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return err
	}
	return nil
}

// CreateWithValues creates a meeting and its values in one transaction.
// Used by duplication so a partial copy can never be observed.
func (r *meetingRepositoryImpl) CreateWithValues(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		for i := range values {
			values[i].MeetingID = meeting.ID
			if err := tx.Create(&values[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds a meeting by ID with its template, values and attachments
func (r *meetingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Template").
		Preload("Values").
		Preload("Attachments").
		First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindAll returns meetings, most recently updated first, optionally
// filtered by template
func (r *meetingRepositoryImpl) FindAll(ctx context.Context, templateID *uuid.UUID) ([]*domain.Meeting, error) {
	query := r.db.WithContext(ctx).Preload("Template").Order("updated_at DESC")
	if templateID != nil {
		query = query.Where("template_id = ?", *templateID)
	}
	var meetings []*domain.Meeting
	if err := query.Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByTemplateID returns every meeting of a template ordered by
// meeting date descending, the order the tracking view pivots on
func (r *meetingRepositoryImpl) FindByTemplateID(ctx context.Context, templateID uuid.UUID) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	if err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("meeting_date DESC").
		Order("created_at DESC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// SaveWithValues updates meeting metadata and upserts each value keyed
// by (meeting_id, field_id) in one transaction
func (r *meetingRepositoryImpl) SaveWithValues(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Meeting{}).
			Where("id = ?", meeting.ID).
			Updates(map[string]interface{}{
				"title":        meeting.Title,
				"subtitle":     meeting.Subtitle,
				"status":       meeting.Status,
				"meeting_date": meeting.MeetingDate,
			}).Error; err != nil {
			return err
		}

		for i := range values {
			values[i].MeetingID = meeting.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "meeting_id"}, {Name: "field_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"text_value", "number_value", "boolean_value", "date_value", "updated_at",
				}),
			}).Create(&values[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindValuesByMeetingID returns the stored values of one meeting
func (r *meetingRepositoryImpl) FindValuesByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]domain.FieldValue, error) {
	var values []domain.FieldValue
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// FindValuesByMeetingIDs returns values for many meetings in one query
func (r *meetingRepositoryImpl) FindValuesByMeetingIDs(ctx context.Context, meetingIDs []uuid.UUID) ([]domain.FieldValue, error) {
	if len(meetingIDs) == 0 {
		return []domain.FieldValue{}, nil
	}
	var values []domain.FieldValue
	if err := r.db.WithContext(ctx).
		Where("meeting_id IN ?", meetingIDs).
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// Delete removes a meeting with its values, attachment rows and
// meeting-scoped tracking entries
func (r *meetingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", id).Delete(&domain.FieldValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&domain.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&domain.TrackingEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Meeting{}, "id = ?", id).Error
	})
}
