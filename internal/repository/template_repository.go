package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
)

// TemplateRepository defines the interface for template data access
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	FindAll(ctx context.Context) ([]*domain.Template, error)
	FindFieldsByTemplateID(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateField, error)
	FindFieldsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.TemplateField, error)
	SaveWithFields(ctx context.Context, template *domain.Template, fields []domain.TemplateField, deleteFieldIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// templateRepositoryImpl is the GORM implementation of TemplateRepository
type templateRepositoryImpl struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new instance of TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// Create creates a template together with its fields in one transaction
func (r *templateRepositoryImpl) Create(ctx context.Context, template *domain.Template) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a template by ID with its fields in display order
func (r *templateRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	var template domain.Template
	if err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// FindAll returns all templates, newest first, with fields preloaded
func (r *templateRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Template, error) {
	var templates []*domain.Template
	if err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("created_at DESC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// FindFieldsByTemplateID returns the fields of a template in display order
func (r *templateRepositoryImpl) FindFieldsByTemplateID(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateField, error) {
	var fields []domain.TemplateField
	if err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("display_order ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// FindFieldsByIDs finds template fields by their IDs in a single query
func (r *templateRepositoryImpl) FindFieldsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.TemplateField, error) {
	if len(ids) == 0 {
		return []domain.TemplateField{}, nil
	}
	var fields []domain.TemplateField
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// SaveWithFields reconciles a template and its field list atomically:
// the template metadata is updated, fields carrying an existing id are
// updated in place, id-less fields are inserted, and deleteFieldIDs are
// removed (cascading their stored values).
func (r *templateRepositoryImpl) SaveWithFields(ctx context.Context, template *domain.Template, fields []domain.TemplateField, deleteFieldIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Template{}).
			Where("id = ?", template.ID).
			Updates(map[string]interface{}{
				"title":       template.Title,
				"description": template.Description,
			}).Error; err != nil {
			return err
		}

		if len(deleteFieldIDs) > 0 {
			if err := tx.Where("field_id IN ?", deleteFieldIDs).
				Delete(&domain.FieldValue{}).Error; err != nil {
				return err
			}
			if err := tx.Where("field_id IN ?", deleteFieldIDs).
				Delete(&domain.TrackingField{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", deleteFieldIDs).
				Delete(&domain.TemplateField{}).Error; err != nil {
				return err
			}
		}

		for i := range fields {
			if err := tx.Save(&fields[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a template; fields, meetings, values, attachments and
// tracking configuration go with it
func (r *templateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meetingIDs []uuid.UUID
		if err := tx.Model(&domain.Meeting{}).
			Where("template_id = ?", id).
			Pluck("id", &meetingIDs).Error; err != nil {
			return err
		}
		if len(meetingIDs) > 0 {
			if err := tx.Where("meeting_id IN ?", meetingIDs).Delete(&domain.FieldValue{}).Error; err != nil {
				return err
			}
			if err := tx.Where("meeting_id IN ?", meetingIDs).Delete(&domain.Attachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("meeting_id IN ?", meetingIDs).Delete(&domain.TrackingEntry{}).Error; err != nil {
				return err
			}
		}

		var listIDs []uuid.UUID
		if err := tx.Model(&domain.TrackingList{}).
			Where("template_id = ?", id).
			Pluck("id", &listIDs).Error; err != nil {
			return err
		}
		if len(listIDs) > 0 {
			if err := tx.Where("list_id IN ?", listIDs).Delete(&domain.TrackingField{}).Error; err != nil {
				return err
			}
			if err := tx.Where("list_id IN ?", listIDs).Delete(&domain.TrackingEntry{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", listIDs).Delete(&domain.TrackingList{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("template_id = ?", id).Delete(&domain.Meeting{}).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", id).Delete(&domain.TemplateField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Template{}, "id = ?", id).Error
	})
}
