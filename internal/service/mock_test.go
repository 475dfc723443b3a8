package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
)

// MockTemplateRepository is a mock implementation of TemplateRepository
type MockTemplateRepository struct {
	CreateFunc                 func(ctx context.Context, template *domain.Template) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	FindAllFunc                func(ctx context.Context) ([]*domain.Template, error)
	FindFieldsByTemplateIDFunc func(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateField, error)
	FindFieldsByIDsFunc        func(ctx context.Context, ids []uuid.UUID) ([]domain.TemplateField, error)
	SaveWithFieldsFunc         func(ctx context.Context, template *domain.Template, fields []domain.TemplateField, deleteFieldIDs []uuid.UUID) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	return nil
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTemplateRepository) FindAll(ctx context.Context) ([]*domain.Template, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTemplateRepository) FindFieldsByTemplateID(ctx context.Context, templateID uuid.UUID) ([]domain.TemplateField, error) {
	if m.FindFieldsByTemplateIDFunc != nil {
		return m.FindFieldsByTemplateIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *MockTemplateRepository) FindFieldsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.TemplateField, error) {
	if m.FindFieldsByIDsFunc != nil {
		return m.FindFieldsByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockTemplateRepository) SaveWithFields(ctx context.Context, template *domain.Template, fields []domain.TemplateField, deleteFieldIDs []uuid.UUID) error {
	if m.SaveWithFieldsFunc != nil {
		return m.SaveWithFieldsFunc(ctx, template, fields, deleteFieldIDs)
	}
	return nil
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMeetingRepository is a mock implementation of MeetingRepository
type MockMeetingRepository struct {
	CreateFunc                 func(ctx context.Context, meeting *domain.Meeting) error
	CreateWithValuesFunc       func(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindAllFunc                func(ctx context.Context, templateID *uuid.UUID) ([]*domain.Meeting, error)
	FindByTemplateIDFunc       func(ctx context.Context, templateID uuid.UUID) ([]*domain.Meeting, error)
	SaveWithValuesFunc         func(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error
	FindValuesByMeetingIDFunc  func(ctx context.Context, meetingID uuid.UUID) ([]domain.FieldValue, error)
	FindValuesByMeetingIDsFunc func(ctx context.Context, meetingIDs []uuid.UUID) ([]domain.FieldValue, error)
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) CreateWithValues(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error {
	if m.CreateWithValuesFunc != nil {
		return m.CreateWithValuesFunc(ctx, meeting, values)
	}
	return nil
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMeetingRepository) FindAll(ctx context.Context, templateID *uuid.UUID) ([]*domain.Meeting, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *MockMeetingRepository) FindByTemplateID(ctx context.Context, templateID uuid.UUID) ([]*domain.Meeting, error) {
	if m.FindByTemplateIDFunc != nil {
		return m.FindByTemplateIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *MockMeetingRepository) SaveWithValues(ctx context.Context, meeting *domain.Meeting, values []domain.FieldValue) error {
	if m.SaveWithValuesFunc != nil {
		return m.SaveWithValuesFunc(ctx, meeting, values)
	}
	return nil
}

func (m *MockMeetingRepository) FindValuesByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]domain.FieldValue, error) {
	if m.FindValuesByMeetingIDFunc != nil {
		return m.FindValuesByMeetingIDFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *MockMeetingRepository) FindValuesByMeetingIDs(ctx context.Context, meetingIDs []uuid.UUID) ([]domain.FieldValue, error) {
	if m.FindValuesByMeetingIDsFunc != nil {
		return m.FindValuesByMeetingIDsFunc(ctx, meetingIDs)
	}
	return nil, nil
}

func (m *MockMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTrackingRepository is a mock implementation of TrackingRepository
type MockTrackingRepository struct {
	CreateListFunc          func(ctx context.Context, list *domain.TrackingList, fields []domain.TrackingField) error
	FindListByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.TrackingList, error)
	FindAllListsFunc        func(ctx context.Context) ([]*domain.TrackingList, error)
	FindFieldsByListIDFunc  func(ctx context.Context, listID uuid.UUID) ([]domain.TrackingField, error)
	UpdateListConfigFunc    func(ctx context.Context, list *domain.TrackingList, expectedVersion int64, fields []domain.TrackingField, deleteFieldIDs []uuid.UUID) error
	DeleteListFunc          func(ctx context.Context, id uuid.UUID) error
	CreateEntryFunc         func(ctx context.Context, entry *domain.TrackingEntry) error
	FindEntryByIDFunc       func(ctx context.Context, listID, entryID uuid.UUID) (*domain.TrackingEntry, error)
	FindEntriesByListIDFunc func(ctx context.Context, listID uuid.UUID) ([]domain.TrackingEntry, error)
	UpdateEntryFunc         func(ctx context.Context, entry *domain.TrackingEntry) error
	DeleteEntryFunc         func(ctx context.Context, listID, entryID uuid.UUID) error
	ReorderEntriesFunc      func(ctx context.Context, listID uuid.UUID, entryIDs []uuid.UUID) error
}

func (m *MockTrackingRepository) CreateList(ctx context.Context, list *domain.TrackingList, fields []domain.TrackingField) error {
	if m.CreateListFunc != nil {
		return m.CreateListFunc(ctx, list, fields)
	}
	return nil
}

func (m *MockTrackingRepository) FindListByID(ctx context.Context, id uuid.UUID) (*domain.TrackingList, error) {
	if m.FindListByIDFunc != nil {
		return m.FindListByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackingRepository) FindAllLists(ctx context.Context) ([]*domain.TrackingList, error) {
	if m.FindAllListsFunc != nil {
		return m.FindAllListsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTrackingRepository) FindFieldsByListID(ctx context.Context, listID uuid.UUID) ([]domain.TrackingField, error) {
	if m.FindFieldsByListIDFunc != nil {
		return m.FindFieldsByListIDFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockTrackingRepository) UpdateListConfig(ctx context.Context, list *domain.TrackingList, expectedVersion int64, fields []domain.TrackingField, deleteFieldIDs []uuid.UUID) error {
	if m.UpdateListConfigFunc != nil {
		return m.UpdateListConfigFunc(ctx, list, expectedVersion, fields, deleteFieldIDs)
	}
	return nil
}

func (m *MockTrackingRepository) DeleteList(ctx context.Context, id uuid.UUID) error {
	if m.DeleteListFunc != nil {
		return m.DeleteListFunc(ctx, id)
	}
	return nil
}

func (m *MockTrackingRepository) CreateEntry(ctx context.Context, entry *domain.TrackingEntry) error {
	if m.CreateEntryFunc != nil {
		return m.CreateEntryFunc(ctx, entry)
	}
	return nil
}

func (m *MockTrackingRepository) FindEntryByID(ctx context.Context, listID, entryID uuid.UUID) (*domain.TrackingEntry, error) {
	if m.FindEntryByIDFunc != nil {
		return m.FindEntryByIDFunc(ctx, listID, entryID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTrackingRepository) FindEntriesByListID(ctx context.Context, listID uuid.UUID) ([]domain.TrackingEntry, error) {
	if m.FindEntriesByListIDFunc != nil {
		return m.FindEntriesByListIDFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockTrackingRepository) UpdateEntry(ctx context.Context, entry *domain.TrackingEntry) error {
	if m.UpdateEntryFunc != nil {
		return m.UpdateEntryFunc(ctx, entry)
	}
	return nil
}

func (m *MockTrackingRepository) DeleteEntry(ctx context.Context, listID, entryID uuid.UUID) error {
	if m.DeleteEntryFunc != nil {
		return m.DeleteEntryFunc(ctx, listID, entryID)
	}
	return nil
}

func (m *MockTrackingRepository) ReorderEntries(ctx context.Context, listID uuid.UUID, entryIDs []uuid.UUID) error {
	if m.ReorderEntriesFunc != nil {
		return m.ReorderEntriesFunc(ctx, listID, entryIDs)
	}
	return nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc          func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByMeetingIDFunc func(ctx context.Context, meetingID uuid.UUID) ([]*domain.Attachment, error)
	FindAllPathsFunc    func(ctx context.Context) ([]string, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAttachmentRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByMeetingIDFunc != nil {
		return m.FindByMeetingIDFunc(ctx, meetingID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindAllPaths(ctx context.Context) ([]string, error) {
	if m.FindAllPathsFunc != nil {
		return m.FindAllPathsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
