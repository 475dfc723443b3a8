package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
)

func createList(t *testing.T, db *gorm.DB, templateID uuid.UUID, name string) *domain.TrackingList {
	t.Helper()
	list := &domain.TrackingList{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		Name:       name,
		TemplateID: templateID,
		Version:    1,
	}
	if err := db.Create(list).Error; err != nil {
		t.Fatalf("failed to create tracking list: %v", err)
	}
	return list
}

func TestTrackingRepository_CreateList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	f1 := createField(t, db, tmpl.ID, "Status", domain.FieldTypeShortText, 0)
	f2 := createField(t, db, tmpl.ID, "Count", domain.FieldTypeNumber, 1)

	list := &domain.TrackingList{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		Name:       "Overview",
		TemplateID: tmpl.ID,
		Version:    1,
	}
	fields := []domain.TrackingField{
		{FieldID: f1.ID, Order: 0, Principal: true, Visible: true, DisplayMode: domain.DisplayModeContent},
		{FieldID: f2.ID, Order: 1, Visible: true, DisplayMode: domain.DisplayModeFilled},
	}

	if err := repo.CreateList(ctx, list, fields); err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	stored, err := repo.FindFieldsByListID(ctx, list.ID)
	if err != nil {
		t.Fatalf("FindFieldsByListID failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 field rows, got %d", len(stored))
	}
	if stored[0].FieldID != f1.ID || !stored[0].Principal {
		t.Errorf("first field config wrong: %+v", stored[0])
	}
	if stored[0].Field.Name != "Status" {
		t.Errorf("expected template field preloaded, got %q", stored[0].Field.Name)
	}
	if stored[1].DisplayMode != domain.DisplayModeFilled {
		t.Errorf("expected filled display mode, got %q", stored[1].DisplayMode)
	}
}

func TestTrackingRepository_UpdateListConfig_BumpsVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	field := createField(t, db, tmpl.ID, "Status", domain.FieldTypeShortText, 0)
	list := createList(t, db, tmpl.ID, "Before")

	list.Name = "After"
	fields := []domain.TrackingField{
		{FieldID: field.ID, Order: 0, Visible: true, DisplayMode: domain.DisplayModeContent},
	}
	if err := repo.UpdateListConfig(ctx, list, 1, fields, nil); err != nil {
		t.Fatalf("UpdateListConfig failed: %v", err)
	}

	found, err := repo.FindListByID(ctx, list.ID)
	if err != nil {
		t.Fatalf("FindListByID failed: %v", err)
	}
	if found.Name != "After" {
		t.Errorf("expected renamed list, got %q", found.Name)
	}
	if found.Version != 2 {
		t.Errorf("expected version bumped to 2, got %d", found.Version)
	}
}

func TestTrackingRepository_UpdateListConfig_StaleVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	list := createList(t, db, tmpl.ID, "List")

	// first writer wins
	if err := repo.UpdateListConfig(ctx, list, 1, nil, nil); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// second writer still carries version 1
	err := repo.UpdateListConfig(ctx, list, 1, nil, nil)
	if !errors.Is(err, ErrVersionConflict) {
		t.Errorf("expected ErrVersionConflict, got %v", err)
	}

	found, _ := repo.FindListByID(ctx, list.ID)
	if found.Version != 2 {
		t.Errorf("stale save must not bump version, got %d", found.Version)
	}
}

func TestTrackingRepository_UpdateListConfig_UpsertsAndDeletesFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	kept := createField(t, db, tmpl.ID, "Kept", domain.FieldTypeShortText, 0)
	dropped := createField(t, db, tmpl.ID, "Dropped", domain.FieldTypeNumber, 1)
	list := createList(t, db, tmpl.ID, "List")

	initial := []domain.TrackingField{
		{FieldID: kept.ID, Order: 0, Visible: true, DisplayMode: domain.DisplayModeContent},
		{FieldID: dropped.ID, Order: 1, Visible: true, DisplayMode: domain.DisplayModeContent},
	}
	if err := repo.UpdateListConfig(ctx, list, 1, initial, nil); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}

	alias := "Short"
	updated := []domain.TrackingField{
		{FieldID: kept.ID, Order: 0, Visible: false, DisplayMode: domain.DisplayModeFilled, Alias: &alias},
	}
	if err := repo.UpdateListConfig(ctx, list, 2, updated, []uuid.UUID{dropped.ID}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	stored, err := repo.FindFieldsByListID(ctx, list.ID)
	if err != nil {
		t.Fatalf("FindFieldsByListID failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected dropped config removed, got %d rows", len(stored))
	}
	got := stored[0]
	if got.Visible || got.DisplayMode != domain.DisplayModeFilled {
		t.Errorf("expected upserted config, got %+v", got)
	}
	if got.Alias == nil || *got.Alias != "Short" {
		t.Errorf("expected alias 'Short', got %v", got.Alias)
	}
}

func TestTrackingRepository_CreateEntry_AssignsOrderPerScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	list := createList(t, db, tmpl.ID, "List")
	meeting := createMeeting(t, db, tmpl.ID, "Meeting", nil)

	global1 := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, Content: "first"}
	global2 := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, Content: "second"}
	scoped := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, MeetingID: &meeting.ID, Content: "scoped"}

	for _, e := range []*domain.TrackingEntry{global1, global2, scoped} {
		if err := repo.CreateEntry(ctx, e); err != nil {
			t.Fatalf("CreateEntry failed: %v", err)
		}
	}

	if global1.Order != 1 || global2.Order != 2 {
		t.Errorf("global entries should number 1,2 got %d,%d", global1.Order, global2.Order)
	}
	// the meeting scope numbers independently of the list scope
	if scoped.Order != 1 {
		t.Errorf("meeting-scoped entry should start at 1, got %d", scoped.Order)
	}
}

func TestTrackingRepository_ReorderEntries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	list := createList(t, db, tmpl.ID, "List")

	a := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, Content: "a"}
	b := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, Content: "b"}
	c := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, Content: "c"}
	for _, e := range []*domain.TrackingEntry{a, b, c} {
		if err := repo.CreateEntry(ctx, e); err != nil {
			t.Fatalf("CreateEntry failed: %v", err)
		}
	}

	if err := repo.ReorderEntries(ctx, list.ID, []uuid.UUID{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderEntries failed: %v", err)
	}

	entries, err := repo.FindEntriesByListID(ctx, list.ID)
	if err != nil {
		t.Fatalf("FindEntriesByListID failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"c", "a", "b"}
	for i, e := range entries {
		if e.Content != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], e.Content)
		}
	}
}

func TestTrackingRepository_EntryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTrackingRepository(db)
	ctx := context.Background()

	tmpl := createTemplate(t, db, "Template")
	list := createList(t, db, tmpl.ID, "List")
	otherList := createList(t, db, tmpl.ID, "Other")

	entry := &domain.TrackingEntry{BaseModel: domain.BaseModel{ID: uuid.New()}, ListID: list.ID, Content: "todo"}
	if err := repo.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	// lookups are list-scoped
	if _, err := repo.FindEntryByID(ctx, otherList.ID, entry.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected cross-list lookup to fail, got %v", err)
	}

	entry.Content = "done"
	entry.Completed = true
	if err := repo.UpdateEntry(ctx, entry); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	found, err := repo.FindEntryByID(ctx, list.ID, entry.ID)
	if err != nil {
		t.Fatalf("FindEntryByID failed: %v", err)
	}
	if found.Content != "done" || !found.Completed {
		t.Errorf("update not persisted: %+v", found)
	}

	if err := repo.DeleteEntry(ctx, list.ID, entry.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if _, err := repo.FindEntryByID(ctx, list.ID, entry.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected entry gone, got %v", err)
	}
}
