package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/dto"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/util"
)

// TrackingService defines the interface for tracking list business logic
type TrackingService interface {
	CreateList(ctx context.Context, req *dto.CreateTrackingListRequest) (*dto.TrackingListSummary, error)
	ListLists(ctx context.Context) ([]*dto.TrackingListSummary, error)
	UpdateList(ctx context.Context, id uuid.UUID, req *dto.UpdateTrackingListRequest) (*dto.TrackingListSummary, error)
	DeleteList(ctx context.Context, id uuid.UUID) error
	ResolveView(ctx context.Context, id uuid.UUID, search string) (*dto.TrackingViewResponse, error)

	AddEntry(ctx context.Context, listID uuid.UUID, req *dto.AddEntryRequest) (*dto.TrackingEntryResponse, error)
	UpdateEntry(ctx context.Context, listID, entryID uuid.UUID, req *dto.UpdateEntryRequest) (*dto.TrackingEntryResponse, error)
	DeleteEntry(ctx context.Context, listID, entryID uuid.UUID) error
	ReorderEntries(ctx context.Context, listID uuid.UUID, req *dto.ReorderEntriesRequest) error
}

// trackingServiceImpl is the implementation of TrackingService
type trackingServiceImpl struct {
	trackingRepo repository.TrackingRepository
	templateRepo repository.TemplateRepository
	meetingRepo  repository.MeetingRepository
	logger       *zap.Logger
}

// NewTrackingService creates a new instance of TrackingService
func NewTrackingService(trackingRepo repository.TrackingRepository, templateRepo repository.TemplateRepository, meetingRepo repository.MeetingRepository, logger *zap.Logger) TrackingService {
	return &trackingServiceImpl{
		trackingRepo: trackingRepo,
		templateRepo: templateRepo,
		meetingRepo:  meetingRepo,
		logger:       logger,
	}
}

// CreateList creates a tracking list over a template's fields.
// Principal ids not present in the ordered field list are still
// inserted, with order -1, so they are never silently dropped.
func (s *trackingServiceImpl) CreateList(ctx context.Context, req *dto.CreateTrackingListRequest) (*dto.TrackingListSummary, error) {
	if len(req.PrincipalIDs) > domain.MaxPrincipalFields {
		return nil, response.NewValidationError(
			fmt.Sprintf("At most %d principal fields are allowed", domain.MaxPrincipalFields), "")
	}

	if _, err := s.templateRepo.FindByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Template not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch template", err.Error())
	}

	if err := s.validateFieldsBelong(ctx, req.TemplateID, append(append([]uuid.UUID{}, req.FieldIDs...), req.PrincipalIDs...)); err != nil {
		return nil, err
	}

	principals := idSet(req.PrincipalIDs)
	list := &domain.TrackingList{
		Name:       req.Name,
		TemplateID: req.TemplateID,
		Version:    1,
	}

	fields := make([]domain.TrackingField, 0, len(req.FieldIDs)+len(req.PrincipalIDs))
	seen := map[string]bool{}
	for i, fieldID := range req.FieldIDs {
		key := fieldID.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		fields = append(fields, domain.TrackingField{
			FieldID:     fieldID,
			Order:       i,
			Principal:   principals[key],
			Visible:     true,
			DisplayMode: displayModeFor(req.DisplayModes, key),
			Alias:       aliasFor(req.Aliases, key),
		})
	}
	for _, principalID := range req.PrincipalIDs {
		key := principalID.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		fields = append(fields, domain.TrackingField{
			FieldID:     principalID,
			Order:       -1,
			Principal:   true,
			Visible:     true,
			DisplayMode: displayModeFor(req.DisplayModes, key),
			Alias:       aliasFor(req.Aliases, key),
		})
	}

	if err := s.trackingRepo.CreateList(ctx, list, fields); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create tracking list", err.Error())
	}

	s.logger.Info("Tracking list created",
		zap.String("list_id", list.ID.String()),
		zap.String("template_id", req.TemplateID.String()),
		zap.Int("fields", len(fields)),
	)
	return s.toListSummary(ctx, list)
}

// ListLists returns every tracking list with its principal field names
func (s *trackingServiceImpl) ListLists(ctx context.Context) ([]*dto.TrackingListSummary, error) {
	lists, err := s.trackingRepo.FindAllLists(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking lists", err.Error())
	}
	summaries := make([]*dto.TrackingListSummary, len(lists))
	for i, list := range lists {
		summary := &dto.TrackingListSummary{
			ListID:          list.ID,
			Name:            list.Name,
			TemplateID:      list.TemplateID,
			TemplateTitle:   list.Template.Title,
			Version:         list.Version,
			PrincipalFields: []string{},
			CreatedAt:       list.CreatedAt,
		}
		for _, f := range list.Fields {
			if f.Principal {
				summary.PrincipalFields = append(summary.PrincipalFields, fieldLabel(f))
			}
		}
		summaries[i] = summary
	}
	return summaries, nil
}

// UpdateList saves a full list configuration by diffing the incoming
// set against the stored one and upserting per (list, field) key. The
// request version must match the stored one or the save is rejected.
func (s *trackingServiceImpl) UpdateList(ctx context.Context, id uuid.UUID, req *dto.UpdateTrackingListRequest) (*dto.TrackingListSummary, error) {
	if len(req.PrincipalIDs) > domain.MaxPrincipalFields {
		return nil, response.NewValidationError(
			fmt.Sprintf("At most %d principal fields are allowed", domain.MaxPrincipalFields), "")
	}

	list, err := s.trackingRepo.FindListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Tracking list not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking list", err.Error())
	}

	// legacy callers send only field_ids: it is the order, and doubles
	// as the visible set unless visible_fields is sent alongside
	ordered := req.AllFieldsOrdered
	var visible map[string]bool
	switch {
	case len(ordered) > 0:
		if req.VisibleFields != nil {
			visible = idSet(*req.VisibleFields)
		}
	default:
		ordered = req.FieldIDs
		if req.VisibleFields != nil {
			visible = idSet(*req.VisibleFields)
		} else {
			visible = idSet(req.FieldIDs)
		}
	}

	if err := s.validateFieldsBelong(ctx, list.TemplateID, append(append([]uuid.UUID{}, ordered...), req.PrincipalIDs...)); err != nil {
		return nil, err
	}

	current, err := s.trackingRepo.FindFieldsByListID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking fields", err.Error())
	}
	currentByID := make(map[string]domain.TrackingField, len(current))
	for _, f := range current {
		currentByID[f.FieldID.String()] = f
	}

	principals := idSet(req.PrincipalIDs)
	incoming := map[string]bool{}
	fields := make([]domain.TrackingField, 0, len(ordered)+len(req.PrincipalIDs))
	for i, fieldID := range ordered {
		key := fieldID.String()
		if incoming[key] {
			continue
		}
		incoming[key] = true
		fields = append(fields, s.mergeFieldConfig(currentByID, fieldID, i, principals[key], visible, req))
	}
	for _, principalID := range req.PrincipalIDs {
		key := principalID.String()
		if incoming[key] {
			continue
		}
		incoming[key] = true
		fields = append(fields, s.mergeFieldConfig(currentByID, principalID, -1, true, visible, req))
	}

	var deleteFieldIDs []uuid.UUID
	for key, f := range currentByID {
		if !incoming[key] {
			deleteFieldIDs = append(deleteFieldIDs, f.FieldID)
		}
	}

	list.Name = req.Name
	if err := s.trackingRepo.UpdateListConfig(ctx, list, req.Version, fields, deleteFieldIDs); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, response.NewConflictError("Tracking list was modified by another save", "reload and retry")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update tracking list", err.Error())
	}

	updated, err := s.trackingRepo.FindListByID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reload tracking list", err.Error())
	}
	return s.toListSummary(ctx, updated)
}

// mergeFieldConfig builds the upsert row for one field, starting from
// its stored configuration when present so settings the request does
// not mention survive the save.
func (s *trackingServiceImpl) mergeFieldConfig(currentByID map[string]domain.TrackingField, fieldID uuid.UUID, order int, principal bool, visible map[string]bool, req *dto.UpdateTrackingListRequest) domain.TrackingField {
	key := fieldID.String()
	field := domain.TrackingField{
		FieldID:     fieldID,
		Order:       order,
		Principal:   principal,
		Visible:     true,
		DisplayMode: domain.DisplayModeContent,
	}
	if existing, ok := currentByID[key]; ok {
		field.Visible = existing.Visible
		field.DisplayMode = existing.DisplayMode
		field.Alias = existing.Alias
	}
	if visible != nil {
		// a principal kept out of the visible set stays tracked, hidden
		field.Visible = visible[key]
	}
	if mode, ok := req.DisplayModes[key]; ok {
		field.DisplayMode = domain.DisplayMode(mode)
	}
	if alias, ok := req.Aliases[key]; ok {
		if alias == "" {
			field.Alias = nil
		} else {
			a := alias
			field.Alias = &a
		}
	}
	return field
}

// DeleteList removes a tracking list with its fields and entries
func (s *trackingServiceImpl) DeleteList(ctx context.Context, id uuid.UUID) error {
	if _, err := s.trackingRepo.FindListByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Tracking list not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking list", err.Error())
	}
	if err := s.trackingRepo.DeleteList(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete tracking list", err.Error())
	}
	return nil
}

// ResolveView builds the pivot: one row per meeting of the bound
// template (meeting date descending), one resolved cell per tracked
// field, plus the follow-up entries grouped per meeting and globally.
// A non-empty search keeps only rows whose title or visible cell text
// contains it, case-insensitively.
func (s *trackingServiceImpl) ResolveView(ctx context.Context, id uuid.UUID, search string) (*dto.TrackingViewResponse, error) {
	list, err := s.trackingRepo.FindListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Tracking list not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking list", err.Error())
	}

	trackingFields, err := s.trackingRepo.FindFieldsByListID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking fields", err.Error())
	}

	meetings, err := s.meetingRepo.FindByTemplateID(ctx, list.TemplateID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meetings", err.Error())
	}

	meetingIDs := make([]uuid.UUID, len(meetings))
	for i, m := range meetings {
		meetingIDs[i] = m.ID
	}
	values, err := s.meetingRepo.FindValuesByMeetingIDs(ctx, meetingIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field values", err.Error())
	}
	valueByKey := make(map[string]domain.FieldValue, len(values))
	for _, v := range values {
		valueByKey[v.MeetingID.String()+"/"+v.FieldID.String()] = v
	}

	view := &dto.TrackingViewResponse{
		ListID:        list.ID,
		Name:          list.Name,
		TemplateID:    list.TemplateID,
		TemplateTitle: list.Template.Title,
		Version:       list.Version,
		Fields:        []dto.TrackingFieldResponse{},
		Rows:          []dto.TrackingRow{},
		Entries:       map[string][]dto.TrackingEntryResponse{},
		GlobalEntries: []dto.TrackingEntryResponse{},
	}
	for _, f := range trackingFields {
		view.Fields = append(view.Fields, dto.TrackingFieldResponse{
			FieldID:     f.FieldID,
			Name:        f.Field.Name,
			Type:        string(f.Field.Type),
			Order:       f.Order,
			Principal:   f.Principal,
			Visible:     f.Visible,
			DisplayMode: string(f.DisplayMode),
			Alias:       f.Alias,
		})
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	for _, m := range meetings {
		row := dto.TrackingRow{
			MeetingID:   m.ID,
			Title:       m.Title,
			MeetingDate: m.MeetingDate,
			Cells:       map[string]dto.TrackingCell{},
		}
		haystack := strings.ToLower(m.Title)
		for _, f := range trackingFields {
			value, ok := valueByKey[m.ID.String()+"/"+f.FieldID.String()]
			var cell dto.TrackingCell
			if ok {
				cell = resolveCell(&f, &value)
			} else {
				cell = dto.TrackingCell{Kind: dto.CellKindEmpty}
			}
			row.Cells[f.FieldID.String()] = cell
			if f.Visible && cell.Text != "" {
				haystack += "\n" + strings.ToLower(cell.Text)
			}
		}
		if needle != "" && !strings.Contains(haystack, needle) {
			continue
		}
		view.Rows = append(view.Rows, row)
	}

	entries, err := s.trackingRepo.FindEntriesByListID(ctx, id)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch entries", err.Error())
	}
	for _, e := range entries {
		resp := toEntryResponse(&e)
		if e.MeetingID == nil {
			view.GlobalEntries = append(view.GlobalEntries, resp)
			continue
		}
		key := e.MeetingID.String()
		view.Entries[key] = append(view.Entries[key], resp)
	}

	return view, nil
}

// AddEntry appends a follow-up note at the end of its scope
func (s *trackingServiceImpl) AddEntry(ctx context.Context, listID uuid.UUID, req *dto.AddEntryRequest) (*dto.TrackingEntryResponse, error) {
	if _, err := s.trackingRepo.FindListByID(ctx, listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Tracking list not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking list", err.Error())
	}

	entry := &domain.TrackingEntry{
		ListID:    listID,
		MeetingID: req.MeetingID,
		Content:   util.SanitizeRichText(req.Content),
	}
	if err := s.trackingRepo.CreateEntry(ctx, entry); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create entry", err.Error())
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// UpdateEntry rewrites an entry's content and/or toggles its completed
// flag, stamping or clearing completed_at with the toggle
func (s *trackingServiceImpl) UpdateEntry(ctx context.Context, listID, entryID uuid.UUID, req *dto.UpdateEntryRequest) (*dto.TrackingEntryResponse, error) {
	entry, err := s.trackingRepo.FindEntryByID(ctx, listID, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Entry not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch entry", err.Error())
	}

	if req.Content != nil {
		entry.Content = util.SanitizeRichText(*req.Content)
	}
	if req.Completed != nil && *req.Completed != entry.Completed {
		entry.Completed = *req.Completed
		if entry.Completed {
			now := time.Now().UTC()
			entry.CompletedAt = &now
		} else {
			entry.CompletedAt = nil
		}
	}

	if err := s.trackingRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update entry", err.Error())
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// DeleteEntry removes a follow-up note
func (s *trackingServiceImpl) DeleteEntry(ctx context.Context, listID, entryID uuid.UUID) error {
	if _, err := s.trackingRepo.FindEntryByID(ctx, listID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Entry not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch entry", err.Error())
	}
	if err := s.trackingRepo.DeleteEntry(ctx, listID, entryID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete entry", err.Error())
	}
	return nil
}

// ReorderEntries rewrites entry order to match the request sequence
func (s *trackingServiceImpl) ReorderEntries(ctx context.Context, listID uuid.UUID, req *dto.ReorderEntriesRequest) error {
	if _, err := s.trackingRepo.FindListByID(ctx, listID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Tracking list not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking list", err.Error())
	}
	if err := s.trackingRepo.ReorderEntries(ctx, listID, req.EntryIDs); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to reorder entries", err.Error())
	}
	return nil
}

// validateFieldsBelong rejects configurations referencing fields of
// another template or none at all
func (s *trackingServiceImpl) validateFieldsBelong(ctx context.Context, templateID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	unique := map[string]bool{}
	lookup := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if unique[id.String()] {
			continue
		}
		unique[id.String()] = true
		lookup = append(lookup, id)
	}
	fields, err := s.templateRepo.FindFieldsByIDs(ctx, lookup)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch template fields", err.Error())
	}
	found := map[string]bool{}
	for _, f := range fields {
		if f.TemplateID != templateID {
			return response.NewValidationError("Field belongs to a different template", f.ID.String())
		}
		found[f.ID.String()] = true
	}
	for _, id := range lookup {
		if !found[id.String()] {
			return response.NewValidationError("Unknown field", id.String())
		}
	}
	return nil
}

func (s *trackingServiceImpl) toListSummary(ctx context.Context, list *domain.TrackingList) (*dto.TrackingListSummary, error) {
	summary := &dto.TrackingListSummary{
		ListID:          list.ID,
		Name:            list.Name,
		TemplateID:      list.TemplateID,
		TemplateTitle:   list.Template.Title,
		Version:         list.Version,
		PrincipalFields: []string{},
		CreatedAt:       list.CreatedAt,
	}
	fields, err := s.trackingRepo.FindFieldsByListID(ctx, list.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tracking fields", err.Error())
	}
	for _, f := range fields {
		if f.Principal {
			summary.PrincipalFields = append(summary.PrincipalFields, fieldLabel(f))
		}
	}
	return summary, nil
}

// resolveCell renders one stored value under the field's display mode.
// filled mode only reports presence; content mode renders the typed
// value, with a per-cell error marker when table JSON is malformed.
func resolveCell(f *domain.TrackingField, v *domain.FieldValue) dto.TrackingCell {
	filled := v.HasValue()
	if f.DisplayMode == domain.DisplayModeFilled {
		if filled {
			return dto.TrackingCell{Kind: dto.CellKindFilled, Filled: true}
		}
		return dto.TrackingCell{Kind: dto.CellKindEmpty}
	}
	if !filled {
		return dto.TrackingCell{Kind: dto.CellKindEmpty}
	}

	switch f.Field.Type {
	case domain.FieldTypeNumber:
		if v.NumberValue != nil {
			return dto.TrackingCell{
				Kind:   dto.CellKindNumber,
				Filled: true,
				Number: v.NumberValue,
				Text:   strconv.FormatFloat(*v.NumberValue, 'f', -1, 64),
			}
		}
	case domain.FieldTypeBoolean:
		if v.BooleanValue != nil {
			text := "No"
			if *v.BooleanValue {
				text = "Yes"
			}
			return dto.TrackingCell{Kind: dto.CellKindBoolean, Filled: true, Boolean: v.BooleanValue, Text: text}
		}
	case domain.FieldTypeDate, domain.FieldTypeDateTime:
		if v.DateValue != nil {
			layout := "2006-01-02"
			if f.Field.Type == domain.FieldTypeDateTime {
				layout = "2006-01-02 15:04"
			}
			return dto.TrackingCell{Kind: dto.CellKindDate, Filled: true, Date: v.DateValue, Text: v.DateValue.Format(layout)}
		}
	case domain.FieldTypeTable:
		return resolveTableCell(f, v)
	case domain.FieldTypeLongText:
		if v.TextValue != nil {
			return dto.TrackingCell{Kind: dto.CellKindRich, Filled: true, Text: *v.TextValue}
		}
	}
	if v.TextValue != nil {
		return dto.TrackingCell{Kind: dto.CellKindText, Filled: true, Text: *v.TextValue}
	}
	return dto.TrackingCell{Kind: dto.CellKindEmpty}
}

// resolveTableCell parses the stored row JSON against the field's
// column definitions. Malformed JSON yields an error cell, not a
// resolution failure for the whole view.
func resolveTableCell(f *domain.TrackingField, v *domain.FieldValue) dto.TrackingCell {
	if v.TextValue == nil || *v.TextValue == "" {
		return dto.TrackingCell{Kind: dto.CellKindEmpty}
	}

	opts, err := f.Field.ParseOptions()
	if err != nil || opts.Table == nil {
		return dto.TrackingCell{Kind: dto.CellKindError, Filled: true, Text: "invalid table definition"}
	}
	columns := make([]string, len(opts.Table.Columns))
	for i, c := range opts.Table.Columns {
		columns[i] = c.Name
	}

	var raw []map[string]any
	if err := json.Unmarshal([]byte(*v.TextValue), &raw); err != nil {
		return dto.TrackingCell{Kind: dto.CellKindError, Filled: true, Text: "invalid table data"}
	}

	rows := make([]map[string]string, 0, len(raw))
	for _, r := range raw {
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			row[col] = stringifyCell(r[col])
		}
		rows = append(rows, row)
	}
	return dto.TrackingCell{Kind: dto.CellKindTable, Filled: true, Table: rows, Columns: columns}
}

func stringifyCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

func toEntryResponse(e *domain.TrackingEntry) dto.TrackingEntryResponse {
	return dto.TrackingEntryResponse{
		EntryID:     e.ID,
		MeetingID:   e.MeetingID,
		Content:     e.Content,
		Completed:   e.Completed,
		CompletedAt: e.CompletedAt,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt,
	}
}

// fieldLabel prefers the alias over the field's own name
func fieldLabel(f domain.TrackingField) string {
	if f.Alias != nil && *f.Alias != "" {
		return *f.Alias
	}
	return f.Field.Name
}

// idSet builds a string-keyed membership set; tracking configuration
// diffs always compare ids in normalized string form
func idSet(ids []uuid.UUID) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id.String()] = true
	}
	return set
}

func displayModeFor(modes map[string]string, key string) domain.DisplayMode {
	if mode, ok := modes[key]; ok && mode == string(domain.DisplayModeFilled) {
		return domain.DisplayModeFilled
	}
	return domain.DisplayModeContent
}

func aliasFor(aliases map[string]string, key string) *string {
	if alias, ok := aliases[key]; ok && alias != "" {
		a := alias
		return &a
	}
	return nil
}
