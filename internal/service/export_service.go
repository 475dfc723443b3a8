package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-records-api/internal/domain"
	"meeting-records-api/internal/export"
	"meeting-records-api/internal/metrics"
	"meeting-records-api/internal/repository"
	"meeting-records-api/internal/response"
	"meeting-records-api/internal/util"
)

// ExportService defines the interface for export generation
type ExportService interface {
	ExportSpreadsheet(ctx context.Context, templateID uuid.UUID) (filename string, data []byte, err error)
	ExportReport(ctx context.Context, templateID uuid.UUID, meetingIDs []uuid.UUID) ([]byte, error)
}

// exportServiceImpl is the implementation of ExportService
type exportServiceImpl struct {
	templateRepo repository.TemplateRepository
	meetingRepo  repository.MeetingRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewExportService creates a new instance of ExportService
func NewExportService(templateRepo repository.TemplateRepository, meetingRepo repository.MeetingRepository, m *metrics.Metrics, logger *zap.Logger) ExportService {
	return &exportServiceImpl{
		templateRepo: templateRepo,
		meetingRepo:  meetingRepo,
		metrics:      m,
		logger:       logger,
	}
}

// ExportSpreadsheet renders every meeting of a template into an xlsx
// workbook. Long text is exported with its tags stripped.
func (s *exportServiceImpl) ExportSpreadsheet(ctx context.Context, templateID uuid.UUID) (string, []byte, error) {
	start := time.Now()
	template, columns, rows, err := s.collect(ctx, templateID, nil, false)
	if err != nil {
		return "", nil, err
	}

	data, err := export.Spreadsheet(template.Title, columns, rows)
	if s.metrics != nil {
		s.metrics.RecordTask(metrics.TaskExportSpreadsheet, time.Since(start), err)
	}
	if err != nil {
		return "", nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate spreadsheet", err.Error())
	}

	s.logger.Info("Spreadsheet exported",
		zap.String("template_id", templateID.String()),
		zap.Int("rows", len(rows)),
	)
	filename := fmt.Sprintf("%s_%s.xlsx", util.SanitizeName(template.Title), time.Now().UTC().Format("20060102_1504"))
	return filename, data, nil
}

// ExportReport renders the selected meetings (all of the template when
// none are given) into a self-contained HTML document. Long text keeps
// its sanitized HTML.
func (s *exportServiceImpl) ExportReport(ctx context.Context, templateID uuid.UUID, meetingIDs []uuid.UUID) ([]byte, error) {
	start := time.Now()
	template, columns, rows, err := s.collect(ctx, templateID, meetingIDs, true)
	if err != nil {
		return nil, err
	}

	data, err := export.Report(export.ReportData{
		TemplateTitle: template.Title,
		GeneratedAt:   time.Now().UTC(),
		Columns:       columns,
		Rows:          rows,
	})
	if s.metrics != nil {
		s.metrics.RecordTask(metrics.TaskExportReport, time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate report", err.Error())
	}
	return data, nil
}

// collect loads the template's exportable columns and stringifies the
// selected meetings' values. keepHTML preserves sanitized markup in
// long-text cells instead of stripping it.
func (s *exportServiceImpl) collect(ctx context.Context, templateID uuid.UUID, meetingIDs []uuid.UUID, keepHTML bool) (*domain.Template, []export.Column, []export.Row, error) {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, response.NewNotFoundError("Template not found", "")
		}
		return nil, nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch template", err.Error())
	}

	fields, err := s.templateRepo.FindFieldsByTemplateID(ctx, templateID)
	if err != nil {
		return nil, nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch fields", err.Error())
	}
	var columns []export.Column
	fieldByID := make(map[string]domain.TemplateField, len(fields))
	for _, f := range fields {
		if f.Type.IsPseudo() {
			continue
		}
		columns = append(columns, export.Column{ID: f.ID.String(), Name: f.Name, Type: string(f.Type)})
		fieldByID[f.ID.String()] = f
	}

	meetings, err := s.meetingRepo.FindByTemplateID(ctx, templateID)
	if err != nil {
		return nil, nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meetings", err.Error())
	}
	if len(meetingIDs) > 0 {
		wanted := make(map[uuid.UUID]bool, len(meetingIDs))
		for _, id := range meetingIDs {
			wanted[id] = true
		}
		filtered := meetings[:0]
		for _, m := range meetings {
			if wanted[m.ID] {
				filtered = append(filtered, m)
			}
		}
		meetings = filtered
	}

	ids := make([]uuid.UUID, len(meetings))
	for i, m := range meetings {
		ids[i] = m.ID
	}
	values, err := s.meetingRepo.FindValuesByMeetingIDs(ctx, ids)
	if err != nil {
		return nil, nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch values", err.Error())
	}
	valuesByMeeting := make(map[uuid.UUID][]domain.FieldValue)
	for _, v := range values {
		valuesByMeeting[v.MeetingID] = append(valuesByMeeting[v.MeetingID], v)
	}

	rows := make([]export.Row, 0, len(meetings))
	for _, m := range meetings {
		row := export.Row{
			ID:          m.ID.String(),
			Title:       m.Title,
			Subtitle:    m.Subtitle,
			Status:      string(m.Status),
			MeetingDate: m.MeetingDate,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
			Values:      map[string]string{},
		}
		for _, v := range valuesByMeeting[m.ID] {
			field, ok := fieldByID[v.FieldID.String()]
			if !ok {
				continue
			}
			row.Values[v.FieldID.String()] = exportValue(field.Type, &v, keepHTML)
		}
		rows = append(rows, row)
	}
	return template, columns, rows, nil
}

// exportValue renders one stored value as a cell string
func exportValue(t domain.FieldType, v *domain.FieldValue, keepHTML bool) string {
	switch t {
	case domain.FieldTypeNumber:
		if v.NumberValue != nil {
			return strconv.FormatFloat(*v.NumberValue, 'f', -1, 64)
		}
	case domain.FieldTypeBoolean:
		if v.BooleanValue != nil {
			if *v.BooleanValue {
				return "Yes"
			}
			return "No"
		}
	case domain.FieldTypeDate:
		if v.DateValue != nil {
			return v.DateValue.Format("2006-01-02")
		}
	case domain.FieldTypeDateTime:
		if v.DateValue != nil {
			return v.DateValue.Format("2006-01-02 15:04")
		}
	case domain.FieldTypeLongText:
		if v.TextValue != nil {
			if keepHTML {
				return *v.TextValue
			}
			return util.StripHTML(*v.TextValue)
		}
	default:
		if v.TextValue != nil {
			return *v.TextValue
		}
	}
	return ""
}
