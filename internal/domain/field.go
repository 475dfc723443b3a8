package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FieldType represents the type of a template field
type FieldType string

// FieldType constants
const (
	FieldTypeShortText  FieldType = "short_text"
	FieldTypeLongText   FieldType = "long_text"
	FieldTypeNumber     FieldType = "number"
	FieldTypeDate       FieldType = "date"
	FieldTypeDateTime   FieldType = "datetime"
	FieldTypeBoolean    FieldType = "boolean"
	FieldTypeSection    FieldType = "section"
	FieldTypeTable      FieldType = "table"
	FieldTypeAttachment FieldType = "attachment"
)

// IsValidFieldType reports whether t is one of the known field types
func IsValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeShortText, FieldTypeLongText, FieldTypeNumber,
		FieldTypeDate, FieldTypeDateTime, FieldTypeBoolean,
		FieldTypeSection, FieldTypeTable, FieldTypeAttachment:
		return true
	}
	return false
}

// IsPseudo reports whether the field type carries no scalar value.
// Sections are visual dividers; attachment fields hold file references.
func (t FieldType) IsPseudo() bool {
	return t == FieldTypeSection || t == FieldTypeAttachment
}

// TemplateField is one typed slot within a template.
// Order defines the display sequence and is re-sequenced on every save
// of the field list, so it is always unique within a template.
type TemplateField struct {
	BaseModel
	TemplateID uuid.UUID      `gorm:"type:uuid;not null;index:idx_template_fields_template_id" json:"template_id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Type       FieldType      `gorm:"type:varchar(50);not null" json:"type"`
	Order      int            `gorm:"column:display_order;type:int;not null;default:0" json:"order"`
	Required   bool           `gorm:"type:boolean;not null;default:false" json:"required"`
	Options    datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty"`
	Template   Template       `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template,omitempty"`
}

// TableName specifies the table name for TemplateField
func (TemplateField) TableName() string {
	return "template_fields"
}

// ColumnDef is one column definition of a table-type field
type ColumnDef struct {
	Name string    `json:"name"`
	Type FieldType `json:"type,omitempty"`
}

// TableOptions holds the ordered column definitions of a table-type field
type TableOptions struct {
	Columns []ColumnDef `json:"columns"`
}

// FieldOptions is the tagged variant behind TemplateField.Options.
// Table is non-nil only for table-type fields; every other type has no options.
type FieldOptions struct {
	Table *TableOptions
}

// ParseOptions decodes the stored options blob according to the field type.
// Non-table fields always return empty options regardless of what is stored.
func (f *TemplateField) ParseOptions() (FieldOptions, error) {
	if f.Type != FieldTypeTable {
		return FieldOptions{}, nil
	}
	if len(f.Options) == 0 {
		return FieldOptions{Table: &TableOptions{}}, nil
	}
	var opts TableOptions
	if err := json.Unmarshal(f.Options, &opts); err != nil {
		// older rows store the bare column array
		var cols []ColumnDef
		if err2 := json.Unmarshal(f.Options, &cols); err2 != nil {
			return FieldOptions{}, fmt.Errorf("field %s: malformed table options: %w", f.ID, err)
		}
		opts.Columns = cols
	}
	return FieldOptions{Table: &opts}, nil
}

// EncodeTableOptions serializes column definitions for storage
func EncodeTableOptions(opts TableOptions) (datatypes.JSON, error) {
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encode table options: %w", err)
	}
	return datatypes.JSON(raw), nil
}
