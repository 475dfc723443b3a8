package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FieldRequest represents one field definition in a template save.
// ID is present when the caller refers to an existing field; new fields
// come without one (any id sent on create is ignored).
type FieldRequest struct {
	ID       *uuid.UUID     `json:"id,omitempty"`
	Name     string         `json:"name" binding:"required,max=255"`
	Type     string         `json:"type" binding:"required"`
	Required bool           `json:"required"`
	Options  datatypes.JSON `json:"options,omitempty"`
}

// CreateTemplateRequest represents the request to create a template
type CreateTemplateRequest struct {
	Title       string         `json:"title" binding:"required,max=255"`
	Description string         `json:"description"`
	Fields      []FieldRequest `json:"fields"`
}

// UpdateTemplateRequest represents the request to update a template.
// The field list is reconciled against the stored one: known ids are
// updated in place, id-less entries are inserted, missing ids deleted.
type UpdateTemplateRequest struct {
	Title       string         `json:"title" binding:"required,max=255"`
	Description string         `json:"description"`
	Fields      []FieldRequest `json:"fields"`
}

// FieldResponse represents one field of a template
type FieldResponse struct {
	FieldID  uuid.UUID      `json:"fieldId"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Order    int            `json:"order"`
	Required bool           `json:"required"`
	Options  datatypes.JSON `json:"options,omitempty"`
}

// TemplateResponse represents the template response
type TemplateResponse struct {
	TemplateID  uuid.UUID       `json:"templateId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fields      []FieldResponse `json:"fields"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
