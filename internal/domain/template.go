package domain

// Template is a reusable definition of an ordered set of typed fields
type Template struct {
	BaseModel
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Fields      []TemplateField `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
	Meetings    []Meeting       `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"meetings,omitempty"`
}

// TableName specifies the table name for Template
func (Template) TableName() string {
	return "templates"
}
