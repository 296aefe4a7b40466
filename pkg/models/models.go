package models

// Template represents a named, described template that groups features
type Template struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"type:text"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName overrides the table name used by Template
func (Template) TableName() string { return "templates" }

// Feature represents a named feature that can be attached to templates
type Feature struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:text"`
}

// TableName overrides the table name used by Feature
func (Feature) TableName() string { return "features" }

// FeatureTemplateLink associates one feature with one template
type FeatureTemplateLink struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	FeatureID  int64 `json:"feature_id" gorm:"index"`
	TemplateID int64 `json:"template_id" gorm:"index"`
}

// TableName overrides the table name used by FeatureTemplateLink
func (FeatureTemplateLink) TableName() string { return "feature_template_links" }

// All lists every persisted model, in creation order
func All() []interface{} {
	return []interface{}{&Template{}, &Feature{}, &FeatureTemplateLink{}}
}
