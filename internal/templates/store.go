package templates

import (
	"context"
	"fmt"

	"github.com/Aidin1998/templates/pkg/models"
	"gorm.io/gorm"
)

// Store is the data-access capability behind the Templates service. Every
// method performs a single database operation.
type Store interface {
	AddTemplate(ctx context.Context, name, description string) (int64, error)
	AddFeature(ctx context.Context, name string) (int64, error)
	AddFeatureTemplateLink(ctx context.Context, featureID, templateID int64) (int64, error)
	GetAllTemplates(ctx context.Context) ([]models.Template, error)
	GetFeaturesByTemplateID(ctx context.Context, templateID int64) ([]models.Feature, error)
	DeleteFeatureTemplateLink(ctx context.Context, featureID, templateID int64) error
	DeleteTemplate(ctx context.Context, templateID int64) error
}

// GormStore implements Store on a relational database through gorm
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AddTemplate(ctx context.Context, name, description string) (int64, error) {
	t := models.Template{Name: name, Description: description}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return 0, fmt.Errorf("failed to insert template: %w", err)
	}
	return t.ID, nil
}

func (s *GormStore) AddFeature(ctx context.Context, name string) (int64, error) {
	f := models.Feature{Name: name}
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return 0, fmt.Errorf("failed to insert feature: %w", err)
	}
	return f.ID, nil
}

func (s *GormStore) AddFeatureTemplateLink(ctx context.Context, featureID, templateID int64) (int64, error) {
	l := models.FeatureTemplateLink{FeatureID: featureID, TemplateID: templateID}
	if err := s.db.WithContext(ctx).Create(&l).Error; err != nil {
		return 0, fmt.Errorf("failed to insert feature template link: %w", err)
	}
	return l.ID, nil
}

func (s *GormStore) GetAllTemplates(ctx context.Context) ([]models.Template, error) {
	templates := make([]models.Template, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to select templates: %w", err)
	}
	return templates, nil
}

// GetFeaturesByTemplateID returns the features linked to templateID, ordered by id
func (s *GormStore) GetFeaturesByTemplateID(ctx context.Context, templateID int64) ([]models.Feature, error) {
	features := make([]models.Feature, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Feature{}).
		Select("features.id, features.name").
		Joins("JOIN feature_template_links ON feature_template_links.feature_id = features.id").
		Where("feature_template_links.template_id = ?", templateID).
		Order("features.id").
		Find(&features).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select features of template %d: %w", templateID, err)
	}
	return features, nil
}

func (s *GormStore) DeleteFeatureTemplateLink(ctx context.Context, featureID, templateID int64) error {
	err := s.db.WithContext(ctx).
		Where("feature_id = ? AND template_id = ?", featureID, templateID).
		Delete(&models.FeatureTemplateLink{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete feature template link: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteTemplate(ctx context.Context, templateID int64) error {
	if err := s.db.WithContext(ctx).Delete(&models.Template{}, templateID).Error; err != nil {
		return fmt.Errorf("failed to delete template %d: %w", templateID, err)
	}
	return nil
}
