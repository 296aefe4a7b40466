package templates

import (
	"context"
	"testing"

	"github.com/Aidin1998/templates/internal/infrastructure/database"
	"github.com/Aidin1998/templates/pkg/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type GormStoreTestSuite struct {
	suite.Suite
	db    *database.Manager
	store *GormStore
	ctx   context.Context
}

func TestGormStoreTestSuite(t *testing.T) {
	suite.Run(t, new(GormStoreTestSuite))
}

func (s *GormStoreTestSuite) SetupTest() {
	db, err := database.OpenInMemory(zaptest.NewLogger(s.T()))
	s.Require().NoError(err)
	s.db = db
	s.store = NewGormStore(db.DB())
	s.ctx = context.Background()
}

func (s *GormStoreTestSuite) TearDownTest() {
	s.NoError(s.db.Close())
}

func (s *GormStoreTestSuite) TestGeneratedIdentifiersAreSequential() {
	first, err := s.store.AddTemplate(s.ctx, "Invoice", "Standard invoice template")
	s.Require().NoError(err)
	second, err := s.store.AddTemplate(s.ctx, "Receipt", "")
	s.Require().NoError(err)

	s.Equal(int64(1), first)
	s.Equal(int64(2), second)

	feature, err := s.store.AddFeature(s.ctx, "Due Date")
	s.Require().NoError(err)
	s.Equal(int64(1), feature)

	link, err := s.store.AddFeatureTemplateLink(s.ctx, feature, first)
	s.Require().NoError(err)
	s.Equal(int64(1), link)
}

func (s *GormStoreTestSuite) TestGetAllTemplates() {
	templates, err := s.store.GetAllTemplates(s.ctx)
	s.Require().NoError(err)
	s.Empty(templates)

	_, err = s.store.AddTemplate(s.ctx, "Invoice", "Standard invoice template")
	s.Require().NoError(err)
	_, err = s.store.AddTemplate(s.ctx, "", "")
	s.Require().NoError(err)

	templates, err = s.store.GetAllTemplates(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.Template{
		{ID: 1, Name: "Invoice", Description: "Standard invoice template"},
		{ID: 2},
	}, templates)
}

func (s *GormStoreTestSuite) TestFeaturesFollowLinks() {
	invoice, _ := s.store.AddTemplate(s.ctx, "Invoice", "")
	receipt, _ := s.store.AddTemplate(s.ctx, "Receipt", "")
	dueDate, _ := s.store.AddFeature(s.ctx, "Due Date")
	total, _ := s.store.AddFeature(s.ctx, "Total")

	_, err := s.store.AddFeatureTemplateLink(s.ctx, total, invoice)
	s.Require().NoError(err)
	_, err = s.store.AddFeatureTemplateLink(s.ctx, dueDate, invoice)
	s.Require().NoError(err)
	_, err = s.store.AddFeatureTemplateLink(s.ctx, total, receipt)
	s.Require().NoError(err)

	features, err := s.store.GetFeaturesByTemplateID(s.ctx, invoice)
	s.Require().NoError(err)
	s.Equal([]models.Feature{{ID: dueDate, Name: "Due Date"}, {ID: total, Name: "Total"}}, features)

	s.Require().NoError(s.store.DeleteFeatureTemplateLink(s.ctx, dueDate, invoice))

	features, err = s.store.GetFeaturesByTemplateID(s.ctx, invoice)
	s.Require().NoError(err)
	s.Equal([]models.Feature{{ID: total, Name: "Total"}}, features)

	features, err = s.store.GetFeaturesByTemplateID(s.ctx, receipt)
	s.Require().NoError(err)
	s.Len(features, 1)

	features, err = s.store.GetFeaturesByTemplateID(s.ctx, 999)
	s.Require().NoError(err)
	s.Empty(features)
}

func (s *GormStoreTestSuite) TestDeletesOfMissingRowsSucceed() {
	s.NoError(s.store.DeleteTemplate(s.ctx, 42))
	s.NoError(s.store.DeleteTemplate(s.ctx, -1))
	s.NoError(s.store.DeleteFeatureTemplateLink(s.ctx, 1, 1))
}

func (s *GormStoreTestSuite) TestDeleteTemplateDoesNotCascade() {
	tmpl, _ := s.store.AddTemplate(s.ctx, "Invoice", "")
	feature, _ := s.store.AddFeature(s.ctx, "Due Date")
	_, err := s.store.AddFeatureTemplateLink(s.ctx, feature, tmpl)
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteTemplate(s.ctx, tmpl))

	templates, err := s.store.GetAllTemplates(s.ctx)
	s.Require().NoError(err)
	s.Empty(templates)

	var links int64
	s.Require().NoError(s.db.DB().Model(&models.FeatureTemplateLink{}).Count(&links).Error)
	s.Equal(int64(1), links)
}

func (s *GormStoreTestSuite) TestErrorsAfterClose() {
	s.Require().NoError(s.db.Close())

	_, err := s.store.AddTemplate(s.ctx, "Invoice", "")
	s.ErrorContains(err, "failed to insert template")

	_, err = s.store.GetAllTemplates(s.ctx)
	s.Error(err)

	err = s.store.DeleteTemplate(s.ctx, 1)
	s.Error(err)
}
