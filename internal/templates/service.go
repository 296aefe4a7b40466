package templates

import (
	"context"

	pb "github.com/Aidin1998/templates/proto/templates"
	"go.uber.org/zap"
)

// Service implements the templates.Templates gRPC service. Each handler makes
// exactly one Store call and maps its outcome onto the response message; any
// failure becomes codes.Internal alongside the zero-value response.
type Service struct {
	pb.UnimplementedTemplatesServer

	logger *zap.Logger
	store  Store
}

// NewService creates a new Service backed by store
func NewService(logger *zap.Logger, store Store) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger: logger.Named("templates"),
		store:  store,
	}
}

// storeContext detaches the store call from client cancellation: once a
// handler starts, it runs to completion.
func storeContext(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// CreateTemplate adds a template and returns its generated id
func (s *Service) CreateTemplate(ctx context.Context, req *pb.CreateTemplateRequest) (*pb.IdStruct, error) {
	s.logger.Info("CreateTemplate request")

	id, err := s.store.AddTemplate(storeContext(ctx), req.GetName(), req.GetDescription())
	if err != nil {
		return &pb.IdStruct{}, s.internalError("CreateTemplate", err)
	}
	return &pb.IdStruct{Id: id}, nil
}

// CreateLink associates a feature with a template
func (s *Service) CreateLink(ctx context.Context, req *pb.LinkRequest) (*pb.IdStruct, error) {
	s.logger.Info("CreateLink request")

	id, err := s.store.AddFeatureTemplateLink(storeContext(ctx), req.GetFeatureId(), req.GetTemplateId())
	if err != nil {
		return &pb.IdStruct{}, s.internalError("CreateLink", err)
	}
	return &pb.IdStruct{Id: id}, nil
}

// GetAllTemplates lists every template
func (s *Service) GetAllTemplates(ctx context.Context, _ *pb.Empty) (*pb.TemplatesList, error) {
	s.logger.Info("GetAllTemplates request")

	templates, err := s.store.GetAllTemplates(storeContext(ctx))
	if err != nil {
		return &pb.TemplatesList{}, s.internalError("GetAllTemplates", err)
	}

	resp := &pb.TemplatesList{Items: make([]*pb.TemplateStruct, 0, len(templates))}
	for _, t := range templates {
		resp.Items = append(resp.Items, &pb.TemplateStruct{
			Id:          t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return resp, nil
}

// GetFeaturesByTemplateId lists the features linked to a template
func (s *Service) GetFeaturesByTemplateId(ctx context.Context, req *pb.IdStruct) (*pb.FeaturesList, error) {
	s.logger.Info("GetFeaturesByTemplateId request")

	features, err := s.store.GetFeaturesByTemplateID(storeContext(ctx), req.GetId())
	if err != nil {
		return &pb.FeaturesList{}, s.internalError("GetFeaturesByTemplateId", err)
	}

	resp := &pb.FeaturesList{Items: make([]*pb.FeatureStruct, 0, len(features))}
	for _, f := range features {
		resp.Items = append(resp.Items, &pb.FeatureStruct{Id: f.ID, Name: f.Name})
	}
	return resp, nil
}

// DeleteLink removes the association between a feature and a template
func (s *Service) DeleteLink(ctx context.Context, req *pb.LinkRequest) (*pb.Empty, error) {
	s.logger.Info("DeleteLink request")

	if err := s.store.DeleteFeatureTemplateLink(storeContext(ctx), req.GetFeatureId(), req.GetTemplateId()); err != nil {
		return &pb.Empty{}, s.internalError("DeleteLink", err)
	}
	return &pb.Empty{}, nil
}

// DeleteTemplate removes a template. Links referencing it are left in place.
func (s *Service) DeleteTemplate(ctx context.Context, req *pb.IdStruct) (*pb.Empty, error) {
	s.logger.Info("DeleteTemplate request")

	if err := s.store.DeleteTemplate(storeContext(ctx), req.GetId()); err != nil {
		return &pb.Empty{}, s.internalError("DeleteTemplate", err)
	}
	return &pb.Empty{}, nil
}

// CreateFeature adds a feature and returns its generated id
func (s *Service) CreateFeature(ctx context.Context, req *pb.CreateFeatureRequest) (*pb.IdStruct, error) {
	s.logger.Info("CreateFeature request")

	id, err := s.store.AddFeature(storeContext(ctx), req.GetName())
	if err != nil {
		return &pb.IdStruct{}, s.internalError("CreateFeature", err)
	}
	return &pb.IdStruct{Id: id}, nil
}
