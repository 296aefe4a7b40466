package templates

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "templates.Templates"

	Templates_CreateTemplate_FullMethodName          = "/templates.Templates/CreateTemplate"
	Templates_CreateLink_FullMethodName              = "/templates.Templates/CreateLink"
	Templates_GetAllTemplates_FullMethodName         = "/templates.Templates/GetAllTemplates"
	Templates_GetFeaturesByTemplateId_FullMethodName = "/templates.Templates/GetFeaturesByTemplateId"
	Templates_DeleteLink_FullMethodName              = "/templates.Templates/DeleteLink"
	Templates_DeleteTemplate_FullMethodName          = "/templates.Templates/DeleteTemplate"
	Templates_CreateFeature_FullMethodName           = "/templates.Templates/CreateFeature"
)

// TemplatesClient is the client API for Templates service.
type TemplatesClient interface {
	CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*IdStruct, error)
	CreateLink(ctx context.Context, in *LinkRequest, opts ...grpc.CallOption) (*IdStruct, error)
	GetAllTemplates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*TemplatesList, error)
	GetFeaturesByTemplateId(ctx context.Context, in *IdStruct, opts ...grpc.CallOption) (*FeaturesList, error)
	DeleteLink(ctx context.Context, in *LinkRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteTemplate(ctx context.Context, in *IdStruct, opts ...grpc.CallOption) (*Empty, error)
	CreateFeature(ctx context.Context, in *CreateFeatureRequest, opts ...grpc.CallOption) (*IdStruct, error)
}

type templatesClient struct {
	cc grpc.ClientConnInterface
}

// NewTemplatesClient returns a client that encodes calls with Codec
// regardless of the connection's default codec.
func NewTemplatesClient(cc grpc.ClientConnInterface) TemplatesClient {
	return &templatesClient{cc}
}

func (c *templatesClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	cOpts := append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, cOpts...)
}

func (c *templatesClient) CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*IdStruct, error) {
	out := new(IdStruct)
	if err := c.invoke(ctx, Templates_CreateTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesClient) CreateLink(ctx context.Context, in *LinkRequest, opts ...grpc.CallOption) (*IdStruct, error) {
	out := new(IdStruct)
	if err := c.invoke(ctx, Templates_CreateLink_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesClient) GetAllTemplates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*TemplatesList, error) {
	out := new(TemplatesList)
	if err := c.invoke(ctx, Templates_GetAllTemplates_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesClient) GetFeaturesByTemplateId(ctx context.Context, in *IdStruct, opts ...grpc.CallOption) (*FeaturesList, error) {
	out := new(FeaturesList)
	if err := c.invoke(ctx, Templates_GetFeaturesByTemplateId_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesClient) DeleteLink(ctx context.Context, in *LinkRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, Templates_DeleteLink_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesClient) DeleteTemplate(ctx context.Context, in *IdStruct, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, Templates_DeleteTemplate_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesClient) CreateFeature(ctx context.Context, in *CreateFeatureRequest, opts ...grpc.CallOption) (*IdStruct, error) {
	out := new(IdStruct)
	if err := c.invoke(ctx, Templates_CreateFeature_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// TemplatesServer is the server API for Templates service.
// Implementations must embed UnimplementedTemplatesServer.
type TemplatesServer interface {
	// Template operations
	CreateTemplate(context.Context, *CreateTemplateRequest) (*IdStruct, error)
	GetAllTemplates(context.Context, *Empty) (*TemplatesList, error)
	DeleteTemplate(context.Context, *IdStruct) (*Empty, error)

	// Feature operations
	CreateFeature(context.Context, *CreateFeatureRequest) (*IdStruct, error)
	GetFeaturesByTemplateId(context.Context, *IdStruct) (*FeaturesList, error)

	// Link operations
	CreateLink(context.Context, *LinkRequest) (*IdStruct, error)
	DeleteLink(context.Context, *LinkRequest) (*Empty, error)

	mustEmbedUnimplementedTemplatesServer()
}

// UnimplementedTemplatesServer can be embedded to have forward compatible implementations.
type UnimplementedTemplatesServer struct{}

func (UnimplementedTemplatesServer) CreateTemplate(context.Context, *CreateTemplateRequest) (*IdStruct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTemplate not implemented")
}

func (UnimplementedTemplatesServer) CreateLink(context.Context, *LinkRequest) (*IdStruct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLink not implemented")
}

func (UnimplementedTemplatesServer) GetAllTemplates(context.Context, *Empty) (*TemplatesList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllTemplates not implemented")
}

func (UnimplementedTemplatesServer) GetFeaturesByTemplateId(context.Context, *IdStruct) (*FeaturesList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFeaturesByTemplateId not implemented")
}

func (UnimplementedTemplatesServer) DeleteLink(context.Context, *LinkRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLink not implemented")
}

func (UnimplementedTemplatesServer) DeleteTemplate(context.Context, *IdStruct) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTemplate not implemented")
}

func (UnimplementedTemplatesServer) CreateFeature(context.Context, *CreateFeatureRequest) (*IdStruct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFeature not implemented")
}

func (UnimplementedTemplatesServer) mustEmbedUnimplementedTemplatesServer() {}

// RegisterTemplatesServer registers srv on s. The server must be created
// with grpc.ForceServerCodec(Codec{}).
func RegisterTemplatesServer(s grpc.ServiceRegistrar, srv TemplatesServer) {
	s.RegisterService(&Templates_ServiceDesc, srv)
}

func _Templates_CreateTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).CreateTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_CreateTemplate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).CreateTemplate(ctx, req.(*CreateTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Templates_CreateLink_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LinkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).CreateLink(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_CreateLink_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).CreateLink(ctx, req.(*LinkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Templates_GetAllTemplates_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).GetAllTemplates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_GetAllTemplates_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).GetAllTemplates(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Templates_GetFeaturesByTemplateId_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IdStruct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).GetFeaturesByTemplateId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_GetFeaturesByTemplateId_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).GetFeaturesByTemplateId(ctx, req.(*IdStruct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Templates_DeleteLink_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LinkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).DeleteLink(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_DeleteLink_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).DeleteLink(ctx, req.(*LinkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Templates_DeleteTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(IdStruct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).DeleteTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_DeleteTemplate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).DeleteTemplate(ctx, req.(*IdStruct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Templates_CreateFeature_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateFeatureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServer).CreateFeature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Templates_CreateFeature_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TemplatesServer).CreateFeature(ctx, req.(*CreateFeatureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Templates_ServiceDesc is the grpc.ServiceDesc for Templates service.
var Templates_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TemplatesServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateTemplate", Handler: _Templates_CreateTemplate_Handler},
		{MethodName: "CreateLink", Handler: _Templates_CreateLink_Handler},
		{MethodName: "GetAllTemplates", Handler: _Templates_GetAllTemplates_Handler},
		{MethodName: "GetFeaturesByTemplateId", Handler: _Templates_GetFeaturesByTemplateId_Handler},
		{MethodName: "DeleteLink", Handler: _Templates_DeleteLink_Handler},
		{MethodName: "DeleteTemplate", Handler: _Templates_DeleteTemplate_Handler},
		{MethodName: "CreateFeature", Handler: _Templates_CreateFeature_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: fileName,
}
