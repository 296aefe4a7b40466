package templates

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const fileName = "templates/templates.proto"

var fileDescriptor protoreflect.FileDescriptor

// File returns the descriptor of templates.proto. It is registered in
// protoregistry.GlobalFiles so server reflection can serve it.
func File() protoreflect.FileDescriptor { return fileDescriptor }

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic("templates: invalid file descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("templates: register file descriptor: " + err.Error())
	}
	fileDescriptor = fd
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(fileName),
		Package: proto.String("templates"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/Aidin1998/templates/proto/templates"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			messageType("Empty"),
			messageType("IdStruct",
				scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64)),
			messageType("CreateTemplateRequest",
				scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("description", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING)),
			messageType("CreateFeatureRequest",
				scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING)),
			messageType("LinkRequest",
				scalarField("feature_id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
				scalarField("template_id", 2, descriptorpb.FieldDescriptorProto_TYPE_INT64)),
			messageType("TemplateStruct",
				scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
				scalarField("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("description", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING)),
			messageType("TemplatesList",
				repeatedField("items", 1, ".templates.TemplateStruct")),
			messageType("FeatureStruct",
				scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
				scalarField("name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING)),
			messageType("FeaturesList",
				repeatedField("items", 1, ".templates.FeatureStruct")),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("Templates"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("CreateTemplate", "CreateTemplateRequest", "IdStruct"),
				method("CreateLink", "LinkRequest", "IdStruct"),
				method("GetAllTemplates", "Empty", "TemplatesList"),
				method("GetFeaturesByTemplateId", "IdStruct", "FeaturesList"),
				method("DeleteLink", "LinkRequest", "Empty"),
				method("DeleteTemplate", "IdStruct", "Empty"),
				method("CreateFeature", "CreateFeatureRequest", "IdStruct"),
			},
		}},
	}
}

func messageType(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func scalarField(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func repeatedField(name string, num int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

func method(name, input, output string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(".templates." + input),
		OutputType: proto.String(".templates." + output),
	}
}
