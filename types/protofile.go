package types

import (
	"bytes"
	"compress/gzip"
	"fmt"

	msgv1 "cosmossdk.io/api/cosmos/msg/v1"
	gogoproto "github.com/cosmos/gogoproto/proto"
	protov2 "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Field kinds used by module messages
const (
	FieldString = descriptorpb.FieldDescriptorProto_TYPE_STRING
	FieldBytes  = descriptorpb.FieldDescriptorProto_TYPE_BYTES
	FieldUint64 = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	FieldBool   = descriptorpb.FieldDescriptorProto_TYPE_BOOL
)

// Field describes one message field. Fields are numbered from 1 in the order
// given, which must match the protobuf struct tags of the Go type.
type Field struct {
	Name     string
	Kind     descriptorpb.FieldDescriptorProto_Type
	Repeated bool
}

// ProtoFile assembles the descriptor of a module's tx.proto: request and
// response messages plus the Msg service joining them. The result is
// registered with gogoproto so the msg service router, the interface registry
// and the signing context resolve module messages like generated ones.
type ProtoFile struct {
	fd      *descriptorpb.FileDescriptorProto
	indexes map[string]int
	gzipped []byte
}

// NewProtoFile starts the descriptor for the file at path in package pkg
func NewProtoFile(path, pkg string) *ProtoFile {
	serviceOpts := &descriptorpb.ServiceOptions{}
	protov2.SetExtension(serviceOpts, msgv1.E_Service, true)

	return &ProtoFile{
		fd: &descriptorpb.FileDescriptorProto{
			Name:       protov2.String(path),
			Package:    protov2.String(pkg),
			Syntax:     protov2.String("proto3"),
			Dependency: []string{"cosmos/msg/v1/msg.proto"},
			Service: []*descriptorpb.ServiceDescriptorProto{{
				Name:    protov2.String("Msg"),
				Options: serviceOpts,
			}},
		},
		indexes: make(map[string]int),
	}
}

// Method adds Msg<method> signed by the signer field, Msg<method>Response and
// the service method between them
func (f *ProtoFile) Method(method, signer string, request, response []Field) *ProtoFile {
	reqName := "Msg" + method
	respName := reqName + "Response"

	reqOpts := &descriptorpb.MessageOptions{}
	protov2.SetExtension(reqOpts, msgv1.E_Signer, []string{signer})

	f.addMessage(reqName, request, reqOpts)
	f.addMessage(respName, response, nil)

	svc := f.fd.Service[0]
	svc.Method = append(svc.Method, &descriptorpb.MethodDescriptorProto{
		Name:       protov2.String(method),
		InputType:  protov2.String(f.qualified(reqName)),
		OutputType: protov2.String(f.qualified(respName)),
	})
	return f
}

// Register compresses the descriptor and records it with gogoproto under the
// file path. It must be called once, before the file is used.
func (f *ProtoFile) Register() *ProtoFile {
	bz, err := protov2.Marshal(f.fd)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(bz); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}

	f.gzipped = buf.Bytes()
	gogoproto.RegisterFile(f.fd.GetName(), f.gzipped)
	return f
}

// Path returns the file path, used as the service descriptor metadata
func (f *ProtoFile) Path() string {
	return f.fd.GetName()
}

// FullName returns the package-qualified name of a message or service
func (f *ProtoFile) FullName(name string) string {
	return f.fd.GetPackage() + "." + name
}

// Descriptor returns the compressed file descriptor and the index path of the
// named message, in the shape gogoproto messages expose through Descriptor()
func (f *ProtoFile) Descriptor(message string) ([]byte, []int) {
	i, ok := f.indexes[message]
	if !ok {
		panic(fmt.Sprintf("message %s is not declared in %s", message, f.fd.GetName()))
	}
	return f.gzipped, []int{i}
}

func (f *ProtoFile) addMessage(name string, fields []Field, opts *descriptorpb.MessageOptions) {
	msg := &descriptorpb.DescriptorProto{
		Name:    protov2.String(name),
		Options: opts,
	}
	for i, field := range fields {
		label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
		if field.Repeated {
			label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
		}
		msg.Field = append(msg.Field, &descriptorpb.FieldDescriptorProto{
			Name:     protov2.String(field.Name),
			JsonName: protov2.String(field.Name),
			Number:   protov2.Int32(int32(i + 1)),
			Label:    label.Enum(),
			Type:     field.Kind.Enum(),
		})
	}

	f.indexes[name] = len(f.fd.MessageType)
	f.fd.MessageType = append(f.fd.MessageType, msg)
}

func (f *ProtoFile) qualified(name string) string {
	return "." + f.FullName(name)
}
