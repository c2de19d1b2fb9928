package types

import (
	"context"
	"fmt"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"

	commontypes "github.com/multisig-factory/cosmos/types"
)

var txFile = commontypes.NewProtoFile("factory/v1/tx.proto", "factory.v1").
	Method("CreateWallet", "creator",
		[]commontypes.Field{
			{Name: "creator", Kind: commontypes.FieldString},
			{Name: "owners", Kind: commontypes.FieldString, Repeated: true},
			{Name: "threshold", Kind: commontypes.FieldUint64},
		},
		[]commontypes.Field{
			{Name: "wallet", Kind: commontypes.FieldString},
			{Name: "index", Kind: commontypes.FieldUint64},
		}).
	Register()

func init() {
	proto.RegisterType((*MsgCreateWallet)(nil), "factory.v1.MsgCreateWallet")
	proto.RegisterType((*MsgCreateWalletResponse)(nil), "factory.v1.MsgCreateWalletResponse")
}

func (*MsgCreateWallet) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgCreateWallet")
}

// MsgCreateWalletResponse defines the response for MsgCreateWallet
type MsgCreateWalletResponse struct {
	Wallet string `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet"`
	Index  uint64 `protobuf:"varint,2,opt,name=index,proto3" json:"index"`
}

func (m *MsgCreateWalletResponse) ProtoMessage() {}
func (m *MsgCreateWalletResponse) Reset()        { *m = MsgCreateWalletResponse{} }
func (m *MsgCreateWalletResponse) String() string {
	return fmt.Sprintf("MsgCreateWalletResponse{Wallet: %s, Index: %d}", m.Wallet, m.Index)
}
func (*MsgCreateWalletResponse) XXX_MessageName() string {
	return "factory.v1.MsgCreateWalletResponse"
}
func (*MsgCreateWalletResponse) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgCreateWalletResponse")
}

// MsgServer defines the msg service for the factory module
type MsgServer interface {
	CreateWallet(ctx context.Context, msg *MsgCreateWallet) (*MsgCreateWalletResponse, error)
}

// RegisterMsgServer registers srv as the handler of the factory Msg service
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_CreateWallet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreateWallet)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreateWallet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/factory.v1.Msg/CreateWallet",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreateWallet(ctx, req.(*MsgCreateWallet))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "factory.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateWallet",
			Handler:    _Msg_CreateWallet_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "factory/v1/tx.proto",
}
