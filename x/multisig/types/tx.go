package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/grpc"

	commontypes "github.com/multisig-factory/cosmos/types"
)

// txFile describes multisig/v1/tx.proto. Field order follows the protobuf tags
// of the message structs.
var txFile = commontypes.NewProtoFile("multisig/v1/tx.proto", "multisig.v1").
	Method("SubmitTransaction", "owner",
		[]commontypes.Field{
			{Name: "owner", Kind: commontypes.FieldString},
			{Name: "wallet", Kind: commontypes.FieldString},
			{Name: "to", Kind: commontypes.FieldString},
			{Name: "value", Kind: commontypes.FieldString},
			{Name: "data", Kind: commontypes.FieldBytes},
		},
		[]commontypes.Field{
			{Name: "index", Kind: commontypes.FieldUint64},
		}).
	Method("ConfirmTransaction", "owner",
		[]commontypes.Field{
			{Name: "owner", Kind: commontypes.FieldString},
			{Name: "wallet", Kind: commontypes.FieldString},
			{Name: "index", Kind: commontypes.FieldUint64},
		},
		[]commontypes.Field{
			{Name: "confirmations", Kind: commontypes.FieldUint64},
			{Name: "threshold_met", Kind: commontypes.FieldBool},
		}).
	Method("ExecuteTransaction", "executor",
		[]commontypes.Field{
			{Name: "executor", Kind: commontypes.FieldString},
			{Name: "wallet", Kind: commontypes.FieldString},
			{Name: "index", Kind: commontypes.FieldUint64},
		},
		[]commontypes.Field{
			{Name: "balance", Kind: commontypes.FieldString},
		}).
	Method("Deposit", "depositor",
		[]commontypes.Field{
			{Name: "depositor", Kind: commontypes.FieldString},
			{Name: "wallet", Kind: commontypes.FieldString},
			{Name: "amount", Kind: commontypes.FieldString},
		},
		[]commontypes.Field{
			{Name: "balance", Kind: commontypes.FieldString},
		}).
	Register()

func init() {
	proto.RegisterType((*MsgSubmitTransaction)(nil), "multisig.v1.MsgSubmitTransaction")
	proto.RegisterType((*MsgSubmitTransactionResponse)(nil), "multisig.v1.MsgSubmitTransactionResponse")
	proto.RegisterType((*MsgConfirmTransaction)(nil), "multisig.v1.MsgConfirmTransaction")
	proto.RegisterType((*MsgConfirmTransactionResponse)(nil), "multisig.v1.MsgConfirmTransactionResponse")
	proto.RegisterType((*MsgExecuteTransaction)(nil), "multisig.v1.MsgExecuteTransaction")
	proto.RegisterType((*MsgExecuteTransactionResponse)(nil), "multisig.v1.MsgExecuteTransactionResponse")
	proto.RegisterType((*MsgDeposit)(nil), "multisig.v1.MsgDeposit")
	proto.RegisterType((*MsgDepositResponse)(nil), "multisig.v1.MsgDepositResponse")
}

func (*MsgSubmitTransaction) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgSubmitTransaction")
}

func (*MsgConfirmTransaction) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgConfirmTransaction")
}

func (*MsgExecuteTransaction) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgExecuteTransaction")
}

func (*MsgDeposit) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgDeposit")
}

// MsgSubmitTransactionResponse defines the response for MsgSubmitTransaction
type MsgSubmitTransactionResponse struct {
	Index uint64 `protobuf:"varint,1,opt,name=index,proto3" json:"index"`
}

func (m *MsgSubmitTransactionResponse) ProtoMessage()  {}
func (m *MsgSubmitTransactionResponse) Reset()         { *m = MsgSubmitTransactionResponse{} }
func (m *MsgSubmitTransactionResponse) String() string { return fmt.Sprintf("MsgSubmitTransactionResponse{Index: %d}", m.Index) }
func (*MsgSubmitTransactionResponse) XXX_MessageName() string {
	return "multisig.v1.MsgSubmitTransactionResponse"
}
func (*MsgSubmitTransactionResponse) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgSubmitTransactionResponse")
}

// MsgConfirmTransactionResponse defines the response for MsgConfirmTransaction
type MsgConfirmTransactionResponse struct {
	Confirmations uint64 `protobuf:"varint,1,opt,name=confirmations,proto3" json:"confirmations"`
	ThresholdMet  bool   `protobuf:"varint,2,opt,name=threshold_met,json=thresholdMet,proto3" json:"threshold_met"`
}

func (m *MsgConfirmTransactionResponse) ProtoMessage() {}
func (m *MsgConfirmTransactionResponse) Reset()        { *m = MsgConfirmTransactionResponse{} }
func (m *MsgConfirmTransactionResponse) String() string {
	return fmt.Sprintf("MsgConfirmTransactionResponse{Confirmations: %d, ThresholdMet: %t}", m.Confirmations, m.ThresholdMet)
}
func (*MsgConfirmTransactionResponse) XXX_MessageName() string {
	return "multisig.v1.MsgConfirmTransactionResponse"
}
func (*MsgConfirmTransactionResponse) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgConfirmTransactionResponse")
}

// MsgExecuteTransactionResponse defines the response for MsgExecuteTransaction
type MsgExecuteTransactionResponse struct {
	Balance math.Int `protobuf:"bytes,1,opt,name=balance,proto3,customtype=cosmossdk.io/math.Int" json:"balance"`
}

func (m *MsgExecuteTransactionResponse) ProtoMessage() {}
func (m *MsgExecuteTransactionResponse) Reset()        { *m = MsgExecuteTransactionResponse{} }
func (m *MsgExecuteTransactionResponse) String() string {
	return fmt.Sprintf("MsgExecuteTransactionResponse{Balance: %s}", m.Balance)
}
func (*MsgExecuteTransactionResponse) XXX_MessageName() string {
	return "multisig.v1.MsgExecuteTransactionResponse"
}
func (*MsgExecuteTransactionResponse) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgExecuteTransactionResponse")
}

// MsgDepositResponse defines the response for MsgDeposit
type MsgDepositResponse struct {
	Balance math.Int `protobuf:"bytes,1,opt,name=balance,proto3,customtype=cosmossdk.io/math.Int" json:"balance"`
}

func (m *MsgDepositResponse) ProtoMessage()  {}
func (m *MsgDepositResponse) Reset()         { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string { return fmt.Sprintf("MsgDepositResponse{Balance: %s}", m.Balance) }
func (*MsgDepositResponse) XXX_MessageName() string {
	return "multisig.v1.MsgDepositResponse"
}
func (*MsgDepositResponse) Descriptor() ([]byte, []int) {
	return txFile.Descriptor("MsgDepositResponse")
}

// MsgServer defines the msg service for the multisig module
type MsgServer interface {
	SubmitTransaction(ctx context.Context, msg *MsgSubmitTransaction) (*MsgSubmitTransactionResponse, error)
	ConfirmTransaction(ctx context.Context, msg *MsgConfirmTransaction) (*MsgConfirmTransactionResponse, error)
	ExecuteTransaction(ctx context.Context, msg *MsgExecuteTransaction) (*MsgExecuteTransactionResponse, error)
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
}

// RegisterMsgServer registers srv as the handler of the multisig Msg service
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_SubmitTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSubmitTransaction)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SubmitTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/multisig.v1.Msg/SubmitTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SubmitTransaction(ctx, req.(*MsgSubmitTransaction))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ConfirmTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgConfirmTransaction)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ConfirmTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/multisig.v1.Msg/ConfirmTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ConfirmTransaction(ctx, req.(*MsgConfirmTransaction))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ExecuteTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgExecuteTransaction)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ExecuteTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/multisig.v1.Msg/ExecuteTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ExecuteTransaction(ctx, req.(*MsgExecuteTransaction))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDeposit)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/multisig.v1.Msg/Deposit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Deposit(ctx, req.(*MsgDeposit))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "multisig.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitTransaction",
			Handler:    _Msg_SubmitTransaction_Handler,
		},
		{
			MethodName: "ConfirmTransaction",
			Handler:    _Msg_ConfirmTransaction_Handler,
		},
		{
			MethodName: "ExecuteTransaction",
			Handler:    _Msg_ExecuteTransaction_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _Msg_Deposit_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "multisig/v1/tx.proto",
}
