package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgSubmitTransaction  = "submit_transaction"
	TypeMsgConfirmTransaction = "confirm_transaction"
	TypeMsgExecuteTransaction = "execute_transaction"
	TypeMsgDeposit            = "deposit"
)

var (
	_ sdk.Msg = &MsgSubmitTransaction{}
	_ sdk.Msg = &MsgConfirmTransaction{}
	_ sdk.Msg = &MsgExecuteTransaction{}
	_ sdk.Msg = &MsgDeposit{}
)

// MsgSubmitTransaction defines a message for proposing a transfer out of a wallet
type MsgSubmitTransaction struct {
	Owner  string   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	Wallet string   `protobuf:"bytes,2,opt,name=wallet,proto3" json:"wallet"`
	To     string   `protobuf:"bytes,3,opt,name=to,proto3" json:"to"`
	Value  math.Int `protobuf:"bytes,4,opt,name=value,proto3,customtype=cosmossdk.io/math.Int" json:"value"`
	Data   []byte   `protobuf:"bytes,5,opt,name=data,proto3" json:"data"`
}

// ProtoMessage implements proto.Message
func (msg *MsgSubmitTransaction) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSubmitTransaction) Reset() { *msg = MsgSubmitTransaction{} }

// String implements proto.Message
func (msg *MsgSubmitTransaction) String() string {
	return fmt.Sprintf("MsgSubmitTransaction{Owner: %s, Wallet: %s, To: %s}", msg.Owner, msg.Wallet, msg.To)
}

// XXX_MessageName gives the message a distinct type URL
func (*MsgSubmitTransaction) XXX_MessageName() string { return "multisig.v1.MsgSubmitTransaction" }

// NewMsgSubmitTransaction creates a new MsgSubmitTransaction instance
func NewMsgSubmitTransaction(owner, wallet, to string, value math.Int, data []byte) *MsgSubmitTransaction {
	return &MsgSubmitTransaction{
		Owner:  owner,
		Wallet: wallet,
		To:     to,
		Value:  value,
		Data:   data,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitTransaction) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSubmitTransaction) Type() string {
	return TypeMsgSubmitTransaction
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitTransaction) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitTransaction) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitTransaction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid wallet address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid destination address: %s", err)
	}

	if msg.Value.IsNil() || msg.Value.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "value cannot be negative")
	}

	return nil
}

// MsgConfirmTransaction defines a message for an owner's approval of a transaction
type MsgConfirmTransaction struct {
	Owner  string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	Wallet string `protobuf:"bytes,2,opt,name=wallet,proto3" json:"wallet"`
	Index  uint64 `protobuf:"varint,3,opt,name=index,proto3" json:"index"`
}

// ProtoMessage implements proto.Message
func (msg *MsgConfirmTransaction) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgConfirmTransaction) Reset() { *msg = MsgConfirmTransaction{} }

// String implements proto.Message
func (msg *MsgConfirmTransaction) String() string {
	return fmt.Sprintf("MsgConfirmTransaction{Owner: %s, Wallet: %s, Index: %d}", msg.Owner, msg.Wallet, msg.Index)
}

// XXX_MessageName gives the message a distinct type URL
func (*MsgConfirmTransaction) XXX_MessageName() string { return "multisig.v1.MsgConfirmTransaction" }

// NewMsgConfirmTransaction creates a new MsgConfirmTransaction instance
func NewMsgConfirmTransaction(owner, wallet string, index uint64) *MsgConfirmTransaction {
	return &MsgConfirmTransaction{
		Owner:  owner,
		Wallet: wallet,
		Index:  index,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgConfirmTransaction) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgConfirmTransaction) Type() string {
	return TypeMsgConfirmTransaction
}

// GetSigners implements the sdk.Msg interface
func (msg MsgConfirmTransaction) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgConfirmTransaction) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgConfirmTransaction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid wallet address: %s", err)
	}

	return nil
}

// MsgExecuteTransaction defines a message for executing a confirmed transaction
type MsgExecuteTransaction struct {
	Executor string `protobuf:"bytes,1,opt,name=executor,proto3" json:"executor"`
	Wallet   string `protobuf:"bytes,2,opt,name=wallet,proto3" json:"wallet"`
	Index    uint64 `protobuf:"varint,3,opt,name=index,proto3" json:"index"`
}

// ProtoMessage implements proto.Message
func (msg *MsgExecuteTransaction) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgExecuteTransaction) Reset() { *msg = MsgExecuteTransaction{} }

// String implements proto.Message
func (msg *MsgExecuteTransaction) String() string {
	return fmt.Sprintf("MsgExecuteTransaction{Executor: %s, Wallet: %s, Index: %d}", msg.Executor, msg.Wallet, msg.Index)
}

// XXX_MessageName gives the message a distinct type URL
func (*MsgExecuteTransaction) XXX_MessageName() string { return "multisig.v1.MsgExecuteTransaction" }

// NewMsgExecuteTransaction creates a new MsgExecuteTransaction instance
func NewMsgExecuteTransaction(executor, wallet string, index uint64) *MsgExecuteTransaction {
	return &MsgExecuteTransaction{
		Executor: executor,
		Wallet:   wallet,
		Index:    index,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgExecuteTransaction) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgExecuteTransaction) Type() string {
	return TypeMsgExecuteTransaction
}

// GetSigners implements the sdk.Msg interface
func (msg MsgExecuteTransaction) GetSigners() []sdk.AccAddress {
	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{executor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgExecuteTransaction) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgExecuteTransaction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Executor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid executor address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid wallet address: %s", err)
	}

	return nil
}

// MsgDeposit defines a message for funding a wallet
type MsgDeposit struct {
	Depositor string   `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor"`
	Wallet    string   `protobuf:"bytes,2,opt,name=wallet,proto3" json:"wallet"`
	Amount    math.Int `protobuf:"bytes,3,opt,name=amount,proto3,customtype=cosmossdk.io/math.Int" json:"amount"`
}

// ProtoMessage implements proto.Message
func (msg *MsgDeposit) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgDeposit) Reset() { *msg = MsgDeposit{} }

// String implements proto.Message
func (msg *MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{Depositor: %s, Wallet: %s}", msg.Depositor, msg.Wallet)
}

// XXX_MessageName gives the message a distinct type URL
func (*MsgDeposit) XXX_MessageName() string { return "multisig.v1.MsgDeposit" }

// NewMsgDeposit creates a new MsgDeposit instance
func NewMsgDeposit(depositor, wallet string, amount math.Int) *MsgDeposit {
	return &MsgDeposit{
		Depositor: depositor,
		Wallet:    wallet,
		Amount:    amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDeposit) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgDeposit) Type() string {
	return TypeMsgDeposit
}

// GetSigners implements the sdk.Msg interface
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeposit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid depositor address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Wallet); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid wallet address: %s", err)
	}

	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAmount, "amount cannot be negative")
	}

	return nil
}
