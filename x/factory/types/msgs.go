package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

const (
	TypeMsgCreateWallet = "create_wallet"
)

var _ sdk.Msg = &MsgCreateWallet{}

// MsgCreateWallet defines a message for deploying a new multisig wallet
type MsgCreateWallet struct {
	Creator   string   `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator"`
	Owners    []string `protobuf:"bytes,2,rep,name=owners,proto3" json:"owners"`
	Threshold uint64   `protobuf:"varint,3,opt,name=threshold,proto3" json:"threshold"`
}

// ProtoMessage implements proto.Message
func (msg *MsgCreateWallet) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreateWallet) Reset() { *msg = MsgCreateWallet{} }

// String implements proto.Message
func (msg *MsgCreateWallet) String() string {
	return fmt.Sprintf("MsgCreateWallet{Creator: %s, Owners: %d, Threshold: %d}", msg.Creator, len(msg.Owners), msg.Threshold)
}

// XXX_MessageName gives the message a distinct type URL
func (*MsgCreateWallet) XXX_MessageName() string { return "factory.v1.MsgCreateWallet" }

// NewMsgCreateWallet creates a new MsgCreateWallet instance
func NewMsgCreateWallet(creator string, owners []string, threshold uint64) *MsgCreateWallet {
	return &MsgCreateWallet{
		Creator:   creator,
		Owners:    owners,
		Threshold: threshold,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreateWallet) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreateWallet) Type() string {
	return TypeMsgCreateWallet
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreateWallet) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreateWallet) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreateWallet) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidCreator, "invalid creator address: %s", err)
	}

	owners, err := multisigtypes.OwnersFromBech32(msg.Owners)
	if err != nil {
		return err
	}

	return multisigtypes.ValidateWalletParams(owners, msg.Threshold)
}
