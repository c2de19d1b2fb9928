package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterCodec registers the necessary x/multisig interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitTransaction{}, "multisig/MsgSubmitTransaction", nil)
	cdc.RegisterConcrete(&MsgConfirmTransaction{}, "multisig/MsgConfirmTransaction", nil)
	cdc.RegisterConcrete(&MsgExecuteTransaction{}, "multisig/MsgExecuteTransaction", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "multisig/MsgDeposit", nil)
}

// RegisterInterfaces registers the x/multisig interfaces types with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitTransaction{},
		&MsgConfirmTransaction{},
		&MsgExecuteTransaction{},
		&MsgDeposit{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

var (
	Amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterCodec(Amino)
	Amino.Seal()
}
