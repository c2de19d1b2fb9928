package types_test

import (
	"testing"

	"cosmossdk.io/x/tx/signing"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"

	"github.com/multisig-factory/cosmos/testutil"
	"github.com/multisig-factory/cosmos/x/factory/types"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

func TestMsgCreateWallet_ServiceAndSigners(t *testing.T) {
	registry, err := codectypes.NewInterfaceRegistryWithOptions(codectypes.InterfaceRegistryOptions{
		ProtoFiles: proto.HybridResolver,
		SigningOptions: signing.Options{
			AddressCodec:          addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
			ValidatorAddressCodec: addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32ValidatorAddrPrefix()),
		},
	})
	require.NoError(t, err)
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	_, err = proto.HybridResolver.FindDescriptorByName("factory.v1.Msg.CreateWallet")
	require.NoError(t, err)
	_, err = registry.Resolve("/factory.v1.MsgCreateWallet")
	require.NoError(t, err)
	require.NoError(t, registry.SigningContext().Validate())

	addrs := testutil.Addrs(3)
	msg := types.NewMsgCreateWallet(addrs[0].String(), multisigtypes.OwnersToBech32(addrs[1:]), 2)

	signers, _, err := cdc.GetMsgV1Signers(msg)
	require.NoError(t, err)
	require.Equal(t, [][]byte{addrs[0].Bytes()}, signers)

	bz, err := cdc.Marshal(msg)
	require.NoError(t, err)
	var decoded types.MsgCreateWallet
	require.NoError(t, cdc.Unmarshal(bz, &decoded))
	require.Equal(t, *msg, decoded)

	resp := &types.MsgCreateWalletResponse{Wallet: addrs[2].String(), Index: 7}
	bz, err = cdc.Marshal(resp)
	require.NoError(t, err)
	var decodedResp types.MsgCreateWalletResponse
	require.NoError(t, cdc.Unmarshal(bz, &decodedResp))
	require.Equal(t, *resp, decodedResp)
}
