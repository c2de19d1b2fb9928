package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"cosmossdk.io/x/tx/signing"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/multisig-factory/cosmos/testutil"
	"github.com/multisig-factory/cosmos/x/multisig/types"
)

func newCodec(t *testing.T) *codec.ProtoCodec {
	t.Helper()

	registry, err := codectypes.NewInterfaceRegistryWithOptions(codectypes.InterfaceRegistryOptions{
		ProtoFiles: proto.HybridResolver,
		SigningOptions: signing.Options{
			AddressCodec:          addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
			ValidatorAddressCodec: addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32ValidatorAddrPrefix()),
		},
	})
	require.NoError(t, err)
	types.RegisterInterfaces(registry)
	return codec.NewProtoCodec(registry)
}

func TestMsgService_DescriptorsResolve(t *testing.T) {
	for _, method := range []string{"SubmitTransaction", "ConfirmTransaction", "ExecuteTransaction", "Deposit"} {
		desc, err := proto.HybridResolver.FindDescriptorByName(protoreflect.FullName("multisig.v1.Msg." + method))
		require.NoError(t, err, method)
		require.NotNil(t, desc)

		require.NotNil(t, proto.MessageType("multisig.v1.Msg"+method), method)
		require.NotNil(t, proto.MessageType("multisig.v1.Msg"+method+"Response"), method)
	}
}

func TestMsgService_RegisteredInInterfaceRegistry(t *testing.T) {
	cdc := newCodec(t)
	registry := cdc.InterfaceRegistry()

	for _, url := range []string{
		"/multisig.v1.MsgSubmitTransaction",
		"/multisig.v1.MsgConfirmTransaction",
		"/multisig.v1.MsgExecuteTransaction",
		"/multisig.v1.MsgDeposit",
	} {
		msg, err := registry.Resolve(url)
		require.NoError(t, err, url)
		require.Equal(t, url, sdk.MsgTypeURL(msg))
	}

	require.NoError(t, registry.SigningContext().Validate())
}

func TestMsgService_SignersFromDescriptor(t *testing.T) {
	cdc := newCodec(t)
	addrs := testutil.Addrs(3)
	owner, wallet, executor := addrs[0], addrs[1], addrs[2]

	tests := []struct {
		name   string
		msg    sdk.Msg
		signer sdk.AccAddress
	}{
		{"submit", types.NewMsgSubmitTransaction(owner.String(), wallet.String(), executor.String(), math.NewInt(5), []byte{1}), owner},
		{"confirm", types.NewMsgConfirmTransaction(owner.String(), wallet.String(), 0), owner},
		{"execute", types.NewMsgExecuteTransaction(executor.String(), wallet.String(), 0), executor},
		{"deposit", types.NewMsgDeposit(executor.String(), wallet.String(), math.NewInt(5)), executor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signers, _, err := cdc.GetMsgV1Signers(tc.msg)
			require.NoError(t, err)
			require.Equal(t, [][]byte{tc.signer.Bytes()}, signers)
		})
	}
}

func TestMsgSubmitTransaction_BinaryRoundTrip(t *testing.T) {
	cdc := newCodec(t)
	addrs := testutil.Addrs(3)
	value, ok := math.NewIntFromString("123456789012345678901234567890")
	require.True(t, ok)

	msg := types.NewMsgSubmitTransaction(addrs[0].String(), addrs[1].String(), addrs[2].String(), value, []byte("memo"))
	bz, err := cdc.Marshal(msg)
	require.NoError(t, err)

	var decoded types.MsgSubmitTransaction
	require.NoError(t, cdc.Unmarshal(bz, &decoded))
	require.Equal(t, msg.Owner, decoded.Owner)
	require.Equal(t, msg.To, decoded.To)
	require.True(t, value.Equal(decoded.Value))
	require.Equal(t, msg.Data, decoded.Data)

	packed, err := codectypes.NewAnyWithValue(msg)
	require.NoError(t, err)
	var unpacked sdk.Msg
	require.NoError(t, cdc.UnpackAny(packed, &unpacked))
	require.Equal(t, msg.Wallet, unpacked.(*types.MsgSubmitTransaction).Wallet)
}

func TestMsgDescriptor_IndexesMatchFile(t *testing.T) {
	_, submit := (&types.MsgSubmitTransaction{}).Descriptor()
	_, submitResp := (&types.MsgSubmitTransactionResponse{}).Descriptor()
	_, deposit := (&types.MsgDeposit{}).Descriptor()
	_, depositResp := (&types.MsgDepositResponse{}).Descriptor()

	require.Equal(t, []int{0}, submit)
	require.Equal(t, []int{1}, submitResp)
	require.Equal(t, []int{6}, deposit)
	require.Equal(t, []int{7}, depositResp)
}
