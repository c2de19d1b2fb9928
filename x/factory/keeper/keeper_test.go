package keeper_test

import (
	"errors"
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/multisig-factory/cosmos/testutil"
	"github.com/multisig-factory/cosmos/x/factory/keeper"
	"github.com/multisig-factory/cosmos/x/factory/types"
	multisigkeeper "github.com/multisig-factory/cosmos/x/multisig/keeper"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

var creator = sdk.AccAddress("wallet-creator-addr0")

func setupFactoryTestEnvironment(t *testing.T) (testutil.Env, *keeper.Keeper, *multisigkeeper.Keeper) {
	env := testutil.NewEnv(t, types.StoreKey, multisigtypes.StoreKey)
	msk := multisigkeeper.NewKeeper(env.Cdc, env.Keys[multisigtypes.StoreKey], env.Bank)
	k := keeper.NewKeeper(env.Cdc, env.Keys[types.StoreKey], msk)
	return env, k, msk
}

func TestCreateWallet_Success(t *testing.T) {
	env, k, msk := setupFactoryTestEnvironment(t)
	owners := testutil.Addrs(3)

	wallet, err := k.CreateWallet(env.Ctx, creator, owners, 2)
	require.NoError(t, err)
	require.Equal(t, keeper.DeriveWalletAddress(0), wallet)

	require.Equal(t, uint64(1), k.Count(env.Ctx))
	require.Equal(t, []string{wallet.String()}, k.ListDeployed(env.Ctx))
	deployed, found := k.DeployedAt(env.Ctx, 0)
	require.True(t, found)
	require.Equal(t, wallet.String(), deployed)

	require.Equal(t, multisigtypes.OwnersToBech32(owners), k.OwnersOf(env.Ctx, wallet))
	for _, owner := range owners {
		require.Equal(t, []string{wallet.String()}, k.WalletsOf(env.Ctx, owner))
		require.True(t, k.IsOwner(env.Ctx, wallet, owner))
	}

	w, found := msk.GetWallet(env.Ctx, wallet)
	require.True(t, found)
	require.Equal(t, uint64(2), w.Threshold)
	require.Equal(t, creator.String(), w.Creator)
	require.Equal(t, multisigtypes.OwnersToBech32(owners), w.Owners)

	var attrs map[string]string
	for _, event := range env.Ctx.EventManager().Events() {
		if event.Type == types.EventTypeWalletCreated {
			attrs = make(map[string]string)
			for _, attr := range event.Attributes {
				attrs[attr.Key] = attr.Value
			}
		}
	}
	require.NotNil(t, attrs)
	require.Equal(t, wallet.String(), attrs[types.AttributeKeyWallet])
	require.Equal(t, creator.String(), attrs[types.AttributeKeyCreator])
	require.Equal(t, strings.Join(multisigtypes.OwnersToBech32(owners), ","), attrs[types.AttributeKeyOwners])
	require.Equal(t, "2", attrs[types.AttributeKeyThreshold])
	require.Equal(t, "0", attrs[types.AttributeKeyIndex])
}

func TestCreateWallet_IndexesAcrossWallets(t *testing.T) {
	env, k, _ := setupFactoryTestEnvironment(t)
	addrs := testutil.Addrs(4)
	a, b, c, d := addrs[0], addrs[1], addrs[2], addrs[3]

	w1, err := k.CreateWallet(env.Ctx, creator, []sdk.AccAddress{a, b}, 1)
	require.NoError(t, err)
	w2, err := k.CreateWallet(env.Ctx, creator, []sdk.AccAddress{b, c}, 2)
	require.NoError(t, err)
	w3, err := k.CreateWallet(env.Ctx, creator, []sdk.AccAddress{a, b}, 2)
	require.NoError(t, err)

	require.NotEqual(t, w1, w2)
	require.NotEqual(t, w1, w3)
	require.Equal(t, keeper.DeriveWalletAddress(2), w3)
	require.Equal(t, uint64(3), k.Count(env.Ctx))
	require.Equal(t, []string{w1.String(), w2.String(), w3.String()}, k.ListDeployed(env.Ctx))

	require.Equal(t, []string{w1.String(), w3.String()}, k.WalletsOf(env.Ctx, a))
	require.Equal(t, []string{w1.String(), w2.String(), w3.String()}, k.WalletsOf(env.Ctx, b))
	require.Equal(t, []string{w2.String()}, k.WalletsOf(env.Ctx, c))

	// Unknown inputs yield empty results rather than errors
	require.Empty(t, k.WalletsOf(env.Ctx, d))
	require.Empty(t, k.OwnersOf(env.Ctx, d))
	require.False(t, k.IsOwner(env.Ctx, w2, a))
	require.False(t, k.IsOwner(env.Ctx, d, a))
	_, found := k.DeployedAt(env.Ctx, 3)
	require.False(t, found)
}

func TestCreateWallet_InvalidParams(t *testing.T) {
	owners := testutil.Addrs(3)

	tests := []struct {
		name      string
		creator   sdk.AccAddress
		owners    []sdk.AccAddress
		threshold uint64
		err       error
	}{
		{"empty creator", sdk.AccAddress{}, owners, 1, types.ErrInvalidCreator},
		{"no owners", creator, nil, 1, multisigtypes.ErrEmptyOwnerSet},
		{"empty owner", creator, []sdk.AccAddress{owners[0], {}}, 1, multisigtypes.ErrInvalidOwner},
		{"duplicate owner", creator, []sdk.AccAddress{owners[1], owners[1]}, 1, multisigtypes.ErrDuplicateOwner},
		{"zero threshold", creator, owners, 0, multisigtypes.ErrInvalidThreshold},
		{"threshold above owners", creator, owners, 4, multisigtypes.ErrInvalidThreshold},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, k, msk := setupFactoryTestEnvironment(t)

			_, err := k.CreateWallet(env.Ctx, tc.creator, tc.owners, tc.threshold)
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, uint64(0), k.Count(env.Ctx))
			require.Empty(t, k.ListDeployed(env.Ctx))
			require.False(t, msk.HasWallet(env.Ctx, keeper.DeriveWalletAddress(0)))
		})
	}
}

func TestCreateWallet_AddressTaken(t *testing.T) {
	env, k, msk := setupFactoryTestEnvironment(t)
	owners := testutil.Addrs(2)

	require.NoError(t, msk.InitWallet(env.Ctx, creator, keeper.DeriveWalletAddress(0), owners, 1))

	_, err := k.CreateWallet(env.Ctx, creator, owners, 1)
	require.ErrorIs(t, err, types.ErrWalletAddressTaken)
	require.Equal(t, uint64(0), k.Count(env.Ctx))
}

func TestCreateWallet_HookFailureRollsBack(t *testing.T) {
	env, k, msk := setupFactoryTestEnvironment(t)
	hooks := &testutil.HookRecorder{Err: errors.New("rejected")}
	k.SetHooks(hooks)
	owners := testutil.Addrs(2)

	_, err := k.CreateWallet(env.Ctx, creator, owners, 1)
	require.Error(t, err)
	require.Len(t, hooks.WalletsCreated, 1)

	require.Equal(t, uint64(0), k.Count(env.Ctx))
	require.Empty(t, k.WalletsOf(env.Ctx, owners[0]))
	require.False(t, msk.HasWallet(env.Ctx, keeper.DeriveWalletAddress(0)))

	hooks.Err = nil
	wallet, err := k.CreateWallet(env.Ctx, creator, owners, 1)
	require.NoError(t, err)
	require.Equal(t, keeper.DeriveWalletAddress(0), wallet)
	require.Equal(t, wallet.String(), hooks.WalletsCreated[1].Wallet)
	require.Equal(t, uint64(0), hooks.WalletsCreated[1].Index)
}

func TestDeriveWalletAddress(t *testing.T) {
	first := keeper.DeriveWalletAddress(0)
	require.Len(t, first, 20)
	require.Equal(t, first, keeper.DeriveWalletAddress(0))
	require.NotEqual(t, first, keeper.DeriveWalletAddress(1))
}

func TestCreatedWallet_FullLifecycle(t *testing.T) {
	env, k, msk := setupFactoryTestEnvironment(t)
	owners := testutil.Addrs(3)
	dest := sdk.AccAddress("destination-address")
	env.Bank.Fund(env.Ctx, owners[0], sdk.NewCoins(sdk.NewInt64Coin(multisigtypes.DefaultDenom, 100)))

	wallet, err := k.CreateWallet(env.Ctx, creator, owners, 2)
	require.NoError(t, err)

	balance, err := msk.Deposit(env.Ctx, owners[0], wallet, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, int64(100), balance.Int64())

	index, err := msk.SubmitTransaction(env.Ctx, owners[1], wallet, dest, math.NewInt(60), nil)
	require.NoError(t, err)
	require.NoError(t, msk.ConfirmTransaction(env.Ctx, owners[1], wallet, index))
	require.NoError(t, msk.ConfirmTransaction(env.Ctx, owners[2], wallet, index))
	require.NoError(t, msk.ExecuteTransaction(env.Ctx, owners[0], wallet, index))

	require.Equal(t, int64(40), msk.GetBalance(env.Ctx, wallet).Int64())
	require.Equal(t, int64(60), env.Bank.GetBalance(env.Ctx, dest, multisigtypes.DefaultDenom).Amount.Int64())
}

func TestProperty_RegistryIndexesEveryOwner(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("every created wallet is listed and indexed under each of its owners", prop.ForAll(
		func(params []testutil.WalletParams) bool {
			env, k, msk := setupFactoryTestEnvironment(t)

			for i, p := range params {
				wallet, err := k.CreateWallet(env.Ctx, creator, p.Owners, p.Threshold)
				if err != nil || !wallet.Equals(keeper.DeriveWalletAddress(uint64(i))) {
					return false
				}
				if msk.GetThreshold(env.Ctx, wallet) != p.Threshold {
					return false
				}
				for _, owner := range p.Owners {
					wallets := k.WalletsOf(env.Ctx, owner)
					if len(wallets) == 0 || wallets[len(wallets)-1] != wallet.String() {
						return false
					}
					if !k.IsOwner(env.Ctx, wallet, owner) {
						return false
					}
				}
			}

			return k.Count(env.Ctx) == uint64(len(params)) && len(k.ListDeployed(env.Ctx)) == len(params)
		},
		gen.SliceOfN(3, testutil.GenWalletParams(4)),
	))

	properties.TestingRun(t)
}

func TestMsgServer_CreateWallet(t *testing.T) {
	env, k, _ := setupFactoryTestEnvironment(t)
	msgServer := keeper.NewMsgServerImpl(*k)
	owners := multisigtypes.OwnersToBech32(testutil.Addrs(2))

	res, err := msgServer.CreateWallet(env.Ctx, types.NewMsgCreateWallet(creator.String(), owners, 2))
	require.NoError(t, err)
	require.Equal(t, keeper.DeriveWalletAddress(0).String(), res.Wallet)
	require.Equal(t, uint64(0), res.Index)

	res, err = msgServer.CreateWallet(env.Ctx, types.NewMsgCreateWallet(creator.String(), owners, 1))
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.Index)

	_, err = msgServer.CreateWallet(env.Ctx, types.NewMsgCreateWallet("bad", owners, 1))
	require.ErrorIs(t, err, types.ErrInvalidCreator)

	_, err = msgServer.CreateWallet(env.Ctx, types.NewMsgCreateWallet(creator.String(), []string{"bad"}, 1))
	require.ErrorIs(t, err, multisigtypes.ErrInvalidOwner)
}

func TestMsgCreateWallet_ValidateBasic(t *testing.T) {
	owners := multisigtypes.OwnersToBech32(testutil.Addrs(3))

	require.NoError(t, types.NewMsgCreateWallet(creator.String(), owners, 3).ValidateBasic())
	require.ErrorIs(t, types.NewMsgCreateWallet("", owners, 1).ValidateBasic(), types.ErrInvalidCreator)
	require.ErrorIs(t, types.NewMsgCreateWallet(creator.String(), nil, 1).ValidateBasic(), multisigtypes.ErrEmptyOwnerSet)
	require.ErrorIs(t, types.NewMsgCreateWallet(creator.String(), []string{owners[0], owners[0]}, 1).ValidateBasic(), multisigtypes.ErrDuplicateOwner)
	require.ErrorIs(t, types.NewMsgCreateWallet(creator.String(), owners, 4).ValidateBasic(), multisigtypes.ErrInvalidThreshold)
}
