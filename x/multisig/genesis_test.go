package multisig_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/multisig-factory/cosmos/testutil"
	"github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/multisig"
	"github.com/multisig-factory/cosmos/x/multisig/keeper"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

func newKeeper(t *testing.T) (testutil.Env, keeper.Keeper) {
	env := testutil.NewEnv(t, multisigtypes.StoreKey)
	return env, *keeper.NewKeeper(env.Cdc, env.Keys[multisigtypes.StoreKey], env.Bank)
}

func TestGenesis_ExportImportRoundTrip(t *testing.T) {
	env, k := newKeeper(t)
	owners := testutil.Addrs(3)
	wallet := sdk.AccAddress("test-wallet-address0")

	require.NoError(t, k.SetParams(env.Ctx, multisigtypes.Params{Denom: "uatom"}))
	require.NoError(t, k.InitWallet(env.Ctx, owners[0], wallet, owners, 2))
	env.Bank.Fund(env.Ctx, wallet, sdk.NewCoins(sdk.NewInt64Coin("uatom", 10)))

	_, err := k.SubmitTransaction(env.Ctx, owners[0], wallet, owners[1], math.NewInt(4), []byte("memo"))
	require.NoError(t, err)
	_, err = k.SubmitTransaction(env.Ctx, owners[1], wallet, owners[2], math.NewInt(1), nil)
	require.NoError(t, err)
	require.NoError(t, k.ConfirmTransaction(env.Ctx, owners[0], wallet, 0))
	require.NoError(t, k.ConfirmTransaction(env.Ctx, owners[2], wallet, 0))
	require.NoError(t, k.ExecuteTransaction(env.Ctx, owners[0], wallet, 0))
	require.NoError(t, k.ConfirmTransaction(env.Ctx, owners[1], wallet, 1))

	exported := multisig.ExportGenesis(env.Ctx, k)
	require.NoError(t, multisig.ValidateGenesis(exported))
	require.Len(t, exported.Wallets, 1)
	require.Len(t, exported.Transactions, 2)

	imported, k2 := newKeeper(t)
	multisig.InitGenesis(imported.Ctx, k2, exported)

	require.Equal(t, exported, multisig.ExportGenesis(imported.Ctx, k2))
	require.Equal(t, "uatom", k2.GetParams(imported.Ctx).Denom)
	require.Equal(t, uint64(2), k2.GetTransactionCount(imported.Ctx, wallet))
	require.True(t, k2.IsConfirmed(imported.Ctx, wallet, 1, owners[1]))

	// The imported pending transaction carries on from where it left off
	imported.Bank.Fund(imported.Ctx, wallet, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1)))
	require.NoError(t, k2.ConfirmTransaction(imported.Ctx, owners[2], wallet, 1))
	require.NoError(t, k2.ExecuteTransaction(imported.Ctx, owners[2], wallet, 1))
}

func TestValidateGenesis(t *testing.T) {
	owners := multisigtypes.OwnersToBech32(testutil.Addrs(2))
	wallet := sdk.AccAddress("test-wallet-address0").String()

	valid := func() *multisig.GenesisState {
		gs := multisig.DefaultGenesisState()
		gs.Wallets = []types.Wallet{{Address: wallet, Owners: owners, Threshold: 2, TransactionCount: 1}}
		gs.Transactions = []types.Transaction{{
			Wallet:        wallet,
			Index:         0,
			To:            owners[0],
			Value:         math.NewInt(1),
			Confirmations: []string{owners[1]},
		}}
		return gs
	}

	require.NoError(t, multisig.ValidateGenesis(multisig.DefaultGenesisState()))
	require.NoError(t, multisig.ValidateGenesis(valid()))

	tests := []struct {
		name   string
		mutate func(gs *multisig.GenesisState)
	}{
		{"bad denom", func(gs *multisig.GenesisState) { gs.Params.Denom = "" }},
		{"threshold above owners", func(gs *multisig.GenesisState) { gs.Wallets[0].Threshold = 3 }},
		{"duplicate owner", func(gs *multisig.GenesisState) { gs.Wallets[0].Owners = []string{owners[0], owners[0]} }},
		{"duplicate wallet", func(gs *multisig.GenesisState) { gs.Wallets = append(gs.Wallets, gs.Wallets[0]) }},
		{"unknown wallet", func(gs *multisig.GenesisState) { gs.Transactions[0].Wallet = owners[0] }},
		{"index out of range", func(gs *multisig.GenesisState) { gs.Transactions[0].Index = 1 }},
		{"missing transaction", func(gs *multisig.GenesisState) { gs.Transactions = nil }},
		{"negative value", func(gs *multisig.GenesisState) { gs.Transactions[0].Value = math.NewInt(-1) }},
		{"non-owner confirmation", func(gs *multisig.GenesisState) { gs.Transactions[0].Confirmations = []string{wallet} }},
		{"duplicate confirmation", func(gs *multisig.GenesisState) {
			gs.Transactions[0].Confirmations = []string{owners[0], owners[0]}
		}},
		{"executed below threshold", func(gs *multisig.GenesisState) { gs.Transactions[0].Executed = true }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := valid()
			tc.mutate(gs)
			require.Error(t, multisig.ValidateGenesis(gs))
		})
	}
}
