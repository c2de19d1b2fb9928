package factory_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/multisig-factory/cosmos/testutil"
	commontypes "github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/factory"
	"github.com/multisig-factory/cosmos/x/factory/keeper"
	"github.com/multisig-factory/cosmos/x/factory/types"
	multisigkeeper "github.com/multisig-factory/cosmos/x/multisig/keeper"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

func newKeeper(t *testing.T) (testutil.Env, keeper.Keeper) {
	env := testutil.NewEnv(t, types.StoreKey, multisigtypes.StoreKey)
	msk := multisigkeeper.NewKeeper(env.Cdc, env.Keys[multisigtypes.StoreKey], env.Bank)
	return env, *keeper.NewKeeper(env.Cdc, env.Keys[types.StoreKey], msk)
}

func TestGenesis_ExportImportRoundTrip(t *testing.T) {
	env, k := newKeeper(t)
	creator := sdk.AccAddress("wallet-creator-addr0")
	addrs := testutil.Addrs(3)

	w1, err := k.CreateWallet(env.Ctx, creator, addrs[:2], 1)
	require.NoError(t, err)
	w2, err := k.CreateWallet(env.Ctx, creator, addrs[1:], 2)
	require.NoError(t, err)

	exported := factory.ExportGenesis(env.Ctx, k)
	require.NoError(t, factory.ValidateGenesis(exported))
	require.Equal(t, []string{w1.String(), w2.String()}, exported.Deployed)

	imported, k2 := newKeeper(t)
	factory.InitGenesis(imported.Ctx, k2, exported)

	require.Equal(t, exported, factory.ExportGenesis(imported.Ctx, k2))
	require.Equal(t, uint64(2), k2.Count(imported.Ctx))
	require.Equal(t, []string{w1.String(), w2.String()}, k2.WalletsOf(imported.Ctx, addrs[1]))
	require.True(t, k2.IsOwner(imported.Ctx, w2, addrs[2]))
}

func TestValidateGenesis(t *testing.T) {
	owners := multisigtypes.OwnersToBech32(testutil.Addrs(2))
	wallet := keeper.DeriveWalletAddress(0).String()

	valid := func() *factory.GenesisState {
		return &factory.GenesisState{
			Deployed:     []string{wallet},
			WalletOwners: []commontypes.WalletOwners{{Wallet: wallet, Owners: owners}},
			OwnerWallets: []commontypes.OwnerWallets{
				{Owner: owners[0], Wallets: []string{wallet}},
				{Owner: owners[1], Wallets: []string{wallet}},
			},
		}
	}

	require.NoError(t, factory.ValidateGenesis(factory.DefaultGenesisState()))
	require.NoError(t, factory.ValidateGenesis(valid()))

	tests := []struct {
		name   string
		mutate func(gs *factory.GenesisState)
	}{
		{"bad deployed address", func(gs *factory.GenesisState) { gs.Deployed[0] = "bad" }},
		{"duplicate deployed", func(gs *factory.GenesisState) { gs.Deployed = append(gs.Deployed, wallet) }},
		{"missing snapshot", func(gs *factory.GenesisState) { gs.WalletOwners = nil }},
		{"snapshot for undeployed wallet", func(gs *factory.GenesisState) { gs.WalletOwners[0].Wallet = owners[0] }},
		{"empty snapshot", func(gs *factory.GenesisState) { gs.WalletOwners[0].Owners = nil }},
		{"duplicate owner in snapshot", func(gs *factory.GenesisState) {
			gs.WalletOwners[0].Owners = []string{owners[0], owners[0]}
			gs.OwnerWallets = gs.OwnerWallets[:1]
		}},
		{"owner missing from index", func(gs *factory.GenesisState) { gs.OwnerWallets = gs.OwnerWallets[:1] }},
		{"index entry for non-owner", func(gs *factory.GenesisState) {
			gs.OwnerWallets = append(gs.OwnerWallets, commontypes.OwnerWallets{Owner: wallet, Wallets: []string{wallet}})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := valid()
			tc.mutate(gs)
			require.Error(t, factory.ValidateGenesis(gs))
		})
	}
}
