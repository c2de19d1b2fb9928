package factory

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	commontypes "github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/factory/keeper"
)

// GenesisState defines the factory module's genesis state.
type GenesisState struct {
	Deployed     []string                   `protobuf:"bytes,1,rep,name=deployed,proto3" json:"deployed"`
	WalletOwners []commontypes.WalletOwners `protobuf:"bytes,2,rep,name=wallet_owners,json=walletOwners,proto3" json:"wallet_owners"`
	OwnerWallets []commontypes.OwnerWallets `protobuf:"bytes,3,rep,name=owner_wallets,json=ownerWallets,proto3" json:"owner_wallets"`
}

// ProtoMessage implements proto.Message
func (gs *GenesisState) ProtoMessage() {}

// Reset implements proto.Message
func (gs *GenesisState) Reset() { *gs = GenesisState{} }

// String implements proto.Message
func (gs *GenesisState) String() string {
	return fmt.Sprintf("GenesisState{Deployed: %d, Owners: %d}", len(gs.Deployed), len(gs.OwnerWallets))
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Deployed:     []string{},
		WalletOwners: []commontypes.WalletOwners{},
		OwnerWallets: []commontypes.OwnerWallets{},
	}
}

// ValidateGenesis validates the factory genesis state. Every deployed wallet
// needs an owner snapshot, and every owner index entry must agree with it.
func ValidateGenesis(data *GenesisState) error {
	deployed := make(map[string]bool, len(data.Deployed))
	for i, wallet := range data.Deployed {
		if _, err := sdk.AccAddressFromBech32(wallet); err != nil {
			return fmt.Errorf("deployed wallet %d: %w", i, err)
		}
		if deployed[wallet] {
			return fmt.Errorf("deployed wallet %d: duplicate %s", i, wallet)
		}
		deployed[wallet] = true
	}

	owners := make(map[string]map[string]bool, len(data.WalletOwners))
	for _, wo := range data.WalletOwners {
		if !deployed[wo.Wallet] {
			return fmt.Errorf("owner snapshot for undeployed wallet %s", wo.Wallet)
		}
		if owners[wo.Wallet] != nil {
			return fmt.Errorf("duplicate owner snapshot for wallet %s", wo.Wallet)
		}
		if len(wo.Owners) == 0 {
			return fmt.Errorf("empty owner snapshot for wallet %s", wo.Wallet)
		}
		set := make(map[string]bool, len(wo.Owners))
		for _, owner := range wo.Owners {
			if _, err := sdk.AccAddressFromBech32(owner); err != nil {
				return fmt.Errorf("wallet %s: owner %q: %w", wo.Wallet, owner, err)
			}
			if set[owner] {
				return fmt.Errorf("wallet %s: duplicate owner %s", wo.Wallet, owner)
			}
			set[owner] = true
		}
		owners[wo.Wallet] = set
	}
	for wallet := range deployed {
		if owners[wallet] == nil {
			return fmt.Errorf("missing owner snapshot for wallet %s", wallet)
		}
	}

	indexed := make(map[string]map[string]bool)
	for _, ow := range data.OwnerWallets {
		if _, err := sdk.AccAddressFromBech32(ow.Owner); err != nil {
			return fmt.Errorf("owner index %q: %w", ow.Owner, err)
		}
		for _, wallet := range ow.Wallets {
			if !owners[wallet][ow.Owner] {
				return fmt.Errorf("owner %s indexed under wallet %s it does not own", ow.Owner, wallet)
			}
			if indexed[wallet] == nil {
				indexed[wallet] = make(map[string]bool)
			}
			indexed[wallet][ow.Owner] = true
		}
	}
	for wallet, set := range owners {
		for owner := range set {
			if !indexed[wallet][owner] {
				return fmt.Errorf("owner %s of wallet %s missing from owner index", owner, wallet)
			}
		}
	}

	return nil
}

// InitGenesis initializes the factory module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState *GenesisState) {
	k.ImportDeployed(ctx, genState.Deployed, genState.WalletOwners, genState.OwnerWallets)
}

// ExportGenesis returns the factory module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *GenesisState {
	return &GenesisState{
		Deployed:     k.ListDeployed(ctx),
		WalletOwners: k.GetAllWalletOwners(ctx),
		OwnerWallets: k.GetAllOwnerWallets(ctx),
	}
}
