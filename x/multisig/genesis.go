package multisig

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/multisig/keeper"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

// GenesisState defines the multisig module's genesis state.
type GenesisState struct {
	Params       multisigtypes.Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
	Wallets      []types.Wallet       `protobuf:"bytes,2,rep,name=wallets,proto3" json:"wallets"`
	Transactions []types.Transaction  `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions"`
}

// ProtoMessage implements proto.Message
func (gs *GenesisState) ProtoMessage() {}

// Reset implements proto.Message
func (gs *GenesisState) Reset() { *gs = GenesisState{} }

// String implements proto.Message
func (gs *GenesisState) String() string {
	return fmt.Sprintf("GenesisState{Wallets: %d, Transactions: %d}", len(gs.Wallets), len(gs.Transactions))
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:       multisigtypes.DefaultParams(),
		Wallets:      []types.Wallet{},
		Transactions: []types.Transaction{},
	}
}

// ValidateGenesis validates the multisig genesis parameters
func ValidateGenesis(data *GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}

	wallets := make(map[string]types.Wallet, len(data.Wallets))
	for i, w := range data.Wallets {
		if _, err := sdk.AccAddressFromBech32(w.Address); err != nil {
			return fmt.Errorf("wallet %d: invalid address: %w", i, err)
		}
		if _, dup := wallets[w.Address]; dup {
			return fmt.Errorf("wallet %d: duplicate address %s", i, w.Address)
		}

		owners, err := multisigtypes.OwnersFromBech32(w.Owners)
		if err != nil {
			return fmt.Errorf("wallet %s: %w", w.Address, err)
		}
		if err := multisigtypes.ValidateWalletParams(owners, w.Threshold); err != nil {
			return fmt.Errorf("wallet %s: %w", w.Address, err)
		}
		wallets[w.Address] = w
	}

	// Every wallet's log must hold exactly the indices [0, TransactionCount)
	seen := make(map[string]map[uint64]bool)
	for i, tx := range data.Transactions {
		w, found := wallets[tx.Wallet]
		if !found {
			return fmt.Errorf("transaction %d: unknown wallet %s", i, tx.Wallet)
		}
		if tx.Index >= w.TransactionCount {
			return fmt.Errorf("transaction %d: index %d out of range for wallet %s", i, tx.Index, tx.Wallet)
		}
		if seen[tx.Wallet] == nil {
			seen[tx.Wallet] = make(map[uint64]bool)
		}
		if seen[tx.Wallet][tx.Index] {
			return fmt.Errorf("transaction %d: duplicate index %d for wallet %s", i, tx.Index, tx.Wallet)
		}
		seen[tx.Wallet][tx.Index] = true

		if _, err := sdk.AccAddressFromBech32(tx.To); err != nil {
			return fmt.Errorf("transaction %d: invalid destination: %w", i, err)
		}
		if tx.Value.IsNil() || tx.Value.IsNegative() {
			return fmt.Errorf("transaction %d: value must not be negative", i)
		}

		confirmed := make(map[string]bool, len(tx.Confirmations))
		for _, owner := range tx.Confirmations {
			if !w.HasOwner(owner) {
				return fmt.Errorf("transaction %d: confirmation by non-owner %s", i, owner)
			}
			if confirmed[owner] {
				return fmt.Errorf("transaction %d: duplicate confirmation by %s", i, owner)
			}
			confirmed[owner] = true
		}
		if tx.Executed && tx.NumConfirmations() < w.Threshold {
			return fmt.Errorf("transaction %d: executed with %d of %d confirmations", i, tx.NumConfirmations(), w.Threshold)
		}
	}

	for addr, w := range wallets {
		if uint64(len(seen[addr])) != w.TransactionCount {
			return fmt.Errorf("wallet %s: expected %d transactions, found %d", addr, w.TransactionCount, len(seen[addr]))
		}
	}

	return nil
}

// InitGenesis initializes the multisig module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState *GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set multisig params: %v", err))
	}

	for _, w := range genState.Wallets {
		k.SetWallet(ctx, w)
	}

	for _, tx := range genState.Transactions {
		k.SetTransaction(ctx, sdk.MustAccAddressFromBech32(tx.Wallet), tx)
	}
}

// ExportGenesis returns the multisig module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *GenesisState {
	return &GenesisState{
		Params:       k.GetParams(ctx),
		Wallets:      k.GetAllWallets(ctx),
		Transactions: k.GetAllTransactions(ctx),
	}
}
