package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

// RegisterInvariants registers all multisig invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(multisigtypes.ModuleName, "transaction-log", TransactionLogInvariant(k))
	ir.RegisterRoute(multisigtypes.ModuleName, "confirmations", ConfirmationsInvariant(k))
}

// AllInvariants runs all invariants of the multisig module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := TransactionLogInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ConfirmationsInvariant(k)(ctx)
	}
}

// TransactionLogInvariant checks every wallet's log is dense: indices run from
// zero to TransactionCount-1 with no gaps
func TransactionLogInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)

		for _, w := range k.GetAllWallets(ctx) {
			txs := k.GetWalletTransactions(ctx, sdk.MustAccAddressFromBech32(w.Address))
			if uint64(len(txs)) != w.TransactionCount {
				broken = true
				msg += fmt.Sprintf("\twallet %s holds %d transactions, count is %d\n", w.Address, len(txs), w.TransactionCount)
				continue
			}
			for i, tx := range txs {
				if tx.Index != uint64(i) {
					broken = true
					msg += fmt.Sprintf("\twallet %s has transaction %d at position %d\n", w.Address, tx.Index, i)
				}
			}
		}

		return sdk.FormatInvariant(multisigtypes.ModuleName, "transaction-log",
			fmt.Sprintf("wallet transaction logs are dense\n%s", msg)), broken
	}
}

// ConfirmationsInvariant checks confirmations come from distinct owners and
// executed transactions met the threshold
func ConfirmationsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)

		for _, w := range k.GetAllWallets(ctx) {
			for _, tx := range k.GetWalletTransactions(ctx, sdk.MustAccAddressFromBech32(w.Address)) {
				seen := make(map[string]bool, len(tx.Confirmations))
				for _, owner := range tx.Confirmations {
					if !w.HasOwner(owner) || seen[owner] {
						broken = true
						msg += fmt.Sprintf("\twallet %s transaction %d has invalid confirmation %s\n", w.Address, tx.Index, owner)
					}
					seen[owner] = true
				}
				if tx.Executed && tx.NumConfirmations() < w.Threshold {
					broken = true
					msg += fmt.Sprintf("\twallet %s transaction %d executed below threshold\n", w.Address, tx.Index)
				}
			}
		}

		return sdk.FormatInvariant(multisigtypes.ModuleName, "confirmations",
			fmt.Sprintf("confirmations are distinct owners\n%s", msg)), broken
	}
}
