package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MultisigKeeper defines the expected multisig keeper interface
type MultisigKeeper interface {
	InitWallet(ctx sdk.Context, creator, wallet sdk.AccAddress, owners []sdk.AccAddress, threshold uint64) error
	HasWallet(ctx sdk.Context, wallet sdk.AccAddress) bool
}
