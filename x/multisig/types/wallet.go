package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ValidateWalletParams checks a wallet's construction parameters. The checks
// run in a fixed order so each bad input maps to exactly one error: an empty
// owner set, then every owner in turn for a malformed address or a repeat,
// then the threshold bounds.
func ValidateWalletParams(owners []sdk.AccAddress, threshold uint64) error {
	if len(owners) == 0 {
		return ErrEmptyOwnerSet
	}

	seen := make(map[string]struct{}, len(owners))
	for i, owner := range owners {
		if err := sdk.VerifyAddressFormat(owner); err != nil {
			return errorsmod.Wrapf(ErrInvalidOwner, "owner %d: %s", i, err)
		}
		if _, dup := seen[string(owner)]; dup {
			return errorsmod.Wrapf(ErrDuplicateOwner, "owner %d: %s", i, owner)
		}
		seen[string(owner)] = struct{}{}
	}

	if threshold < 1 || threshold > uint64(len(owners)) {
		return errorsmod.Wrapf(ErrInvalidThreshold, "threshold %d with %d owners", threshold, len(owners))
	}

	return nil
}

// OwnersFromBech32 parses a list of bech32 owner addresses, keeping their order
func OwnersFromBech32(owners []string) ([]sdk.AccAddress, error) {
	addrs := make([]sdk.AccAddress, 0, len(owners))
	for i, owner := range owners {
		addr, err := sdk.AccAddressFromBech32(owner)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidOwner, "owner %d: %s", i, err)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// OwnersToBech32 renders owner addresses as bech32 strings, keeping their order
func OwnersToBech32(owners []sdk.AccAddress) []string {
	out := make([]string, 0, len(owners))
	for _, owner := range owners {
		out = append(out, owner.String())
	}
	return out
}
