package types

import (
	"cosmossdk.io/errors"
)

// x/factory module sentinel errors
var (
	ErrWalletAddressTaken = errors.Register(ModuleName, 2, "wallet address already in use")
	ErrInvalidCreator     = errors.Register(ModuleName, 3, "invalid creator")
)
