package types

import (
	"cosmossdk.io/errors"
)

// x/multisig module sentinel errors
var (
	ErrEmptyOwnerSet             = errors.Register(ModuleName, 2, "owners required")
	ErrDuplicateOwner            = errors.Register(ModuleName, 3, "owner not unique")
	ErrInvalidThreshold          = errors.Register(ModuleName, 4, "invalid number of confirmations")
	ErrInvalidOwner              = errors.Register(ModuleName, 5, "invalid owner")
	ErrNotOwner                  = errors.Register(ModuleName, 6, "not an owner")
	ErrUnknownTransaction        = errors.Register(ModuleName, 7, "transaction does not exist")
	ErrAlreadyConfirmed          = errors.Register(ModuleName, 8, "transaction already confirmed")
	ErrAlreadyExecuted           = errors.Register(ModuleName, 9, "transaction already executed")
	ErrInsufficientConfirmations = errors.Register(ModuleName, 10, "transaction requires more confirmations")
	ErrTransferFailed            = errors.Register(ModuleName, 11, "transaction failed")
	ErrWalletNotFound            = errors.Register(ModuleName, 12, "wallet not found")
	ErrWalletExists              = errors.Register(ModuleName, 13, "wallet already exists")
	ErrInvalidAmount             = errors.Register(ModuleName, 14, "invalid amount")
)
