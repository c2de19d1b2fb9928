package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "multisig"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// DefaultDenom is the denomination wallets hold unless genesis overrides it
	DefaultDenom = "stake"
)

// Store key prefixes
var (
	// WalletKeyPrefix is the prefix for wallet storage
	WalletKeyPrefix = []byte{0x01}

	// TransactionKeyPrefix is the prefix for wallet transaction storage
	TransactionKeyPrefix = []byte{0x02}

	// ParamsKey stores the module parameters
	ParamsKey = []byte{0x03}
)

// GetWalletKey returns the store key for a wallet
func GetWalletKey(wallet sdk.AccAddress) []byte {
	return append(WalletKeyPrefix, address.MustLengthPrefix(wallet)...)
}

// GetWalletTransactionsPrefix returns the prefix under which a wallet's transactions are stored
func GetWalletTransactionsPrefix(wallet sdk.AccAddress) []byte {
	return append(TransactionKeyPrefix, address.MustLengthPrefix(wallet)...)
}

// GetTransactionKey returns the store key for a wallet transaction
func GetTransactionKey(wallet sdk.AccAddress, index uint64) []byte {
	return append(GetWalletTransactionsPrefix(wallet), sdk.Uint64ToBigEndian(index)...)
}
