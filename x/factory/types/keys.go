package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "factory"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	// CountKey stores the number of deployed wallets
	CountKey = []byte{0x01}

	// DeployedKeyPrefix maps a deployment sequence number to a wallet address
	DeployedKeyPrefix = []byte{0x02}

	// WalletOwnersKeyPrefix is the prefix for owner snapshots by wallet
	WalletOwnersKeyPrefix = []byte{0x03}

	// OwnerWalletsKeyPrefix is the prefix for wallet lists by owner
	OwnerWalletsKeyPrefix = []byte{0x04}
)

// GetDeployedKey returns the store key for the wallet deployed at index
func GetDeployedKey(index uint64) []byte {
	return append(DeployedKeyPrefix, sdk.Uint64ToBigEndian(index)...)
}

// GetWalletOwnersKey returns the store key for a wallet's owner snapshot
func GetWalletOwnersKey(wallet sdk.AccAddress) []byte {
	return append(WalletOwnersKeyPrefix, address.MustLengthPrefix(wallet)...)
}

// GetOwnerWalletsKey returns the store key for the wallets an owner belongs to
func GetOwnerWalletsKey(owner sdk.AccAddress) []byte {
	return append(OwnerWalletsKeyPrefix, address.MustLengthPrefix(owner)...)
}
