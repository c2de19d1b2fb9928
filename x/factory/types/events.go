package types

// Factory module event types
const (
	EventTypeWalletCreated = "wallet_created"
)

// Factory module event attribute keys
const (
	AttributeKeyWallet    = "wallet"
	AttributeKeyCreator   = "creator"
	AttributeKeyOwners    = "owners"
	AttributeKeyThreshold = "threshold"
	AttributeKeyIndex     = "index"
)
