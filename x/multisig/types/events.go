package types

// Multisig module event types
const (
	EventTypeWalletInitialized  = "wallet_initialized"
	EventTypeSubmitTransaction  = "submit_transaction"
	EventTypeConfirmTransaction = "confirm_transaction"
	EventTypeExecuteTransaction = "execute_transaction"
	EventTypeDeposit            = "deposit"
)

// Multisig module event attribute keys
const (
	AttributeKeyWallet        = "wallet"
	AttributeKeyOwner         = "owner"
	AttributeKeyTxIndex       = "tx_index"
	AttributeKeyTo            = "to"
	AttributeKeyValue         = "value"
	AttributeKeyData          = "data"
	AttributeKeyConfirmations = "confirmations"
	AttributeKeyThreshold     = "threshold"
	AttributeKeyOwnerCount    = "owner_count"
	AttributeKeySender        = "sender"
	AttributeKeyAmount        = "amount"
	AttributeKeyBalance       = "balance"
)
