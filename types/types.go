package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Wallet represents a multi-owner wallet instance
type Wallet struct {
	Address          string   `protobuf:"bytes,1,opt,name=address,proto3" json:"address"`
	Owners           []string `protobuf:"bytes,2,rep,name=owners,proto3" json:"owners"`
	Threshold        uint64   `protobuf:"varint,3,opt,name=threshold,proto3" json:"threshold"`
	TransactionCount uint64   `protobuf:"varint,4,opt,name=transaction_count,json=transactionCount,proto3" json:"transaction_count"`
	Creator          string   `protobuf:"bytes,5,opt,name=creator,proto3" json:"creator"`
	CreatedHeight    int64    `protobuf:"varint,6,opt,name=created_height,json=createdHeight,proto3" json:"created_height"`
}

func (w *Wallet) ProtoMessage()  {}
func (w *Wallet) Reset()         { *w = Wallet{} }
func (w *Wallet) String() string {
	return fmt.Sprintf("Wallet{Address: %s, Owners: %d, Threshold: %d}", w.Address, len(w.Owners), w.Threshold)
}

// HasOwner reports whether owner is a member of the wallet's owner set
func (w Wallet) HasOwner(owner string) bool {
	for _, o := range w.Owners {
		if o == owner {
			return true
		}
	}
	return false
}

// Transaction represents a transfer proposal in a wallet's transaction log
type Transaction struct {
	Wallet          string   `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet"`
	Index           uint64   `protobuf:"varint,2,opt,name=index,proto3" json:"index"`
	To              string   `protobuf:"bytes,3,opt,name=to,proto3" json:"to"`
	Value           math.Int `protobuf:"bytes,4,opt,name=value,proto3,customtype=cosmossdk.io/math.Int" json:"value"`
	Data            []byte   `protobuf:"bytes,5,opt,name=data,proto3" json:"data"`
	Confirmations   []string `protobuf:"bytes,6,rep,name=confirmations,proto3" json:"confirmations"`
	Executed        bool     `protobuf:"varint,7,opt,name=executed,proto3" json:"executed"`
	Submitter       string   `protobuf:"bytes,8,opt,name=submitter,proto3" json:"submitter"`
	SubmittedHeight int64    `protobuf:"varint,9,opt,name=submitted_height,json=submittedHeight,proto3" json:"submitted_height"`
	ExecutedHeight  int64    `protobuf:"varint,10,opt,name=executed_height,json=executedHeight,proto3" json:"executed_height"`
}

func (t *Transaction) ProtoMessage()  {}
func (t *Transaction) Reset()         { *t = Transaction{} }
func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction{Wallet: %s, Index: %d, Executed: %v}", t.Wallet, t.Index, t.Executed)
}

// NumConfirmations returns the number of distinct owners that confirmed the transaction
func (t Transaction) NumConfirmations() uint64 {
	return uint64(len(t.Confirmations))
}

// IsConfirmedBy reports whether owner already confirmed the transaction
func (t Transaction) IsConfirmedBy(owner string) bool {
	for _, c := range t.Confirmations {
		if c == owner {
			return true
		}
	}
	return false
}

// WalletOwners is the registry's snapshot of a wallet's owner set
type WalletOwners struct {
	Wallet string   `protobuf:"bytes,1,opt,name=wallet,proto3" json:"wallet"`
	Owners []string `protobuf:"bytes,2,rep,name=owners,proto3" json:"owners"`
}

func (wo *WalletOwners) ProtoMessage()  {}
func (wo *WalletOwners) Reset()         { *wo = WalletOwners{} }
func (wo *WalletOwners) String() string { return fmt.Sprintf("WalletOwners{Wallet: %s}", wo.Wallet) }

// OwnerWallets lists the wallets an owner belongs to, in creation order
type OwnerWallets struct {
	Owner   string   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner"`
	Wallets []string `protobuf:"bytes,2,rep,name=wallets,proto3" json:"wallets"`
}

func (ow *OwnerWallets) ProtoMessage()  {}
func (ow *OwnerWallets) Reset()         { *ow = OwnerWallets{} }
func (ow *OwnerWallets) String() string { return fmt.Sprintf("OwnerWallets{Owner: %s}", ow.Owner) }

// Notifications delivered synchronously to hooks after a successful state change.

// WalletCreated is delivered once a wallet instance is registered
type WalletCreated struct {
	Index     uint64
	Wallet    string
	Creator   string
	Owners    []string
	Threshold uint64
}

// TransactionSubmitted is delivered after an owner appends a transaction
type TransactionSubmitted struct {
	Wallet string
	Owner  string
	Index  uint64
	To     string
	Value  math.Int
	Data   []byte
}

// TransactionConfirmed is delivered after an owner confirms a transaction
type TransactionConfirmed struct {
	Wallet        string
	Owner         string
	Index         uint64
	Confirmations uint64
}

// TransactionExecuted is delivered after the transfer of an executed transaction
type TransactionExecuted struct {
	Wallet string
	Owner  string
	Index  uint64
	To     string
	Value  math.Int
}

// Deposited is delivered after value reaches a wallet through MsgDeposit
type Deposited struct {
	Wallet  string
	Sender  string
	Amount  math.Int
	Balance math.Int
}
