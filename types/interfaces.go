package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the bank module
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	BlockedAddr(addr sdk.AccAddress) bool
}

// TransferReceiver is invoked with the payload of an executed wallet transaction
// after the value reached the destination. Returning an error rejects the funds
// and rolls back the whole execution.
type TransferReceiver interface {
	OnTransferReceived(ctx sdk.Context, wallet, to sdk.AccAddress, amount sdk.Coins, data []byte) error
}

// MultisigHooks receives wallet lifecycle notifications
type MultisigHooks interface {
	AfterTransactionSubmitted(ctx sdk.Context, event TransactionSubmitted) error
	AfterTransactionConfirmed(ctx sdk.Context, event TransactionConfirmed) error
	AfterTransactionExecuted(ctx sdk.Context, event TransactionExecuted) error
	AfterDeposit(ctx sdk.Context, event Deposited) error
}

// FactoryHooks receives registry notifications
type FactoryHooks interface {
	AfterWalletCreated(ctx sdk.Context, event WalletCreated) error
}

var _ MultisigHooks = MultiMultisigHooks{}

// MultiMultisigHooks fans a notification out to several MultisigHooks in order
type MultiMultisigHooks []MultisigHooks

func NewMultiMultisigHooks(hooks ...MultisigHooks) MultiMultisigHooks {
	return hooks
}

func (h MultiMultisigHooks) AfterTransactionSubmitted(ctx sdk.Context, event TransactionSubmitted) error {
	for i := range h {
		if err := h[i].AfterTransactionSubmitted(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiMultisigHooks) AfterTransactionConfirmed(ctx sdk.Context, event TransactionConfirmed) error {
	for i := range h {
		if err := h[i].AfterTransactionConfirmed(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiMultisigHooks) AfterTransactionExecuted(ctx sdk.Context, event TransactionExecuted) error {
	for i := range h {
		if err := h[i].AfterTransactionExecuted(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiMultisigHooks) AfterDeposit(ctx sdk.Context, event Deposited) error {
	for i := range h {
		if err := h[i].AfterDeposit(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

var _ FactoryHooks = MultiFactoryHooks{}

// MultiFactoryHooks fans a notification out to several FactoryHooks in order
type MultiFactoryHooks []FactoryHooks

func NewMultiFactoryHooks(hooks ...FactoryHooks) MultiFactoryHooks {
	return hooks
}

func (h MultiFactoryHooks) AfterWalletCreated(ctx sdk.Context, event WalletCreated) error {
	for i := range h {
		if err := h[i].AfterWalletCreated(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
