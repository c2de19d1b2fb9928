package testutil

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/multisig-factory/cosmos/types"
)

// ReceiverFunc adapts a function to a types.TransferReceiver
type ReceiverFunc func(ctx sdk.Context, wallet, to sdk.AccAddress, amount sdk.Coins, data []byte) error

// OnTransferReceived calls f
func (f ReceiverFunc) OnTransferReceived(ctx sdk.Context, wallet, to sdk.AccAddress, amount sdk.Coins, data []byte) error {
	return f(ctx, wallet, to, amount, data)
}

var (
	_ types.MultisigHooks = &HookRecorder{}
	_ types.FactoryHooks  = &HookRecorder{}
)

// HookRecorder keeps every notification it receives and returns Err from each
// hook
type HookRecorder struct {
	Err error

	WalletsCreated []types.WalletCreated
	Submitted      []types.TransactionSubmitted
	Confirmed      []types.TransactionConfirmed
	Executed       []types.TransactionExecuted
	Deposits       []types.Deposited
}

func (h *HookRecorder) AfterWalletCreated(_ sdk.Context, event types.WalletCreated) error {
	h.WalletsCreated = append(h.WalletsCreated, event)
	return h.Err
}

func (h *HookRecorder) AfterTransactionSubmitted(_ sdk.Context, event types.TransactionSubmitted) error {
	h.Submitted = append(h.Submitted, event)
	return h.Err
}

func (h *HookRecorder) AfterTransactionConfirmed(_ sdk.Context, event types.TransactionConfirmed) error {
	h.Confirmed = append(h.Confirmed, event)
	return h.Err
}

func (h *HookRecorder) AfterTransactionExecuted(_ sdk.Context, event types.TransactionExecuted) error {
	h.Executed = append(h.Executed, event)
	return h.Err
}

func (h *HookRecorder) AfterDeposit(_ sdk.Context, event types.Deposited) error {
	h.Deposits = append(h.Deposits, event)
	return h.Err
}
