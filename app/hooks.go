package app

import (
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"

	"github.com/multisig-factory/cosmos/types"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

var _ types.FactoryHooks = walletAccountHooks{}

// walletAccountHooks gives every created wallet an auth account, so the wallet
// address is known to x/auth before it first receives funds
type walletAccountHooks struct {
	accountKeeper authkeeper.AccountKeeper
}

func (h walletAccountHooks) AfterWalletCreated(ctx sdk.Context, event types.WalletCreated) error {
	wallet, err := sdk.AccAddressFromBech32(event.Wallet)
	if err != nil {
		return err
	}

	if !h.accountKeeper.HasAccount(ctx, wallet) {
		h.accountKeeper.SetAccount(ctx, h.accountKeeper.NewAccountWithAddress(ctx, wallet))
	}
	return nil
}

var (
	_ types.MultisigHooks    = walletActivityLogger{}
	_ types.TransferReceiver = walletActivityLogger{}
)

// walletActivityLogger reports wallet lifecycle events and executed payloads to
// the node log
type walletActivityLogger struct{}

func (walletActivityLogger) AfterTransactionSubmitted(ctx sdk.Context, event types.TransactionSubmitted) error {
	walletLogger(ctx).Info("transaction submitted", "wallet", event.Wallet, "index", event.Index, "owner", event.Owner, "to", event.To, "value", event.Value.String())
	return nil
}

func (walletActivityLogger) AfterTransactionConfirmed(ctx sdk.Context, event types.TransactionConfirmed) error {
	walletLogger(ctx).Info("transaction confirmed", "wallet", event.Wallet, "index", event.Index, "owner", event.Owner, "confirmations", event.Confirmations)
	return nil
}

func (walletActivityLogger) AfterTransactionExecuted(ctx sdk.Context, event types.TransactionExecuted) error {
	walletLogger(ctx).Debug("transaction executed", "wallet", event.Wallet, "index", event.Index, "executor", event.Owner, "to", event.To, "value", event.Value.String())
	return nil
}

func (walletActivityLogger) AfterDeposit(ctx sdk.Context, event types.Deposited) error {
	walletLogger(ctx).Info("wallet deposit", "wallet", event.Wallet, "sender", event.Sender, "amount", event.Amount.String(), "balance", event.Balance.String())
	return nil
}

// OnTransferReceived accepts every payload. Transfers themselves are settled by
// x/bank before it is called.
func (walletActivityLogger) OnTransferReceived(ctx sdk.Context, wallet, to sdk.AccAddress, amount sdk.Coins, data []byte) error {
	walletLogger(ctx).Debug("transfer delivered", "wallet", wallet.String(), "to", to.String(), "amount", amount.String(), "data_len", len(data))
	return nil
}

func walletLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+multisigtypes.ModuleName)
}
