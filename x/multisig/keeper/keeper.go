package keeper

import (
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/multisig-factory/cosmos/types"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

// Keeper of the multisig store
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey

	bankKeeper types.BankKeeper
	receiver   types.TransferReceiver
	hooks      types.MultisigHooks
}

// NewKeeper creates a new multisig Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) *Keeper {
	return &Keeper{
		cdc:        cdc,
		storeKey:   storeKey,
		bankKeeper: bankKeeper,
	}
}

// SetHooks sets the wallet lifecycle hooks. It panics if hooks were already set.
func (k *Keeper) SetHooks(hooks types.MultisigHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set multisig hooks twice")
	}
	k.hooks = hooks
	return k
}

// SetTransferReceiver sets the handler that receives the payload of executed transactions
func (k *Keeper) SetTransferReceiver(receiver types.TransferReceiver) *Keeper {
	k.receiver = receiver
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", multisigtypes.ModuleName))
}

// GetParams returns the module parameters, falling back to the defaults
func (k Keeper) GetParams(ctx sdk.Context) multisigtypes.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(multisigtypes.ParamsKey)
	if bz == nil {
		return multisigtypes.DefaultParams()
	}

	var params multisigtypes.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params multisigtypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	store.Set(multisigtypes.ParamsKey, k.cdc.MustMarshal(&params))
	return nil
}

// InitWallet creates the wallet instance at the given address
func (k Keeper) InitWallet(ctx sdk.Context, creator, wallet sdk.AccAddress, owners []sdk.AccAddress, threshold uint64) error {
	if err := multisigtypes.ValidateWalletParams(owners, threshold); err != nil {
		return err
	}

	if err := sdk.VerifyAddressFormat(wallet); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid wallet address: %s", err)
	}

	if k.HasWallet(ctx, wallet) {
		return errorsmod.Wrap(multisigtypes.ErrWalletExists, wallet.String())
	}

	w := types.Wallet{
		Address:       wallet.String(),
		Owners:        multisigtypes.OwnersToBech32(owners),
		Threshold:     threshold,
		Creator:       creator.String(),
		CreatedHeight: ctx.BlockHeight(),
	}
	k.SetWallet(ctx, w)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			multisigtypes.EventTypeWalletInitialized,
			sdk.NewAttribute(multisigtypes.AttributeKeyWallet, w.Address),
			sdk.NewAttribute(multisigtypes.AttributeKeyOwnerCount, strconv.Itoa(len(w.Owners))),
			sdk.NewAttribute(multisigtypes.AttributeKeyThreshold, strconv.FormatUint(threshold, 10)),
		),
	)

	return nil
}

// SubmitTransaction appends a new pending transaction to the wallet's log and
// returns its index
func (k Keeper) SubmitTransaction(
	ctx sdk.Context,
	owner, wallet, to sdk.AccAddress,
	value math.Int,
	data []byte,
) (uint64, error) {
	var index uint64
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		w, err := k.authorize(ctx, wallet, owner)
		if err != nil {
			return err
		}

		if value.IsNil() || value.IsNegative() {
			return errorsmod.Wrapf(multisigtypes.ErrInvalidAmount, "value %s", value)
		}

		if err := sdk.VerifyAddressFormat(to); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid destination address: %s", err)
		}

		index = w.TransactionCount
		tx := types.Transaction{
			Wallet:          w.Address,
			Index:           index,
			To:              to.String(),
			Value:           value,
			Data:            data,
			Confirmations:   []string{},
			Submitter:       owner.String(),
			SubmittedHeight: ctx.BlockHeight(),
		}
		k.SetTransaction(ctx, wallet, tx)

		w.TransactionCount++
		k.SetWallet(ctx, w)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				multisigtypes.EventTypeSubmitTransaction,
				sdk.NewAttribute(multisigtypes.AttributeKeyWallet, w.Address),
				sdk.NewAttribute(multisigtypes.AttributeKeyOwner, tx.Submitter),
				sdk.NewAttribute(multisigtypes.AttributeKeyTxIndex, strconv.FormatUint(index, 10)),
				sdk.NewAttribute(multisigtypes.AttributeKeyTo, tx.To),
				sdk.NewAttribute(multisigtypes.AttributeKeyValue, value.String()),
				sdk.NewAttribute(multisigtypes.AttributeKeyData, hexutil.Encode(data)),
			),
		)

		if k.hooks != nil {
			return k.hooks.AfterTransactionSubmitted(ctx, types.TransactionSubmitted{
				Wallet: w.Address,
				Owner:  tx.Submitter,
				Index:  index,
				To:     tx.To,
				Value:  value,
				Data:   data,
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return index, nil
}

// ConfirmTransaction records the owner's approval of a pending transaction
func (k Keeper) ConfirmTransaction(ctx sdk.Context, owner, wallet sdk.AccAddress, index uint64) error {
	return k.atomically(ctx, func(ctx sdk.Context) error {
		w, err := k.authorize(ctx, wallet, owner)
		if err != nil {
			return err
		}

		tx, err := k.pendingTransaction(ctx, wallet, index)
		if err != nil {
			return err
		}

		confirmer := owner.String()
		if tx.IsConfirmedBy(confirmer) {
			return errorsmod.Wrapf(multisigtypes.ErrAlreadyConfirmed, "transaction %d by %s", index, confirmer)
		}

		tx.Confirmations = append(tx.Confirmations, confirmer)
		k.SetTransaction(ctx, wallet, tx)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				multisigtypes.EventTypeConfirmTransaction,
				sdk.NewAttribute(multisigtypes.AttributeKeyWallet, w.Address),
				sdk.NewAttribute(multisigtypes.AttributeKeyOwner, confirmer),
				sdk.NewAttribute(multisigtypes.AttributeKeyTxIndex, strconv.FormatUint(index, 10)),
				sdk.NewAttribute(multisigtypes.AttributeKeyConfirmations, strconv.FormatUint(tx.NumConfirmations(), 10)),
				sdk.NewAttribute(multisigtypes.AttributeKeyThreshold, strconv.FormatUint(w.Threshold, 10)),
			),
		)

		if k.hooks != nil {
			return k.hooks.AfterTransactionConfirmed(ctx, types.TransactionConfirmed{
				Wallet:        w.Address,
				Owner:         confirmer,
				Index:         index,
				Confirmations: tx.NumConfirmations(),
			})
		}
		return nil
	})
}

// ExecuteTransaction pays out a transaction once it has reached the wallet's
// threshold. The transaction is marked executed before any value leaves the
// wallet, so a receiver calling back into ExecuteTransaction for the same index
// is rejected with ErrAlreadyExecuted. A failed transfer discards the whole
// branch and the transaction stays pending.
func (k Keeper) ExecuteTransaction(ctx sdk.Context, executor, wallet sdk.AccAddress, index uint64) error {
	return k.atomically(ctx, func(ctx sdk.Context) error {
		w, err := k.authorize(ctx, wallet, executor)
		if err != nil {
			return err
		}

		tx, err := k.pendingTransaction(ctx, wallet, index)
		if err != nil {
			return err
		}

		if tx.NumConfirmations() < w.Threshold {
			return errorsmod.Wrapf(multisigtypes.ErrInsufficientConfirmations,
				"transaction %d has %d of %d", index, tx.NumConfirmations(), w.Threshold)
		}

		tx.Executed = true
		tx.ExecutedHeight = ctx.BlockHeight()
		k.SetTransaction(ctx, wallet, tx)

		if err := k.transfer(ctx, wallet, tx); err != nil {
			return errorsmod.Wrapf(multisigtypes.ErrTransferFailed, "transaction %d to %s: %s", index, tx.To, err)
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				multisigtypes.EventTypeExecuteTransaction,
				sdk.NewAttribute(multisigtypes.AttributeKeyWallet, w.Address),
				sdk.NewAttribute(multisigtypes.AttributeKeyOwner, executor.String()),
				sdk.NewAttribute(multisigtypes.AttributeKeyTxIndex, strconv.FormatUint(index, 10)),
				sdk.NewAttribute(multisigtypes.AttributeKeyTo, tx.To),
				sdk.NewAttribute(multisigtypes.AttributeKeyValue, tx.Value.String()),
			),
		)

		k.Logger(ctx).Info("transaction executed", "wallet", w.Address, "index", index, "to", tx.To, "value", tx.Value.String())

		if k.hooks != nil {
			return k.hooks.AfterTransactionExecuted(ctx, types.TransactionExecuted{
				Wallet: w.Address,
				Owner:  executor.String(),
				Index:  index,
				To:     tx.To,
				Value:  tx.Value,
			})
		}
		return nil
	})
}

// Deposit moves amount from sender into the wallet and returns the new balance
func (k Keeper) Deposit(ctx sdk.Context, sender, wallet sdk.AccAddress, amount math.Int) (math.Int, error) {
	balance := math.ZeroInt()
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		if !k.HasWallet(ctx, wallet) {
			return errorsmod.Wrap(multisigtypes.ErrWalletNotFound, wallet.String())
		}

		if amount.IsNil() || amount.IsNegative() {
			return errorsmod.Wrapf(multisigtypes.ErrInvalidAmount, "amount %s", amount)
		}

		coins := sdk.NewCoins(sdk.NewCoin(k.GetParams(ctx).Denom, amount))
		if len(coins) > 0 {
			if err := k.bankKeeper.SendCoins(ctx, sender, wallet, coins); err != nil {
				return err
			}
		}

		balance = k.GetBalance(ctx, wallet)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				multisigtypes.EventTypeDeposit,
				sdk.NewAttribute(multisigtypes.AttributeKeyWallet, wallet.String()),
				sdk.NewAttribute(multisigtypes.AttributeKeySender, sender.String()),
				sdk.NewAttribute(multisigtypes.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(multisigtypes.AttributeKeyBalance, balance.String()),
			),
		)

		if k.hooks != nil {
			return k.hooks.AfterDeposit(ctx, types.Deposited{
				Wallet:  wallet.String(),
				Sender:  sender.String(),
				Amount:  amount,
				Balance: balance,
			})
		}
		return nil
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return balance, nil
}

// GetWallet retrieves a wallet by address
func (k Keeper) GetWallet(ctx sdk.Context, wallet sdk.AccAddress) (types.Wallet, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(multisigtypes.GetWalletKey(wallet))
	if bz == nil {
		return types.Wallet{}, false
	}

	var w types.Wallet
	k.cdc.MustUnmarshal(bz, &w)
	return w, true
}

// HasWallet reports whether a wallet exists at the address
func (k Keeper) HasWallet(ctx sdk.Context, wallet sdk.AccAddress) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(multisigtypes.GetWalletKey(wallet))
}

// GetOwners returns the wallet's owners in creation order
func (k Keeper) GetOwners(ctx sdk.Context, wallet sdk.AccAddress) []string {
	w, found := k.GetWallet(ctx, wallet)
	if !found {
		return []string{}
	}
	return w.Owners
}

// Owner returns the i-th owner of the wallet
func (k Keeper) Owner(ctx sdk.Context, wallet sdk.AccAddress, i uint64) (string, bool) {
	owners := k.GetOwners(ctx, wallet)
	if i >= uint64(len(owners)) {
		return "", false
	}
	return owners[i], true
}

// GetThreshold returns the number of confirmations the wallet requires
func (k Keeper) GetThreshold(ctx sdk.Context, wallet sdk.AccAddress) uint64 {
	w, _ := k.GetWallet(ctx, wallet)
	return w.Threshold
}

// GetTransactionCount returns the length of the wallet's transaction log
func (k Keeper) GetTransactionCount(ctx sdk.Context, wallet sdk.AccAddress) uint64 {
	w, _ := k.GetWallet(ctx, wallet)
	return w.TransactionCount
}

// IsOwner reports whether owner belongs to the wallet's owner set
func (k Keeper) IsOwner(ctx sdk.Context, wallet, owner sdk.AccAddress) bool {
	w, found := k.GetWallet(ctx, wallet)
	return found && w.HasOwner(owner.String())
}

// GetTransaction retrieves a wallet transaction by index
func (k Keeper) GetTransaction(ctx sdk.Context, wallet sdk.AccAddress, index uint64) (types.Transaction, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(multisigtypes.GetTransactionKey(wallet, index))
	if bz == nil {
		return types.Transaction{}, false
	}

	var tx types.Transaction
	k.cdc.MustUnmarshal(bz, &tx)
	return tx, true
}

// IsConfirmed reports whether owner confirmed the wallet transaction at index
func (k Keeper) IsConfirmed(ctx sdk.Context, wallet sdk.AccAddress, index uint64, owner sdk.AccAddress) bool {
	tx, found := k.GetTransaction(ctx, wallet, index)
	return found && tx.IsConfirmedBy(owner.String())
}

// GetBalance returns the wallet's balance in the module denom
func (k Keeper) GetBalance(ctx sdk.Context, wallet sdk.AccAddress) math.Int {
	return k.bankKeeper.GetBalance(ctx, wallet, k.GetParams(ctx).Denom).Amount
}

// GetAllWallets returns every wallet in the store
func (k Keeper) GetAllWallets(ctx sdk.Context) []types.Wallet {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, multisigtypes.WalletKeyPrefix)
	defer iterator.Close()

	wallets := make([]types.Wallet, 0)
	for ; iterator.Valid(); iterator.Next() {
		var w types.Wallet
		k.cdc.MustUnmarshal(iterator.Value(), &w)
		wallets = append(wallets, w)
	}
	return wallets
}

// GetWalletTransactions returns the wallet's transaction log in index order
func (k Keeper) GetWalletTransactions(ctx sdk.Context, wallet sdk.AccAddress) []types.Transaction {
	return k.iterateTransactions(ctx, multisigtypes.GetWalletTransactionsPrefix(wallet))
}

// GetAllTransactions returns the transactions of every wallet
func (k Keeper) GetAllTransactions(ctx sdk.Context) []types.Transaction {
	return k.iterateTransactions(ctx, multisigtypes.TransactionKeyPrefix)
}

// SetWallet stores a wallet record
func (k Keeper) SetWallet(ctx sdk.Context, w types.Wallet) {
	store := ctx.KVStore(k.storeKey)
	store.Set(multisigtypes.GetWalletKey(sdk.MustAccAddressFromBech32(w.Address)), k.cdc.MustMarshal(&w))
}

// SetTransaction stores a transaction record under the wallet's log
func (k Keeper) SetTransaction(ctx sdk.Context, wallet sdk.AccAddress, tx types.Transaction) {
	store := ctx.KVStore(k.storeKey)
	store.Set(multisigtypes.GetTransactionKey(wallet, tx.Index), k.cdc.MustMarshal(&tx))
}

// Private helper methods

// atomically runs fn on a cached branch of ctx and writes the branch back only
// when fn succeeds
func (k Keeper) atomically(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (k Keeper) authorize(ctx sdk.Context, wallet, caller sdk.AccAddress) (types.Wallet, error) {
	w, found := k.GetWallet(ctx, wallet)
	if !found {
		return types.Wallet{}, errorsmod.Wrap(multisigtypes.ErrWalletNotFound, wallet.String())
	}
	if !w.HasOwner(caller.String()) {
		return types.Wallet{}, errorsmod.Wrapf(multisigtypes.ErrNotOwner, "%s of wallet %s", caller, w.Address)
	}
	return w, nil
}

func (k Keeper) pendingTransaction(ctx sdk.Context, wallet sdk.AccAddress, index uint64) (types.Transaction, error) {
	tx, found := k.GetTransaction(ctx, wallet, index)
	if !found {
		return types.Transaction{}, errorsmod.Wrapf(multisigtypes.ErrUnknownTransaction, "index %d", index)
	}
	if tx.Executed {
		return types.Transaction{}, errorsmod.Wrapf(multisigtypes.ErrAlreadyExecuted, "index %d", index)
	}
	return tx, nil
}

func (k Keeper) transfer(ctx sdk.Context, wallet sdk.AccAddress, tx types.Transaction) error {
	to, err := sdk.AccAddressFromBech32(tx.To)
	if err != nil {
		return err
	}

	if k.bankKeeper.BlockedAddr(to) {
		return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "%s is not allowed to receive funds", to)
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.GetParams(ctx).Denom, tx.Value))
	if len(coins) > 0 {
		if err := k.bankKeeper.SendCoins(ctx, wallet, to, coins); err != nil {
			return err
		}
	}

	if k.receiver != nil {
		return k.receiver.OnTransferReceived(ctx, wallet, to, coins, tx.Data)
	}
	return nil
}

func (k Keeper) iterateTransactions(ctx sdk.Context, prefix []byte) []types.Transaction {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	txs := make([]types.Transaction, 0)
	for ; iterator.Valid(); iterator.Next() {
		var tx types.Transaction
		k.cdc.MustUnmarshal(iterator.Value(), &tx)
		txs = append(txs, tx)
	}
	return txs
}

