package testutil

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/multisig-factory/cosmos/types"
)

var _ types.BankKeeper = &Ledger{}

// Ledger is a bank keeper keeping balances in a KV store, so balance changes
// made on a cached context are dropped together with the keeper's own writes
type Ledger struct {
	storeKey storetypes.StoreKey
	blocked  map[string]bool
}

// NewLedger creates a ledger over the given store
func NewLedger(storeKey storetypes.StoreKey) *Ledger {
	return &Ledger{
		storeKey: storeKey,
		blocked:  make(map[string]bool),
	}
}

// Fund mints coins into addr
func (l *Ledger) Fund(ctx sdk.Context, addr sdk.AccAddress, coins sdk.Coins) {
	for _, coin := range coins {
		l.setBalance(ctx, addr, coin.Denom, l.balance(ctx, addr, coin.Denom).Add(coin.Amount))
	}
}

// Block marks addr as unable to receive funds
func (l *Ledger) Block(addr sdk.AccAddress) {
	l.blocked[string(addr)] = true
}

// SendCoins moves amt between accounts, failing without side effects when the
// sender cannot cover every coin
func (l *Ledger) SendCoins(goCtx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}

	for _, coin := range amt {
		if have := l.balance(ctx, fromAddr, coin.Denom); have.LT(coin.Amount) {
			return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s%s is smaller than %s", have, coin.Denom, coin)
		}
	}

	for _, coin := range amt {
		l.setBalance(ctx, fromAddr, coin.Denom, l.balance(ctx, fromAddr, coin.Denom).Sub(coin.Amount))
		l.setBalance(ctx, toAddr, coin.Denom, l.balance(ctx, toAddr, coin.Denom).Add(coin.Amount))
	}
	return nil
}

// GetBalance returns addr's balance in denom
func (l *Ledger) GetBalance(goCtx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, l.balance(sdk.UnwrapSDKContext(goCtx), addr, denom))
}

// BlockedAddr reports whether addr was blocked with Block
func (l *Ledger) BlockedAddr(addr sdk.AccAddress) bool {
	return l.blocked[string(addr)]
}

func (l *Ledger) balance(ctx sdk.Context, addr sdk.AccAddress, denom string) math.Int {
	bz := ctx.KVStore(l.storeKey).Get(balanceKey(addr, denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (l *Ledger) setBalance(ctx sdk.Context, addr sdk.AccAddress, denom string, amount math.Int) {
	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	ctx.KVStore(l.storeKey).Set(balanceKey(addr, denom), bz)
}

func balanceKey(addr sdk.AccAddress, denom string) []byte {
	return append(address.MustLengthPrefix(addr), []byte(denom)...)
}
