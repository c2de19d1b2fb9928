package keeper

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	commontypes "github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/factory/types"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

// Keeper of the factory store
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey

	multisigKeeper types.MultisigKeeper
	hooks          commontypes.FactoryHooks
}

// NewKeeper creates a new factory Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	multisigKeeper types.MultisigKeeper,
) *Keeper {
	return &Keeper{
		cdc:            cdc,
		storeKey:       storeKey,
		multisigKeeper: multisigKeeper,
	}
}

// SetHooks sets the registry hooks. It panics if hooks were already set.
func (k *Keeper) SetHooks(hooks commontypes.FactoryHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set factory hooks twice")
	}
	k.hooks = hooks
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// DeriveWalletAddress returns the address of the wallet deployed at the given
// sequence number. It follows Ethereum's CREATE rule with the factory module
// account as sender and the sequence as nonce.
func DeriveWalletAddress(index uint64) sdk.AccAddress {
	factory := common.BytesToAddress(authtypes.NewModuleAddress(types.ModuleName))
	return sdk.AccAddress(crypto.CreateAddress(factory, index).Bytes())
}

// CreateWallet deploys a new wallet instance and records it in the registry
func (k Keeper) CreateWallet(ctx sdk.Context, creator sdk.AccAddress, owners []sdk.AccAddress, threshold uint64) (sdk.AccAddress, error) {
	var wallet sdk.AccAddress

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		if err := sdk.VerifyAddressFormat(creator); err != nil {
			return errorsmod.Wrap(types.ErrInvalidCreator, err.Error())
		}

		if err := multisigtypes.ValidateWalletParams(owners, threshold); err != nil {
			return err
		}

		index := k.Count(ctx)
		wallet = DeriveWalletAddress(index)
		if k.multisigKeeper.HasWallet(ctx, wallet) {
			return errorsmod.Wrapf(types.ErrWalletAddressTaken, "%s at index %d", wallet, index)
		}

		if err := k.multisigKeeper.InitWallet(ctx, creator, wallet, owners, threshold); err != nil {
			return err
		}

		ownerAddrs := multisigtypes.OwnersToBech32(owners)
		k.setDeployed(ctx, index, wallet)
		k.setWalletOwners(ctx, wallet, commontypes.WalletOwners{Wallet: wallet.String(), Owners: ownerAddrs})
		for _, owner := range owners {
			k.appendOwnerWallet(ctx, owner, wallet)
		}
		k.setCount(ctx, index+1)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWalletCreated,
				sdk.NewAttribute(types.AttributeKeyWallet, wallet.String()),
				sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
				sdk.NewAttribute(types.AttributeKeyOwners, strings.Join(ownerAddrs, ",")),
				sdk.NewAttribute(types.AttributeKeyThreshold, strconv.FormatUint(threshold, 10)),
				sdk.NewAttribute(types.AttributeKeyIndex, strconv.FormatUint(index, 10)),
			),
		)

		k.Logger(ctx).Info("wallet created", "wallet", wallet.String(), "index", index, "owners", len(owners), "threshold", threshold)

		if k.hooks != nil {
			if err := k.hooks.AfterWalletCreated(ctx, commontypes.WalletCreated{
				Index:     index,
				Wallet:    wallet.String(),
				Creator:   creator.String(),
				Owners:    ownerAddrs,
				Threshold: threshold,
			}); err != nil {
				k.Logger(ctx).Error("wallet created hook failed", "wallet", wallet.String(), "error", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// Count returns the number of wallets deployed so far
func (k Keeper) Count(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.CountKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// DeployedAt returns the wallet deployed at the given sequence number
func (k Keeper) DeployedAt(ctx sdk.Context, index uint64) (string, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetDeployedKey(index))
	if bz == nil {
		return "", false
	}
	return sdk.AccAddress(bz).String(), true
}

// ListDeployed returns every deployed wallet in creation order
func (k Keeper) ListDeployed(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.DeployedKeyPrefix)
	defer iterator.Close()

	wallets := make([]string, 0)
	for ; iterator.Valid(); iterator.Next() {
		wallets = append(wallets, sdk.AccAddress(iterator.Value()).String())
	}
	return wallets
}

// OwnersOf returns the owner snapshot recorded for the wallet, or an empty
// list for unknown wallets
func (k Keeper) OwnersOf(ctx sdk.Context, wallet sdk.AccAddress) []string {
	wo, found := k.getWalletOwners(ctx, wallet)
	if !found {
		return []string{}
	}
	return wo.Owners
}

// WalletsOf returns the wallets the owner belongs to, in creation order
func (k Keeper) WalletsOf(ctx sdk.Context, owner sdk.AccAddress) []string {
	ow, found := k.getOwnerWallets(ctx, owner)
	if !found {
		return []string{}
	}
	return ow.Wallets
}

// IsOwner reports whether owner is part of the wallet's recorded owner set
func (k Keeper) IsOwner(ctx sdk.Context, wallet, owner sdk.AccAddress) bool {
	addr := owner.String()
	for _, o := range k.OwnersOf(ctx, wallet) {
		if o == addr {
			return true
		}
	}
	return false
}

// GetAllWalletOwners returns every owner snapshot in the registry
func (k Keeper) GetAllWalletOwners(ctx sdk.Context) []commontypes.WalletOwners {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.WalletOwnersKeyPrefix)
	defer iterator.Close()

	records := make([]commontypes.WalletOwners, 0)
	for ; iterator.Valid(); iterator.Next() {
		var wo commontypes.WalletOwners
		k.cdc.MustUnmarshal(iterator.Value(), &wo)
		records = append(records, wo)
	}
	return records
}

// GetAllOwnerWallets returns every owner's wallet list in the registry
func (k Keeper) GetAllOwnerWallets(ctx sdk.Context) []commontypes.OwnerWallets {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.OwnerWalletsKeyPrefix)
	defer iterator.Close()

	records := make([]commontypes.OwnerWallets, 0)
	for ; iterator.Valid(); iterator.Next() {
		var ow commontypes.OwnerWallets
		k.cdc.MustUnmarshal(iterator.Value(), &ow)
		records = append(records, ow)
	}
	return records
}

// ImportDeployed restores the registry from genesis: the deployment sequence
// in order plus the owner indexes
func (k Keeper) ImportDeployed(ctx sdk.Context, deployed []string, walletOwners []commontypes.WalletOwners, ownerWallets []commontypes.OwnerWallets) {
	for i, wallet := range deployed {
		k.setDeployed(ctx, uint64(i), sdk.MustAccAddressFromBech32(wallet))
	}
	k.setCount(ctx, uint64(len(deployed)))

	for _, wo := range walletOwners {
		k.setWalletOwners(ctx, sdk.MustAccAddressFromBech32(wo.Wallet), wo)
	}
	for _, ow := range ownerWallets {
		k.setOwnerWallets(ctx, sdk.MustAccAddressFromBech32(ow.Owner), ow)
	}
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

func (k Keeper) setCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.CountKey, sdk.Uint64ToBigEndian(count))
}

func (k Keeper) setDeployed(ctx sdk.Context, index uint64, wallet sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetDeployedKey(index), wallet)
}

func (k Keeper) getWalletOwners(ctx sdk.Context, wallet sdk.AccAddress) (commontypes.WalletOwners, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetWalletOwnersKey(wallet))
	if bz == nil {
		return commontypes.WalletOwners{}, false
	}

	var wo commontypes.WalletOwners
	k.cdc.MustUnmarshal(bz, &wo)
	return wo, true
}

func (k Keeper) setWalletOwners(ctx sdk.Context, wallet sdk.AccAddress, wo commontypes.WalletOwners) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetWalletOwnersKey(wallet), k.cdc.MustMarshal(&wo))
}

func (k Keeper) getOwnerWallets(ctx sdk.Context, owner sdk.AccAddress) (commontypes.OwnerWallets, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetOwnerWalletsKey(owner))
	if bz == nil {
		return commontypes.OwnerWallets{}, false
	}

	var ow commontypes.OwnerWallets
	k.cdc.MustUnmarshal(bz, &ow)
	return ow, true
}

func (k Keeper) setOwnerWallets(ctx sdk.Context, owner sdk.AccAddress, ow commontypes.OwnerWallets) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetOwnerWalletsKey(owner), k.cdc.MustMarshal(&ow))
}

func (k Keeper) appendOwnerWallet(ctx sdk.Context, owner, wallet sdk.AccAddress) {
	ow, found := k.getOwnerWallets(ctx, owner)
	if !found {
		ow = commontypes.OwnerWallets{Owner: owner.String()}
	}
	ow.Wallets = append(ow.Wallets, wallet.String())
	k.setOwnerWallets(ctx, owner, ow)
}
