package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/multisig-factory/cosmos/x/factory/types"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateWallet handles MsgCreateWallet messages
func (k msgServer) CreateWallet(goCtx context.Context, msg *types.MsgCreateWallet) (*types.MsgCreateWalletResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidCreator.Wrap(err.Error())
	}

	owners, err := multisigtypes.OwnersFromBech32(msg.Owners)
	if err != nil {
		return nil, err
	}

	wallet, err := k.Keeper.CreateWallet(ctx, creator, owners, msg.Threshold)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateWalletResponse{
		Wallet: wallet.String(),
		Index:  k.Keeper.Count(ctx) - 1,
	}, nil
}
