package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) multisigtypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ multisigtypes.MsgServer = msgServer{}

// SubmitTransaction handles MsgSubmitTransaction messages
func (k msgServer) SubmitTransaction(goCtx context.Context, msg *multisigtypes.MsgSubmitTransaction) (*multisigtypes.MsgSubmitTransactionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}
	wallet, err := sdk.AccAddressFromBech32(msg.Wallet)
	if err != nil {
		return nil, err
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, err
	}

	index, err := k.Keeper.SubmitTransaction(ctx, owner, wallet, to, msg.Value, msg.Data)
	if err != nil {
		return nil, err
	}

	return &multisigtypes.MsgSubmitTransactionResponse{
		Index: index,
	}, nil
}

// ConfirmTransaction handles MsgConfirmTransaction messages
func (k msgServer) ConfirmTransaction(goCtx context.Context, msg *multisigtypes.MsgConfirmTransaction) (*multisigtypes.MsgConfirmTransactionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}
	wallet, err := sdk.AccAddressFromBech32(msg.Wallet)
	if err != nil {
		return nil, err
	}

	if err := k.Keeper.ConfirmTransaction(ctx, owner, wallet, msg.Index); err != nil {
		return nil, err
	}

	// Get updated transaction to report confirmation count and threshold status
	tx, _ := k.Keeper.GetTransaction(ctx, wallet, msg.Index)
	confirmations := tx.NumConfirmations()

	return &multisigtypes.MsgConfirmTransactionResponse{
		Confirmations: confirmations,
		ThresholdMet:  confirmations >= k.Keeper.GetThreshold(ctx, wallet),
	}, nil
}

// ExecuteTransaction handles MsgExecuteTransaction messages
func (k msgServer) ExecuteTransaction(goCtx context.Context, msg *multisigtypes.MsgExecuteTransaction) (*multisigtypes.MsgExecuteTransactionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	executor, err := sdk.AccAddressFromBech32(msg.Executor)
	if err != nil {
		return nil, err
	}
	wallet, err := sdk.AccAddressFromBech32(msg.Wallet)
	if err != nil {
		return nil, err
	}

	if err := k.Keeper.ExecuteTransaction(ctx, executor, wallet, msg.Index); err != nil {
		return nil, err
	}

	return &multisigtypes.MsgExecuteTransactionResponse{
		Balance: k.Keeper.GetBalance(ctx, wallet),
	}, nil
}

// Deposit handles MsgDeposit messages
func (k msgServer) Deposit(goCtx context.Context, msg *multisigtypes.MsgDeposit) (*multisigtypes.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, err
	}
	wallet, err := sdk.AccAddressFromBech32(msg.Wallet)
	if err != nil {
		return nil, err
	}

	balance, err := k.Keeper.Deposit(ctx, depositor, wallet, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &multisigtypes.MsgDepositResponse{
		Balance: balance,
	}, nil
}
