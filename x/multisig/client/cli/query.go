package cli

import (
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/spf13/cobra"

	"github.com/multisig-factory/cosmos/types"
	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

// GetQueryCmd returns the query commands for the multisig module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        multisigtypes.ModuleName,
		Short:                      "Querying commands for multisig wallets",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryWallet(),
		CmdQueryTransaction(),
		CmdQueryBalance(),
	)

	return cmd
}

// CmdQueryWallet shows a wallet's owners, threshold and transaction count
func CmdQueryWallet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet [address]",
		Short: "Show a wallet's owners, threshold and transaction count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			wallet, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(multisigtypes.GetWalletKey(wallet), multisigtypes.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("%w: %s", multisigtypes.ErrWalletNotFound, wallet)
			}

			var w types.Wallet
			if err := clientCtx.Codec.Unmarshal(bz, &w); err != nil {
				return err
			}
			return clientCtx.PrintProto(&w)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTransaction shows one entry of a wallet's transaction log
func CmdQueryTransaction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction [wallet] [index]",
		Short: "Show a wallet transaction with its confirmations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			wallet, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}
			index, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid index: %w", err)
			}

			bz, _, err := clientCtx.QueryStore(multisigtypes.GetTransactionKey(wallet, index), multisigtypes.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("%w: index %d", multisigtypes.ErrUnknownTransaction, index)
			}

			var tx types.Transaction
			if err := clientCtx.Codec.Unmarshal(bz, &tx); err != nil {
				return err
			}
			return clientCtx.PrintProto(&tx)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBalance shows the wallet's balance in the module denom
func CmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [wallet]",
		Short: "Show the wallet's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return err
			}

			params := multisigtypes.DefaultParams()
			bz, _, err := clientCtx.QueryStore(multisigtypes.ParamsKey, multisigtypes.StoreKey)
			if err != nil {
				return err
			}
			if bz != nil {
				if err := clientCtx.Codec.Unmarshal(bz, &params); err != nil {
					return err
				}
			}

			res, err := banktypes.NewQueryClient(clientCtx).Balance(cmd.Context(), &banktypes.QueryBalanceRequest{
				Address: args[0],
				Denom:   params.Denom,
			})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res.Balance)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
