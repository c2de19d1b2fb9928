package cli

import (
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/spf13/cobra"

	"github.com/multisig-factory/cosmos/x/factory/types"
)

// GetTxCmd returns the transaction commands for the factory module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Wallet factory transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(CmdCreateWallet())

	return cmd
}

// CmdCreateWallet deploys a new multisig wallet
func CmdCreateWallet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-wallet [threshold] [owner] [owner...]",
		Short: "Create a multisig wallet requiring threshold of the given owners",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			threshold, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid threshold: %w", err)
			}

			msg := types.NewMsgCreateWallet(clientCtx.GetFromAddress().String(), args[1:], threshold)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
