package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	multisigtypes "github.com/multisig-factory/cosmos/x/multisig/types"
)

// FlagData is the hex payload attached to a submitted transaction
const FlagData = "data"

// GetTxCmd returns the transaction commands for the multisig module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        multisigtypes.ModuleName,
		Short:                      "Multisig wallet transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdSubmitTransaction(),
		CmdConfirmTransaction(),
		CmdExecuteTransaction(),
		CmdDeposit(),
	)

	return cmd
}

// CmdSubmitTransaction proposes a transfer out of a wallet
func CmdSubmitTransaction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [wallet] [to] [value]",
		Short: "Propose a transfer of value from the wallet, optionally with a hex payload",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			value, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid value %q", args[2])
			}

			var data []byte
			if raw, _ := cmd.Flags().GetString(FlagData); raw != "" {
				data, err = hexutil.Decode(raw)
				if err != nil {
					return fmt.Errorf("invalid data: %w", err)
				}
			}

			msg := multisigtypes.NewMsgSubmitTransaction(clientCtx.GetFromAddress().String(), args[0], args[1], value, data)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagData, "", "0x-prefixed hex payload delivered with the transfer")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdConfirmTransaction approves a pending wallet transaction
func CmdConfirmTransaction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm [wallet] [index]",
		Short: "Confirm a pending wallet transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid index: %w", err)
			}

			msg := multisigtypes.NewMsgConfirmTransaction(clientCtx.GetFromAddress().String(), args[0], index)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteTransaction pays out a confirmed wallet transaction
func CmdExecuteTransaction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [wallet] [index]",
		Short: "Execute a wallet transaction that reached its threshold",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid index: %w", err)
			}

			msg := multisigtypes.NewMsgExecuteTransaction(clientCtx.GetFromAddress().String(), args[0], index)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit funds a wallet from the sender's account
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [wallet] [amount]",
		Short: "Deposit funds into a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			msg := multisigtypes.NewMsgDeposit(clientCtx.GetFromAddress().String(), args[0], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
