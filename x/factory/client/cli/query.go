package cli

import (
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/spf13/cobra"

	commontypes "github.com/multisig-factory/cosmos/types"
	"github.com/multisig-factory/cosmos/x/factory/types"
)

// GetQueryCmd returns the query commands for the factory module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the wallet registry",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryCount(),
		CmdQueryDeployed(),
		CmdQueryOwners(),
		CmdQueryWallets(),
		CmdQueryIsOwner(),
	)

	return cmd
}

// CmdQueryCount shows the number of deployed wallets
func CmdQueryCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Show the number of deployed wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			count, err := queryCount(clientCtx)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(strconv.FormatUint(count, 10) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryDeployed lists deployed wallets in creation order
func CmdQueryDeployed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deployed wallets in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			count, err := queryCount(clientCtx)
			if err != nil {
				return err
			}

			for i := uint64(0); i < count; i++ {
				bz, _, err := clientCtx.QueryStore(types.GetDeployedKey(i), types.StoreKey)
				if err != nil {
					return err
				}
				if err := clientCtx.PrintString(fmt.Sprintf("%d %s\n", i, sdk.AccAddress(bz))); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryOwners shows the owners recorded for a wallet
func CmdQueryOwners() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owners [wallet]",
		Short: "Show the owners recorded for a wallet",
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

			wo := commontypes.WalletOwners{Wallet: wallet.String(), Owners: []string{}}
			if err := queryRecord(clientCtx, types.GetWalletOwnersKey(wallet), &wo); err != nil {
				return err
			}
			return clientCtx.PrintProto(&wo)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryWallets shows the wallets an owner belongs to
func CmdQueryWallets() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets [owner]",
		Short: "Show the wallets an owner belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			owner, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			ow := commontypes.OwnerWallets{Owner: owner.String(), Wallets: []string{}}
			if err := queryRecord(clientCtx, types.GetOwnerWalletsKey(owner), &ow); err != nil {
				return err
			}
			return clientCtx.PrintProto(&ow)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryIsOwner reports whether an address owns a wallet
func CmdQueryIsOwner() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-owner [wallet] [owner]",
		Short: "Report whether an address is an owner of a wallet",
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
			owner, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return err
			}

			var wo commontypes.WalletOwners
			if err := queryRecord(clientCtx, types.GetWalletOwnersKey(wallet), &wo); err != nil {
				return err
			}

			isOwner := false
			for _, o := range wo.Owners {
				if o == owner.String() {
					isOwner = true
					break
				}
			}
			return clientCtx.PrintString(strconv.FormatBool(isOwner) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func queryCount(clientCtx client.Context) (uint64, error) {
	bz, _, err := clientCtx.QueryStore(types.CountKey, types.StoreKey)
	if err != nil || bz == nil {
		return 0, err
	}
	return sdk.BigEndianToUint64(bz), nil
}

// queryRecord leaves record untouched when the key is absent
func queryRecord(clientCtx client.Context, key []byte, record proto.Message) error {
	bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
	if err != nil || bz == nil {
		return err
	}
	return clientCtx.Codec.Unmarshal(bz, record)
}
