package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
)

// GetQueryCmd returns the cli query commands for the fundpool module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "fundpool",
		Short:                      "Querying commands for the fundpool module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryStatus(),
		CmdQueryInvestor(),
		CmdQueryInvestors(),
		CmdQueryPoolBalance(),
	)

	return cmd
}

// CmdQueryStatus returns the command to query the fund's status
func CmdQueryStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query the fund's configuration, phase, and round snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// TODO: Wire to the query server once gRPC query routing is set up
			fmt.Println("Fund status query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryInvestor returns the command to query one investor's ledger balance
func CmdQueryInvestor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investor [address]",
		Short: "Query an investor's ledger balance for the current round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Investor balance query for %s requires running node connection\n", args[0])
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryInvestors returns the command to list investors in the current round
func CmdQueryInvestors() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investors",
		Short: "List investors and their deposits for the current round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Investor list query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPoolBalance returns the command to query the custodial pool balance
func CmdQueryPoolBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-balance",
		Short: "Query the fund's custodial token balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pool balance query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
