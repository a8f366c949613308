package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"cosmossdk.io/math"

	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// GetTxCmd returns the transaction commands for the fundpool module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "fundpool",
		Short:                      "Fundpool module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdDeposit(),
		CmdWithdrawAll(),
		CmdManagerDeposit(),
		CmdManagerWithdraw(),
		CmdManagerWithdrawAll(),
		CmdReturnToInvestor(),
		CmdReturnToAll(),
		CmdNominateManager(),
		CmdAcceptManager(),
		CmdSetRemainingFundsAddress(),
		CmdSetTokenDenom(),
		CmdSetDepositMultiple(),
		CmdSetMinDeposit(),
		CmdSetMaxDeposit(),
		CmdStartDeposits(),
		CmdStopDeposits(),
		CmdStartWithdrawals(),
		CmdStopWithdrawals(),
	)

	return cmd
}

// parseAmountArg validates that a positional argument is a whole token amount.
func parseAmountArg(arg string) (string, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok || !amount.IsPositive() {
		return "", fmt.Errorf("invalid amount: %s (expected a positive integer)", arg)
	}
	return amount.String(), nil
}

// CmdDeposit returns the command to deposit into the fund
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit tokens into the fund for the current round",
		Long: `Deposit tokens into the fund while a round is accepting deposits.

Examples:
  fundpoold tx fundpool deposit 1000 --from alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgDeposit{
				Investor: clientCtx.GetFromAddress().String(),
				Amount:   amount,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawAll returns the command to withdraw the caller's full balance
func CmdWithdrawAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-all",
		Short: "Withdraw your full balance from the fund",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawAll{
				Investor: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdManagerDeposit returns the command for a manager deposit
func CmdManagerDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager-deposit [amount]",
		Short: "Deposit tokens into the pool as the fund manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgManagerDeposit{
				Manager: clientCtx.GetFromAddress().String(),
				Amount:  amount,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdManagerWithdraw returns the command for a partial manager withdrawal
func CmdManagerWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager-withdraw [amount]",
		Short: "Withdraw tokens from the pool as the fund manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgManagerWithdraw{
				Manager: clientCtx.GetFromAddress().String(),
				Amount:  amount,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdManagerWithdrawAll returns the command to withdraw the entire pool
func CmdManagerWithdrawAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager-withdraw-all",
		Short: "Withdraw the entire pool balance as the fund manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgManagerWithdrawAll{
				Manager: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdReturnToInvestor returns the command to force a payout to one investor
func CmdReturnToInvestor() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return-to-investor [investor]",
		Short: "Pay out one investor's balance as the fund manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgReturnToInvestor{
				Manager:  clientCtx.GetFromAddress().String(),
				Investor: args[0],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdReturnToAll returns the command to pay out every investor
func CmdReturnToAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return-to-all",
		Short: "Pay out every investor's balance as the fund manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgReturnToAll{
				Manager: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdNominateManager returns the command to nominate a successor manager
func CmdNominateManager() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nominate-manager [nominee]",
		Short: "Nominate a new fund manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgNominateManager{
				Manager: clientCtx.GetFromAddress().String(),
				Nominee: args[0],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAcceptManager returns the command for a nominee to accept the manager role
func CmdAcceptManager() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept-manager",
		Short: "Accept a pending fund manager nomination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAcceptManager{
				Nominee: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetRemainingFundsAddress returns the command to set the sweep address
func CmdSetRemainingFundsAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-remaining-funds-address [address]",
		Short: "Set the address that receives leftover funds at round close",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetRemainingFundsAddress{
				Manager: clientCtx.GetFromAddress().String(),
				Address: args[0],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetTokenDenom returns the command to set the fund token denom
func CmdSetTokenDenom() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-token-denom [denom]",
		Short: "Set the token denom the fund custodies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetTokenDenom{
				Manager: clientCtx.GetFromAddress().String(),
				Denom:   args[0],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetDepositMultiple returns the command to set the deposit granularity
func CmdSetDepositMultiple() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-deposit-multiple [multiple-of]",
		Short: "Require investor deposits to be a multiple of the given amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			multipleOf, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgSetDepositMultiple{
				Manager:    clientCtx.GetFromAddress().String(),
				MultipleOf: multipleOf,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetMinDeposit returns the command to set the minimum investor deposit
func CmdSetMinDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-min-deposit [amount]",
		Short: "Set the minimum per-call investor deposit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minDeposit, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgSetMinDeposit{
				Manager:    clientCtx.GetFromAddress().String(),
				MinDeposit: minDeposit,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetMaxDeposit returns the command to set the maximum investor deposit
func CmdSetMaxDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-max-deposit [amount]",
		Short: "Set the maximum per-call investor deposit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			maxDeposit, err := parseAmountArg(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgSetMaxDeposit{
				Manager:    clientCtx.GetFromAddress().String(),
				MaxDeposit: maxDeposit,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStartDeposits returns the command to open a new round for deposits
func CmdStartDeposits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-deposits",
		Short: "Open a new round for investor deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgStartDeposits{
				Manager: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStopDeposits returns the command to close the deposit window
func CmdStopDeposits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop-deposits",
		Short: "Close the deposit window and snapshot the pool balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgStopDeposits{
				Manager: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStartWithdrawals returns the command to open the withdrawal window
func CmdStartWithdrawals() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-withdrawals",
		Short: "End the investment phase and open withdrawals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgStartWithdrawals{
				Manager: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStopWithdrawals returns the command to close the round
func CmdStopWithdrawals() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop-withdrawals",
		Short: "Close the round and sweep leftover funds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgStopWithdrawals{
				Manager: clientCtx.GetFromAddress().String(),
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
