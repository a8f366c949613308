package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/metrics"
	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// StartDeposits opens a new round for investor deposits.
func (k *Keeper) StartDeposits(ctx context.Context, caller string) (string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return "", err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return "", err
	}
	if err := state.StartDeposits(caller); err != nil {
		return "", err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_start_deposits",
			sdk.NewAttribute("fund_manager", caller),
			sdk.NewAttribute("round_id", state.RoundID),
		),
	)
	metrics.GetCollector().RecordPhaseTransition(string(types.PhaseAcceptingDeposits))

	k.logger.Info("Deposit window opened",
		"round_id", state.RoundID,
		"fund_manager", caller,
	)
	return state.RoundID, nil
}

// StopDeposits closes the deposit window and snapshots the pool balance.
func (k *Keeper) StopDeposits(ctx context.Context, caller string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return math.Int{}, err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return math.Int{}, err
	}
	if err := state.StopDeposits(ctx, caller, k.token(state)); err != nil {
		return math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_stop_deposits",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("amount_before_investment", state.AmountBeforeInvestment.String()),
			sdk.NewAttribute("investor_count", intAttr(state.Ledger.Len())),
		),
	)
	c := metrics.GetCollector()
	c.RecordPhaseTransition(string(types.PhaseInvesting))
	c.SetPoolBalance(metrics.AmountFloat(state.AmountBeforeInvestment))

	k.logger.Info("Deposit window closed",
		"round_id", state.RoundID,
		"amount_before_investment", state.AmountBeforeInvestment.String(),
		"investor_count", state.Ledger.Len(),
	)
	return state.AmountBeforeInvestment, nil
}

// StartWithdrawals ends investing, snapshots the pool balance, and fixes
// the round multiplier.
func (k *Keeper) StartWithdrawals(ctx context.Context, caller string) (math.Int, math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := state.StartWithdrawals(ctx, caller, k.token(state)); err != nil {
		return math.Int{}, math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_start_withdrawals",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("amount_after_investment", state.AmountAfterInvestment.String()),
			sdk.NewAttribute("multiplier", state.Multiplier.String()),
		),
	)
	c := metrics.GetCollector()
	c.RecordPhaseTransition(string(types.PhaseDistributing))
	c.SetMultiplier(metrics.AmountFloat(state.Multiplier) / 1e12)

	k.logger.Info("Distribution opened",
		"round_id", state.RoundID,
		"amount_after_investment", state.AmountAfterInvestment.String(),
		"multiplier", state.Multiplier.String(),
	)
	return state.AmountAfterInvestment, state.Multiplier, nil
}

// StopWithdrawals closes the round, sweeping any remaining balance to the
// remaining-funds address and resetting the round state.
func (k *Keeper) StopWithdrawals(ctx context.Context, caller string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return math.Int{}, err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return math.Int{}, err
	}
	roundID := state.RoundID
	sweepTarget := state.RemainingFundsAddress
	forfeited := state.Ledger.Len()
	swept, err := state.StopWithdrawals(ctx, caller, k.token(state))
	if err != nil {
		return math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_stop_withdrawals",
			sdk.NewAttribute("round_id", roundID),
			sdk.NewAttribute("swept_amount", swept.String()),
			sdk.NewAttribute("remaining_funds_address", sweepTarget),
			sdk.NewAttribute("forfeited_investors", intAttr(forfeited)),
		),
	)
	c := metrics.GetCollector()
	c.RecordPhaseTransition(string(types.PhaseInitial))
	c.RecordRoundClosed(metrics.AmountFloat(swept))
	c.SetPoolBalance(0)
	c.SetInvestorCount(0)
	c.SetMultiplier(1)

	k.logger.Info("Round closed",
		"round_id", roundID,
		"swept_amount", swept.String(),
		"remaining_funds_address", sweepTarget,
		"forfeited_investors", forfeited,
		"rounds_completed", state.RoundsCompleted,
	)
	return swept, nil
}
