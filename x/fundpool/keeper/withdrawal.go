package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/metrics"
	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// WithdrawAll pays out the caller's full ledger balance. Legal during the
// deposit window (1:1, the multiplier is still at its default) and during
// distribution (multiplier-adjusted). Returns the original deposit and
// the amount paid.
func (k *Keeper) WithdrawAll(ctx context.Context, investor string) (math.Int, math.Int, error) {
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
	deposit := state.Ledger.Get(investor)
	paid, err := state.WithdrawAll(ctx, investor, k.token(state))
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_withdraw_all",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("investor", investor),
			sdk.NewAttribute("deposit", deposit.String()),
			sdk.NewAttribute("payout", paid.String()),
			sdk.NewAttribute("multiplier", state.Multiplier.String()),
		),
	)
	c := metrics.GetCollector()
	c.RecordPayout("investor", metrics.AmountFloat(paid))
	c.SetInvestorCount(state.Ledger.Len())

	k.logger.Info("Investor withdrawal",
		"round_id", state.RoundID,
		"investor", investor,
		"deposit", deposit.String(),
		"payout", paid.String(),
	)
	return deposit, paid, nil
}

// ReturnToInvestor forces one investor's payout during distribution,
// triggered by the fund manager. The computation matches an
// investor-initiated withdrawal exactly.
func (k *Keeper) ReturnToInvestor(ctx context.Context, manager, investor string) (math.Int, error) {
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
	paid, err := state.ReturnToInvestor(ctx, manager, investor, k.token(state))
	if err != nil {
		return math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_return_to_investor",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("investor", investor),
			sdk.NewAttribute("payout", paid.String()),
		),
	)
	c := metrics.GetCollector()
	c.RecordPayout("forced", metrics.AmountFloat(paid))
	c.SetInvestorCount(state.Ledger.Len())

	k.logger.Info("Forced investor return",
		"round_id", state.RoundID,
		"investor", investor,
		"payout", paid.String(),
	)
	return paid, nil
}

// ReturnToAll forces the payout of every remaining investor. O(n) in the
// investor count; a recovery path, not the primary withdrawal path. On a
// mid-iteration transfer failure the completed payouts are persisted so
// the ledger stays consistent with custody.
func (k *Keeper) ReturnToAll(ctx context.Context, manager string) ([]types.Payout, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return nil, err
	}
	payouts, opErr := state.ReturnToAll(ctx, manager, k.token(state))
	if opErr != nil && len(payouts) == 0 {
		return nil, opErr
	}
	k.SetFundState(sdkCtx, state)

	total := math.ZeroInt()
	for _, p := range payouts {
		total = total.Add(p.Amount)
	}
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_return_to_all",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("investors_paid", intAttr(len(payouts))),
			sdk.NewAttribute("total_paid", total.String()),
		),
	)
	c := metrics.GetCollector()
	c.RecordPayout("forced", metrics.AmountFloat(total))
	c.SetInvestorCount(state.Ledger.Len())

	k.logger.Info("Forced return to all investors",
		"round_id", state.RoundID,
		"investors_paid", len(payouts),
		"total_paid", total.String(),
	)
	if opErr != nil {
		return payouts, opErr
	}
	return payouts, nil
}
