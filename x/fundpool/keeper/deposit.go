package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/metrics"
)

// Deposit handles an investor deposit during the deposit window. The
// value is pulled from the investor's account into the pool and the
// ledger entry is credited. Returns the investor's resulting ledger
// balance.
func (k *Keeper) Deposit(ctx context.Context, investor string, amount math.Int) (math.Int, error) {
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
	if err := state.Deposit(ctx, investor, amount, k.token(state)); err != nil {
		return math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	balance := state.Ledger.Get(investor)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_deposit",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("investor", investor),
			sdk.NewAttribute("amount", amount.String()),
			sdk.NewAttribute("ledger_balance", balance.String()),
		),
	)
	c := metrics.GetCollector()
	c.RecordDeposit(metrics.AmountFloat(amount))
	c.SetInvestorCount(state.Ledger.Len())

	k.logger.Info("Deposit accepted",
		"round_id", state.RoundID,
		"investor", investor,
		"amount", amount.String(),
		"ledger_balance", balance.String(),
	)
	return balance, nil
}
