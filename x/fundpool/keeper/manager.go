package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/metrics"
	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// ManagerDeposit moves the fund manager's own value into the pool during
// the investing phase. No ledger entry is involved.
func (k *Keeper) ManagerDeposit(ctx context.Context, manager string, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return err
	}
	if err := state.ManagerDeposit(ctx, manager, amount, k.token(state)); err != nil {
		return err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_manager_deposit",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("manager", manager),
			sdk.NewAttribute("amount", amount.String()),
		),
	)
	k.logger.Info("Manager deposit",
		"round_id", state.RoundID,
		"amount", amount.String(),
	)
	return nil
}

// ManagerWithdraw moves pooled value out to the fund manager during the
// investing phase.
func (k *Keeper) ManagerWithdraw(ctx context.Context, manager string, amount math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return err
	}
	if err := state.ManagerWithdraw(ctx, manager, amount, k.token(state)); err != nil {
		return err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_manager_withdraw",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("manager", manager),
			sdk.NewAttribute("amount", amount.String()),
		),
	)
	k.logger.Info("Manager withdrawal",
		"round_id", state.RoundID,
		"amount", amount.String(),
	)
	return nil
}

// ManagerWithdrawAll moves the entire pool balance out to the fund
// manager during the investing phase.
func (k *Keeper) ManagerWithdrawAll(ctx context.Context, manager string) (math.Int, error) {
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
	amount, err := state.ManagerWithdrawAll(ctx, manager, k.token(state))
	if err != nil {
		return math.Int{}, err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_manager_withdraw_all",
			sdk.NewAttribute("round_id", state.RoundID),
			sdk.NewAttribute("manager", manager),
			sdk.NewAttribute("amount", amount.String()),
		),
	)
	metrics.GetCollector().SetPoolBalance(0)

	k.logger.Info("Manager full withdrawal",
		"round_id", state.RoundID,
		"amount", amount.String(),
	)
	return amount, nil
}

// NominateManager proposes a successor fund manager.
func (k *Keeper) NominateManager(ctx context.Context, manager, nominee string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return err
	}
	if err := state.NominateManager(manager, nominee); err != nil {
		return err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_nominate_manager",
			sdk.NewAttribute("manager", manager),
			sdk.NewAttribute("nominee", nominee),
		),
	)
	k.logger.Info("Fund manager nominated", "nominee", nominee)
	return nil
}

// AcceptManager completes a manager handover.
func (k *Keeper) AcceptManager(ctx context.Context, nominee string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return err
	}
	if err := state.AcceptManager(nominee); err != nil {
		return err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"fundpool_accept_manager",
			sdk.NewAttribute("fund_manager", nominee),
		),
	)
	k.logger.Info("Fund manager handover complete", "fund_manager", nominee)
	return nil
}

// setConfig runs one initial-phase configuration mutation through the
// shared guard/persist/event/log scaffolding.
func (k *Keeper) setConfig(ctx context.Context, event, attrKey, attrVal string, mutate func(*types.FundState) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	release, err := k.guard.enter()
	if err != nil {
		return err
	}
	defer release()

	state, err := k.mustFundState(sdkCtx)
	if err != nil {
		return err
	}
	if err := mutate(state); err != nil {
		return err
	}
	k.SetFundState(sdkCtx, state)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(event, sdk.NewAttribute(attrKey, attrVal)),
	)
	k.logger.Info("Fund configuration updated", attrKey, attrVal)
	return nil
}

// SetRemainingFundsAddress changes the round-closure sweep target.
func (k *Keeper) SetRemainingFundsAddress(ctx context.Context, manager, addr string) error {
	return k.setConfig(ctx, "fundpool_set_remaining_funds_address", "remaining_funds_address", addr,
		func(state *types.FundState) error { return state.SetRemainingFundsAddress(manager, addr) })
}

// SetTokenDenom changes the fund token denom.
func (k *Keeper) SetTokenDenom(ctx context.Context, manager, denom string) error {
	return k.setConfig(ctx, "fundpool_set_token_denom", "token_denom", denom,
		func(state *types.FundState) error { return state.SetTokenDenom(manager, denom) })
}

// SetDepositMultiple changes the deposit granularity.
func (k *Keeper) SetDepositMultiple(ctx context.Context, manager string, multipleOf math.Int) error {
	return k.setConfig(ctx, "fundpool_set_deposit_multiple", "multiple_of", multipleOf.String(),
		func(state *types.FundState) error { return state.SetDepositMultiple(manager, multipleOf) })
}

// SetMinDeposit changes the lower deposit bound.
func (k *Keeper) SetMinDeposit(ctx context.Context, manager string, minDeposit math.Int) error {
	return k.setConfig(ctx, "fundpool_set_min_deposit", "min_deposit", minDeposit.String(),
		func(state *types.FundState) error { return state.SetMinDeposit(manager, minDeposit) })
}

// SetMaxDeposit changes the upper deposit bound.
func (k *Keeper) SetMaxDeposit(ctx context.Context, manager string, maxDeposit math.Int) error {
	return k.setConfig(ctx, "fundpool_set_max_deposit", "max_deposit", maxDeposit.String(),
		func(state *types.FundState) error { return state.SetMaxDeposit(manager, maxDeposit) })
}
