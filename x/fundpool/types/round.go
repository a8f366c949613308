package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/google/uuid"
)

// FundToken is the external value-transfer collaborator. PoolBalance
// reports the fund's custodial balance, Pull moves value from an external
// account into custody, Push moves value from custody to an external
// account. Pull and Push either fully succeed or fail the enclosing
// operation.
type FundToken interface {
	PoolBalance(ctx context.Context) (math.Int, error)
	Pull(ctx context.Context, from string, amount math.Int) error
	Push(ctx context.Context, to string, amount math.Int) error
}

// requireManager rejects callers other than the fund manager.
func (f *FundState) requireManager(caller string) error {
	if caller != f.FundManager {
		return ErrUnauthorized.Wrapf("caller %s is not the fund manager", caller)
	}
	return nil
}

// requirePhase rejects the operation unless the fund is in one of the
// listed phases.
func (f *FundState) requirePhase(phases ...Phase) error {
	for _, p := range phases {
		if f.Phase == p {
			return nil
		}
	}
	return ErrInvalidPhase.Wrapf("fund is in phase %s", f.Phase)
}

// ============ Phase Transitions ============

// StartDeposits opens a new round for investor deposits.
func (f *FundState) StartDeposits(caller string) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	f.Phase = PhaseAcceptingDeposits
	f.RoundID = uuid.NewString()
	return nil
}

// StopDeposits closes the deposit window and snapshots the pool balance
// the round enters investing with.
func (f *FundState) StopDeposits(ctx context.Context, caller string, token FundToken) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseAcceptingDeposits); err != nil {
		return err
	}
	balance, err := token.PoolBalance(ctx)
	if err != nil {
		return ErrTransferFailure.Wrap(err.Error())
	}
	f.AmountBeforeInvestment = balance
	f.Phase = PhaseInvesting
	return nil
}

// StartWithdrawals ends the investing phase, snapshots the resulting pool
// balance, and fixes the round multiplier. A round that accepted no
// deposits keeps the default 1.0 multiplier.
func (f *FundState) StartWithdrawals(ctx context.Context, caller string, token FundToken) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInvesting); err != nil {
		return err
	}
	balance, err := token.PoolBalance(ctx)
	if err != nil {
		return ErrTransferFailure.Wrap(err.Error())
	}
	multiplier, err := ComputeMultiplier(f.AmountBeforeInvestment, balance)
	if err != nil {
		return err
	}
	f.AmountAfterInvestment = balance
	f.Multiplier = multiplier
	f.Phase = PhaseDistributing
	return nil
}

// StopWithdrawals closes the round: whatever balance is still in custody
// (unclaimed deposits plus rounding dust) is swept to the remaining-funds
// address, the ledger is cleared, and the round state resets. Investors
// who have not withdrawn by now forfeit their share to the sweep target.
func (f *FundState) StopWithdrawals(ctx context.Context, caller string, token FundToken) (math.Int, error) {
	if err := f.requireManager(caller); err != nil {
		return math.Int{}, err
	}
	if err := f.requirePhase(PhaseDistributing); err != nil {
		return math.Int{}, err
	}
	swept, err := token.PoolBalance(ctx)
	if err != nil {
		return math.Int{}, ErrTransferFailure.Wrap(err.Error())
	}
	if swept.IsPositive() {
		if err := token.Push(ctx, f.RemainingFundsAddress, swept); err != nil {
			return math.Int{}, ErrTransferFailure.Wrap(err.Error())
		}
	}
	f.resetRound()
	return swept, nil
}

// resetRound tears down the round state, returning the fund to the
// initial phase ready for the next cycle.
func (f *FundState) resetRound() {
	f.Ledger.RemoveAll()
	f.AmountBeforeInvestment = math.ZeroInt()
	f.AmountAfterInvestment = math.ZeroInt()
	f.Multiplier = DefaultMultiplier()
	f.RoundID = ""
	f.Phase = PhaseInitial
	f.RoundsCompleted++
}

// ============ Investor Operations ============

// validateDepositAmount applies the per-call deposit checks: nonzero,
// within the configured bounds, and an exact multiple. Repeat deposits
// are each validated independently; aggregate exposure is not re-checked
// against the maximum.
func (f *FundState) validateDepositAmount(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	if amount.LT(f.MinInvestorDeposit) {
		return ErrInvalidAmount.Wrapf("deposit %s below minimum %s", amount, f.MinInvestorDeposit)
	}
	if amount.GT(f.MaxInvestorDeposit) {
		return ErrInvalidAmount.Wrapf("deposit %s above maximum %s", amount, f.MaxInvestorDeposit)
	}
	if !amount.Mod(f.DepositMultipleOf).IsZero() {
		return ErrInvalidAmount.Wrapf("deposit %s is not a multiple of %s", amount, f.DepositMultipleOf)
	}
	return nil
}

// Deposit accepts an investor deposit during the deposit window. The
// value is pulled from the investor before the ledger is credited, so a
// failed transfer leaves no trace.
func (f *FundState) Deposit(ctx context.Context, caller string, amount math.Int, token FundToken) error {
	if caller == "" {
		return ErrInvalidAddress.Wrap("investor address is empty")
	}
	if err := f.requirePhase(PhaseAcceptingDeposits); err != nil {
		return err
	}
	if err := f.validateDepositAmount(amount); err != nil {
		return err
	}
	if err := token.Pull(ctx, caller, amount); err != nil {
		return ErrTransferFailure.Wrap(err.Error())
	}
	f.Ledger.Add(caller, amount)
	return nil
}

// WithdrawAll pays out the caller's entire ledger balance and removes the
// entry. During the deposit window the multiplier is still 1.0, so the
// investor gets back exactly what they put in; during distribution the
// fixed round multiplier applies.
func (f *FundState) WithdrawAll(ctx context.Context, caller string, token FundToken) (math.Int, error) {
	if err := f.requirePhase(PhaseAcceptingDeposits, PhaseDistributing); err != nil {
		return math.Int{}, err
	}
	return f.payOut(ctx, caller, token)
}

// payOut computes and pushes the multiplier-adjusted payout for one
// investor, then removes the ledger entry. Ledger mutation happens only
// after the transfer succeeds.
func (f *FundState) payOut(ctx context.Context, investor string, token FundToken) (math.Int, error) {
	deposit := f.Ledger.Get(investor)
	if deposit.IsZero() {
		return math.Int{}, ErrNoSuchInvestor.Wrapf("investor %s has no balance", investor)
	}
	amount, err := ApplyMultiplier(deposit, f.Multiplier)
	if err != nil {
		return math.Int{}, err
	}
	if amount.IsPositive() {
		if err := token.Push(ctx, investor, amount); err != nil {
			return math.Int{}, ErrTransferFailure.Wrap(err.Error())
		}
	}
	f.Ledger.Remove(investor)
	return amount, nil
}

// ============ Manager Operations ============

// ManagerDeposit moves the fund manager's own value into the pool during
// the investing phase. No ledger entry is involved and the investor
// deposit bounds do not apply.
func (f *FundState) ManagerDeposit(ctx context.Context, caller string, amount math.Int, token FundToken) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInvesting); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	if err := token.Pull(ctx, caller, amount); err != nil {
		return ErrTransferFailure.Wrap(err.Error())
	}
	return nil
}

// ManagerWithdraw moves pooled value out to the fund manager during the
// investing phase.
func (f *FundState) ManagerWithdraw(ctx context.Context, caller string, amount math.Int, token FundToken) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInvesting); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	balance, err := token.PoolBalance(ctx)
	if err != nil {
		return ErrTransferFailure.Wrap(err.Error())
	}
	if amount.GT(balance) {
		return ErrInvalidAmount.Wrapf("withdrawal %s exceeds pool balance %s", amount, balance)
	}
	if err := token.Push(ctx, caller, amount); err != nil {
		return ErrTransferFailure.Wrap(err.Error())
	}
	return nil
}

// ManagerWithdrawAll moves the entire pool balance out to the fund
// manager during the investing phase.
func (f *FundState) ManagerWithdrawAll(ctx context.Context, caller string, token FundToken) (math.Int, error) {
	if err := f.requireManager(caller); err != nil {
		return math.Int{}, err
	}
	if err := f.requirePhase(PhaseInvesting); err != nil {
		return math.Int{}, err
	}
	balance, err := token.PoolBalance(ctx)
	if err != nil {
		return math.Int{}, ErrTransferFailure.Wrap(err.Error())
	}
	if balance.IsPositive() {
		if err := token.Push(ctx, caller, balance); err != nil {
			return math.Int{}, ErrTransferFailure.Wrap(err.Error())
		}
	}
	return balance, nil
}

// ReturnToInvestor forces the payout of one investor during distribution.
// The computation is identical to an investor-initiated withdrawal.
func (f *FundState) ReturnToInvestor(ctx context.Context, caller, investor string, token FundToken) (math.Int, error) {
	if err := f.requireManager(caller); err != nil {
		return math.Int{}, err
	}
	if err := f.requirePhase(PhaseDistributing); err != nil {
		return math.Int{}, err
	}
	if investor == "" {
		return math.Int{}, ErrInvalidAddress.Wrap("investor address is empty")
	}
	return f.payOut(ctx, investor, token)
}

// ReturnToAll forces the payout of every remaining investor. This walks
// the whole ledger and is O(n) in the investor count; it is a recovery
// path, not the primary withdrawal path. Each investor is removed as
// their payout lands, so a mid-iteration transfer failure leaves the
// ledger consistent with custody: paid investors are gone, the failing
// investor and everyone after remain.
func (f *FundState) ReturnToAll(ctx context.Context, caller string, token FundToken) ([]Payout, error) {
	if err := f.requireManager(caller); err != nil {
		return nil, err
	}
	if err := f.requirePhase(PhaseDistributing); err != nil {
		return nil, err
	}
	if f.Ledger.IsEmpty() {
		return nil, ErrEmptyLedger
	}

	// Snapshot the keys: payOut swap-deletes entries while we iterate.
	investors := f.Ledger.AllKeys()
	payouts := make([]Payout, 0, len(investors))
	for _, investor := range investors {
		deposit := f.Ledger.Get(investor)
		amount, err := f.payOut(ctx, investor, token)
		if err != nil {
			return payouts, err
		}
		payouts = append(payouts, Payout{Investor: investor, Deposit: deposit, Amount: amount})
	}
	return payouts, nil
}

// ============ Configuration (initial phase only) ============

// NominateManager proposes a successor fund manager. The nomination takes
// effect only when the nominee accepts.
func (f *FundState) NominateManager(caller, nominee string) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if nominee == "" {
		return ErrInvalidAddress.Wrap("nominee address is empty")
	}
	if nominee == f.FundManager {
		return ErrInvalidAddress.Wrap("nominee is already the fund manager")
	}
	f.PendingFundManager = nominee
	return nil
}

// AcceptManager completes a manager handover. The remaining-funds address
// follows the new manager.
func (f *FundState) AcceptManager(caller string) error {
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if f.PendingFundManager == "" || caller != f.PendingFundManager {
		return ErrUnauthorized.Wrapf("caller %s is not the pending fund manager", caller)
	}
	f.FundManager = caller
	f.RemainingFundsAddress = caller
	f.PendingFundManager = ""
	return nil
}

// SetRemainingFundsAddress changes the sweep target for round closure.
func (f *FundState) SetRemainingFundsAddress(caller, addr string) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if addr == "" {
		return ErrInvalidAddress.Wrap("remaining funds address is empty")
	}
	f.RemainingFundsAddress = addr
	return nil
}

// SetTokenDenom changes the token the fund moves value in.
func (f *FundState) SetTokenDenom(caller, denom string) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if denom == "" {
		return ErrInvalidConfigValue.Wrap("token denom is empty")
	}
	f.TokenDenom = denom
	return nil
}

// SetDepositMultiple changes the granularity every deposit must respect.
// The existing min/max bounds must already conform to the new multiple.
func (f *FundState) SetDepositMultiple(caller string, multipleOf math.Int) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if multipleOf.IsNil() || !multipleOf.IsPositive() {
		return ErrInvalidConfigValue.Wrap("deposit multiple must be positive")
	}
	if err := validateDepositBounds(f.MinInvestorDeposit, f.MaxInvestorDeposit, multipleOf); err != nil {
		return err
	}
	f.DepositMultipleOf = multipleOf
	return nil
}

// SetMinDeposit changes the lower deposit bound.
func (f *FundState) SetMinDeposit(caller string, minDeposit math.Int) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if err := validateDepositBounds(minDeposit, f.MaxInvestorDeposit, f.DepositMultipleOf); err != nil {
		return err
	}
	f.MinInvestorDeposit = minDeposit
	return nil
}

// SetMaxDeposit changes the upper deposit bound.
func (f *FundState) SetMaxDeposit(caller string, maxDeposit math.Int) error {
	if err := f.requireManager(caller); err != nil {
		return err
	}
	if err := f.requirePhase(PhaseInitial); err != nil {
		return err
	}
	if err := validateDepositBounds(f.MinInvestorDeposit, maxDeposit, f.DepositMultipleOf); err != nil {
		return err
	}
	f.MaxInvestorDeposit = maxDeposit
	return nil
}
