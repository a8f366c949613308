package types

import (
	"cosmossdk.io/math"
)

// Module name and store key
const (
	ModuleName = "fundpool"
	StoreKey   = ModuleName
)

// Phase identifies where the active round is in its lifecycle.
type Phase string

// Round phases
const (
	PhaseInitial           Phase = "initial"
	PhaseAcceptingDeposits Phase = "accepting_deposits"
	PhaseInvesting         Phase = "investing"
	PhaseDistributing      Phase = "distributing"
)

// IsValid reports whether p is one of the defined phases.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseInitial, PhaseAcceptingDeposits, PhaseInvesting, PhaseDistributing:
		return true
	}
	return false
}

// FundState is the whole fund: configuration, the active round, and the
// investor ledger. It is persisted as a single record by the keeper and
// every operation handler receives it by reference.
type FundState struct {
	// Configuration. Mutable only while the fund is in the initial phase.
	FundManager           string   `json:"fund_manager"`
	PendingFundManager    string   `json:"pending_fund_manager,omitempty"`
	RemainingFundsAddress string   `json:"remaining_funds_address"`
	TokenDenom            string   `json:"token_denom"`
	DepositMultipleOf     math.Int `json:"deposit_multiple_of"`
	MinInvestorDeposit    math.Int `json:"min_investor_deposit"`
	MaxInvestorDeposit    math.Int `json:"max_investor_deposit"`

	// Round state. Reset at the end of every round.
	Phase                  Phase    `json:"phase"`
	RoundID                string   `json:"round_id,omitempty"`
	RoundsCompleted        uint64   `json:"rounds_completed"`
	AmountBeforeInvestment math.Int `json:"amount_before_investment"`
	AmountAfterInvestment  math.Int `json:"amount_after_investment"`
	Multiplier             math.Int `json:"multiplier"`

	// Investor ledger for the active round.
	Ledger *Ledger `json:"ledger"`
}

// NewFundState creates a fund in the initial phase. The remaining-funds
// address starts at the fund manager and follows manager handovers.
func NewFundState(manager, denom string, multipleOf, minDeposit, maxDeposit math.Int) (*FundState, error) {
	if manager == "" {
		return nil, ErrInvalidAddress.Wrap("fund manager address is empty")
	}
	if denom == "" {
		return nil, ErrInvalidConfigValue.Wrap("token denom is empty")
	}
	if multipleOf.IsNil() || !multipleOf.IsPositive() {
		return nil, ErrInvalidConfigValue.Wrap("deposit multiple must be positive")
	}
	if err := validateDepositBounds(minDeposit, maxDeposit, multipleOf); err != nil {
		return nil, err
	}

	return &FundState{
		FundManager:            manager,
		RemainingFundsAddress:  manager,
		TokenDenom:             denom,
		DepositMultipleOf:      multipleOf,
		MinInvestorDeposit:     minDeposit,
		MaxInvestorDeposit:     maxDeposit,
		Phase:                  PhaseInitial,
		AmountBeforeInvestment: math.ZeroInt(),
		AmountAfterInvestment:  math.ZeroInt(),
		Multiplier:             DefaultMultiplier(),
		Ledger:                 NewLedger(),
	}, nil
}

// validateDepositBounds checks the min/max deposit invariants: both
// nonzero, min strictly below max, both exact multiples of multipleOf.
func validateDepositBounds(minDeposit, maxDeposit, multipleOf math.Int) error {
	if minDeposit.IsNil() || !minDeposit.IsPositive() {
		return ErrInvalidConfigValue.Wrap("minimum deposit must be positive")
	}
	if maxDeposit.IsNil() || !maxDeposit.IsPositive() {
		return ErrInvalidConfigValue.Wrap("maximum deposit must be positive")
	}
	if minDeposit.GTE(maxDeposit) {
		return ErrInvalidConfigValue.Wrapf("minimum deposit %s must be below maximum %s", minDeposit, maxDeposit)
	}
	if !minDeposit.Mod(multipleOf).IsZero() {
		return ErrInvalidConfigValue.Wrapf("minimum deposit %s is not a multiple of %s", minDeposit, multipleOf)
	}
	if !maxDeposit.Mod(multipleOf).IsZero() {
		return ErrInvalidConfigValue.Wrapf("maximum deposit %s is not a multiple of %s", maxDeposit, multipleOf)
	}
	return nil
}

// Payout records one investor payout produced by a forced return.
type Payout struct {
	Investor string   `json:"investor"`
	Deposit  math.Int `json:"deposit"`
	Amount   math.Int `json:"amount"`
}
