package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState carries the construction-time fund configuration.
type GenesisState struct {
	FundManager        string   `json:"fund_manager"`
	TokenDenom         string   `json:"token_denom"`
	DepositMultipleOf  math.Int `json:"deposit_multiple_of"`
	MinInvestorDeposit math.Int `json:"min_investor_deposit"`
	MaxInvestorDeposit math.Int `json:"max_investor_deposit"`
}

// DefaultGenesis returns a genesis state with placeholder bounds. The
// fund manager must be set before the module can initialize.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		TokenDenom:         "uusdc",
		DepositMultipleOf:  math.NewInt(1),
		MinInvestorDeposit: math.NewInt(1),
		MaxInvestorDeposit: math.NewIntWithDecimal(1, 18),
	}
}

// Validate checks the genesis configuration against the same invariants
// the initial-phase setters enforce.
func (gs *GenesisState) Validate() error {
	if _, err := sdk.AccAddressFromBech32(gs.FundManager); err != nil {
		return ErrInvalidAddress.Wrapf("fund manager: %s", gs.FundManager)
	}
	if err := sdk.ValidateDenom(gs.TokenDenom); err != nil {
		return ErrInvalidConfigValue.Wrapf("token denom: %s", gs.TokenDenom)
	}
	if gs.DepositMultipleOf.IsNil() || !gs.DepositMultipleOf.IsPositive() {
		return ErrInvalidConfigValue.Wrap("deposit multiple must be positive")
	}
	return validateDepositBounds(gs.MinInvestorDeposit, gs.MaxInvestorDeposit, gs.DepositMultipleOf)
}
