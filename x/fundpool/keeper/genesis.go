package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// InitGenesis initializes the fund from genesis configuration. A fund
// already present in the store (chain restart) is left untouched.
func (k *Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) error {
	if k.GetFundState(ctx) != nil {
		return nil
	}
	if err := gs.Validate(); err != nil {
		return err
	}
	return k.InitFund(ctx, gs.FundManager, gs.TokenDenom, gs.DepositMultipleOf, gs.MinInvestorDeposit, gs.MaxInvestorDeposit)
}

// ExportGenesis exports the fund's configuration. Round state is not
// exported: an export mid-round is not supported and the round must be
// closed first.
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	state := k.GetFundState(ctx)
	if state == nil {
		return types.DefaultGenesis()
	}
	return &types.GenesisState{
		FundManager:        state.FundManager,
		TokenDenom:         state.TokenDenom,
		DepositMultipleOf:  state.DepositMultipleOf,
		MinInvestorDeposit: state.MinInvestorDeposit,
		MaxInvestorDeposit: state.MaxInvestorDeposit,
	}
}
