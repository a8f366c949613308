package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryServer defines the fundpool QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// FundStatus is the read-only snapshot of the fund's configuration and
// the active round.
type FundStatus struct {
	FundManager            string   `json:"fund_manager"`
	PendingFundManager     string   `json:"pending_fund_manager,omitempty"`
	RemainingFundsAddress  string   `json:"remaining_funds_address"`
	TokenDenom             string   `json:"token_denom"`
	DepositMultipleOf      math.Int `json:"deposit_multiple_of"`
	MinInvestorDeposit     math.Int `json:"min_investor_deposit"`
	MaxInvestorDeposit     math.Int `json:"max_investor_deposit"`
	Phase                  string   `json:"phase"`
	RoundID                string   `json:"round_id,omitempty"`
	RoundsCompleted        uint64   `json:"rounds_completed"`
	AmountBeforeInvestment math.Int `json:"amount_before_investment"`
	AmountAfterInvestment  math.Int `json:"amount_after_investment"`
	Multiplier             math.Int `json:"multiplier"`
	InvestorCount          int      `json:"investor_count"`
	PoolBalance            math.Int `json:"pool_balance"`
}

// Status returns the fund's configuration, phase, round snapshots, and
// custodial balance.
func (q *QueryServer) Status(ctx context.Context) (*FundStatus, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	state, err := q.keeper.mustFundState(sdkCtx)
	if err != nil {
		return nil, err
	}
	balance, err := q.keeper.token(state).PoolBalance(ctx)
	if err != nil {
		return nil, err
	}
	return &FundStatus{
		FundManager:            state.FundManager,
		PendingFundManager:     state.PendingFundManager,
		RemainingFundsAddress:  state.RemainingFundsAddress,
		TokenDenom:             state.TokenDenom,
		DepositMultipleOf:      state.DepositMultipleOf,
		MinInvestorDeposit:     state.MinInvestorDeposit,
		MaxInvestorDeposit:     state.MaxInvestorDeposit,
		Phase:                  string(state.Phase),
		RoundID:                state.RoundID,
		RoundsCompleted:        state.RoundsCompleted,
		AmountBeforeInvestment: state.AmountBeforeInvestment,
		AmountAfterInvestment:  state.AmountAfterInvestment,
		Multiplier:             state.Multiplier,
		InvestorCount:          state.Ledger.Len(),
		PoolBalance:            balance,
	}, nil
}

// InvestorBalance returns one investor's ledger balance; zero when the
// investor is not present.
func (q *QueryServer) InvestorBalance(ctx context.Context, investor string) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	state, err := q.keeper.mustFundState(sdkCtx)
	if err != nil {
		return math.Int{}, err
	}
	return state.Ledger.Get(investor), nil
}

// InvestorEntry pairs an investor with their deposited amount.
type InvestorEntry struct {
	Investor string   `json:"investor"`
	Deposit  math.Int `json:"deposit"`
}

// Investors returns the investor list with balances, paginated.
func (q *QueryServer) Investors(ctx context.Context, offset, limit uint64) ([]InvestorEntry, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	state, err := q.keeper.mustFundState(sdkCtx)
	if err != nil {
		return nil, 0, err
	}

	total := uint64(state.Ledger.Len())
	if offset >= total {
		return []InvestorEntry{}, total, nil
	}
	end := pageEnd(offset, limit, total)

	investors := make([]InvestorEntry, 0, end-offset)
	for i := offset; i < end; i++ {
		key, _ := state.Ledger.KeyAt(int(i))
		amount, _ := state.Ledger.AmountAt(int(i))
		investors = append(investors, InvestorEntry{Investor: key, Deposit: amount})
	}
	return investors, total, nil
}

// pageEnd computes the exclusive end index of a page. The remaining
// count is compared before any addition so an oversized limit cannot
// wrap around; a zero limit means "the rest".
func pageEnd(offset, limit, total uint64) uint64 {
	if limit == 0 || limit > total-offset {
		return total
	}
	return offset + limit
}

// PoolBalance returns the fund's custodial token balance.
func (q *QueryServer) PoolBalance(ctx context.Context) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	state, err := q.keeper.mustFundState(sdkCtx)
	if err != nil {
		return math.Int{}, err
	}
	return q.keeper.token(state).PoolBalance(ctx)
}
