package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// MsgServer defines the fundpool MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// parseAmount parses a decimal-string amount already screened by
// ValidateBasic.
func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("cannot parse %q", s)
	}
	return amount, nil
}

// Deposit handles MsgDeposit
func (m *MsgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	amount, err := parseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	balance, err := m.keeper.Deposit(ctx, msg.Investor, amount)
	if err != nil {
		return nil, err
	}
	state := m.keeper.GetFundState(sdk.UnwrapSDKContext(ctx))
	return &types.MsgDepositResponse{
		LedgerBalance: balance.String(),
		RoundID:       state.RoundID,
	}, nil
}

// WithdrawAll handles MsgWithdrawAll
func (m *MsgServer) WithdrawAll(ctx context.Context, msg *types.MsgWithdrawAll) (*types.MsgWithdrawAllResponse, error) {
	deposit, payout, err := m.keeper.WithdrawAll(ctx, msg.Investor)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawAllResponse{
		Deposit: deposit.String(),
		Payout:  payout.String(),
	}, nil
}

// ManagerDeposit handles MsgManagerDeposit
func (m *MsgServer) ManagerDeposit(ctx context.Context, msg *types.MsgManagerDeposit) (*types.MsgManagerDepositResponse, error) {
	amount, err := parseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	if err := m.keeper.ManagerDeposit(ctx, msg.Manager, amount); err != nil {
		return nil, err
	}
	return &types.MsgManagerDepositResponse{}, nil
}

// ManagerWithdraw handles MsgManagerWithdraw
func (m *MsgServer) ManagerWithdraw(ctx context.Context, msg *types.MsgManagerWithdraw) (*types.MsgManagerWithdrawResponse, error) {
	amount, err := parseAmount(msg.Amount)
	if err != nil {
		return nil, err
	}
	if err := m.keeper.ManagerWithdraw(ctx, msg.Manager, amount); err != nil {
		return nil, err
	}
	return &types.MsgManagerWithdrawResponse{}, nil
}

// ManagerWithdrawAll handles MsgManagerWithdrawAll
func (m *MsgServer) ManagerWithdrawAll(ctx context.Context, msg *types.MsgManagerWithdrawAll) (*types.MsgManagerWithdrawAllResponse, error) {
	amount, err := m.keeper.ManagerWithdrawAll(ctx, msg.Manager)
	if err != nil {
		return nil, err
	}
	return &types.MsgManagerWithdrawAllResponse{Amount: amount.String()}, nil
}

// ReturnToInvestor handles MsgReturnToInvestor
func (m *MsgServer) ReturnToInvestor(ctx context.Context, msg *types.MsgReturnToInvestor) (*types.MsgReturnToInvestorResponse, error) {
	payout, err := m.keeper.ReturnToInvestor(ctx, msg.Manager, msg.Investor)
	if err != nil {
		return nil, err
	}
	return &types.MsgReturnToInvestorResponse{Payout: payout.String()}, nil
}

// ReturnToAll handles MsgReturnToAll
func (m *MsgServer) ReturnToAll(ctx context.Context, msg *types.MsgReturnToAll) (*types.MsgReturnToAllResponse, error) {
	payouts, err := m.keeper.ReturnToAll(ctx, msg.Manager)
	if err != nil {
		return nil, err
	}
	return &types.MsgReturnToAllResponse{Payouts: payouts}, nil
}

// NominateManager handles MsgNominateManager
func (m *MsgServer) NominateManager(ctx context.Context, msg *types.MsgNominateManager) (*types.MsgNominateManagerResponse, error) {
	if err := m.keeper.NominateManager(ctx, msg.Manager, msg.Nominee); err != nil {
		return nil, err
	}
	return &types.MsgNominateManagerResponse{}, nil
}

// AcceptManager handles MsgAcceptManager
func (m *MsgServer) AcceptManager(ctx context.Context, msg *types.MsgAcceptManager) (*types.MsgAcceptManagerResponse, error) {
	if err := m.keeper.AcceptManager(ctx, msg.Nominee); err != nil {
		return nil, err
	}
	return &types.MsgAcceptManagerResponse{}, nil
}

// SetRemainingFundsAddress handles MsgSetRemainingFundsAddress
func (m *MsgServer) SetRemainingFundsAddress(ctx context.Context, msg *types.MsgSetRemainingFundsAddress) (*types.MsgSetRemainingFundsAddressResponse, error) {
	if err := m.keeper.SetRemainingFundsAddress(ctx, msg.Manager, msg.Address); err != nil {
		return nil, err
	}
	return &types.MsgSetRemainingFundsAddressResponse{}, nil
}

// SetTokenDenom handles MsgSetTokenDenom
func (m *MsgServer) SetTokenDenom(ctx context.Context, msg *types.MsgSetTokenDenom) (*types.MsgSetTokenDenomResponse, error) {
	if err := m.keeper.SetTokenDenom(ctx, msg.Manager, msg.Denom); err != nil {
		return nil, err
	}
	return &types.MsgSetTokenDenomResponse{}, nil
}

// SetDepositMultiple handles MsgSetDepositMultiple
func (m *MsgServer) SetDepositMultiple(ctx context.Context, msg *types.MsgSetDepositMultiple) (*types.MsgSetDepositMultipleResponse, error) {
	multipleOf, err := parseAmount(msg.MultipleOf)
	if err != nil {
		return nil, err
	}
	if err := m.keeper.SetDepositMultiple(ctx, msg.Manager, multipleOf); err != nil {
		return nil, err
	}
	return &types.MsgSetDepositMultipleResponse{}, nil
}

// SetMinDeposit handles MsgSetMinDeposit
func (m *MsgServer) SetMinDeposit(ctx context.Context, msg *types.MsgSetMinDeposit) (*types.MsgSetMinDepositResponse, error) {
	minDeposit, err := parseAmount(msg.MinDeposit)
	if err != nil {
		return nil, err
	}
	if err := m.keeper.SetMinDeposit(ctx, msg.Manager, minDeposit); err != nil {
		return nil, err
	}
	return &types.MsgSetMinDepositResponse{}, nil
}

// SetMaxDeposit handles MsgSetMaxDeposit
func (m *MsgServer) SetMaxDeposit(ctx context.Context, msg *types.MsgSetMaxDeposit) (*types.MsgSetMaxDepositResponse, error) {
	maxDeposit, err := parseAmount(msg.MaxDeposit)
	if err != nil {
		return nil, err
	}
	if err := m.keeper.SetMaxDeposit(ctx, msg.Manager, maxDeposit); err != nil {
		return nil, err
	}
	return &types.MsgSetMaxDepositResponse{}, nil
}

// StartDeposits handles MsgStartDeposits
func (m *MsgServer) StartDeposits(ctx context.Context, msg *types.MsgStartDeposits) (*types.MsgStartDepositsResponse, error) {
	roundID, err := m.keeper.StartDeposits(ctx, msg.Manager)
	if err != nil {
		return nil, err
	}
	return &types.MsgStartDepositsResponse{RoundID: roundID}, nil
}

// StopDeposits handles MsgStopDeposits
func (m *MsgServer) StopDeposits(ctx context.Context, msg *types.MsgStopDeposits) (*types.MsgStopDepositsResponse, error) {
	before, err := m.keeper.StopDeposits(ctx, msg.Manager)
	if err != nil {
		return nil, err
	}
	return &types.MsgStopDepositsResponse{AmountBeforeInvestment: before.String()}, nil
}

// StartWithdrawals handles MsgStartWithdrawals
func (m *MsgServer) StartWithdrawals(ctx context.Context, msg *types.MsgStartWithdrawals) (*types.MsgStartWithdrawalsResponse, error) {
	after, multiplier, err := m.keeper.StartWithdrawals(ctx, msg.Manager)
	if err != nil {
		return nil, err
	}
	return &types.MsgStartWithdrawalsResponse{
		AmountAfterInvestment: after.String(),
		Multiplier:            multiplier.String(),
	}, nil
}

// StopWithdrawals handles MsgStopWithdrawals
func (m *MsgServer) StopWithdrawals(ctx context.Context, msg *types.MsgStopWithdrawals) (*types.MsgStopWithdrawalsResponse, error) {
	swept, err := m.keeper.StopWithdrawals(ctx, msg.Manager)
	if err != nil {
		return nil, err
	}
	return &types.MsgStopWithdrawalsResponse{SweptAmount: swept.String()}, nil
}
