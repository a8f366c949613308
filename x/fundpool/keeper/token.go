package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// bankToken adapts the bank keeper to the FundToken collaborator for one
// denom. Custody is the module account's balance in that denom.
type bankToken struct {
	bank  BankKeeper
	denom string
}

var _ types.FundToken = bankToken{}

// token returns the FundToken for the fund's currently configured denom.
func (k *Keeper) token(state *types.FundState) types.FundToken {
	return bankToken{bank: k.bankKeeper, denom: state.TokenDenom}
}

// PoolBalance returns the module account's custodial balance.
func (t bankToken) PoolBalance(ctx context.Context) (math.Int, error) {
	return t.bank.GetBalance(ctx, PoolAddress, t.denom).Amount, nil
}

// Pull moves value from an external account into custody.
func (t bankToken) Pull(ctx context.Context, from string, amount math.Int) error {
	addr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("sender: %s", from)
	}
	coins := sdk.NewCoins(sdk.NewCoin(t.denom, amount))
	return t.bank.SendCoinsFromAccountToModule(ctx, addr, types.ModuleName, coins)
}

// Push moves value from custody to an external account.
func (t bankToken) Push(ctx context.Context, to string, amount math.Int) error {
	addr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("recipient: %s", to)
	}
	coins := sdk.NewCoins(sdk.NewCoin(t.denom, amount))
	return t.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins)
}
