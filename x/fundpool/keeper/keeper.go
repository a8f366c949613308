package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// Store key prefixes
var (
	FundStateKeyPrefix = []byte{0x01}
)

// PoolAddress is the module account holding the fund's custodial balance.
var PoolAddress = authtypes.NewModuleAddress(types.ModuleName)

// BankKeeper defines the expected interface for the bank module. It is
// the token collaborator the fund moves value through.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// Keeper manages the fundpool module state
type Keeper struct {
	cdc        codec.BinaryCodec
	storeKey   storetypes.StoreKey
	bankKeeper BankKeeper
	logger     log.Logger
	authority  string
	guard      entryGuard
}

// NewKeeper creates a new fundpool keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	bankKeeper BankKeeper,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:        cdc,
		storeKey:   storeKey,
		bankKeeper: bankKeeper,
		authority:  authority,
		logger:     logger.With("module", "x/fundpool"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the governance authority address
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ============ Fund State Persistence ============

// SetFundState saves the fund state to the store
func (k *Keeper) SetFundState(ctx sdk.Context, state *types.FundState) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(state)
	store.Set(FundStateKeyPrefix, bz)
}

// decodeFundState decodes a persisted fund state record, restoring an
// empty ledger for records written before any investor deposited.
func decodeFundState(bz []byte) (*types.FundState, error) {
	var state types.FundState
	if err := json.Unmarshal(bz, &state); err != nil {
		return nil, err
	}
	if state.Ledger == nil {
		state.Ledger = types.NewLedger()
	}
	if state.Ledger.Entries == nil {
		state.Ledger.Entries = make(map[string]*types.LedgerEntry)
	}
	return &state, nil
}

// GetFundState retrieves the fund state from the store, or nil if the
// fund has not been initialized. A record that exists but cannot be
// decoded is corruption, not an uninitialized fund; treating it as
// absent would let a later InitFund silently overwrite it.
func (k *Keeper) GetFundState(ctx sdk.Context) *types.FundState {
	store := k.GetStore(ctx)
	bz := store.Get(FundStateKeyPrefix)
	if bz == nil {
		return nil
	}
	state, err := decodeFundState(bz)
	if err != nil {
		k.logger.Error("corrupt fund state record", "err", err)
		panic(fmt.Sprintf("fund state record cannot be decoded: %v", err))
	}
	return state
}

// intAttr formats an int for event attributes
func intAttr(n int) string {
	return strconv.Itoa(n)
}

// mustFundState returns the fund state or an initialization error
func (k *Keeper) mustFundState(ctx sdk.Context) (*types.FundState, error) {
	state := k.GetFundState(ctx)
	if state == nil {
		return nil, types.ErrFundNotInitialized
	}
	return state, nil
}

// InitFund creates the fund in its initial phase. Called once, from
// genesis or by the chain operator during setup.
func (k *Keeper) InitFund(ctx sdk.Context, manager, denom string, multipleOf, minDeposit, maxDeposit math.Int) error {
	if k.GetFundState(ctx) != nil {
		return types.ErrFundAlreadyInitialized
	}
	state, err := types.NewFundState(manager, denom, multipleOf, minDeposit, maxDeposit)
	if err != nil {
		return err
	}
	k.SetFundState(ctx, state)
	k.logger.Info("Fund initialized",
		"fund_manager", manager,
		"token_denom", denom,
		"min_deposit", minDeposit.String(),
		"max_deposit", maxDeposit.String(),
	)
	return nil
}
