package types

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cosmossdk.io/math"
)

// fakeToken is an in-memory FundToken: a pool balance plus external
// account balances, with switchable transfer failures.
type fakeToken struct {
	pool     math.Int
	accounts map[string]math.Int
	failPull bool
	failPush bool
}

func newFakeToken() *fakeToken {
	return &fakeToken{
		pool:     math.ZeroInt(),
		accounts: make(map[string]math.Int),
	}
}

func (ft *fakeToken) fund(account string, amount int64) {
	ft.accounts[account] = ft.balance(account).Add(math.NewInt(amount))
}

func (ft *fakeToken) balance(account string) math.Int {
	if b, ok := ft.accounts[account]; ok {
		return b
	}
	return math.ZeroInt()
}

func (ft *fakeToken) PoolBalance(ctx context.Context) (math.Int, error) {
	return ft.pool, nil
}

func (ft *fakeToken) Pull(ctx context.Context, from string, amount math.Int) error {
	if ft.failPull {
		return fmt.Errorf("pull refused")
	}
	if ft.balance(from).LT(amount) {
		return fmt.Errorf("insufficient balance")
	}
	ft.accounts[from] = ft.balance(from).Sub(amount)
	ft.pool = ft.pool.Add(amount)
	return nil
}

func (ft *fakeToken) Push(ctx context.Context, to string, amount math.Int) error {
	if ft.failPush {
		return fmt.Errorf("push refused")
	}
	if ft.pool.LT(amount) {
		return fmt.Errorf("insufficient pool balance")
	}
	ft.pool = ft.pool.Sub(amount)
	ft.accounts[to] = ft.balance(to).Add(amount)
	return nil
}

const (
	testManager = "manager"
	testSweep   = "treasury"
)

// newTestFund returns a fund configured for small round-number deposits:
// multiples of 10 between 10 and 1000.
func newTestFund(t *testing.T) *FundState {
	t.Helper()
	fund, err := NewFundState(testManager, "uusdc", math.NewInt(10), math.NewInt(10), math.NewInt(1000))
	if err != nil {
		t.Fatalf("NewFundState: %v", err)
	}
	return fund
}

// openRound advances a fresh fund into the deposit window.
func openRound(t *testing.T, fund *FundState) {
	t.Helper()
	if err := fund.StartDeposits(testManager); err != nil {
		t.Fatalf("StartDeposits: %v", err)
	}
}

// TestRoundLifecycle walks a complete round: three investors deposit,
// the manager pulls the pool out, returns double, and every investor
// withdraws at the 2.0 multiplier
func TestRoundLifecycle(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.fund("alice", 100)
	token.fund("bob", 200)
	token.fund("carol", 300)
	token.fund(testManager, 10000)

	openRound(t, fund)
	if fund.RoundID == "" {
		t.Fatal("expected a round ID after StartDeposits")
	}

	for _, dep := range []struct {
		investor string
		amount   int64
	}{
		{"alice", 100}, {"bob", 200}, {"carol", 300},
	} {
		if err := fund.Deposit(ctx, dep.investor, math.NewInt(dep.amount), token); err != nil {
			t.Fatalf("Deposit(%s): %v", dep.investor, err)
		}
	}
	if !token.pool.Equal(math.NewInt(600)) {
		t.Fatalf("expected pool 600 after deposits, got %s", token.pool)
	}

	if err := fund.StopDeposits(ctx, testManager, token); err != nil {
		t.Fatalf("StopDeposits: %v", err)
	}
	if !fund.AmountBeforeInvestment.Equal(math.NewInt(600)) {
		t.Errorf("expected before-snapshot 600, got %s", fund.AmountBeforeInvestment)
	}

	// Manager takes the pool out to invest, then returns double.
	withdrawn, err := fund.ManagerWithdrawAll(ctx, testManager, token)
	if err != nil {
		t.Fatalf("ManagerWithdrawAll: %v", err)
	}
	if !withdrawn.Equal(math.NewInt(600)) {
		t.Errorf("expected to withdraw 600, got %s", withdrawn)
	}
	if err := fund.ManagerDeposit(ctx, testManager, math.NewInt(1200), token); err != nil {
		t.Fatalf("ManagerDeposit: %v", err)
	}

	if err := fund.StartWithdrawals(ctx, testManager, token); err != nil {
		t.Fatalf("StartWithdrawals: %v", err)
	}
	if !fund.Multiplier.Equal(math.NewInt(2).Mul(MultiplierScale)) {
		t.Fatalf("expected 2.0 multiplier, got %s", fund.Multiplier)
	}

	expected := map[string]int64{"alice": 200, "bob": 400, "carol": 600}
	for investor, want := range expected {
		payout, err := fund.WithdrawAll(ctx, investor, token)
		if err != nil {
			t.Fatalf("WithdrawAll(%s): %v", investor, err)
		}
		if !payout.Equal(math.NewInt(want)) {
			t.Errorf("expected %s payout %d, got %s", investor, want, payout)
		}
	}
	if !fund.Ledger.IsEmpty() {
		t.Error("expected empty ledger after all withdrawals")
	}

	swept, err := fund.StopWithdrawals(ctx, testManager, token)
	if err != nil {
		t.Fatalf("StopWithdrawals: %v", err)
	}
	if !swept.IsZero() {
		t.Errorf("expected nothing to sweep, got %s", swept)
	}
	if fund.Phase != PhaseInitial {
		t.Errorf("expected fund back in initial phase, got %s", fund.Phase)
	}
	if fund.RoundsCompleted != 1 {
		t.Errorf("expected 1 completed round, got %d", fund.RoundsCompleted)
	}
	if fund.RoundID != "" {
		t.Errorf("expected round ID cleared, got %q", fund.RoundID)
	}
	if !fund.Multiplier.Equal(DefaultMultiplier()) {
		t.Errorf("expected multiplier reset to default, got %s", fund.Multiplier)
	}
}

// TestRoundSweepsUnclaimed tests that balances left behind at round close
// go to the remaining-funds address
func TestRoundSweepsUnclaimed(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	if err := fund.SetRemainingFundsAddress(testManager, testSweep); err != nil {
		t.Fatalf("SetRemainingFundsAddress: %v", err)
	}
	token := newFakeToken()
	token.fund("alice", 100)

	openRound(t, fund)
	if err := fund.Deposit(ctx, "alice", math.NewInt(100), token); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := fund.StopDeposits(ctx, testManager, token); err != nil {
		t.Fatalf("StopDeposits: %v", err)
	}
	if err := fund.StartWithdrawals(ctx, testManager, token); err != nil {
		t.Fatalf("StartWithdrawals: %v", err)
	}

	// alice never withdraws
	swept, err := fund.StopWithdrawals(ctx, testManager, token)
	if err != nil {
		t.Fatalf("StopWithdrawals: %v", err)
	}
	if !swept.Equal(math.NewInt(100)) {
		t.Errorf("expected 100 swept, got %s", swept)
	}
	if !token.balance(testSweep).Equal(math.NewInt(100)) {
		t.Errorf("expected sweep target to hold 100, got %s", token.balance(testSweep))
	}
	if !fund.Ledger.IsEmpty() {
		t.Error("expected ledger cleared at round close")
	}
}

// TestEmptyRound tests a round that sees no deposits at all
func TestEmptyRound(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()

	openRound(t, fund)
	if err := fund.StopDeposits(ctx, testManager, token); err != nil {
		t.Fatalf("StopDeposits: %v", err)
	}
	if err := fund.StartWithdrawals(ctx, testManager, token); err != nil {
		t.Fatalf("StartWithdrawals: %v", err)
	}
	if !fund.Multiplier.Equal(DefaultMultiplier()) {
		t.Errorf("expected default multiplier for empty round, got %s", fund.Multiplier)
	}
	swept, err := fund.StopWithdrawals(ctx, testManager, token)
	if err != nil {
		t.Fatalf("StopWithdrawals: %v", err)
	}
	if !swept.IsZero() {
		t.Errorf("expected nothing swept, got %s", swept)
	}
	if fund.RoundsCompleted != 1 {
		t.Errorf("expected round counted, got %d", fund.RoundsCompleted)
	}
}

// TestPhaseGating tests that every operation is rejected outside its
// allowed phases
func TestPhaseGating(t *testing.T) {
	ctx := context.Background()
	token := newFakeToken()

	ops := map[string]func(f *FundState) error{
		"StartDeposits":    func(f *FundState) error { return f.StartDeposits(testManager) },
		"StopDeposits":     func(f *FundState) error { return f.StopDeposits(ctx, testManager, token) },
		"StartWithdrawals": func(f *FundState) error { return f.StartWithdrawals(ctx, testManager, token) },
		"StopWithdrawals": func(f *FundState) error {
			_, err := f.StopWithdrawals(ctx, testManager, token)
			return err
		},
		"Deposit": func(f *FundState) error { return f.Deposit(ctx, "alice", math.NewInt(10), token) },
		"WithdrawAll": func(f *FundState) error {
			_, err := f.WithdrawAll(ctx, "alice", token)
			return err
		},
		"ManagerDeposit":  func(f *FundState) error { return f.ManagerDeposit(ctx, testManager, math.NewInt(10), token) },
		"ManagerWithdraw": func(f *FundState) error { return f.ManagerWithdraw(ctx, testManager, math.NewInt(10), token) },
		"ManagerWithdrawAll": func(f *FundState) error {
			_, err := f.ManagerWithdrawAll(ctx, testManager, token)
			return err
		},
		"ReturnToInvestor": func(f *FundState) error {
			_, err := f.ReturnToInvestor(ctx, testManager, "alice", token)
			return err
		},
		"ReturnToAll": func(f *FundState) error {
			_, err := f.ReturnToAll(ctx, testManager, token)
			return err
		},
		"NominateManager":          func(f *FundState) error { return f.NominateManager(testManager, "nominee") },
		"SetRemainingFundsAddress": func(f *FundState) error { return f.SetRemainingFundsAddress(testManager, testSweep) },
		"SetTokenDenom":            func(f *FundState) error { return f.SetTokenDenom(testManager, "uatom") },
		"SetDepositMultiple":       func(f *FundState) error { return f.SetDepositMultiple(testManager, math.NewInt(10)) },
		"SetMinDeposit":            func(f *FundState) error { return f.SetMinDeposit(testManager, math.NewInt(10)) },
		"SetMaxDeposit":            func(f *FundState) error { return f.SetMaxDeposit(testManager, math.NewInt(1000)) },
	}

	// Which phases each operation is allowed in.
	allowed := map[string][]Phase{
		"StartDeposits":            {PhaseInitial},
		"StopDeposits":             {PhaseAcceptingDeposits},
		"StartWithdrawals":         {PhaseInvesting},
		"StopWithdrawals":          {PhaseDistributing},
		"Deposit":                  {PhaseAcceptingDeposits},
		"WithdrawAll":              {PhaseAcceptingDeposits, PhaseDistributing},
		"ManagerDeposit":           {PhaseInvesting},
		"ManagerWithdraw":          {PhaseInvesting},
		"ManagerWithdrawAll":       {PhaseInvesting},
		"ReturnToInvestor":         {PhaseDistributing},
		"ReturnToAll":              {PhaseDistributing},
		"NominateManager":          {PhaseInitial},
		"SetRemainingFundsAddress": {PhaseInitial},
		"SetTokenDenom":            {PhaseInitial},
		"SetDepositMultiple":       {PhaseInitial},
		"SetMinDeposit":            {PhaseInitial},
		"SetMaxDeposit":            {PhaseInitial},
	}

	phases := []Phase{PhaseInitial, PhaseAcceptingDeposits, PhaseInvesting, PhaseDistributing}
	for name, op := range ops {
		for _, phase := range phases {
			fund := newTestFund(t)
			fund.Phase = phase

			permitted := false
			for _, p := range allowed[name] {
				if p == phase {
					permitted = true
				}
			}
			if permitted {
				continue
			}

			err := op(fund)
			if !errors.Is(err, ErrInvalidPhase) {
				t.Errorf("%s in phase %s: expected ErrInvalidPhase, got %v", name, phase, err)
			}
		}
	}
}

// TestManagerOnly tests that manager operations reject other callers
func TestManagerOnly(t *testing.T) {
	ctx := context.Background()
	token := newFakeToken()

	fund := newTestFund(t)
	if err := fund.StartDeposits("alice"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("StartDeposits by stranger: expected ErrUnauthorized, got %v", err)
	}
	if err := fund.SetTokenDenom("alice", "uatom"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("SetTokenDenom by stranger: expected ErrUnauthorized, got %v", err)
	}

	fund.Phase = PhaseInvesting
	if err := fund.ManagerDeposit(ctx, "alice", math.NewInt(10), token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ManagerDeposit by stranger: expected ErrUnauthorized, got %v", err)
	}
	if _, err := fund.ManagerWithdrawAll(ctx, "alice", token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ManagerWithdrawAll by stranger: expected ErrUnauthorized, got %v", err)
	}

	fund.Phase = PhaseDistributing
	if _, err := fund.ReturnToAll(ctx, "alice", token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ReturnToAll by stranger: expected ErrUnauthorized, got %v", err)
	}
}

// TestDepositValidation tests the per-call deposit checks
func TestDepositValidation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		amount int64
	}{
		{"below minimum", 5},
		{"above maximum", 1010},
		{"not a multiple", 15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fund := newTestFund(t)
			token := newFakeToken()
			token.fund("alice", 10000)
			openRound(t, fund)

			err := fund.Deposit(ctx, "alice", math.NewInt(tc.amount), token)
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected ErrInvalidAmount, got %v", err)
			}
			if !token.pool.IsZero() {
				t.Errorf("expected no value pulled, pool holds %s", token.pool)
			}
			if fund.Ledger.Has("alice") {
				t.Error("expected no ledger entry after rejected deposit")
			}
		})
	}
}

// TestRepeatDepositsValidatedPerCall tests that each deposit is checked
// on its own: the accumulated balance may exceed the per-call maximum
func TestRepeatDepositsValidatedPerCall(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.fund("alice", 3000)
	openRound(t, fund)

	for i := 0; i < 3; i++ {
		if err := fund.Deposit(ctx, "alice", math.NewInt(1000), token); err != nil {
			t.Fatalf("deposit %d: %v", i+1, err)
		}
	}
	if !fund.Ledger.Get("alice").Equal(math.NewInt(3000)) {
		t.Errorf("expected accumulated balance 3000, got %s", fund.Ledger.Get("alice"))
	}
}

// TestDepositTransferFailureLeavesNoTrace tests pull-before-credit
func TestDepositTransferFailureLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.failPull = true
	openRound(t, fund)

	err := fund.Deposit(ctx, "alice", math.NewInt(100), token)
	if !errors.Is(err, ErrTransferFailure) {
		t.Errorf("expected ErrTransferFailure, got %v", err)
	}
	if fund.Ledger.Has("alice") {
		t.Error("expected no ledger entry after failed pull")
	}
}

// TestWithdrawDuringDeposits tests that withdrawing during the deposit
// window returns exactly the deposit
func TestWithdrawDuringDeposits(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.fund("alice", 500)
	openRound(t, fund)

	if err := fund.Deposit(ctx, "alice", math.NewInt(500), token); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	payout, err := fund.WithdrawAll(ctx, "alice", token)
	if err != nil {
		t.Fatalf("WithdrawAll: %v", err)
	}
	if !payout.Equal(math.NewInt(500)) {
		t.Errorf("expected refund 500, got %s", payout)
	}
	if !token.balance("alice").Equal(math.NewInt(500)) {
		t.Errorf("expected alice restored to 500, got %s", token.balance("alice"))
	}
	if fund.Ledger.Has("alice") {
		t.Error("expected ledger entry removed")
	}
}

// TestWithdrawUnknownInvestor tests the no-balance error path
func TestWithdrawUnknownInvestor(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	openRound(t, fund)

	_, err := fund.WithdrawAll(ctx, "nobody", token)
	if !errors.Is(err, ErrNoSuchInvestor) {
		t.Errorf("expected ErrNoSuchInvestor, got %v", err)
	}
}

// TestWithdrawTransferFailureKeepsEntry tests push-before-remove
func TestWithdrawTransferFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.fund("alice", 100)
	openRound(t, fund)

	if err := fund.Deposit(ctx, "alice", math.NewInt(100), token); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	token.failPush = true

	_, err := fund.WithdrawAll(ctx, "alice", token)
	if !errors.Is(err, ErrTransferFailure) {
		t.Errorf("expected ErrTransferFailure, got %v", err)
	}
	if !fund.Ledger.Get("alice").Equal(math.NewInt(100)) {
		t.Errorf("expected ledger entry intact, got %s", fund.Ledger.Get("alice"))
	}
}

// TestManagerWithdrawBounds tests the pool balance check on partial
// manager withdrawals
func TestManagerWithdrawBounds(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.pool = math.NewInt(100)
	fund.Phase = PhaseInvesting

	if err := fund.ManagerWithdraw(ctx, testManager, math.NewInt(150), token); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for overdraw, got %v", err)
	}
	if err := fund.ManagerWithdraw(ctx, testManager, math.NewInt(60), token); err != nil {
		t.Fatalf("ManagerWithdraw: %v", err)
	}
	if !token.pool.Equal(math.NewInt(40)) {
		t.Errorf("expected pool 40 after withdrawal, got %s", token.pool)
	}
}

// TestReturnToAll tests the forced full distribution
func TestReturnToAll(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	token.fund("alice", 100)
	token.fund("bob", 200)
	openRound(t, fund)

	if err := fund.Deposit(ctx, "alice", math.NewInt(100), token); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := fund.Deposit(ctx, "bob", math.NewInt(200), token); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := fund.StopDeposits(ctx, testManager, token); err != nil {
		t.Fatalf("StopDeposits: %v", err)
	}
	if err := fund.StartWithdrawals(ctx, testManager, token); err != nil {
		t.Fatalf("StartWithdrawals: %v", err)
	}

	payouts, err := fund.ReturnToAll(ctx, testManager, token)
	if err != nil {
		t.Fatalf("ReturnToAll: %v", err)
	}
	if len(payouts) != 2 {
		t.Fatalf("expected 2 payouts, got %d", len(payouts))
	}
	if !fund.Ledger.IsEmpty() {
		t.Error("expected empty ledger after ReturnToAll")
	}
	if !token.balance("alice").Equal(math.NewInt(100)) {
		t.Errorf("expected alice refunded 100, got %s", token.balance("alice"))
	}
	if !token.balance("bob").Equal(math.NewInt(200)) {
		t.Errorf("expected bob refunded 200, got %s", token.balance("bob"))
	}

	// A second call finds nothing to distribute.
	if _, err := fund.ReturnToAll(ctx, testManager, token); !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("expected ErrEmptyLedger on repeat call, got %v", err)
	}
}

// TestReturnToAllPartialFailure tests that a mid-iteration transfer
// failure keeps the remaining entries and reports the payouts that landed
func TestReturnToAllPartialFailure(t *testing.T) {
	ctx := context.Background()
	fund := newTestFund(t)
	token := newFakeToken()
	for _, inv := range []string{"alice", "bob", "carol"} {
		token.fund(inv, 100)
	}
	openRound(t, fund)
	for _, inv := range []string{"alice", "bob", "carol"} {
		if err := fund.Deposit(ctx, inv, math.NewInt(100), token); err != nil {
			t.Fatalf("Deposit(%s): %v", inv, err)
		}
	}
	if err := fund.StopDeposits(ctx, testManager, token); err != nil {
		t.Fatalf("StopDeposits: %v", err)
	}
	if err := fund.StartWithdrawals(ctx, testManager, token); err != nil {
		t.Fatalf("StartWithdrawals: %v", err)
	}

	// Drain most of the pool behind the ledger's back so the second
	// payout fails on funds.
	token.pool = math.NewInt(150)

	payouts, err := fund.ReturnToAll(ctx, testManager, token)
	if !errors.Is(err, ErrTransferFailure) {
		t.Fatalf("expected ErrTransferFailure, got %v", err)
	}
	if len(payouts) != 1 {
		t.Fatalf("expected 1 completed payout before the failure, got %d", len(payouts))
	}
	// Paid investors are gone; the rest keep their entries.
	if fund.Ledger.Has(payouts[0].Investor) {
		t.Errorf("expected paid investor %s removed", payouts[0].Investor)
	}
	if fund.Ledger.Len() != 2 {
		t.Errorf("expected 2 investors remaining, got %d", fund.Ledger.Len())
	}
}

// TestManagerHandover tests the nominate/accept flow
func TestManagerHandover(t *testing.T) {
	fund := newTestFund(t)

	if err := fund.NominateManager(testManager, testManager); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("expected self-nomination rejected, got %v", err)
	}
	if err := fund.NominateManager(testManager, "successor"); err != nil {
		t.Fatalf("NominateManager: %v", err)
	}

	// Only the nominee can accept.
	if err := fund.AcceptManager("stranger"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected stranger rejected, got %v", err)
	}
	if err := fund.AcceptManager("successor"); err != nil {
		t.Fatalf("AcceptManager: %v", err)
	}

	if fund.FundManager != "successor" {
		t.Errorf("expected successor as manager, got %s", fund.FundManager)
	}
	if fund.RemainingFundsAddress != "successor" {
		t.Errorf("expected remaining-funds address to follow, got %s", fund.RemainingFundsAddress)
	}
	if fund.PendingFundManager != "" {
		t.Errorf("expected nomination cleared, got %q", fund.PendingFundManager)
	}

	// Old manager has lost control.
	if err := fund.SetTokenDenom(testManager, "uatom"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected old manager rejected, got %v", err)
	}

	// Accepting again without a fresh nomination fails.
	if err := fund.AcceptManager("successor"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected repeat accept rejected, got %v", err)
	}
}

// TestConfigValidation tests the initial-phase setters
func TestConfigValidation(t *testing.T) {
	fund := newTestFund(t)

	if err := fund.SetDepositMultiple(testManager, math.NewInt(0)); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected zero multiple rejected, got %v", err)
	}
	// Min 10 / max 1000 are not multiples of 7.
	if err := fund.SetDepositMultiple(testManager, math.NewInt(7)); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected mismatched multiple rejected, got %v", err)
	}
	if err := fund.SetMinDeposit(testManager, math.NewInt(1000)); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected min == max rejected, got %v", err)
	}
	if err := fund.SetMaxDeposit(testManager, math.NewInt(10)); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected max == min rejected, got %v", err)
	}
	if err := fund.SetMinDeposit(testManager, math.NewInt(15)); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected non-multiple min rejected, got %v", err)
	}
	if err := fund.SetTokenDenom(testManager, ""); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected empty denom rejected, got %v", err)
	}
	if err := fund.SetRemainingFundsAddress(testManager, ""); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("expected empty address rejected, got %v", err)
	}

	// Valid updates land.
	if err := fund.SetMinDeposit(testManager, math.NewInt(50)); err != nil {
		t.Fatalf("SetMinDeposit: %v", err)
	}
	if err := fund.SetMaxDeposit(testManager, math.NewInt(500)); err != nil {
		t.Fatalf("SetMaxDeposit: %v", err)
	}
	if err := fund.SetDepositMultiple(testManager, math.NewInt(50)); err != nil {
		t.Fatalf("SetDepositMultiple: %v", err)
	}
}

// TestNewFundStateValidation tests constructor rejection paths
func TestNewFundStateValidation(t *testing.T) {
	testCases := []struct {
		name       string
		manager    string
		denom      string
		multipleOf int64
		minDep     int64
		maxDep     int64
	}{
		{"empty manager", "", "uusdc", 1, 1, 100},
		{"empty denom", testManager, "", 1, 1, 100},
		{"zero multiple", testManager, "uusdc", 0, 1, 100},
		{"zero min", testManager, "uusdc", 1, 0, 100},
		{"min above max", testManager, "uusdc", 1, 100, 10},
		{"min not a multiple", testManager, "uusdc", 10, 5, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFundState(tc.manager, tc.denom, math.NewInt(tc.multipleOf), math.NewInt(tc.minDep), math.NewInt(tc.maxDep))
			if err == nil {
				t.Error("expected constructor to fail")
			}
		})
	}
}

// TestTruncationRound walks the loss case from end to end: 7 deposited,
// pool shrinks to 6, the investor receives 6 and the dust stays for the
// sweep
func TestTruncationRound(t *testing.T) {
	ctx := context.Background()
	fund, err := NewFundState(testManager, "uusdc", math.NewInt(1), math.NewInt(1), math.NewInt(1000))
	if err != nil {
		t.Fatalf("NewFundState: %v", err)
	}
	if err := fund.SetRemainingFundsAddress(testManager, testSweep); err != nil {
		t.Fatalf("SetRemainingFundsAddress: %v", err)
	}
	token := newFakeToken()
	token.fund("alice", 7)
	token.fund(testManager, 1000)

	openRound(t, fund)
	if err := fund.Deposit(ctx, "alice", math.NewInt(7), token); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := fund.StopDeposits(ctx, testManager, token); err != nil {
		t.Fatalf("StopDeposits: %v", err)
	}
	if err := fund.ManagerWithdraw(ctx, testManager, math.NewInt(1), token); err != nil {
		t.Fatalf("ManagerWithdraw: %v", err)
	}
	if err := fund.StartWithdrawals(ctx, testManager, token); err != nil {
		t.Fatalf("StartWithdrawals: %v", err)
	}

	// 6/7 scales to 857142857142 fixed-point.
	expected, _ := math.NewIntFromString("857142857142")
	if !fund.Multiplier.Equal(expected) {
		t.Fatalf("expected multiplier %s, got %s", expected, fund.Multiplier)
	}

	payout, err := fund.WithdrawAll(ctx, "alice", token)
	if err != nil {
		t.Fatalf("WithdrawAll: %v", err)
	}
	if !payout.Equal(math.NewInt(5)) {
		t.Errorf("expected truncated payout 5, got %s", payout)
	}

	// The remaining unit of dust goes to the sweep.
	swept, err := fund.StopWithdrawals(ctx, testManager, token)
	if err != nil {
		t.Fatalf("StopWithdrawals: %v", err)
	}
	if !swept.Equal(math.NewInt(1)) {
		t.Errorf("expected 1 unit of dust swept, got %s", swept)
	}
}
