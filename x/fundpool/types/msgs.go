package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgDeposit                  = "deposit"
	TypeMsgWithdrawAll              = "withdraw_all"
	TypeMsgManagerDeposit           = "manager_deposit"
	TypeMsgManagerWithdraw          = "manager_withdraw"
	TypeMsgManagerWithdrawAll       = "manager_withdraw_all"
	TypeMsgReturnToInvestor         = "return_to_investor"
	TypeMsgReturnToAll              = "return_to_all"
	TypeMsgNominateManager          = "nominate_manager"
	TypeMsgAcceptManager            = "accept_manager"
	TypeMsgSetRemainingFundsAddress = "set_remaining_funds_address"
	TypeMsgSetTokenDenom            = "set_token_denom"
	TypeMsgSetDepositMultiple       = "set_deposit_multiple"
	TypeMsgSetMinDeposit            = "set_min_deposit"
	TypeMsgSetMaxDeposit            = "set_max_deposit"
	TypeMsgStartDeposits            = "start_deposits"
	TypeMsgStopDeposits             = "stop_deposits"
	TypeMsgStartWithdrawals         = "start_withdrawals"
	TypeMsgStopWithdrawals          = "stop_withdrawals"
)

// validateAddress checks a bech32 account address field.
func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return ErrInvalidAddress.Wrapf("%s: %s", field, addr)
	}
	return nil
}

// validateAmount checks a decimal-string amount field for presence and
// positivity; range checks belong to the keeper.
func validateAmount(field, amount string) error {
	value, ok := math.NewIntFromString(amount)
	if !ok {
		return ErrInvalidAmount.Wrapf("%s: cannot parse %q", field, amount)
	}
	if !value.IsPositive() {
		return ErrInvalidAmount.Wrapf("%s: must be positive, got %s", field, amount)
	}
	return nil
}

// signerAddress resolves a bech32 address already checked by
// ValidateBasic.
func signerAddress(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// MsgDeposit defines an investor deposit
type MsgDeposit struct {
	Investor string `json:"investor"`
	Amount   string `json:"amount"`
}

func (msg MsgDeposit) Route() string { return ModuleName }
func (msg MsgDeposit) Type() string  { return TypeMsgDeposit }

func (msg MsgDeposit) ValidateBasic() error {
	if err := validateAddress("investor", msg.Investor); err != nil {
		return err
	}
	return validateAmount("amount", msg.Amount)
}

func (msg MsgDeposit) GetSigners() []sdk.AccAddress { return signerAddress(msg.Investor) }

func (*MsgDeposit) ProtoMessage()   {}
func (msg *MsgDeposit) Reset()      { *msg = MsgDeposit{} }
func (msg MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{Investor: %s, Amount: %s}", msg.Investor, msg.Amount)
}

// MsgDepositResponse defines the Deposit response
type MsgDepositResponse struct {
	LedgerBalance string `json:"ledger_balance"`
	RoundID       string `json:"round_id"`
}

// MsgWithdrawAll defines an investor full withdrawal
type MsgWithdrawAll struct {
	Investor string `json:"investor"`
}

func (msg MsgWithdrawAll) Route() string { return ModuleName }
func (msg MsgWithdrawAll) Type() string  { return TypeMsgWithdrawAll }

func (msg MsgWithdrawAll) ValidateBasic() error {
	return validateAddress("investor", msg.Investor)
}

func (msg MsgWithdrawAll) GetSigners() []sdk.AccAddress { return signerAddress(msg.Investor) }

func (*MsgWithdrawAll) ProtoMessage()   {}
func (msg *MsgWithdrawAll) Reset()      { *msg = MsgWithdrawAll{} }
func (msg MsgWithdrawAll) String() string {
	return fmt.Sprintf("MsgWithdrawAll{Investor: %s}", msg.Investor)
}

// MsgWithdrawAllResponse defines the WithdrawAll response
type MsgWithdrawAllResponse struct {
	Deposit string `json:"deposit"`
	Payout  string `json:"payout"`
}

// MsgManagerDeposit defines a fund manager deposit during investing
type MsgManagerDeposit struct {
	Manager string `json:"manager"`
	Amount  string `json:"amount"`
}

func (msg MsgManagerDeposit) Route() string { return ModuleName }
func (msg MsgManagerDeposit) Type() string  { return TypeMsgManagerDeposit }

func (msg MsgManagerDeposit) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAmount("amount", msg.Amount)
}

func (msg MsgManagerDeposit) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgManagerDeposit) ProtoMessage()   {}
func (msg *MsgManagerDeposit) Reset()      { *msg = MsgManagerDeposit{} }
func (msg MsgManagerDeposit) String() string {
	return fmt.Sprintf("MsgManagerDeposit{Manager: %s, Amount: %s}", msg.Manager, msg.Amount)
}

// MsgManagerDepositResponse defines the ManagerDeposit response
type MsgManagerDepositResponse struct{}

// MsgManagerWithdraw defines a fund manager withdrawal during investing
type MsgManagerWithdraw struct {
	Manager string `json:"manager"`
	Amount  string `json:"amount"`
}

func (msg MsgManagerWithdraw) Route() string { return ModuleName }
func (msg MsgManagerWithdraw) Type() string  { return TypeMsgManagerWithdraw }

func (msg MsgManagerWithdraw) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAmount("amount", msg.Amount)
}

func (msg MsgManagerWithdraw) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgManagerWithdraw) ProtoMessage()   {}
func (msg *MsgManagerWithdraw) Reset()      { *msg = MsgManagerWithdraw{} }
func (msg MsgManagerWithdraw) String() string {
	return fmt.Sprintf("MsgManagerWithdraw{Manager: %s, Amount: %s}", msg.Manager, msg.Amount)
}

// MsgManagerWithdrawResponse defines the ManagerWithdraw response
type MsgManagerWithdrawResponse struct{}

// MsgManagerWithdrawAll defines a full pool withdrawal during investing
type MsgManagerWithdrawAll struct {
	Manager string `json:"manager"`
}

func (msg MsgManagerWithdrawAll) Route() string { return ModuleName }
func (msg MsgManagerWithdrawAll) Type() string  { return TypeMsgManagerWithdrawAll }

func (msg MsgManagerWithdrawAll) ValidateBasic() error {
	return validateAddress("manager", msg.Manager)
}

func (msg MsgManagerWithdrawAll) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgManagerWithdrawAll) ProtoMessage()   {}
func (msg *MsgManagerWithdrawAll) Reset()      { *msg = MsgManagerWithdrawAll{} }
func (msg MsgManagerWithdrawAll) String() string {
	return fmt.Sprintf("MsgManagerWithdrawAll{Manager: %s}", msg.Manager)
}

// MsgManagerWithdrawAllResponse defines the ManagerWithdrawAll response
type MsgManagerWithdrawAllResponse struct {
	Amount string `json:"amount"`
}

// MsgReturnToInvestor defines a forced payout for one investor
type MsgReturnToInvestor struct {
	Manager  string `json:"manager"`
	Investor string `json:"investor"`
}

func (msg MsgReturnToInvestor) Route() string { return ModuleName }
func (msg MsgReturnToInvestor) Type() string  { return TypeMsgReturnToInvestor }

func (msg MsgReturnToInvestor) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAddress("investor", msg.Investor)
}

func (msg MsgReturnToInvestor) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgReturnToInvestor) ProtoMessage()   {}
func (msg *MsgReturnToInvestor) Reset()      { *msg = MsgReturnToInvestor{} }
func (msg MsgReturnToInvestor) String() string {
	return fmt.Sprintf("MsgReturnToInvestor{Manager: %s, Investor: %s}", msg.Manager, msg.Investor)
}

// MsgReturnToInvestorResponse defines the ReturnToInvestor response
type MsgReturnToInvestorResponse struct {
	Payout string `json:"payout"`
}

// MsgReturnToAll defines a forced payout for every remaining investor
type MsgReturnToAll struct {
	Manager string `json:"manager"`
}

func (msg MsgReturnToAll) Route() string { return ModuleName }
func (msg MsgReturnToAll) Type() string  { return TypeMsgReturnToAll }

func (msg MsgReturnToAll) ValidateBasic() error {
	return validateAddress("manager", msg.Manager)
}

func (msg MsgReturnToAll) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgReturnToAll) ProtoMessage()   {}
func (msg *MsgReturnToAll) Reset()      { *msg = MsgReturnToAll{} }
func (msg MsgReturnToAll) String() string {
	return fmt.Sprintf("MsgReturnToAll{Manager: %s}", msg.Manager)
}

// MsgReturnToAllResponse defines the ReturnToAll response
type MsgReturnToAllResponse struct {
	Payouts []Payout `json:"payouts"`
}

// MsgNominateManager defines a fund manager succession nomination
type MsgNominateManager struct {
	Manager string `json:"manager"`
	Nominee string `json:"nominee"`
}

func (msg MsgNominateManager) Route() string { return ModuleName }
func (msg MsgNominateManager) Type() string  { return TypeMsgNominateManager }

func (msg MsgNominateManager) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	if err := validateAddress("nominee", msg.Nominee); err != nil {
		return err
	}
	if msg.Nominee == msg.Manager {
		return ErrInvalidAddress.Wrap("nominee is already the fund manager")
	}
	return nil
}

func (msg MsgNominateManager) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgNominateManager) ProtoMessage()   {}
func (msg *MsgNominateManager) Reset()      { *msg = MsgNominateManager{} }
func (msg MsgNominateManager) String() string {
	return fmt.Sprintf("MsgNominateManager{Manager: %s, Nominee: %s}", msg.Manager, msg.Nominee)
}

// MsgNominateManagerResponse defines the NominateManager response
type MsgNominateManagerResponse struct{}

// MsgAcceptManager defines a succession acceptance by the nominee
type MsgAcceptManager struct {
	Nominee string `json:"nominee"`
}

func (msg MsgAcceptManager) Route() string { return ModuleName }
func (msg MsgAcceptManager) Type() string  { return TypeMsgAcceptManager }

func (msg MsgAcceptManager) ValidateBasic() error {
	return validateAddress("nominee", msg.Nominee)
}

func (msg MsgAcceptManager) GetSigners() []sdk.AccAddress { return signerAddress(msg.Nominee) }

func (*MsgAcceptManager) ProtoMessage()   {}
func (msg *MsgAcceptManager) Reset()      { *msg = MsgAcceptManager{} }
func (msg MsgAcceptManager) String() string {
	return fmt.Sprintf("MsgAcceptManager{Nominee: %s}", msg.Nominee)
}

// MsgAcceptManagerResponse defines the AcceptManager response
type MsgAcceptManagerResponse struct{}

// MsgSetRemainingFundsAddress changes the round-closure sweep target
type MsgSetRemainingFundsAddress struct {
	Manager string `json:"manager"`
	Address string `json:"address"`
}

func (msg MsgSetRemainingFundsAddress) Route() string { return ModuleName }
func (msg MsgSetRemainingFundsAddress) Type() string  { return TypeMsgSetRemainingFundsAddress }

func (msg MsgSetRemainingFundsAddress) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAddress("address", msg.Address)
}

func (msg MsgSetRemainingFundsAddress) GetSigners() []sdk.AccAddress {
	return signerAddress(msg.Manager)
}

func (*MsgSetRemainingFundsAddress) ProtoMessage()   {}
func (msg *MsgSetRemainingFundsAddress) Reset()      { *msg = MsgSetRemainingFundsAddress{} }
func (msg MsgSetRemainingFundsAddress) String() string {
	return fmt.Sprintf("MsgSetRemainingFundsAddress{Manager: %s, Address: %s}", msg.Manager, msg.Address)
}

// MsgSetRemainingFundsAddressResponse defines the response
type MsgSetRemainingFundsAddressResponse struct{}

// MsgSetTokenDenom changes the fund token denom
type MsgSetTokenDenom struct {
	Manager string `json:"manager"`
	Denom   string `json:"denom"`
}

func (msg MsgSetTokenDenom) Route() string { return ModuleName }
func (msg MsgSetTokenDenom) Type() string  { return TypeMsgSetTokenDenom }

func (msg MsgSetTokenDenom) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return ErrInvalidConfigValue.Wrapf("denom: %s", msg.Denom)
	}
	return nil
}

func (msg MsgSetTokenDenom) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgSetTokenDenom) ProtoMessage()   {}
func (msg *MsgSetTokenDenom) Reset()      { *msg = MsgSetTokenDenom{} }
func (msg MsgSetTokenDenom) String() string {
	return fmt.Sprintf("MsgSetTokenDenom{Manager: %s, Denom: %s}", msg.Manager, msg.Denom)
}

// MsgSetTokenDenomResponse defines the response
type MsgSetTokenDenomResponse struct{}

// MsgSetDepositMultiple changes the deposit granularity
type MsgSetDepositMultiple struct {
	Manager    string `json:"manager"`
	MultipleOf string `json:"multiple_of"`
}

func (msg MsgSetDepositMultiple) Route() string { return ModuleName }
func (msg MsgSetDepositMultiple) Type() string  { return TypeMsgSetDepositMultiple }

func (msg MsgSetDepositMultiple) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAmount("multiple_of", msg.MultipleOf)
}

func (msg MsgSetDepositMultiple) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgSetDepositMultiple) ProtoMessage()   {}
func (msg *MsgSetDepositMultiple) Reset()      { *msg = MsgSetDepositMultiple{} }
func (msg MsgSetDepositMultiple) String() string {
	return fmt.Sprintf("MsgSetDepositMultiple{Manager: %s, MultipleOf: %s}", msg.Manager, msg.MultipleOf)
}

// MsgSetDepositMultipleResponse defines the response
type MsgSetDepositMultipleResponse struct{}

// MsgSetMinDeposit changes the lower deposit bound
type MsgSetMinDeposit struct {
	Manager    string `json:"manager"`
	MinDeposit string `json:"min_deposit"`
}

func (msg MsgSetMinDeposit) Route() string { return ModuleName }
func (msg MsgSetMinDeposit) Type() string  { return TypeMsgSetMinDeposit }

func (msg MsgSetMinDeposit) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAmount("min_deposit", msg.MinDeposit)
}

func (msg MsgSetMinDeposit) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgSetMinDeposit) ProtoMessage()   {}
func (msg *MsgSetMinDeposit) Reset()      { *msg = MsgSetMinDeposit{} }
func (msg MsgSetMinDeposit) String() string {
	return fmt.Sprintf("MsgSetMinDeposit{Manager: %s, MinDeposit: %s}", msg.Manager, msg.MinDeposit)
}

// MsgSetMinDepositResponse defines the response
type MsgSetMinDepositResponse struct{}

// MsgSetMaxDeposit changes the upper deposit bound
type MsgSetMaxDeposit struct {
	Manager    string `json:"manager"`
	MaxDeposit string `json:"max_deposit"`
}

func (msg MsgSetMaxDeposit) Route() string { return ModuleName }
func (msg MsgSetMaxDeposit) Type() string  { return TypeMsgSetMaxDeposit }

func (msg MsgSetMaxDeposit) ValidateBasic() error {
	if err := validateAddress("manager", msg.Manager); err != nil {
		return err
	}
	return validateAmount("max_deposit", msg.MaxDeposit)
}

func (msg MsgSetMaxDeposit) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgSetMaxDeposit) ProtoMessage()   {}
func (msg *MsgSetMaxDeposit) Reset()      { *msg = MsgSetMaxDeposit{} }
func (msg MsgSetMaxDeposit) String() string {
	return fmt.Sprintf("MsgSetMaxDeposit{Manager: %s, MaxDeposit: %s}", msg.Manager, msg.MaxDeposit)
}

// MsgSetMaxDepositResponse defines the response
type MsgSetMaxDepositResponse struct{}

// MsgStartDeposits opens a round for deposits
type MsgStartDeposits struct {
	Manager string `json:"manager"`
}

func (msg MsgStartDeposits) Route() string { return ModuleName }
func (msg MsgStartDeposits) Type() string  { return TypeMsgStartDeposits }

func (msg MsgStartDeposits) ValidateBasic() error {
	return validateAddress("manager", msg.Manager)
}

func (msg MsgStartDeposits) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgStartDeposits) ProtoMessage()   {}
func (msg *MsgStartDeposits) Reset()      { *msg = MsgStartDeposits{} }
func (msg MsgStartDeposits) String() string {
	return fmt.Sprintf("MsgStartDeposits{Manager: %s}", msg.Manager)
}

// MsgStartDepositsResponse defines the response
type MsgStartDepositsResponse struct {
	RoundID string `json:"round_id"`
}

// MsgStopDeposits closes the deposit window
type MsgStopDeposits struct {
	Manager string `json:"manager"`
}

func (msg MsgStopDeposits) Route() string { return ModuleName }
func (msg MsgStopDeposits) Type() string  { return TypeMsgStopDeposits }

func (msg MsgStopDeposits) ValidateBasic() error {
	return validateAddress("manager", msg.Manager)
}

func (msg MsgStopDeposits) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgStopDeposits) ProtoMessage()   {}
func (msg *MsgStopDeposits) Reset()      { *msg = MsgStopDeposits{} }
func (msg MsgStopDeposits) String() string {
	return fmt.Sprintf("MsgStopDeposits{Manager: %s}", msg.Manager)
}

// MsgStopDepositsResponse defines the response
type MsgStopDepositsResponse struct {
	AmountBeforeInvestment string `json:"amount_before_investment"`
}

// MsgStartWithdrawals ends investing and opens distribution
type MsgStartWithdrawals struct {
	Manager string `json:"manager"`
}

func (msg MsgStartWithdrawals) Route() string { return ModuleName }
func (msg MsgStartWithdrawals) Type() string  { return TypeMsgStartWithdrawals }

func (msg MsgStartWithdrawals) ValidateBasic() error {
	return validateAddress("manager", msg.Manager)
}

func (msg MsgStartWithdrawals) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgStartWithdrawals) ProtoMessage()   {}
func (msg *MsgStartWithdrawals) Reset()      { *msg = MsgStartWithdrawals{} }
func (msg MsgStartWithdrawals) String() string {
	return fmt.Sprintf("MsgStartWithdrawals{Manager: %s}", msg.Manager)
}

// MsgStartWithdrawalsResponse defines the response
type MsgStartWithdrawalsResponse struct {
	AmountAfterInvestment string `json:"amount_after_investment"`
	Multiplier            string `json:"multiplier"`
}

// MsgStopWithdrawals closes the round
type MsgStopWithdrawals struct {
	Manager string `json:"manager"`
}

func (msg MsgStopWithdrawals) Route() string { return ModuleName }
func (msg MsgStopWithdrawals) Type() string  { return TypeMsgStopWithdrawals }

func (msg MsgStopWithdrawals) ValidateBasic() error {
	return validateAddress("manager", msg.Manager)
}

func (msg MsgStopWithdrawals) GetSigners() []sdk.AccAddress { return signerAddress(msg.Manager) }

func (*MsgStopWithdrawals) ProtoMessage()   {}
func (msg *MsgStopWithdrawals) Reset()      { *msg = MsgStopWithdrawals{} }
func (msg MsgStopWithdrawals) String() string {
	return fmt.Sprintf("MsgStopWithdrawals{Manager: %s}", msg.Manager)
}

// MsgStopWithdrawalsResponse defines the response
type MsgStopWithdrawalsResponse struct {
	SweptAmount string `json:"swept_amount"`
}
