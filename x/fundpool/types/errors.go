package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrInvalidAddress         = errors.Register(ModuleName, 1, "invalid address")
	ErrInvalidAmount          = errors.Register(ModuleName, 2, "invalid amount")
	ErrInvalidConfigValue     = errors.Register(ModuleName, 3, "invalid configuration value")
	ErrUnauthorized           = errors.Register(ModuleName, 4, "unauthorized caller")
	ErrInvalidPhase           = errors.Register(ModuleName, 5, "operation not permitted in current phase")
	ErrNoSuchInvestor         = errors.Register(ModuleName, 6, "no such investor")
	ErrEmptyLedger            = errors.Register(ModuleName, 7, "no investors in ledger")
	ErrTransferFailure        = errors.Register(ModuleName, 8, "token transfer failed")
	ErrReentrantCall          = errors.Register(ModuleName, 9, "reentrant call rejected")
	ErrAmountOverflow         = errors.Register(ModuleName, 10, "amount overflow")
	ErrFundNotInitialized     = errors.Register(ModuleName, 11, "fund not initialized")
	ErrFundAlreadyInitialized = errors.Register(ModuleName, 12, "fund already initialized")
)
