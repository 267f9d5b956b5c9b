package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrTokenTransferFailed is thrown when the token contract refuses
	// a transfer.
	ErrTokenTransferFailed = "token transfer failed"
	// ErrWrongToken is thrown when a contract receives tokens it does not
	// work with.
	ErrWrongToken = "unexpected token"
	// ErrDirectTransfer is thrown when a contract receives tokens it
	// did not request.
	ErrDirectTransfer = "direct transfers are not accepted"
	// ErrZeroAmount is thrown when an operation is called with zero amount.
	ErrZeroAmount = "zero amount"
	// ErrNegativeAmount is thrown when an operation is called with negative
	// amount.
	ErrNegativeAmount = "negative amount"

	// PullMarker is attached to the transfers contracts initiate to collect
	// tokens from users.
	PullMarker = "pull"
)

// CheckAmount panics if amount is not positive.
func CheckAmount(amount int) {
	if amount < 0 {
		panic(ErrNegativeAmount)
	}
	if amount == 0 {
		panic(ErrZeroAmount)
	}
}

// PullTokens transfers amount of token from the account to the executing
// contract. The account must witness the transaction.
func PullTokens(token, from interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()
	if !contract.Call(token, "transfer", contract.All, from, self, amount, PullMarker).(bool) {
		panic(ErrTokenTransferFailed)
	}
}

// PushTokens transfers amount of token from the executing contract to the
// account.
func PushTokens(token, to interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()
	if !contract.Call(token, "transfer", contract.All, self, to, amount, nil).(bool) {
		panic(ErrTokenTransferFailed)
	}
}

// CheckPulledPayment is called from onNEP17Payment of custody contracts. It
// accepts only the configured token sent by PullTokens.
func CheckPulledPayment(token interop.Hash160, data any) {
	if !runtime.GetCallingScriptHash().Equals(token) {
		panic(ErrWrongToken)
	}
	if data != PullMarker {
		panic(ErrDirectTransfer)
	}
}

// TokenBalance returns token balance of the account.
func TokenBalance(token, account interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadOnly, account).(int)
}
