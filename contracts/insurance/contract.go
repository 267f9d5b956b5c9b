package insurance

import (
	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	// RoleManager allows direct payouts and manager set administration.
	RoleManager = "manager"
	// RoleGovernance allows payouts approved by governance vote.
	RoleGovernance = "governance"

	ErrExceedsDirectPayoutLimit = "exceeds direct payout limit"
	ErrInsufficientBalance      = "insufficient balance"
	ErrInvalidPayoutLimit       = "invalid payout limit"

	tokenKey     = "t"
	maxPayoutKey = "m"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		token           interop.Hash160
		maxDirectPayout int
		grants          []common.Grant
	})

	common.CheckAccount(args.token)
	if args.maxDirectPayout < 0 {
		panic(ErrInvalidPayoutLimit)
	}

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, maxPayoutKey, args.maxDirectPayout)
	common.InitRoles(ctx, args.grants)

	runtime.Log("insurance fund initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("insurance fund updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment accepts any transfer of the fund token, including slashed
// stakes and unallocated rewards.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	if !runtime.GetCallingScriptHash().Equals(storage.Get(ctx, tokenKey)) {
		panic(common.ErrWrongToken)
	}
	runtime.Notify("FundsReceived", from, amount)
}

// ReceiveFunds transfers amount of tokens from the account to the fund.
func ReceiveFunds(from interop.Hash160, amount int) {
	common.CheckOwnerWitness(from)
	common.CheckAmount(amount)

	ctx := storage.GetReadOnlyContext()
	common.PullTokens(storage.Get(ctx, tokenKey).(interop.Hash160), from, amount)
}

// Payout is a direct payout made by a fund manager. The amount is limited
// by MaxDirectPayout.
func Payout(to interop.Hash160, amount int, reason string) {
	ctx := storage.GetReadOnlyContext()
	common.CheckRole(ctx, RoleManager)
	common.CheckAccount(to)
	common.CheckAmount(amount)
	if amount > storage.Get(ctx, maxPayoutKey).(int) {
		panic(ErrExceedsDirectPayoutLimit)
	}

	payout(ctx, to, amount, reason)
}

// GovernancePayout is a payout approved by governance. It is not limited by
// MaxDirectPayout.
func GovernancePayout(to interop.Hash160, amount int, reason string) {
	ctx := storage.GetReadOnlyContext()
	common.CheckRole(ctx, RoleGovernance)
	common.CheckAccount(to)
	common.CheckAmount(amount)

	payout(ctx, to, amount, reason)
}

func payout(ctx storage.Context, to interop.Hash160, amount int, reason string) {
	token := storage.Get(ctx, tokenKey).(interop.Hash160)
	if common.TokenBalance(token, runtime.GetExecutingScriptHash()) < amount {
		panic(ErrInsufficientBalance)
	}

	common.PushTokens(token, to, amount)
	runtime.Notify("PayoutMade", to, amount, reason)
}

// AddManager adds the account to the manager set. It must be invoked by
// a manager.
func AddManager(account interop.Hash160) {
	if common.GrantRole(storage.GetContext(), RoleManager, account) {
		runtime.Notify("ManagerAdded", account)
	}
}

// RemoveManager removes the account from the manager set. It must be invoked
// by a manager.
func RemoveManager(account interop.Hash160) {
	if common.RevokeRole(storage.GetContext(), RoleManager, account) {
		runtime.Notify("ManagerRemoved", account)
	}
}

// SetMaxDirectPayout changes the limit of a single manager payout. It must be
// invoked by a manager.
func SetMaxDirectPayout(amount int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, RoleManager)
	if amount < 0 {
		panic(ErrInvalidPayoutLimit)
	}

	old := storage.Get(ctx, maxPayoutKey).(int)
	storage.Put(ctx, maxPayoutKey, amount)
	runtime.Notify("MaxDirectPayoutChanged", old, amount)
}

// GetBalance returns fund balance.
func GetBalance() int {
	ctx := storage.GetReadOnlyContext()
	return common.TokenBalance(storage.Get(ctx, tokenKey).(interop.Hash160), runtime.GetExecutingScriptHash())
}

// IsManager checks whether the account is a fund manager.
func IsManager(account interop.Hash160) bool {
	return common.HasRole(storage.GetReadOnlyContext(), RoleManager, account)
}

// MaxDirectPayout returns the limit of a single manager payout.
func MaxDirectPayout() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, maxPayoutKey).(int)
}

// GrantRole gives the role to the account. It must be invoked by a holder of
// the same role.
func GrantRole(role string, account interop.Hash160) {
	common.GrantRole(storage.GetContext(), role, account)
}

// RevokeRole takes the role from the account. It must be invoked by a holder
// of the same role.
func RevokeRole(role string, account interop.Hash160) {
	common.RevokeRole(storage.GetContext(), role, account)
}

// HasRole checks whether the account holds the role.
func HasRole(role string, account interop.Hash160) bool {
	return common.HasRole(storage.GetReadOnlyContext(), role, account)
}
