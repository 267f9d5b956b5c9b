package registry

import (
	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Auditor is a staked account allowed to audit milestones.
type Auditor struct {
	// Tokens locked as a bond.
	Stake int
	// Track record in [0, MaxReputation].
	Reputation int
	// Timestamp (ms) before which the stake can't be withdrawn.
	LockUntil int
	// Suspended auditors can't take new audits or sit on dispute panels.
	Suspended bool
}

const (
	// RoleSlash is required to slash auditor stakes.
	RoleSlash = "slash"
	// RoleReputation is required to report audit outcomes.
	RoleReputation = "reputation"
	// RoleGovernance is required to suspend and reinstate auditors.
	RoleGovernance = "governance"

	// MaxReputation is the upper bound of auditor reputation.
	MaxReputation = 100
	// FailurePenalty is subtracted from reputation after a failed audit.
	FailurePenalty = 2

	ErrAuditorNotRegistered = "auditor is not registered"
	ErrInsufficientStake    = "insufficient stake"
	ErrStakeLocked          = "stake is locked"
	ErrInvalidLockPeriod    = "invalid lock period"

	tokenKey        = "t"
	insuranceKey    = "i"
	initialLockKey  = "l"
	lockExtendedKey = "x"

	auditorPrefix = "a"
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
		token         interop.Hash160
		insurance     interop.Hash160
		initialLock   int
		lockExtension int
		grants        []common.Grant
	})

	common.CheckAccount(args.token)
	common.CheckAccount(args.insurance)
	if args.initialLock < 0 || args.lockExtension < 0 {
		panic(ErrInvalidLockPeriod)
	}

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, insuranceKey, args.insurance)
	storage.Put(ctx, initialLockKey, args.initialLock)
	storage.Put(ctx, lockExtendedKey, args.lockExtension)
	common.InitRoles(ctx, args.grants)

	runtime.Log("auditor registry initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("auditor registry updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment accepts stakes pulled by Register.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckPulledPayment(getHash(ctx, tokenKey), data)
}

// Register locks amount of tokens as the auditor stake. The first deposit
// creates the auditor record. Lock period is renewed for auditors without
// reputation and for auditors whose lock has expired, otherwise it is kept.
func Register(auditor interop.Hash160, amount int) {
	common.CheckOwnerWitness(auditor)
	common.CheckAmount(amount)

	ctx := storage.GetContext()
	a, _ := getAuditor(ctx, auditor)

	now := runtime.GetTime()
	if a.Reputation == 0 || now > a.LockUntil {
		a.LockUntil = now + storage.Get(ctx, initialLockKey).(int)
	}
	a.Stake += amount
	common.SetSerialized(ctx, auditorKey(auditor), a)

	common.PullTokens(getHash(ctx, tokenKey), auditor, amount)
	runtime.Notify("AuditorRegistered", auditor, amount, a.Stake)
}

// Slash moves amount of the auditor stake to the insurance fund.
func Slash(auditor interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, RoleSlash)
	common.CheckAmount(amount)

	a := mustGetAuditor(ctx, auditor)
	if a.Stake < amount {
		panic(ErrInsufficientStake)
	}
	a.Stake -= amount
	common.SetSerialized(ctx, auditorKey(auditor), a)

	common.PushTokens(getHash(ctx, tokenKey), getHash(ctx, insuranceKey), amount)
	runtime.Notify("AuditorSlashed", auditor, amount, a.Stake)
}

// UpdateReputation records the outcome of an audit. A successful audit
// raises reputation and extends the stake lock, a failed one lowers
// reputation and leaves the lock as is.
func UpdateReputation(auditor interop.Hash160, success bool) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, RoleReputation)

	a := mustGetAuditor(ctx, auditor)
	if success {
		if a.Reputation < MaxReputation {
			a.Reputation += 1
		}
		now := runtime.GetTime()
		if a.LockUntil < now {
			a.LockUntil = now
		}
		a.LockUntil += storage.Get(ctx, lockExtendedKey).(int)
	} else {
		a.Reputation -= FailurePenalty
		if a.Reputation < 0 {
			a.Reputation = 0
		}
	}
	common.SetSerialized(ctx, auditorKey(auditor), a)

	runtime.Notify("ReputationUpdated", auditor, a.Reputation, success)
}

// Unstake returns amount of unlocked stake to the auditor.
func Unstake(auditor interop.Hash160, amount int) {
	common.CheckOwnerWitness(auditor)
	common.CheckAmount(amount)

	ctx := storage.GetContext()
	a := mustGetAuditor(ctx, auditor)
	if runtime.GetTime() < a.LockUntil {
		panic(ErrStakeLocked)
	}
	if a.Stake < amount {
		panic(ErrInsufficientStake)
	}
	a.Stake -= amount
	common.SetSerialized(ctx, auditorKey(auditor), a)

	common.PushTokens(getHash(ctx, tokenKey), auditor, amount)
	runtime.Notify("StakeWithdrawn", auditor, amount, a.Stake)
}

// Suspend excludes the auditor from new audits and dispute panels.
func Suspend(auditor interop.Hash160) {
	setSuspended(auditor, true)
}

// Reinstate lifts auditor suspension.
func Reinstate(auditor interop.Hash160) {
	setSuspended(auditor, false)
}

func setSuspended(auditor interop.Hash160, suspended bool) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, RoleGovernance)

	a := mustGetAuditor(ctx, auditor)
	if a.Suspended == suspended {
		return
	}
	a.Suspended = suspended
	common.SetSerialized(ctx, auditorKey(auditor), a)

	if suspended {
		runtime.Notify("AuditorSuspended", auditor)
	} else {
		runtime.Notify("AuditorReinstated", auditor)
	}
}

// GetAuditor returns the auditor record. It fails for unknown accounts.
func GetAuditor(auditor interop.Hash160) Auditor {
	ctx := storage.GetReadOnlyContext()
	return mustGetAuditor(ctx, auditor)
}

// IsRegistered checks whether the account has ever staked.
func IsRegistered(auditor interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	_, ok := getAuditor(ctx, auditor)
	return ok
}

// IsAuditor checks whether the account is an active auditor: it has
// non-zero stake and is not suspended.
func IsAuditor(auditor interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	a, ok := getAuditor(ctx, auditor)
	return ok && isActive(a, 1)
}

// StakeOf returns current auditor stake.
func StakeOf(auditor interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	a, _ := getAuditor(ctx, auditor)
	return a.Stake
}

// ReputationOf returns current auditor reputation.
func ReputationOf(auditor interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	a, _ := getAuditor(ctx, auditor)
	return a.Reputation
}

// ListAuditors returns all registered auditors including those with zero
// stake.
func ListAuditors() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	res := []interop.Hash160{}
	it := storage.Find(ctx, auditorPrefix, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		res = append(res, iterator.Value(it).(interop.Hash160))
	}
	return res
}

// EligibleAuditors returns active auditors with at least minStake staked.
func EligibleAuditors(minStake int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	if minStake < 1 {
		minStake = 1
	}

	res := []interop.Hash160{}
	it := storage.Find(ctx, auditorPrefix, storage.RemovePrefix)
	for iterator.Next(it) {
		kv := iterator.Value(it).(struct {
			key   []byte
			value []byte
		})
		a := std.Deserialize(kv.value).(Auditor)
		if isActive(a, minStake) {
			res = append(res, interop.Hash160(kv.key))
		}
	}
	return res
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

func isActive(a Auditor, minStake int) bool {
	return !a.Suspended && a.Stake >= minStake
}

func auditorKey(auditor interop.Hash160) []byte {
	return append([]byte(auditorPrefix), auditor...)
}

func getAuditor(ctx storage.Context, auditor interop.Hash160) (Auditor, bool) {
	data := storage.Get(ctx, auditorKey(auditor))
	if data == nil {
		return Auditor{}, false
	}
	return std.Deserialize(data.([]byte)).(Auditor), true
}

func mustGetAuditor(ctx storage.Context, auditor interop.Hash160) Auditor {
	a, ok := getAuditor(ctx, auditor)
	if !ok {
		panic(ErrAuditorNotRegistered)
	}
	return a
}

func getHash(ctx storage.Context, key string) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}
