package escrow

import (
	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/escrow/escrowconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// MilestoneEscrow holds donations for a single NPO milestone.
type MilestoneEscrow struct {
	NPO       interop.Hash160
	Milestone int
	// Total amount held, equal to the sum of Contributions.
	Amount int
	Status int
	// Donors and Contributions are parallel lists.
	Donors        []interop.Hash160
	Contributions []int
}

const (
	ErrMilestoneNotFound        = "milestone not found"
	ErrMilestoneAlreadyReleased = "milestone is already released"
	ErrMilestoneAlreadyFrozen   = "milestone is frozen"
	ErrMilestoneNotFrozen       = "milestone is not frozen"
	ErrDonorNotFound            = "donor not found"
	ErrInvalidMilestone         = "invalid milestone"

	tokenKey     = "t"
	escrowPrefix = "e"
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
		token  interop.Hash160
		grants []common.Grant
	})

	common.CheckAccount(args.token)
	storage.Put(ctx, tokenKey, args.token)
	common.InitRoles(ctx, args.grants)

	runtime.Log("escrow manager initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("escrow manager updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment accepts donations pulled by Deposit.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckPulledPayment(storage.Get(ctx, tokenKey).(interop.Hash160), data)
}

// Deposit transfers amount of tokens from the donor to the milestone escrow.
// Repeated deposits of the same donor are summed up. Deposits to released
// milestones are rejected.
func Deposit(donor, npo interop.Hash160, milestone, amount int) {
	common.CheckOwnerWitness(donor)
	common.CheckAccount(npo)
	common.CheckAmount(amount)
	if milestone < 0 {
		panic(ErrInvalidMilestone)
	}

	ctx := storage.GetContext()
	e, ok := getEscrow(ctx, npo, milestone)
	if !ok {
		e = MilestoneEscrow{
			NPO:           npo,
			Milestone:     milestone,
			Status:        escrowconst.StatusActive,
			Donors:        []interop.Hash160{},
			Contributions: []int{},
		}
	}
	if e.Status == escrowconst.StatusReleased {
		panic(ErrMilestoneAlreadyReleased)
	}

	i := donorIndex(e.Donors, donor)
	if i < 0 {
		e.Donors = append(e.Donors, donor)
		e.Contributions = append(e.Contributions, amount)
	} else {
		contributions := e.Contributions
		contributions[i] += amount
	}
	e.Amount += amount
	common.SetSerialized(ctx, escrowKey(npo, milestone), e)

	common.PullTokens(storage.Get(ctx, tokenKey).(interop.Hash160), donor, amount)
	runtime.Notify("DepositMade", npo, milestone, donor, amount, e.Amount)
}

// Release transfers the whole escrowed amount to the NPO.
func Release(npo interop.Hash160, milestone int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, escrowconst.RoleSettle)

	e := mustGetActive(ctx, npo, milestone)
	e.Status = escrowconst.StatusReleased
	common.SetSerialized(ctx, escrowKey(npo, milestone), e)

	if e.Amount > 0 {
		common.PushTokens(storage.Get(ctx, tokenKey).(interop.Hash160), npo, e.Amount)
	}
	runtime.Notify("FundsReleased", npo, milestone, e.Amount)
}

// FreezeMilestone blocks the escrow until governance decides where the
// funds go.
func FreezeMilestone(npo interop.Hash160, milestone int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, escrowconst.RoleSettle)

	e := mustGetActive(ctx, npo, milestone)
	e.Status = escrowconst.StatusFrozen
	common.SetSerialized(ctx, escrowKey(npo, milestone), e)

	runtime.Notify("MilestoneFrozen", npo, milestone, e.Amount)
}

// RedirectFunds moves the whole amount of a frozen milestone to another NPO.
// The donor ledger is cleared and the milestone becomes released.
func RedirectFunds(fromNPO interop.Hash160, milestone int, toNPO interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, escrowconst.RoleGovern)
	common.CheckAccount(toNPO)

	e := mustGetFrozen(ctx, fromNPO, milestone)
	amount := e.Amount
	e.Amount = 0
	e.Donors = []interop.Hash160{}
	e.Contributions = []int{}
	e.Status = escrowconst.StatusReleased
	common.SetSerialized(ctx, escrowKey(fromNPO, milestone), e)

	if amount > 0 {
		common.PushTokens(storage.Get(ctx, tokenKey).(interop.Hash160), toNPO, amount)
	}
	runtime.Notify("FundsRedirected", fromNPO, milestone, toNPO, amount)
}

// RefundDonor returns the contribution of the donor from a frozen milestone.
// Milestone status is not changed.
func RefundDonor(npo interop.Hash160, milestone int, donor interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, escrowconst.RoleGovern)

	e := mustGetFrozen(ctx, npo, milestone)
	i := donorIndex(e.Donors, donor)
	if i < 0 {
		panic(ErrDonorNotFound)
	}

	amount := e.Contributions[i]
	donors := []interop.Hash160{}
	contributions := []int{}
	for j := range e.Donors {
		if j != i {
			donors = append(donors, e.Donors[j])
			contributions = append(contributions, e.Contributions[j])
		}
	}
	e.Donors = donors
	e.Contributions = contributions
	e.Amount -= amount
	common.SetSerialized(ctx, escrowKey(npo, milestone), e)

	if amount > 0 {
		common.PushTokens(storage.Get(ctx, tokenKey).(interop.Hash160), donor, amount)
	}
	runtime.Notify("FundsRefunded", npo, milestone, donor, amount)
}

// GetEscrow returns escrow of the milestone. It fails if nothing was
// deposited for it.
func GetEscrow(npo interop.Hash160, milestone int) MilestoneEscrow {
	ctx := storage.GetReadOnlyContext()
	return mustGetEscrow(ctx, npo, milestone)
}

// GetStatus returns milestone escrow status or escrowconst.StatusNotFound.
func GetStatus(npo interop.Hash160, milestone int) int {
	ctx := storage.GetReadOnlyContext()
	e, ok := getEscrow(ctx, npo, milestone)
	if !ok {
		return escrowconst.StatusNotFound
	}
	return e.Status
}

// GetDonors returns the list of donors with a non-zero contribution to the
// milestone.
func GetDonors(npo interop.Hash160, milestone int) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	e, ok := getEscrow(ctx, npo, milestone)
	if !ok {
		return []interop.Hash160{}
	}
	return e.Donors
}

// DonorAmount returns current contribution of the donor to the milestone.
func DonorAmount(npo interop.Hash160, milestone int, donor interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	e, ok := getEscrow(ctx, npo, milestone)
	if !ok {
		return 0
	}
	i := donorIndex(e.Donors, donor)
	if i < 0 {
		return 0
	}
	return e.Contributions[i]
}

// IterateEscrows returns an iterator over all milestone escrows. Each item
// is a deserialized MilestoneEscrow structure.
func IterateEscrows() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, escrowPrefix, storage.ValuesOnly|storage.DeserializeValues)
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

// IsAuthorized checks whether the account holds the role.
func IsAuthorized(role string, account interop.Hash160) bool {
	return common.HasRole(storage.GetReadOnlyContext(), role, account)
}

func escrowKey(npo interop.Hash160, milestone int) []byte {
	var buf any = milestone
	return append(append([]byte(escrowPrefix), npo...), buf.([]byte)...)
}

func getEscrow(ctx storage.Context, npo interop.Hash160, milestone int) (MilestoneEscrow, bool) {
	data := storage.Get(ctx, escrowKey(npo, milestone))
	if data == nil {
		return MilestoneEscrow{}, false
	}
	return std.Deserialize(data.([]byte)).(MilestoneEscrow), true
}

func mustGetEscrow(ctx storage.Context, npo interop.Hash160, milestone int) MilestoneEscrow {
	e, ok := getEscrow(ctx, npo, milestone)
	if !ok {
		panic(ErrMilestoneNotFound)
	}
	return e
}

func mustGetActive(ctx storage.Context, npo interop.Hash160, milestone int) MilestoneEscrow {
	e := mustGetEscrow(ctx, npo, milestone)
	switch e.Status {
	case escrowconst.StatusReleased:
		panic(ErrMilestoneAlreadyReleased)
	case escrowconst.StatusFrozen:
		panic(ErrMilestoneAlreadyFrozen)
	}
	return e
}

func mustGetFrozen(ctx storage.Context, npo interop.Hash160, milestone int) MilestoneEscrow {
	e := mustGetEscrow(ctx, npo, milestone)
	if e.Status != escrowconst.StatusFrozen {
		panic(ErrMilestoneNotFrozen)
	}
	return e
}

func donorIndex(donors []interop.Hash160, donor interop.Hash160) int {
	for i := range donors {
		if donors[i].Equals(donor) {
			return i
		}
	}
	return -1
}
