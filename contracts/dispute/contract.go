package dispute

import (
	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/dispute/disputeconst"
	"github.com/grantaudit/grantaudit-contract/contracts/escrow/escrowconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Dispute is an escalated bounty decided by a panel of auditors.
	Dispute struct {
		ID            int
		BountyID      int
		NPO           interop.Hash160
		Milestone     int
		Panel         []interop.Hash160
		End           int
		Status        int
		Result        int
		OverturnVotes int
		UpholdVotes   int
	}

	// PanelVote is a vote of a panel member.
	PanelVote struct {
		Overturn  bool
		Notes     string
		Timestamp int
	}
)

const (
	ErrDisputeNotFound          = "dispute not found"
	ErrBountyAlreadyDisputed    = "bounty already disputed"
	ErrNotEnoughAuditors        = "not enough auditors"
	ErrNotPanelMember           = "not a panel member"
	ErrDisputeNotFinalizable    = "dispute voting is closed"
	ErrDisputeAlreadyFinalized  = "dispute is already finalized"
	ErrDisputeDeadlineNotPassed = "dispute deadline has not passed"
	ErrVoteAlreadySubmitted     = "vote already submitted"
	ErrVoteNotFound             = "vote not found"
	ErrInvalidConfig            = "invalid dispute configuration"

	registryKey      = "g"
	escrowKey        = "e"
	bountyKey        = "b"
	windowKey        = "w"
	panelSizeKey     = "p"
	thresholdKey     = "o"
	minPanelStakeKey = "s"
	counterKey       = "n"

	disputePrefix     = "d"
	bountyIndexPrefix = "i"
	votePrefix        = "v"
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
		registry      interop.Hash160
		escrow        interop.Hash160
		bounty        interop.Hash160
		disputeWindow int
		panelSize     int
		threshold     int
		minPanelStake int
		grants        []common.Grant
	})

	common.CheckAccount(args.registry)
	common.CheckAccount(args.escrow)
	common.CheckAccount(args.bounty)
	if args.disputeWindow < 0 || args.panelSize < 1 || args.threshold < 0 || args.minPanelStake < 0 {
		panic(ErrInvalidConfig)
	}
	threshold := args.threshold
	if threshold > 100 {
		threshold = 100
	}

	storage.Put(ctx, registryKey, args.registry)
	storage.Put(ctx, escrowKey, args.escrow)
	storage.Put(ctx, bountyKey, args.bounty)
	storage.Put(ctx, windowKey, args.disputeWindow)
	storage.Put(ctx, panelSizeKey, args.panelSize)
	storage.Put(ctx, thresholdKey, threshold)
	storage.Put(ctx, minPanelStakeKey, args.minPanelStake)
	common.InitRoles(ctx, args.grants)

	runtime.Log("dispute manager initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("dispute manager updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// StartDispute escalates the bounty to a randomly selected panel of eligible
// auditors. It returns the identifier of the dispute.
func StartDispute(bountyID int, npo interop.Hash160, milestone int) int {
	ctx := storage.GetContext()
	common.CheckRole(ctx, disputeconst.RoleBounty)

	indexKey := common.IDKey(bountyIndexPrefix, bountyID)
	if storage.Get(ctx, indexKey) != nil {
		panic(ErrBountyAlreadyDisputed)
	}

	size := storage.Get(ctx, panelSizeKey).(int)
	eligible := contract.Call(getHash(ctx, registryKey), "eligibleAuditors", contract.ReadOnly,
		storage.Get(ctx, minPanelStakeKey).(int)).([]interop.Hash160)
	if len(eligible) < size {
		panic(ErrNotEnoughAuditors)
	}

	d := Dispute{
		ID:        common.NextID(ctx, counterKey),
		BountyID:  bountyID,
		NPO:       npo,
		Milestone: milestone,
		Panel:     selectPanel(eligible, size),
		End:       runtime.GetTime() + storage.Get(ctx, windowKey).(int),
		Status:    disputeconst.StatusActive,
		Result:    disputeconst.ResultNone,
	}
	putDispute(ctx, d)
	storage.Put(ctx, indexKey, d.ID)

	runtime.Notify("DisputeStarted", d.ID, bountyID, d.Panel, d.End)
	return d.ID
}

// SubmitPanelVote records the vote of a panel member before the dispute end.
// Every member votes once.
func SubmitPanelVote(disputeID int, member interop.Hash160, overturn bool, notes string) {
	common.CheckOwnerWitness(member)

	ctx := storage.GetContext()
	d := mustGetDispute(ctx, disputeID)
	if d.Status != disputeconst.StatusActive {
		panic(ErrDisputeAlreadyFinalized)
	}
	if !contains(d.Panel, member) {
		panic(ErrNotPanelMember)
	}
	now := runtime.GetTime()
	if now >= d.End {
		panic(ErrDisputeNotFinalizable)
	}
	key := voteKey(disputeID, member)
	if storage.Get(ctx, key) != nil {
		panic(ErrVoteAlreadySubmitted)
	}

	common.SetSerialized(ctx, key, PanelVote{
		Overturn:  overturn,
		Notes:     notes,
		Timestamp: now,
	})
	runtime.Notify("PanelVoteSubmitted", disputeID, member, overturn)
}

// FinalizeDispute decides the dispute after its end. The milestone approval
// is overturned when the share of overturn votes reaches the threshold,
// otherwise (including the case of no votes) it is upheld. The decision is
// passed to Audit Bounty Manager, overturned milestones are frozen in escrow
// and upheld ones are released. It returns the result.
func FinalizeDispute(disputeID int) int {
	ctx := storage.GetContext()
	d := mustGetDispute(ctx, disputeID)
	if d.Status != disputeconst.StatusActive {
		panic(ErrDisputeAlreadyFinalized)
	}
	if runtime.GetTime() < d.End {
		panic(ErrDisputeDeadlineNotPassed)
	}

	for _, member := range d.Panel {
		data := storage.Get(ctx, voteKey(disputeID, member))
		if data == nil {
			continue
		}
		if std.Deserialize(data.([]byte)).(PanelVote).Overturn {
			d.OverturnVotes += 1
		} else {
			d.UpholdVotes += 1
		}
	}

	d.Result = disputeconst.ResultUphold
	total := d.OverturnVotes + d.UpholdVotes
	if total > 0 && d.OverturnVotes*100/total >= storage.Get(ctx, thresholdKey).(int) {
		d.Result = disputeconst.ResultOverturn
	}
	d.Status = disputeconst.StatusFinalized
	putDispute(ctx, d)

	overturn := d.Result == disputeconst.ResultOverturn
	contract.Call(getHash(ctx, bountyKey), "resolveDispute", contract.All, d.BountyID, overturn)

	escrow := getHash(ctx, escrowKey)
	if contract.Call(escrow, "getStatus", contract.ReadOnly, d.NPO, d.Milestone).(int) == escrowconst.StatusActive {
		if overturn {
			contract.Call(escrow, "freezeMilestone", contract.All, d.NPO, d.Milestone)
		} else {
			contract.Call(escrow, "release", contract.All, d.NPO, d.Milestone)
		}
	}

	runtime.Notify("DisputeFinalized", disputeID, d.Result, d.OverturnVotes, d.UpholdVotes)
	return d.Result
}

// GetDispute returns the dispute. It fails for unknown identifiers.
func GetDispute(disputeID int) Dispute {
	ctx := storage.GetReadOnlyContext()
	return mustGetDispute(ctx, disputeID)
}

// GetPanelVote returns the vote of the panel member. It fails if the member
// hasn't voted.
func GetPanelVote(disputeID int, member interop.Hash160) PanelVote {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, voteKey(disputeID, member))
	if data == nil {
		panic(ErrVoteNotFound)
	}
	return std.Deserialize(data.([]byte)).(PanelVote)
}

// HasPanelVoted checks whether the panel member has voted.
func HasPanelVoted(disputeID int, member interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, voteKey(disputeID, member)) != nil
}

// GetBountyDispute returns the dispute of the bounty or
// disputeconst.NoDispute.
func GetBountyDispute(bountyID int) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, common.IDKey(bountyIndexPrefix, bountyID))
	if data == nil {
		return disputeconst.NoDispute
	}
	return data.(int)
}

// IsDisputeFinalizable checks whether FinalizeDispute can be called now.
func IsDisputeFinalizable(disputeID int) bool {
	ctx := storage.GetReadOnlyContext()
	d, ok := getDispute(ctx, disputeID)
	return ok && d.Status == disputeconst.StatusActive && runtime.GetTime() >= d.End
}

// DisputeCount returns the number of started disputes.
func DisputeCount() int {
	return common.CurrentID(storage.GetReadOnlyContext(), counterKey)
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

// selectPanel picks size distinct candidates with a partial Fisher-Yates
// shuffle. Every step does the same work whatever random value is drawn.
func selectPanel(candidates []interop.Hash160, size int) []interop.Hash160 {
	panel := []interop.Hash160{}
	n := len(candidates)
	for i := 0; i < size; i++ {
		j := i + runtime.GetRandom()%(n-i)
		picked := candidates[j]
		candidates[j] = candidates[i]
		candidates[i] = picked
		panel = append(panel, picked)
	}
	return panel
}

func contains(list []interop.Hash160, item interop.Hash160) bool {
	for i := range list {
		if list[i].Equals(item) {
			return true
		}
	}
	return false
}

func putDispute(ctx storage.Context, d Dispute) {
	common.SetSerialized(ctx, common.IDKey(disputePrefix, d.ID), d)
}

func getDispute(ctx storage.Context, disputeID int) (Dispute, bool) {
	data := storage.Get(ctx, common.IDKey(disputePrefix, disputeID))
	if data == nil {
		return Dispute{}, false
	}
	return std.Deserialize(data.([]byte)).(Dispute), true
}

func mustGetDispute(ctx storage.Context, disputeID int) Dispute {
	d, ok := getDispute(ctx, disputeID)
	if !ok {
		panic(ErrDisputeNotFound)
	}
	return d
}

func voteKey(disputeID int, member interop.Hash160) []byte {
	return append(common.IDKey(votePrefix, disputeID), member...)
}

func getHash(ctx storage.Context, key string) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}
