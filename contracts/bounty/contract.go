package bounty

import (
	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/bounty/bountyconst"
	"github.com/grantaudit/grantaudit-contract/contracts/escrow/escrowconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Bounty is an audit of a single NPO milestone.
	Bounty struct {
		ID        int
		NPO       interop.Hash160
		Milestone int
		// Account that funded the reward pool, receives undistributed rewards.
		Sponsor    interop.Hash160
		RewardPool int
		// Stake an auditor needs to opt in, fixed at creation.
		RequiredStake   int
		Start           int
		ConcernDeadline int
		Auditors        []interop.Hash160
		Status          int
		ConcernsRaised  bool
	}

	// VoteData is a vote of an opted-in auditor.
	VoteData struct {
		Vote   int
		Report string
		// Content identifiers of the evidence.
		Evidence  []string
		Timestamp int
	}

	// auditor is a copy of registry.Auditor to prevent cross-contract imports.
	auditor struct {
		Stake      int
		Reputation int
		LockUntil  int
		Suspended  bool
	}
)

const (
	ErrBountyNotFound          = "bounty not found"
	ErrBountyAlreadyFinalized  = "bounty is already finalized"
	ErrBountyNotFinalizable    = "bounty is not finalizable yet"
	ErrBountyNotDisputed       = "bounty is not disputed"
	ErrMaxAuditorsReached      = "max auditors reached"
	ErrAlreadyOptedIn          = "auditor already opted in"
	ErrAuditorNotRegistered    = "auditor is not registered"
	ErrAuditorSuspended        = "auditor is suspended"
	ErrInsufficientStake       = "insufficient stake"
	ErrConcernDeadlinePassed   = "concern deadline passed"
	ErrVoteAlreadySubmitted    = "vote already submitted"
	ErrInvalidVote             = "invalid vote"
	ErrNoAuditorsOptedIn       = "no auditors opted in"
	ErrInvalidMilestone        = "invalid milestone"
	ErrInvalidConfig           = "invalid bounty configuration"
	ErrMilestoneAlreadyAudited = "milestone already has a bounty"

	tokenKey         = "t"
	registryKey      = "g"
	disputeKey       = "d"
	escrowKey        = "e"
	insuranceKey     = "i"
	concernWindowKey = "w"
	maxAuditorsKey   = "m"
	requiredStakeKey = "s"
	slashAmountKey   = "x"
	counterKey       = "n"

	bountyPrefix    = "b"
	votePrefix      = "v"
	milestonePrefix = "a"
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
		registry      interop.Hash160
		dispute       interop.Hash160
		escrow        interop.Hash160
		insurance     interop.Hash160
		concernWindow int
		maxAuditors   int
		requiredStake int
		slashAmount   int
		grants        []common.Grant
	})

	common.CheckAccount(args.token)
	common.CheckAccount(args.registry)
	common.CheckAccount(args.dispute)
	common.CheckAccount(args.escrow)
	common.CheckAccount(args.insurance)
	if args.concernWindow < 0 || args.maxAuditors < 1 || args.requiredStake < 0 || args.slashAmount < 0 {
		panic(ErrInvalidConfig)
	}

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, registryKey, args.registry)
	storage.Put(ctx, disputeKey, args.dispute)
	storage.Put(ctx, escrowKey, args.escrow)
	storage.Put(ctx, insuranceKey, args.insurance)
	storage.Put(ctx, concernWindowKey, args.concernWindow)
	storage.Put(ctx, maxAuditorsKey, args.maxAuditors)
	storage.Put(ctx, requiredStakeKey, args.requiredStake)
	storage.Put(ctx, slashAmountKey, args.slashAmount)
	common.InitRoles(ctx, args.grants)

	runtime.Log("audit bounty manager initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("audit bounty manager updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment accepts reward pools pulled by CreateBounty.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckPulledPayment(getHash(ctx, tokenKey), data)
}

// CreateBounty opens an audit of the NPO milestone funded with rewardPool
// tokens of the sponsor. The transaction must be witnessed by the NPO or a
// coordinator. Each milestone is audited by a single bounty. Auditors can vote
// until the concern window passes. It returns the identifier of the bounty.
func CreateBounty(sponsor, npo interop.Hash160, milestone, rewardPool int) int {
	common.CheckOwnerWitness(sponsor)
	common.CheckAccount(npo)
	if rewardPool < 0 {
		panic(common.ErrNegativeAmount)
	}
	if milestone < 0 {
		panic(ErrInvalidMilestone)
	}

	ctx := storage.GetContext()
	if !runtime.CheckWitness(npo) && !common.IsAuthorized(ctx, bountyconst.RoleCoordinator) {
		panic(common.ErrUnauthorized)
	}

	mKey := milestoneKey(npo, milestone)
	if storage.Get(ctx, mKey) != nil {
		panic(ErrMilestoneAlreadyAudited)
	}

	now := runtime.GetTime()
	b := Bounty{
		ID:              common.NextID(ctx, counterKey),
		NPO:             npo,
		Milestone:       milestone,
		Sponsor:         sponsor,
		RewardPool:      rewardPool,
		RequiredStake:   storage.Get(ctx, requiredStakeKey).(int),
		Start:           now,
		ConcernDeadline: now + storage.Get(ctx, concernWindowKey).(int),
		Auditors:        []interop.Hash160{},
		Status:          bountyconst.StatusActive,
	}
	putBounty(ctx, b)
	storage.Put(ctx, mKey, b.ID)

	if rewardPool > 0 {
		common.PullTokens(getHash(ctx, tokenKey), sponsor, rewardPool)
	}
	runtime.Notify("BountyCreated", b.ID, npo, milestone, rewardPool, b.ConcernDeadline)
	return b.ID
}

// OptIn adds the auditor to the bounty. The auditor must be registered, not
// suspended and have at least the stake required by the bounty.
func OptIn(bountyID int, auditorHash interop.Hash160) {
	common.CheckOwnerWitness(auditorHash)

	ctx := storage.GetContext()
	b := mustGetBounty(ctx, bountyID)
	if b.Status != bountyconst.StatusActive {
		panic(ErrBountyAlreadyFinalized)
	}
	if len(b.Auditors) >= storage.Get(ctx, maxAuditorsKey).(int) {
		panic(ErrMaxAuditorsReached)
	}
	if contains(b.Auditors, auditorHash) {
		panic(ErrAlreadyOptedIn)
	}

	registry := getHash(ctx, registryKey)
	if !contract.Call(registry, "isRegistered", contract.ReadOnly, auditorHash).(bool) {
		panic(ErrAuditorNotRegistered)
	}
	a := contract.Call(registry, "getAuditor", contract.ReadOnly, auditorHash).(auditor)
	if a.Suspended {
		panic(ErrAuditorSuspended)
	}
	if a.Stake < b.RequiredStake {
		panic(ErrInsufficientStake)
	}

	b.Auditors = append(b.Auditors, auditorHash)
	putBounty(ctx, b)

	runtime.Notify("AuditorOptedIn", bountyID, auditorHash)
}

// SubmitVote records the vote of an opted-in auditor before the concern
// deadline. A non-None vote can't be changed. The first Fail vote marks the
// bounty as contested.
func SubmitVote(bountyID int, auditorHash interop.Hash160, vote int, report string, evidence []string) {
	common.CheckOwnerWitness(auditorHash)

	ctx := storage.GetContext()
	b := mustGetBounty(ctx, bountyID)
	now := runtime.GetTime()
	if now >= b.ConcernDeadline {
		panic(ErrConcernDeadlinePassed)
	}
	if b.Status != bountyconst.StatusActive {
		panic(ErrBountyAlreadyFinalized)
	}
	if !contains(b.Auditors, auditorHash) {
		panic(common.ErrUnauthorized)
	}
	if vote < bountyconst.VoteNone || vote > bountyconst.VoteFail {
		panic(ErrInvalidVote)
	}
	if getVote(ctx, bountyID, auditorHash).Vote != bountyconst.VoteNone {
		panic(ErrVoteAlreadySubmitted)
	}

	common.SetSerialized(ctx, voteKey(bountyID, auditorHash), VoteData{
		Vote:      vote,
		Report:    report,
		Evidence:  evidence,
		Timestamp: now,
	})

	if vote == bountyconst.VoteFail && !b.ConcernsRaised {
		b.ConcernsRaised = true
		putBounty(ctx, b)
		runtime.Notify("ConcernRaised", bountyID, auditorHash)
	}
	runtime.Notify("VoteSubmitted", bountyID, auditorHash, vote)
}

// FinalizeBounty settles the bounty after the concern deadline. Contested
// bounties are escalated to Dispute Manager, others are decided by simple
// majority with ties resolved in favor of the milestone. It returns the new
// bounty status.
func FinalizeBounty(bountyID int) int {
	ctx := storage.GetContext()
	b := mustGetBounty(ctx, bountyID)
	if b.Status != bountyconst.StatusActive {
		panic(ErrBountyAlreadyFinalized)
	}
	if runtime.GetTime() < b.ConcernDeadline {
		panic(ErrBountyNotFinalizable)
	}
	if len(b.Auditors) == 0 {
		panic(ErrNoAuditorsOptedIn)
	}

	if b.ConcernsRaised {
		b.Status = bountyconst.StatusDisputed
		putBounty(ctx, b)

		disputeID := contract.Call(getHash(ctx, disputeKey), "startDispute", contract.All,
			b.ID, b.NPO, b.Milestone).(int)
		runtime.Notify("BountyDisputed", b.ID, disputeID)
		return b.Status
	}

	passVotes, failVotes := tally(ctx, b)
	outcome := bountyconst.VotePass
	b.Status = bountyconst.StatusPassed
	if passVotes < failVotes {
		outcome = bountyconst.VoteFail
		b.Status = bountyconst.StatusFailed
	}
	putBounty(ctx, b)

	settle(ctx, b, outcome)

	escrow := getHash(ctx, escrowKey)
	if contract.Call(escrow, "getStatus", contract.ReadOnly, b.NPO, b.Milestone).(int) == escrowconst.StatusActive {
		if b.Status == bountyconst.StatusPassed {
			contract.Call(escrow, "release", contract.All, b.NPO, b.Milestone)
		} else {
			contract.Call(escrow, "freezeMilestone", contract.All, b.NPO, b.Milestone)
		}
	}

	runtime.Notify("BountyFinalized", b.ID, b.Status, passVotes, failVotes)
	return b.Status
}

// ResolveDispute completes a disputed bounty with the panel decision.
// Overturned bounties fail, upheld ones pass. Escrow is handled by the
// dispute manager.
func ResolveDispute(bountyID int, overturn bool) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, bountyconst.RoleDispute)

	b := mustGetBounty(ctx, bountyID)
	if b.Status != bountyconst.StatusDisputed {
		panic(ErrBountyNotDisputed)
	}

	outcome := bountyconst.VotePass
	b.Status = bountyconst.StatusPassed
	if overturn {
		outcome = bountyconst.VoteFail
		b.Status = bountyconst.StatusFailed
	}
	putBounty(ctx, b)

	settle(ctx, b, outcome)

	passVotes, failVotes := tally(ctx, b)
	runtime.Notify("BountyFinalized", b.ID, b.Status, passVotes, failVotes)
}

// GetBounty returns the bounty. It fails for unknown identifiers.
func GetBounty(bountyID int) Bounty {
	ctx := storage.GetReadOnlyContext()
	return mustGetBounty(ctx, bountyID)
}

// GetVote returns the vote of the auditor. Vote field is VoteNone if the
// auditor didn't vote.
func GetVote(bountyID int, auditorHash interop.Hash160) VoteData {
	ctx := storage.GetReadOnlyContext()
	return getVote(ctx, bountyID, auditorHash)
}

// GetMilestoneBounty returns the identifier of the bounty auditing the NPO
// milestone or 0 if there is none.
func GetMilestoneBounty(npo interop.Hash160, milestone int) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, milestoneKey(npo, milestone))
	if data == nil {
		return 0
	}
	return data.(int)
}

// IsBountyFinalizable checks whether FinalizeBounty can be called now.
func IsBountyFinalizable(bountyID int) bool {
	ctx := storage.GetReadOnlyContext()
	b, ok := getBounty(ctx, bountyID)
	return ok &&
		b.Status == bountyconst.StatusActive &&
		runtime.GetTime() >= b.ConcernDeadline &&
		len(b.Auditors) > 0
}

// BountyCount returns the number of created bounties which is also the
// identifier of the last one.
func BountyCount() int {
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

// settle distributes the reward pool between the auditors who voted for the
// outcome and reports audit results to the registry. Auditors who voted
// against the outcome lose reputation and are slashed.
func settle(ctx storage.Context, b Bounty, outcome int) {
	registry := getHash(ctx, registryKey)
	slashAmount := storage.Get(ctx, slashAmountKey).(int)

	winners := []interop.Hash160{}
	for _, a := range b.Auditors {
		vote := getVote(ctx, b.ID, a).Vote
		if vote == bountyconst.VoteNone {
			continue
		}
		if vote == outcome {
			winners = append(winners, a)
			contract.Call(registry, "updateReputation", contract.All, a, true)
			continue
		}

		contract.Call(registry, "updateReputation", contract.All, a, false)
		if slashAmount > 0 {
			amount := contract.Call(registry, "stakeOf", contract.ReadOnly, a).(int)
			if amount > slashAmount {
				amount = slashAmount
			}
			if amount > 0 {
				contract.Call(registry, "slash", contract.All, a, amount)
			}
		}
	}

	token := getHash(ctx, tokenKey)
	rest := b.RewardPool
	if rest > 0 && len(winners) > 0 {
		share := b.RewardPool / len(winners)
		if share > 0 {
			for _, w := range winners {
				common.PushTokens(token, w, share)
				rest -= share
				runtime.Notify("RewardPaid", b.ID, w, share)
			}
		}
	}
	if rest > 0 {
		common.PushTokens(token, b.Sponsor, rest)
	}
}

func tally(ctx storage.Context, b Bounty) (int, int) {
	var passVotes, failVotes int
	for _, a := range b.Auditors {
		switch getVote(ctx, b.ID, a).Vote {
		case bountyconst.VotePass:
			passVotes++
		case bountyconst.VoteFail:
			failVotes++
		}
	}
	return passVotes, failVotes
}

func contains(list []interop.Hash160, item interop.Hash160) bool {
	for i := range list {
		if list[i].Equals(item) {
			return true
		}
	}
	return false
}

func putBounty(ctx storage.Context, b Bounty) {
	common.SetSerialized(ctx, common.IDKey(bountyPrefix, b.ID), b)
}

func getBounty(ctx storage.Context, bountyID int) (Bounty, bool) {
	data := storage.Get(ctx, common.IDKey(bountyPrefix, bountyID))
	if data == nil {
		return Bounty{}, false
	}
	return std.Deserialize(data.([]byte)).(Bounty), true
}

func mustGetBounty(ctx storage.Context, bountyID int) Bounty {
	b, ok := getBounty(ctx, bountyID)
	if !ok {
		panic(ErrBountyNotFound)
	}
	return b
}

func voteKey(bountyID int, auditorHash interop.Hash160) []byte {
	return append(common.IDKey(votePrefix, bountyID), auditorHash...)
}

func milestoneKey(npo interop.Hash160, milestone int) []byte {
	var buf any = milestone
	return append(append([]byte(milestonePrefix), npo...), buf.([]byte)...)
}

func getVote(ctx storage.Context, bountyID int, auditorHash interop.Hash160) VoteData {
	data := storage.Get(ctx, voteKey(bountyID, auditorHash))
	if data == nil {
		return VoteData{Vote: bountyconst.VoteNone, Evidence: []string{}}
	}
	return std.Deserialize(data.([]byte)).(VoteData)
}

func getHash(ctx storage.Context, key string) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}
