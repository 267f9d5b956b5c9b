package governance

import (
	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/escrow/escrowconst"
	"github.com/grantaudit/grantaudit-contract/contracts/governance/governanceconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Proposal is a privileged action subject to token holders vote.
type Proposal struct {
	ID       int
	Proposer interop.Hash160
	Kind     int
	// Source NPO of redirect, NPO of refund, auditor or payout recipient.
	Target    interop.Hash160
	Milestone int
	// Destination NPO of redirect.
	Recipient    interop.Hash160
	Amount       int
	Description  string
	Start        int
	End          int
	Executed     bool
	Succeeded    bool
	VotesFor     int
	VotesAgainst int
}

const (
	ErrProposalNotFound        = "proposal not found"
	ErrVotingPeriodEnded       = "voting period ended"
	ErrVotingPeriodNotEnded    = "voting period has not ended"
	ErrAlreadyVoted            = "already voted"
	ErrNoVotingPower           = "insufficient voting power"
	ErrProposalAlreadyExecuted = "proposal already executed"
	ErrQuorumNotReached        = "quorum not reached"
	ErrProposalNotApproved     = "proposal not approved"
	ErrVoteNotFound            = "vote not found"
	ErrInvalidMilestone        = "invalid milestone"
	ErrInvalidConfig           = "invalid governance configuration"
	ErrNoLockedTokens          = "no locked tokens"

	tokenKey           = "t"
	escrowKey          = "e"
	insuranceKey       = "i"
	registryKey        = "g"
	votingPeriodKey    = "w"
	quorumKey          = "q"
	minVoterBalanceKey = "m"
	counterKey         = "n"

	proposalPrefix = "p"
	votePrefix     = "v"
	lockPrefix     = "l"
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
		escrow          interop.Hash160
		insurance       interop.Hash160
		registry        interop.Hash160
		votingPeriod    int
		quorum          int
		minVoterBalance int
	})

	common.CheckAccount(args.token)
	common.CheckAccount(args.escrow)
	common.CheckAccount(args.insurance)
	common.CheckAccount(args.registry)
	if args.votingPeriod < 0 || args.quorum < 0 || args.minVoterBalance < 0 {
		panic(ErrInvalidConfig)
	}

	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, escrowKey, args.escrow)
	storage.Put(ctx, insuranceKey, args.insurance)
	storage.Put(ctx, registryKey, args.registry)
	storage.Put(ctx, votingPeriodKey, args.votingPeriod)
	storage.Put(ctx, quorumKey, args.quorum)
	storage.Put(ctx, minVoterBalanceKey, args.minVoterBalance)

	runtime.Log("governance manager initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrUpdateAccessDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("governance manager updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment accepts voting power locked by Vote.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckPulledPayment(getHash(ctx, tokenKey), data)
}

// ProposeRedirect proposes to move funds of a frozen milestone to another NPO.
func ProposeRedirect(proposer, fromNPO interop.Hash160, milestone int, toNPO interop.Hash160, description string) int {
	common.CheckAccount(fromNPO)
	common.CheckAccount(toNPO)
	checkMilestone(milestone)
	return propose(Proposal{
		Proposer:    proposer,
		Kind:        governanceconst.KindRedirect,
		Target:      fromNPO,
		Milestone:   milestone,
		Recipient:   toNPO,
		Description: description,
	})
}

// ProposeRefundDonors proposes to return funds of a frozen milestone to its
// donors.
func ProposeRefundDonors(proposer, npo interop.Hash160, milestone int, description string) int {
	common.CheckAccount(npo)
	checkMilestone(milestone)
	return propose(Proposal{
		Proposer:    proposer,
		Kind:        governanceconst.KindRefundDonors,
		Target:      npo,
		Milestone:   milestone,
		Description: description,
	})
}

// ProposePayout proposes an insurance fund payout.
func ProposePayout(proposer, recipient interop.Hash160, amount int, description string) int {
	common.CheckAccount(recipient)
	common.CheckAmount(amount)
	return propose(Proposal{
		Proposer:    proposer,
		Kind:        governanceconst.KindPayout,
		Target:      recipient,
		Amount:      amount,
		Description: description,
	})
}

// ProposeAddAuditor proposes to lift the suspension of an auditor.
func ProposeAddAuditor(proposer, auditor interop.Hash160, description string) int {
	common.CheckAccount(auditor)
	return propose(Proposal{
		Proposer:    proposer,
		Kind:        governanceconst.KindAddAuditor,
		Target:      auditor,
		Description: description,
	})
}

// ProposeRemoveAuditor proposes to suspend an auditor.
func ProposeRemoveAuditor(proposer, auditor interop.Hash160, description string) int {
	common.CheckAccount(auditor)
	return propose(Proposal{
		Proposer:    proposer,
		Kind:        governanceconst.KindRemoveAuditor,
		Target:      auditor,
		Description: description,
	})
}

func propose(p Proposal) int {
	common.CheckOwnerWitness(p.Proposer)

	ctx := storage.GetContext()
	p.ID = common.NextID(ctx, counterKey)
	p.Start = runtime.GetTime()
	p.End = p.Start + storage.Get(ctx, votingPeriodKey).(int)
	putProposal(ctx, p)

	runtime.Notify("ProposalCreated", p.ID, p.Proposer, p.Kind, p.End)
	return p.ID
}

// Vote casts a vote of the token holder. Every voter has one vote per
// proposal. The minimum voter balance is transferred from the voter and
// locked in the contract until the end of voting, see ReleaseVoteLock.
func Vote(proposalID int, voter interop.Hash160, support bool) {
	common.CheckOwnerWitness(voter)

	ctx := storage.GetContext()
	p := mustGetProposal(ctx, proposalID)
	if runtime.GetTime() >= p.End {
		panic(ErrVotingPeriodEnded)
	}
	key := voteKey(proposalID, voter)
	if storage.Get(ctx, key) != nil {
		panic(ErrAlreadyVoted)
	}
	minBalance := storage.Get(ctx, minVoterBalanceKey).(int)
	if minBalance > 0 && common.TokenBalance(getHash(ctx, tokenKey), voter) < minBalance {
		panic(ErrNoVotingPower)
	}

	if support {
		p.VotesFor += 1
	} else {
		p.VotesAgainst += 1
	}
	putProposal(ctx, p)
	common.SetSerialized(ctx, key, support)

	if minBalance > 0 {
		storage.Put(ctx, lockKey(proposalID, voter), minBalance)
		common.PullTokens(getHash(ctx, tokenKey), voter, minBalance)
	}

	runtime.Notify("VoteCast", proposalID, voter, support)
}

// ReleaseVoteLock returns tokens locked by the vote to the voter after the
// voting period.
func ReleaseVoteLock(proposalID int, voter interop.Hash160) {
	ctx := storage.GetContext()
	p := mustGetProposal(ctx, proposalID)
	if runtime.GetTime() < p.End {
		panic(ErrVotingPeriodNotEnded)
	}

	key := lockKey(proposalID, voter)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrNoLockedTokens)
	}
	amount := data.(int)
	storage.Delete(ctx, key)

	common.PushTokens(getHash(ctx, tokenKey), voter, amount)
	runtime.Notify("VoteLockReleased", proposalID, voter, amount)
}

// ExecuteProposal executes the proposal after the voting period. It fails
// if the quorum is not reached, the proposal stays unexecuted then. Rejected
// proposals and approved proposals whose action can't be applied anymore are
// marked as executed unsuccessfully. It returns true if the action was
// dispatched.
func ExecuteProposal(proposalID int) bool {
	ctx := storage.GetContext()
	p := mustGetProposal(ctx, proposalID)
	if p.Executed {
		panic(ErrProposalAlreadyExecuted)
	}
	if runtime.GetTime() < p.End {
		panic(ErrVotingPeriodNotEnded)
	}
	if p.VotesFor+p.VotesAgainst < storage.Get(ctx, quorumKey).(int) {
		panic(ErrQuorumNotReached)
	}

	p.Executed = true
	if p.VotesFor <= p.VotesAgainst {
		putProposal(ctx, p)
		runtime.Log(ErrProposalNotApproved)
		runtime.Notify("ProposalExecuted", proposalID, false)
		return false
	}

	p.Succeeded = canDispatch(ctx, p)
	putProposal(ctx, p)
	if p.Succeeded {
		dispatch(ctx, p)
	}

	runtime.Notify("ProposalExecuted", proposalID, p.Succeeded)
	return p.Succeeded
}

// GetProposal returns the proposal. It fails for unknown identifiers.
func GetProposal(proposalID int) Proposal {
	ctx := storage.GetReadOnlyContext()
	return mustGetProposal(ctx, proposalID)
}

// HasVoted checks whether the account voted for the proposal.
func HasVoted(proposalID int, voter interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, voteKey(proposalID, voter)) != nil
}

// GetVote returns the vote of the account. It fails if the account hasn't
// voted.
func GetVote(proposalID int, voter interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, voteKey(proposalID, voter))
	if data == nil {
		panic(ErrVoteNotFound)
	}
	return std.Deserialize(data.([]byte)).(bool)
}

// LockedOf returns the amount of tokens locked by the vote.
func LockedOf(proposalID int, voter interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, lockKey(proposalID, voter))
	if data == nil {
		return 0
	}
	return data.(int)
}

// ProposalCount returns the number of created proposals.
func ProposalCount() int {
	return common.CurrentID(storage.GetReadOnlyContext(), counterKey)
}

// canDispatch checks with read-only calls that the action of the proposal
// can be applied in the current state.
func canDispatch(ctx storage.Context, p Proposal) bool {
	switch p.Kind {
	case governanceconst.KindRedirect, governanceconst.KindRefundDonors:
		status := contract.Call(getHash(ctx, escrowKey), "getStatus", contract.ReadOnly,
			p.Target, p.Milestone).(int)
		return status == escrowconst.StatusFrozen
	case governanceconst.KindPayout:
		balance := contract.Call(getHash(ctx, insuranceKey), "getBalance", contract.ReadOnly).(int)
		return balance >= p.Amount
	case governanceconst.KindAddAuditor, governanceconst.KindRemoveAuditor:
		return contract.Call(getHash(ctx, registryKey), "isRegistered", contract.ReadOnly, p.Target).(bool)
	}
	return false
}

func dispatch(ctx storage.Context, p Proposal) {
	switch p.Kind {
	case governanceconst.KindRedirect:
		contract.Call(getHash(ctx, escrowKey), "redirectFunds", contract.All,
			p.Target, p.Milestone, p.Recipient)
	case governanceconst.KindRefundDonors:
		escrow := getHash(ctx, escrowKey)
		donors := contract.Call(escrow, "getDonors", contract.ReadOnly, p.Target, p.Milestone).([]interop.Hash160)
		for _, donor := range donors {
			contract.Call(escrow, "refundDonor", contract.All, p.Target, p.Milestone, donor)
		}
	case governanceconst.KindPayout:
		contract.Call(getHash(ctx, insuranceKey), "governancePayout", contract.All,
			p.Target, p.Amount, p.Description)
	case governanceconst.KindAddAuditor:
		contract.Call(getHash(ctx, registryKey), "reinstate", contract.All, p.Target)
	case governanceconst.KindRemoveAuditor:
		contract.Call(getHash(ctx, registryKey), "suspend", contract.All, p.Target)
	}
}

func checkMilestone(milestone int) {
	if milestone < 0 {
		panic(ErrInvalidMilestone)
	}
}

func putProposal(ctx storage.Context, p Proposal) {
	common.SetSerialized(ctx, common.IDKey(proposalPrefix, p.ID), p)
}

func mustGetProposal(ctx storage.Context, proposalID int) Proposal {
	data := storage.Get(ctx, common.IDKey(proposalPrefix, proposalID))
	if data == nil {
		panic(ErrProposalNotFound)
	}
	return std.Deserialize(data.([]byte)).(Proposal)
}

func voteKey(proposalID int, voter interop.Hash160) []byte {
	return append(common.IDKey(votePrefix, proposalID), voter...)
}

func lockKey(proposalID int, voter interop.Hash160) []byte {
	return append(common.IDKey(lockPrefix, proposalID), voter...)
}

func getHash(ctx storage.Context, key string) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}
