package bounty_test

import (
	"testing"

	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/bounty"
	"github.com/grantaudit/grantaudit-contract/contracts/bounty/bountyconst"
	"github.com/grantaudit/grantaudit-contract/contracts/dispute"
	"github.com/grantaudit/grantaudit-contract/internal/contracttest"
	rpcbounty "github.com/grantaudit/grantaudit-contract/rpc/bounty"
	rpcescrow "github.com/grantaudit/grantaudit-contract/rpc/escrow"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const evidenceCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func getBounty(t *testing.T, e *contracttest.Env, id int64) *rpcbounty.BountyBounty {
	res := new(rpcbounty.BountyBounty)
	require.NoError(t, res.FromStackItem(e.Call(t, e.Bounty, "getBounty", id)))
	return res
}

func getVote(t *testing.T, e *contracttest.Env, id int64, auditor util.Uint160) *rpcbounty.BountyVoteData {
	res := new(rpcbounty.BountyVoteData)
	require.NoError(t, res.FromStackItem(e.Call(t, e.Bounty, "getVote", id, auditor)))
	return res
}

func TestCreateBounty(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		npo     = e.NewAccount(t).ScriptHash()
		inv     = e.NewInvoker(e.Bounty, sponsor, e.Committee)
	)

	inv.InvokeFail(t, common.ErrNegativeAmount, "createBounty", sponsor.ScriptHash(), npo, 1, -1)
	inv.InvokeFail(t, bounty.ErrInvalidMilestone, "createBounty", sponsor.ScriptHash(), npo, -1, 10)
	inv.InvokeFail(t, common.ErrOwnerWitnessFailed, "createBounty", npo, npo, 1, 10)
	inv.InvokeFail(t, common.ErrTokenTransferFailed, "createBounty", sponsor.ScriptHash(), npo, 1, 1001)
	e.CommitteeInvoker(e.Bounty).InvokeFail(t, bounty.ErrBountyNotFound, "getBounty", 1)

	require.Zero(t, e.CallInt(t, e.Bounty, "bountyCount"))

	txH := inv.Invoke(t, 1, "createBounty", sponsor.ScriptHash(), npo, 2, 90)
	start := e.Now(t)

	events, err := rpcbounty.BountyCreatedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(1), events[0].BountyID.Int64())
	require.Equal(t, npo, events[0].NPO)
	require.Equal(t, int64(2), events[0].Milestone.Int64())
	require.Equal(t, int64(90), events[0].RewardPool.Int64())
	require.Equal(t, start+e.Settings.ConcernWindow, events[0].ConcernDeadline.Int64())

	b := getBounty(t, e, 1)
	require.Equal(t, int64(1), b.ID.Int64())
	require.Equal(t, npo, b.NPO)
	require.Equal(t, sponsor.ScriptHash(), b.Sponsor)
	require.Equal(t, int64(90), b.RewardPool.Int64())
	require.Equal(t, e.Settings.RequiredStake, b.RequiredStake.Int64())
	require.Equal(t, start, b.Start.Int64())
	require.Empty(t, b.Auditors)
	require.Zero(t, b.Status.Cmp(rpcbounty.StatusActive))
	require.False(t, b.ConcernsRaised)

	require.Equal(t, int64(90), e.BalanceOf(t, e.Bounty))
	require.Equal(t, int64(910), e.BalanceOf(t, sponsor.ScriptHash()))

	t.Run("without reward pool", func(t *testing.T) {
		inv.Invoke(t, 2, "createBounty", sponsor.ScriptHash(), npo, 3, 0)
		require.Equal(t, int64(2), e.CallInt(t, e.Bounty, "bountyCount"))
	})

	t.Run("one bounty per milestone", func(t *testing.T) {
		require.Equal(t, int64(1), e.CallInt(t, e.Bounty, "getMilestoneBounty", npo, 2))
		require.Zero(t, e.CallInt(t, e.Bounty, "getMilestoneBounty", npo, 4))

		inv.InvokeFail(t, bounty.ErrMilestoneAlreadyAudited, "createBounty", sponsor.ScriptHash(), npo, 2, 0)
	})

	t.Run("opened by NPO", func(t *testing.T) {
		org := e.NewAccountWithTokens(t, 10)
		orgInv := e.NewInvoker(e.Bounty, org)

		e.NewInvoker(e.Bounty, sponsor).InvokeFail(t, common.ErrUnauthorized,
			"createBounty", sponsor.ScriptHash(), org.ScriptHash(), 1, 0)
		orgInv.InvokeFail(t, common.ErrUnauthorized, "createBounty", org.ScriptHash(), npo, 4, 0)

		id := e.CallInt(t, e.Bounty, "bountyCount") + 1
		orgInv.Invoke(t, id, "createBounty", org.ScriptHash(), org.ScriptHash(), 1, 10)
		require.Equal(t, id, e.CallInt(t, e.Bounty, "getMilestoneBounty", org.ScriptHash(), 1))
		require.Equal(t, org.ScriptHash(), getBounty(t, e, id).Sponsor)
	})

	t.Run("direct transfer", func(t *testing.T) {
		e.NewInvoker(e.Token, sponsor).InvokeFail(t, common.ErrDirectTransfer,
			"transfer", sponsor.ScriptHash(), e.Bounty, 10, nil)
	})
}

func TestOptIn(t *testing.T) {
	e := contracttest.New(t, func(s *contracttest.Settings) { s.MaxAuditors = 2 })

	var (
		sponsor  = e.NewAccountWithTokens(t, 1000)
		npo      = e.NewAccount(t).ScriptHash()
		a1       = e.NewAuditor(t, 200)
		a2       = e.NewAuditor(t, 100)
		a3       = e.NewAuditor(t, 200)
		poor     = e.NewAuditor(t, 99)
		stranger = e.NewAccount(t)
	)

	id := e.CreateBounty(t, sponsor, npo, 1, 0)

	e.NewInvoker(e.Bounty, a1).InvokeFail(t, bounty.ErrBountyNotFound, "optIn", 100, a1.ScriptHash())
	e.NewInvoker(e.Bounty, a1).InvokeFail(t, common.ErrOwnerWitnessFailed, "optIn", id, a2.ScriptHash())
	e.NewInvoker(e.Bounty, stranger).InvokeFail(t, bounty.ErrAuditorNotRegistered, "optIn", id, stranger.ScriptHash())
	e.NewInvoker(e.Bounty, poor).InvokeFail(t, bounty.ErrInsufficientStake, "optIn", id, poor.ScriptHash())

	t.Run("suspended", func(t *testing.T) {
		c := e.CommitteeInvoker(e.Registry)
		c.Invoke(t, stackitem.Null{}, "suspend", a1.ScriptHash())
		e.NewInvoker(e.Bounty, a1).InvokeFail(t, bounty.ErrAuditorSuspended, "optIn", id, a1.ScriptHash())
		c.Invoke(t, stackitem.Null{}, "reinstate", a1.ScriptHash())
	})

	txH := e.NewInvoker(e.Bounty, a1).Invoke(t, stackitem.Null{}, "optIn", id, a1.ScriptHash())
	events, err := rpcbounty.AuditorOptedInEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, a1.ScriptHash(), events[0].Auditor)

	e.NewInvoker(e.Bounty, a1).InvokeFail(t, bounty.ErrAlreadyOptedIn, "optIn", id, a1.ScriptHash())
	e.OptIn(t, id, a2)
	e.NewInvoker(e.Bounty, a3).InvokeFail(t, bounty.ErrMaxAuditorsReached, "optIn", id, a3.ScriptHash())

	require.Equal(t, []util.Uint160{a1.ScriptHash(), a2.ScriptHash()}, getBounty(t, e, id).Auditors)

	t.Run("stake is checked at opt-in only", func(t *testing.T) {
		e.Wait(t, e.Settings.InitialLock)
		e.NewInvoker(e.Registry, a2).Invoke(t, stackitem.Null{}, "unstake", a2.ScriptHash(), 100)
		require.Len(t, getBounty(t, e, id).Auditors, 2)
	})

	t.Run("finalized bounty", func(t *testing.T) {
		e.CommitteeInvoker(e.Bounty).Invoke(t, bountyconst.StatusPassed, "finalizeBounty", id)
		e.NewInvoker(e.Bounty, a3).InvokeFail(t, bounty.ErrBountyAlreadyFinalized, "optIn", id, a3.ScriptHash())
	})
}

func TestSubmitVote(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		npo     = e.NewAccount(t).ScriptHash()
		a1      = e.NewAuditor(t, 200)
		a2      = e.NewAuditor(t, 200)
		a3      = e.NewAuditor(t, 200)
		outside = e.NewAuditor(t, 200)
	)

	id := e.CreateBounty(t, sponsor, npo, 1, 0)
	e.OptIn(t, id, a1, a2, a3)

	inv := e.NewInvoker(e.Bounty, a1)
	e.NewInvoker(e.Bounty, outside).InvokeFail(t, common.ErrUnauthorized, "submitVote",
		id, outside.ScriptHash(), contracttest.VotePass, "", contracttest.Strings())
	inv.InvokeFail(t, common.ErrOwnerWitnessFailed, "submitVote",
		id, a2.ScriptHash(), contracttest.VotePass, "", contracttest.Strings())
	inv.InvokeFail(t, bounty.ErrInvalidVote, "submitVote",
		id, a1.ScriptHash(), 3, "", contracttest.Strings())
	inv.InvokeFail(t, bounty.ErrInvalidVote, "submitVote",
		id, a1.ScriptHash(), -1, "", contracttest.Strings())

	v := getVote(t, e, id, a1.ScriptHash())
	require.Zero(t, v.Vote.Cmp(rpcbounty.VoteNone))
	require.Empty(t, v.Evidence)

	t.Run("abstention can be replaced", func(t *testing.T) {
		inv.Invoke(t, stackitem.Null{}, "submitVote", id, a1.ScriptHash(), 0, "later", contracttest.Strings())
		require.Equal(t, "later", getVote(t, e, id, a1.ScriptHash()).Report)
	})

	txH := inv.Invoke(t, stackitem.Null{}, "submitVote",
		id, a1.ScriptHash(), contracttest.VotePass, "all good", contracttest.Strings(evidenceCID))
	require.Equal(t, []string{"VoteSubmitted"}, e.EventNames(t, txH))

	v = getVote(t, e, id, a1.ScriptHash())
	require.Zero(t, v.Vote.Cmp(rpcbounty.VotePass))
	require.Equal(t, "all good", v.Report)
	require.Equal(t, []string{evidenceCID}, v.Evidence)
	require.Equal(t, e.Now(t), v.Timestamp.Int64())

	inv.InvokeFail(t, bounty.ErrVoteAlreadySubmitted, "submitVote",
		id, a1.ScriptHash(), contracttest.VoteFail, "", contracttest.Strings())

	txH = e.Vote(t, id, a2, contracttest.VoteFail)
	require.Equal(t, []string{"ConcernRaised", "VoteSubmitted"}, e.EventNames(t, txH))
	raised, err := rpcbounty.ConcernRaisedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, raised, 1)
	require.Equal(t, a2.ScriptHash(), raised[0].Auditor)
	require.True(t, getBounty(t, e, id).ConcernsRaised)

	e.Wait(t, e.Settings.ConcernWindow)
	e.NewInvoker(e.Bounty, a3).InvokeFail(t, bounty.ErrConcernDeadlinePassed, "submitVote",
		id, a3.ScriptHash(), contracttest.VoteFail, "", contracttest.Strings())
}

func TestSecondConcernIsNotReported(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		a1      = e.NewAuditor(t, 200)
		a2      = e.NewAuditor(t, 200)
	)

	id := e.CreateBounty(t, sponsor, e.NewAccount(t).ScriptHash(), 1, 0)
	e.OptIn(t, id, a1, a2)

	e.Vote(t, id, a1, contracttest.VoteFail)
	txH := e.Vote(t, id, a2, contracttest.VoteFail)
	require.Equal(t, []string{"VoteSubmitted"}, e.EventNames(t, txH))
}

func TestFinalizeBounty(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		donor   = e.NewAccountWithTokens(t, 1000)
		npo     = e.NewAccount(t).ScriptHash()
		a1      = e.NewAuditor(t, 200)
		a2      = e.NewAuditor(t, 200)
		a3      = e.NewAuditor(t, 200)
		c       = e.CommitteeInvoker(e.Bounty)
	)

	e.Deposit(t, donor, npo, 1, 300)
	id := e.CreateBounty(t, sponsor, npo, 1, 101)
	e.OptIn(t, id, a1, a2, a3)
	e.Vote(t, id, a1, contracttest.VotePass)
	e.Vote(t, id, a2, contracttest.VotePass)

	c.InvokeFail(t, bounty.ErrBountyNotFound, "finalizeBounty", id+1)
	c.InvokeFail(t, bounty.ErrBountyNotFinalizable, "finalizeBounty", id)
	require.False(t, e.CallBool(t, e.Bounty, "isBountyFinalizable", id))

	e.Wait(t, e.Settings.ConcernWindow)
	require.True(t, e.CallBool(t, e.Bounty, "isBountyFinalizable", id))
	require.False(t, e.CallBool(t, e.Bounty, "isBountyFinalizable", id+1))

	txH := e.NewInvoker(e.Bounty, donor).Invoke(t, bountyconst.StatusPassed, "finalizeBounty", id)

	finalized, err := rpcbounty.BountyFinalizedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, finalized, 1)
	require.Zero(t, finalized[0].Status.Cmp(rpcbounty.StatusPassed))
	require.Equal(t, int64(2), finalized[0].PassVotes.Int64())
	require.Zero(t, finalized[0].FailVotes.Sign())

	rewards, err := rpcbounty.RewardPaidEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	for i := range rewards {
		require.Equal(t, int64(50), rewards[i].Amount.Int64())
	}

	released, err := rpcescrow.FundsReleasedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, released, 1)
	require.Equal(t, int64(300), released[0].Amount.Int64())

	require.Equal(t, int64(50), e.BalanceOf(t, a1.ScriptHash()))
	require.Equal(t, int64(50), e.BalanceOf(t, a2.ScriptHash()))
	require.Zero(t, e.BalanceOf(t, a3.ScriptHash()))
	require.Equal(t, int64(900), e.BalanceOf(t, sponsor.ScriptHash()))
	require.Zero(t, e.BalanceOf(t, e.Bounty))
	require.Equal(t, int64(300), e.BalanceOf(t, npo))

	require.Equal(t, int64(1), e.CallInt(t, e.Registry, "reputationOf", a1.ScriptHash()))
	require.Equal(t, int64(1), e.CallInt(t, e.Registry, "reputationOf", a2.ScriptHash()))
	require.Zero(t, e.CallInt(t, e.Registry, "reputationOf", a3.ScriptHash()))
	require.Equal(t, int64(200), e.CallInt(t, e.Registry, "stakeOf", a3.ScriptHash()))

	require.Zero(t, getBounty(t, e, id).Status.Cmp(rpcbounty.StatusPassed))
	require.False(t, e.CallBool(t, e.Bounty, "isBountyFinalizable", id))
	c.InvokeFail(t, bounty.ErrBountyAlreadyFinalized, "finalizeBounty", id)
}

func TestFinalizeWithoutVotes(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		npo     = e.NewAccount(t).ScriptHash()
		a1      = e.NewAuditor(t, 200)
		c       = e.CommitteeInvoker(e.Bounty)
	)

	empty := e.CreateBounty(t, sponsor, npo, 1, 10)
	id := e.CreateBounty(t, sponsor, npo, 2, 40)
	e.OptIn(t, id, a1)
	e.Wait(t, e.Settings.ConcernWindow)

	c.InvokeFail(t, bounty.ErrNoAuditorsOptedIn, "finalizeBounty", empty)
	require.False(t, e.CallBool(t, e.Bounty, "isBountyFinalizable", empty))

	// Nothing is escrowed for the milestone, the pool goes back to the sponsor.
	txH := c.Invoke(t, bountyconst.StatusPassed, "finalizeBounty", id)
	rewards, err := rpcbounty.RewardPaidEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Empty(t, rewards)
	require.Equal(t, int64(990), e.BalanceOf(t, sponsor.ScriptHash()))
	require.Zero(t, e.CallInt(t, e.Registry, "reputationOf", a1.ScriptHash()))
}

func TestFinalizeContested(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		donor   = e.NewAccountWithTokens(t, 1000)
		npo     = e.NewAccount(t).ScriptHash()
		a1      = e.NewAuditor(t, 200)
		a2      = e.NewAuditor(t, 200)
		a3      = e.NewAuditor(t, 200)
	)

	e.Deposit(t, donor, npo, 1, 300)
	id := e.CreateBounty(t, sponsor, npo, 1, 90)
	e.OptIn(t, id, a1, a2, a3)
	e.Vote(t, id, a1, contracttest.VotePass)
	e.Vote(t, id, a2, contracttest.VotePass)
	e.Vote(t, id, a3, contracttest.VoteFail)
	e.Wait(t, e.Settings.ConcernWindow)

	txH := e.CommitteeInvoker(e.Bounty).Invoke(t, bountyconst.StatusDisputed, "finalizeBounty", id)
	disputed, err := rpcbounty.BountyDisputedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, disputed, 1)
	require.Equal(t, id, disputed[0].BountyID.Int64())
	require.Equal(t, int64(1), disputed[0].DisputeID.Int64())

	require.Zero(t, getBounty(t, e, id).Status.Cmp(rpcbounty.StatusDisputed))
	require.Equal(t, int64(1), e.CallInt(t, e.Dispute, "getBountyDispute", id))

	// Nothing is paid until the dispute is resolved.
	require.Equal(t, int64(90), e.BalanceOf(t, e.Bounty))
	require.Zero(t, e.BalanceOf(t, npo))
	require.Equal(t, rpcescrow.StatusActive.Int64(), e.CallInt(t, e.Escrow, "getStatus", npo, 1))

	e.CommitteeInvoker(e.Bounty).InvokeFail(t, bounty.ErrBountyAlreadyFinalized, "finalizeBounty", id)
}

func TestFinalizeContestedWithoutPanel(t *testing.T) {
	e := contracttest.New(t, func(s *contracttest.Settings) { s.PanelSize = 4 })

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		a1      = e.NewAuditor(t, 200)
		a2      = e.NewAuditor(t, 200)
	)

	id := e.CreateBounty(t, sponsor, e.NewAccount(t).ScriptHash(), 1, 10)
	e.OptIn(t, id, a1, a2)
	e.Vote(t, id, a1, contracttest.VoteFail)
	e.Wait(t, e.Settings.ConcernWindow)

	e.CommitteeInvoker(e.Bounty).InvokeFail(t, dispute.ErrNotEnoughAuditors, "finalizeBounty", id)
	require.Zero(t, getBounty(t, e, id).Status.Cmp(rpcbounty.StatusActive))
}

func TestResolveDispute(t *testing.T) {
	e := contracttest.New(t)

	var (
		sponsor = e.NewAccountWithTokens(t, 1000)
		a1      = e.NewAuditor(t, 200)
	)

	id := e.CreateBounty(t, sponsor, e.NewAccount(t).ScriptHash(), 1, 10)
	e.OptIn(t, id, a1)

	e.NewInvoker(e.Bounty, a1).InvokeFail(t, common.ErrUnauthorized, "resolveDispute", id, true)
	e.CommitteeInvoker(e.Bounty).InvokeFail(t, bounty.ErrBountyNotDisputed, "resolveDispute", id, true)
	e.CommitteeInvoker(e.Bounty).InvokeFail(t, bounty.ErrBountyNotFound, "resolveDispute", id+1, true)
}

func TestRoles(t *testing.T) {
	e := contracttest.New(t)

	c := e.CommitteeInvoker(e.Bounty)
	c.Invoke(t, true, "hasRole", bountyconst.RoleDispute, e.Dispute)
	c.Invoke(t, false, "hasRole", bountyconst.RoleDispute, e.Governance)
	c.Invoke(t, true, "hasRole", bountyconst.RoleCoordinator, e.CommitteeHash)

	// Coordinators open bounties for any NPO.
	var (
		coordinator = e.NewAccountWithTokens(t, 10)
		npo         = e.NewAccount(t).ScriptHash()
	)
	inv := e.NewInvoker(e.Bounty, coordinator)
	inv.InvokeFail(t, common.ErrUnauthorized, "createBounty", coordinator.ScriptHash(), npo, 1, 0)

	c.Invoke(t, stackitem.Null{}, "grantRole", bountyconst.RoleCoordinator, coordinator.ScriptHash())
	inv.Invoke(t, 1, "createBounty", coordinator.ScriptHash(), npo, 1, 0)
}
