package dispute_test

import (
	"testing"

	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/dispute"
	"github.com/grantaudit/grantaudit-contract/contracts/dispute/disputeconst"
	"github.com/grantaudit/grantaudit-contract/internal/contracttest"
	rpcbounty "github.com/grantaudit/grantaudit-contract/rpc/bounty"
	rpcdispute "github.com/grantaudit/grantaudit-contract/rpc/dispute"
	rpcescrow "github.com/grantaudit/grantaudit-contract/rpc/escrow"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// contested is a bounty escalated to a dispute. The approving auditor is
// a1, the objecting one is a2, a3 only sits on the panel.
type contested struct {
	*contracttest.Env

	npo        util.Uint160
	a1, a2, a3 neotest.Signer
	bountyID   int64
	disputeID  int64
}

const (
	escrowed   = 300
	rewardPool = 90
	stake      = 200
)

func newContested(t *testing.T, opts ...func(*contracttest.Settings)) *contested {
	e := contracttest.New(t, opts...)

	c := &contested{
		Env: e,
		npo: e.NewAccount(t).ScriptHash(),
		a1:  e.NewAuditor(t, stake),
		a2:  e.NewAuditor(t, stake),
		a3:  e.NewAuditor(t, stake),
	}

	e.Deposit(t, e.NewAccountWithTokens(t, escrowed), c.npo, 1, escrowed)
	c.bountyID = e.CreateBounty(t, e.NewAccountWithTokens(t, rewardPool), c.npo, 1, rewardPool)
	e.OptIn(t, c.bountyID, c.a1, c.a2)
	e.Vote(t, c.bountyID, c.a1, contracttest.VotePass)
	e.Vote(t, c.bountyID, c.a2, contracttest.VoteFail)
	e.Wait(t, e.Settings.ConcernWindow)

	c.disputeID = e.CallInt(t, e.Dispute, "disputeCount") + 1
	e.CommitteeInvoker(e.Bounty).Invoke(t, rpcbounty.StatusDisputed.Int64(), "finalizeBounty", c.bountyID)
	return c
}

func (c *contested) vote(t *testing.T, member neotest.Signer, overturn bool) util.Uint256 {
	return c.NewInvoker(c.Dispute, member).Invoke(t, stackitem.Null{}, "submitPanelVote",
		c.disputeID, member.ScriptHash(), overturn, "")
}

func (c *contested) getDispute(t *testing.T) *rpcdispute.DisputeDispute {
	res := new(rpcdispute.DisputeDispute)
	require.NoError(t, res.FromStackItem(c.Call(t, c.Dispute, "getDispute", c.disputeID)))
	return res
}

func (c *contested) bountyStatus(t *testing.T) int64 {
	b := new(rpcbounty.BountyBounty)
	require.NoError(t, b.FromStackItem(c.Call(t, c.Bounty, "getBounty", c.bountyID)))
	return b.Status.Int64()
}

func TestStartDispute(t *testing.T) {
	c := newContested(t)
	start := c.Now(t)

	d := c.getDispute(t)
	require.Equal(t, c.disputeID, d.ID.Int64())
	require.Equal(t, c.bountyID, d.BountyID.Int64())
	require.Equal(t, c.npo, d.NPO)
	require.Equal(t, int64(1), d.Milestone.Int64())
	require.ElementsMatch(t, []util.Uint160{c.a1.ScriptHash(), c.a2.ScriptHash(), c.a3.ScriptHash()}, d.Panel)
	require.Equal(t, start+c.Settings.DisputeWindow, d.End.Int64())
	require.Zero(t, d.Status.Cmp(rpcdispute.StatusActive))
	require.Zero(t, d.Result.Cmp(rpcdispute.ResultNone))

	require.Equal(t, int64(1), c.CallInt(t, c.Dispute, "disputeCount"))
	require.Equal(t, c.disputeID, c.CallInt(t, c.Dispute, "getBountyDispute", c.bountyID))
	require.Equal(t, rpcdispute.NoDispute.Int64(), c.CallInt(t, c.Dispute, "getBountyDispute", c.bountyID+1))

	inv := c.CommitteeInvoker(c.Dispute)
	c.NewInvoker(c.Dispute, c.a1).InvokeFail(t, common.ErrUnauthorized, "startDispute", 10, c.npo, 1)
	inv.InvokeFail(t, dispute.ErrBountyAlreadyDisputed, "startDispute", c.bountyID, c.npo, 1)
	inv.InvokeFail(t, dispute.ErrDisputeNotFound, "getDispute", c.disputeID+1)

	t.Run("events", func(t *testing.T) {
		txH := inv.Invoke(t, c.disputeID+1, "startDispute", 10, c.npo, 2)
		events, err := rpcdispute.DisputeStartedEventsFromApplicationLog(c.ApplicationLog(t, txH))
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, c.disputeID+1, events[0].DisputeID.Int64())
		require.Equal(t, int64(10), events[0].BountyID.Int64())
		require.Len(t, events[0].Panel, int(c.Settings.PanelSize))
		require.Equal(t, c.Now(t)+c.Settings.DisputeWindow, events[0].End.Int64())
	})
}

func TestSuspendedAuditorsAreNotSelected(t *testing.T) {
	e := contracttest.New(t, func(s *contracttest.Settings) { s.PanelSize = 2 })

	var (
		a1 = e.NewAuditor(t, stake)
		a2 = e.NewAuditor(t, stake)
		a3 = e.NewAuditor(t, stake)
		_  = e.NewAuditor(t, e.Settings.MinPanelStake-1)
		c  = e.CommitteeInvoker(e.Dispute)
	)

	e.CommitteeInvoker(e.Registry).Invoke(t, stackitem.Null{}, "suspend", a3.ScriptHash())

	for i := int64(1); i <= 5; i++ {
		txH := c.Invoke(t, i, "startDispute", i, e.CommitteeHash, 1)
		events, err := rpcdispute.DisputeStartedEventsFromApplicationLog(e.ApplicationLog(t, txH))
		require.NoError(t, err)
		require.ElementsMatch(t, []util.Uint160{a1.ScriptHash(), a2.ScriptHash()}, events[0].Panel)
	}

	e.CommitteeInvoker(e.Registry).Invoke(t, stackitem.Null{}, "suspend", a2.ScriptHash())
	c.InvokeFail(t, dispute.ErrNotEnoughAuditors, "startDispute", 6, e.CommitteeHash, 1)
}

func TestSubmitPanelVote(t *testing.T) {
	c := newContested(t)

	outsider := c.NewAuditor(t, stake)
	c.NewInvoker(c.Dispute, outsider).InvokeFail(t, dispute.ErrNotPanelMember, "submitPanelVote",
		c.disputeID, outsider.ScriptHash(), true, "")
	c.NewInvoker(c.Dispute, c.a1).InvokeFail(t, common.ErrOwnerWitnessFailed, "submitPanelVote",
		c.disputeID, c.a2.ScriptHash(), true, "")
	c.NewInvoker(c.Dispute, c.a1).InvokeFail(t, dispute.ErrDisputeNotFound, "submitPanelVote",
		c.disputeID+1, c.a1.ScriptHash(), true, "")

	require.False(t, c.CallBool(t, c.Dispute, "hasPanelVoted", c.disputeID, c.a3.ScriptHash()))
	c.CommitteeInvoker(c.Dispute).InvokeFail(t, dispute.ErrVoteNotFound, "getPanelVote", c.disputeID, c.a3.ScriptHash())

	txH := c.NewInvoker(c.Dispute, c.a3).Invoke(t, stackitem.Null{}, "submitPanelVote",
		c.disputeID, c.a3.ScriptHash(), true, "reports do not match")
	events, err := rpcdispute.PanelVoteSubmittedEventsFromApplicationLog(c.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, c.a3.ScriptHash(), events[0].Member)
	require.True(t, events[0].Overturn)

	require.True(t, c.CallBool(t, c.Dispute, "hasPanelVoted", c.disputeID, c.a3.ScriptHash()))
	v := new(rpcdispute.DisputePanelVote)
	require.NoError(t, v.FromStackItem(c.Call(t, c.Dispute, "getPanelVote", c.disputeID, c.a3.ScriptHash())))
	require.True(t, v.Overturn)
	require.Equal(t, "reports do not match", v.Notes)
	require.Equal(t, c.Now(t), v.Timestamp.Int64())

	c.NewInvoker(c.Dispute, c.a3).InvokeFail(t, dispute.ErrVoteAlreadySubmitted, "submitPanelVote",
		c.disputeID, c.a3.ScriptHash(), false, "")

	inv := c.CommitteeInvoker(c.Dispute)
	inv.InvokeFail(t, dispute.ErrDisputeDeadlineNotPassed, "finalizeDispute", c.disputeID)
	require.False(t, c.CallBool(t, c.Dispute, "isDisputeFinalizable", c.disputeID))

	c.Wait(t, c.Settings.DisputeWindow)
	require.True(t, c.CallBool(t, c.Dispute, "isDisputeFinalizable", c.disputeID))
	require.False(t, c.CallBool(t, c.Dispute, "isDisputeFinalizable", c.disputeID+1))
	c.NewInvoker(c.Dispute, c.a1).InvokeFail(t, dispute.ErrDisputeNotFinalizable, "submitPanelVote",
		c.disputeID, c.a1.ScriptHash(), false, "")
}

func TestFinalizeOverturn(t *testing.T) {
	c := newContested(t)

	c.vote(t, c.a1, false)
	c.vote(t, c.a2, true)
	c.vote(t, c.a3, true)
	c.Wait(t, c.Settings.DisputeWindow)

	inv := c.CommitteeInvoker(c.Dispute)
	txH := inv.Invoke(t, disputeconst.ResultOverturn, "finalizeDispute", c.disputeID)

	events, err := rpcdispute.DisputeFinalizedEventsFromApplicationLog(c.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Zero(t, events[0].Result.Cmp(rpcdispute.ResultOverturn))
	require.Equal(t, int64(2), events[0].OverturnVotes.Int64())
	require.Equal(t, int64(1), events[0].UpholdVotes.Int64())

	frozen, err := rpcescrow.MilestoneFrozenEventsFromApplicationLog(c.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, frozen, 1)

	d := c.getDispute(t)
	require.Zero(t, d.Status.Cmp(rpcdispute.StatusFinalized))
	require.Zero(t, d.Result.Cmp(rpcdispute.ResultOverturn))

	require.Equal(t, rpcbounty.StatusFailed.Int64(), c.bountyStatus(t))
	require.Equal(t, rpcescrow.StatusFrozen.Int64(), c.CallInt(t, c.Escrow, "getStatus", c.npo, 1))

	// The objecting auditor is rewarded, the approving one is penalized.
	require.Equal(t, int64(rewardPool), c.BalanceOf(t, c.a2.ScriptHash()))
	require.Equal(t, int64(1), c.CallInt(t, c.Registry, "reputationOf", c.a2.ScriptHash()))
	require.Zero(t, c.BalanceOf(t, c.a1.ScriptHash()))
	require.Equal(t, stake-c.Settings.SlashAmount, c.CallInt(t, c.Registry, "stakeOf", c.a1.ScriptHash()))
	require.Equal(t, c.Settings.SlashAmount, c.BalanceOf(t, c.Insurance))
	require.Zero(t, c.BalanceOf(t, c.npo))

	inv.InvokeFail(t, dispute.ErrDisputeAlreadyFinalized, "finalizeDispute", c.disputeID)
	c.NewInvoker(c.Dispute, c.a1).InvokeFail(t, dispute.ErrDisputeAlreadyFinalized, "submitPanelVote",
		c.disputeID, c.a1.ScriptHash(), true, "")
	require.False(t, c.CallBool(t, c.Dispute, "isDisputeFinalizable", c.disputeID))
}

func TestFinalizeUphold(t *testing.T) {
	c := newContested(t)

	c.vote(t, c.a1, false)
	c.vote(t, c.a3, false)
	c.Wait(t, c.Settings.DisputeWindow)

	txH := c.NewInvoker(c.Dispute, c.a3).Invoke(t, disputeconst.ResultUphold, "finalizeDispute", c.disputeID)
	released, err := rpcescrow.FundsReleasedEventsFromApplicationLog(c.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, released, 1)
	require.Equal(t, int64(escrowed), released[0].Amount.Int64())

	require.Equal(t, rpcbounty.StatusPassed.Int64(), c.bountyStatus(t))
	require.Equal(t, int64(escrowed), c.BalanceOf(t, c.npo))
	require.Equal(t, int64(rewardPool), c.BalanceOf(t, c.a1.ScriptHash()))
	require.Equal(t, stake-c.Settings.SlashAmount, c.CallInt(t, c.Registry, "stakeOf", c.a2.ScriptHash()))
	require.Equal(t, int64(stake), c.CallInt(t, c.Registry, "stakeOf", c.a3.ScriptHash()))

	d := c.getDispute(t)
	require.Zero(t, d.OverturnVotes.Sign())
	require.Equal(t, int64(2), d.UpholdVotes.Int64())
}

func TestFinalizeThreshold(t *testing.T) {
	t.Run("reached", func(t *testing.T) {
		c := newContested(t)
		c.vote(t, c.a1, false)
		c.vote(t, c.a2, true)
		c.Wait(t, c.Settings.DisputeWindow)
		c.CommitteeInvoker(c.Dispute).Invoke(t, disputeconst.ResultOverturn, "finalizeDispute", c.disputeID)
	})
	t.Run("not reached", func(t *testing.T) {
		c := newContested(t, func(s *contracttest.Settings) { s.Threshold = 51 })
		c.vote(t, c.a1, false)
		c.vote(t, c.a2, true)
		c.Wait(t, c.Settings.DisputeWindow)
		c.CommitteeInvoker(c.Dispute).Invoke(t, disputeconst.ResultUphold, "finalizeDispute", c.disputeID)
	})
	t.Run("no votes", func(t *testing.T) {
		c := newContested(t)
		c.Wait(t, c.Settings.DisputeWindow)
		c.CommitteeInvoker(c.Dispute).Invoke(t, disputeconst.ResultUphold, "finalizeDispute", c.disputeID)
		require.Equal(t, rpcbounty.StatusPassed.Int64(), c.bountyStatus(t))
	})
}

func TestRoles(t *testing.T) {
	e := contracttest.New(t)

	c := e.CommitteeInvoker(e.Dispute)
	c.Invoke(t, true, "hasRole", disputeconst.RoleBounty, e.Bounty)
	c.Invoke(t, false, "hasRole", disputeconst.RoleBounty, e.Escrow)
}
