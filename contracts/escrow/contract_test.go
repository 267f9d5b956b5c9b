package escrow_test

import (
	"math/big"
	"testing"

	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/escrow"
	"github.com/grantaudit/grantaudit-contract/contracts/escrow/escrowconst"
	"github.com/grantaudit/grantaudit-contract/internal/contracttest"
	rpcescrow "github.com/grantaudit/grantaudit-contract/rpc/escrow"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func getEscrow(t *testing.T, e *contracttest.Env, npo util.Uint160, milestone int64) *rpcescrow.EscrowMilestoneEscrow {
	res := new(rpcescrow.EscrowMilestoneEscrow)
	require.NoError(t, res.FromStackItem(e.Call(t, e.Escrow, "getEscrow", npo, milestone)))
	return res
}

// checkLedger ensures escrow amount equals the sum of donor contributions.
func checkLedger(t *testing.T, res *rpcescrow.EscrowMilestoneEscrow) {
	require.Equal(t, len(res.Donors), len(res.Contributions))
	sum := new(big.Int)
	for i := range res.Contributions {
		sum.Add(sum, res.Contributions[i])
	}
	require.Zero(t, sum.Cmp(res.Amount))
}

func deposit(t *testing.T, e *contracttest.Env, donor neotest.Signer, npo util.Uint160, milestone, amount int64) util.Uint256 {
	return e.NewInvoker(e.Escrow, donor).Invoke(t, stackitem.Null{}, "deposit",
		donor.ScriptHash(), npo, milestone, amount)
}

func TestDeposit(t *testing.T) {
	e := contracttest.New(t)

	var (
		npo    = e.NewAccount(t).ScriptHash()
		donorA = e.NewAccountWithTokens(t, 1000)
		donorB = e.NewAccountWithTokens(t, 1000)
		inv    = e.NewInvoker(e.Escrow, donorA)
	)

	require.Equal(t, int64(escrowconst.StatusNotFound), e.CallInt(t, e.Escrow, "getStatus", npo, 1))
	e.CommitteeInvoker(e.Escrow).InvokeFail(t, escrow.ErrMilestoneNotFound, "getEscrow", npo, 1)

	t.Run("invalid arguments", func(t *testing.T) {
		inv.InvokeFail(t, common.ErrZeroAmount, "deposit", donorA.ScriptHash(), npo, 1, 0)
		inv.InvokeFail(t, common.ErrNegativeAmount, "deposit", donorA.ScriptHash(), npo, 1, -5)
		inv.InvokeFail(t, escrow.ErrInvalidMilestone, "deposit", donorA.ScriptHash(), npo, -1, 5)
		inv.InvokeFail(t, common.ErrOwnerWitnessFailed, "deposit", donorB.ScriptHash(), npo, 1, 5)
		inv.InvokeFail(t, common.ErrTokenTransferFailed, "deposit", donorA.ScriptHash(), npo, 1, 1001)
	})

	txH := deposit(t, e, donorA, npo, 1, 100)
	events, err := rpcescrow.DepositMadeEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, npo, events[0].NPO)
	require.Equal(t, int64(1), events[0].Milestone.Int64())
	require.Equal(t, donorA.ScriptHash(), events[0].Donor)
	require.Equal(t, int64(100), events[0].Amount.Int64())
	require.Equal(t, int64(100), events[0].Total.Int64())

	deposit(t, e, donorB, npo, 1, 250)
	txH = deposit(t, e, donorA, npo, 1, 50)
	events, err = rpcescrow.DepositMadeEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Equal(t, int64(400), events[0].Total.Int64())

	res := getEscrow(t, e, npo, 1)
	require.Equal(t, npo, res.NPO)
	require.Equal(t, int64(400), res.Amount.Int64())
	require.Zero(t, res.Status.Cmp(rpcescrow.StatusActive))
	require.Equal(t, []util.Uint160{donorA.ScriptHash(), donorB.ScriptHash()}, res.Donors)
	checkLedger(t, res)

	require.Equal(t, int64(150), e.CallInt(t, e.Escrow, "donorAmount", npo, 1, donorA.ScriptHash()))
	require.Equal(t, int64(250), e.CallInt(t, e.Escrow, "donorAmount", npo, 1, donorB.ScriptHash()))
	require.Zero(t, e.CallInt(t, e.Escrow, "donorAmount", npo, 1, npo))
	require.Zero(t, e.CallInt(t, e.Escrow, "donorAmount", npo, 2, donorA.ScriptHash()))
	require.Equal(t, []util.Uint160{donorA.ScriptHash(), donorB.ScriptHash()},
		contracttest.Hashes(t, e.Call(t, e.Escrow, "getDonors", npo, 1)))
	require.Empty(t, contracttest.Hashes(t, e.Call(t, e.Escrow, "getDonors", npo, 2)))

	require.Equal(t, int64(400), e.BalanceOf(t, e.Escrow))
	require.Equal(t, int64(850), e.BalanceOf(t, donorA.ScriptHash()))

	t.Run("milestones are independent", func(t *testing.T) {
		deposit(t, e, donorA, npo, 0, 10)
		require.Equal(t, int64(10), getEscrow(t, e, npo, 0).Amount.Int64())
		require.Equal(t, int64(400), getEscrow(t, e, npo, 1).Amount.Int64())
	})
}

func TestRelease(t *testing.T) {
	e := contracttest.New(t)

	var (
		npo   = e.NewAccount(t).ScriptHash()
		donor = e.NewAccountWithTokens(t, 1000)
		c     = e.CommitteeInvoker(e.Escrow)
	)

	c.InvokeFail(t, escrow.ErrMilestoneNotFound, "release", npo, 1)
	deposit(t, e, donor, npo, 1, 300)

	e.NewInvoker(e.Escrow, donor).InvokeFail(t, common.ErrUnauthorized, "release", npo, 1)

	txH := c.Invoke(t, stackitem.Null{}, "release", npo, 1)
	events, err := rpcescrow.FundsReleasedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(300), events[0].Amount.Int64())

	require.Equal(t, int64(300), e.BalanceOf(t, npo))
	require.Zero(t, e.BalanceOf(t, e.Escrow))
	require.Equal(t, int64(escrowconst.StatusReleased), e.CallInt(t, e.Escrow, "getStatus", npo, 1))

	c.InvokeFail(t, escrow.ErrMilestoneAlreadyReleased, "release", npo, 1)
	c.InvokeFail(t, escrow.ErrMilestoneAlreadyReleased, "freezeMilestone", npo, 1)
	e.NewInvoker(e.Escrow, donor).InvokeFail(t, escrow.ErrMilestoneAlreadyReleased,
		"deposit", donor.ScriptHash(), npo, 1, 10)

	t.Run("refund and redirect released", func(t *testing.T) {
		c.InvokeFail(t, escrow.ErrMilestoneNotFrozen, "refundDonor", npo, 1, donor.ScriptHash())
		c.InvokeFail(t, escrow.ErrMilestoneNotFrozen, "redirectFunds", npo, 1, e.NewAccount(t).ScriptHash())

		require.Equal(t, int64(700), e.BalanceOf(t, donor.ScriptHash()))
		require.Equal(t, int64(300), e.BalanceOf(t, npo))
		res := getEscrow(t, e, npo, 1)
		require.Equal(t, []util.Uint160{donor.ScriptHash()}, res.Donors)
		require.Zero(t, res.Status.Cmp(rpcescrow.StatusReleased))
	})
}

func TestReleaseToContract(t *testing.T) {
	e := contracttest.New(t)

	npo := e.DeployReceiver(t)
	donor := e.NewAccountWithTokens(t, 1000)
	deposit(t, e, donor, npo, 3, 70)

	e.CommitteeInvoker(e.Escrow).Invoke(t, stackitem.Null{}, "release", npo, 3)
	require.Equal(t, int64(70), e.BalanceOf(t, npo))

	payment := e.Call(t, npo, "lastPayment").Value().([]stackitem.Item)
	require.Equal(t, stackitem.NewByteArray(e.Escrow.BytesBE()), payment[0])
	require.Equal(t, stackitem.Make(70), payment[1])
}

func TestFreezeRedirect(t *testing.T) {
	e := contracttest.New(t)

	var (
		npo    = e.NewAccount(t).ScriptHash()
		newNPO = e.NewAccount(t).ScriptHash()
		donorA = e.NewAccountWithTokens(t, 1000)
		donorB = e.NewAccountWithTokens(t, 1000)
		c      = e.CommitteeInvoker(e.Escrow)
	)

	deposit(t, e, donorA, npo, 1, 100)
	deposit(t, e, donorB, npo, 1, 200)

	c.InvokeFail(t, escrow.ErrMilestoneNotFrozen, "redirectFunds", npo, 1, newNPO)
	e.NewInvoker(e.Escrow, donorA).InvokeFail(t, common.ErrUnauthorized, "freezeMilestone", npo, 1)

	txH := c.Invoke(t, stackitem.Null{}, "freezeMilestone", npo, 1)
	frozen, err := rpcescrow.MilestoneFrozenEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, frozen, 1)
	require.Equal(t, int64(300), frozen[0].Amount.Int64())

	c.InvokeFail(t, escrow.ErrMilestoneAlreadyFrozen, "release", npo, 1)
	c.InvokeFail(t, escrow.ErrMilestoneAlreadyFrozen, "freezeMilestone", npo, 1)

	e.NewInvoker(e.Escrow, donorA).InvokeFail(t, common.ErrUnauthorized, "redirectFunds", npo, 1, newNPO)

	txH = c.Invoke(t, stackitem.Null{}, "redirectFunds", npo, 1, newNPO)
	redirected, err := rpcescrow.FundsRedirectedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, redirected, 1)
	require.Equal(t, npo, redirected[0].FromNPO)
	require.Equal(t, newNPO, redirected[0].ToNPO)
	require.Equal(t, int64(300), redirected[0].Amount.Int64())

	require.Equal(t, int64(300), e.BalanceOf(t, newNPO))
	require.Zero(t, e.BalanceOf(t, npo))

	res := getEscrow(t, e, npo, 1)
	require.Zero(t, res.Amount.Sign())
	require.Empty(t, res.Donors)
	require.Zero(t, res.Status.Cmp(rpcescrow.StatusReleased))
	checkLedger(t, res)

	c.InvokeFail(t, escrow.ErrMilestoneNotFrozen, "redirectFunds", npo, 1, newNPO)
}

func TestRefundDonor(t *testing.T) {
	e := contracttest.New(t)

	var (
		npo    = e.NewAccount(t).ScriptHash()
		donorA = e.NewAccountWithTokens(t, 1000)
		donorB = e.NewAccountWithTokens(t, 1000)
		c      = e.CommitteeInvoker(e.Escrow)
	)

	deposit(t, e, donorA, npo, 1, 100)
	deposit(t, e, donorB, npo, 1, 200)

	c.InvokeFail(t, escrow.ErrMilestoneNotFrozen, "refundDonor", npo, 1, donorA.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "freezeMilestone", npo, 1)
	c.InvokeFail(t, escrow.ErrDonorNotFound, "refundDonor", npo, 1, npo)

	txH := c.Invoke(t, stackitem.Null{}, "refundDonor", npo, 1, donorA.ScriptHash())
	events, err := rpcescrow.FundsRefundedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, donorA.ScriptHash(), events[0].Donor)
	require.Equal(t, int64(100), events[0].Amount.Int64())

	require.Equal(t, int64(1000), e.BalanceOf(t, donorA.ScriptHash()))
	res := getEscrow(t, e, npo, 1)
	require.Equal(t, int64(200), res.Amount.Int64())
	require.Equal(t, []util.Uint160{donorB.ScriptHash()}, res.Donors)
	require.Zero(t, res.Status.Cmp(rpcescrow.StatusFrozen))
	checkLedger(t, res)

	c.InvokeFail(t, escrow.ErrDonorNotFound, "refundDonor", npo, 1, donorA.ScriptHash())

	t.Run("deposit to frozen milestone", func(t *testing.T) {
		deposit(t, e, donorA, npo, 1, 30)
		res := getEscrow(t, e, npo, 1)
		require.Equal(t, int64(230), res.Amount.Int64())
		checkLedger(t, res)
	})
}

func TestIterateEscrows(t *testing.T) {
	e := contracttest.New(t)

	var (
		npoA  = e.NewAccount(t).ScriptHash()
		npoB  = e.NewAccount(t).ScriptHash()
		donor = e.NewAccountWithTokens(t, 1000)
	)

	deposit(t, e, donor, npoA, 1, 10)
	deposit(t, e, donor, npoA, 2, 20)
	deposit(t, e, donor, npoB, 1, 30)

	s, err := e.CommitteeInvoker(e.Escrow).TestInvoke(t, "iterateEscrows")
	require.NoError(t, err)

	var total int64
	iter := s.Pop().Value().(*storage.Iterator)
	for iter.Next() {
		res := new(rpcescrow.EscrowMilestoneEscrow)
		require.NoError(t, res.FromStackItem(iter.Value()))
		checkLedger(t, res)
		total += res.Amount.Int64()
	}
	require.Equal(t, int64(60), total)
}

func TestRoles(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccount(t)
	c := e.CommitteeInvoker(e.Escrow)

	c.Invoke(t, true, "isAuthorized", escrowconst.RoleSettle, e.Bounty)
	c.Invoke(t, true, "isAuthorized", escrowconst.RoleSettle, e.Dispute)
	c.Invoke(t, true, "isAuthorized", escrowconst.RoleGovern, e.Governance)
	c.Invoke(t, false, "isAuthorized", escrowconst.RoleGovern, e.Bounty)

	e.NewInvoker(e.Escrow, acc).InvokeFail(t, common.ErrUnauthorized, "grantRole", escrowconst.RoleGovern, acc.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "grantRole", escrowconst.RoleGovern, acc.ScriptHash())
	c.Invoke(t, true, "isAuthorized", escrowconst.RoleGovern, acc.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "revokeRole", escrowconst.RoleGovern, acc.ScriptHash())
	c.Invoke(t, false, "isAuthorized", escrowconst.RoleGovern, acc.ScriptHash())
}
