package insurance_test

import (
	"testing"

	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/insurance"
	"github.com/grantaudit/grantaudit-contract/internal/contracttest"
	rpcinsurance "github.com/grantaudit/grantaudit-contract/rpc/insurance"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestReceiveFunds(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	inv := e.NewInvoker(e.Insurance, acc)

	inv.InvokeFail(t, common.ErrZeroAmount, "receiveFunds", acc.ScriptHash(), 0)
	inv.InvokeFail(t, common.ErrOwnerWitnessFailed, "receiveFunds", e.CommitteeHash, 10)
	inv.InvokeFail(t, common.ErrTokenTransferFailed, "receiveFunds", acc.ScriptHash(), 2000)

	txH := inv.Invoke(t, stackitem.Null{}, "receiveFunds", acc.ScriptHash(), 300)
	events, err := rpcinsurance.FundsReceivedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, acc.ScriptHash(), events[0].From)
	require.Equal(t, int64(300), events[0].Amount.Int64())

	require.Equal(t, int64(300), e.CallInt(t, e.Insurance, "getBalance"))

	t.Run("direct transfer", func(t *testing.T) {
		txH := e.NewInvoker(e.Token, acc).Invoke(t, true, "transfer",
			acc.ScriptHash(), e.Insurance, 200, "slashed")
		require.Equal(t, []string{"Transfer", "FundsReceived"}, e.EventNames(t, txH))
		require.Equal(t, int64(500), e.CallInt(t, e.Insurance, "getBalance"))
	})
}

func TestPayout(t *testing.T) {
	e := contracttest.New(t)

	var (
		to  = e.NewAccount(t).ScriptHash()
		acc = e.NewAccount(t)
		c   = e.CommitteeInvoker(e.Insurance)
	)

	require.Equal(t, e.Settings.MaxDirectPayout, e.CallInt(t, e.Insurance, "maxDirectPayout"))

	c.InvokeFail(t, insurance.ErrInsufficientBalance, "payout", to, 100, "relief")
	e.Mint(t, e.Insurance, 1000)

	e.NewInvoker(e.Insurance, acc).InvokeFail(t, common.ErrUnauthorized, "payout", to, 100, "relief")
	c.InvokeFail(t, common.ErrZeroAmount, "payout", to, 0, "relief")
	c.InvokeFail(t, insurance.ErrExceedsDirectPayoutLimit, "payout", to, e.Settings.MaxDirectPayout+1, "relief")

	txH := c.Invoke(t, stackitem.Null{}, "payout", to, e.Settings.MaxDirectPayout, "relief")
	events, err := rpcinsurance.PayoutMadeEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, to, events[0].To)
	require.Equal(t, e.Settings.MaxDirectPayout, events[0].Amount.Int64())
	require.Equal(t, "relief", events[0].Reason)

	require.Equal(t, e.Settings.MaxDirectPayout, e.BalanceOf(t, to))
	require.Equal(t, 1000-e.Settings.MaxDirectPayout, e.CallInt(t, e.Insurance, "getBalance"))

	t.Run("change limit", func(t *testing.T) {
		limit := e.Settings.MaxDirectPayout / 5

		e.NewInvoker(e.Insurance, acc).InvokeFail(t, common.ErrUnauthorized, "setMaxDirectPayout", limit)
		c.InvokeFail(t, insurance.ErrInvalidPayoutLimit, "setMaxDirectPayout", -1)

		txH := c.Invoke(t, stackitem.Null{}, "setMaxDirectPayout", limit)
		events, err := rpcinsurance.MaxDirectPayoutChangedEventsFromApplicationLog(e.ApplicationLog(t, txH))
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, e.Settings.MaxDirectPayout, events[0].Previous.Int64())
		require.Equal(t, limit, events[0].Limit.Int64())
		require.Equal(t, limit, e.CallInt(t, e.Insurance, "maxDirectPayout"))

		c.InvokeFail(t, insurance.ErrExceedsDirectPayoutLimit, "payout", to, limit+1, "relief")
		c.Invoke(t, stackitem.Null{}, "payout", to, limit, "relief")

		// Zero limit disables direct payouts.
		c.Invoke(t, stackitem.Null{}, "setMaxDirectPayout", 0)
		c.InvokeFail(t, insurance.ErrExceedsDirectPayoutLimit, "payout", to, 1, "relief")
	})
}

func TestGovernancePayout(t *testing.T) {
	e := contracttest.New(t)

	var (
		to      = e.NewAccount(t).ScriptHash()
		manager = e.NewAccount(t)
		c       = e.CommitteeInvoker(e.Insurance)
	)

	e.Mint(t, e.Insurance, 1000)
	c.Invoke(t, stackitem.Null{}, "addManager", manager.ScriptHash())

	e.NewInvoker(e.Insurance, manager).InvokeFail(t, common.ErrUnauthorized, "governancePayout", to, 600, "vote")
	c.InvokeFail(t, insurance.ErrInsufficientBalance, "governancePayout", to, 1001, "vote")

	c.Invoke(t, stackitem.Null{}, "governancePayout", to, 600, "vote")
	require.Equal(t, int64(600), e.BalanceOf(t, to))
	require.Equal(t, int64(400), e.CallInt(t, e.Insurance, "getBalance"))
}

func TestManagers(t *testing.T) {
	e := contracttest.New(t)

	var (
		acc = e.NewAccount(t)
		c   = e.CommitteeInvoker(e.Insurance)
	)

	require.True(t, e.CallBool(t, e.Insurance, "isManager", e.CommitteeHash))
	require.False(t, e.CallBool(t, e.Insurance, "isManager", acc.ScriptHash()))

	e.NewInvoker(e.Insurance, acc).InvokeFail(t, common.ErrUnauthorized, "addManager", acc.ScriptHash())

	txH := c.Invoke(t, stackitem.Null{}, "addManager", acc.ScriptHash())
	require.Equal(t, []string{"RoleGranted", "ManagerAdded"}, e.EventNames(t, txH))
	require.True(t, e.CallBool(t, e.Insurance, "isManager", acc.ScriptHash()))

	txH = c.Invoke(t, stackitem.Null{}, "addManager", acc.ScriptHash())
	require.Empty(t, e.EventNames(t, txH))

	// A new manager can administer the set on its own.
	other := e.NewAccount(t).ScriptHash()
	e.NewInvoker(e.Insurance, acc).Invoke(t, stackitem.Null{}, "addManager", other)

	txH = c.Invoke(t, stackitem.Null{}, "removeManager", acc.ScriptHash())
	events, err := rpcinsurance.ManagerRemovedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, acc.ScriptHash(), events[0].Account)
	require.False(t, e.CallBool(t, e.Insurance, "isManager", acc.ScriptHash()))

	txH = c.Invoke(t, stackitem.Null{}, "removeManager", acc.ScriptHash())
	require.Empty(t, e.EventNames(t, txH))

	e.NewInvoker(e.Insurance, acc).InvokeFail(t, common.ErrUnauthorized, "payout", other, 1, "")
}

func TestRoles(t *testing.T) {
	e := contracttest.New(t)

	c := e.CommitteeInvoker(e.Insurance)
	c.Invoke(t, true, "hasRole", insurance.RoleGovernance, e.Governance)
	c.Invoke(t, false, "hasRole", insurance.RoleManager, e.Governance)

	rg := e.NewAccount(t).ScriptHash()
	c.Invoke(t, stackitem.Null{}, "grantRole", insurance.RoleGovernance, rg)
	c.Invoke(t, true, "hasRole", insurance.RoleGovernance, rg)
	c.Invoke(t, stackitem.Null{}, "revokeRole", insurance.RoleGovernance, rg)
	c.Invoke(t, false, "hasRole", insurance.RoleGovernance, rg)
}
