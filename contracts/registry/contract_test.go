package registry_test

import (
	"testing"

	"github.com/grantaudit/grantaudit-contract/common"
	"github.com/grantaudit/grantaudit-contract/contracts/registry"
	"github.com/grantaudit/grantaudit-contract/internal/contracttest"
	rpcregistry "github.com/grantaudit/grantaudit-contract/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func getAuditor(t *testing.T, e *contracttest.Env, h util.Uint160) *rpcregistry.RegistryAuditor {
	a := new(rpcregistry.RegistryAuditor)
	require.NoError(t, a.FromStackItem(e.Call(t, e.Registry, "getAuditor", h)))
	return a
}

func TestRegister(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	inv := e.NewInvoker(e.Registry, acc)
	h := acc.ScriptHash()

	t.Run("invalid amount", func(t *testing.T) {
		inv.InvokeFail(t, common.ErrZeroAmount, "register", h, 0)
		inv.InvokeFail(t, common.ErrNegativeAmount, "register", h, -1)
	})
	t.Run("missing witness", func(t *testing.T) {
		other := e.NewAccount(t)
		inv.InvokeFail(t, common.ErrOwnerWitnessFailed, "register", other.ScriptHash(), 10)
	})
	t.Run("not enough tokens", func(t *testing.T) {
		inv.InvokeFail(t, common.ErrTokenTransferFailed, "register", h, 1001)
	})

	require.False(t, e.CallBool(t, e.Registry, "isRegistered", h))
	e.CommitteeInvoker(e.Registry).InvokeFail(t, registry.ErrAuditorNotRegistered, "getAuditor", h)

	txH := inv.Invoke(t, stackitem.Null{}, "register", h, 300)
	lockUntil := e.Now(t) + e.Settings.InitialLock

	events, err := rpcregistry.AuditorRegisteredEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, h, events[0].Auditor)
	require.Equal(t, int64(300), events[0].Amount.Int64())
	require.Equal(t, int64(300), events[0].Stake.Int64())

	a := getAuditor(t, e, h)
	require.Equal(t, int64(300), a.Stake.Int64())
	require.Zero(t, a.Reputation.Sign())
	require.Equal(t, lockUntil, a.LockUntil.Int64())
	require.False(t, a.Suspended)

	require.True(t, e.CallBool(t, e.Registry, "isRegistered", h))
	require.True(t, e.CallBool(t, e.Registry, "isAuditor", h))
	require.Equal(t, int64(700), e.BalanceOf(t, h))
	require.Equal(t, int64(300), e.BalanceOf(t, e.Registry))

	t.Run("top up", func(t *testing.T) {
		inv.Invoke(t, stackitem.Null{}, "register", h, 200)
		require.Equal(t, int64(500), e.CallInt(t, e.Registry, "stakeOf", h))
		// Lock is renewed while the auditor has no reputation.
		require.Equal(t, e.Now(t)+e.Settings.InitialLock, getAuditor(t, e, h).LockUntil.Int64())
	})
}

func TestDirectTransferIsRejected(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	e.NewInvoker(e.Token, acc).InvokeFail(t, common.ErrDirectTransfer,
		"transfer", acc.ScriptHash(), e.Registry, 10, nil)
}

func TestUnstake(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	inv := e.NewInvoker(e.Registry, acc)
	h := acc.ScriptHash()

	inv.InvokeFail(t, registry.ErrAuditorNotRegistered, "unstake", h, 10)
	inv.Invoke(t, stackitem.Null{}, "register", h, 300)

	inv.InvokeFail(t, registry.ErrStakeLocked, "unstake", h, 10)
	e.Wait(t, e.Settings.InitialLock)

	e.NewInvoker(e.Registry, e.NewAccount(t)).InvokeFail(t, common.ErrOwnerWitnessFailed, "unstake", h, 10)
	inv.InvokeFail(t, registry.ErrInsufficientStake, "unstake", h, 301)

	txH := inv.Invoke(t, stackitem.Null{}, "unstake", h, 100)
	require.Equal(t, []string{"Transfer", "StakeWithdrawn"}, e.EventNames(t, txH))
	require.Equal(t, int64(200), e.CallInt(t, e.Registry, "stakeOf", h))
	require.Equal(t, int64(800), e.BalanceOf(t, h))

	inv.Invoke(t, stackitem.Null{}, "unstake", h, 200)
	require.Zero(t, e.CallInt(t, e.Registry, "stakeOf", h))
	require.True(t, e.CallBool(t, e.Registry, "isRegistered", h))
	require.False(t, e.CallBool(t, e.Registry, "isAuditor", h))
}

func TestSlash(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	h := acc.ScriptHash()
	e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "register", h, 300)

	t.Run("unauthorized", func(t *testing.T) {
		e.NewInvoker(e.Registry, acc).InvokeFail(t, common.ErrUnauthorized, "slash", h, 10)
	})

	c := e.CommitteeInvoker(e.Registry)
	c.InvokeFail(t, registry.ErrInsufficientStake, "slash", h, 301)
	c.InvokeFail(t, registry.ErrAuditorNotRegistered, "slash", e.CommitteeHash, 1)

	txH := c.Invoke(t, stackitem.Null{}, "slash", h, 120)
	events, err := rpcregistry.AuditorSlashedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(120), events[0].Amount.Int64())
	require.Equal(t, int64(180), events[0].Stake.Int64())

	require.Equal(t, int64(180), e.CallInt(t, e.Registry, "stakeOf", h))
	require.Equal(t, int64(120), e.BalanceOf(t, e.Insurance))
	require.Equal(t, int64(180), e.BalanceOf(t, e.Registry))
}

func TestUpdateReputation(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	h := acc.ScriptHash()
	e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "register", h, 300)
	lockUntil := getAuditor(t, e, h).LockUntil.Int64()

	c := e.CommitteeInvoker(e.Registry)
	e.NewInvoker(e.Registry, acc).InvokeFail(t, common.ErrUnauthorized, "updateReputation", h, true)

	c.Invoke(t, stackitem.Null{}, "updateReputation", h, true)
	txH := c.Invoke(t, stackitem.Null{}, "updateReputation", h, true)
	events, err := rpcregistry.ReputationUpdatedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(2), events[0].Reputation.Int64())
	require.True(t, events[0].Success)

	a := getAuditor(t, e, h)
	require.Equal(t, int64(2), a.Reputation.Int64())
	require.Equal(t, lockUntil+2*e.Settings.LockExtension, a.LockUntil.Int64())

	t.Run("lock is kept for reputable auditors", func(t *testing.T) {
		e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "register", h, 100)
		require.Equal(t, a.LockUntil, getAuditor(t, e, h).LockUntil)
	})

	c.Invoke(t, stackitem.Null{}, "updateReputation", h, false)
	a = getAuditor(t, e, h)
	require.Zero(t, a.Reputation.Sign())
	require.Equal(t, lockUntil+2*e.Settings.LockExtension, a.LockUntil.Int64())

	c.Invoke(t, stackitem.Null{}, "updateReputation", h, false)
	require.Zero(t, e.CallInt(t, e.Registry, "reputationOf", h))

	c.InvokeFail(t, registry.ErrAuditorNotRegistered, "updateReputation", e.CommitteeHash, true)
}

func TestSuspend(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccountWithTokens(t, 1000)
	h := acc.ScriptHash()
	e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "register", h, 300)

	c := e.CommitteeInvoker(e.Registry)
	e.NewInvoker(e.Registry, acc).InvokeFail(t, common.ErrUnauthorized, "suspend", h)

	txH := c.Invoke(t, stackitem.Null{}, "suspend", h)
	require.Equal(t, []string{"AuditorSuspended"}, e.EventNames(t, txH))
	require.False(t, e.CallBool(t, e.Registry, "isAuditor", h))
	require.True(t, getAuditor(t, e, h).Suspended)
	require.Empty(t, contracttest.Hashes(t, e.Call(t, e.Registry, "eligibleAuditors", 1)))

	txH = c.Invoke(t, stackitem.Null{}, "suspend", h)
	require.Empty(t, e.EventNames(t, txH))

	txH = c.Invoke(t, stackitem.Null{}, "reinstate", h)
	require.Equal(t, []string{"AuditorReinstated"}, e.EventNames(t, txH))
	require.True(t, e.CallBool(t, e.Registry, "isAuditor", h))

	txH = c.Invoke(t, stackitem.Null{}, "reinstate", h)
	require.Empty(t, e.EventNames(t, txH))
}

func TestEligibleAuditors(t *testing.T) {
	e := contracttest.New(t)

	var hs []util.Uint160
	for _, stake := range []int64{50, 100, 200} {
		acc := e.NewAccountWithTokens(t, 1000)
		e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "register", acc.ScriptHash(), stake)
		hs = append(hs, acc.ScriptHash())
	}

	require.ElementsMatch(t, hs, contracttest.Hashes(t, e.Call(t, e.Registry, "listAuditors")))
	require.ElementsMatch(t, hs, contracttest.Hashes(t, e.Call(t, e.Registry, "eligibleAuditors", 0)))
	require.ElementsMatch(t, hs[1:], contracttest.Hashes(t, e.Call(t, e.Registry, "eligibleAuditors", 100)))
	require.ElementsMatch(t, hs[2:], contracttest.Hashes(t, e.Call(t, e.Registry, "eligibleAuditors", 150)))

	e.CommitteeInvoker(e.Registry).Invoke(t, stackitem.Null{}, "suspend", hs[2])
	require.ElementsMatch(t, hs[1:2], contracttest.Hashes(t, e.Call(t, e.Registry, "eligibleAuditors", 100)))
}

func TestRoles(t *testing.T) {
	e := contracttest.New(t)

	acc := e.NewAccount(t)
	h := acc.ScriptHash()
	c := e.CommitteeInvoker(e.Registry)

	c.Invoke(t, true, "hasRole", registry.RoleSlash, e.Bounty)
	c.Invoke(t, false, "hasRole", registry.RoleSlash, h)

	e.NewInvoker(e.Registry, acc).InvokeFail(t, common.ErrUnauthorized, "grantRole", registry.RoleSlash, h)

	txH := c.Invoke(t, stackitem.Null{}, "grantRole", registry.RoleSlash, h)
	events, err := rpcregistry.RoleGrantedEventsFromApplicationLog(e.ApplicationLog(t, txH))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, registry.RoleSlash, events[0].Role)
	require.Equal(t, h, events[0].Account)
	c.Invoke(t, true, "hasRole", registry.RoleSlash, h)

	// New holder can manage the role on its own.
	e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "revokeRole", registry.RoleSlash, e.CommitteeHash)
	c.Invoke(t, false, "hasRole", registry.RoleSlash, e.CommitteeHash)

	txH = e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "revokeRole", registry.RoleSlash, e.CommitteeHash)
	require.Empty(t, e.EventNames(t, txH))
}

func TestUpdate(t *testing.T) {
	e := contracttest.New(t)

	e.CommitteeInvoker(e.Registry).Invoke(t, common.Version, "version")
	e.NewInvoker(e.Registry, e.NewAccount(t)).InvokeFail(t, common.ErrUpdateAccessDenied,
		"update", []byte{}, []byte{}, nil)
}
