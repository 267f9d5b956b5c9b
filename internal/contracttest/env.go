/*
Package contracttest deploys the whole set of grant audit contracts to a
single-node test chain and provides helpers shared by contract tests.
*/
package contracttest

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Names of contract directories relative to the module root.
const (
	RegistryPath   = "contracts/registry"
	EscrowPath     = "contracts/escrow"
	InsurancePath  = "contracts/insurance"
	BountyPath     = "contracts/bounty"
	DisputePath    = "contracts/dispute"
	GovernancePath = "contracts/governance"

	tokenPath    = "internal/testcontracts/token"
	receiverPath = "internal/testcontracts/receiver"
)

// Role names granted on deployment.
const (
	roleSlash       = "slash"
	roleReputation  = "reputation"
	roleGovernance  = "governance"
	roleSettle      = "settle"
	roleGovern      = "govern"
	roleManager     = "manager"
	roleDispute     = "dispute"
	roleBounty      = "bounty"
	roleCoordinator = "coordinator"
)

// Settings are deployment parameters of the contracts. Time values are in
// milliseconds.
type Settings struct {
	InitialLock     int64
	LockExtension   int64
	MaxDirectPayout int64
	ConcernWindow   int64
	MaxAuditors     int64
	RequiredStake   int64
	SlashAmount     int64
	DisputeWindow   int64
	PanelSize       int64
	Threshold       int64
	MinPanelStake   int64
	VotingPeriod    int64
	Quorum          int64
	MinVoterBalance int64
}

// DefaultSettings returns settings used by most of the tests.
func DefaultSettings() Settings {
	return Settings{
		InitialLock:     100_000,
		LockExtension:   50_000,
		MaxDirectPayout: 500,
		ConcernWindow:   10_000,
		MaxAuditors:     5,
		RequiredStake:   100,
		SlashAmount:     50,
		DisputeWindow:   10_000,
		PanelSize:       3,
		Threshold:       50,
		MinPanelStake:   100,
		VotingPeriod:    10_000,
		Quorum:          2,
		MinVoterBalance: 1,
	}
}

// Env is a chain with all contracts deployed.
type Env struct {
	*neotest.Executor

	Settings Settings

	Token      util.Uint160
	Registry   util.Uint160
	Escrow     util.Uint160
	Insurance  util.Uint160
	Bounty     util.Uint160
	Dispute    util.Uint160
	Governance util.Uint160
}

// RootPath returns absolute path of the module root.
func RootPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// Compile compiles contract from the directory relative to the module root.
func Compile(t testing.TB, sender util.Uint160, dir string) *neotest.Contract {
	p := filepath.Join(RootPath(), dir)
	return neotest.CompileFile(t, sender, p, filepath.Join(p, "config.yml"))
}

// New creates a new chain and deploys token and all grant audit contracts
// with default settings modified by opts. Besides the contracts wired to
// each other, committee holds every role.
func New(t testing.TB, opts ...func(*Settings)) *Env {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	s := DefaultSettings()
	for _, o := range opts {
		o(&s)
	}

	var (
		token      = Compile(t, e.CommitteeHash, tokenPath)
		registry   = Compile(t, e.CommitteeHash, RegistryPath)
		escrow     = Compile(t, e.CommitteeHash, EscrowPath)
		insurance  = Compile(t, e.CommitteeHash, InsurancePath)
		bounty     = Compile(t, e.CommitteeHash, BountyPath)
		dispute    = Compile(t, e.CommitteeHash, DisputePath)
		governance = Compile(t, e.CommitteeHash, GovernancePath)
	)

	e.DeployContract(t, token, e.CommitteeHash)
	e.DeployContract(t, registry, []any{
		token.Hash, insurance.Hash, s.InitialLock, s.LockExtension,
		grants(roleSlash, bounty.Hash, roleReputation, bounty.Hash, roleGovernance, governance.Hash,
			roleSlash, e.CommitteeHash, roleReputation, e.CommitteeHash, roleGovernance, e.CommitteeHash),
	})
	e.DeployContract(t, escrow, []any{
		token.Hash,
		grants(roleSettle, bounty.Hash, roleSettle, dispute.Hash, roleSettle, e.CommitteeHash,
			roleGovern, governance.Hash, roleGovern, e.CommitteeHash),
	})
	e.DeployContract(t, insurance, []any{
		token.Hash, s.MaxDirectPayout,
		grants(roleManager, e.CommitteeHash, roleGovernance, governance.Hash, roleGovernance, e.CommitteeHash),
	})
	e.DeployContract(t, bounty, []any{
		token.Hash, registry.Hash, dispute.Hash, escrow.Hash, insurance.Hash,
		s.ConcernWindow, s.MaxAuditors, s.RequiredStake, s.SlashAmount,
		grants(roleDispute, dispute.Hash, roleDispute, e.CommitteeHash, roleCoordinator, e.CommitteeHash),
	})
	e.DeployContract(t, dispute, []any{
		registry.Hash, escrow.Hash, bounty.Hash,
		s.DisputeWindow, s.PanelSize, s.Threshold, s.MinPanelStake,
		grants(roleBounty, bounty.Hash, roleBounty, e.CommitteeHash),
	})
	e.DeployContract(t, governance, []any{
		token.Hash, escrow.Hash, insurance.Hash, registry.Hash,
		s.VotingPeriod, s.Quorum, s.MinVoterBalance,
	})

	return &Env{
		Executor:   e,
		Settings:   s,
		Token:      token.Hash,
		Registry:   registry.Hash,
		Escrow:     escrow.Hash,
		Insurance:  insurance.Hash,
		Bounty:     bounty.Hash,
		Dispute:    dispute.Hash,
		Governance: governance.Hash,
	}
}

func grants(pairs ...any) []any {
	res := make([]any, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, []any{pairs[i], pairs[i+1]})
	}
	return res
}

// DeployReceiver deploys a contract accepting any NEP-17 payment.
func (e *Env) DeployReceiver(t testing.TB) util.Uint160 {
	c := Compile(t, e.CommitteeHash, receiverPath)
	e.DeployContract(t, c, nil)
	return c.Hash
}

// Mint issues tokens to the account.
func (e *Env) Mint(t testing.TB, to util.Uint160, amount int64) {
	e.CommitteeInvoker(e.Token).Invoke(t, stackitem.Null{}, "mint", to, amount)
}

// BalanceOf returns token balance of the account.
func (e *Env) BalanceOf(t testing.TB, acc util.Uint160) int64 {
	s, err := e.CommitteeInvoker(e.Token).TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

// NewAccountWithTokens creates an account with some GAS for fees and the
// given amount of tokens.
func (e *Env) NewAccountWithTokens(t testing.TB, amount int64) neotest.Signer {
	acc := e.NewAccount(t)
	if amount > 0 {
		e.Mint(t, acc.ScriptHash(), amount)
	}
	return acc
}

// Wait adds an empty block dated ms milliseconds after the current top
// block. Transactions sent afterwards are executed 1 ms later.
func (e *Env) Wait(t testing.TB, ms int64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = e.TopBlock(t).Timestamp + uint64(ms)
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

// Now returns the timestamp of the top block.
func (e *Env) Now(t testing.TB) int64 {
	return int64(e.TopBlock(t).Timestamp)
}

// Call invokes method of the contract without persisting the transaction and
// returns its result.
func (e *Env) Call(t testing.TB, contract util.Uint160, method string, args ...any) stackitem.Item {
	s, err := e.CommitteeInvoker(contract).TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().Item()
}

// CallInt is like Call, but converts the result to int64.
func (e *Env) CallInt(t testing.TB, contract util.Uint160, method string, args ...any) int64 {
	n, err := e.Call(t, contract, method, args...).TryInteger()
	require.NoError(t, err)
	return n.Int64()
}

// CallBool is like Call, but converts the result to bool.
func (e *Env) CallBool(t testing.TB, contract util.Uint160, method string, args ...any) bool {
	b, err := e.Call(t, contract, method, args...).TryBool()
	require.NoError(t, err)
	return b
}

// EventNames returns names of notifications emitted by the transaction.
func (e *Env) EventNames(t testing.TB, h util.Uint256) []string {
	aer := e.CheckHalt(t, h)
	names := make([]string, 0, len(aer.Events))
	for i := range aer.Events {
		names = append(names, aer.Events[i].Name)
	}
	return names
}

// ApplicationLog returns the log of the persisted transaction to be parsed
// with event decoders of RPC bindings.
func (e *Env) ApplicationLog(t testing.TB, h util.Uint256) *result.ApplicationLog {
	aer := e.CheckHalt(t, h)
	return &result.ApplicationLog{
		Container:  h,
		Executions: []state.Execution{aer.Execution},
	}
}

// Hashes converts array of script hashes returned by a contract.
func Hashes(t testing.TB, item stackitem.Item) []util.Uint160 {
	arr, ok := item.Value().([]stackitem.Item)
	require.True(t, ok, "not an array")

	res := make([]util.Uint160, 0, len(arr))
	for i := range arr {
		b, err := arr[i].TryBytes()
		require.NoError(t, err)
		u, err := util.Uint160DecodeBytesBE(b)
		require.NoError(t, err)
		res = append(res, u)
	}
	return res
}
