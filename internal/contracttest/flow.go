package contracttest

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Auditor votes accepted by submitVote.
const (
	VotePass = 1
	VoteFail = 2
)

// NewAuditor creates an account and registers it with the given stake.
func (e *Env) NewAuditor(t testing.TB, stake int64) neotest.Signer {
	acc := e.NewAccountWithTokens(t, stake)
	e.NewInvoker(e.Registry, acc).Invoke(t, stackitem.Null{}, "register", acc.ScriptHash(), stake)
	return acc
}

// Deposit puts donor tokens to the milestone escrow.
func (e *Env) Deposit(t testing.TB, donor neotest.Signer, npo util.Uint160, milestone, amount int64) {
	e.NewInvoker(e.Escrow, donor).Invoke(t, stackitem.Null{}, "deposit",
		donor.ScriptHash(), npo, milestone, amount)
}

// CreateBounty opens a bounty funded by the sponsor and returns its
// identifier. Committee co-signs the transaction as a coordinator.
func (e *Env) CreateBounty(t testing.TB, sponsor neotest.Signer, npo util.Uint160, milestone, pool int64) int64 {
	id := e.CallInt(t, e.Bounty, "bountyCount") + 1
	e.NewInvoker(e.Bounty, sponsor, e.Committee).Invoke(t, id, "createBounty",
		sponsor.ScriptHash(), npo, milestone, pool)
	return id
}

// OptIn adds auditors to the bounty.
func (e *Env) OptIn(t testing.TB, bountyID int64, auditors ...neotest.Signer) {
	for _, a := range auditors {
		e.NewInvoker(e.Bounty, a).Invoke(t, stackitem.Null{}, "optIn", bountyID, a.ScriptHash())
	}
}

// Vote submits auditor vote with an empty report.
func (e *Env) Vote(t testing.TB, bountyID int64, auditor neotest.Signer, vote int64, evidence ...string) util.Uint256 {
	return e.NewInvoker(e.Bounty, auditor).Invoke(t, stackitem.Null{}, "submitVote",
		bountyID, auditor.ScriptHash(), vote, "", Strings(evidence...))
}

// Strings converts string list to invocation argument.
func Strings(list ...string) []any {
	res := make([]any, 0, len(list))
	for i := range list {
		res = append(res, list[i])
	}
	return res
}
