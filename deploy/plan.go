package deploy

import (
	"errors"
	"fmt"
	"time"

	"github.com/grantaudit/grantaudit-contract/contracts"
	"github.com/grantaudit/grantaudit-contract/rpc/bounty"
	"github.com/grantaudit/grantaudit-contract/rpc/dispute"
	"github.com/grantaudit/grantaudit-contract/rpc/escrow"
	"github.com/grantaudit/grantaudit-contract/rpc/insurance"
	"github.com/grantaudit/grantaudit-contract/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// step is a single contract deployment.
type step struct {
	contract contracts.Contract
	hash     util.Uint160
	data     []any
}

type grant struct {
	role    string
	account util.Uint160
}

// newPlan calculates contract addresses for the given sender and composes
// deployment steps in contracts.Dirs order. Zero operator gets no roles.
func newPlan(sender, token, operator util.Uint160, cs []contracts.Contract, s Settings) (Addresses, []step, error) {
	var addrs = Addresses{Token: token}

	if token.Equals(util.Uint160{}) {
		return addrs, nil, errors.New("missing token address")
	}

	byDir := make(map[string]contracts.Contract, len(cs))
	for i := range cs {
		byDir[cs[i].Dir] = cs[i]
	}

	dirs := contracts.Dirs()
	steps := make([]step, len(dirs))

	for i, dir := range dirs {
		c, ok := byDir[dir]
		if !ok {
			return addrs, nil, fmt.Errorf("missing %s contract", dir)
		}
		steps[i] = step{
			contract: c,
			hash:     state.CreateContractHash(sender, c.NEF.Checksum, c.Manifest.Name),
		}
	}

	addrs.Registry = steps[0].hash
	addrs.Escrow = steps[1].hash
	addrs.Insurance = steps[2].hash
	addrs.Bounty = steps[3].hash
	addrs.Dispute = steps[4].hash
	addrs.Governance = steps[5].hash

	withOperator := func(gs []grant, roles ...string) []any {
		if !operator.Equals(util.Uint160{}) {
			for _, r := range roles {
				gs = append(gs, grant{r, operator})
			}
		}
		res := make([]any, 0, len(gs))
		for i := range gs {
			res = append(res, []any{gs[i].role, gs[i].account})
		}
		return res
	}

	steps[0].data = []any{
		token, addrs.Insurance, ms(s.InitialLock), ms(s.LockExtension),
		withOperator([]grant{
			{registry.RoleSlash, addrs.Bounty},
			{registry.RoleReputation, addrs.Bounty},
			{registry.RoleGovernance, addrs.Governance},
		}, registry.RoleSlash, registry.RoleReputation, registry.RoleGovernance),
	}
	steps[1].data = []any{
		token,
		withOperator([]grant{
			{escrow.RoleSettle, addrs.Bounty},
			{escrow.RoleSettle, addrs.Dispute},
			{escrow.RoleGovern, addrs.Governance},
		}, escrow.RoleSettle, escrow.RoleGovern),
	}
	steps[2].data = []any{
		token, s.MaxDirectPayout,
		withOperator([]grant{
			{insurance.RoleGovernance, addrs.Governance},
		}, insurance.RoleManager, insurance.RoleGovernance),
	}
	steps[3].data = []any{
		token, addrs.Registry, addrs.Dispute, addrs.Escrow, addrs.Insurance,
		ms(s.ConcernWindow), s.MaxAuditors, s.RequiredStake, s.SlashAmount,
		withOperator([]grant{
			{bounty.RoleDispute, addrs.Dispute},
		}, bounty.RoleDispute, bounty.RoleCoordinator),
	}
	steps[4].data = []any{
		addrs.Registry, addrs.Escrow, addrs.Bounty,
		ms(s.DisputeWindow), s.PanelSize, s.Threshold, s.MinPanelStake,
		withOperator([]grant{
			{dispute.RoleBounty, addrs.Bounty},
		}, dispute.RoleBounty),
	}
	steps[5].data = []any{
		token, addrs.Escrow, addrs.Insurance, addrs.Registry,
		ms(s.VotingPeriod), s.Quorum, s.MinVoterBalance,
	}

	return addrs, steps, nil
}

func ms(d time.Duration) int64 {
	return d.Milliseconds()
}
