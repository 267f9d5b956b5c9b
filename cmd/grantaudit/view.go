package main

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/grantaudit/grantaudit-contract/deploy"
	"github.com/grantaudit/grantaudit-contract/rpc/bounty"
	"github.com/grantaudit/grantaudit-contract/rpc/escrow"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

type voteView struct {
	Auditor  string   `yaml:"auditor"`
	Vote     string   `yaml:"vote"`
	Report   string   `yaml:"report,omitempty"`
	Evidence []string `yaml:"evidence,omitempty"`
}

type bountyView struct {
	ID              int64      `yaml:"id"`
	NPO             string     `yaml:"npo"`
	Milestone       int64      `yaml:"milestone"`
	Sponsor         string     `yaml:"sponsor"`
	RewardPool      string     `yaml:"reward_pool"`
	RequiredStake   string     `yaml:"required_stake"`
	ConcernDeadline string     `yaml:"concern_deadline"`
	Status          string     `yaml:"status"`
	ConcernsRaised  bool       `yaml:"concerns_raised"`
	Votes           []voteView `yaml:"votes"`
}

type donationView struct {
	Donor  string `yaml:"donor"`
	Amount string `yaml:"amount"`
}

type escrowView struct {
	NPO       string         `yaml:"npo"`
	Milestone int64          `yaml:"milestone"`
	Amount    string         `yaml:"amount"`
	Status    string         `yaml:"status"`
	Donations []donationView `yaml:"donations"`
}

type addressesView struct {
	Token      string `yaml:"token"`
	Registry   string `yaml:"registry"`
	Escrow     string `yaml:"escrow"`
	Insurance  string `yaml:"insurance"`
	Bounty     string `yaml:"bounty"`
	Dispute    string `yaml:"dispute"`
	Governance string `yaml:"governance"`
}

func bountyStatus(s *big.Int) string {
	switch {
	case s.Cmp(bounty.StatusActive) == 0:
		return "active"
	case s.Cmp(bounty.StatusDisputed) == 0:
		return "disputed"
	case s.Cmp(bounty.StatusPassed) == 0:
		return "passed"
	case s.Cmp(bounty.StatusFailed) == 0:
		return "failed"
	}
	return "unknown(" + s.String() + ")"
}

func voteName(v *big.Int) string {
	switch {
	case v.Cmp(bounty.VoteNone) == 0:
		return "none"
	case v.Cmp(bounty.VotePass) == 0:
		return "pass"
	case v.Cmp(bounty.VoteFail) == 0:
		return "fail"
	}
	return "unknown(" + v.String() + ")"
}

// parseVote is the inverse of voteName for votes auditors can submit.
func parseVote(s string) (*big.Int, error) {
	switch s {
	case "pass":
		return bounty.VotePass, nil
	case "fail":
		return bounty.VoteFail, nil
	}
	return nil, fmt.Errorf("invalid vote %q, expected pass or fail", s)
}

func escrowStatus(s *big.Int) string {
	switch {
	case s.Cmp(escrow.StatusNotFound) == 0:
		return "not found"
	case s.Cmp(escrow.StatusActive) == 0:
		return "active"
	case s.Cmp(escrow.StatusFrozen) == 0:
		return "frozen"
	case s.Cmp(escrow.StatusReleased) == 0:
		return "released"
	}
	return "unknown(" + s.String() + ")"
}

// votes are indexed like b.Auditors.
func newBountyView(b *bounty.BountyBounty, votes []*bounty.BountyVoteData) bountyView {
	res := bountyView{
		ID:              b.ID.Int64(),
		NPO:             address.Uint160ToString(b.NPO),
		Milestone:       b.Milestone.Int64(),
		Sponsor:         address.Uint160ToString(b.Sponsor),
		RewardPool:      b.RewardPool.String(),
		RequiredStake:   b.RequiredStake.String(),
		ConcernDeadline: time.UnixMilli(b.ConcernDeadline.Int64()).UTC().Format(time.RFC3339),
		Status:          bountyStatus(b.Status),
		ConcernsRaised:  b.ConcernsRaised,
		Votes:           make([]voteView, 0, len(b.Auditors)),
	}

	for i := range b.Auditors {
		res.Votes = append(res.Votes, voteView{
			Auditor:  address.Uint160ToString(b.Auditors[i]),
			Vote:     voteName(votes[i].Vote),
			Report:   votes[i].Report,
			Evidence: votes[i].Evidence,
		})
	}

	return res
}

func newEscrowView(e *escrow.EscrowMilestoneEscrow) escrowView {
	res := escrowView{
		NPO:       address.Uint160ToString(e.NPO),
		Milestone: e.Milestone.Int64(),
		Amount:    e.Amount.String(),
		Status:    escrowStatus(e.Status),
		Donations: make([]donationView, 0, len(e.Donors)),
	}

	for i := range e.Donors {
		d := donationView{Donor: address.Uint160ToString(e.Donors[i])}
		if i < len(e.Contributions) {
			d.Amount = e.Contributions[i].String()
		}
		res.Donations = append(res.Donations, d)
	}

	return res
}

func newAddressesView(a deploy.Addresses) addressesView {
	le := func(h util.Uint160) string { return "0x" + h.StringLE() }
	return addressesView{
		Token:      le(a.Token),
		Registry:   le(a.Registry),
		Escrow:     le(a.Escrow),
		Insurance:  le(a.Insurance),
		Bounty:     le(a.Bounty),
		Dispute:    le(a.Dispute),
		Governance: le(a.Governance),
	}
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return enc.Close()
}
