package bounty

import (
	"math/big"

	"github.com/grantaudit/grantaudit-contract/contracts/bounty/bountyconst"
)

// Possible bounty statuses in [BountyBounty].
var (
	StatusActive   = big.NewInt(bountyconst.StatusActive)
	StatusDisputed = big.NewInt(bountyconst.StatusDisputed)
	StatusPassed   = big.NewInt(bountyconst.StatusPassed)
	StatusFailed   = big.NewInt(bountyconst.StatusFailed)
)

// Auditor votes accepted by SubmitVote. VoteNone is also returned by
// GetVote for auditors who did not vote.
var (
	VoteNone = big.NewInt(bountyconst.VoteNone)
	VotePass = big.NewInt(bountyconst.VotePass)
	VoteFail = big.NewInt(bountyconst.VoteFail)
)

// Roles of the contract.
const (
	// RoleDispute is a role required to settle disputed bounties.
	RoleDispute = bountyconst.RoleDispute
	// RoleCoordinator is a role allowing to open bounties for any NPO.
	RoleCoordinator = bountyconst.RoleCoordinator
)
