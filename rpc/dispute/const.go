package dispute

import (
	"math/big"

	"github.com/grantaudit/grantaudit-contract/contracts/dispute/disputeconst"
)

// Possible dispute statuses in [DisputeDispute].
var (
	StatusActive    = big.NewInt(disputeconst.StatusActive)
	StatusFinalized = big.NewInt(disputeconst.StatusFinalized)
)

// Possible dispute results in [DisputeDispute].
var (
	// ResultNone is used by disputes that are not finalized yet.
	ResultNone = big.NewInt(disputeconst.ResultNone)

	// ResultOverturn means the panel rejected the bounty outcome.
	ResultOverturn = big.NewInt(disputeconst.ResultOverturn)

	// ResultUphold means the panel confirmed the bounty outcome.
	ResultUphold = big.NewInt(disputeconst.ResultUphold)
)

// NoDispute is returned by GetBountyDispute for bounties that were never
// disputed.
var NoDispute = big.NewInt(disputeconst.NoDispute)

// RoleBounty is a role required to start disputes.
const RoleBounty = disputeconst.RoleBounty
