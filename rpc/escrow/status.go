package escrow

import (
	"math/big"

	"github.com/grantaudit/grantaudit-contract/contracts/escrow/escrowconst"
)

// Possible milestone escrow statuses in [EscrowMilestoneEscrow] and
// GetStatus results.
var (
	// StatusNotFound is returned for milestones without deposits.
	StatusNotFound = big.NewInt(escrowconst.StatusNotFound)

	// StatusActive is used by milestones accepting deposits.
	StatusActive = big.NewInt(escrowconst.StatusActive)

	// StatusFrozen is used by milestones waiting for governance decision.
	StatusFrozen = big.NewInt(escrowconst.StatusFrozen)

	// StatusReleased is used by milestones paid to the NPO.
	StatusReleased = big.NewInt(escrowconst.StatusReleased)
)

const (
	// RoleSettle is a role required to release and freeze milestones.
	RoleSettle = escrowconst.RoleSettle
	// RoleGovern is a role required to redirect and refund frozen milestones.
	RoleGovern = escrowconst.RoleGovern
)
