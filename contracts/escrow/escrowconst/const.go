/*
Package escrowconst contains Escrow Manager contract constants.
*/
package escrowconst

// Milestone escrow statuses returned by getStatus.
const (
	// StatusNotFound is returned for (npo, milestone) pairs without deposits.
	StatusNotFound = -1
	StatusActive   = 0
	StatusFrozen   = 1
	StatusReleased = 2
)

// Roles of the Escrow Manager contract.
const (
	// RoleSettle allows to release and freeze milestones.
	RoleSettle = "settle"
	// RoleGovern allows to redirect and refund frozen milestones.
	RoleGovern = "govern"
)
