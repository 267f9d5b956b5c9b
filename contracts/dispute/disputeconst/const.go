/*
Package disputeconst contains Dispute Manager contract constants.
*/
package disputeconst

// Dispute statuses.
const (
	StatusActive = iota
	StatusFinalized
)

// Dispute results.
const (
	ResultNone = iota
	ResultOverturn
	ResultUphold
)

// RoleBounty allows to start disputes.
const RoleBounty = "bounty"

// NoDispute is returned by getBountyDispute for bounties without a dispute.
const NoDispute = -1
