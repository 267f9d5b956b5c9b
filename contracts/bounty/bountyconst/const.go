/*
Package bountyconst contains Audit Bounty Manager contract constants.
*/
package bountyconst

// Bounty statuses.
const (
	StatusActive = iota
	StatusDisputed
	StatusPassed
	StatusFailed
)

// Auditor votes.
const (
	VoteNone = iota
	VotePass
	VoteFail
)

// Roles of the Audit Bounty Manager.
const (
	// RoleDispute allows to settle disputed bounties.
	RoleDispute = "dispute"
	// RoleCoordinator allows to open bounties on behalf of any NPO.
	RoleCoordinator = "coordinator"
)
