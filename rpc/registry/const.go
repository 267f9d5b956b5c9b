package registry

// Roles of the Auditor Registry contract.
const (
	// RoleSlash is required to slash auditor stakes.
	RoleSlash = "slash"
	// RoleReputation is required to update auditor reputation.
	RoleReputation = "reputation"
	// RoleGovernance is required to suspend and reinstate auditors.
	RoleGovernance = "governance"
)

// MaxReputation is the upper bound of auditor reputation.
const MaxReputation = 100
