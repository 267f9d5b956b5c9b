package insurance

// Roles of the Insurance Fund contract.
const (
	// RoleManager is required for direct payouts.
	RoleManager = "manager"
	// RoleGovernance is required for payouts above the direct limit.
	RoleGovernance = "governance"
)
