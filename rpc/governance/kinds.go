package governance

import (
	"math/big"

	"github.com/grantaudit/grantaudit-contract/contracts/governance/governanceconst"
)

// Proposal kinds in [GovernanceProposal].
var (
	KindRedirect      = big.NewInt(governanceconst.KindRedirect)
	KindRefundDonors  = big.NewInt(governanceconst.KindRefundDonors)
	KindAddAuditor    = big.NewInt(governanceconst.KindAddAuditor)
	KindRemoveAuditor = big.NewInt(governanceconst.KindRemoveAuditor)
	KindPayout        = big.NewInt(governanceconst.KindPayout)
)
