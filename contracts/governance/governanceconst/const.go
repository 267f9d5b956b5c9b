/*
Package governanceconst contains Governance Manager contract constants.
*/
package governanceconst

// Proposal kinds.
const (
	KindRedirect = iota
	KindRefundDonors
	KindAddAuditor
	KindRemoveAuditor
	KindPayout
)
