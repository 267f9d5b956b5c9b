/*
Package dispute implements Dispute Manager contract.

Dispute Manager decides contested bounties. When Audit Bounty Manager
escalates a bounty, a panel of auditors is drawn from the active auditors of
the registry using the random number supplied by the chain. Panel members
vote to overturn or uphold the milestone until the dispute end. After the end
anyone can finalize the dispute: the milestone is overturned if
overturn*100/total reaches the configured threshold. The result is reported
back to the bounty and applied to the escrow (overturned milestones are
frozen, upheld ones are released).

# Contract notifications

DisputeStarted notification. Panel is an array of auditor script hashes.

	DisputeStarted:
	  - name: disputeID
	    type: Integer
	  - name: bountyID
	    type: Integer
	  - name: panel
	    type: Array
	  - name: end
	    type: Integer

PanelVoteSubmitted notification.

	PanelVoteSubmitted:
	  - name: disputeID
	    type: Integer
	  - name: member
	    type: Hash160
	  - name: overturn
	    type: Boolean

DisputeFinalized notification.

	DisputeFinalized:
	  - name: disputeID
	    type: Integer
	  - name: result
	    type: Integer
	  - name: overturnVotes
	    type: Integer
	  - name: upholdVotes
	    type: Integer
*/
package dispute
