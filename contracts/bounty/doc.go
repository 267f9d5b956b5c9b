/*
Package bounty implements Audit Bounty Manager contract.

A bounty is opened for a single NPO milestone by the NPO or a coordinator and
funded with a reward pool. A milestone has at most one bounty.
Registered auditors with enough stake opt in and vote Pass or Fail before the
concern deadline. After the deadline anyone can finalize the bounty:

  - if at least one auditor voted Fail, the bounty becomes Disputed and
    Dispute Manager empanels auditors to decide it, the decision comes back
    via ResolveDispute;
  - otherwise the majority decides, ties pass the milestone.

On settlement the reward pool is split between the auditors who voted for the
outcome, the rest returns to the sponsor. Auditors on the losing side lose
reputation and part of their stake. A passed milestone is released from
escrow, a failed one is frozen.

# Contract notifications

BountyCreated notification.

	BountyCreated:
	  - name: bountyID
	    type: Integer
	  - name: npo
	    type: Hash160
	  - name: milestone
	    type: Integer
	  - name: rewardPool
	    type: Integer
	  - name: concernDeadline
	    type: Integer

AuditorOptedIn and ConcernRaised notifications carry bounty identifier and
auditor script hash.

VoteSubmitted notification.

	VoteSubmitted:
	  - name: bountyID
	    type: Integer
	  - name: auditor
	    type: Hash160
	  - name: vote
	    type: Integer

BountyDisputed notification. Produced when a contested bounty is escalated.

	BountyDisputed:
	  - name: bountyID
	    type: Integer
	  - name: disputeID
	    type: Integer

BountyFinalized notification. Produced when the bounty gets a terminal status.

	BountyFinalized:
	  - name: bountyID
	    type: Integer
	  - name: status
	    type: Integer
	  - name: passVotes
	    type: Integer
	  - name: failVotes
	    type: Integer

RewardPaid notification.

	RewardPaid:
	  - name: bountyID
	    type: Integer
	  - name: auditor
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package bounty
