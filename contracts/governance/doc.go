/*
Package governance implements Governance Manager contract.

Governance Manager lets holders of the governance token approve actions no
single party may take: redirecting or refunding frozen milestone escrows,
insurance payouts above the direct limit and suspension of auditors. Any
account can create a proposal, every token holder with at least the
configured balance has one vote. That balance is locked in the contract
until the voting period ends. After the voting period anyone can execute
the proposal. The proposal needs the quorum of votes and more votes for than
against; the approved action is dispatched to the contract responsible for
it in the same transaction.

# Contract notifications

	ProposalCreated:
	  - name: proposalID
	    type: Integer
	  - name: proposer
	    type: Hash160
	  - name: kind
	    type: Integer
	  - name: end
	    type: Integer

	VoteCast:
	  - name: proposalID
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: support
	    type: Boolean

	ProposalExecuted:
	  - name: proposalID
	    type: Integer
	  - name: success
	    type: Boolean

	VoteLockReleased:
	  - name: proposalID
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package governance
