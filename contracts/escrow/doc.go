/*
Package escrow implements Escrow Manager contract.

Escrow Manager keeps donations until the audit of the corresponding NPO
milestone is settled. Every (NPO, milestone) pair has its own escrow bucket
created by the first deposit. A bucket is either released to the NPO,
or frozen and then redirected to another NPO or refunded donor by donor:

	Active -> Released
	Active -> Frozen -> Released (redirect)
	Active -> Frozen (refunds, amount decreases)

Release and freeze are performed by the holders of escrowconst.RoleSettle
(Audit Bounty Manager and Dispute Manager), redirect and refund by the holders
of escrowconst.RoleGovern (Governance Manager).

# Contract notifications

DepositMade notification. Produced on every deposit and carries the new total
of the bucket.

	DepositMade:
	  - name: npo
	    type: Hash160
	  - name: milestone
	    type: Integer
	  - name: donor
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: total
	    type: Integer

FundsReleased notification.

	FundsReleased:
	  - name: npo
	    type: Hash160
	  - name: milestone
	    type: Integer
	  - name: amount
	    type: Integer

MilestoneFrozen notification.

	MilestoneFrozen:
	  - name: npo
	    type: Hash160
	  - name: milestone
	    type: Integer
	  - name: amount
	    type: Integer

FundsRedirected notification.

	FundsRedirected:
	  - name: fromNPO
	    type: Hash160
	  - name: milestone
	    type: Integer
	  - name: toNPO
	    type: Hash160
	  - name: amount
	    type: Integer

FundsRefunded notification.

	FundsRefunded:
	  - name: npo
	    type: Hash160
	  - name: milestone
	    type: Integer
	  - name: donor
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package escrow
