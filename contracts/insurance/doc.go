/*
Package insurance implements Insurance Fund contract.

Insurance Fund collects slashed auditor stakes and voluntary contributions and
pays them out either directly by a manager (up to the configured limit) or
after a passed governance proposal.

# Contract notifications

	FundsReceived:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

	PayoutMade:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: reason
	    type: String

	MaxDirectPayoutChanged:
	  - name: previous
	    type: Integer
	  - name: limit
	    type: Integer

ManagerAdded and ManagerRemoved carry the account script hash.
*/
package insurance
