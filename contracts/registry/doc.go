/*
Package registry implements Auditor Registry contract.

Auditor Registry keeps stakes of the accounts allowed to audit NPO milestones.
An auditor stakes tokens with Register and can withdraw them with Unstake
once the stake lock expires. Each successful audit raises reputation (up to
100) and extends the lock, so an auditor can't leave right after signing off a
milestone. A failed audit lowers reputation by two points without touching
the lock.

Slashing, reputation updates and suspension are privileged operations
authorized by the role table: slash and reputation roles are held by Audit
Bounty Manager, governance role by Governance Manager. Slashed tokens are
sent to the Insurance Fund.

# Contract notifications

AuditorRegistered notification. Produced on every stake deposit.

	AuditorRegistered:
	  - name: auditor
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: stake
	    type: Integer

AuditorSlashed notification. Produced when part of the stake is moved to the
insurance fund.

	AuditorSlashed:
	  - name: auditor
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: stake
	    type: Integer

ReputationUpdated notification.

	ReputationUpdated:
	  - name: auditor
	    type: Hash160
	  - name: reputation
	    type: Integer
	  - name: success
	    type: Boolean

StakeWithdrawn notification.

	StakeWithdrawn:
	  - name: auditor
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: stake
	    type: Integer

AuditorSuspended and AuditorReinstated notifications carry the auditor
script hash and are produced only when the state actually changes.

RoleGranted and RoleRevoked notifications are described in common package.
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
  - 't' -> interop.Hash160
    token contract
  - 'i' -> interop.Hash160
    insurance fund contract
  - 'l' -> int
    initial lock period (ms)
  - 'x' -> int
    lock extension after a successful audit (ms)
  - 'a' + auditor -> std.Serialize(Auditor)
    auditor records, never deleted
  - 'role:' + role + '/' + account -> []byte{1}
    role table
*/
