// Package governance contains RPC wrappers for GrantAudit Governance Manager contract.
package governance

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// GovernanceProposal is a contract-specific governance.Proposal type used by its methods.
type GovernanceProposal struct {
	ID *big.Int
	Proposer util.Uint160
	Kind *big.Int
	Target util.Uint160
	Milestone *big.Int
	Recipient util.Uint160
	Amount *big.Int
	Description string
	Start *big.Int
	End *big.Int
	Executed bool
	Succeeded bool
	VotesFor *big.Int
	VotesAgainst *big.Int
}

// ProposalCreatedEvent represents "ProposalCreated" event emitted by the contract.
type ProposalCreatedEvent struct {
	ProposalID *big.Int
	Proposer util.Uint160
	Kind *big.Int
	End *big.Int
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	ProposalID *big.Int
	Voter util.Uint160
	Support bool
}

// ProposalExecutedEvent represents "ProposalExecuted" event emitted by the contract.
type ProposalExecutedEvent struct {
	ProposalID *big.Int
	Success bool
}

// VoteLockReleasedEvent represents "VoteLockReleased" event emitted by the contract.
type VoteLockReleasedEvent struct {
	ProposalID *big.Int
	Voter util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetProposal invokes `getProposal` method of contract.
func (c *ContractReader) GetProposal(proposalID *big.Int) (*GovernanceProposal, error) {
	return itemToGovernanceProposal(unwrap.Item(c.invoker.Call(c.hash, "getProposal", proposalID)))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(proposalID *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "getVote", proposalID, voter))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(proposalID *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", proposalID, voter))
}

// LockedOf invokes `lockedOf` method of contract.
func (c *ContractReader) LockedOf(proposalID *big.Int, voter util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lockedOf", proposalID, voter))
}

// ProposalCount invokes `proposalCount` method of contract.
func (c *ContractReader) ProposalCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ExecuteProposal creates a transaction invoking `executeProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ExecuteProposal(proposalID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "executeProposal", proposalID)
}

// ExecuteProposalTransaction creates a transaction invoking `executeProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExecuteProposalTransaction(proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "executeProposal", proposalID)
}

// ExecuteProposalUnsigned creates a transaction invoking `executeProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExecuteProposalUnsigned(proposalID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "executeProposal", nil, proposalID)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// ProposeAddAuditor creates a transaction invoking `proposeAddAuditor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProposeAddAuditor(proposer util.Uint160, auditor util.Uint160, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "proposeAddAuditor", proposer, auditor, description)
}

// ProposeAddAuditorTransaction creates a transaction invoking `proposeAddAuditor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposeAddAuditorTransaction(proposer util.Uint160, auditor util.Uint160, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "proposeAddAuditor", proposer, auditor, description)
}

// ProposeAddAuditorUnsigned creates a transaction invoking `proposeAddAuditor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposeAddAuditorUnsigned(proposer util.Uint160, auditor util.Uint160, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "proposeAddAuditor", nil, proposer, auditor, description)
}

// ProposePayout creates a transaction invoking `proposePayout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProposePayout(proposer util.Uint160, recipient util.Uint160, amount *big.Int, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "proposePayout", proposer, recipient, amount, description)
}

// ProposePayoutTransaction creates a transaction invoking `proposePayout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposePayoutTransaction(proposer util.Uint160, recipient util.Uint160, amount *big.Int, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "proposePayout", proposer, recipient, amount, description)
}

// ProposePayoutUnsigned creates a transaction invoking `proposePayout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposePayoutUnsigned(proposer util.Uint160, recipient util.Uint160, amount *big.Int, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "proposePayout", nil, proposer, recipient, amount, description)
}

// ProposeRedirect creates a transaction invoking `proposeRedirect` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProposeRedirect(proposer util.Uint160, fromNPO util.Uint160, milestone *big.Int, toNPO util.Uint160, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "proposeRedirect", proposer, fromNPO, milestone, toNPO, description)
}

// ProposeRedirectTransaction creates a transaction invoking `proposeRedirect` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposeRedirectTransaction(proposer util.Uint160, fromNPO util.Uint160, milestone *big.Int, toNPO util.Uint160, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "proposeRedirect", proposer, fromNPO, milestone, toNPO, description)
}

// ProposeRedirectUnsigned creates a transaction invoking `proposeRedirect` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposeRedirectUnsigned(proposer util.Uint160, fromNPO util.Uint160, milestone *big.Int, toNPO util.Uint160, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "proposeRedirect", nil, proposer, fromNPO, milestone, toNPO, description)
}

// ProposeRefundDonors creates a transaction invoking `proposeRefundDonors` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProposeRefundDonors(proposer util.Uint160, npo util.Uint160, milestone *big.Int, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "proposeRefundDonors", proposer, npo, milestone, description)
}

// ProposeRefundDonorsTransaction creates a transaction invoking `proposeRefundDonors` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposeRefundDonorsTransaction(proposer util.Uint160, npo util.Uint160, milestone *big.Int, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "proposeRefundDonors", proposer, npo, milestone, description)
}

// ProposeRefundDonorsUnsigned creates a transaction invoking `proposeRefundDonors` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposeRefundDonorsUnsigned(proposer util.Uint160, npo util.Uint160, milestone *big.Int, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "proposeRefundDonors", nil, proposer, npo, milestone, description)
}

// ProposeRemoveAuditor creates a transaction invoking `proposeRemoveAuditor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ProposeRemoveAuditor(proposer util.Uint160, auditor util.Uint160, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "proposeRemoveAuditor", proposer, auditor, description)
}

// ProposeRemoveAuditorTransaction creates a transaction invoking `proposeRemoveAuditor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ProposeRemoveAuditorTransaction(proposer util.Uint160, auditor util.Uint160, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "proposeRemoveAuditor", proposer, auditor, description)
}

// ProposeRemoveAuditorUnsigned creates a transaction invoking `proposeRemoveAuditor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ProposeRemoveAuditorUnsigned(proposer util.Uint160, auditor util.Uint160, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "proposeRemoveAuditor", nil, proposer, auditor, description)
}

// ReleaseVoteLock creates a transaction invoking `releaseVoteLock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseVoteLock(proposalID *big.Int, voter util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseVoteLock", proposalID, voter)
}

// ReleaseVoteLockTransaction creates a transaction invoking `releaseVoteLock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseVoteLockTransaction(proposalID *big.Int, voter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseVoteLock", proposalID, voter)
}

// ReleaseVoteLockUnsigned creates a transaction invoking `releaseVoteLock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseVoteLockUnsigned(proposalID *big.Int, voter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseVoteLock", nil, proposalID, voter)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// Vote creates a transaction invoking `vote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Vote(proposalID *big.Int, voter util.Uint160, support bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "vote", proposalID, voter, support)
}

// VoteTransaction creates a transaction invoking `vote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteTransaction(proposalID *big.Int, voter util.Uint160, support bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "vote", proposalID, voter, support)
}

// VoteUnsigned creates a transaction invoking `vote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteUnsigned(proposalID *big.Int, voter util.Uint160, support bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "vote", nil, proposalID, voter, support)
}

// itemToGovernanceProposal converts stack item into *GovernanceProposal.
func itemToGovernanceProposal(item stackitem.Item, err error) (*GovernanceProposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GovernanceProposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GovernanceProposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GovernanceProposal) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 14 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Proposer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Proposer: %w", err)
	}

	index++
	res.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	res.Target, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Target: %w", err)
	}

	index++
	res.Milestone, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Milestone: %w", err)
	}

	index++
	res.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		if _, ok := item.(stackitem.Null); ok {
			return util.Uint160{}, nil
		}
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Start, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Start: %w", err)
	}

	index++
	res.End, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field End: %w", err)
	}

	index++
	res.Executed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Executed: %w", err)
	}

	index++
	res.Succeeded, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Succeeded: %w", err)
	}

	index++
	res.VotesFor, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotesFor: %w", err)
	}

	index++
	res.VotesAgainst, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotesAgainst: %w", err)
	}

	return nil
}

// ProposalCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalCreated" name from the provided [result.ApplicationLog].
func ProposalCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalCreated" {
				continue
			}
			event := new(ProposalCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	index++
	e.Proposer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Proposer: %w", err)
	}

	index++
	e.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	e.End, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field End: %w", err)
	}

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Support, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Support: %w", err)
	}

	return nil
}

// ProposalExecutedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalExecuted" name from the provided [result.ApplicationLog].
func ProposalExecutedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalExecutedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalExecutedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalExecuted" {
				continue
			}
			event := new(ProposalExecutedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalExecutedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalExecutedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalExecutedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	index++
	e.Success, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Success: %w", err)
	}

	return nil
}

// VoteLockReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteLockReleased" name from the provided [result.ApplicationLog].
func VoteLockReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteLockReleasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteLockReleasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteLockReleased" {
				continue
			}
			event := new(VoteLockReleasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteLockReleasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteLockReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *VoteLockReleasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProposalID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProposalID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
