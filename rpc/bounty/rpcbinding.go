// Package bounty contains RPC wrappers for GrantAudit Bounty Manager contract.
package bounty

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

// BountyBounty is a contract-specific bounty.Bounty type used by its methods.
type BountyBounty struct {
	ID *big.Int
	NPO util.Uint160
	Milestone *big.Int
	Sponsor util.Uint160
	RewardPool *big.Int
	RequiredStake *big.Int
	Start *big.Int
	ConcernDeadline *big.Int
	Auditors []util.Uint160
	Status *big.Int
	ConcernsRaised bool
}

// BountyVoteData is a contract-specific bounty.VoteData type used by its methods.
type BountyVoteData struct {
	Vote *big.Int
	Report string
	Evidence []string
	Timestamp *big.Int
}

// BountyCreatedEvent represents "BountyCreated" event emitted by the contract.
type BountyCreatedEvent struct {
	BountyID *big.Int
	NPO util.Uint160
	Milestone *big.Int
	RewardPool *big.Int
	ConcernDeadline *big.Int
}

// AuditorOptedInEvent represents "AuditorOptedIn" event emitted by the contract.
type AuditorOptedInEvent struct {
	BountyID *big.Int
	Auditor util.Uint160
}

// VoteSubmittedEvent represents "VoteSubmitted" event emitted by the contract.
type VoteSubmittedEvent struct {
	BountyID *big.Int
	Auditor util.Uint160
	Vote *big.Int
}

// ConcernRaisedEvent represents "ConcernRaised" event emitted by the contract.
type ConcernRaisedEvent struct {
	BountyID *big.Int
	Auditor util.Uint160
}

// BountyDisputedEvent represents "BountyDisputed" event emitted by the contract.
type BountyDisputedEvent struct {
	BountyID *big.Int
	DisputeID *big.Int
}

// BountyFinalizedEvent represents "BountyFinalized" event emitted by the contract.
type BountyFinalizedEvent struct {
	BountyID *big.Int
	Status *big.Int
	PassVotes *big.Int
	FailVotes *big.Int
}

// RewardPaidEvent represents "RewardPaid" event emitted by the contract.
type RewardPaidEvent struct {
	BountyID *big.Int
	Auditor util.Uint160
	Amount *big.Int
}

// RoleGrantedEvent represents "RoleGranted" event emitted by the contract.
type RoleGrantedEvent struct {
	Role string
	Account util.Uint160
}

// RoleRevokedEvent represents "RoleRevoked" event emitted by the contract.
type RoleRevokedEvent struct {
	Role string
	Account util.Uint160
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

// BountyCount invokes `bountyCount` method of contract.
func (c *ContractReader) BountyCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "bountyCount"))
}

// GetBounty invokes `getBounty` method of contract.
func (c *ContractReader) GetBounty(bountyID *big.Int) (*BountyBounty, error) {
	return itemToBountyBounty(unwrap.Item(c.invoker.Call(c.hash, "getBounty", bountyID)))
}

// GetMilestoneBounty invokes `getMilestoneBounty` method of contract.
func (c *ContractReader) GetMilestoneBounty(npo util.Uint160, milestone *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getMilestoneBounty", npo, milestone))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(bountyID *big.Int, auditor util.Uint160) (*BountyVoteData, error) {
	return itemToBountyVoteData(unwrap.Item(c.invoker.Call(c.hash, "getVote", bountyID, auditor)))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// IsBountyFinalizable invokes `isBountyFinalizable` method of contract.
func (c *ContractReader) IsBountyFinalizable(bountyID *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isBountyFinalizable", bountyID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateBounty creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBounty(sponsor util.Uint160, npo util.Uint160, milestone *big.Int, rewardPool *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBounty", sponsor, npo, milestone, rewardPool)
}

// CreateBountyTransaction creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBountyTransaction(sponsor util.Uint160, npo util.Uint160, milestone *big.Int, rewardPool *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBounty", sponsor, npo, milestone, rewardPool)
}

// CreateBountyUnsigned creates a transaction invoking `createBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBountyUnsigned(sponsor util.Uint160, npo util.Uint160, milestone *big.Int, rewardPool *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBounty", nil, sponsor, npo, milestone, rewardPool)
}

// FinalizeBounty creates a transaction invoking `finalizeBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FinalizeBounty(bountyID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "finalizeBounty", bountyID)
}

// FinalizeBountyTransaction creates a transaction invoking `finalizeBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FinalizeBountyTransaction(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "finalizeBounty", bountyID)
}

// FinalizeBountyUnsigned creates a transaction invoking `finalizeBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FinalizeBountyUnsigned(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "finalizeBounty", nil, bountyID)
}

// GrantRole creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantRole(role string, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantRole", role, account)
}

// GrantRoleTransaction creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantRoleTransaction(role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantRole", role, account)
}

// GrantRoleUnsigned creates a transaction invoking `grantRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantRoleUnsigned(role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantRole", nil, role, account)
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

// OptIn creates a transaction invoking `optIn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OptIn(bountyID *big.Int, auditor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "optIn", bountyID, auditor)
}

// OptInTransaction creates a transaction invoking `optIn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OptInTransaction(bountyID *big.Int, auditor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "optIn", bountyID, auditor)
}

// OptInUnsigned creates a transaction invoking `optIn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OptInUnsigned(bountyID *big.Int, auditor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "optIn", nil, bountyID, auditor)
}

// ResolveDispute creates a transaction invoking `resolveDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveDispute(bountyID *big.Int, overturn bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveDispute", bountyID, overturn)
}

// ResolveDisputeTransaction creates a transaction invoking `resolveDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveDisputeTransaction(bountyID *big.Int, overturn bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveDispute", bountyID, overturn)
}

// ResolveDisputeUnsigned creates a transaction invoking `resolveDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveDisputeUnsigned(bountyID *big.Int, overturn bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveDispute", nil, bountyID, overturn)
}

// RevokeRole creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeRole(role string, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeRole", role, account)
}

// RevokeRoleTransaction creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeRoleTransaction(role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeRole", role, account)
}

// RevokeRoleUnsigned creates a transaction invoking `revokeRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeRoleUnsigned(role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeRole", nil, role, account)
}

// SubmitVote creates a transaction invoking `submitVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitVote(bountyID *big.Int, auditor util.Uint160, vote *big.Int, report string, evidence []string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitVote", bountyID, auditor, vote, report, evidence)
}

// SubmitVoteTransaction creates a transaction invoking `submitVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitVoteTransaction(bountyID *big.Int, auditor util.Uint160, vote *big.Int, report string, evidence []string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitVote", bountyID, auditor, vote, report, evidence)
}

// SubmitVoteUnsigned creates a transaction invoking `submitVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitVoteUnsigned(bountyID *big.Int, auditor util.Uint160, vote *big.Int, report string, evidence []string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitVote", nil, bountyID, auditor, vote, report, evidence)
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

// itemToBountyBounty converts stack item into *BountyBounty.
func itemToBountyBounty(item stackitem.Item, err error) (*BountyBounty, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountyBounty)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountyBounty from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountyBounty) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
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
	res.NPO, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field NPO: %w", err)
	}

	index++
	res.Milestone, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Milestone: %w", err)
	}

	index++
	res.Sponsor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Sponsor: %w", err)
	}

	index++
	res.RewardPool, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardPool: %w", err)
	}

	index++
	res.RequiredStake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequiredStake: %w", err)
	}

	index++
	res.Start, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Start: %w", err)
	}

	index++
	res.ConcernDeadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ConcernDeadline: %w", err)
	}

	index++
	res.Auditors, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Auditors: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.ConcernsRaised, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field ConcernsRaised: %w", err)
	}

	return nil
}

// itemToBountyVoteData converts stack item into *BountyVoteData.
func itemToBountyVoteData(item stackitem.Item, err error) (*BountyVoteData, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountyVoteData)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountyVoteData from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountyVoteData) FromStackItem(item stackitem.Item) error {
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
	res.Vote, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Vote: %w", err)
	}

	index++
	res.Report, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Report: %w", err)
	}

	index++
	res.Evidence, err = func (item stackitem.Item) ([]string, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]string, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Evidence: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// BountyCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCreated" name from the provided [result.ApplicationLog].
func BountyCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCreated" {
				continue
			}
			event := new(BountyCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.NPO, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field NPO: %w", err)
	}

	index++
	e.Milestone, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Milestone: %w", err)
	}

	index++
	e.RewardPool, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardPool: %w", err)
	}

	index++
	e.ConcernDeadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ConcernDeadline: %w", err)
	}

	return nil
}

// AuditorOptedInEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorOptedIn" name from the provided [result.ApplicationLog].
func AuditorOptedInEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorOptedInEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuditorOptedInEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuditorOptedIn" {
				continue
			}
			event := new(AuditorOptedInEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuditorOptedInEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorOptedInEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorOptedInEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Auditor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Auditor: %w", err)
	}

	return nil
}

// VoteSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteSubmitted" name from the provided [result.ApplicationLog].
func VoteSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteSubmitted" {
				continue
			}
			event := new(VoteSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *VoteSubmittedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Auditor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Auditor: %w", err)
	}

	index++
	e.Vote, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Vote: %w", err)
	}

	return nil
}

// ConcernRaisedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConcernRaised" name from the provided [result.ApplicationLog].
func ConcernRaisedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConcernRaisedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ConcernRaisedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ConcernRaised" {
				continue
			}
			event := new(ConcernRaisedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ConcernRaisedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ConcernRaisedEvent or
// returns an error if it's not possible to do to so.
func (e *ConcernRaisedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Auditor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Auditor: %w", err)
	}

	return nil
}

// BountyDisputedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyDisputed" name from the provided [result.ApplicationLog].
func BountyDisputedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyDisputedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyDisputedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyDisputed" {
				continue
			}
			event := new(BountyDisputedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyDisputedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyDisputedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyDisputedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	return nil
}

// BountyFinalizedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyFinalized" name from the provided [result.ApplicationLog].
func BountyFinalizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyFinalizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyFinalizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyFinalized" {
				continue
			}
			event := new(BountyFinalizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyFinalizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyFinalizedEvent or
// returns an error if it's not possible to do to so.
func (e *BountyFinalizedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	e.PassVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PassVotes: %w", err)
	}

	index++
	e.FailVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FailVotes: %w", err)
	}

	return nil
}

// RewardPaidEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardPaid" name from the provided [result.ApplicationLog].
func RewardPaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardPaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardPaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardPaid" {
				continue
			}
			event := new(RewardPaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardPaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardPaidEvent or
// returns an error if it's not possible to do to so.
func (e *RewardPaidEvent) FromStackItem(item *stackitem.Array) error {
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
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Auditor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Auditor: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RoleGrantedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleGranted" name from the provided [result.ApplicationLog].
func RoleGrantedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleGrantedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleGrantedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleGranted" {
				continue
			}
			event := new(RoleGrantedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleGrantedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleGrantedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleGrantedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Role, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// RoleRevokedEventsFromApplicationLog retrieves a set of all emitted events
// with "RoleRevoked" name from the provided [result.ApplicationLog].
func RoleRevokedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RoleRevokedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RoleRevokedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RoleRevoked" {
				continue
			}
			event := new(RoleRevokedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RoleRevokedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RoleRevokedEvent or
// returns an error if it's not possible to do to so.
func (e *RoleRevokedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Role, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}
