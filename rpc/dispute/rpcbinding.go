// Package dispute contains RPC wrappers for GrantAudit Dispute Manager contract.
package dispute

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

// DisputeDispute is a contract-specific dispute.Dispute type used by its methods.
type DisputeDispute struct {
	ID *big.Int
	BountyID *big.Int
	NPO util.Uint160
	Milestone *big.Int
	Panel []util.Uint160
	End *big.Int
	Status *big.Int
	Result *big.Int
	OverturnVotes *big.Int
	UpholdVotes *big.Int
}

// DisputePanelVote is a contract-specific dispute.PanelVote type used by its methods.
type DisputePanelVote struct {
	Overturn bool
	Notes string
	Timestamp *big.Int
}

// DisputeStartedEvent represents "DisputeStarted" event emitted by the contract.
type DisputeStartedEvent struct {
	DisputeID *big.Int
	BountyID *big.Int
	Panel []util.Uint160
	End *big.Int
}

// PanelVoteSubmittedEvent represents "PanelVoteSubmitted" event emitted by the contract.
type PanelVoteSubmittedEvent struct {
	DisputeID *big.Int
	Member util.Uint160
	Overturn bool
}

// DisputeFinalizedEvent represents "DisputeFinalized" event emitted by the contract.
type DisputeFinalizedEvent struct {
	DisputeID *big.Int
	Result *big.Int
	OverturnVotes *big.Int
	UpholdVotes *big.Int
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

// DisputeCount invokes `disputeCount` method of contract.
func (c *ContractReader) DisputeCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "disputeCount"))
}

// GetBountyDispute invokes `getBountyDispute` method of contract.
func (c *ContractReader) GetBountyDispute(bountyID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBountyDispute", bountyID))
}

// GetDispute invokes `getDispute` method of contract.
func (c *ContractReader) GetDispute(disputeID *big.Int) (*DisputeDispute, error) {
	return itemToDisputeDispute(unwrap.Item(c.invoker.Call(c.hash, "getDispute", disputeID)))
}

// GetPanelVote invokes `getPanelVote` method of contract.
func (c *ContractReader) GetPanelVote(disputeID *big.Int, member util.Uint160) (*DisputePanelVote, error) {
	return itemToDisputePanelVote(unwrap.Item(c.invoker.Call(c.hash, "getPanelVote", disputeID, member)))
}

// HasPanelVoted invokes `hasPanelVoted` method of contract.
func (c *ContractReader) HasPanelVoted(disputeID *big.Int, member util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasPanelVoted", disputeID, member))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// IsDisputeFinalizable invokes `isDisputeFinalizable` method of contract.
func (c *ContractReader) IsDisputeFinalizable(disputeID *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isDisputeFinalizable", disputeID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// FinalizeDispute creates a transaction invoking `finalizeDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FinalizeDispute(disputeID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "finalizeDispute", disputeID)
}

// FinalizeDisputeTransaction creates a transaction invoking `finalizeDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FinalizeDisputeTransaction(disputeID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "finalizeDispute", disputeID)
}

// FinalizeDisputeUnsigned creates a transaction invoking `finalizeDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FinalizeDisputeUnsigned(disputeID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "finalizeDispute", nil, disputeID)
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

// StartDispute creates a transaction invoking `startDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartDispute(bountyID *big.Int, npo util.Uint160, milestone *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startDispute", bountyID, npo, milestone)
}

// StartDisputeTransaction creates a transaction invoking `startDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartDisputeTransaction(bountyID *big.Int, npo util.Uint160, milestone *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startDispute", bountyID, npo, milestone)
}

// StartDisputeUnsigned creates a transaction invoking `startDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartDisputeUnsigned(bountyID *big.Int, npo util.Uint160, milestone *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startDispute", nil, bountyID, npo, milestone)
}

// SubmitPanelVote creates a transaction invoking `submitPanelVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitPanelVote(disputeID *big.Int, member util.Uint160, overturn bool, notes string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitPanelVote", disputeID, member, overturn, notes)
}

// SubmitPanelVoteTransaction creates a transaction invoking `submitPanelVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitPanelVoteTransaction(disputeID *big.Int, member util.Uint160, overturn bool, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitPanelVote", disputeID, member, overturn, notes)
}

// SubmitPanelVoteUnsigned creates a transaction invoking `submitPanelVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitPanelVoteUnsigned(disputeID *big.Int, member util.Uint160, overturn bool, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitPanelVote", nil, disputeID, member, overturn, notes)
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

// itemToDisputeDispute converts stack item into *DisputeDispute.
func itemToDisputeDispute(item stackitem.Item, err error) (*DisputeDispute, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DisputeDispute)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DisputeDispute from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DisputeDispute) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
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
	res.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
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
	res.Panel, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Panel: %w", err)
	}

	index++
	res.End, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field End: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.Result, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Result: %w", err)
	}

	index++
	res.OverturnVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OverturnVotes: %w", err)
	}

	index++
	res.UpholdVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UpholdVotes: %w", err)
	}

	return nil
}

// itemToDisputePanelVote converts stack item into *DisputePanelVote.
func itemToDisputePanelVote(item stackitem.Item, err error) (*DisputePanelVote, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DisputePanelVote)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DisputePanelVote from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DisputePanelVote) FromStackItem(item stackitem.Item) error {
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
	res.Overturn, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Overturn: %w", err)
	}

	index++
	res.Notes, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Notes: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// DisputeStartedEventsFromApplicationLog retrieves a set of all emitted events
// with "DisputeStarted" name from the provided [result.ApplicationLog].
func DisputeStartedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisputeStartedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisputeStartedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DisputeStarted" {
				continue
			}
			event := new(DisputeStartedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisputeStartedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisputeStartedEvent or
// returns an error if it's not possible to do to so.
func (e *DisputeStartedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Panel, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Panel: %w", err)
	}

	index++
	e.End, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field End: %w", err)
	}

	return nil
}

// PanelVoteSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "PanelVoteSubmitted" name from the provided [result.ApplicationLog].
func PanelVoteSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PanelVoteSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PanelVoteSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PanelVoteSubmitted" {
				continue
			}
			event := new(PanelVoteSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PanelVoteSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PanelVoteSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *PanelVoteSubmittedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	index++
	e.Member, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Member: %w", err)
	}

	index++
	e.Overturn, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Overturn: %w", err)
	}

	return nil
}

// DisputeFinalizedEventsFromApplicationLog retrieves a set of all emitted events
// with "DisputeFinalized" name from the provided [result.ApplicationLog].
func DisputeFinalizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisputeFinalizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisputeFinalizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DisputeFinalized" {
				continue
			}
			event := new(DisputeFinalizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisputeFinalizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisputeFinalizedEvent or
// returns an error if it's not possible to do to so.
func (e *DisputeFinalizedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.DisputeID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DisputeID: %w", err)
	}

	index++
	e.Result, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Result: %w", err)
	}

	index++
	e.OverturnVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OverturnVotes: %w", err)
	}

	index++
	e.UpholdVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UpholdVotes: %w", err)
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
