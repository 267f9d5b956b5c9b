// Package registry contains RPC wrappers for GrantAudit Auditor Registry contract.
package registry

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

// RegistryAuditor is a contract-specific registry.Auditor type used by its methods.
type RegistryAuditor struct {
	Stake *big.Int
	Reputation *big.Int
	LockUntil *big.Int
	Suspended bool
}

// AuditorRegisteredEvent represents "AuditorRegistered" event emitted by the contract.
type AuditorRegisteredEvent struct {
	Auditor util.Uint160
	Amount *big.Int
	Stake *big.Int
}

// AuditorSlashedEvent represents "AuditorSlashed" event emitted by the contract.
type AuditorSlashedEvent struct {
	Auditor util.Uint160
	Amount *big.Int
	Stake *big.Int
}

// ReputationUpdatedEvent represents "ReputationUpdated" event emitted by the contract.
type ReputationUpdatedEvent struct {
	Auditor util.Uint160
	Reputation *big.Int
	Success bool
}

// StakeWithdrawnEvent represents "StakeWithdrawn" event emitted by the contract.
type StakeWithdrawnEvent struct {
	Auditor util.Uint160
	Amount *big.Int
	Stake *big.Int
}

// AuditorSuspendedEvent represents "AuditorSuspended" event emitted by the contract.
type AuditorSuspendedEvent struct {
	Auditor util.Uint160
}

// AuditorReinstatedEvent represents "AuditorReinstated" event emitted by the contract.
type AuditorReinstatedEvent struct {
	Auditor util.Uint160
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

// EligibleAuditors invokes `eligibleAuditors` method of contract.
func (c *ContractReader) EligibleAuditors(minStake *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "eligibleAuditors", minStake))
}

// GetAuditor invokes `getAuditor` method of contract.
func (c *ContractReader) GetAuditor(auditor util.Uint160) (*RegistryAuditor, error) {
	return itemToRegistryAuditor(unwrap.Item(c.invoker.Call(c.hash, "getAuditor", auditor)))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// IsAuditor invokes `isAuditor` method of contract.
func (c *ContractReader) IsAuditor(auditor util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuditor", auditor))
}

// IsRegistered invokes `isRegistered` method of contract.
func (c *ContractReader) IsRegistered(auditor util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isRegistered", auditor))
}

// ListAuditors invokes `listAuditors` method of contract.
func (c *ContractReader) ListAuditors() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "listAuditors"))
}

// ReputationOf invokes `reputationOf` method of contract.
func (c *ContractReader) ReputationOf(auditor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reputationOf", auditor))
}

// StakeOf invokes `stakeOf` method of contract.
func (c *ContractReader) StakeOf(auditor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stakeOf", auditor))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
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

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(auditor util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", auditor, amount)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(auditor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", auditor, amount)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(auditor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, auditor, amount)
}

// Reinstate creates a transaction invoking `reinstate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Reinstate(auditor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reinstate", auditor)
}

// ReinstateTransaction creates a transaction invoking `reinstate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReinstateTransaction(auditor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reinstate", auditor)
}

// ReinstateUnsigned creates a transaction invoking `reinstate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReinstateUnsigned(auditor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reinstate", nil, auditor)
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

// Slash creates a transaction invoking `slash` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Slash(auditor util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "slash", auditor, amount)
}

// SlashTransaction creates a transaction invoking `slash` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SlashTransaction(auditor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "slash", auditor, amount)
}

// SlashUnsigned creates a transaction invoking `slash` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SlashUnsigned(auditor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "slash", nil, auditor, amount)
}

// Suspend creates a transaction invoking `suspend` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Suspend(auditor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "suspend", auditor)
}

// SuspendTransaction creates a transaction invoking `suspend` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SuspendTransaction(auditor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "suspend", auditor)
}

// SuspendUnsigned creates a transaction invoking `suspend` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SuspendUnsigned(auditor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "suspend", nil, auditor)
}

// Unstake creates a transaction invoking `unstake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unstake(auditor util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unstake", auditor, amount)
}

// UnstakeTransaction creates a transaction invoking `unstake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnstakeTransaction(auditor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unstake", auditor, amount)
}

// UnstakeUnsigned creates a transaction invoking `unstake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnstakeUnsigned(auditor util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unstake", nil, auditor, amount)
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

// UpdateReputation creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateReputation(auditor util.Uint160, success bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateReputation", auditor, success)
}

// UpdateReputationTransaction creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateReputationTransaction(auditor util.Uint160, success bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateReputation", auditor, success)
}

// UpdateReputationUnsigned creates a transaction invoking `updateReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateReputationUnsigned(auditor util.Uint160, success bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateReputation", nil, auditor, success)
}

// itemToRegistryAuditor converts stack item into *RegistryAuditor.
func itemToRegistryAuditor(item stackitem.Item, err error) (*RegistryAuditor, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryAuditor)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryAuditor from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryAuditor) FromStackItem(item stackitem.Item) error {
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
	res.Stake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stake: %w", err)
	}

	index++
	res.Reputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reputation: %w", err)
	}

	index++
	res.LockUntil, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LockUntil: %w", err)
	}

	index++
	res.Suspended, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Suspended: %w", err)
	}

	return nil
}

// AuditorRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorRegistered" name from the provided [result.ApplicationLog].
func AuditorRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuditorRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuditorRegistered" {
				continue
			}
			event := new(AuditorRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuditorRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorRegisteredEvent) FromStackItem(item *stackitem.Array) error {
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

	index++
	e.Stake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stake: %w", err)
	}

	return nil
}

// AuditorSlashedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorSlashed" name from the provided [result.ApplicationLog].
func AuditorSlashedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorSlashedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuditorSlashedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuditorSlashed" {
				continue
			}
			event := new(AuditorSlashedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuditorSlashedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorSlashedEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorSlashedEvent) FromStackItem(item *stackitem.Array) error {
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

	index++
	e.Stake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stake: %w", err)
	}

	return nil
}

// ReputationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationUpdated" name from the provided [result.ApplicationLog].
func ReputationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationUpdated" {
				continue
			}
			event := new(ReputationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Reputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reputation: %w", err)
	}

	index++
	e.Success, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Success: %w", err)
	}

	return nil
}

// StakeWithdrawnEventsFromApplicationLog retrieves a set of all emitted events
// with "StakeWithdrawn" name from the provided [result.ApplicationLog].
func StakeWithdrawnEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeWithdrawnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeWithdrawnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StakeWithdrawn" {
				continue
			}
			event := new(StakeWithdrawnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeWithdrawnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeWithdrawnEvent or
// returns an error if it's not possible to do to so.
func (e *StakeWithdrawnEvent) FromStackItem(item *stackitem.Array) error {
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

	index++
	e.Stake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stake: %w", err)
	}

	return nil
}

// AuditorSuspendedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorSuspended" name from the provided [result.ApplicationLog].
func AuditorSuspendedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorSuspendedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuditorSuspendedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuditorSuspended" {
				continue
			}
			event := new(AuditorSuspendedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuditorSuspendedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorSuspendedEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorSuspendedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
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

// AuditorReinstatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuditorReinstated" name from the provided [result.ApplicationLog].
func AuditorReinstatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuditorReinstatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuditorReinstatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuditorReinstated" {
				continue
			}
			event := new(AuditorReinstatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuditorReinstatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuditorReinstatedEvent or
// returns an error if it's not possible to do to so.
func (e *AuditorReinstatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
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
