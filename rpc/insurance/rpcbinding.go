// Package insurance contains RPC wrappers for GrantAudit Insurance Fund contract.
package insurance

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

// FundsReceivedEvent represents "FundsReceived" event emitted by the contract.
type FundsReceivedEvent struct {
	From util.Uint160
	Amount *big.Int
}

// PayoutMadeEvent represents "PayoutMade" event emitted by the contract.
type PayoutMadeEvent struct {
	To util.Uint160
	Amount *big.Int
	Reason string
}

// ManagerAddedEvent represents "ManagerAdded" event emitted by the contract.
type ManagerAddedEvent struct {
	Account util.Uint160
}

// ManagerRemovedEvent represents "ManagerRemoved" event emitted by the contract.
type ManagerRemovedEvent struct {
	Account util.Uint160
}

// MaxDirectPayoutChangedEvent represents "MaxDirectPayoutChanged" event emitted by the contract.
type MaxDirectPayoutChangedEvent struct {
	Previous *big.Int
	Limit *big.Int
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

// GetBalance invokes `getBalance` method of contract.
func (c *ContractReader) GetBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBalance"))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// IsManager invokes `isManager` method of contract.
func (c *ContractReader) IsManager(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isManager", account))
}

// MaxDirectPayout invokes `maxDirectPayout` method of contract.
func (c *ContractReader) MaxDirectPayout() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxDirectPayout"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddManager creates a transaction invoking `addManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddManager(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addManager", account)
}

// AddManagerTransaction creates a transaction invoking `addManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddManagerTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addManager", account)
}

// AddManagerUnsigned creates a transaction invoking `addManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddManagerUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addManager", nil, account)
}

// GovernancePayout creates a transaction invoking `governancePayout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GovernancePayout(to util.Uint160, amount *big.Int, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "governancePayout", to, amount, reason)
}

// GovernancePayoutTransaction creates a transaction invoking `governancePayout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GovernancePayoutTransaction(to util.Uint160, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "governancePayout", to, amount, reason)
}

// GovernancePayoutUnsigned creates a transaction invoking `governancePayout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GovernancePayoutUnsigned(to util.Uint160, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "governancePayout", nil, to, amount, reason)
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

// Payout creates a transaction invoking `payout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Payout(to util.Uint160, amount *big.Int, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "payout", to, amount, reason)
}

// PayoutTransaction creates a transaction invoking `payout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayoutTransaction(to util.Uint160, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "payout", to, amount, reason)
}

// PayoutUnsigned creates a transaction invoking `payout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayoutUnsigned(to util.Uint160, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "payout", nil, to, amount, reason)
}

// ReceiveFunds creates a transaction invoking `receiveFunds` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReceiveFunds(from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "receiveFunds", from, amount)
}

// ReceiveFundsTransaction creates a transaction invoking `receiveFunds` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReceiveFundsTransaction(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "receiveFunds", from, amount)
}

// ReceiveFundsUnsigned creates a transaction invoking `receiveFunds` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReceiveFundsUnsigned(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "receiveFunds", nil, from, amount)
}

// RemoveManager creates a transaction invoking `removeManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveManager(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeManager", account)
}

// RemoveManagerTransaction creates a transaction invoking `removeManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveManagerTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeManager", account)
}

// RemoveManagerUnsigned creates a transaction invoking `removeManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveManagerUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeManager", nil, account)
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

// SetMaxDirectPayout creates a transaction invoking `setMaxDirectPayout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMaxDirectPayout(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMaxDirectPayout", amount)
}

// SetMaxDirectPayoutTransaction creates a transaction invoking `setMaxDirectPayout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMaxDirectPayoutTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMaxDirectPayout", amount)
}

// SetMaxDirectPayoutUnsigned creates a transaction invoking `setMaxDirectPayout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMaxDirectPayoutUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMaxDirectPayout", nil, amount)
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

// FundsReceivedEventsFromApplicationLog retrieves a set of all emitted events
// with "FundsReceived" name from the provided [result.ApplicationLog].
func FundsReceivedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundsReceivedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundsReceivedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundsReceived" {
				continue
			}
			event := new(FundsReceivedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundsReceivedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundsReceivedEvent or
// returns an error if it's not possible to do to so.
func (e *FundsReceivedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// PayoutMadeEventsFromApplicationLog retrieves a set of all emitted events
// with "PayoutMade" name from the provided [result.ApplicationLog].
func PayoutMadeEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutMadeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PayoutMadeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PayoutMade" {
				continue
			}
			event := new(PayoutMadeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PayoutMadeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PayoutMadeEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutMadeEvent) FromStackItem(item *stackitem.Array) error {
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
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Reason, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// ManagerAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ManagerAdded" name from the provided [result.ApplicationLog].
func ManagerAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ManagerAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ManagerAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ManagerAdded" {
				continue
			}
			event := new(ManagerAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ManagerAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ManagerAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ManagerAddedEvent) FromStackItem(item *stackitem.Array) error {
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

// ManagerRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "ManagerRemoved" name from the provided [result.ApplicationLog].
func ManagerRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ManagerRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ManagerRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ManagerRemoved" {
				continue
			}
			event := new(ManagerRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ManagerRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ManagerRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *ManagerRemovedEvent) FromStackItem(item *stackitem.Array) error {
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

// MaxDirectPayoutChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MaxDirectPayoutChanged" name from the provided [result.ApplicationLog].
func MaxDirectPayoutChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MaxDirectPayoutChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MaxDirectPayoutChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MaxDirectPayoutChanged" {
				continue
			}
			event := new(MaxDirectPayoutChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MaxDirectPayoutChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MaxDirectPayoutChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MaxDirectPayoutChangedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Previous, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Previous: %w", err)
	}

	index++
	e.Limit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Limit: %w", err)
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
