// Package escrow contains RPC wrappers for GrantAudit Escrow Manager contract.
package escrow

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// EscrowMilestoneEscrow is a contract-specific escrow.MilestoneEscrow type used by its methods.
type EscrowMilestoneEscrow struct {
	NPO util.Uint160
	Milestone *big.Int
	Amount *big.Int
	Status *big.Int
	Donors []util.Uint160
	Contributions []*big.Int
}

// DepositMadeEvent represents "DepositMade" event emitted by the contract.
type DepositMadeEvent struct {
	NPO util.Uint160
	Milestone *big.Int
	Donor util.Uint160
	Amount *big.Int
	Total *big.Int
}

// FundsReleasedEvent represents "FundsReleased" event emitted by the contract.
type FundsReleasedEvent struct {
	NPO util.Uint160
	Milestone *big.Int
	Amount *big.Int
}

// MilestoneFrozenEvent represents "MilestoneFrozen" event emitted by the contract.
type MilestoneFrozenEvent struct {
	NPO util.Uint160
	Milestone *big.Int
	Amount *big.Int
}

// FundsRedirectedEvent represents "FundsRedirected" event emitted by the contract.
type FundsRedirectedEvent struct {
	FromNPO util.Uint160
	Milestone *big.Int
	ToNPO util.Uint160
	Amount *big.Int
}

// FundsRefundedEvent represents "FundsRefunded" event emitted by the contract.
type FundsRefundedEvent struct {
	NPO util.Uint160
	Milestone *big.Int
	Donor util.Uint160
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
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
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

// DonorAmount invokes `donorAmount` method of contract.
func (c *ContractReader) DonorAmount(npo util.Uint160, milestone *big.Int, donor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "donorAmount", npo, milestone, donor))
}

// GetDonors invokes `getDonors` method of contract.
func (c *ContractReader) GetDonors(npo util.Uint160, milestone *big.Int) ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "getDonors", npo, milestone))
}

// GetEscrow invokes `getEscrow` method of contract.
func (c *ContractReader) GetEscrow(npo util.Uint160, milestone *big.Int) (*EscrowMilestoneEscrow, error) {
	return itemToEscrowMilestoneEscrow(unwrap.Item(c.invoker.Call(c.hash, "getEscrow", npo, milestone)))
}

// GetStatus invokes `getStatus` method of contract.
func (c *ContractReader) GetStatus(npo util.Uint160, milestone *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getStatus", npo, milestone))
}

// IsAuthorized invokes `isAuthorized` method of contract.
func (c *ContractReader) IsAuthorized(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuthorized", role, account))
}

// IterateEscrows invokes `iterateEscrows` method of contract.
func (c *ContractReader) IterateEscrows() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateEscrows"))
}

// IterateEscrowsExpanded is similar to IterateEscrows (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateEscrowsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateEscrows", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(donor util.Uint160, npo util.Uint160, milestone *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", donor, npo, milestone, amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(donor util.Uint160, npo util.Uint160, milestone *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", donor, npo, milestone, amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(donor util.Uint160, npo util.Uint160, milestone *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, donor, npo, milestone, amount)
}

// FreezeMilestone creates a transaction invoking `freezeMilestone` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FreezeMilestone(npo util.Uint160, milestone *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "freezeMilestone", npo, milestone)
}

// FreezeMilestoneTransaction creates a transaction invoking `freezeMilestone` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FreezeMilestoneTransaction(npo util.Uint160, milestone *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "freezeMilestone", npo, milestone)
}

// FreezeMilestoneUnsigned creates a transaction invoking `freezeMilestone` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FreezeMilestoneUnsigned(npo util.Uint160, milestone *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "freezeMilestone", nil, npo, milestone)
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

// RedirectFunds creates a transaction invoking `redirectFunds` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RedirectFunds(fromNPO util.Uint160, milestone *big.Int, toNPO util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "redirectFunds", fromNPO, milestone, toNPO)
}

// RedirectFundsTransaction creates a transaction invoking `redirectFunds` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RedirectFundsTransaction(fromNPO util.Uint160, milestone *big.Int, toNPO util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "redirectFunds", fromNPO, milestone, toNPO)
}

// RedirectFundsUnsigned creates a transaction invoking `redirectFunds` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RedirectFundsUnsigned(fromNPO util.Uint160, milestone *big.Int, toNPO util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "redirectFunds", nil, fromNPO, milestone, toNPO)
}

// RefundDonor creates a transaction invoking `refundDonor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RefundDonor(npo util.Uint160, milestone *big.Int, donor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "refundDonor", npo, milestone, donor)
}

// RefundDonorTransaction creates a transaction invoking `refundDonor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RefundDonorTransaction(npo util.Uint160, milestone *big.Int, donor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "refundDonor", npo, milestone, donor)
}

// RefundDonorUnsigned creates a transaction invoking `refundDonor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RefundDonorUnsigned(npo util.Uint160, milestone *big.Int, donor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "refundDonor", nil, npo, milestone, donor)
}

// Release creates a transaction invoking `release` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Release(npo util.Uint160, milestone *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "release", npo, milestone)
}

// ReleaseTransaction creates a transaction invoking `release` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseTransaction(npo util.Uint160, milestone *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "release", npo, milestone)
}

// ReleaseUnsigned creates a transaction invoking `release` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseUnsigned(npo util.Uint160, milestone *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "release", nil, npo, milestone)
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

// itemToEscrowMilestoneEscrow converts stack item into *EscrowMilestoneEscrow.
func itemToEscrowMilestoneEscrow(item stackitem.Item, err error) (*EscrowMilestoneEscrow, error) {
	if err != nil {
		return nil, err
	}
	var res = new(EscrowMilestoneEscrow)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of EscrowMilestoneEscrow from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *EscrowMilestoneEscrow) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
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
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.Donors, err = func (item stackitem.Item) ([]util.Uint160, error) {
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
		return fmt.Errorf("field Donors: %w", err)
	}

	index++
	res.Contributions, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Contributions: %w", err)
	}

	return nil
}

// DepositMadeEventsFromApplicationLog retrieves a set of all emitted events
// with "DepositMade" name from the provided [result.ApplicationLog].
func DepositMadeEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositMadeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositMadeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DepositMade" {
				continue
			}
			event := new(DepositMadeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositMadeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositMadeEvent or
// returns an error if it's not possible to do to so.
func (e *DepositMadeEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Donor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Donor: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Total, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Total: %w", err)
	}

	return nil
}

// FundsReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "FundsReleased" name from the provided [result.ApplicationLog].
func FundsReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundsReleasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundsReleasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundsReleased" {
				continue
			}
			event := new(FundsReleasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundsReleasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundsReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *FundsReleasedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// MilestoneFrozenEventsFromApplicationLog retrieves a set of all emitted events
// with "MilestoneFrozen" name from the provided [result.ApplicationLog].
func MilestoneFrozenEventsFromApplicationLog(log *result.ApplicationLog) ([]*MilestoneFrozenEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MilestoneFrozenEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MilestoneFrozen" {
				continue
			}
			event := new(MilestoneFrozenEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MilestoneFrozenEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MilestoneFrozenEvent or
// returns an error if it's not possible to do to so.
func (e *MilestoneFrozenEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FundsRedirectedEventsFromApplicationLog retrieves a set of all emitted events
// with "FundsRedirected" name from the provided [result.ApplicationLog].
func FundsRedirectedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundsRedirectedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundsRedirectedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundsRedirected" {
				continue
			}
			event := new(FundsRedirectedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundsRedirectedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundsRedirectedEvent or
// returns an error if it's not possible to do to so.
func (e *FundsRedirectedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.FromNPO, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field FromNPO: %w", err)
	}

	index++
	e.Milestone, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Milestone: %w", err)
	}

	index++
	e.ToNPO, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field ToNPO: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FundsRefundedEventsFromApplicationLog retrieves a set of all emitted events
// with "FundsRefunded" name from the provided [result.ApplicationLog].
func FundsRefundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FundsRefundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FundsRefundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FundsRefunded" {
				continue
			}
			event := new(FundsRefundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FundsRefundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FundsRefundedEvent or
// returns an error if it's not possible to do to so.
func (e *FundsRefundedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Donor, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Donor: %w", err)
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
