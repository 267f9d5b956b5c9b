package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// ErrUnauthorized is thrown when the invocation is not backed by a holder
// of the role required by the method.
const ErrUnauthorized = "unauthorized"

const rolePrefix = "role:"

// Grant assigns role to the account. Contracts receive the list of initial
// grants on deployment.
type Grant struct {
	Role    string
	Account interop.Hash160
}

func roleKeyPrefix(role string) []byte {
	return []byte(rolePrefix + role + "/")
}

func roleKey(role string, account interop.Hash160) []byte {
	return append(roleKeyPrefix(role), account...)
}

// InitRoles stores grants received on deployment.
func InitRoles(ctx storage.Context, grants []Grant) {
	for i := range grants {
		CheckAccount(grants[i].Account)
		storage.Put(ctx, roleKey(grants[i].Role, grants[i].Account), []byte{1})
		runtime.Notify("RoleGranted", grants[i].Role, grants[i].Account)
	}
}

// HasRole checks whether the account holds the role.
func HasRole(ctx storage.Context, role string, account interop.Hash160) bool {
	return storage.Get(ctx, roleKey(role, account)) != nil
}

// RoleHolders returns all accounts holding the role.
func RoleHolders(ctx storage.Context, role string) []interop.Hash160 {
	holders := []interop.Hash160{}

	it := storage.Find(ctx, roleKeyPrefix(role), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		holders = append(holders, iterator.Value(it).(interop.Hash160))
	}

	return holders
}

// IsAuthorized returns true if the calling contract holds the role or
// any of role holders has witnessed the transaction.
func IsAuthorized(ctx storage.Context, role string) bool {
	if HasRole(ctx, role, runtime.GetCallingScriptHash()) {
		return true
	}

	it := storage.Find(ctx, roleKeyPrefix(role), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		if runtime.CheckWitness(iterator.Value(it).(interop.Hash160)) {
			return true
		}
	}

	return false
}

// CheckRole panics with ErrUnauthorized if IsAuthorized fails.
func CheckRole(ctx storage.Context, role string) {
	if !IsAuthorized(ctx, role) {
		panic(ErrUnauthorized)
	}
}

// GrantRole gives the role to the account on behalf of an existing holder.
// It returns false if the account already holds it.
func GrantRole(ctx storage.Context, role string, account interop.Hash160) bool {
	CheckAccount(account)
	CheckRole(ctx, role)

	if HasRole(ctx, role, account) {
		return false
	}

	storage.Put(ctx, roleKey(role, account), []byte{1})
	runtime.Notify("RoleGranted", role, account)
	return true
}

// RevokeRole takes the role from the account on behalf of an existing holder.
// It returns false if the account does not hold it.
func RevokeRole(ctx storage.Context, role string, account interop.Hash160) bool {
	CheckRole(ctx, role)

	if !HasRole(ctx, role, account) {
		return false
	}

	storage.Delete(ctx, roleKey(role, account))
	runtime.Notify("RoleRevoked", role, account)
	return true
}
