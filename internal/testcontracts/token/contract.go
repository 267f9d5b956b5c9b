package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbol   = "GRANT"
	decimals = 8

	ownerKey      = "o"
	supplyKey     = "s"
	balancePrefix = "b"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}
	storage.Put(storage.GetContext(), ownerKey, data.(interop.Hash160))
}

func Symbol() string {
	return symbol
}

func Decimals() int {
	return decimals
}

func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), supplyKey)
}

func BalanceOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), balanceKey(account))
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) {
		return false
	}

	ctx := storage.GetContext()
	fromBalance := getInt(ctx, balanceKey(from))
	if fromBalance < amount {
		return false
	}
	if amount > 0 && !from.Equals(to) {
		storage.Put(ctx, balanceKey(from), fromBalance-amount)
		storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)
	}

	notifyTransfer(from, to, amount, data)
	return true
}

// Mint issues new tokens, only the owner set on deployment can do it.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	if !runtime.CheckWitness(storage.Get(ctx, ownerKey).(interop.Hash160)) {
		panic("not an owner")
	}
	if amount <= 0 {
		panic("invalid amount")
	}

	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)
	storage.Put(ctx, supplyKey, getInt(ctx, supplyKey)+amount)

	var from interop.Hash160
	notifyTransfer(from, to, amount, nil)
}

func notifyTransfer(from, to interop.Hash160, amount int, data any) {
	runtime.Notify("Transfer", from, to, amount)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte(balancePrefix), account...)
}

func getInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}
	return data.(int)
}
