package receiver

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Payment is the last NEP-17 payment received by the contract.
type Payment struct {
	From   interop.Hash160
	Amount int
	Data   any
}

const (
	paymentKey = "p"
	rejectKey  = "r"
)

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	if storage.Get(ctx, rejectKey) != nil {
		panic("payments are rejected")
	}
	storage.Put(ctx, paymentKey, std.Serialize(Payment{
		From:   from,
		Amount: amount,
		Data:   data,
	}))
}

// SetReject makes the contract refuse all incoming payments.
func SetReject(reject bool) {
	ctx := storage.GetContext()
	if reject {
		storage.Put(ctx, rejectKey, []byte{1})
	} else {
		storage.Delete(ctx, rejectKey)
	}
}

func LastPayment() Payment {
	val := storage.Get(storage.GetReadOnlyContext(), paymentKey)
	if val == nil {
		return Payment{}
	}
	return std.Deserialize(val.([]byte)).(Payment)
}

func Verify() bool {
	return true
}
