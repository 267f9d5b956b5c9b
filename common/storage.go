package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// IDKey returns storage key of the entity with the integer identifier
// under the given prefix.
func IDKey(prefix string, id int) []byte {
	var buf any = id
	return append([]byte(prefix), buf.([]byte)...)
}

// NextID increments the counter stored under the key and returns its new
// value. The first identifier is 1.
func NextID(ctx storage.Context, key string) int {
	var id int
	data := storage.Get(ctx, key)
	if data != nil {
		id = data.(int)
	}
	id++
	storage.Put(ctx, key, id)
	return id
}

// CurrentID returns the last identifier issued by NextID.
func CurrentID(ctx storage.Context, key string) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}
	return data.(int)
}
