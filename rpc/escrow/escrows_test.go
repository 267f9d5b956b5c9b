package escrow

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	items      []stackitem.Item
	traversals int
	terminated bool
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) TraverseIterator(_ uuid.UUID, _ *result.Iterator, num int) ([]stackitem.Item, error) {
	t.traversals++
	if num > len(t.items) {
		num = len(t.items)
	}
	batch := t.items[:num]
	t.items = t.items[num:]
	return batch, nil
}

func (t *testInv) TerminateSession(uuid.UUID) error {
	t.terminated = true
	return nil
}

func escrowItem(npo util.Uint160, milestone int64, donors ...util.Uint160) stackitem.Item {
	var (
		ds    []stackitem.Item
		cs    []stackitem.Item
		total int64
	)
	for i := range donors {
		ds = append(ds, stackitem.NewByteArray(donors[i].BytesBE()))
		cs = append(cs, stackitem.Make(100))
		total += 100
	}
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(npo.BytesBE()),
		stackitem.Make(milestone),
		stackitem.Make(total),
		stackitem.Make(0),
		stackitem.NewArray(ds),
		stackitem.NewArray(cs),
	})
}

func TestListEscrows(t *testing.T) {
	var (
		npo    = util.Uint160{1, 2, 3}
		donorA = util.Uint160{4, 5, 6}
		donorB = util.Uint160{7, 8, 9}
	)

	ti := new(testInv)
	r := NewReader(ti, util.Uint160{0xaa})

	ti.err = errors.New("bad")
	_, err := r.ListEscrows(2)
	require.Error(t, err)

	ti.err = nil
	iterID := uuid.New()
	ti.res = &result.Invoke{
		State:   "HALT",
		Session: uuid.New(),
		Stack: []stackitem.Item{
			stackitem.NewInterop(result.Iterator{ID: &iterID}),
		},
	}
	ti.items = []stackitem.Item{
		escrowItem(npo, 0, donorA),
		escrowItem(npo, 1, donorA, donorB),
		escrowItem(npo, 2),
	}

	res, err := r.ListEscrows(2)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, 2, ti.traversals)
	require.True(t, ti.terminated)

	require.Equal(t, npo, res[1].NPO)
	require.Equal(t, big.NewInt(1), res[1].Milestone)
	require.Equal(t, big.NewInt(200), res[1].Amount)
	require.Equal(t, 0, res[1].Status.Cmp(StatusActive))
	require.Equal(t, []util.Uint160{donorA, donorB}, res[1].Donors)
	require.Equal(t, []*big.Int{big.NewInt(100), big.NewInt(100)}, res[1].Contributions)
	require.Empty(t, res[2].Donors)
}

func TestListEscrowsWithoutSession(t *testing.T) {
	npo := util.Uint160{1, 2, 3}

	ti := new(testInv)
	r := NewReader(ti, util.Uint160{0xaa})

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.NewInterop(result.Iterator{
				Values: []stackitem.Item{escrowItem(npo, 5)},
			}),
		},
	}

	res, err := r.ListEscrows(0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, big.NewInt(5), res[0].Milestone)
	require.Zero(t, ti.traversals)
	require.False(t, ti.terminated)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.NewArray([]stackitem.Item{stackitem.Make(1)}),
		},
	}
	_, err = r.ListEscrowsExpanded(10)
	require.Error(t, err)
}
