package governance

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func proposalItem(kind int64, target util.Uint160, recipient stackitem.Item) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(1),
		stackitem.NewByteArray(util.Uint160{0xee}.BytesBE()),
		stackitem.Make(kind),
		stackitem.NewByteArray(target.BytesBE()),
		stackitem.Make(3),
		recipient,
		stackitem.Make(0),
		stackitem.Make("move funds"),
		stackitem.Make(1000),
		stackitem.Make(2000),
		stackitem.Make(false),
		stackitem.Make(false),
		stackitem.Make(2),
		stackitem.Make(1),
	})
}

func TestGetProposal(t *testing.T) {
	var (
		from = util.Uint160{1, 2, 3}
		to   = util.Uint160{4, 5, 6}
	)

	ti := new(testInv)
	r := NewReader(ti, util.Uint160{0xaa})

	ti.err = errors.New("bad")
	_, err := r.GetProposal(big.NewInt(1))
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{proposalItem(0, from, stackitem.NewByteArray(to.BytesBE()))},
	}
	p, err := r.GetProposal(big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, 0, p.Kind.Cmp(KindRedirect))
	require.Equal(t, from, p.Target)
	require.Equal(t, to, p.Recipient)
	require.Equal(t, "move funds", p.Description)
	require.Equal(t, big.NewInt(2), p.VotesFor)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{proposalItem(1, from, stackitem.Null{})},
	}
	p, err = r.GetProposal(big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, 0, p.Kind.Cmp(KindRefundDonors))
	require.Equal(t, util.Uint160{}, p.Recipient)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{proposalItem(1, from, stackitem.Make(42))},
	}
	_, err = r.GetProposal(big.NewInt(1))
	require.Error(t, err)
}
