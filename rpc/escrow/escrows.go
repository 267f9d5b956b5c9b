package escrow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// DefaultBatchSize is the number of escrows fetched per iterator traversal
// by ListEscrows.
const DefaultBatchSize = 100

// ListEscrows collects all milestone escrows stored in the contract. It uses
// an iterator session when the node supports them and falls back to an
// expanded invocation limited to batchSize items otherwise.
func (c *ContractReader) ListEscrows(batchSize int) ([]*EscrowMilestoneEscrow, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	sessionID, iter, err := c.IterateEscrows()
	if err != nil {
		return nil, fmt.Errorf("iterate escrows: %w", err)
	}

	var items []stackitem.Item
	if sessionID == uuid.Nil {
		// Node expanded the iterator on its own.
		items = iter.Values
	} else {
		defer func() {
			_ = c.invoker.TerminateSession(sessionID)
		}()
		for {
			batch, err := c.invoker.TraverseIterator(sessionID, &iter, batchSize)
			if err != nil {
				return nil, fmt.Errorf("traverse escrows: %w", err)
			}
			items = append(items, batch...)
			if len(batch) < batchSize {
				break
			}
		}
	}

	return decodeEscrows(items)
}

// ListEscrowsExpanded is similar to ListEscrows, but does not use sessions.
// At most limit escrows are returned.
func (c *ContractReader) ListEscrowsExpanded(limit int) ([]*EscrowMilestoneEscrow, error) {
	items, err := c.IterateEscrowsExpanded(limit)
	if err != nil {
		return nil, fmt.Errorf("iterate escrows: %w", err)
	}
	return decodeEscrows(items)
}

func decodeEscrows(items []stackitem.Item) ([]*EscrowMilestoneEscrow, error) {
	res := make([]*EscrowMilestoneEscrow, 0, len(items))
	for i := range items {
		if items[i] == nil {
			return nil, errors.New("nil escrow item")
		}
		e, err := itemToEscrowMilestoneEscrow(items[i], nil)
		if err != nil {
			return nil, fmt.Errorf("escrow %d: %w", i, err)
		}
		res = append(res, e)
	}
	return res, nil
}
