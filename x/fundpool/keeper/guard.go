package keeper

import (
	"sync"

	"github.com/openalpha/fund-pool/x/fundpool/types"
)

// entryGuard is the process-wide busy flag protecting every externally
// reachable state-mutating entry point. A nested call while the flag is
// held (for example triggered by a callback out of a token transfer) is
// rejected rather than queued: no two ledger-mutating operations may
// interleave.
type entryGuard struct {
	mu   sync.Mutex
	busy bool
}

// enter acquires the guard. It returns a release func that must run on
// every exit path, or ErrReentrantCall when the guard is already held.
func (g *entryGuard) enter() (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return nil, types.ErrReentrantCall
	}
	g.busy = true
	return g.release, nil
}

func (g *entryGuard) release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}
