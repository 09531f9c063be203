// File: ids.go
// Role: Manual node ID generator: "node_manual_<k>_<nonce>", k monotonic
// within one Editor instance, nonce a per-session google/uuid suffix so
// ids from distinct editor instances never collide when documents merge.
package editor

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type idGenerator struct {
	nonce   string
	counter uint64
}

func newIDGenerator() *idGenerator {
	return &idGenerator{nonce: uuid.NewString()}
}

// next returns the next manual node ID for this session.
func (g *idGenerator) next() string {
	k := atomic.AddUint64(&g.counter, 1)
	return "node_manual_" + strconv.FormatUint(k, 10) + "_" + g.nonce
}
