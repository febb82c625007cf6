package meta

import (
	"sync"

	"github.com/coregx/minire/nfa"
)

// matcherPool recycles NFA matchers so that concurrent callers of one
// Engine do not share simulation buffers.
type matcherPool struct {
	pool sync.Pool
}

func newMatcherPool(n *nfa.NFA) *matcherPool {
	return &matcherPool{
		pool: sync.Pool{
			New: func() interface{} {
				return nfa.NewMatcher(n)
			},
		},
	}
}

func (p *matcherPool) get() *nfa.Matcher {
	return p.pool.Get().(*nfa.Matcher)
}

func (p *matcherPool) put(m *nfa.Matcher) {
	p.pool.Put(m)
}
