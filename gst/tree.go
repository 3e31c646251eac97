package gst

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Tree is a generalized suffix tree index over (string, id) pairs. The
// zero value is not usable; construct one with NewTree.
type Tree struct {
	root *node

	activeLeaf *node

	// highestIndex is the largest id accepted so far; hasHighest is
	// false until the first successful Put, since ids may legitimately
	// include 0 or negative values and there is no numeric sentinel
	// that unambiguously means "none".
	highestIndex int
	hasHighest   bool

	instanceID string
}

// NewTree constructs an empty generalized suffix tree.
func NewTree(opts ...Option) *Tree {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := newNode()
	t := &Tree{
		root:       r,
		activeLeaf: r,
		instanceID: o.instanceID,
	}
	return t
}

func (t *Tree) invariantViolationf(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...)
	logger.Sugar.Errorf("gst[%s]: %v", t.instanceID, err)
	return err
}

// Put indexes key under id. id must be greater than or equal to every id
// previously accepted by this tree; violating that fails deterministically
// with ErrOutOfOrderID and leaves the tree unchanged. key must be
// non-empty; violating that fails with ErrEmptyKey.
func (t *Tree) Put(key string, id int) error {
	if key == "" {
		return ErrEmptyKey
	}
	if t.hasHighest && id < t.highestIndex {
		return ErrOutOfOrderID
	}

	logger.Sugar.Debugf("gst[%s]: put key=%q id=%d", t.instanceID, key, id)

	t.highestIndex = id
	t.hasHighest = true
	t.activeLeaf = t.root

	s := t.root
	alpha := ""
	for i := 0; i < len(key); i++ {
		var err error
		s, alpha, err = t.update(s, alpha, key[i], key[i:], id)
		if err != nil {
			return err
		}
	}

	if t.activeLeaf.suffixLink == nil && t.activeLeaf != t.root && t.activeLeaf != s {
		t.activeLeaf.suffixLink = s
	}

	return nil
}

// Search returns the set of ids of every key previously Put into the
// tree that contains query as a substring. An empty query returns every
// id ever accepted: a zero-length walk "reaches" the root, and the
// root's subtree is everything.
func (t *Tree) Search(query string) map[int]struct{} {
	acc := make(map[int]struct{})
	if query == "" {
		t.root.getData(acc)
		return acc
	}

	s := t.root
	i := 0
	for i < len(query) {
		e := s.edgeFor(query[i])
		if e == nil {
			return map[int]struct{}{}
		}
		label := e.label
		remaining := len(query) - i
		m := remaining
		if len(label) < m {
			m = len(label)
		}
		if query[i:i+m] != label[:m] {
			return map[int]struct{}{}
		}
		if len(label) >= remaining {
			e.dest.getData(acc)
			return acc
		}
		i += len(label)
		s = e.dest
	}
	return acc
}
