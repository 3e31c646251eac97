package gst

// testAndSplit decides whether the string (alpha . t) is already
// represented in the subtree rooted at s, and if not, prepares an
// anchor node to which a new leaf for the remaining characters should
// be attached.
//
// id is the id being inserted. With alpha empty, testAndSplit attaches
// id via addRef in two cases: when an existing edge's label equals the
// remainder exactly (to that edge's destination), and when it splits an
// edge at the end of the remainder (to the new node). The other
// endpoint cases return without attaching id anywhere.
func (t *Tree) testAndSplit(s *node, alpha string, c byte, remainder string, id int) (endpoint bool, anchor *node, err error) {
	s, alpha = canonize(s, alpha)

	if len(alpha) > 0 {
		e := s.edgeFor(alpha[0])
		if e == nil {
			return false, nil, t.invariantViolationf("testAndSplit: canonical locus has no edge keyed %q", alpha[0])
		}
		label := e.label
		if len(label) > len(alpha) && label[len(alpha)] == c {
			return true, s, nil
		}
		// Split e at offset len(alpha): s --alpha--> r --rest--> e.dest
		r := newNode()
		rest := label[len(alpha):]
		r.setEdge(rest[0], &edge{label: rest, dest: e.dest})
		s.setEdge(alpha[0], &edge{label: alpha, dest: r})
		return false, r, nil
	}

	e := s.edgeFor(c)
	if e == nil {
		return false, s, nil
	}
	switch {
	case e.label == remainder:
		e.dest.addRef(id)
		return true, s, nil
	case hasPrefix(remainder, e.label):
		return true, s, nil
	case hasPrefix(e.label, remainder):
		n := newNode()
		n.addRef(id)
		rest := e.label[len(remainder):]
		n.setEdge(rest[0], &edge{label: rest, dest: e.dest})
		s.setEdge(c, &edge{label: remainder, dest: n})
		return false, s, nil
	default:
		// Neither is a prefix of the other, though both start with c.
		// No split here - the outer update loop resolves this on a
		// later iteration after a suffix-link jump.
		return true, s, nil
	}
}
