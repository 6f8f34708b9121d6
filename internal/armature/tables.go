package armature

import "armature-merge/internal/scene"

// Pair is one matched bone: a merge-armature node and its main-armature
// counterpart.
type Pair struct {
	Merge *scene.Node
	Main  *scene.Node
}

// MatchTable maps merge-armature bones to main-armature bones.
// The first match recorded for a bone wins; iteration follows insertion order.
type MatchTable struct {
	index map[*scene.Node]int
	pairs []Pair
}

// NewMatchTable returns an empty table.
func NewMatchTable() *MatchTable {
	return &MatchTable{index: make(map[*scene.Node]int)}
}

// Add records merge -> main unless merge is already a key.
// It reports whether the pair was inserted.
func (t *MatchTable) Add(merge, main *scene.Node) bool {
	if _, ok := t.index[merge]; ok {
		return false
	}

	t.index[merge] = len(t.pairs)
	t.pairs = append(t.pairs, Pair{Merge: merge, Main: main})

	return true
}

// Lookup returns the counterpart recorded for merge.
func (t *MatchTable) Lookup(merge *scene.Node) (*scene.Node, bool) {
	i, ok := t.index[merge]
	if !ok {
		return nil, false
	}

	return t.pairs[i].Main, true
}

// Has reports whether merge is a key.
func (t *MatchTable) Has(merge *scene.Node) bool {
	_, ok := t.index[merge]
	return ok
}

// Len returns the number of pairs.
func (t *MatchTable) Len() int {
	return len(t.pairs)
}

// Pairs returns the pairs in insertion order.
// The returned slice must not be modified.
func (t *MatchTable) Pairs() []Pair {
	return t.pairs
}

// UnmatchedSet is an insertion-ordered set of bones without a counterpart.
type UnmatchedSet struct {
	index map[*scene.Node]struct{}
	nodes []*scene.Node
}

// NewUnmatchedSet returns an empty set.
func NewUnmatchedSet() *UnmatchedSet {
	return &UnmatchedSet{index: make(map[*scene.Node]struct{})}
}

// Add inserts n and reports whether it was new.
func (s *UnmatchedSet) Add(n *scene.Node) bool {
	if _, ok := s.index[n]; ok {
		return false
	}

	s.index[n] = struct{}{}
	s.nodes = append(s.nodes, n)

	return true
}

// Has reports membership.
func (s *UnmatchedSet) Has(n *scene.Node) bool {
	_, ok := s.index[n]
	return ok
}

// Len returns the number of members.
func (s *UnmatchedSet) Len() int {
	return len(s.nodes)
}

// Nodes returns the members in insertion order.
// The returned slice must not be modified.
func (s *UnmatchedSet) Nodes() []*scene.Node {
	return s.nodes
}
