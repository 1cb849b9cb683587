package tree

import (
	"unsafe"

	"github.com/pkeresztes/region"
)

// OwnedNode is the conventional-ownership comparator: each node owns its
// children through ordinary Go references and the whole tree is reclaimed
// node by node by the garbage collector once the root is dropped.
type OwnedNode struct {
	children []*OwnedNode
	id       int32
}

// ID returns the node's construction-order identifier.
func (n *OwnedNode) ID() int32 { return n.id }

// Children returns the node's children in the order they were added.
func (n *OwnedNode) Children() []*OwnedNode { return n.children }

// OwnedBuilder mirrors Builder for the conventional strategy, with the
// same id discipline, so the two trees are directly comparable.
type OwnedBuilder struct {
	stats  *region.Stats
	nextID int32
}

// NewOwnedBuilder returns a builder reporting its heap allocations into
// stats (nil for no accounting).
func NewOwnedBuilder(stats *region.Stats) *OwnedBuilder {
	return &OwnedBuilder{stats: stats}
}

// NodeCount returns the number of nodes constructed so far.
func (b *OwnedBuilder) NodeCount() int {
	return int(b.nextID)
}

func (b *OwnedBuilder) newNode(maxChildren int) *OwnedNode {
	// Two heap allocations per node: the node itself and the children
	// backing array, the same shape the region variant carves.
	b.stats.CountAlloc(int64(unsafe.Sizeof(OwnedNode{})))
	if maxChildren > 0 {
		b.stats.CountAlloc(int64(maxChildren) * int64(unsafe.Sizeof((*OwnedNode)(nil))))
	}
	n := &OwnedNode{
		children: make([]*OwnedNode, 0, maxChildren),
		id:       b.nextID,
	}
	b.nextID++
	return n
}

// AddChild creates a new node with room for maxChildren of its own and
// appends it to parent's children.
func (b *OwnedBuilder) AddChild(parent *OwnedNode, maxChildren int) *OwnedNode {
	child := b.newNode(maxChildren)
	parent.children = append(parent.children, child)
	return child
}

// Build constructs a full tree with the same shape and id assignment
// order as Builder.Build.
func (b *OwnedBuilder) Build(branch, depth int) *OwnedNode {
	root := b.newNode(branch)
	b.buildSubtree(root, branch, depth)
	return root
}

func (b *OwnedBuilder) buildSubtree(n *OwnedNode, branch, levels int) {
	if levels <= 0 {
		return
	}
	for i := 0; i < branch; i++ {
		b.AddChild(n, branch)
	}
	for _, c := range n.children {
		b.buildSubtree(c, branch, levels-1)
	}
}
