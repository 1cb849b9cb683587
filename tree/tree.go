// Package tree builds and traverses trees of fixed shape, comparing
// region allocation against ordinary per-node ownership. Both strategies
// assign node ids in construction order and must produce identical
// traversal checksums for identical shape parameters.
package tree

import (
	"github.com/pkeresztes/region"
)

// ChecksumMod is the modulus of the traversal checksum fold.
const ChecksumMod = 43112609

// Node is a tree node whose own memory and whose children sequence both
// come from a single Region. Children are referenced, not owned; nothing
// about a Node is released until the whole Region is.
type Node struct {
	children region.FixedSeq[*Node]
	id       int32
}

// ID returns the node's construction-order identifier.
func (n *Node) ID() int32 { return n.id }

// Children returns the node's children in the order they were added.
func (n *Node) Children() []*Node { return n.children.Slice() }

// Builder constructs every node of one tree from one Region, assigning
// ids monotonically from zero in construction order.
//
// Build recurses; the depths this package is used at (around 15 levels)
// are far inside goroutine stack growth, but very deep shapes would want
// an explicit stack.
type Builder struct {
	r      *region.Region
	nextID int32
}

// NewBuilder returns a Builder carving from r.
func NewBuilder(r *region.Region) *Builder {
	return &Builder{r: r}
}

// NodeCount returns the number of nodes constructed so far.
func (b *Builder) NodeCount() int {
	return int(b.nextID)
}

func (b *Builder) newNode(maxChildren int) (*Node, error) {
	n, err := region.New[Node](b.r)
	if err != nil {
		return nil, err
	}
	n.children, err = region.MakeFixedSeq[*Node](b.r, maxChildren)
	if err != nil {
		return nil, err
	}
	n.id = b.nextID
	b.nextID++
	return n, nil
}

// AddChild carves a new node with room for maxChildren of its own and
// appends it to parent's children.
func (b *Builder) AddChild(parent *Node, maxChildren int) (*Node, error) {
	child, err := b.newNode(maxChildren)
	if err != nil {
		return nil, err
	}
	parent.children.Append(child)
	return child, nil
}

// Build constructs a full tree: every node has branch children down to
// depth levels below the root. Build(branch, 0) is a bare root.
func (b *Builder) Build(branch, depth int) (*Node, error) {
	root, err := b.newNode(branch)
	if err != nil {
		return nil, err
	}
	if err := b.buildSubtree(root, branch, depth); err != nil {
		return nil, err
	}
	return root, nil
}

func (b *Builder) buildSubtree(n *Node, branch, levels int) error {
	if levels <= 0 {
		return nil
	}
	for i := 0; i < branch; i++ {
		if _, err := b.AddChild(n, branch); err != nil {
			return err
		}
	}
	for _, c := range n.Children() {
		if err := b.buildSubtree(c, branch, levels-1); err != nil {
			return err
		}
	}
	return nil
}

// Checksum folds a tree depth-first: (id + Σ child checksums) mod
// ChecksumMod, children visited in append order. Works over both node
// variants; equal shapes must yield equal checksums regardless of how
// their nodes were allocated.
func Checksum[N interface {
	ID() int32
	Children() []N
}](n N) int {
	sum := int(n.ID())
	for _, c := range n.Children() {
		sum = (sum + Checksum(c)) % ChecksumMod
	}
	return sum
}

// FullTreeNodes returns the node count of a full tree with the given
// branching factor and depth levels below the root:
// (branch^(depth+1) - 1) / (branch - 1).
func FullTreeNodes(branch, depth int) int {
	count := 1
	levelSize := 1
	for i := 0; i < depth; i++ {
		levelSize *= branch
		count += levelSize
	}
	return count
}
