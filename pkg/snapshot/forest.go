package snapshot

import (
	"fmt"
	"time"
)

// MaxDepth bounds how deep a walk descends into the forest.
// Nodes below this depth are not visited.
const MaxDepth = 1024

// Ref is the opaque identity the server assigns to a snapshot.
// It is only ever compared for equality.
type Ref string

// IsZero reports whether the reference is absent.
func (r Ref) IsZero() bool {
	return r == ""
}

// Node is a single snapshot of the forest.
// Names are not unique across the forest.
type Node struct {
	Ref         Ref
	ID          int32
	Name        string
	Description string
	CreateTime  time.Time
	State       string
	Quiesced    bool

	children []int
}

// Entry is the flattened view of a node.
type Entry struct {
	Name       string
	CreateTime time.Time
}

// Forest holds the snapshot hierarchy of one VM.
// Nodes are stored in an arena and refer to their children by index,
// so a forest can only ever be a set of trees.
type Forest struct {
	nodes []Node
	roots []int
}

func NewForest() *Forest {
	return &Forest{}
}

// AddRoot appends a top-level snapshot and returns its index.
func (f *Forest) AddRoot(n Node) int {
	n.children = nil
	f.nodes = append(f.nodes, n)
	idx := len(f.nodes) - 1
	f.roots = append(f.roots, idx)
	return idx
}

// AddChild appends n as the last child of the node at index parent.
func (f *Forest) AddChild(parent int, n Node) (int, error) {
	if parent < 0 || parent >= len(f.nodes) {
		return -1, fmt.Errorf("parent index %d out of range [0, %d)", parent, len(f.nodes))
	}

	n.children = nil
	f.nodes = append(f.nodes, n)
	idx := len(f.nodes) - 1
	f.nodes[parent].children = append(f.nodes[parent].children, idx)
	return idx, nil
}

// Len returns the number of nodes in the forest.
func (f *Forest) Len() int {
	if f == nil {
		return 0
	}
	return len(f.nodes)
}

func (f *Forest) IsEmpty() bool {
	return f.Len() == 0
}

// Node returns the node stored at idx.
func (f *Forest) Node(idx int) *Node {
	return &f.nodes[idx]
}

// Roots returns the indexes of the top-level nodes, in server order.
func (f *Forest) Roots() []int {
	if f == nil {
		return nil
	}
	return append([]int(nil), f.roots...)
}

// Children returns the indexes of the children of the node at idx, in server order.
func (f *Forest) Children(idx int) []int {
	return append([]int(nil), f.nodes[idx].children...)
}

type frame struct {
	idx   int
	depth int
}

// walk visits every node depth-first, parent before children and siblings in
// their given order.
func (f *Forest) walk(visit func(n *Node)) {
	if f == nil {
		return
	}

	stack := make([]frame, 0, len(f.roots))
	for i := len(f.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{idx: f.roots[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &f.nodes[top.idx]
		visit(n)

		if top.depth+1 >= MaxDepth {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{idx: n.children[i], depth: top.depth + 1})
		}
	}
}
