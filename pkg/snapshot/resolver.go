package snapshot

// Flatten lists every snapshot of the forest as (name, creation time) pairs
// in depth-first pre-order.
func Flatten(f *Forest) []Entry {
	entries := make([]Entry, 0, f.Len())
	f.walk(func(n *Node) {
		entries = append(entries, Entry{Name: n.Name, CreateTime: n.CreateTime})
	})
	return entries
}

// FindByReference returns every node whose identity is ref, in pre-order.
// A consistent server returns exactly one node for the current snapshot pointer.
func FindByReference(f *Forest, ref Ref) []*Node {
	return find(f, func(n *Node) bool { return n.Ref == ref })
}

// FindByName returns every node named exactly name, in pre-order.
// Matching nodes are descended into as well since names can repeat below them.
func FindByName(f *Forest, name string) []*Node {
	return find(f, func(n *Node) bool { return n.Name == name })
}

func find(f *Forest, match func(n *Node) bool) []*Node {
	nodes := []*Node{}
	f.walk(func(n *Node) {
		if match(n) {
			nodes = append(nodes, n)
		}
	})
	return nodes
}
