package vmware

import (
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
)

type pendingTree struct {
	tree   *types.VirtualMachineSnapshotTree
	parent int
	depth  int
}

// NewForest converts the snapshot tree reported by vSphere into a snapshot forest.
// Children keep the order the server reported. Subtrees deeper than
// snapshot.MaxDepth are dropped.
func NewForest(roots []types.VirtualMachineSnapshotTree) *snapshot.Forest {
	forest := snapshot.NewForest()

	stack := make([]pendingTree, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, pendingTree{tree: &roots[i], parent: -1})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := snapshotNode(top.tree)

		var idx int
		if top.parent < 0 {
			idx = forest.AddRoot(n)
		} else {
			var err error
			if idx, err = forest.AddChild(top.parent, n); err != nil {
				// parents are always inserted before their children
				zap.S().Named("vmware").Errorw("failed to attach snapshot", "snapshot", n.Name, "error", err)
				continue
			}
		}

		children := top.tree.ChildSnapshotList
		if len(children) == 0 {
			continue
		}
		if top.depth+1 >= snapshot.MaxDepth {
			zap.S().Named("vmware").Warnw("snapshot tree too deep, ignoring children", "snapshot", n.Name, "depth", top.depth)
			continue
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, pendingTree{tree: &children[i], parent: idx, depth: top.depth + 1})
		}
	}

	return forest
}

func snapshotNode(t *types.VirtualMachineSnapshotTree) snapshot.Node {
	return snapshot.Node{
		Ref:         snapshot.Ref(t.Snapshot.Value),
		ID:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		CreateTime:  t.CreateTime,
		State:       string(t.State),
		Quiesced:    t.Quiesced,
	}
}
