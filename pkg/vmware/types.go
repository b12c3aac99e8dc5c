package vmware

import (
	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
)

// CreateSnapshotRequest contains the parameters needed to create a snapshot of a VM.
//
// Fields:
//   - VmMoid: the managed object ID of the virtual machine.
//   - SnapshotName: the name to assign to the new snapshot.
//   - Description: a description of the snapshot's purpose or content.
//   - Memory: if true, includes the VM's memory state in the snapshot (for running VMs).
//   - Quiesce: if true, attempts to quiesce the guest file system before snapshotting.
type CreateSnapshotRequest struct {
	VmMoid       string
	SnapshotName string
	Description  string
	Memory       bool
	Quiesce      bool
}

// RemoveSnapshotRequest contains the parameters needed to remove one snapshot node.
//
// Fields:
//   - VmMoid: the managed object ID of the virtual machine.
//   - SnapshotRef: the identity of the snapshot node to remove.
//   - RemoveChildren: if true, the whole subtree below the node is removed too.
type RemoveSnapshotRequest struct {
	VmMoid         string
	SnapshotRef    snapshot.Ref
	RemoveChildren bool
}

// RevertToSnapshotRequest identifies the snapshot node a VM is reverted to.
type RevertToSnapshotRequest struct {
	VmMoid      string
	SnapshotRef snapshot.Ref
}

type PowerOnRequest struct {
	VmMoid string
}
