package vmware

import (
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
)

// vmFromMoid creates a VirtualMachine object reference from a managed object ID.
// This is a helper function that constructs a VM reference without validating
// that the VM actually exists in vSphere.
func (m *VMManager) vmFromMoid(moid string) *object.VirtualMachine {
	ref := types.ManagedObjectReference{
		Type:  "VirtualMachine",
		Value: moid,
	}

	return object.NewVirtualMachine(m.gc.Client, ref)
}

// snapshotMoref rebuilds the managed object reference of a snapshot node.
func snapshotMoref(ref snapshot.Ref) types.ManagedObjectReference {
	return types.ManagedObjectReference{
		Type:  "VirtualMachineSnapshot",
		Value: string(ref),
	}
}
