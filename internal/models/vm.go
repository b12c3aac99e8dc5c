package models

import (
	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
)

// VMTarget identifies the virtual machine the tool operates on.
type VMTarget struct {
	Moid string
	Name string
}

// VMInfo is a point-in-time view of a VM: its summary fields and its snapshot forest.
// It is fetched fresh for every operation and never cached.
type VMInfo struct {
	Name       string
	GuestOS    string
	PowerState string
	IPAddress  string

	Snapshots *snapshot.Forest
	// Current is the reference of the snapshot the VM's disks reflect. Zero when the VM has no snapshots.
	Current snapshot.Ref
}
