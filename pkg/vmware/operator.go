package vmware

import (
	"context"
	"fmt"
	"time"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/methods"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/kubev2v/vm-snapshots/internal/models"
	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
)

//go:generate mockgen -destination=../../mocks/mock_vmware/mock_operator.go github.com/kubev2v/vm-snapshots/pkg/vmware VMOperator

type VMOperator interface {
	Info(ctx context.Context, vmMoid string) (*models.VMInfo, error)
	CreateSnapshot(context.Context, CreateSnapshotRequest) error
	RemoveSnapshot(context.Context, RemoveSnapshotRequest) error
	RevertToSnapshot(context.Context, RevertToSnapshotRequest) error
	PowerOn(context.Context, PowerOnRequest) error
	ValidatePrivileges(ctx context.Context, vmMoid string, privileges []string) error
}

// VMManager provides snapshot and power operations on virtual machines.
type VMManager struct {
	gc          *govmomi.Client
	username    string
	taskTimeout time.Duration
}

// NewVMManager creates a new VM manager.
//
// Parameters:
//   - gc: an authenticated govmomi client.
//   - username: the user the client logged in with, used for privilege checks.
func NewVMManager(gc *govmomi.Client, username string) *VMManager {
	return &VMManager{gc: gc, username: username}
}

// WithTaskTimeout bounds every task wait. Zero waits until the task terminates.
func (m *VMManager) WithTaskTimeout(timeout time.Duration) *VMManager {
	m.taskTimeout = timeout
	return m
}

// Info retrieves the summary and the snapshot tree of a virtual machine.
func (m *VMManager) Info(ctx context.Context, vmMoid string) (*models.VMInfo, error) {
	vm := m.vmFromMoid(vmMoid)

	var mvm mo.VirtualMachine
	if err := vm.Properties(ctx, vm.Reference(), []string{"summary", "snapshot"}, &mvm); err != nil {
		return nil, fmt.Errorf("failed to retrieve VM properties: %w", err)
	}

	info := &models.VMInfo{
		Name:       mvm.Summary.Config.Name,
		GuestOS:    mvm.Summary.Config.GuestFullName,
		PowerState: string(mvm.Summary.Runtime.PowerState),
		Snapshots:  snapshot.NewForest(),
	}

	if mvm.Summary.Guest != nil {
		info.IPAddress = mvm.Summary.Guest.IpAddress
	}

	if mvm.Snapshot != nil {
		info.Snapshots = NewForest(mvm.Snapshot.RootSnapshotList)
		if mvm.Snapshot.CurrentSnapshot != nil {
			info.Current = snapshot.Ref(mvm.Snapshot.CurrentSnapshot.Value)
		}
	}

	return info, nil
}

// CreateSnapshot creates a snapshot of a virtual machine, capturing its current state.
//
// Parameters:
//   - ctx: the context for the API request.
//   - req: the CreateSnapshotRequest containing:
//   - VmMoid: the managed object ID of the VM.
//   - SnapshotName: the name for the new snapshot.
//   - Description: a description of the snapshot.
//   - Memory: if true, includes the VM's memory state in the snapshot.
//   - Quiesce: if true, attempts to quiesce the guest file system before taking the snapshot.
//
// Returns an error if:
//   - the snapshot task creation fails,
//   - or the snapshot operation fails during execution.
func (m *VMManager) CreateSnapshot(ctx context.Context, req CreateSnapshotRequest) error {
	vm := m.vmFromMoid(req.VmMoid)

	task, err := vm.CreateSnapshot(ctx, req.SnapshotName, req.Description, req.Memory, req.Quiesce)
	if err != nil {
		return fmt.Errorf("failed to create snapshot task: %w", err)
	}

	return m.wait(ctx, task, "create snapshot")
}

// RemoveSnapshot deletes a single snapshot node from a virtual machine.
// Unlike removal by name, the node is addressed by identity so duplicate names are never ambiguous.
//
// Returns an error if:
//   - the snapshot deletion task cannot be initiated,
//   - or the snapshot deletion fails during execution.
func (m *VMManager) RemoveSnapshot(ctx context.Context, req RemoveSnapshotRequest) error {
	res, err := methods.RemoveSnapshot_Task(ctx, m.gc.Client, &types.RemoveSnapshot_Task{
		This:           snapshotMoref(req.SnapshotRef),
		RemoveChildren: req.RemoveChildren,
	})
	if err != nil {
		return fmt.Errorf("failed to initiate delete snapshot task: %w", err)
	}

	return m.wait(ctx, object.NewTask(m.gc.Client, res.Returnval), "remove snapshot")
}

// RevertToSnapshot reverts a virtual machine to the given snapshot node.
func (m *VMManager) RevertToSnapshot(ctx context.Context, req RevertToSnapshotRequest) error {
	res, err := methods.RevertToSnapshot_Task(ctx, m.gc.Client, &types.RevertToSnapshot_Task{
		This: snapshotMoref(req.SnapshotRef),
	})
	if err != nil {
		return fmt.Errorf("failed to initiate revert snapshot task: %w", err)
	}

	return m.wait(ctx, object.NewTask(m.gc.Client, res.Returnval), "revert to snapshot")
}

// PowerOn powers on a virtual machine.
func (m *VMManager) PowerOn(ctx context.Context, req PowerOnRequest) error {
	vm := m.vmFromMoid(req.VmMoid)

	task, err := vm.PowerOn(ctx)
	if err != nil {
		return fmt.Errorf("failed to initiate power on task: %w", err)
	}

	return m.wait(ctx, task, "power on")
}

// wait blocks until the task reaches a terminal state.
func (m *VMManager) wait(ctx context.Context, task *object.Task, operation string) error {
	if m.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.taskTimeout)
		defer cancel()
	}

	zap.S().Named("vmware").Debugw("waiting for task", "task", task.Reference().Value, "operation", operation)

	if _, err := task.WaitForResult(ctx); err != nil {
		return srvErrors.NewTaskFailedError(operation, err)
	}

	return nil
}
