package vmware

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kubev2v/vm-snapshots/internal/models"
	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
)

// SnapshotWorkBuilder builds the sequence of WorkUnits of each state-changing operation.
// Every unit issues exactly one remote task and waits for it.
type SnapshotWorkBuilder struct {
	operator        VMOperator
	checkPrivileges bool
}

func NewSnapshotWorkBuilder(operator VMOperator) *SnapshotWorkBuilder {
	return &SnapshotWorkBuilder{
		operator: operator,
	}
}

// WithPrivilegeCheck prepends a privilege validation unit to every workflow.
func (b *SnapshotWorkBuilder) WithPrivilegeCheck(enabled bool) *SnapshotWorkBuilder {
	b.checkPrivileges = enabled
	return b
}

// Create builds the units creating a snapshot named name, without memory and without quiescing.
func (b *SnapshotWorkBuilder) Create(vm models.VMTarget, name string) []models.WorkUnit {
	return b.withValidation(vm, models.OperationCreate, b.createSnapshot(vm, name))
}

// Delete builds the units removing the given node only, its children are kept.
func (b *SnapshotWorkBuilder) Delete(vm models.VMTarget, node snapshot.Node) []models.WorkUnit {
	return b.withValidation(vm, models.OperationDelete, b.removeSnapshot(vm, node))
}

// Switch builds the units reverting to the given node and then powering the VM on.
func (b *SnapshotWorkBuilder) Switch(vm models.VMTarget, node snapshot.Node) []models.WorkUnit {
	return b.withValidation(vm, models.OperationSwitch, b.revertToSnapshot(vm, node), b.powerOn(vm))
}

func (b *SnapshotWorkBuilder) withValidation(vm models.VMTarget, op models.Operation, units ...models.WorkUnit) []models.WorkUnit {
	if !b.checkPrivileges {
		return units
	}
	return append([]models.WorkUnit{b.validate(vm, op)}, units...)
}

func (b *SnapshotWorkBuilder) validate(vm models.VMTarget, op models.Operation) models.WorkUnit {
	return models.WorkUnit{
		Work: func() func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				zap.S().Named("snapshot_workflow").Infow("validate privileges on VM", "vm", vm.Name, "operation", op)

				if err := b.operator.ValidatePrivileges(ctx, vm.Moid, models.RequiredPrivileges[op]); err != nil {
					zap.S().Named("snapshot_workflow").Errorw("validation failed", "vm", vm.Name, "error", err)
					return nil, err
				}

				return nil, nil
			}
		},
	}
}

func (b *SnapshotWorkBuilder) createSnapshot(vm models.VMTarget, name string) models.WorkUnit {
	return models.WorkUnit{
		Start: fmt.Sprintf("Creating snapshot %s for VM %s", name, vm.Name),
		Done:  fmt.Sprintf("New snapshot %s created successfully.", name),
		Work: func() func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				zap.S().Named("snapshot_workflow").Infow("creating VM snapshot", "vm", vm.Name, "snapshot", name)
				req := CreateSnapshotRequest{
					VmMoid:       vm.Moid,
					SnapshotName: name,
					Description:  "",
					Memory:       false,
					Quiesce:      false,
				}

				if err := b.operator.CreateSnapshot(ctx, req); err != nil {
					zap.S().Named("snapshot_workflow").Errorw("failed to create VM snapshot", "vm", vm.Name, "error", err)
					return nil, err
				}

				zap.S().Named("snapshot_workflow").Infow("VM snapshot created", "vm", vm.Name, "snapshot", name)

				return nil, nil
			}
		},
	}
}

func (b *SnapshotWorkBuilder) removeSnapshot(vm models.VMTarget, node snapshot.Node) models.WorkUnit {
	return models.WorkUnit{
		Start: fmt.Sprintf("Deleting snapshot %s...", node.Name),
		Done:  fmt.Sprintf("%s deleted successfully.", node.Name),
		Work: func() func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				zap.S().Named("snapshot_workflow").Infow("removing VM snapshot", "vm", vm.Name, "snapshot", node.Name, "ref", node.Ref)

				req := RemoveSnapshotRequest{
					VmMoid:         vm.Moid,
					SnapshotRef:    node.Ref,
					RemoveChildren: false,
				}

				if err := b.operator.RemoveSnapshot(ctx, req); err != nil {
					zap.S().Named("snapshot_workflow").Errorw("failed to remove VM snapshot", "vm", vm.Name, "error", err)
					return nil, err
				}

				zap.S().Named("snapshot_workflow").Infow("VM snapshot removed", "vm", vm.Name, "snapshot", node.Name)

				return nil, nil
			}
		},
	}
}

func (b *SnapshotWorkBuilder) revertToSnapshot(vm models.VMTarget, node snapshot.Node) models.WorkUnit {
	return models.WorkUnit{
		Start: fmt.Sprintf("Switching to snapshot %s...", node.Name),
		Done:  fmt.Sprintf("Switched to snapshot %s successfully.", node.Name),
		Work: func() func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				zap.S().Named("snapshot_workflow").Infow("reverting VM to snapshot", "vm", vm.Name, "snapshot", node.Name, "ref", node.Ref)

				req := RevertToSnapshotRequest{
					VmMoid:      vm.Moid,
					SnapshotRef: node.Ref,
				}

				if err := b.operator.RevertToSnapshot(ctx, req); err != nil {
					zap.S().Named("snapshot_workflow").Errorw("failed to revert VM to snapshot", "vm", vm.Name, "error", err)
					return nil, err
				}

				return nil, nil
			}
		},
	}
}

func (b *SnapshotWorkBuilder) powerOn(vm models.VMTarget) models.WorkUnit {
	return models.WorkUnit{
		Done: fmt.Sprintf("VM %s powered on successfully.", vm.Name),
		Work: func() func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				zap.S().Named("snapshot_workflow").Infow("powering on VM", "vm", vm.Name)

				if err := b.operator.PowerOn(ctx, PowerOnRequest{VmMoid: vm.Moid}); err != nil {
					zap.S().Named("snapshot_workflow").Errorw("failed to power on VM", "vm", vm.Name, "error", err)
					return nil, err
				}

				return nil, nil
			}
		},
	}
}
