package services

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/kubev2v/vm-snapshots/internal/models"
	"github.com/kubev2v/vm-snapshots/pkg/console"
	srvErrors "github.com/kubev2v/vm-snapshots/pkg/errors"
	"github.com/kubev2v/vm-snapshots/pkg/snapshot"
	"github.com/kubev2v/vm-snapshots/pkg/vmware"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// Prompter is the interactive side of the workflow.
type Prompter interface {
	Choose(options []console.Choice, prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	Ask(prompt string) (string, error)
}

// SnapshotService runs one snapshot operation on a single VM.
// It holds no snapshot state: the VM info is fetched again for every operation.
type SnapshotService struct {
	operator vmware.VMOperator
	builder  *vmware.SnapshotWorkBuilder
	prompt   Prompter
	out      io.Writer
}

func NewSnapshotService(operator vmware.VMOperator, prompt Prompter, out io.Writer) *SnapshotService {
	return &SnapshotService{
		operator: operator,
		builder:  vmware.NewSnapshotWorkBuilder(operator),
		prompt:   prompt,
		out:      out,
	}
}

// WithPrivilegeCheck validates the user's privileges before any state-changing work.
func (s *SnapshotService) WithPrivilegeCheck(enabled bool) *SnapshotService {
	s.builder.WithPrivilegeCheck(enabled)
	return s
}

// Describe prints the VM properties banner, including the current snapshot.
func (s *SnapshotService) Describe(ctx context.Context, vm models.VMTarget) error {
	info, err := s.operator.Info(ctx, vm.Moid)
	if err != nil {
		return fmt.Errorf("failed to get VM info: %w", err)
	}

	current := "none"
	node, err := currentSnapshot(info)
	switch {
	case err != nil:
		zap.S().Named("snapshot_service").Warnw("inconsistent snapshot tree", "vm", vm.Name, "error", err)
		current = "unknown"
	case node != nil && node.Description != "":
		current = fmt.Sprintf("%s (%s)", node.Name, node.Description)
	case node != nil:
		current = node.Name
	}

	fmt.Fprintln(s.out, "VM Properties")
	fmt.Fprintln(s.out, "=============")
	fmt.Fprintf(s.out, "    Name       : %s\n", info.Name)
	fmt.Fprintf(s.out, "    Guest      : %s\n", info.GuestOS)
	fmt.Fprintf(s.out, "    State      : %s\n", info.PowerState)
	fmt.Fprintf(s.out, "    Snapshot   : %s\n", current)
	if info.IPAddress != "" {
		fmt.Fprintf(s.out, "    IP         : %s\n", info.IPAddress)
	}

	return nil
}

// SelectOperation shows the operations menu and returns the chosen operation.
func (s *SnapshotService) SelectOperation() (models.Operation, error) {
	fmt.Fprintln(s.out, "\nOperations")
	fmt.Fprintln(s.out, "==========")

	choices := make([]console.Choice, 0, len(models.Operations))
	for _, op := range models.Operations {
		choices = append(choices, console.Choice{Key: string(op), Label: op.Label()})
	}

	key, err := s.prompt.Choose(choices, "Choose your operation")
	if err != nil {
		return "", err
	}
	fmt.Fprintln(s.out)

	return models.Operation(key), nil
}

// Run executes a single operation.
func (s *SnapshotService) Run(ctx context.Context, op models.Operation, vm models.VMTarget) error {
	zap.S().Named("snapshot_service").Debugw("running operation", "operation", op, "vm", vm.Name)

	switch op {
	case models.OperationList:
		return s.List(ctx, vm)
	case models.OperationCreate:
		return s.Create(ctx, vm)
	case models.OperationDelete:
		return s.Delete(ctx, vm)
	case models.OperationSwitch:
		return s.Switch(ctx, vm)
	case models.OperationQuit:
		return nil
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// List prints every snapshot in depth-first pre-order.
func (s *SnapshotService) List(ctx context.Context, vm models.VMTarget) error {
	info, err := s.operator.Info(ctx, vm.Moid)
	if err != nil {
		return fmt.Errorf("failed to get VM info: %w", err)
	}

	entries := snapshot.Flatten(info.Snapshots)
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No snapshots stored on the server.")
		return nil
	}

	fmt.Fprintf(s.out, "List of Snapshots on %s:\n", vm.Name)

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Name", "Created", "Age"})
	table.SetAutoWrapText(false)
	for _, e := range entries {
		table.Append([]string{
			e.Name,
			e.CreateTime.Format(timeLayout),
			humanize.Time(e.CreateTime),
		})
	}
	table.Render()

	return nil
}

// Create asks for a name and creates a snapshot without memory and without quiescing.
func (s *SnapshotService) Create(ctx context.Context, vm models.VMTarget) error {
	name, err := s.prompt.Ask("Choose a name for new snapshot: ")
	if err != nil {
		return err
	}

	return s.runWork(ctx, models.OperationCreate, s.builder.Create(vm, name))
}

// Delete removes one chosen snapshot, keeping its children.
func (s *SnapshotService) Delete(ctx context.Context, vm models.VMTarget) error {
	node, err := s.chooseSnapshot(ctx, vm, "Choose snapshot to delete: ")
	if err != nil || node == nil {
		return err
	}

	ok, err := s.prompt.Confirm(fmt.Sprintf("Are you sure you want to delete %s?", node.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Delete operation canceled.")
		return nil
	}

	return s.runWork(ctx, models.OperationDelete, s.builder.Delete(vm, *node))
}

// Switch reverts the VM to one chosen snapshot and powers it on.
func (s *SnapshotService) Switch(ctx context.Context, vm models.VMTarget) error {
	node, err := s.chooseSnapshot(ctx, vm, "Choose snapshot to switch to: ")
	if err != nil || node == nil {
		return err
	}

	ok, err := s.prompt.Confirm(fmt.Sprintf("Are you sure you want to switch to %s?", node.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Switch operation canceled.")
		return nil
	}

	return s.runWork(ctx, models.OperationSwitch, s.builder.Switch(vm, *node))
}

// chooseSnapshot lets the user pick a snapshot by name. Duplicate names resolve
// to the first node in pre-order. A nil node with a nil error means there is
// nothing to choose from.
func (s *SnapshotService) chooseSnapshot(ctx context.Context, vm models.VMTarget, prompt string) (*snapshot.Node, error) {
	info, err := s.operator.Info(ctx, vm.Moid)
	if err != nil {
		return nil, fmt.Errorf("failed to get VM info: %w", err)
	}

	entries := snapshot.Flatten(info.Snapshots)
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No snapshots stored on the server.")
		return nil, nil
	}

	fmt.Fprintln(s.out, "List of available snapshots")
	fmt.Fprintln(s.out, "===========================")

	choices := make([]console.Choice, 0, len(entries))
	for _, e := range entries {
		choices = append(choices, console.Choice{Key: e.Name, Label: e.Name})
	}

	name, err := s.prompt.Choose(choices, prompt)
	if err != nil {
		return nil, err
	}

	nodes := snapshot.FindByName(info.Snapshots, name)
	if len(nodes) == 0 {
		return nil, srvErrors.NewResourceNotFoundError("snapshot", name)
	}
	if len(nodes) > 1 {
		zap.S().Named("snapshot_service").Infow("snapshot name is not unique, using the first match", "snapshot", name, "count", len(nodes))
	}

	return nodes[0], nil
}

// runWork runs the units in order and stops at the first failure.
func (s *SnapshotService) runWork(ctx context.Context, op models.Operation, units []models.WorkUnit) error {
	for _, unit := range units {
		if unit.Start != "" {
			fmt.Fprintln(s.out, unit.Start)
		}

		if _, err := unit.Work()(ctx); err != nil {
			fmt.Fprintf(s.out, "%s failed: %v\n", op.Label(), err)
			return fmt.Errorf("%s: %w", op.Label(), err)
		}

		if unit.Done != "" {
			fmt.Fprintln(s.out, unit.Done)
		}
	}
	return nil
}

// currentSnapshot resolves the VM's current snapshot pointer. It returns nil
// when the VM has no current snapshot and an error when the pointer matches
// no node. Several matches fall back to the first one.
func currentSnapshot(info *models.VMInfo) (*snapshot.Node, error) {
	if info.Current.IsZero() {
		return nil, nil
	}

	nodes := snapshot.FindByReference(info.Snapshots, info.Current)
	switch len(nodes) {
	case 0:
		return nil, srvErrors.NewInconsistentSnapshotTreeError(string(info.Current))
	case 1:
	default:
		zap.S().Named("snapshot_service").Warnw("current snapshot reference matches several snapshots", "ref", info.Current, "count", len(nodes))
	}

	return nodes[0], nil
}
