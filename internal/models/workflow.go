package models

import (
	"context"
)

// Operation is one of the entries of the operations menu.
type Operation string

const (
	OperationList   Operation = "snaps_list"
	OperationCreate Operation = "snaps_create"
	OperationSwitch Operation = "snaps_switch"
	OperationDelete Operation = "snaps_delete"
	OperationQuit   Operation = "quit"
)

// Label returns the menu label of the operation.
func (o Operation) Label() string {
	switch o {
	case OperationList:
		return "List Snapshots"
	case OperationCreate:
		return "Create Snapshot"
	case OperationSwitch:
		return "Switch to Snapshot"
	case OperationDelete:
		return "Delete Snapshot"
	case OperationQuit:
		return "Quit"
	default:
		return string(o)
	}
}

// Operations lists the menu entries in display order.
var Operations = []Operation{
	OperationList,
	OperationCreate,
	OperationSwitch,
	OperationDelete,
	OperationQuit,
}

// RequiredPrivileges lists the vSphere privileges each state-changing operation needs on the VM.
var RequiredPrivileges = map[Operation][]string{
	OperationCreate: {"VirtualMachine.State.CreateSnapshot"},
	OperationDelete: {"VirtualMachine.State.RemoveSnapshot"},
	OperationSwitch: {"VirtualMachine.State.RevertToSnapshot", "VirtualMachine.Interact.PowerOn"},
}

// WorkUnit represents a single remote step of a snapshot workflow.
// Start is printed before the work runs and Done after it succeeds.
type WorkUnit struct {
	Start string
	Done  string
	Work  func() func(ctx context.Context) (any, error)
}
