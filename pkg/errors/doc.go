// Package errors provides custom error types for vm-snapshots.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌───────────────────────────────┬──────┬──────────────────────────────────────┐
//	│ Error Type                    │ Exit │ Description                          │
//	├───────────────────────────────┼──────┼──────────────────────────────────────┤
//	│ VCenterError                  │ 2    │ vCenter connection/auth failure      │
//	│ ResourceNotFoundError         │ 3    │ Named VM absent from the inventory   │
//	│ ConfigurationError            │ 4    │ Missing or invalid flags             │
//	│ TaskFailedError               │ 1    │ Remote snapshot/power task failed    │
//	│ InconsistentSnapshotTreeError │ -    │ Current pointer matches no snapshot  │
//	└───────────────────────────────┴──────┴──────────────────────────────────────┘
//
// # ResourceNotFoundError
//
// Indicates a named object was not found in the vCenter inventory. The run
// command fails fast with it when the VM cannot be resolved.
//
// Constructors:
//   - NewResourceNotFoundError(kind, name string)
//   - NewVMNotFoundError(name string)
//
// # VCenterError
//
// Wraps errors from vCenter connections with user-friendly messages.
// Automatically detects login failures and credential issues.
//
// Constructor:
//   - NewVCenterError(err error) - Wraps and interprets the underlying error
//
// Error detection:
//   - "Login failure" or "incorrect password" → "invalid credentials"
//   - Other errors → Original error message
//
// # TaskFailedError
//
// Wraps the failure of a vSphere task (create, remove, revert, power on).
// The Operation field names the task, the wrapped error carries the fault
// reported by the server.
//
// Constructor:
//   - NewTaskFailedError(operation string, err error)
//
// # InconsistentSnapshotTreeError
//
// Reported when the VM's current snapshot pointer does not match any node of
// its snapshot tree. It is never fatal: callers log it and carry on.
//
// # ConfigurationError
//
// Collects every configuration problem found while validating flags.
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	wrapped := fmt.Errorf("lookup failed: %w", errors.NewVMNotFoundError("web-01"))
//	errors.IsResourceNotFoundError(wrapped) // returns true
package errors
