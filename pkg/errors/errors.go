package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
	Name string
}

func NewResourceNotFoundError(kind, name string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, Name: name}
}

func NewVMNotFoundError(name string) *ResourceNotFoundError {
	return NewResourceNotFoundError("vm", name)
}

func (e *ResourceNotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

func NewVCenterError(err error) *VCenterError {
	vErr := &VCenterError{msg: "unknown error", err: err}
	if strings.Contains(err.Error(), "Login failure") ||
		(strings.Contains(err.Error(), "incorrect") && strings.Contains(err.Error(), "password")) {
		vErr.msg = "invalid credentials"
	} else {
		vErr.msg = err.Error()
	}
	return vErr
}

// VCenterError indicates the connection or the login to vCenter failed.
type VCenterError struct {
	msg string
	err error
}

func (e *VCenterError) Error() string {
	return e.msg
}

func (e *VCenterError) Unwrap() error {
	return e.err
}

func IsVCenterError(err error) bool {
	var e *VCenterError
	return errors.As(err, &e)
}

// TaskFailedError indicates a vSphere task reached the error state or could not be awaited.
type TaskFailedError struct {
	Operation string
	Err       error
}

func NewTaskFailedError(operation string, err error) *TaskFailedError {
	return &TaskFailedError{Operation: operation, Err: err}
}

func (e *TaskFailedError) Error() string {
	return fmt.Sprintf("%s task failed: %v", e.Operation, e.Err)
}

func (e *TaskFailedError) Unwrap() error {
	return e.Err
}

func IsTaskFailedError(err error) bool {
	var e *TaskFailedError
	return errors.As(err, &e)
}

// InconsistentSnapshotTreeError indicates the current snapshot pointer
// does not match any node of the snapshot tree.
type InconsistentSnapshotTreeError struct {
	Ref string
}

func NewInconsistentSnapshotTreeError(ref string) *InconsistentSnapshotTreeError {
	return &InconsistentSnapshotTreeError{Ref: ref}
}

func (e *InconsistentSnapshotTreeError) Error() string {
	return fmt.Sprintf("current snapshot %s not found in snapshot tree", e.Ref)
}

func IsInconsistentSnapshotTreeError(err error) bool {
	var e *InconsistentSnapshotTreeError
	return errors.As(err, &e)
}

// ConfigurationError indicates invalid or missing command line configuration.
type ConfigurationError struct {
	Problems []string
}

func NewConfigurationError(problems ...string) *ConfigurationError {
	return &ConfigurationError{Problems: problems}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}
