package config

import "time"

//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . Configuration VSphere Workflow Log

// Configuration holds everything a single run of the tool needs.
type Configuration struct {
	VSphere  VSphere  `debugmap:"visible"`
	Workflow Workflow `debugmap:"visible"`
	Log      Log      `debugmap:"visible"`
}

// VSphere identifies the vCenter to log into and the VM to work on.
type VSphere struct {
	Server   string `flag:"server" validate:"required" debugmap:"visible"`
	VMName   string `flag:"vm-name" validate:"required" debugmap:"visible"`
	Username string `flag:"username" validate:"required" debugmap:"visible"`
	Password string `flag:"password" validate:"required" debugmap:"sensitive"`
	Insecure bool   `flag:"insecure" default:"true" debugmap:"visible"`
}

type Workflow struct {
	// TaskTimeout bounds each wait on a remote task. Zero waits forever.
	TaskTimeout     time.Duration `flag:"task-timeout" default:"0s" debugmap:"visible"`
	CheckPrivileges bool          `flag:"check-privileges" default:"false" debugmap:"visible"`
}

type Log struct {
	Level  string `flag:"log-level" default:"warn" validate:"oneof=debug info warn error" debugmap:"visible"`
	Format string `flag:"log-format" default:"console" validate:"oneof=console json" debugmap:"visible"`
}
