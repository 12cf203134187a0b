// Package sysinfo probes host resources used for model selection. Probes are
// best-effort: an unsupported platform reports 0 GB rather than an error, and
// selection treats 0 as the lowest tier.
package sysinfo

import "runtime"

// MemGB returns total physical memory in whole gigabytes, or 0 when it cannot
// be determined on this platform.
func MemGB() int { return memGB() }

// Arch returns the host architecture string written into the env file.
func Arch() string { return runtime.GOARCH }
