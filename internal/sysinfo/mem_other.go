//go:build !linux && !darwin

package sysinfo

// Unsupported platform: 0 is the documented "could not determine" sentinel.
func memGB() int { return 0 }
