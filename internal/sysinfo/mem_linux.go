//go:build linux

package sysinfo

import "os"

func memGB() int {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()
	gb, err := parseMemInfo(f)
	if err != nil {
		return 0
	}
	return gb
}
