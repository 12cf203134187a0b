//go:build darwin

package sysinfo

import (
	"os/exec"
	"strconv"
	"strings"
)

func memGB() int {
	out, err := exec.Command("sysctl", "-n", "hw.memsize").Output()
	if err != nil {
		return 0
	}
	bytes, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0
	}
	return int(bytes / (1 << 30))
}
