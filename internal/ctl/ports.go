package ctl

import (
	"net"
	"strconv"
	"time"
)

// isPortBusy reports whether something already listens on host:port.
// Try connecting; if it succeeds, someone is listening.
func isPortBusy(host string, port int) (bool, string) {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), 200*time.Millisecond)
	if err == nil {
		_ = conn.Close()
		return true, "tcp listener detected"
	}
	return false, ""
}
