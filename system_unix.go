//go:build linux || darwin

package sysprim

import "golang.org/x/sys/unix"

// PageSize returns the system memory page size in bytes.
func PageSize() uintptr {
	return uintptr(unix.Getpagesize())
}
