//go:build !linux && !darwin

package sysprim

import "os"

// PageSize returns the system memory page size in bytes.
func PageSize() uintptr {
	return uintptr(os.Getpagesize())
}
