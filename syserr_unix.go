//go:build linux || darwin

package sysprim

import (
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// ErrnoString translates a native error code into a human-readable
// description. Unknown codes still produce a usable generic description;
// this function never fails.
func ErrnoString(code int) string {
	if code == 0 {
		return "success"
	}
	e := syscall.Errno(code)
	if name := unix.ErrnoName(e); name != "" {
		return name + " (" + e.Error() + ")"
	}
	return "errno " + strconv.Itoa(code) + " (" + e.Error() + ")"
}
