//go:build !linux && !darwin

package sysprim

import (
	"strconv"
	"syscall"
)

// ErrnoString translates a native error code into a human-readable
// description. Unknown codes still produce a usable generic description;
// this function never fails.
func ErrnoString(code int) string {
	if code == 0 {
		return "success"
	}
	return "errno " + strconv.Itoa(code) + " (" + syscall.Errno(code).Error() + ")"
}
