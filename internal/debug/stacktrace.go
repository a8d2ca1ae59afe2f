package debug

import "runtime"

// DumpStacktrace returns the stacks of all goroutines.
func DumpStacktrace() string {
	for size := 64 * 1024; ; size *= 2 {
		buf := make([]byte, size)
		if n := runtime.Stack(buf, true); n < size {
			return string(buf[:n])
		}
	}
}
