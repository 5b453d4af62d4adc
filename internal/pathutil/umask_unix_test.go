//go:build !windows

package pathutil

import "syscall"

func umask(mask int) int {
	return syscall.Umask(mask)
}
