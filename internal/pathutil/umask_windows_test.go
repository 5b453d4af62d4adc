//go:build windows

package pathutil

func umask(mask int) int {
	return 0
}
