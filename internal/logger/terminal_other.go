//go:build !linux

package logger

// isTerminal is a conservative fallback for non-Linux builds; the bootstrap
// only ships in Linux containers, so color is simply disabled elsewhere.
func isTerminal(fd uintptr) bool {
	return false
}
