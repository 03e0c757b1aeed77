//go:build !linux
// +build !linux

package netcheck

// Route table inspection is only wired up on Linux.
func defaultRoutePresent() bool {
	return true
}
