//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package flush

import "log"

func Flush() error {
	log.Println("Resolver cache flush not supported on this platform")
	return nil
}
