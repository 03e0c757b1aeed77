//go:build darwin
// +build darwin

package flush

import (
	"fmt"
	"os/exec"
)

// Flush clears the Directory Services cache and signals mDNSResponder
// to drop its own.
func Flush() error {
	if err := exec.Command("dscacheutil", "-flushcache").Run(); err != nil {
		return fmt.Errorf("dscacheutil -flushcache failed: %v", err)
	}
	if err := exec.Command("killall", "-HUP", "mDNSResponder").Run(); err != nil {
		return fmt.Errorf("failed to signal mDNSResponder: %v", err)
	}
	return nil
}
