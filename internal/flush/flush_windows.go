//go:build windows
// +build windows

package flush

import (
	"fmt"
	"os/exec"
)

func Flush() error {
	if err := exec.Command("ipconfig", "/flushdns").Run(); err != nil {
		return fmt.Errorf("ipconfig /flushdns failed: %v", err)
	}
	return nil
}
