package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

var PidFile = "/var/run/update-hosts.pid"

func GetDaemonStatus() (bool, error) {
	pid, err := readPidFile()
	if err != nil {
		return false, nil
	}
	if isProcessRunning(pid) {
		return true, nil
	}
	// Clean up stale PID file
	os.Remove(PidFile)
	return false, nil
}

func CreatePidFile() error {
	data := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(PidFile, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %v", err)
	}
	return nil
}

func RemovePidFile() error {
	if _, err := os.Stat(PidFile); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(PidFile)
}

func readPidFile() (int, error) {
	data, err := os.ReadFile(PidFile)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
