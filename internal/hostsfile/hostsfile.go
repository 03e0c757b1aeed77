package hostsfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// BackupSuffix is appended to the hosts path for the rolling
// pre-update backup.
const BackupSuffix = ".update-hosts.bak"

// Path returns the hosts file to rewrite: the configured override if
// set, otherwise the platform default.
func Path(override string) string {
	if override != "" {
		return override
	}
	if runtime.GOOS == "windows" {
		root := os.Getenv("SystemRoot")
		if root == "" {
			root = `C:\Windows`
		}
		return filepath.Join(root, `System32\drivers\etc\hosts`)
	}
	return "/etc/hosts"
}

// ReadLines returns the raw lines of path. A missing file is an empty
// base, not an error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// Write backs up the current hosts file, then replaces it atomically
// via a temp file rename so a failed run never leaves a truncated
// hosts file behind.
func Write(path string, data []byte) error {
	if current, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(BackupPath(path), current, 0644); err != nil {
			return fmt.Errorf("failed to back up %s: %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hosts-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %v", path, err)
	}
	return nil
}

// Restore puts the pre-update backup back in place.
func Restore(path string) error {
	backup, err := os.ReadFile(BackupPath(path))
	if err != nil {
		return fmt.Errorf("no backup to restore: %v", err)
	}
	return Write(path, backup)
}

func BackupPath(path string) string {
	return path + BackupSuffix
}
