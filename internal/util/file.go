package util

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	"github.com/natefinch/atomic"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9 ._-]+`)

// CheckFilePermissionsForExecution checks whether the given filePath owner, group and permissions
// are safe to use this file for execution by pedal2go.
func CheckFilePermissionsForExecution(filePath string) (bool, error) {
	var file = filePath

	file, err := filepath.EvalSymlinks(file)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(file)
	if os.IsNotExist(err) {
		return false, errors.New("file not found")
	}

	stat := info.Sys().(*syscall.Stat_t)
	if stat.Uid != 0 {
		return false, errors.New("owner is not root")
	}

	if stat.Gid != 0 {
		mode := info.Mode()
		groupWrite := mode & (os.FileMode(0o020))
		if groupWrite != 0 {
			return false, errors.New("group is not root but has write permission")
		}
	}

	otherWrite := info.Mode() & (os.FileMode(0o002))
	if otherWrite != 0 {
		return false, errors.New("others have write permission")
	}

	return true, nil
}

func ReadIntFromFile(path string) (value int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := string(data)
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	text = strings.TrimSpace(text)
	value, err = strconv.Atoi(text)
	return value, err
}

// WriteIntToFile writes a single integer to a file path
func WriteIntToFile(value int, path string) error {
	valueAsString := fmt.Sprintf("%d", value)
	return os.WriteFile(path, []byte(valueAsString), 0644)
}

// WriteFileAtomic writes the given data to a temporary file and atomically
// replaces the target path, so a concurrent reader never observes a
// partially written file.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// SanitizeFileName reduces the given display name to a filesystem-safe token.
// Returns fallback if nothing safe remains.
func SanitizeFileName(name string, fallback string) string {
	sanitized := unsafeFileChars.ReplaceAllString(name, "")
	sanitized = strings.TrimSpace(sanitized)
	sanitized = strings.Trim(sanitized, ".")
	if len(sanitized) <= 0 {
		return fallback
	}
	return sanitized
}
