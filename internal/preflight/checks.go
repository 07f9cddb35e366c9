package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckReadableDir verifies that path is a directory that can be listed.
func CheckReadableDir(name, path string) Result {
	result := Result{Name: name, Path: path}
	info, err := os.Stat(path)
	if err != nil {
		result.Detail = statDetail(err)
		return result
	}
	if !info.IsDir() {
		result.Detail = "error: is not a directory"
		return result
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		result.Detail = fmt.Sprintf("error: insufficient permissions: %v", err)
		return result
	}
	result.Passed = true
	result.Detail = "read ok"
	return result
}

// CheckBaseline verifies that the baseline key list is a regular file that
// can be read. When update is set the merged list is written back through a
// temp file in the same directory, so that directory must be writable too.
func CheckBaseline(name, path string, update bool) Result {
	result := Result{Name: name, Path: path}
	info, err := os.Stat(path)
	if err != nil {
		result.Detail = statDetail(err)
		return result
	}
	if !info.Mode().IsRegular() {
		result.Detail = "error: is not a regular file"
		return result
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		result.Detail = fmt.Sprintf("error: unreadable: %v", err)
		return result
	}
	if !update {
		result.Passed = true
		result.Detail = "read ok (baseline updates disabled)"
		return result
	}
	if err := unix.Access(filepath.Dir(path), unix.W_OK|unix.X_OK); err != nil {
		result.Detail = fmt.Sprintf("error: directory not writable, baseline cannot be updated: %v", err)
		return result
	}
	result.Passed = true
	result.Detail = "read/write ok"
	return result
}

// CheckOutputDir verifies that path is writable, or that it can be created
// beneath its nearest existing ancestor.
func CheckOutputDir(name, path string) Result {
	result := Result{Name: name, Path: path}
	target := path
	for {
		info, err := os.Stat(target)
		if err == nil {
			if !info.IsDir() {
				result.Detail = fmt.Sprintf("error: %s is not a directory", target)
				return result
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			result.Detail = statDetail(err)
			return result
		}
		parent := filepath.Dir(target)
		if parent == target {
			result.Detail = "error: no existing ancestor"
			return result
		}
		target = parent
	}
	if err := unix.Access(target, unix.W_OK|unix.X_OK); err != nil {
		result.Detail = fmt.Sprintf("error: %s not writable: %v", target, err)
		return result
	}
	result.Passed = true
	if target == path {
		result.Detail = "write ok"
	} else {
		result.Detail = fmt.Sprintf("will be created under %s", target)
	}
	return result
}

func statDetail(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "error: does not exist"
	}
	return fmt.Sprintf("error: stat: %v", err)
}
