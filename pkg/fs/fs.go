package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnsureDir creates the directory (and any parents) if it does not
// exist. An existing regular file at the path is an error.
func EnsureDir(dirPath string) error {
	stat, err := os.Stat(dirPath)
	if err == nil {
		if !stat.IsDir() {
			return errors.New("path exists but is not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("error in creating all directories %s : %w", dirPath, err)
	}
	return nil
}

// IsWritableDir verifies the directory accepts new files by creating
// and removing a scratch file.
func IsWritableDir(dirPath string) error {
	scratch := filepath.Join(dirPath, ".write_test")
	f, err := os.Create(scratch)
	if err != nil {
		return fmt.Errorf("directory is not writable: %s : %w", dirPath, err)
	}
	f.Close()
	return os.Remove(scratch)
}

// ListByExtension returns the files directly under dirPath whose names
// end with the given extension, sorted by name.
func ListByExtension(dirPath, extension string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s : %w", dirPath, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
