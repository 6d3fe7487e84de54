// Package persistence stores values as gob files.
package persistence

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// SaveGob encodes object with gob and writes it to filePath, creating missing
// directories. The data is written to a temporary file in the same directory
// and renamed into place, so readers never observe a partial file.
func SaveGob(filePath string, object any) (err error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				slog.Warn("Failed to remove temporary file", "path", tmpPath, "error", removeErr)
			}
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := gob.NewEncoder(w).Encode(object); err != nil {
		return fmt.Errorf("failed to gob encode to file %s: %w", filePath, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync file %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", filePath, err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", filePath, err)
	}
	return nil
}

// LoadGob decodes the gob file at filePath into objectPointer.
// If the file does not exist the returned error matches os.ErrNotExist,
// allowing callers to handle fresh starts gracefully.
func LoadGob(filePath string, objectPointer any) error {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file %s: %w", filePath, os.ErrNotExist)
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("Failed to close file", "path", filePath, "error", closeErr)
		}
	}()

	if err := gob.NewDecoder(bufio.NewReader(file)).Decode(objectPointer); err != nil {
		return fmt.Errorf("failed to gob decode from file %s: %w", filePath, err)
	}
	return nil
}
