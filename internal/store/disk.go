package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore stores audio as <text>.mp3 files under a single directory.
// Filenames carry the item text verbatim, so the filesystem must support
// UTF-8 names. The learning app consumes these files directly; keys are
// never hashed or compressed.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the output directory if needed and returns a store
// rooted at it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Path returns the output path for the given text.
func (s *DiskStore) Path(text string) string {
	return filepath.Join(s.dir, text+".mp3")
}

// Exists reports whether an audio file for the given text is on disk.
func (s *DiskStore) Exists(text string) bool {
	_, err := os.Stat(s.Path(text))
	return err == nil
}

// Write stores audio for the given text, replacing any existing file.
// A failed write never leaves a partial <text>.mp3 behind.
func (s *DiskStore) Write(text string, data []byte) error {
	return s.writeFile(s.Path(text), data)
}

// Count returns the number of .mp3 files in the output directory.
func (s *DiskStore) Count() (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.mp3"))
	if err != nil {
		return 0, fmt.Errorf("failed to list output directory: %w", err)
	}
	return len(matches), nil
}

func (s *DiskStore) writeFile(path string, data []byte) error {
	// Write to temp file first, then rename (atomic on most systems)
	tempPath := path + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}

	_, err = file.Write(data)
	closeErr := file.Close()

	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if closeErr != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close audio file: %w", closeErr)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to move audio file into place: %w", err)
	}
	return nil
}

// Ensure DiskStore implements the Store interface
var _ Store = (*DiskStore)(nil)
