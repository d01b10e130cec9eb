package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultHighScoreFile is the high score file name, relative to the
// working directory.
const DefaultHighScoreFile = "highscore.dat"

// ErrNoHighScore is returned by Load when no high score has been saved yet.
var ErrNoHighScore = errors.New("storage: no high score saved")

// HighScoreStore persists a single integer high score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the high score as decimal ASCII in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
// An empty path means DefaultHighScoreFile in the working directory.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultHighScoreFile
	}
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the saved high score. Surrounding whitespace is ignored.
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot parse high score %q: %w", f.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", score, f.path)
	}
	return score, nil
}

// highScoreFileMode is the permission of the saved high score file.
const highScoreFileMode = 0o644

// Save overwrites the high score. The value is written to a temporary file
// in the same directory and renamed over the old one.
func (f *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: cannot save negative high score %d", score)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	// CreateTemp opens files 0600; keep the mode of a plain written file.
	if err := tmp.Chmod(highScoreFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot set high score permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return fmt.Errorf("storage: cannot replace high score: %w", err)
	}
	return nil
}

// Reset deletes the saved high score. Resetting a missing file is not an error.
func (f *FileStore) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory HighScoreStore, used when no file should be
// touched.
type MemoryStore struct {
	Score   int
	Saved   bool
	Saves   int   // Number of successful Save calls
	SaveErr error // Returned by Save when set
	LoadErr error // Returned by Load when set
}

// Load returns the stored score, or ErrNoHighScore if nothing was saved.
func (m *MemoryStore) Load() (int, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	if !m.Saved {
		return 0, ErrNoHighScore
	}
	return m.Score, nil
}

// Save stores the score.
func (m *MemoryStore) Save(score int) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Score = score
	m.Saved = true
	m.Saves++
	return nil
}

var (
	_ HighScoreStore = (*FileStore)(nil)
	_ HighScoreStore = (*MemoryStore)(nil)
)
