// Package data reads and writes game data (saves, preferences, replays)
// inside a per-game data location.
//
// Every path given to a Store is resolved inside its root; paths that would
// escape the root are rejected.
package data

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrInvalidPath is returned for empty paths and paths leaving the data root.
var ErrInvalidPath = errors.New("data: invalid path")

// Store is a sandboxed view of the game data location
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore creates a store rooted at dir on the OS filesystem, creating dir
// if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &Store{
		fs:   afero.NewBasePathFs(afero.NewOsFs(), dir),
		root: dir,
	}, nil
}

// NewGameStore creates a store in the platform config location for gameID.
func NewGameStore(gameID string) (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return NewStore(filepath.Join(base, gameID))
}

// NewFSStore wraps an existing filesystem. Used with afero.NewMemMapFs in tests.
func NewFSStore(fs afero.Fs) *Store {
	return &Store{fs: fs, root: "/"}
}

// Root returns the directory the store resolves paths against
func (s *Store) Root() string {
	return s.root
}

// resolve joins path elements into an absolute path inside the store
func resolve(elem ...string) (string, error) {
	joined := filepath.Join(elem...)
	if joined == "" || !filepath.IsLocal(joined) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, joined)
	}
	return string(filepath.Separator) + joined, nil
}

// ReadJSON decodes the JSON file at path into v
func (s *Store) ReadJSON(v any, path ...string) error {
	data, err := s.read(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Join(path...), err)
	}
	return nil
}

// WriteJSON encodes v as indented JSON to the file at path
func (s *Store) WriteJSON(v any, path ...string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Join(path...), err)
	}
	return s.write(path, data)
}

// ReadXML decodes the XML file at path into v
func (s *Store) ReadXML(v any, path ...string) error {
	data, err := s.read(path)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Join(path...), err)
	}
	return nil
}

// WriteXML encodes v as indented XML to the file at path
func (s *Store) WriteXML(v any, path ...string) error {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Join(path...), err)
	}
	return s.write(path, append([]byte(xml.Header), data...))
}

// HasFile reports whether a regular file exists at path
func (s *Store) HasFile(path ...string) (bool, error) {
	p, err := resolve(path...)
	if err != nil {
		return false, err
	}
	info, err := s.fs.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// HasDirectory reports whether a directory exists at path
func (s *Store) HasDirectory(path ...string) (bool, error) {
	p, err := resolve(path...)
	if err != nil {
		return false, err
	}
	ok, err := afero.DirExists(s.fs, p)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// CreateDirectory creates the directory at path and any missing parents
func (s *Store) CreateDirectory(path ...string) error {
	p, err := resolve(path...)
	if err != nil {
		return err
	}
	return s.fs.MkdirAll(p, 0o755)
}

// Wipe removes everything inside the data location. The root stays.
func (s *Store) Wipe() error {
	root := string(filepath.Separator)
	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return fmt.Errorf("failed to list data dir: %w", err)
	}
	for _, e := range entries {
		if err := s.fs.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (s *Store) read(path []string) ([]byte, error) {
	p, err := resolve(path...)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(path...), err)
	}
	return data, nil
}

func (s *Store) write(path []string, data []byte) error {
	p, err := resolve(path...)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create parent of %s: %w", filepath.Join(path...), err)
	}
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Join(path...), err)
	}
	return nil
}
