package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tshono/ChromePie/internal/logging/events"
)

const appName = "chromepie"

// DefaultPath is the preference file used when none is configured.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "prefs.yaml")
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

func formatFor(path string) format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return formatTOML
	}
	return formatYAML
}

// Store is a file-backed key/value preference store shared with whatever
// edits the file (the settings UI, a text editor). Reads take a shared lock
// and writes an exclusive one so a reload never observes a half-written file.
type Store struct {
	path   string
	format format
	lock   *flock.Flock
}

// Open returns a store for path, seeding it with the default layout when the
// file does not exist yet.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create preference directory: %w", err)
	}
	s := &Store{
		path:   path,
		format: formatFor(path),
		lock:   flock.New(path + ".lock"),
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(DefaultLayout()); err != nil {
			return nil, fmt.Errorf("seed preferences: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat preferences: %w", err)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Reload reads the whole file under a shared lock and returns it as an
// immutable snapshot.
func (s *Store) Reload() (Snapshot, error) {
	if err := s.lock.RLock(); err != nil {
		return Snapshot{}, fmt.Errorf("lock preferences: %w", err)
	}
	values, err := s.read()
	if uerr := s.lock.Unlock(); uerr != nil && err == nil {
		err = fmt.Errorf("unlock preferences: %w", uerr)
	}
	if err != nil {
		return Snapshot{}, err
	}
	events.Prefs.Reload(s.path, len(values))
	return Snapshot{values: values}, nil
}

// Set stores value under key. A nil value removes the key.
func (s *Store) Set(key string, value interface{}) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock preferences: %w", err)
	}
	defer s.lock.Unlock()
	values, err := s.read()
	if err != nil {
		return err
	}
	if value == nil {
		delete(values, key)
	} else {
		values[key] = value
	}
	if err := s.write(values); err != nil {
		return err
	}
	events.Prefs.Set(key, value)
	return nil
}

func (s *Store) read() (map[string]interface{}, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	values := map[string]interface{}{}
	switch s.format {
	case formatTOML:
		err = toml.Unmarshal(data, &values)
	default:
		err = yaml.Unmarshal(data, &values)
	}
	if err != nil {
		return nil, fmt.Errorf("decode preferences %s: %w", s.path, err)
	}
	if values == nil {
		values = map[string]interface{}{}
	}
	return values, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *Store) write(values map[string]interface{}) error {
	var (
		data []byte
		err  error
	)
	switch s.format {
	case formatTOML:
		data, err = toml.Marshal(values)
	default:
		data, err = yaml.Marshal(values)
	}
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*")
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// DefaultLayout is the layout written on first run.
func DefaultLayout() map[string]interface{} {
	return map[string]interface{}{
		KeyTriggerSide: string(SideBoth),

		SliceKey(1):   true,
		ItemKey(1, 1): "back",
		ItemKey(1, 2): "forward",

		SliceKey(2):   true,
		ItemKey(2, 2): "refresh",
		ItemKey(2, 1): "desktop_site",
		ItemKey(2, 3): "fullscreen",

		SliceKey(3):   true,
		ItemKey(3, 3): "show_tabs",
		ItemKey(3, 2): "new_tab",
		ItemKey(3, 4): "new_incognito_tab",
		ItemKey(3, 1): "close_tab",

		SliceKey(4):   true,
		ItemKey(4, 4): "add_bookmark",
		ItemKey(4, 3): "bookmarks",
		ItemKey(4, 5): "history",
		ItemKey(4, 6): "share",

		SliceKey(5):   true,
		ItemKey(5, 5): "find_in_page",
		ItemKey(5, 4): "print",
		ItemKey(5, 6): "scroll_to_top",

		SliceKey(6): false,
	}
}
