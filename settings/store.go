// Package settings persists module configurations, one YAML file per module.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when nothing has been saved under a name.
// It also matches fs.ErrNotExist.
var ErrNotFound = errors.New("settings not found")

type Store struct {
	Dir string

	mu sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+".yaml")
}

// Load decodes the file for name over a copy of v, so fields missing from the
// file keep the values v already holds. v is replaced only when the whole file
// decodes; on error it is left untouched.
func (s *Store) Load(name string, v any) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("load %s: want a non-nil pointer, got %T", name, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	scratch, err := clone(target)
	if err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	if err := node.Decode(scratch.Interface()); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	target.Elem().Set(scratch.Elem())
	return nil
}

// clone deep-copies the value ptr points to through its YAML form.
func clone(ptr reflect.Value) (reflect.Value, error) {
	data, err := yaml.Marshal(ptr.Interface())
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(ptr.Elem().Type())
	if err := yaml.Unmarshal(data, out.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	// write then rename; readers never see a partial file
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
