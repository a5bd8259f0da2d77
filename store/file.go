package store

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FileStore keeps string values in a yaml mapping on disk. Every Set rewrites
// the whole file.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// DefaultPath is highscore.yaml under the user's config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locating config directory")
	}
	return filepath.Join(dir, "gosnake", "highscore.yaml"), nil
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*FileStore, error) {
	store := &FileStore{path: path, values: make(map[string]string)}

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if err := yaml.Unmarshal(data, &store.values); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if store.values == nil {
		store.values = make(map[string]string)
	}
	return store, nil
}

func (store *FileStore) Path() string {
	return store.path
}

func (store *FileStore) Get(key string) (string, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.values[key]
	return value, ok
}

// Set stores value and persists the store. On a write failure the value is
// still kept in memory.
func (store *FileStore) Set(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.values[key] = value
	return store.flush()
}

func (store *FileStore) flush() error {
	data, err := yaml.Marshal(store.values)
	if err != nil {
		return errors.Wrap(err, "encoding store")
	}

	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := ioutil.TempFile(dir, filepath.Base(store.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), store.path); err != nil {
		return errors.Wrapf(err, "replacing %s", store.path)
	}
	return nil
}
