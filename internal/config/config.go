package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// FileName is the repository-local file holding persisted selections
	FileName = ".gh-kanban"
	// ProjectNumberKey is the key under which the selected project number is stored
	ProjectNumberKey = "PROJECT_NUMBER"
	// ProjectEnv overrides the persisted project (a number or a project URL)
	ProjectEnv = "GH_KANBAN_PROJECT"
	// EnvFileName is loaded into the environment before ProjectEnv is read
	EnvFileName = ".env"
)

// Store reads and writes KEY=value pairs in the repository-local config file
type Store struct {
	path string
}

// NewStore creates a store for the config file in the repository root
func NewStore(root string) *Store {
	return &Store{path: filepath.Join(root, FileName)}
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key. A missing file is reported as not
// found rather than as an error.
func (s *Store) Get(key string) (string, bool, error) {
	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key, keeping any other entries
func (s *Store) Set(key, value string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	if err := godotenv.Write(values, s.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) read() (map[string]string, error) {
	values, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return values, nil
}

// LoadEnv loads the .env file in the repository root, if any. Variables already
// set in the environment take precedence.
func LoadEnv(root string) error {
	err := godotenv.Load(filepath.Join(root, EnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", EnvFileName, err)
	}
	return nil
}
