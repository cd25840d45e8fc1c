package storage

import (
	"os"
	"path/filepath"
)

// Store resolves the managed config file paths under a single base directory
// and performs all file IO for them.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	if baseDir == "" {
		baseDir = "."
	}
	return &Store{baseDir: baseDir}
}

func (s *Store) BaseDir() string {
	return s.baseDir
}

func (s *Store) CaddyfilePath() string {
	return filepath.Join(s.baseDir, "caddy", "Caddyfile")
}

func (s *Store) UsersPath() string {
	return filepath.Join(s.baseDir, "users.json")
}

func (s *Store) XrayConfigPath() string {
	return filepath.Join(s.baseDir, "xray", "config.json")
}

func (s *Store) TemplatesDir() string {
	return filepath.Join(s.baseDir, "templates")
}

func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile creates missing parent directories before writing.
func (s *Store) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
