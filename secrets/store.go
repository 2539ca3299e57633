// Package secrets resolves named secret values from a Secrets.toml file and the environment.
package secrets

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/oklahomer/go-kasumi/logger"
)

// DefaultPath is the secrets file looked up when no other path is given.
const DefaultPath = "Secrets.toml"

// Getter is the read side of a secret store.
type Getter interface {
	Get(name string) (string, bool)
}

// Store holds secret values keyed by name.
type Store struct {
	k *koanf.Koanf
}

var _ Getter = (*Store)(nil)

// Load builds a Store from the TOML file at path and overlays the environment variables listed in names.
// A missing file is not an error; the environment alone may provide every secret.
func Load(path string, names ...string) (*Store, error) {
	k := koanf.New(".")

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(path), TOMLParser()); err != nil {
				return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
			}

		case errors.Is(err, os.ErrNotExist):
			logger.Debugf("Secrets file %s does not exist. Reading environment only.", path)

		default:
			return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
		}
	}

	if len(names) > 0 {
		known := make(map[string]struct{}, len(names))
		for _, name := range names {
			known[name] = struct{}{}
		}

		// Empty variables do not shadow file values.
		err := k.Load(env.ProviderWithValue("", ".", func(key string, value string) (string, interface{}) {
			if _, ok := known[key]; !ok || value == "" {
				return "", nil
			}
			return key, value
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read secrets from environment: %w", err)
		}
	}

	return &Store{k: k}, nil
}

// Get returns the secret value for name. Absent and empty values both report false.
func (s *Store) Get(name string) (string, bool) {
	if !s.k.Exists(name) {
		return "", false
	}

	value := s.k.String(name)
	if value == "" {
		return "", false
	}

	return value, true
}
